package core

import (
	"errors"
	"testing"

	"redeploy/internal/adapters/symmetric_encryptor"
	"redeploy/internal/core/domain"
	"redeploy/internal/ports"
	"redeploy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const credentialsPath = "~/.redeploy/credentials"

func TestLoadCredentials_Success(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	credentialsJSON := []byte(`[{"id":"prod","endpoint":"https://rancher.local/v3","trustCert":true,"bearerToken":"token-1:abc"}]`)
	encryptedData := []byte("encrypted-data")
	encryptionKey := "test-key"

	fileSystem.On("FileExists", credentialsPath).Return(true, nil)
	keyring.On("HasKey", encryptionKeyName).Return(true, nil)
	fileSystem.On("ReadFile", credentialsPath).Return(encryptedData, nil)
	keyring.On("GetKey", encryptionKeyName).Return(encryptionKey, nil)
	encryptor.On("Decrypt", encryptedData, []byte(encryptionKey)).Return(credentialsJSON, nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	credentials, err := sut.LoadCredentials()

	assert.NoError(t, err)
	require.Len(t, credentials, 1)
	assert.Equal(t, "prod", credentials[0].ID)
	assert.Equal(t, "https://rancher.local/v3", credentials[0].Endpoint)
	assert.True(t, credentials[0].TrustCert)
	assert.Equal(t, "token-1:abc", credentials[0].BearerToken)
	fileSystem.AssertExpectations(t)
	keyring.AssertExpectations(t)
	encryptor.AssertExpectations(t)
}

func TestLoadCredentials_FileNotExists(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	fileSystem.On("FileExists", credentialsPath).Return(false, nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	credentials, err := sut.LoadCredentials()

	assert.NoError(t, err)
	assert.Empty(t, credentials)
	keyring.AssertNotCalled(t, "HasKey", mock.Anything)
}

func TestLoadCredentials_KeyMissing(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	fileSystem.On("FileExists", credentialsPath).Return(true, nil)
	keyring.On("HasKey", encryptionKeyName).Return(false, nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	credentials, err := sut.LoadCredentials()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "credential reset")
	assert.Nil(t, credentials)
}

func TestLoadCredentials_DecryptError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	expectedErr := errors.New("cipher: message authentication failed")
	fileSystem.On("FileExists", credentialsPath).Return(true, nil)
	keyring.On("HasKey", encryptionKeyName).Return(true, nil)
	fileSystem.On("ReadFile", credentialsPath).Return([]byte("encrypted"), nil)
	keyring.On("GetKey", encryptionKeyName).Return("key", nil)
	encryptor.On("Decrypt", []byte("encrypted"), []byte("key")).Return(nil, expectedErr)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	credentials, err := sut.LoadCredentials()

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, credentials)
}

func TestLoadCredentials_FileExistsError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	expectedErr := errors.New("filesystem error")
	fileSystem.On("FileExists", credentialsPath).Return(false, expectedErr)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	credentials, err := sut.LoadCredentials()

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, credentials)
}

func TestSaveCredentials_CreatesKeyWhenMissing(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	newKey := []byte("new-key")
	keyring.On("HasKey", encryptionKeyName).Return(false, nil)
	encryptor.On("CreateKey").Return(newKey, nil)
	keyring.On("SetKey", encryptionKeyName, string(newKey)).Return(nil)
	keyring.On("GetKey", encryptionKeyName).Return(string(newKey), nil)
	encryptor.On("Encrypt", mock.Anything, newKey).Return([]byte("ciphertext"), nil)
	fileSystem.On("WriteFile", credentialsPath, []byte("ciphertext"), ports.AccessMode(ports.ReadWrite)).Return(nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	err := sut.SaveCredentials([]*domain.Credential{{ID: "prod"}})

	assert.NoError(t, err)
	fileSystem.AssertExpectations(t)
	keyring.AssertExpectations(t)
	encryptor.AssertExpectations(t)
}

func TestSaveCredentials_EncryptError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	expectedErr := errors.New("encrypt error")
	keyring.On("HasKey", encryptionKeyName).Return(true, nil)
	keyring.On("GetKey", encryptionKeyName).Return("key", nil)
	encryptor.On("Encrypt", mock.Anything, []byte("key")).Return(nil, expectedErr)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	err := sut.SaveCredentials([]*domain.Credential{{ID: "prod"}})

	assert.Equal(t, expectedErr, err)
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCredentialRepository_RoundTripWithRealEncryption(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	keyring := new(testutil.MockKeyring)
	encryptor := symmetric_encryptor.ProvideAesGcmEncryptor()
	key, err := encryptor.CreateKey()
	require.NoError(t, err)

	keyring.On("HasKey", encryptionKeyName).Return(true, nil)
	keyring.On("GetKey", encryptionKeyName).Return(string(key), nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	err = sut.SaveCredentials([]*domain.Credential{
		{ID: "staging", Endpoint: "https://staging.rancher.local/v3", BearerToken: "token-2:def"},
		{ID: "prod", Endpoint: "https://rancher.local/v3", BearerToken: "token-1:abc", TrustCert: true},
	})
	require.NoError(t, err)

	raw, err := fileSystem.ReadFile(credentialsPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "token-1:abc")

	credentials, err := sut.LoadCredentials()
	require.NoError(t, err)
	require.Len(t, credentials, 2)
	assert.Equal(t, "prod", credentials[0].ID)
	assert.Equal(t, "staging", credentials[1].ID)

	found, err := sut.FindCredential("staging")
	require.NoError(t, err)
	assert.Equal(t, "token-2:def", found.BearerToken)

	missing, err := sut.FindCredential("dev")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCredentialRepository_ResetRemovesFileAndKey(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	fileSystem.On("RemoveFile", credentialsPath).Return(nil)
	keyring.On("HasKey", encryptionKeyName).Return(true, nil)
	keyring.On("DeleteKey", encryptionKeyName).Return(nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	err := sut.Reset()

	assert.NoError(t, err)
	fileSystem.AssertExpectations(t)
	keyring.AssertExpectations(t)
}

func TestCredentialRepository_ResetWithoutKey(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	keyring := new(testutil.MockKeyring)
	encryptor := new(testutil.MockSymmetricEncryptor)

	fileSystem.On("RemoveFile", credentialsPath).Return(nil)
	keyring.On("HasKey", encryptionKeyName).Return(false, nil)

	sut := ProvideEncryptedFileCredentialRepository(fileSystem, keyring, encryptor)

	err := sut.Reset()

	assert.NoError(t, err)
	keyring.AssertNotCalled(t, "DeleteKey", mock.Anything)
}
