package core

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"redeploy/internal/core/domain"
	"redeploy/internal/ports"
)

const encryptionKeyName = "credentials-encryption-key"

var credentialsFilePath = filepath.Join("~", ".redeploy", "credentials")

type CredentialRepository interface {
	LoadCredentials() ([]*domain.Credential, error)
	SaveCredentials(credentials []*domain.Credential) error
	// FindCredential returns nil without an error when no credential has the id.
	FindCredential(id string) (*domain.Credential, error)
	// Reset removes the stored credentials together with their encryption key.
	Reset() error
}

func ProvideEncryptedFileCredentialRepository(
	fileSystem ports.FileSystem,
	keyring ports.Keyring,
	encryptor ports.SymmetricEncryptor,
) CredentialRepository {
	return &EncryptedFileCredentialRepository{
		fileSystem: fileSystem,
		keyring:    keyring,
		encryptor:  encryptor,
	}
}

// EncryptedFileCredentialRepository keeps credentials as an AES-GCM encrypted JSON list.
// The key is stored in the OS keyring, the ciphertext in the user's home directory.
type EncryptedFileCredentialRepository struct {
	fileSystem ports.FileSystem
	keyring    ports.Keyring
	encryptor  ports.SymmetricEncryptor
}

func (e EncryptedFileCredentialRepository) LoadCredentials() ([]*domain.Credential, error) {
	fileExists, err := e.fileSystem.FileExists(credentialsFilePath)
	if err != nil {
		return nil, err
	}
	if !fileExists {
		return []*domain.Credential{}, nil
	}
	keyExists, err := e.keyring.HasKey(encryptionKeyName)
	if err != nil {
		return nil, err
	}
	if !keyExists {
		return nil, fmt.Errorf("credentials file exists but its encryption key is missing from the keyring; run 'redeploy credential reset'")
	}

	encrypted, err := e.fileSystem.ReadFile(credentialsFilePath)
	if err != nil {
		return nil, err
	}
	key, err := e.keyring.GetKey(encryptionKeyName)
	if err != nil {
		return nil, err
	}
	decrypted, err := e.encryptor.Decrypt(encrypted, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credentials: %w", err)
	}

	var credentials []*domain.Credential
	if err := json.Unmarshal(decrypted, &credentials); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return credentials, nil
}

func (e EncryptedFileCredentialRepository) SaveCredentials(credentials []*domain.Credential) error {
	keyExists, err := e.keyring.HasKey(encryptionKeyName)
	if err != nil {
		return err
	}
	if !keyExists {
		key, err := e.encryptor.CreateKey()
		if err != nil {
			return err
		}
		if err := e.keyring.SetKey(encryptionKeyName, string(key)); err != nil {
			return err
		}
	}
	key, err := e.keyring.GetKey(encryptionKeyName)
	if err != nil {
		return err
	}

	sorted := make([]*domain.Credential, len(credentials))
	copy(sorted, credentials)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	plaintext, err := json.Marshal(sorted)
	if err != nil {
		return err
	}
	encrypted, err := e.encryptor.Encrypt(plaintext, []byte(key))
	if err != nil {
		return err
	}

	return e.fileSystem.WriteFile(credentialsFilePath, encrypted, ports.ReadWrite)
}

func (e EncryptedFileCredentialRepository) FindCredential(id string) (*domain.Credential, error) {
	credentials, err := e.LoadCredentials()
	if err != nil {
		return nil, err
	}
	for _, credential := range credentials {
		if credential.ID == id {
			return credential, nil
		}
	}
	return nil, nil
}

func (e EncryptedFileCredentialRepository) Reset() error {
	if err := e.fileSystem.RemoveFile(credentialsFilePath); err != nil {
		return err
	}
	keyExists, err := e.keyring.HasKey(encryptionKeyName)
	if err != nil {
		return err
	}
	if !keyExists {
		return nil
	}
	return e.keyring.DeleteKey(encryptionKeyName)
}
