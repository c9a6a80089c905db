package core

import (
	"errors"
	"testing"
	"time"

	"redeploy/internal/core/domain"
	"redeploy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "", config.DefaultCredential)
	assert.Equal(t, domain.DefaultTimeout, config.TimeoutDuration())
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	content := []byte(`defaultCredential: rancher-prod
timeout: 45s
alwaysPull: true
log:
  level: debug
`)
	require.NoError(t, fileSystem.WriteFile(configFilePath, content, 0))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "rancher-prod", config.DefaultCredential)
	assert.Equal(t, 45*time.Second, config.TimeoutDuration())
	assert.True(t, config.AlwaysPull)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
}

func TestLoadConfig_InvalidFileIsRejected(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile(configFilePath, []byte("timeout: forever\n"), 0))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Nil(t, config)
}

func TestLoadConfig_MalformedYamlIsRejected(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile(configFilePath, []byte("log: [unterminated\n"), 0))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_FileExistsError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	expectedErr := errors.New("permission denied")
	fileSystem.On("FileExists", configFilePath).Return(false, expectedErr)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()

	assert.Equal(t, expectedErr, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fileSystem)
	defaultConfig := domain.CreateDefaultConfig()

	require.NoError(t, sut.SaveConfig(&defaultConfig))
	exists, err := sut.ConfigExists()
	require.NoError(t, err)
	loaded, err := sut.LoadConfig()
	require.NoError(t, err)

	assert.True(t, exists)
	assert.Equal(t, defaultConfig, *loaded)
}

func TestSaveConfig_RejectsInvalidConfig(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	err := sut.SaveConfig(&domain.Config{Timeout: "later"})

	assert.Error(t, err)
	fileSystem.AssertNotCalled(t, "WriteFile")
}
