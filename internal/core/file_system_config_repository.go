package core

import (
	"fmt"
	"path/filepath"

	"redeploy/internal/core/domain"
	"redeploy/internal/ports"

	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".redeploy", "config.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
	}
}

// LoadConfig reads the configuration file. A missing file yields the built-in defaults
// so that a CI agent can run without any local setup.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileService.FileExists(configFilePath)
	if err != nil {
		return nil, err
	}

	config := domain.Config{
		Timeout: domain.DefaultTimeout.String(),
		Log:     domain.LogConfig{Level: "info", Format: "console"},
	}
	if exists {
		data, err := c.fileService.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %v", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	c.config = nil
	return c.fileService.WriteFile(configFilePath, data, ports.ReadAllWriteOwner)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(configFilePath)
}
