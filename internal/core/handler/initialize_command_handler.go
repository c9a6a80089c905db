package handler

import (
	"fmt"

	"redeploy/internal/cli/output"
	"redeploy/internal/core"
	"redeploy/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("configuration file already exists")
	}
	config := domain.CreateDefaultConfig()
	err = h.configRepository.SaveConfig(&config)
	if err != nil {
		return err
	}

	output.PrintSuccess("Configuration written to ~/.redeploy/config.yaml")
	output.PrintSecondary(fmt.Sprintf("Add the '%s' credential with 'redeploy credential add %s --endpoint <url>'",
		config.DefaultCredential, config.DefaultCredential))
	return nil
}
