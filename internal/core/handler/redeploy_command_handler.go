package handler

import (
	"context"
	"errors"
	"fmt"

	"redeploy/internal/cli/output"
	"redeploy/internal/core"
	"redeploy/internal/core/domain"
	"redeploy/internal/ports"

	"go.uber.org/zap"
)

type RedeployRequest struct {
	Credential string
	Workload   string
	Images     string
	// AlwaysPull overrides the configured default when set.
	AlwaysPull *bool
}

type RedeployCommandHandler struct {
	environment        ports.Environment
	credentialResolver core.CredentialResolver
	configRepository   core.ConfigRepository
	clientFactory      ports.RancherClientFactory
	patcher            *core.WorkloadPatcher
	logger             *zap.Logger
}

func ProvideRedeployCommandHandler(
	environment ports.Environment,
	credentialResolver core.CredentialResolver,
	configRepository core.ConfigRepository,
	clientFactory ports.RancherClientFactory,
	patcher *core.WorkloadPatcher,
	logger *zap.Logger,
) RedeployCommandHandler {
	return RedeployCommandHandler{
		environment:        environment,
		credentialResolver: credentialResolver,
		configRepository:   configRepository,
		clientFactory:      clientFactory,
		patcher:            patcher,
		logger:             logger,
	}
}

// Handle fetches the workload, points the matching containers at the requested images and
// submits it back. Nothing is sent to the API unless the credential, path and images
// are all valid.
func (h *RedeployCommandHandler) Handle(ctx context.Context, request RedeployRequest) error {
	credentialID := h.environment.Expand(request.Credential)
	workloadPath := h.environment.Expand(request.Workload)
	images := h.environment.Expand(request.Images)

	credential, err := h.credentialResolver.Resolve(credentialID)
	if err != nil {
		return err
	}
	if err := domain.ValidateWorkloadPath(workloadPath); err != nil {
		return err
	}
	desired, err := domain.ParseDesiredImages(images)
	if err != nil {
		return err
	}
	workloadPath = domain.NormalizeWorkloadPath(workloadPath)

	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	alwaysPull := config.AlwaysPull
	if request.AlwaysPull != nil {
		alwaysPull = *request.AlwaysPull
	}

	ctx, cancel := context.WithTimeout(ctx, config.TimeoutDuration())
	defer cancel()

	client, err := h.clientFactory.NewClient(*credential)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			h.logger.Debug("Failed to close rancher client", zap.Error(closeErr))
		}
	}()

	logger := h.logger.With(zap.String("credential", credential.ID), zap.String("workload", workloadPath))
	output.PrintInfo(fmt.Sprintf("Redeploying %s", output.Bold(workloadPath)))

	document, err := client.GetWorkload(ctx, workloadPath)
	if err != nil {
		return fmt.Errorf("failed to fetch workload: %w", err)
	}

	result, err := h.patcher.Patch(document, desired, alwaysPull)
	if err != nil {
		var mismatchErr *domain.MismatchError
		if errors.As(err, &mismatchErr) {
			logger.Warn("Requested images are missing from the workload",
				zap.Strings("workloadImages", mismatchErr.WorkloadImages),
				zap.Strings("desiredImages", mismatchErr.DesiredImages),
				zap.Strings("unmatched", mismatchErr.Unmatched()),
			)
		}
		return err
	}
	for _, change := range result.Changes {
		output.PrintStep(fmt.Sprintf("%s %s %s", change.OldImage, output.SymbolArrow, output.Bold(change.NewImage)))
	}

	if err := client.UpdateWorkload(ctx, workloadPath, result.Document); err != nil {
		return fmt.Errorf("failed to update workload: %w", err)
	}

	logger.Debug("Workload updated", zap.Strings("matched", result.Matched), zap.Bool("alwaysPull", alwaysPull))
	if len(result.Changes) == 0 {
		output.PrintSuccess("Workload redeployed without image changes")
	} else {
		output.PrintSuccess(fmt.Sprintf("Workload redeployed with %d %s",
			len(result.Matched), output.Plural(len(result.Matched), "image", "images")))
	}
	return nil
}
