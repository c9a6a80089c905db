package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"redeploy/internal/cli/output"
	"redeploy/internal/core"
	"redeploy/internal/core/domain"
	"redeploy/internal/ports"
)

type AddCredentialRequest struct {
	ID          string
	Endpoint    string
	TrustCert   bool
	Description string
	// TokenInput, when set, is read for the bearer token instead of prompting.
	TokenInput io.Reader
}

type CredentialCommandHandler struct {
	credentialRepository core.CredentialRepository
	credentialResolver   core.CredentialResolver
	clientFactory        ports.RancherClientFactory
	terminalInput        ports.TerminalInput
}

func ProvideCredentialCommandHandler(
	credentialRepository core.CredentialRepository,
	credentialResolver core.CredentialResolver,
	clientFactory ports.RancherClientFactory,
	terminalInput ports.TerminalInput,
) CredentialCommandHandler {
	return CredentialCommandHandler{
		credentialRepository: credentialRepository,
		credentialResolver:   credentialResolver,
		clientFactory:        clientFactory,
		terminalInput:        terminalInput,
	}
}

func (h *CredentialCommandHandler) HandleAdd(request AddCredentialRequest) error {
	if err := domain.ValidateCredentialID(request.ID); err != nil {
		return err
	}
	warnings, err := domain.ValidateEndpoint(request.Endpoint)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		output.PrintWarning(warning)
	}

	token, err := h.readToken(request)
	if err != nil {
		return err
	}
	if err := domain.ValidateBearerToken(token); err != nil {
		return err
	}

	credentials, err := h.credentialRepository.LoadCredentials()
	if err != nil {
		return err
	}

	credential := &domain.Credential{
		ID:          request.ID,
		Endpoint:    request.Endpoint,
		TrustCert:   request.TrustCert,
		BearerToken: token,
		Description: request.Description,
	}
	replaced := false
	for i := range credentials {
		if credentials[i].ID == request.ID {
			credentials[i] = credential
			replaced = true
		}
	}
	if !replaced {
		credentials = append(credentials, credential)
	}

	if err := h.credentialRepository.SaveCredentials(credentials); err != nil {
		return err
	}
	if replaced {
		output.PrintSuccess(fmt.Sprintf("Credential '%s' updated", request.ID))
	} else {
		output.PrintSuccess(fmt.Sprintf("Credential '%s' saved", request.ID))
	}
	return nil
}

func (h *CredentialCommandHandler) readToken(request AddCredentialRequest) (string, error) {
	if request.TokenInput != nil {
		token, err := h.terminalInput.ReadAll(request.TokenInput)
		if err != nil {
			return "", fmt.Errorf("failed to read bearer token: %w", err)
		}
		return token, nil
	}

	if !h.terminalInput.IsTerminal() {
		return "", fmt.Errorf("cannot read bearer token: no terminal available; use --token-stdin")
	}
	prompt := fmt.Sprintf("Enter bearer token for %s: ", output.Bold(request.ID))
	token, err := h.terminalInput.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read bearer token: %w", err)
	}
	return token, nil
}

func (h *CredentialCommandHandler) HandleList() error {
	credentials, err := h.credentialRepository.LoadCredentials()
	if err != nil {
		return err
	}

	if len(credentials) == 0 {
		output.PrintInfo("No credentials configured")
		return nil
	}

	output.PrintHeader("Credentials")
	output.Println()
	for _, credential := range credentials {
		details := []string{credential.Endpoint}
		if credential.TrustCert {
			details = append(details, "(certificate not verified)")
		}
		if credential.Description != "" {
			details = append(details, credential.Description)
		}
		output.PrintBullet(credential.ID, strings.Join(details, " "))
	}
	return nil
}

// ListIDs returns the stored credential ids for shell completion.
func (h *CredentialCommandHandler) ListIDs() ([]string, error) {
	credentials, err := h.credentialRepository.LoadCredentials()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(credentials))
	for _, credential := range credentials {
		ids = append(ids, credential.ID)
	}
	return ids, nil
}

func (h *CredentialCommandHandler) HandleDelete(id string) error {
	credentials, err := h.credentialRepository.LoadCredentials()
	if err != nil {
		return err
	}

	var remaining []*domain.Credential
	for _, credential := range credentials {
		if credential.ID != id {
			remaining = append(remaining, credential)
		}
	}
	if len(remaining) == len(credentials) {
		return &domain.CredentialNotFoundError{ID: id}
	}

	if err := h.credentialRepository.SaveCredentials(remaining); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Credential '%s' deleted", id))
	return nil
}

// HandleTest lists the projects visible to a credential to prove that the endpoint
// is reachable and the token is accepted.
func (h *CredentialCommandHandler) HandleTest(ctx context.Context, id string) error {
	credential, err := h.credentialResolver.Resolve(id)
	if err != nil {
		return err
	}

	client, err := h.clientFactory.NewClient(*credential)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Ping(ctx)
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("the token of credential '%s' was rejected; check that it is valid and has no cluster scope: %w", credential.ID, err)
	}
	if err != nil {
		return fmt.Errorf("connection test for credential '%s' failed: %w", credential.ID, err)
	}

	output.PrintSuccess(fmt.Sprintf("Credential '%s' can reach %s", credential.ID, credential.BaseURL()))
	return nil
}

func (h *CredentialCommandHandler) HandleReset() error {
	if err := h.credentialRepository.Reset(); err != nil {
		return err
	}
	output.PrintSuccess("Credential store removed")
	return nil
}
