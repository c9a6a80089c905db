package core

import (
	"strconv"
	"strings"

	"redeploy/internal/core/domain"
	"redeploy/internal/ports"
)

const (
	EnvEndpoint    = "RANCHER2_ENDPOINT"
	EnvBearerToken = "RANCHER2_BEARER_TOKEN"
	EnvTrustCert   = "RANCHER2_TRUST_CERT"
)

type CredentialResolver interface {
	// Resolve returns the credential for an id, or *domain.CredentialNotFoundError.
	// A blank id selects the configured default credential.
	Resolve(id string) (*domain.Credential, error)
}

type StoreCredentialResolver struct {
	credentialRepository CredentialRepository
	configRepository     ConfigRepository
	environment          ports.Environment
}

func ProvideStoreCredentialResolver(
	credentialRepository CredentialRepository,
	configRepository ConfigRepository,
	environment ports.Environment,
) *StoreCredentialResolver {
	return &StoreCredentialResolver{
		credentialRepository: credentialRepository,
		configRepository:     configRepository,
		environment:          environment,
	}
}

func (r *StoreCredentialResolver) Resolve(id string) (*domain.Credential, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		config, err := r.configRepository.LoadConfig()
		if err != nil {
			return nil, err
		}
		id = config.DefaultCredential
	}
	if id == "" {
		return nil, &domain.CredentialNotFoundError{ID: id}
	}

	if id == domain.EnvironmentCredentialID {
		return r.resolveFromEnvironment()
	}

	credential, err := r.credentialRepository.FindCredential(id)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, &domain.CredentialNotFoundError{ID: id}
	}
	return credential, nil
}

func (r *StoreCredentialResolver) resolveFromEnvironment() (*domain.Credential, error) {
	endpoint, _ := r.environment.Lookup(EnvEndpoint)
	token, _ := r.environment.Lookup(EnvBearerToken)
	if endpoint == "" || token == "" {
		return nil, &domain.CredentialNotFoundError{ID: domain.EnvironmentCredentialID}
	}

	trustCert := false
	if value, ok := r.environment.Lookup(EnvTrustCert); ok {
		trustCert, _ = strconv.ParseBool(value)
	}

	return &domain.Credential{
		ID:          domain.EnvironmentCredentialID,
		Endpoint:    endpoint,
		TrustCert:   trustCert,
		BearerToken: token,
		Description: "from " + EnvEndpoint + " and " + EnvBearerToken,
	}, nil
}
