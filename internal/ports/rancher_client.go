package ports

import (
	"context"

	"redeploy/internal/core/domain"
)

// RancherClientFactory opens a client for the API described by a credential.
type RancherClientFactory interface {
	NewClient(credential domain.Credential) (RancherClient, error)
}

// RancherClient talks to the Rancher2 v3 API. Non-200 answers are reported as *domain.UpstreamError.
type RancherClient interface {
	// GetWorkload fetches the workload at a project API path such as /project/<id>/workloads/<id>.
	GetWorkload(ctx context.Context, path string) (*domain.WorkloadDocument, error)
	// UpdateWorkload submits a workload back to the same path.
	UpdateWorkload(ctx context.Context, path string, document *domain.WorkloadDocument) error
	// Ping lists projects to check that the endpoint and token are usable.
	Ping(ctx context.Context) error
	Close() error
}
