package testutil

import (
	"context"

	"redeploy/internal/core/domain"
	"redeploy/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.RancherClientFactory = (*MockRancherClientFactory)(nil)
var _ ports.RancherClient = (*MockRancherClient)(nil)

type MockRancherClientFactory struct {
	mock.Mock
}

func (m *MockRancherClientFactory) NewClient(credential domain.Credential) (ports.RancherClient, error) {
	args := m.Called(credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.RancherClient), args.Error(1)
}

type MockRancherClient struct {
	mock.Mock
}

func (m *MockRancherClient) GetWorkload(ctx context.Context, path string) (*domain.WorkloadDocument, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkloadDocument), args.Error(1)
}

func (m *MockRancherClient) UpdateWorkload(ctx context.Context, path string, document *domain.WorkloadDocument) error {
	args := m.Called(ctx, path, document)
	return args.Error(0)
}

func (m *MockRancherClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRancherClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
