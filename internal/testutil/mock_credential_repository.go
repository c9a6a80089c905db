package testutil

import (
	"redeploy/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) LoadCredentials() ([]*domain.Credential, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credential), args.Error(1)
}

func (m *MockCredentialRepository) SaveCredentials(credentials []*domain.Credential) error {
	args := m.Called(credentials)
	return args.Error(0)
}

func (m *MockCredentialRepository) FindCredential(id string) (*domain.Credential, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *MockCredentialRepository) Reset() error {
	args := m.Called()
	return args.Error(0)
}
