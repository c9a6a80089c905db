package testutil

import (
	"redeploy/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockCredentialResolver struct {
	mock.Mock
}

func (m *MockCredentialResolver) Resolve(id string) (*domain.Credential, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}
