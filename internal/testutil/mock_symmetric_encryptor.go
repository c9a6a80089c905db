package testutil

import (
	"redeploy/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.SymmetricEncryptor = (*MockSymmetricEncryptor)(nil)

// MockSymmetricEncryptor provides a testify mock for ports.SymmetricEncryptor
type MockSymmetricEncryptor struct {
	mock.Mock
}

func (m *MockSymmetricEncryptor) Encrypt(plaintext []byte, key []byte) ([]byte, error) {
	args := m.Called(plaintext, key)
	return bytesOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSymmetricEncryptor) Decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	args := m.Called(ciphertext, key)
	return bytesOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSymmetricEncryptor) CreateKey() ([]byte, error) {
	args := m.Called()
	return bytesOrNil(args.Get(0)), args.Error(1)
}

func bytesOrNil(value interface{}) []byte {
	if value == nil {
		return nil
	}
	return value.([]byte)
}
