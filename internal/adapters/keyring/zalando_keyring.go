package keyring

import (
	"errors"

	"redeploy/internal/ports"

	"github.com/zalando/go-keyring"
)

const serviceName = "redeploy"

var _ ports.Keyring = ZalandoKeyring{}

// ZalandoKeyring stores keys in the OS keychain (Keychain, Secret Service, Credential Manager).
type ZalandoKeyring struct{}

func ProvideZalandoKeyring() ports.Keyring {
	return ZalandoKeyring{}
}

func (z ZalandoKeyring) GetKey(keyName string) (string, error) {
	return keyring.Get(serviceName, keyName)
}

func (z ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	return keyring.Set(serviceName, keyName, keyValue)
}

func (z ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := keyring.Get(serviceName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (z ZalandoKeyring) DeleteKey(keyName string) error {
	err := keyring.Delete(serviceName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
