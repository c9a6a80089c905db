package ports

// Keyring stores small secrets in the operating system's credential manager.
type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	// HasKey reports false without an error when the key does not exist.
	HasKey(keyName string) (bool, error)
	// DeleteKey removes a key. A missing key is not an error.
	DeleteKey(keyName string) error
}
