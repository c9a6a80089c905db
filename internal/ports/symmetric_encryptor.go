package ports

// SymmetricEncryptor seals the credential store. Ciphertext carries its own nonce,
// so the same key can encrypt any number of payloads.
type SymmetricEncryptor interface {
	Encrypt(plaintext []byte, key []byte) ([]byte, error)
	Decrypt(ciphertext []byte, key []byte) ([]byte, error)
	// CreateKey returns a new random key suitable for Encrypt and Decrypt.
	CreateKey() ([]byte, error)
}
