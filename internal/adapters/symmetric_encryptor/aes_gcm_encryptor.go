package symmetric_encryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"redeploy/internal/ports"
)

const keySize = 32

var _ ports.SymmetricEncryptor = (*AesGcmEncryptor)(nil)

// AesGcmEncryptor encrypts with AES-256-GCM. Keys and ciphertexts are base64 encoded,
// and the nonce is prepended to the ciphertext.
type AesGcmEncryptor struct{}

func ProvideAesGcmEncryptor() *AesGcmEncryptor {
	return &AesGcmEncryptor{}
}

func (a AesGcmEncryptor) Encrypt(plaintext []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := aesGCM.Seal(nonce, nonce, plaintext, nil)

	return []byte(base64.StdEncoding.EncodeToString(ciphertext)), nil
}

func (a AesGcmEncryptor) Decrypt(encodedCipherText []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}
	cipherText, err := base64.StdEncoding.DecodeString(string(encodedCipherText))
	if err != nil {
		return nil, fmt.Errorf("ciphertext is not base64: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, sealed := cipherText[:nonceSize], cipherText[nonceSize:]

	return aesGCM.Open(nil, nonce, sealed, nil)
}

func (a AesGcmEncryptor) CreateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(key)), nil
}

func newGCM(encodedKey []byte) (cipher.AEAD, error) {
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, fmt.Errorf("encryption key is not base64: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
