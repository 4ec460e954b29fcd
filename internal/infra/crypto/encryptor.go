// Package crypto protects network token material at rest.
package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"dreamtree/config"
	"dreamtree/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// keyInfoPrefix namespaces derived keys so the same master key can serve
// other purposes later without ciphertext crossover.
const keyInfoPrefix = "dreamtree/session-token/"

// tokenEncryptor implements service.Encryptor with per-user keys derived from
// the configured master key.
type tokenEncryptor struct {
	masterKey []byte
}

// NewTokenEncryptor creates the production encryptor. The configured master
// key must be hex for exactly the cipher's key size.
func NewTokenEncryptor(cfg *config.Config) (service.Encryptor, error) {
	key, err := hex.DecodeString(cfg.Encryption.MasterKey)
	if err != nil {
		return nil, errors.Wrap(err, "master key is not valid hex")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("master key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &tokenEncryptor{masterKey: key}, nil
}

// deriveKey expands the master key into a per-user subkey, binding every
// ciphertext to the account it was written for.
func (e *tokenEncryptor) deriveKey(userID uuid.UUID) ([]byte, error) {
	reader := hkdf.New(sha256.New, e.masterKey, nil, []byte(keyInfoPrefix+userID.String()))

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Wrap(err, "failed to derive user key")
	}

	return key, nil
}

// Encrypt seals plaintext under the user's derived key and returns base64.
func (e *tokenEncryptor) Encrypt(_ context.Context, userID uuid.UUID, plaintext string) (string, error) {
	key, err := e.deriveKey(userID)
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to build cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext previously produced by Encrypt for the same user.
func (e *tokenEncryptor) Decrypt(_ context.Context, userID uuid.UUID, ciphertext string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ciphertext")
	}

	key, err := e.deriveKey(userID)
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to build cipher")
	}

	if len(decoded) < aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := decoded[:aead.NonceSize()], decoded[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open ciphertext")
	}

	return string(plaintext), nil
}
