package service

import (
	"context"

	"github.com/google/uuid"
)

// Encryptor protects secrets at rest. Keys are derived per user, so a
// ciphertext written for one account can never be opened under another.
type Encryptor interface {
	// Encrypt seals plaintext under the user's derived key and returns an
	// encoded ciphertext safe to store in a text column.
	Encrypt(ctx context.Context, userID uuid.UUID, plaintext string) (string, error)

	// Decrypt opens a ciphertext previously produced by Encrypt for the same user.
	Decrypt(ctx context.Context, userID uuid.UUID, ciphertext string) (string, error)
}
