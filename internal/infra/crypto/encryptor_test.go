package crypto

import (
	"context"
	"strings"
	"testing"

	"dreamtree/config"
	"dreamtree/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptor(t *testing.T) service.Encryptor {
	t.Helper()

	encryptor, err := NewTokenEncryptor(&config.Config{
		Encryption: &config.EncryptionConfig{
			// 32 bytes of hex, fixed for reproducible tests.
			MasterKey: strings.Repeat("ab", 32),
		},
	})
	require.NoError(t, err)

	return encryptor
}

func TestNewTokenEncryptor_RejectsBadKeys(t *testing.T) {
	tests := []struct {
		name        string
		masterKey   string
		errContains string
	}{
		{name: "not hex", masterKey: "zz" + strings.Repeat("ab", 31), errContains: "not valid hex"},
		{name: "too short", masterKey: strings.Repeat("ab", 16), errContains: "must be 32 bytes"},
		{name: "too long", masterKey: strings.Repeat("ab", 48), errContains: "must be 32 bytes"},
		{name: "empty", masterKey: "", errContains: "must be 32 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encryptor, err := NewTokenEncryptor(&config.Config{
				Encryption: &config.EncryptionConfig{MasterKey: tt.masterKey},
			})

			require.Error(t, err)
			assert.Nil(t, encryptor)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestTokenEncryptor_RoundTrip(t *testing.T) {
	encryptor := newTestEncryptor(t)
	ctx := context.Background()
	userID := uuid.New()

	plaintext := "access-token-material"

	ciphertext, err := encryptor.Encrypt(ctx, userID, plaintext)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, plaintext)

	decrypted, err := encryptor.Decrypt(ctx, userID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestTokenEncryptor_RandomizedNonce(t *testing.T) {
	encryptor := newTestEncryptor(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := encryptor.Encrypt(ctx, userID, "same plaintext")
	require.NoError(t, err)

	second, err := encryptor.Encrypt(ctx, userID, "same plaintext")
	require.NoError(t, err)

	// Each seal uses a fresh nonce, so equal plaintexts never repeat on disk.
	assert.NotEqual(t, first, second)
}

func TestTokenEncryptor_KeysAreUserBound(t *testing.T) {
	encryptor := newTestEncryptor(t)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	ciphertext, err := encryptor.Encrypt(ctx, owner, "secret")
	require.NoError(t, err)

	decrypted, err := encryptor.Decrypt(ctx, other, ciphertext)

	require.Error(t, err)
	assert.Empty(t, decrypted)
	assert.Contains(t, err.Error(), "failed to open ciphertext")
}

func TestTokenEncryptor_Decrypt_RejectsGarbage(t *testing.T) {
	encryptor := newTestEncryptor(t)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		ciphertext  string
		errContains string
	}{
		{name: "not base64", ciphertext: "!!!not-base64!!!", errContains: "failed to decode ciphertext"},
		{name: "too short", ciphertext: "c2hvcnQ=", errContains: "ciphertext too short"},
		{name: "tampered", ciphertext: tamperedCiphertext(t, encryptor, userID), errContains: "failed to open ciphertext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decrypted, err := encryptor.Decrypt(ctx, userID, tt.ciphertext)

			require.Error(t, err)
			assert.Empty(t, decrypted)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

// tamperedCiphertext flips one ciphertext character so authentication fails.
func tamperedCiphertext(t *testing.T, encryptor service.Encryptor, userID uuid.UUID) string {
	t.Helper()

	ciphertext, err := encryptor.Encrypt(context.Background(), userID, "secret")
	require.NoError(t, err)

	flipped := []byte(ciphertext)
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}

	return string(flipped)
}
