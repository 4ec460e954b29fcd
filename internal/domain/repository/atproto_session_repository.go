// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dreamtree/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for network session persistence.
var (
	// ErrAtprotoSessionNotFound is returned when a user has no stored connection.
	ErrAtprotoSessionNotFound = errors.New("atproto session not found")
)

// AtprotoSessionRepository defines the interface for established network connections.
// Implementations encrypt token fields at rest; callers only ever see plaintext.
type AtprotoSessionRepository interface {
	// UpsertSession stores the session for its user, replacing any previous
	// connection the user had.
	UpsertSession(ctx context.Context, session *entity.AtprotoSession) error

	// FindSessionByUserID retrieves the user's connection with tokens decrypted.
	FindSessionByUserID(ctx context.Context, userID uuid.UUID) (*entity.AtprotoSession, error)

	// DeleteSessionByUserID removes the user's stored connection. Purely local,
	// nothing is revoked remotely.
	DeleteSessionByUserID(ctx context.Context, userID uuid.UUID) error
}
