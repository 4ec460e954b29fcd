// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dreamtree/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for authorization attempt persistence.
var (
	// ErrOAuthStateNotFound is returned when no attempt matches the presented state token.
	ErrOAuthStateNotFound = errors.New("oauth state not found")
	// ErrOAuthStateExpired is returned when the attempt existed but its lifetime had elapsed.
	// The row is already gone by the time this is returned.
	ErrOAuthStateExpired = errors.New("oauth state expired")
	// ErrDuplicateOAuthState is returned when a state token collides with a live attempt.
	ErrDuplicateOAuthState = errors.New("oauth state already exists")
)

// OAuthStateRepository defines the interface for in-flight authorization attempts.
type OAuthStateRepository interface {
	// CreateAttempt persists a new authorization attempt.
	CreateAttempt(ctx context.Context, attempt *entity.OAuthAttempt) error

	// ConsumeAttempt removes the attempt matching stateToken and returns it in a
	// single atomic step, so that concurrent callbacks presenting the same token
	// see exactly one winner. Returns ErrOAuthStateNotFound when no row matched
	// and ErrOAuthStateExpired when the matched row was past its lifetime.
	ConsumeAttempt(ctx context.Context, stateToken string) (*entity.OAuthAttempt, error)

	// DeleteExpiredAttempts removes attempts whose lifetime has elapsed and
	// reports how many rows were removed.
	DeleteExpiredAttempts(ctx context.Context) (int64, error)
}
