// Package usecase contains the application-specific business rules.
// It defines the interfaces that the delivery layer depends on and
// orchestrates the flow of data to and from the domain entities.
package usecase

import (
	"context"

	"dreamtree/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ConnectInput defines the input for starting an account connection.
type ConnectInput struct {
	Handle string
}

// CallbackInput carries the query parameters the authorization server
// sends back to the redirect endpoint.
type CallbackInput struct {
	Code             string
	State            string
	ErrorCode        string
	ErrorDescription string
}

// --- Output DTOs ---

// ConnectOutput defines the output of a started connection attempt.
type ConnectOutput struct {
	AuthURL string
	PDSURL  string
}

// CallbackOutput identifies the connection that was just established.
type CallbackOutput struct {
	UserID uuid.UUID
	Handle string
	DID    string
}

// AtprotoUsecase defines the interface for AT Protocol account connection logic.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AtprotoUsecase interface {
	// Connect starts an authorization flow for the given handle and returns
	// the URL the user must visit to approve the connection.
	Connect(ctx context.Context, userID uuid.UUID, input ConnectInput) (*ConnectOutput, error)

	// HandleCallback completes the flow with the code and state returned by
	// the authorization server, exchanging the code and persisting the session.
	HandleCallback(ctx context.Context, input CallbackInput) (*CallbackOutput, error)

	// Status reports whether the user has a linked account. It never exposes tokens.
	Status(ctx context.Context, userID uuid.UUID) (*entity.ConnectionStatus, error)

	// Disconnect removes the stored session for the user. The remote
	// authorization grant is not revoked.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	// CleanupExpiredAttempts deletes authorization attempts past their TTL
	// and returns how many rows were removed.
	CleanupExpiredAttempts(ctx context.Context) (int64, error)
}
