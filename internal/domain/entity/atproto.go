// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionSource tags how a personal data server location was determined.
type ResolutionSource string

const (
	// ResolutionSourceDefault means the handle mapped to the default network,
	// or resolution failed and the default location was substituted.
	ResolutionSourceDefault ResolutionSource = "default"
	// ResolutionSourceResolved means the handle's own domain and the DID
	// directory answered and pointed at a third-party server.
	ResolutionSourceResolved ResolutionSource = "resolved"
)

// Resolution is the outcome of locating the personal data server that hosts a
// handle. It always carries a usable PDSURL; DID is empty when resolution fell
// back to the default network.
type Resolution struct {
	PDSURL string           // Base URL of the personal data server to talk to.
	DID    string           // Decentralized identifier, when discovered during resolution.
	Source ResolutionSource // Whether PDSURL came from real resolution or the default fallback.
}

// OAuthAttempt is one in-flight authorization round-trip. It is created when a
// user starts connecting a handle and destroyed when the provider redirects
// back (or when it expires unconsumed).
type OAuthAttempt struct {
	ID           uuid.UUID // The unique ID for this attempt record.
	UserID       uuid.UUID // The account that initiated the connection.
	StateToken   string    // Unguessable token round-tripped through the provider's state parameter.
	Handle       string    // The handle the user typed, kept for re-resolution on callback.
	CodeVerifier string    // PKCE verifier generated for this attempt; never leaves the server.
	ExpiresAt    time.Time // After this instant the attempt can no longer be redeemed.
	CreatedAt    time.Time // Timestamp of when the user started the flow.
}

// Expired reports whether the attempt can no longer be redeemed at the given instant.
func (a *OAuthAttempt) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// AtprotoSession is an established link between a local account and an AT
// Protocol identity. At most one exists per user; reconnecting replaces it.
// Token fields hold plaintext only in memory, persistence encrypts them.
type AtprotoSession struct {
	ID           uuid.UUID // The unique ID for this session record.
	UserID       uuid.UUID // The local account this connection belongs to.
	DID          string    // The decentralized identifier of the connected network account.
	Handle       string    // The handle that was connected, kept for display.
	PDSURL       string    // Base URL of the personal data server hosting the account's repo.
	AccessToken  string    // Bearer token for authenticated calls to the PDS.
	RefreshToken string    // Long-lived token for future renewal; may be empty.
	ConnectedAt  time.Time // Timestamp of when the authorization completed.
}

// ConnectionStatus is the externally visible summary of a user's network link.
// It never carries token material.
type ConnectionStatus struct {
	Connected   bool       // Whether an active connection exists.
	Handle      string     // Connected handle, empty when not connected.
	DID         string     // Connected identifier, empty when not connected.
	PDSURL      string     // Personal data server location, empty when not connected.
	ConnectedAt *time.Time // When the link was established, nil when not connected.
}
