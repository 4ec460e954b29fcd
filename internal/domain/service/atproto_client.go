package service

import (
	"context"
)

// TokenResponse carries the credentials returned by a personal data server's
// token endpoint after a successful authorization-code exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// SkillRecord is the wire shape of one skill as written into the user's
// network repo.
type SkillRecord struct {
	Type      string `json:"$type"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// AtprotoClient talks to personal data servers: it builds authorization URLs,
// redeems authorization codes, and writes records into a connected account's repo.
type AtprotoClient interface {
	// BuildAuthorizationURL constructs the server's authorization URL for one
	// attempt, embedding the state token and the S256 code challenge.
	BuildAuthorizationURL(pdsURL, state, challenge string) string

	// ExchangeCode redeems an authorization code at the server's token endpoint
	// using the PKCE verifier from the originating attempt.
	ExchangeCode(ctx context.Context, pdsURL, code, verifier string) (*TokenResponse, error)

	// PutRecord creates or replaces the record at (did, collection, rkey) in
	// the account's repo. Calling it again with the same key overwrites.
	PutRecord(ctx context.Context, pdsURL, accessToken, did, collection, rkey string, record *SkillRecord) error
}

// AccessTokenParser extracts claims from access tokens issued by personal data
// servers. Tokens are opaque credentials here; only the subject is read and
// signatures are not checked, verification belongs to the issuing server.
type AccessTokenParser interface {
	// Subject returns the token's subject claim, the account's decentralized
	// identifier.
	Subject(accessToken string) (string, error)
}
