package service

// PKCEService generates the cryptographic material for one authorization
// attempt: the proof-key verifier/challenge pair and the state token that ties
// the provider redirect back to the attempt.
type PKCEService interface {
	// GenerateVerifier returns a fresh high-entropy code verifier using only
	// the unreserved characters the authorization server accepts.
	GenerateVerifier() (string, error)

	// DeriveChallenge computes the S256 code challenge for a verifier:
	// base64url without padding over the verifier's SHA-256 digest.
	DeriveChallenge(verifier string) string

	// GenerateState returns a fresh unguessable state token.
	GenerateState() (string, error)
}
