package atproto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"dreamtree/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// verifierByteLen is the entropy behind a code verifier. Its base64url
	// encoding is 86 characters, inside the 43..128 range authorization
	// servers accept.
	verifierByteLen = 64

	// stateByteLen is the entropy behind a state token.
	stateByteLen = 32
)

// pkceService implements service.PKCEService with crypto/rand material.
type pkceService struct{}

// NewPKCEService creates the generator for proof-key and state material.
func NewPKCEService() service.PKCEService {
	return &pkceService{}
}

// GenerateVerifier returns a fresh code verifier. base64url output uses only
// the unreserved characters allowed in a verifier.
func (s *pkceService) GenerateVerifier() (string, error) {
	buf := make([]byte, verifierByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate code verifier")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DeriveChallenge computes the S256 challenge: base64url without padding over
// the verifier's SHA-256 digest.
func (s *pkceService) DeriveChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// GenerateState returns a fresh unguessable state token.
func (s *pkceService) GenerateState() (string, error) {
	buf := make([]byte, stateByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate state token")
	}

	return hex.EncodeToString(buf), nil
}
