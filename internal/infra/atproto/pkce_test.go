package atproto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Code verifiers may only use the unreserved URI characters (RFC 7636 §4.1).
var verifierCharset = regexp.MustCompile(`^[A-Za-z0-9\-._~]+$`)

func TestPKCEService_GenerateVerifier(t *testing.T) {
	service := NewPKCEService()

	verifier, err := service.GenerateVerifier()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(verifier), 43)
	assert.LessOrEqual(t, len(verifier), 128)
	assert.Regexp(t, verifierCharset, verifier)
}

func TestPKCEService_GenerateVerifier_Unique(t *testing.T) {
	service := NewPKCEService()

	first, err := service.GenerateVerifier()
	require.NoError(t, err)

	second, err := service.GenerateVerifier()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPKCEService_DeriveChallenge(t *testing.T) {
	service := NewPKCEService()

	// Known vector from RFC 7636 appendix B.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	challenge := service.DeriveChallenge(verifier)

	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", challenge)
}

func TestPKCEService_DeriveChallenge_Properties(t *testing.T) {
	service := NewPKCEService()

	verifier, err := service.GenerateVerifier()
	require.NoError(t, err)

	challenge := service.DeriveChallenge(verifier)

	// The challenge is a digest, never the verifier itself.
	assert.NotEqual(t, verifier, challenge)
	assert.Regexp(t, verifierCharset, challenge)

	// Deriving twice from the same verifier must agree, or the
	// authorization server would reject the exchange.
	assert.Equal(t, challenge, service.DeriveChallenge(verifier))
}

func TestPKCEService_GenerateState(t *testing.T) {
	service := NewPKCEService()

	state, err := service.GenerateState()
	require.NoError(t, err)

	assert.Len(t, state, 64)
	assert.Regexp(t, `^[0-9a-f]+$`, state)

	second, err := service.GenerateState()
	require.NoError(t, err)
	assert.NotEqual(t, state, second)
}
