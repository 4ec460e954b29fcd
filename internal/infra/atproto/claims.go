package atproto

import (
	"dreamtree/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// accessTokenParser implements service.AccessTokenParser with golang-jwt.
type accessTokenParser struct {
	parser *jwt.Parser
}

// NewAccessTokenParser creates a parser for server-issued access tokens.
func NewAccessTokenParser() service.AccessTokenParser {
	return &accessTokenParser{parser: jwt.NewParser()}
}

// Subject extracts the subject claim without verifying the signature. The
// token is the issuing server's own credential; this service only reads the
// account identifier it names.
func (p *accessTokenParser) Subject(accessToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := p.parser.ParseUnverified(accessToken, claims); err != nil {
		return "", errors.Wrap(err, "failed to parse access token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "failed to read subject claim")
	}
	if subject == "" {
		return "", errors.New("access token has no subject claim")
	}

	return subject, nil
}
