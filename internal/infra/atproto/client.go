package atproto

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dreamtree/config"
	"dreamtree/internal/domain/service"

	"github.com/pkg/errors"
)

// Personal data server paths used by the client.
const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"
	putRecordPath = "/xrpc/com.atproto.repo.putRecord"
)

// client implements service.AtprotoClient against arbitrary personal data
// servers; the server base URL is chosen per call by resolution.
type client struct {
	clientID    string
	redirectURI string
	scope       string
	httpClient  *http.Client
}

// NewClient creates the production personal data server client.
func NewClient(cfg *config.Config) service.AtprotoClient {
	return &client{
		clientID:    cfg.Atproto.ClientMetadataURL(),
		redirectURI: cfg.Atproto.CallbackURL(),
		scope:       cfg.Atproto.Scope,
		httpClient:  &http.Client{Timeout: cfg.Atproto.HTTPTimeout},
	}
}

// BuildAuthorizationURL constructs the server's authorization URL for one attempt.
func (c *client) BuildAuthorizationURL(pdsURL, state, challenge string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("scope", c.scope)
	params.Set("state", state)
	params.Set("code_challenge", challenge)
	params.Set("code_challenge_method", "S256")

	return strings.TrimSuffix(pdsURL, "/") + authorizePath + "?" + params.Encode()
}

// ExchangeCode redeems an authorization code at the server's token endpoint.
func (c *client) ExchangeCode(ctx context.Context, pdsURL, code, verifier string) (*service.TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", c.redirectURI)
	data.Set("client_id", c.clientID)
	data.Set("code_verifier", verifier)

	endpoint := strings.TrimSuffix(pdsURL, "/") + tokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse service.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	if tokenResponse.AccessToken == "" {
		return nil, errors.New("token response has no access token")
	}

	return &tokenResponse, nil
}

// putRecordRequest is the body of a repo.putRecord call.
type putRecordRequest struct {
	Repo       string               `json:"repo"`
	Collection string               `json:"collection"`
	RKey       string               `json:"rkey"`
	Validate   bool                 `json:"validate"` // Custom lexicon, servers must not schema-check it.
	Record     *service.SkillRecord `json:"record"`
}

// PutRecord creates or replaces the record at (did, collection, rkey) in the
// account's repo. The same key always lands on the same record, so re-running
// a sync overwrites instead of duplicating.
func (c *client) PutRecord(ctx context.Context, pdsURL, accessToken, did, collection, rkey string, record *service.SkillRecord) error {
	payload := putRecordRequest{
		Repo:       did,
		Collection: collection,
		RKey:       rkey,
		Record:     record,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}

	endpoint := strings.TrimSuffix(pdsURL, "/") + putRecordPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create record request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "record request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return errors.Errorf("record write failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
