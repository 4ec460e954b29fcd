package atproto

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"dreamtree/config"
	"dreamtree/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() service.AtprotoClient {
	return NewClient(&config.Config{
		Atproto: &config.AtprotoConfig{
			PublicURL:   "https://api.dreamtree.app",
			Scope:       "atproto transition:generic",
			HTTPTimeout: 5 * time.Second,
		},
	})
}

func TestClient_BuildAuthorizationURL(t *testing.T) {
	client := newTestClient()

	result := client.BuildAuthorizationURL("https://bsky.social", "state123", "challenge456")

	expected := "https://bsky.social/oauth/authorize?" +
		"client_id=https%3A%2F%2Fapi.dreamtree.app%2Fatproto%2Fclient-metadata.json" +
		"&code_challenge=challenge456" +
		"&code_challenge_method=S256" +
		"&redirect_uri=https%3A%2F%2Fapi.dreamtree.app%2Fatproto%2Fcallback" +
		"&response_type=code" +
		"&scope=atproto+transition%3Ageneric" +
		"&state=state123"
	assert.Equal(t, expected, result)
}

func TestClient_BuildAuthorizationURL_TrimsServerSlash(t *testing.T) {
	client := newTestClient()

	result := client.BuildAuthorizationURL("https://pds.example.com/", "s", "c")

	parsed, err := url.Parse(result)
	require.NoError(t, err)

	assert.Equal(t, "pds.example.com", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "S256", parsed.Query().Get("code_challenge_method"))
}

func TestClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code123", r.PostForm.Get("code"))
		assert.Equal(t, "verifier456", r.PostForm.Get("code_verifier"))
		assert.Equal(t, "https://api.dreamtree.app/atproto/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "https://api.dreamtree.app/atproto/client-metadata.json", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-token",
			"refresh_token": "refresh-token",
			"token_type":    "DPoP",
			"expires_in":    3600,
			"scope":         "atproto",
		})
	}))
	defer server.Close()

	token, err := newTestClient().ExchangeCode(context.Background(), server.URL, "code123", "verifier456")

	require.NoError(t, err)
	assert.Equal(t, "access-token", token.AccessToken)
	assert.Equal(t, "refresh-token", token.RefreshToken)
	assert.Equal(t, "DPoP", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)
}

func TestClient_ExchangeCode_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	token, err := newTestClient().ExchangeCode(context.Background(), server.URL, "bad-code", "verifier")

	require.Error(t, err)
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_ExchangeCode_MissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"DPoP"}`))
	}))
	defer server.Close()

	token, err := newTestClient().ExchangeCode(context.Background(), server.URL, "code", "verifier")

	require.Error(t, err)
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "no access token")
}

func TestClient_PutRecord(t *testing.T) {
	var received putRecordRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/xrpc/com.atproto.repo.putRecord", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	record := &service.SkillRecord{
		Type:      "app.dreamtree.skill",
		Name:      "Woodworking",
		Category:  "craft",
		CreatedAt: "2025-06-01T00:00:00Z",
	}

	err := newTestClient().PutRecord(context.Background(), server.URL, "access-token",
		"did:plc:abc123", "app.dreamtree.skill", "rkey-1", record)

	require.NoError(t, err)
	assert.Equal(t, "did:plc:abc123", received.Repo)
	assert.Equal(t, "app.dreamtree.skill", received.Collection)
	assert.Equal(t, "rkey-1", received.RKey)
	assert.False(t, received.Validate)
	require.NotNil(t, received.Record)
	assert.Equal(t, "Woodworking", received.Record.Name)
}

func TestClient_PutRecord_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"ExpiredToken"}`))
	}))
	defer server.Close()

	err := newTestClient().PutRecord(context.Background(), server.URL, "stale-token",
		"did:plc:abc123", "app.dreamtree.skill", "rkey-1", &service.SkillRecord{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "ExpiredToken")
}
