package atproto

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"dreamtree/config"
	"dreamtree/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc lets tests answer outbound requests without a listener.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestResolver(rt http.RoundTripper) *identityResolver {
	return &identityResolver{
		defaultPDS:   "https://bsky.social",
		handleSuffix: ".bsky.social",
		plcDirectory: "https://plc.directory",
		httpClient:   &http.Client{Transport: rt},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewIdentityResolver_TrimsDirectorySlash(t *testing.T) {
	cfg := &config.Config{
		Atproto: &config.AtprotoConfig{
			DefaultPDS:   "https://bsky.social",
			HandleSuffix: ".bsky.social",
			PLCDirectory: "https://plc.directory/",
			HTTPTimeout:  5 * time.Second,
		},
	}

	resolver, ok := NewIdentityResolver(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*identityResolver)
	require.True(t, ok)

	assert.Equal(t, "https://plc.directory", resolver.plcDirectory)
	assert.Equal(t, "https://bsky.social", resolver.defaultPDS)
}

func TestIdentityResolver_Resolve_DefaultNetwork(t *testing.T) {
	tests := []struct {
		name   string
		handle string
	}{
		{name: "default suffix", handle: "alice.bsky.social"},
		{name: "decorated handle", handle: "  @Alice.Bsky.Social  "},
		{name: "empty handle", handle: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Handles on the default network must resolve locally.
			rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				t.Errorf("unexpected outbound request to %s", req.URL)

				return nil, errors.New("unexpected request")
			})

			result := newTestResolver(rt).Resolve(context.Background(), tt.handle)

			assert.Equal(t, "https://bsky.social", result.PDSURL)
			assert.Empty(t, result.DID)
			assert.Equal(t, entity.ResolutionSourceDefault, result.Source)
		})
	}
}

func TestIdentityResolver_Resolve_ThirdPartyHost(t *testing.T) {
	didDoc := `{
		"id": "did:plc:abc123",
		"service": [
			{"id": "#other", "type": "SomethingElse", "serviceEndpoint": "https://ignored.example.com"},
			{"id": "#atproto_pds", "type": "AtprotoPersonalDataServer", "serviceEndpoint": "https://pds.example.com/"}
		]
	}`

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		switch {
		case req.URL.Host == "alice.example.com" && req.URL.Path == "/.well-known/atproto-did":
			return textResponse(http.StatusOK, "did:plc:abc123\n"), nil
		case req.URL.Host == "plc.directory" && req.URL.Path == "/did:plc:abc123":
			return textResponse(http.StatusOK, didDoc), nil
		default:
			return nil, errors.Errorf("unexpected request: %s", req.URL)
		}
	})

	result := newTestResolver(rt).Resolve(context.Background(), "@Alice.Example.com")

	assert.Equal(t, "https://pds.example.com", result.PDSURL, "endpoint keeps no trailing slash")
	assert.Equal(t, "did:plc:abc123", result.DID)
	assert.Equal(t, entity.ResolutionSourceResolved, result.Source)
}

func TestIdentityResolver_Resolve_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		rt   roundTripperFunc
	}{
		{
			name: "well-known unreachable",
			rt: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "well-known not found",
			rt: func(_ *http.Request) (*http.Response, error) {
				return textResponse(http.StatusNotFound, ""), nil
			},
		},
		{
			name: "well-known body is not an identifier",
			rt: func(_ *http.Request) (*http.Response, error) {
				return textResponse(http.StatusOK, "<html>parked domain</html>"), nil
			},
		},
		{
			name: "directory has no data server entry",
			rt: func(req *http.Request) (*http.Response, error) {
				if req.URL.Path == "/.well-known/atproto-did" {
					return textResponse(http.StatusOK, "did:plc:abc123"), nil
				}

				return textResponse(http.StatusOK, `{"service": []}`), nil
			},
		},
		{
			name: "directory names an invalid endpoint",
			rt: func(req *http.Request) (*http.Response, error) {
				if req.URL.Path == "/.well-known/atproto-did" {
					return textResponse(http.StatusOK, "did:plc:abc123"), nil
				}

				doc := `{"service": [{"id": "#atproto_pds", "type": "AtprotoPersonalDataServer", "serviceEndpoint": "not a url"}]}`

				return textResponse(http.StatusOK, doc), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestResolver(tt.rt).Resolve(context.Background(), "alice.example.com")

			assert.Equal(t, "https://bsky.social", result.PDSURL)
			assert.Empty(t, result.DID)
			assert.Equal(t, entity.ResolutionSourceDefault, result.Source)
		})
	}
}

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain handle", input: "alice.bsky.social", expected: "alice.bsky.social"},
		{name: "leading at sign", input: "@alice.bsky.social", expected: "alice.bsky.social"},
		{name: "mixed case", input: "Alice.Example.COM", expected: "alice.example.com"},
		{name: "surrounding whitespace", input: "  alice.bsky.social\n", expected: "alice.bsky.social"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeHandle(tt.input))
		})
	}
}
