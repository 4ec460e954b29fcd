// Package atproto implements the outbound protocol surface of the service:
// handle resolution, proof-key material, and calls against personal data servers.
package atproto

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dreamtree/config"
	"dreamtree/internal/domain/entity"
	"dreamtree/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// pdsServiceType marks the personal data server entry in a DID document.
	pdsServiceType = "AtprotoPersonalDataServer"

	// maxWellKnownBody bounds the handle endpoint response; identifiers are short.
	maxWellKnownBody = 512
)

// identityResolver implements service.IdentityResolver over the handle
// well-known endpoint and the DID directory.
type identityResolver struct {
	defaultPDS   string
	handleSuffix string
	plcDirectory string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewIdentityResolver creates the production resolver.
func NewIdentityResolver(cfg *config.Config, logger *slog.Logger) service.IdentityResolver {
	return &identityResolver{
		defaultPDS:   cfg.Atproto.DefaultPDS,
		handleSuffix: cfg.Atproto.HandleSuffix,
		plcDirectory: strings.TrimSuffix(cfg.Atproto.PLCDirectory, "/"),
		httpClient:   &http.Client{Timeout: cfg.Atproto.HTTPTimeout},
		logger:       logger,
	}
}

// Resolve maps a handle to its personal data server. Resolution degrades to
// the default network location on any failure, so it never returns an error.
func (r *identityResolver) Resolve(ctx context.Context, handle string) entity.Resolution {
	handle = normalizeHandle(handle)

	fallback := entity.Resolution{
		PDSURL: r.defaultPDS,
		Source: entity.ResolutionSourceDefault,
	}

	// Handles on the default network need no discovery.
	if handle == "" || strings.HasSuffix(handle, r.handleSuffix) {
		return fallback
	}

	did, err := r.lookupWellKnownDID(ctx, handle)
	if err != nil {
		r.logger.Debug("handle identifier lookup failed, using default network",
			slog.String("handle", handle),
			slog.Any("error", err),
		)

		return fallback
	}

	endpoint, err := r.lookupPDSEndpoint(ctx, did)
	if err != nil {
		r.logger.Debug("identifier document lookup failed, using default network",
			slog.String("handle", handle),
			slog.String("did", did),
			slog.Any("error", err),
		)

		return fallback
	}

	return entity.Resolution{
		PDSURL: endpoint,
		DID:    did,
		Source: entity.ResolutionSourceResolved,
	}
}

// normalizeHandle strips the conventional decorations users paste in.
func normalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")

	return strings.ToLower(handle)
}

// lookupWellKnownDID asks the handle's own domain which identifier it claims.
func (r *identityResolver) lookupWellKnownDID(ctx context.Context, handle string) (string, error) {
	wellKnownURL := "https://" + handle + "/.well-known/atproto-did"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnownURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create well-known request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "well-known request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("well-known request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWellKnownBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to read well-known response")
	}

	did := strings.TrimSpace(string(body))
	if !strings.HasPrefix(did, "did:") {
		return "", errors.Errorf("well-known response is not an identifier: %q", did)
	}

	return did, nil
}

// didDocument is the slice of a directory document this service reads.
type didDocument struct {
	Service []struct {
		ID              string `json:"id"`
		Type            string `json:"type"`
		ServiceEndpoint string `json:"serviceEndpoint"`
	} `json:"service"`
}

// lookupPDSEndpoint fetches the identifier's document from the directory and
// extracts the personal data server it names.
func (r *identityResolver) lookupPDSEndpoint(ctx context.Context, did string) (string, error) {
	docURL := r.plcDirectory + "/" + url.PathEscape(did)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create directory request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "directory request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("directory request returned status %d", resp.StatusCode)
	}

	var doc didDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", errors.Wrap(err, "failed to decode identifier document")
	}

	for _, svc := range doc.Service {
		if svc.Type != pdsServiceType {
			continue
		}

		endpoint, err := url.Parse(svc.ServiceEndpoint)
		if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
			return "", errors.Errorf("identifier document names an invalid server endpoint: %q", svc.ServiceEndpoint)
		}

		return strings.TrimSuffix(svc.ServiceEndpoint, "/"), nil
	}

	return "", errors.Errorf("identifier document has no %s service", pdsServiceType)
}
