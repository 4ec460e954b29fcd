package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dreamtree/config"
	"dreamtree/internal/delivery/api/middleware"
	"dreamtree/internal/delivery/api/response"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/service"
	"dreamtree/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AtprotoHandlerParams holds dependencies for AtprotoHandler, injected by Fx.
type AtprotoHandlerParams struct {
	fx.In

	AtprotoUC usecase.AtprotoUsecase
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// AtprotoHandler holds dependencies for account connection handlers
type AtprotoHandler struct {
	atprotoUC usecase.AtprotoUsecase
	qrcodeSvc service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAtprotoHandler is the constructor for AtprotoHandler
func NewAtprotoHandler(params AtprotoHandlerParams) *AtprotoHandler {
	return &AtprotoHandler{
		atprotoUC: params.AtprotoUC,
		qrcodeSvc: params.QRCodeSvc,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// ConnectRequest represents the request body for starting a connection
type ConnectRequest struct {
	Handle string `json:"handle" validate:"required,min=1,max=253"`
}

// ConnectResponse carries what the frontend needs to send the user off to authorize
type ConnectResponse struct {
	AuthURL string `json:"auth_url"`
	PDSURL  string `json:"pds_url"`
}

// StatusResponse mirrors the connection status with wire-level field names
type StatusResponse struct {
	Connected   bool       `json:"connected"`
	Handle      string     `json:"handle,omitempty"`
	DID         string     `json:"did,omitempty"`
	PDSURL      string     `json:"pds_url,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

// Connect handles starting an authorization flow for a handle
func (h *AtprotoHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConnectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.atprotoUC.Connect(c.Request().Context(), userID, usecase.ConnectInput{Handle: req.Handle})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectResponse{
		AuthURL: out.AuthURL,
		PDSURL:  out.PDSURL,
	})
}

// ConnectQR starts an authorization flow and answers with the authorization
// URL rendered as a PNG QR code, for approving the connection on another device
func (h *AtprotoHandler) ConnectQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	handle := c.QueryParam("handle")
	if strings.TrimSpace(handle) == "" {
		return response.BadRequest(c, "INVALID_INPUT", "handle query parameter is required")
	}

	out, err := h.atprotoUC.Connect(c.Request().Context(), userID, usecase.ConnectInput{Handle: handle})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.GenerateConnectQR(out.AuthURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Callback handles the redirect back from the authorization server.
// The browser lands here mid-flow, so the answer is always a redirect to the
// profile page; failures ride along as an atp_error query parameter.
func (h *AtprotoHandler) Callback(c echo.Context) error {
	input := usecase.CallbackInput{
		Code:             c.QueryParam("code"),
		State:            c.QueryParam("state"),
		ErrorCode:        c.QueryParam("error"),
		ErrorDescription: c.QueryParam("error_description"),
	}

	out, err := h.atprotoUC.HandleCallback(c.Request().Context(), input)
	if err != nil {
		reason := callbackFailureReason(err)
		h.logger.Warn("Connection callback failed",
			slog.String("reason", reason),
			slog.Any("error", err))

		return c.Redirect(http.StatusFound, h.profileRedirect(url.Values{"atp_error": []string{reason}}))
	}

	h.logger.Info("Connection callback completed",
		slog.Any("user_id", out.UserID),
		slog.String("handle", out.Handle))

	return c.Redirect(http.StatusFound, h.profileRedirect(url.Values{"atp": []string{"connected"}}))
}

// Status reports whether the caller has a linked account
func (h *AtprotoHandler) Status(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.atprotoUC.Status(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StatusResponse{
		Connected:   status.Connected,
		Handle:      status.Handle,
		DID:         status.DID,
		PDSURL:      status.PDSURL,
		ConnectedAt: status.ConnectedAt,
	})
}

// Disconnect removes the caller's stored connection
func (h *AtprotoHandler) Disconnect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.atprotoUC.Disconnect(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account disconnected successfully"})
}

// ClientMetadata serves the OAuth client metadata document. Authorization
// servers fetch it to learn this client's identity and redirect URI, so the
// body is bare JSON rather than the wrapped API envelope.
func (h *AtprotoHandler) ClientMetadata(c echo.Context) error {
	atp := h.cfg.Atproto

	return c.JSON(http.StatusOK, map[string]any{
		"client_id":                  atp.ClientMetadataURL(),
		"client_name":                h.cfg.Env.ServiceName,
		"client_uri":                 atp.PublicURL,
		"logo_uri":                   strings.TrimSuffix(atp.PublicURL, "/") + "/logo.png",
		"redirect_uris":              []string{atp.CallbackURL()},
		"scope":                      atp.Scope,
		"grant_types":                []string{"authorization_code", "refresh_token"},
		"response_types":             []string{"code"},
		"token_endpoint_auth_method": "none",
		"application_type":           "web",
		"dpop_bound_access_tokens":   true,
	})
}

// profileRedirect builds the frontend URL the callback sends the browser to.
func (h *AtprotoHandler) profileRedirect(params url.Values) string {
	base := strings.TrimSuffix(h.cfg.Atproto.ProfileRedirect, "/")
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	return base + sep + params.Encode()
}

// callbackFailureReason maps a callback error to the atp_error reason the
// frontend knows how to display.
func callbackFailureReason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrAuthorizationDenied):
		return "authorization_denied"
	case errors.Is(err, domainerrors.ErrInvalidOrExpiredState):
		return "invalid_state"
	case errors.Is(err, domainerrors.ErrTokenExchangeFailed):
		return "token_exchange_failed"
	case errors.Is(err, domainerrors.ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return "invalid_request"
	default:
		return "connection_failed"
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
