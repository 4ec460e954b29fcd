// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dreamtree/config"
	deliverycontext "dreamtree/internal/delivery/context"
	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/domain/service"
	"dreamtree/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultStateTTL bounds how long an authorization attempt stays redeemable
// when no TTL is configured.
const defaultStateTTL = 10 * time.Minute

// atprotoService implements the AtprotoUsecase interface.
type atprotoService struct {
	txManager   repository.TransactionManager
	resolver    service.IdentityResolver
	pkce        service.PKCEService
	client      service.AtprotoClient
	tokenParser service.AccessTokenParser
	publisher   service.EventPublisher
	stateTTL    time.Duration
	logger      *slog.Logger
}

// AtprotoServiceParams holds dependencies for atprotoService, injected by Fx.
type AtprotoServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Resolver    service.IdentityResolver
	PKCE        service.PKCEService
	Client      service.AtprotoClient
	TokenParser service.AccessTokenParser
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAtprotoService is the constructor for atprotoService.
func NewAtprotoService(params AtprotoServiceParams) usecase.AtprotoUsecase {
	stateTTL := defaultStateTTL
	if params.Config != nil && params.Config.Atproto != nil && params.Config.Atproto.StateTTL > 0 {
		stateTTL = params.Config.Atproto.StateTTL
	}

	return &atprotoService{
		txManager:   params.TxManager,
		resolver:    params.Resolver,
		pkce:        params.PKCE,
		client:      params.Client,
		tokenParser: params.TokenParser,
		publisher:   params.Publisher,
		stateTTL:    stateTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *atprotoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Connect starts an authorization flow for the given handle.
func (srv *atprotoService) Connect(ctx context.Context, userID uuid.UUID, input usecase.ConnectInput) (*usecase.ConnectOutput, error) {
	handle := strings.ToLower(strings.TrimSpace(input.Handle))
	handle = strings.TrimPrefix(handle, "@")
	if handle == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "handle is required")
	}

	srv.log(ctx).Debug("Starting connection attempt", slog.Any("user_id", userID), slog.String("handle", handle))

	// 1. Locate the personal data server. Resolution degrades to the default
	// network instead of failing, so this cannot abort the flow.
	resolution := srv.resolver.Resolve(ctx, handle)

	// 2. Generate the verifier/challenge pair and the state token.
	verifier, err := srv.pkce.GenerateVerifier()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code verifier")
	}

	challenge := srv.pkce.DeriveChallenge(verifier)

	state, err := srv.pkce.GenerateState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate state token")
	}

	// 3. Persist the attempt before handing out the authorization URL. Until
	// this row exists the flow has no side effects anywhere.
	attempt := &entity.OAuthAttempt{
		UserID:       userID,
		StateToken:   state,
		Handle:       handle,
		CodeVerifier: verifier,
		ExpiresAt:    time.Now().Add(srv.stateTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OAuthStateRepo().CreateAttempt(ctx, attempt)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist connection attempt", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist connection attempt")
	}

	// Attempts whose callback never arrives pile up; sweep them opportunistically.
	srv.sweepExpiredAttempts(ctx)

	authURL := srv.client.BuildAuthorizationURL(resolution.PDSURL, state, challenge)

	srv.log(ctx).Info("Connection attempt created",
		slog.Any("user_id", userID),
		slog.String("handle", handle),
		slog.String("pds_url", resolution.PDSURL),
		slog.String("source", string(resolution.Source)))

	return &usecase.ConnectOutput{AuthURL: authURL, PDSURL: resolution.PDSURL}, nil
}

// HandleCallback completes the authorization flow with the provider's redirect parameters.
func (srv *atprotoService) HandleCallback(ctx context.Context, input usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	// 1. A provider error means the user denied access or the request was
	// rejected upstream. The attempt row stays untouched; its TTL reclaims it.
	if input.ErrorCode != "" {
		srv.log(ctx).Info("Authorization rejected by provider",
			slog.String("error", input.ErrorCode),
			slog.String("description", input.ErrorDescription))

		return nil, errors.Wrapf(domainerrors.ErrAuthorizationDenied, "provider returned %q", input.ErrorCode)
	}

	if input.Code == "" || input.State == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "code and state are required")
	}

	// 2. Consume the attempt. Exactly one callback can redeem a state token;
	// replays and expired attempts both fail here.
	var attempt *entity.OAuthAttempt

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		attempt, err = repoFactory.OAuthStateRepo().ConsumeAttempt(ctx, input.State)
		if err != nil {
			if errors.Is(err, repository.ErrOAuthStateNotFound) || errors.Is(err, repository.ErrOAuthStateExpired) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredState, "state token is unknown or expired")
			}

			return errors.Wrap(err, "failed to consume connection attempt")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Resolve the handle again; the attempt stores only the handle and the
	// account may have moved servers since the flow started.
	resolution := srv.resolver.Resolve(ctx, attempt.Handle)

	// 4. Exchange the authorization code for tokens.
	tokenResp, err := srv.client.ExchangeCode(ctx, resolution.PDSURL, input.Code, attempt.CodeVerifier)
	if err != nil {
		srv.log(ctx).Error("Token exchange failed",
			slog.String("pds_url", resolution.PDSURL),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenExchangeFailed, "authorization server rejected the code exchange")
	}

	// 5. The subject claim identifies whose tokens these are. The token is
	// authoritative here, not the resolution result.
	did, err := srv.tokenParser.Subject(tokenResp.AccessToken)
	if err != nil {
		srv.log(ctx).Error("Access token carries no usable subject", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMalformedToken, "access token carries no subject")
	}

	// 6. Persist the session. An existing connection for this user is replaced.
	session := &entity.AtprotoSession{
		UserID:       attempt.UserID,
		DID:          did,
		Handle:       attempt.Handle,
		PDSURL:       resolution.PDSURL,
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ConnectedAt:  time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AtprotoSessionRepo().UpsertSession(ctx, session)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("user_id", attempt.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	// The connection is committed; a lost event only delays the first sync.
	srv.publishSyncEvent(ctx, attempt.UserID, service.SyncTriggerConnect)

	srv.log(ctx).Info("Account connected",
		slog.Any("user_id", attempt.UserID),
		slog.String("handle", attempt.Handle),
		slog.String("did", did))

	return &usecase.CallbackOutput{UserID: attempt.UserID, Handle: attempt.Handle, DID: did}, nil
}

// Status reports the connection state for the user.
func (srv *atprotoService) Status(ctx context.Context, userID uuid.UUID) (*entity.ConnectionStatus, error) {
	var session *entity.AtprotoSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		session, err = repoFactory.AtprotoSessionRepo().FindSessionByUserID(ctx, userID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrAtprotoSessionNotFound) {
			return &entity.ConnectionStatus{Connected: false}, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return &entity.ConnectionStatus{
		Connected:   true,
		Handle:      session.Handle,
		DID:         session.DID,
		PDSURL:      session.PDSURL,
		ConnectedAt: &session.ConnectedAt,
	}, nil
}

// Disconnect removes the stored session for the user.
func (srv *atprotoService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AtprotoSessionRepo().DeleteSessionByUserID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrAtprotoSessionNotFound) {
				return errors.Wrap(domainerrors.ErrNotConnected, "no linked account to disconnect")
			}

			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account disconnected", slog.Any("user_id", userID))

	return nil
}

// CleanupExpiredAttempts deletes authorization attempts past their TTL.
func (srv *atprotoService) CleanupExpiredAttempts(ctx context.Context) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		removed, err = repoFactory.OAuthStateRepo().DeleteExpiredAttempts(ctx)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired attempts")
	}

	return removed, nil
}

// sweepExpiredAttempts runs the cleanup as housekeeping. Failures are logged
// and swallowed so they never surface to the caller.
func (srv *atprotoService) sweepExpiredAttempts(ctx context.Context) {
	removed, err := srv.CleanupExpiredAttempts(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to sweep expired attempts", slog.Any("error", err))

		return
	}

	if removed > 0 {
		srv.log(ctx).Debug("Swept expired attempts", slog.Int64("removed", removed))
	}
}

// publishSyncEvent requests a background skill sync for the user. Publishing
// is best effort: the session is already committed and stays committed when
// the broker is down.
func (srv *atprotoService) publishSyncEvent(ctx context.Context, userID uuid.UUID, trigger string) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	event := &service.SyncEvent{
		RequestID:   requestID,
		UserID:      userID.String(),
		Trigger:     trigger,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishSyncEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish sync event",
			slog.Any("user_id", userID),
			slog.Any("error", err))
	}
}
