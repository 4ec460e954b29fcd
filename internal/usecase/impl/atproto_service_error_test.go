package impl

import (
	"context"
	"testing"
	"time"

	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/domain/service"
	mockRepo "dreamtree/internal/mocks/repository"
	"dreamtree/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAtprotoService_Connect_EmptyHandle(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name   string
		handle string
	}{
		{name: "empty", handle: ""},
		{name: "whitespace", handle: "   "},
		{name: "bare at sign", handle: "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Connect(ctx, userID, usecase.ConnectInput{Handle: tt.handle})

			assert.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestAtprotoService_Connect_VerifierError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.pkce.EXPECT().GenerateVerifier().Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Connect(ctx, userID, usecase.ConnectInput{Handle: "alice.bsky.social"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to generate code verifier")
}

func TestAtprotoService_Connect_StateError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.pkce.EXPECT().GenerateVerifier().Return("verifier", nil)
	fx.pkce.EXPECT().DeriveChallenge("verifier").Return("challenge")
	fx.pkce.EXPECT().GenerateState().Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Connect(ctx, userID, usecase.ConnectInput{Handle: "alice.bsky.social"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to generate state token")
}

func TestAtprotoService_Connect_PersistError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.pkce.EXPECT().GenerateVerifier().Return("verifier", nil)
	fx.pkce.EXPECT().DeriveChallenge("verifier").Return("challenge")
	fx.pkce.EXPECT().GenerateState().Return("state", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().
			CreateAttempt(ctx, mock.AnythingOfType("*entity.OAuthAttempt")).
			Return(errors.New("db error"))
	})

	output, err := fx.service.Connect(ctx, userID, usecase.ConnectInput{Handle: "alice.bsky.social"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to persist connection attempt")
}

func TestAtprotoService_HandleCallback_ProviderError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	// No transaction expectation: a denial must leave the attempt alone.
	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{
		ErrorCode:        "access_denied",
		ErrorDescription: "user rejected the request",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorizationDenied))
	assert.Contains(t, err.Error(), "access_denied")
}

func TestAtprotoService_HandleCallback_MissingParams(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CallbackInput
	}{
		{name: "missing code", input: usecase.CallbackInput{State: "state"}},
		{name: "missing state", input: usecase.CallbackInput{Code: "code"}},
		{name: "missing both", input: usecase.CallbackInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.HandleCallback(ctx, tt.input)

			assert.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestAtprotoService_HandleCallback_UnknownState(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "forged-state").Return(nil, repository.ErrOAuthStateNotFound)
	})

	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "forged-state"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredState))
}

func TestAtprotoService_HandleCallback_ExpiredState(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "stale-state").Return(nil, repository.ErrOAuthStateExpired)
	})

	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "stale-state"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredState))
}

func TestAtprotoService_HandleCallback_ConsumeError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "state").Return(nil, errors.New("db error"))
	})

	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "state"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredState))
	assert.Contains(t, err.Error(), "failed to consume connection attempt")
}

func TestAtprotoService_HandleCallback_ExchangeFails(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	attempt := &entity.OAuthAttempt{
		UserID:       uuid.New(),
		StateToken:   "state-token",
		Handle:       "alice.bsky.social",
		CodeVerifier: "verifier",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "state-token").Return(attempt, nil)
	})

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.client.EXPECT().
		ExchangeCode(ctx, "https://bsky.social", "code", "verifier").
		Return(nil, errors.New("server returned status 400"))

	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "state-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExchangeFailed))
}

func TestAtprotoService_HandleCallback_MalformedToken(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	attempt := &entity.OAuthAttempt{
		UserID:       uuid.New(),
		StateToken:   "state-token",
		Handle:       "alice.bsky.social",
		CodeVerifier: "verifier",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "state-token").Return(attempt, nil)
	})

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.client.EXPECT().
		ExchangeCode(ctx, "https://bsky.social", "code", "verifier").
		Return(&service.TokenResponse{AccessToken: "opaque-blob"}, nil)

	fx.tokenParser.EXPECT().Subject("opaque-blob").Return("", errors.New("failed to parse access token"))

	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "state-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken))
}

func TestAtprotoService_HandleCallback_PersistSessionError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	attempt := &entity.OAuthAttempt{
		UserID:       uuid.New(),
		StateToken:   "state-token",
		Handle:       "alice.bsky.social",
		CodeVerifier: "verifier",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().ConsumeAttempt(ctx, "state-token").Return(attempt, nil)
	})

	fx.resolver.EXPECT().
		Resolve(ctx, "alice.bsky.social").
		Return(entity.Resolution{PDSURL: "https://bsky.social", Source: entity.ResolutionSourceDefault})

	fx.client.EXPECT().
		ExchangeCode(ctx, "https://bsky.social", "code", "verifier").
		Return(&service.TokenResponse{AccessToken: "access-token"}, nil)

	fx.tokenParser.EXPECT().Subject("access-token").Return("did:plc:abc123", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockAtprotoSessionRepository(t)
		factory.EXPECT().AtprotoSessionRepo().Return(sessionRepo)
		sessionRepo.EXPECT().
			UpsertSession(ctx, mock.AnythingOfType("*entity.AtprotoSession")).
			Return(errors.New("db error"))
	})

	// No publish expectation: nothing may be announced for a failed persist.
	output, err := fx.service.HandleCallback(ctx, usecase.CallbackInput{Code: "code", State: "state-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to persist session")
}

func TestAtprotoService_Status_FindError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockAtprotoSessionRepository(t)
		factory.EXPECT().AtprotoSessionRepo().Return(sessionRepo)
		sessionRepo.EXPECT().FindSessionByUserID(ctx, userID).Return(nil, errors.New("db error"))
	})

	status, err := fx.service.Status(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, status)
	assert.Contains(t, err.Error(), "failed to load session")
}

func TestAtprotoService_Disconnect_NotConnected(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockAtprotoSessionRepository(t)
		factory.EXPECT().AtprotoSessionRepo().Return(sessionRepo)
		sessionRepo.EXPECT().DeleteSessionByUserID(ctx, userID).Return(repository.ErrAtprotoSessionNotFound)
	})

	err := fx.service.Disconnect(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotConnected))
}

func TestAtprotoService_Disconnect_DeleteError(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockAtprotoSessionRepository(t)
		factory.EXPECT().AtprotoSessionRepo().Return(sessionRepo)
		sessionRepo.EXPECT().DeleteSessionByUserID(ctx, userID).Return(errors.New("db error"))
	})

	err := fx.service.Disconnect(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete session")
}

func TestAtprotoService_CleanupExpiredAttempts_Error(t *testing.T) {
	fx := createTestAtprotoService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stateRepo := mockRepo.NewMockOAuthStateRepository(t)
		factory.EXPECT().OAuthStateRepo().Return(stateRepo)
		stateRepo.EXPECT().DeleteExpiredAttempts(ctx).Return(int64(0), errors.New("db error"))
	})

	removed, err := fx.service.CleanupExpiredAttempts(ctx)

	assert.Error(t, err)
	assert.Zero(t, removed)
	assert.Contains(t, err.Error(), "failed to delete expired attempts")
}
