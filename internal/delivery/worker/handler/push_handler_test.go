package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dreamtree/config"
	deliverycontext "dreamtree/internal/delivery/context"
	"dreamtree/internal/domain/constants"
	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/service"
	mockUC "dreamtree/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockSkillSyncUsecase) {
	syncUC := mockUC.NewMockSkillSyncUsecase(t)
	handler := &PushHandler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		syncUC: syncUC,
	}

	return handler, syncUC
}

// pushBody wraps a sync event the way Pub/Sub push delivery does: the event
// JSON base64-encoded inside the message envelope.
func pushBody(t *testing.T, event *service.SyncEvent, attributes map[string]string) *bytes.Reader {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "message-1"
	msg.Subscription = "projects/dreamtree/subscriptions/skill-sync"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func TestPushHandler_HandlePush_Integration(t *testing.T) {
	handler, syncUC := createTestPushHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(&entity.SyncResult{Attempted: 1, Succeeded: 1}, nil)

	event := &service.SyncEvent{
		RequestID: "req-123",
		UserID:    userID.String(),
		Trigger:   service.SyncTriggerConnect,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDPriority(t *testing.T) {
	tests := []struct {
		name          string
		attributes    map[string]string
		eventID       string
		wantRequestID string
	}{
		{
			name:          "message attributes win",
			attributes:    map[string]string{"request_id": "from-attributes"},
			eventID:       "from-event",
			wantRequestID: "from-attributes",
		},
		{
			name:          "event field is the fallback",
			attributes:    nil,
			eventID:       "from-event",
			wantRequestID: "from-event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, syncUC := createTestPushHandler(t)
			userID := uuid.New()

			var capturedRequestID string

			syncUC.EXPECT().
				SyncSkills(mock.Anything, userID).
				RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.SyncResult, error) {
					capturedRequestID = deliverycontext.GetRequestIDFromContext(ctx)

					return &entity.SyncResult{Attempted: 1, Succeeded: 1}, nil
				})

			event := &service.SyncEvent{
				RequestID: tt.eventID,
				UserID:    userID.String(),
				Trigger:   service.SyncTriggerManual,
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, tt.attributes))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.HandlePush(c)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantRequestID, capturedRequestID)
		})
	}
}

func TestPushHandler_HandlePush_GeneratesRequestID(t *testing.T) {
	handler, syncUC := createTestPushHandler(t)
	userID := uuid.New()

	var capturedRequestID string

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.SyncResult, error) {
			capturedRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return &entity.SyncResult{}, nil
		})

	event := &service.SyncEvent{
		UserID:  userID.String(),
		Trigger: service.SyncTriggerManual,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = uuid.Parse(capturedRequestID)
	assert.NoError(t, err, "fallback request_id should be a generated UUID")
}

func TestPushHandler_HandlePush_RejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed envelope",
			body: "not json",
		},
		{
			name: "data is not base64",
			body: `{"message":{"data":"%%%","messageId":"message-1"}}`,
		},
		{
			name: "data is not an event",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `","messageId":"message-1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := createTestPushHandler(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/worker/push", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.HandlePush(c)
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_DropsUnparseableUser(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	event := &service.SyncEvent{
		UserID:  "not-a-uuid",
		Trigger: service.SyncTriggerConnect,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	// A garbage user ID will never parse on retry either, so the message is acked.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_DropsDisconnectedUser(t *testing.T) {
	handler, syncUC := createTestPushHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(nil, domainerrors.ErrNotConnected.WrapMessage("failed to look up session"))

	event := &service.SyncEvent{
		UserID:  userID.String(),
		Trigger: service.SyncTriggerConnect,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetriesTransientFailure(t *testing.T) {
	handler, syncUC := createTestPushHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(nil, errors.New("personal data server unreachable"))

	event := &service.SyncEvent{
		UserID:  userID.String(),
		Trigger: service.SyncTriggerManual,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_RecordFailuresAreFinal(t *testing.T) {
	handler, syncUC := createTestPushHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(&entity.SyncResult{
			Attempted: 3,
			Succeeded: 1,
			Failed:    2,
			Failures: []entity.SyncFailure{
				{SkillID: uuid.New(), Reason: "record write failed with status 502"},
				{SkillID: uuid.New(), Reason: "record write failed with status 502"},
			},
		}, nil)

	event := &service.SyncEvent{
		UserID:  userID.String(),
		Trigger: service.SyncTriggerConnect,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)

	// Per-record failures will not improve on redelivery; the ack stops the retry loop.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RequiresValidToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := createTestPushHandler(t)
			handler.verifyPushAuth = true

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/worker/push", pushBody(t, &service.SyncEvent{}, nil))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.HandlePush(c)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	workerConfig := func(provider, env string) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Env = env
		if provider != "" {
			cfg.PubSub = &config.PubSubConfig{Provider: provider}
		}

		return cfg
	}

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{
			name: "google provider in production",
			cfg:  workerConfig(constants.PubSubProviderGoogle, constants.EnvProduction),
			want: true,
		},
		{
			name: "google provider in develop",
			cfg:  workerConfig(constants.PubSubProviderGoogle, constants.EnvDevelop),
			want: false,
		},
		{
			name: "local provider in production",
			cfg:  workerConfig(constants.PubSubProviderLocal, constants.EnvProduction),
			want: false,
		},
		{
			name: "pubsub not configured",
			cfg:  workerConfig("", constants.EnvProduction),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPushHandler(PushHandlerParams{
				Config: tt.cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
				SyncUC: mockUC.NewMockSkillSyncUsecase(t),
			})

			assert.Equal(t, tt.want, handler.verifyPushAuth)
		})
	}
}
