package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dreamtree/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSyncEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-Id"))

		var msg PubSubPushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "projects/local/subscriptions/skill-sync-sub", msg.Subscription)
		assert.Equal(t, "req-123", msg.Message.Attributes["request_id"])
		assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", msg.Message.Attributes["user_id"])
		assert.Equal(t, service.SyncTriggerConnect, msg.Message.Attributes["trigger"])
		assert.NotEmpty(t, msg.Message.MessageID)
		assert.NotEmpty(t, msg.Message.PublishTime)

		payload, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		require.NoError(t, err)

		var event service.SyncEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", event.UserID)
		assert.Equal(t, service.SyncTriggerConnect, event.Trigger)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{
		RequestID:   "req-123",
		UserID:      "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Trigger:     service.SyncTriggerConnect,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
}

func TestLocalHTTPPublisher_OmitsEmptyRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Request-Id"))

		var msg PubSubPushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		_, ok := msg.Message.Attributes["request_id"]
		assert.False(t, ok)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{
		UserID:  "9b2f8f4e-40de-4f80-944b-e07fc1f90ae7",
		Trigger: service.SyncTriggerManual,
	})
	require.NoError(t, err)
}

func TestLocalHTTPPublisher_RejectsWorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{
		UserID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Trigger: service.SyncTriggerManual,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 503")
}
