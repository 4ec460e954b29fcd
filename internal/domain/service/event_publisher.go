package service

import (
	"context"
)

// Sync triggers carried in SyncEvent.Trigger.
const (
	SyncTriggerConnect = "connect" // Published right after a connection is established.
	SyncTriggerManual  = "manual"  // Published for an operator- or user-requested pass.
)

// SyncEvent asks the sync worker to push one user's skills to their
// personal data server.
type SyncEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	UserID      string `json:"user_id"`
	Trigger     string `json:"trigger"`
	RequestedAt string `json:"requested_at,omitempty"` // RFC 3339 timestamp of the request
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncEvent publishes a skill sync request for async processing
	PublishSyncEvent(ctx context.Context, event *SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
