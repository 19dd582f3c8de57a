package service

import (
	"context"
	"time"
)

// Profile event types.
const (
	EventProfileCreated = "profile.created"
	EventProfileUpdated = "profile.updated"
)

// ProfileEvent is published after a profile write succeeds.
type ProfileEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Store      string    `json:"store"`            // Store that received the write
	Fields     []string  `json:"fields,omitempty"` // Updated field names, for profile.updated
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile lifecycle event
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
