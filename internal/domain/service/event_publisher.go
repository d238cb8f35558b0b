package service

import (
	"context"
	"time"
)

// AccountLinkedEvent is emitted after a link has been persisted.
type AccountLinkedEvent struct {
	RequestID         string    `json:"request_id,omitempty"`
	WorkspaceID       string    `json:"workspace_id"`
	Platform          string    `json:"platform"`
	ExternalAccountID string    `json:"external_account_id,omitempty"`
	Nickname          string    `json:"nickname"`
	LinkedAt          time.Time `json:"linked_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishAccountLinked(ctx context.Context, event *AccountLinkedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
