package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published after the backend accepted an order
type OrderPlacedEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	OrderID        int64     `json:"order_id"`
	UserID         int64     `json:"user_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	ItemCount      int       `json:"item_count"`
	Total          string    `json:"total"`
	PlacedAt       time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
