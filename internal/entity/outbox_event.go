package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventMatchCreated   EventKind = "match_created"
	EventPlayerJoined   EventKind = "player_joined"
	EventPictureUpdated EventKind = "picture_updated"
)

type OutboxEvent struct {
	ID          uuid.UUID  `json:"id"`
	AggregateID uuid.UUID  `json:"aggregate_id"`
	Kind        EventKind  `json:"kind"`
	Payload     []byte     `json:"payload"`
	Status      Status     `json:"status"` // pending, processing, processed, failed
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	RetryCount  int        `json:"retry_count"`
}
