package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
)

func TestBuild(t *testing.T) {
	aggregateID := uuid.New()

	event, err := Build(entity.EventMatchCreated, aggregateID, map[string]string{
		"creator_id": "abc",
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if event.ID == uuid.Nil {
		t.Fatalf("expected a generated event id")
	}
	if event.AggregateID != aggregateID {
		t.Fatalf("unexpected aggregate id %s", event.AggregateID)
	}
	if event.Kind != entity.EventMatchCreated {
		t.Fatalf("unexpected kind %s", event.Kind)
	}
	if event.Status != entity.Pending {
		t.Fatalf("new events must be pending, got %s", event.Status)
	}
	if event.CreatedAt.IsZero() {
		t.Fatalf("expected a creation timestamp")
	}

	var payload map[string]string
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if payload["creator_id"] != "abc" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestBuildRejectsUnmarshalablePayload(t *testing.T) {
	if _, err := Build(entity.EventPlayerJoined, uuid.New(), make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}
}
