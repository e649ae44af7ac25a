package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/internal/repo"
	"github.com/velenyx/sporthub/pkg/logger"
)

// UseCase is the outbox surface: write-side use cases append events
// through Build+outbox.Create inside their transactions, the relay
// worker drains through the batch methods below.
type UseCase struct {
	outbox repo.OutboxRepo

	logger logger.Interface
}

func New(outbox repo.OutboxRepo, l logger.Interface) *UseCase {
	return &UseCase{
		outbox: outbox,
		logger: l,
	}
}

// Build assembles a pending outbox event. The payload is marshalled
// here so callers pass plain structs.
func Build(kind entity.EventKind, aggregateID uuid.UUID, payload any) (*entity.OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events.Build - json.Marshal: %w", err)
	}

	return &entity.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: aggregateID,
		Kind:        kind,
		Payload:     data,
		Status:      entity.Pending,
		CreatedAt:   time.Now(),
	}, nil
}

func (uc *UseCase) GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error) {
	events, err := uc.outbox.GetPendingEvents(ctx, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("EventsUseCase - GetPendingEvents - uc.outbox.GetPendingEvents: %w", err)
	}

	return events, nil
}

func (uc *UseCase) MarkAsProcessingBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outbox.MarkAsProcessingBatch(ctx, collectIDs(events))
	if err != nil {
		return fmt.Errorf("EventsUseCase - MarkAsProcessingBatch - uc.outbox.MarkAsProcessingBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outbox.MarkAsProcessedBatch(ctx, collectIDs(events))
	if err != nil {
		return fmt.Errorf("EventsUseCase - MarkAsProcessedBatch - uc.outbox.MarkAsProcessedBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outbox.IncrementRetryCountBatch(ctx, collectIDs(events))
	if err != nil {
		return fmt.Errorf("EventsUseCase - IncrementRetryCountBatch - uc.outbox.IncrementRetryCountBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error {
	err := uc.outbox.MarkMaxRetriesAsFailed(ctx, maxRetries)
	if err != nil {
		return fmt.Errorf("EventsUseCase - MarkMaxRetriesAsFailed - uc.outbox.MarkMaxRetriesAsFailed: %w", err)
	}

	return nil
}

func (uc *UseCase) CleanupOutbox(ctx context.Context) error {
	count, err := uc.outbox.DeleteOldProcessedAndFailed(ctx)
	if err != nil {
		return fmt.Errorf("EventsUseCase - CleanupOutbox - uc.outbox.DeleteOldProcessedAndFailed: %w", err)
	}

	if count > 0 {
		uc.logger.Info("deleted old events, count = %d", count)
	}

	return nil
}

func collectIDs(events []*entity.OutboxEvent) uuid.UUIDs {
	var ids uuid.UUIDs

	for _, event := range events {
		ids = append(ids, event.ID)
	}

	return ids
}
