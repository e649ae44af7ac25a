package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/entity"
)

type (
	// PictureUseCase is the upload pipeline: delete-old (best effort),
	// upload-new, resolve the durable public URL.
	PictureUseCase interface {
		Store(ctx context.Context, payload *dto.Payload, ownerID uuid.UUID, bucket, priorURL string) (string, error)
		Fetch(ctx context.Context, bucket, url string) (*dto.Payload, error)
	}

	// CropperUseCase is the crop surface: preview decoding plus the
	// rendered-to-native rasterization on confirm.
	CropperUseCase interface {
		LoadPreview(data []byte, contentType string) (*dto.Preview, error)
		Confirm(ctx context.Context, preview *dto.Preview, completed *dto.CropRegion, renderedW, renderedH float64) (*dto.Payload, error)
		Thumbnail(ctx context.Context, payload *dto.Payload) (*dto.Payload, error)
		Stamp(ctx context.Context, payload *dto.Payload, text string) (*dto.Payload, error)
	}

	ProfileUseCase interface {
		GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
		AttachProfilePicture(ctx context.Context, id uuid.UUID, url string) error
		GetOrCreateHubProfile(ctx context.Context, userID, hubID uuid.UUID) (*entity.HubProfile, error)
		GetHubProfile(ctx context.Context, id uuid.UUID) (*entity.HubProfile, error)
		UpdateBio(ctx context.Context, hubProfileID uuid.UUID, bio string) error
		AttachHubPicture(ctx context.Context, hubProfileID uuid.UUID, url string) error
		GetPlayerProfile(ctx context.Context, id uuid.UUID) (*entity.PlayerProfile, error)
		GetPlayerProfileByHub(ctx context.Context, hubProfileID uuid.UUID) (*entity.PlayerProfile, error)
		AttachPlayerCard(ctx context.Context, playerProfileID uuid.UUID, url string) error
	}

	MatchUseCase interface {
		CreateMatch(ctx context.Context, creatorHubProfileID uuid.UUID, data dto.CreateMatch) (*entity.Match, error)
		JoinMatch(ctx context.Context, matchID, hubProfileID uuid.UUID, team entity.Team) error
		ListOpenMatches(ctx context.Context, hubID uuid.UUID) ([]*entity.Match, error)
		GetMatchDetails(ctx context.Context, matchID uuid.UUID) (*entity.MatchDetails, error)
	}

	// EventsUseCase feeds the outbox relay.
	EventsUseCase interface {
		GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessingBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error
		IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		CleanupOutbox(ctx context.Context) error
	}

	// StatsUseCase folds consumed hub events into hub-profile counters.
	StatsUseCase interface {
		Apply(ctx context.Context, kind entity.EventKind, aggregateID uuid.UUID, payload []byte) error
	}
)
