package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
)

type (
	// ObjectRepo is the object-storage surface the upload pipeline
	// consumes: upload, best-effort remove, and service-resolved
	// public URLs. Keys are unique per bucket.
	ObjectRepo interface {
		Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
		DownloadBytes(ctx context.Context, bucket, key string) ([]byte, error)
		Remove(ctx context.Context, bucket string, keys []string) error
		PublicURL(bucket, key string) (string, error)
	}

	ProfileRepo interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
		SetPictureURL(ctx context.Context, id uuid.UUID, url string) error
	}

	HubProfileRepo interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entity.HubProfile, error)
		GetByUserAndHub(ctx context.Context, userID, hubID uuid.UUID) (*entity.HubProfile, error)
		Create(ctx context.Context, hp *entity.HubProfile) error
		SetBio(ctx context.Context, id uuid.UUID, bio string) error
		SetPictureURL(ctx context.Context, id uuid.UUID, url string) error
		IncrementStat(ctx context.Context, id uuid.UUID, key string, delta int64) error
	}

	PlayerProfileRepo interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entity.PlayerProfile, error)
		GetByHubProfile(ctx context.Context, hubProfileID uuid.UUID) (*entity.PlayerProfile, error)
		SetCardURL(ctx context.Context, id uuid.UUID, url string) error
	}

	MatchRepo interface {
		Create(ctx context.Context, m *entity.Match) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)
		ListOpenByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Match, error)
		AddPlayer(ctx context.Context, p *entity.MatchPlayer) error
		ListPlayers(ctx context.Context, matchID uuid.UUID) ([]*entity.MatchPlayer, error)
	}

	OutboxRepo interface {
		Create(ctx context.Context, event *entity.OutboxEvent) error
		GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessingBatch(ctx context.Context, ids uuid.UUIDs) error
		MarkAsProcessedBatch(ctx context.Context, ids uuid.UUIDs) error
		IncrementRetryCountBatch(ctx context.Context, ids uuid.UUIDs) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		DeleteOldProcessedAndFailed(ctx context.Context) (int64, error)
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
