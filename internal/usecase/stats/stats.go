package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/internal/repo"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

// Stat keys folded into hub_profiles.stats.
const (
	statMatchesCreated = "matches_created"
	statMatchesJoined  = "matches_joined"
	statPictureUpdates = "picture_updates"
)

// UseCase projects consumed hub events into per-profile counters.
type UseCase struct {
	hubProfiles repo.HubProfileRepo

	logger logger.Interface
}

func New(hubProfiles repo.HubProfileRepo, l logger.Interface) *UseCase {
	return &UseCase{
		hubProfiles: hubProfiles,
		logger:      l,
	}
}

type matchCreatedPayload struct {
	CreatorID uuid.UUID `json:"creator_id"`
}

type playerJoinedPayload struct {
	PlayerID uuid.UUID `json:"player_id"`
}

type pictureUpdatedPayload struct {
	Target string `json:"target"`
}

// Apply folds one event into the counters. Unknown kinds are an error
// so the consumer can log and skip without committing silently wrong
// projections.
func (uc *UseCase) Apply(ctx context.Context, kind entity.EventKind, aggregateID uuid.UUID, payload []byte) error {
	switch kind {
	case entity.EventMatchCreated:
		var p matchCreatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("StatsUseCase - Apply - json.Unmarshal: %w", err)
		}

		return uc.increment(ctx, "Apply", p.CreatorID, statMatchesCreated)

	case entity.EventPlayerJoined:
		var p playerJoinedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("StatsUseCase - Apply - json.Unmarshal: %w", err)
		}

		return uc.increment(ctx, "Apply", p.PlayerID, statMatchesJoined)

	case entity.EventPictureUpdated:
		var p pictureUpdatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("StatsUseCase - Apply - json.Unmarshal: %w", err)
		}
		// Counter lives on the hub profile; for other targets the
		// aggregate is not a hub profile id, so skip them.
		if p.Target != "hub_profile" {
			return nil
		}

		return uc.increment(ctx, "Apply", aggregateID, statPictureUpdates)

	default:
		return fmt.Errorf("StatsUseCase - Apply: %w: %s", errs.ErrUnknownEvent, kind)
	}
}

func (uc *UseCase) increment(ctx context.Context, method string, id uuid.UUID, key string) error {
	err := uc.hubProfiles.IncrementStat(ctx, id, key, 1)
	if err != nil {
		return fmt.Errorf("StatsUseCase - %s - uc.hubProfiles.IncrementStat: %w", method, err)
	}

	return nil
}
