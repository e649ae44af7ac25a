package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/internal/repo"
	"github.com/velenyx/sporthub/internal/usecase/events"
	"github.com/velenyx/sporthub/pkg/logger"
)

type UseCase struct {
	matches    repo.MatchRepo
	outbox     repo.OutboxRepo
	transactor repo.Transactor

	logger logger.Interface
}

func New(matches repo.MatchRepo, outbox repo.OutboxRepo, transactor repo.Transactor, l logger.Interface) *UseCase {
	return &UseCase{
		matches:    matches,
		outbox:     outbox,
		transactor: transactor,
		logger:     l,
	}
}

// CreateMatch writes the match, seats the creator on the home team and
// appends a match_created event, all in one transaction.
func (uc *UseCase) CreateMatch(ctx context.Context, creatorHubProfileID uuid.UUID, data dto.CreateMatch) (*entity.Match, error) {
	now := time.Now()

	m := &entity.Match{
		ID:             uuid.New(),
		CreatorID:      creatorHubProfileID,
		HubID:          data.HubID,
		Type:           data.Type,
		Date:           data.Date,
		Time:           data.Time,
		Duration:       data.Duration,
		PlayersPerTeam: data.PlayersPerTeam,
		VenueID:        data.VenueID,
		Description:    data.Description,
		GenderPref:     data.GenderPref,
		SkillLevel:     data.SkillLevel,
		Status:         entity.MatchOpen,
		CreatedAt:      now,
	}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.matches.Create(ctx, m); err != nil {
			return fmt.Errorf("uc.matches.Create: %w", err)
		}

		creator := &entity.MatchPlayer{
			ID:        uuid.New(),
			MatchID:   m.ID,
			PlayerID:  creatorHubProfileID,
			Team:      entity.TeamHome,
			Status:    "ready",
			CreatedAt: now,
		}
		if err := uc.matches.AddPlayer(ctx, creator); err != nil {
			return fmt.Errorf("uc.matches.AddPlayer: %w", err)
		}

		event, err := events.Build(entity.EventMatchCreated, m.ID, map[string]string{
			"hub_id":     m.HubID.String(),
			"creator_id": creatorHubProfileID.String(),
		})
		if err != nil {
			return fmt.Errorf("events.Build: %w", err)
		}
		if err := uc.outbox.Create(ctx, event); err != nil {
			return fmt.Errorf("uc.outbox.Create: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("MatchUseCase - CreateMatch - uc.transactor.WithinTransaction: %w", err)
	}

	return m, nil
}

func (uc *UseCase) JoinMatch(ctx context.Context, matchID, hubProfileID uuid.UUID, team entity.Team) error {
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.matches.GetByID(ctx, matchID); err != nil {
			return fmt.Errorf("uc.matches.GetByID: %w", err)
		}

		player := &entity.MatchPlayer{
			ID:        uuid.New(),
			MatchID:   matchID,
			PlayerID:  hubProfileID,
			Team:      team,
			Status:    "joined",
			CreatedAt: time.Now(),
		}
		if err := uc.matches.AddPlayer(ctx, player); err != nil {
			return fmt.Errorf("uc.matches.AddPlayer: %w", err)
		}

		event, err := events.Build(entity.EventPlayerJoined, matchID, map[string]string{
			"player_id": hubProfileID.String(),
			"team":      string(team),
		})
		if err != nil {
			return fmt.Errorf("events.Build: %w", err)
		}
		if err := uc.outbox.Create(ctx, event); err != nil {
			return fmt.Errorf("uc.outbox.Create: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("MatchUseCase - JoinMatch - uc.transactor.WithinTransaction: %w", err)
	}

	return nil
}

func (uc *UseCase) ListOpenMatches(ctx context.Context, hubID uuid.UUID) ([]*entity.Match, error) {
	matches, err := uc.matches.ListOpenByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("MatchUseCase - ListOpenMatches - uc.matches.ListOpenByHub: %w", err)
	}

	return matches, nil
}

func (uc *UseCase) GetMatchDetails(ctx context.Context, matchID uuid.UUID) (*entity.MatchDetails, error) {
	m, err := uc.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("MatchUseCase - GetMatchDetails - uc.matches.GetByID: %w", err)
	}

	players, err := uc.matches.ListPlayers(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("MatchUseCase - GetMatchDetails - uc.matches.ListPlayers: %w", err)
	}

	details := &entity.MatchDetails{Match: *m}
	for _, p := range players {
		details.Players = append(details.Players, *p)
	}

	return details, nil
}
