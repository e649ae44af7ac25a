package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/postgres"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

const (
	// Table
	playerProfilesTable = "sports_player_profiles"

	// Columns
	playerProfileIDColumn           = "id"
	playerProfileHubProfileIDColumn = "hub_profile_id"
	playerProfileSportTypeColumn    = "sport_type"
	playerProfileSkillLevelColumn   = "skill_level"
	playerProfileYearsExpColumn     = "years_experience"
	playerProfileCardURLColumn      = "player_card_url"
	playerProfileCreatedAtColumn    = "created_at"
	playerProfileUpdatedAtColumn    = "updated_at"
)

type PlayerProfileRepo struct {
	*postgres.Postgres
}

func NewPlayerProfileRepo(pg *postgres.Postgres) *PlayerProfileRepo {
	return &PlayerProfileRepo{pg}
}

func (r *PlayerProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PlayerProfile, error) {
	return r.getBy(ctx, "GetByID", squirrel.Eq{playerProfileIDColumn: id})
}

func (r *PlayerProfileRepo) GetByHubProfile(ctx context.Context, hubProfileID uuid.UUID) (*entity.PlayerProfile, error) {
	return r.getBy(ctx, "GetByHubProfile", squirrel.Eq{playerProfileHubProfileIDColumn: hubProfileID})
}

func (r *PlayerProfileRepo) getBy(ctx context.Context, method string, where squirrel.Eq) (*entity.PlayerProfile, error) {
	sql, args, err := r.Builder.
		Select(
			playerProfileIDColumn,
			playerProfileHubProfileIDColumn,
			playerProfileSportTypeColumn,
			playerProfileSkillLevelColumn,
			playerProfileYearsExpColumn,
			playerProfileCardURLColumn,
			playerProfileCreatedAtColumn,
			playerProfileUpdatedAtColumn,
		).
		From(playerProfilesTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PlayerProfileRepo - %s - r.Builder.ToSql: %w", method, err)
	}

	executor := r.GetExecutor(ctx)

	var pp entity.PlayerProfile
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&pp.ID,
		&pp.HubProfileID,
		&pp.SportType,
		&pp.SkillLevel,
		&pp.YearsExperience,
		&pp.PlayerCardURL,
		&pp.CreatedAt,
		&pp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("PlayerProfileRepo - %s: %w", method, errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("PlayerProfileRepo - %s - executor.QueryRow: %w", method, err)
	}

	return &pp, nil
}

func (r *PlayerProfileRepo) SetCardURL(ctx context.Context, id uuid.UUID, url string) error {
	sql, args, err := r.Builder.
		Update(playerProfilesTable).
		Set(playerProfileCardURLColumn, url).
		Set(playerProfileUpdatedAtColumn, time.Now()).
		Where(squirrel.Eq{playerProfileIDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PlayerProfileRepo - SetCardURL - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("PlayerProfileRepo - SetCardURL - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("PlayerProfileRepo - SetCardURL: %w", errs.ErrRecordNotFound)
	}

	return nil
}
