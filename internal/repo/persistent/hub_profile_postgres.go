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
	hubProfilesTable = "hub_profiles"

	// Columns
	hubProfileIDColumn         = "id"
	hubProfileUserIDColumn     = "user_id"
	hubProfileHubIDColumn      = "hub_id"
	hubProfileBioColumn        = "bio"
	hubProfilePictureURLColumn = "profile_picture_url"
	hubProfileStatsColumn      = "stats"
	hubProfileCreatedAtColumn  = "created_at"
	hubProfileUpdatedAtColumn  = "updated_at"
)

type HubProfileRepo struct {
	*postgres.Postgres
}

func NewHubProfileRepo(pg *postgres.Postgres) *HubProfileRepo {
	return &HubProfileRepo{pg}
}

func (r *HubProfileRepo) selectColumns() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			hubProfileIDColumn,
			hubProfileUserIDColumn,
			hubProfileHubIDColumn,
			hubProfileBioColumn,
			hubProfilePictureURLColumn,
			hubProfileStatsColumn,
			hubProfileCreatedAtColumn,
			hubProfileUpdatedAtColumn,
		).
		From(hubProfilesTable)
}

func (r *HubProfileRepo) scanRow(row pgx.Row) (*entity.HubProfile, error) {
	var hp entity.HubProfile
	err := row.Scan(
		&hp.ID,
		&hp.UserID,
		&hp.HubID,
		&hp.Bio,
		&hp.ProfilePictureURL,
		&hp.Stats,
		&hp.CreatedAt,
		&hp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &hp, nil
}

func (r *HubProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.HubProfile, error) {
	sql, args, err := r.selectColumns().
		Where(squirrel.Eq{hubProfileIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("HubProfileRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	hp, err := r.scanRow(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("HubProfileRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("HubProfileRepo - GetByID - executor.QueryRow: %w", err)
	}

	return hp, nil
}

func (r *HubProfileRepo) GetByUserAndHub(ctx context.Context, userID, hubID uuid.UUID) (*entity.HubProfile, error) {
	sql, args, err := r.selectColumns().
		Where(squirrel.And{
			squirrel.Eq{hubProfileUserIDColumn: userID},
			squirrel.Eq{hubProfileHubIDColumn: hubID},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("HubProfileRepo - GetByUserAndHub - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	hp, err := r.scanRow(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("HubProfileRepo - GetByUserAndHub: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("HubProfileRepo - GetByUserAndHub - executor.QueryRow: %w", err)
	}

	return hp, nil
}

func (r *HubProfileRepo) Create(ctx context.Context, hp *entity.HubProfile) error {
	sql, args, err := r.Builder.
		Insert(hubProfilesTable).
		Columns(
			hubProfileIDColumn,
			hubProfileUserIDColumn,
			hubProfileHubIDColumn,
			hubProfileBioColumn,
			hubProfileStatsColumn,
			hubProfileCreatedAtColumn,
			hubProfileUpdatedAtColumn,
		).
		Values(
			hp.ID,
			hp.UserID,
			hp.HubID,
			hp.Bio,
			hp.Stats,
			hp.CreatedAt,
			hp.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("HubProfileRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("HubProfileRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *HubProfileRepo) SetBio(ctx context.Context, id uuid.UUID, bio string) error {
	return r.setColumn(ctx, "SetBio", id, hubProfileBioColumn, bio)
}

func (r *HubProfileRepo) SetPictureURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.setColumn(ctx, "SetPictureURL", id, hubProfilePictureURLColumn, url)
}

func (r *HubProfileRepo) setColumn(ctx context.Context, method string, id uuid.UUID, column string, value any) error {
	sql, args, err := r.Builder.
		Update(hubProfilesTable).
		Set(column, value).
		Set(hubProfileUpdatedAtColumn, time.Now()).
		Where(squirrel.Eq{hubProfileIDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("HubProfileRepo - %s - r.Builder.ToSql: %w", method, err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("HubProfileRepo - %s - executor.Exec: %w", method, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("HubProfileRepo - %s: %w", method, errs.ErrRecordNotFound)
	}

	return nil
}

// IncrementStat folds a counter delta into the stats jsonb document.
func (r *HubProfileRepo) IncrementStat(ctx context.Context, id uuid.UUID, key string, delta int64) error {
	sql, args, err := r.Builder.
		Update(hubProfilesTable).
		Set(hubProfileStatsColumn, squirrel.Expr(
			"jsonb_set(coalesce(stats, '{}'::jsonb), array[?::text], to_jsonb(coalesce((stats->>?)::bigint, 0) + ?))",
			key, key, delta,
		)).
		Set(hubProfileUpdatedAtColumn, time.Now()).
		Where(squirrel.Eq{hubProfileIDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("HubProfileRepo - IncrementStat - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("HubProfileRepo - IncrementStat - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("HubProfileRepo - IncrementStat: %w", errs.ErrRecordNotFound)
	}

	return nil
}
