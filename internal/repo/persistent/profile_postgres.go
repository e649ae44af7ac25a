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
	profilesTable = "profiles"

	// Columns
	profileIDColumn         = "id"
	profileFullNameColumn   = "full_name"
	profilePictureURLColumn = "profile_picture_url"
	profileCreatedAtColumn  = "created_at"
	profileUpdatedAtColumn  = "updated_at"
)

type ProfileRepo struct {
	*postgres.Postgres
}

func NewProfileRepo(pg *postgres.Postgres) *ProfileRepo {
	return &ProfileRepo{pg}
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	sql, args, err := r.Builder.
		Select(
			profileIDColumn,
			profileFullNameColumn,
			profilePictureURLColumn,
			profileCreatedAtColumn,
			profileUpdatedAtColumn,
		).
		From(profilesTable).
		Where(squirrel.Eq{profileIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ProfileRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var p entity.Profile
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&p.ID,
		&p.FullName,
		&p.ProfilePictureURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ProfileRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ProfileRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepo) SetPictureURL(ctx context.Context, id uuid.UUID, url string) error {
	sql, args, err := r.Builder.
		Update(profilesTable).
		Set(profilePictureURLColumn, url).
		Set(profileUpdatedAtColumn, time.Now()).
		Where(squirrel.Eq{profileIDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ProfileRepo - SetPictureURL - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ProfileRepo - SetPictureURL - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ProfileRepo - SetPictureURL: %w", errs.ErrRecordNotFound)
	}

	return nil
}
