package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/postgres"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

const (
	// Tables
	matchesTable      = "matches"
	matchPlayersTable = "match_players"

	// matches columns
	matchIDColumn             = "id"
	matchCreatorIDColumn      = "creator_id"
	matchHubIDColumn          = "hub_id"
	matchTypeColumn           = "type"
	matchDateColumn           = "date"
	matchTimeColumn           = "time"
	matchDurationColumn       = "duration"
	matchPlayersPerTeamColumn = "players_per_team"
	matchVenueIDColumn        = "venue_id"
	matchDescriptionColumn    = "description"
	matchGenderPrefColumn     = "gender_preference"
	matchSkillLevelColumn     = "skill_level"
	matchStatusColumn         = "status"
	matchCreatedAtColumn      = "created_at"

	// match_players columns
	mpIDColumn        = "id"
	mpMatchIDColumn   = "match_id"
	mpPlayerIDColumn  = "player_id"
	mpTeamColumn      = "team"
	mpStatusColumn    = "status"
	mpCreatedAtColumn = "created_at"
)

type MatchRepo struct {
	*postgres.Postgres
}

func NewMatchRepo(pg *postgres.Postgres) *MatchRepo {
	return &MatchRepo{pg}
}

func (r *MatchRepo) Create(ctx context.Context, m *entity.Match) error {
	sql, args, err := r.Builder.
		Insert(matchesTable).
		Columns(
			matchIDColumn,
			matchCreatorIDColumn,
			matchHubIDColumn,
			matchTypeColumn,
			matchDateColumn,
			matchTimeColumn,
			matchDurationColumn,
			matchPlayersPerTeamColumn,
			matchVenueIDColumn,
			matchDescriptionColumn,
			matchGenderPrefColumn,
			matchSkillLevelColumn,
			matchStatusColumn,
			matchCreatedAtColumn,
		).
		Values(
			m.ID,
			m.CreatorID,
			m.HubID,
			m.Type,
			m.Date,
			m.Time,
			m.Duration,
			m.PlayersPerTeam,
			m.VenueID,
			m.Description,
			m.GenderPref,
			m.SkillLevel,
			m.Status,
			m.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("MatchRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MatchRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *MatchRepo) matchColumns() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			matchIDColumn,
			matchCreatorIDColumn,
			matchHubIDColumn,
			matchTypeColumn,
			matchDateColumn,
			matchTimeColumn,
			matchDurationColumn,
			matchPlayersPerTeamColumn,
			matchVenueIDColumn,
			matchDescriptionColumn,
			matchGenderPrefColumn,
			matchSkillLevelColumn,
			matchStatusColumn,
			matchCreatedAtColumn,
		).
		From(matchesTable)
}

func scanMatch(row pgx.Row) (*entity.Match, error) {
	var m entity.Match
	err := row.Scan(
		&m.ID,
		&m.CreatorID,
		&m.HubID,
		&m.Type,
		&m.Date,
		&m.Time,
		&m.Duration,
		&m.PlayersPerTeam,
		&m.VenueID,
		&m.Description,
		&m.GenderPref,
		&m.SkillLevel,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *MatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	sql, args, err := r.matchColumns().
		Where(squirrel.Eq{matchIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MatchRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	m, err := scanMatch(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("MatchRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("MatchRepo - GetByID - executor.QueryRow: %w", err)
	}

	return m, nil
}

func (r *MatchRepo) ListOpenByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Match, error) {
	sql, args, err := r.matchColumns().
		Where(squirrel.And{
			squirrel.Eq{matchHubIDColumn: hubID},
			squirrel.Eq{matchStatusColumn: entity.MatchOpen},
		}).
		OrderBy(matchCreatedAtColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MatchRepo - ListOpenByHub - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("MatchRepo - ListOpenByHub - executor.Query: %w", err)
	}
	defer rows.Close()

	var matches []*entity.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("MatchRepo - ListOpenByHub - rows.Scan: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MatchRepo - ListOpenByHub - rows.Err: %w", err)
	}

	return matches, nil
}

func (r *MatchRepo) AddPlayer(ctx context.Context, p *entity.MatchPlayer) error {
	sql, args, err := r.Builder.
		Insert(matchPlayersTable).
		Columns(
			mpIDColumn,
			mpMatchIDColumn,
			mpPlayerIDColumn,
			mpTeamColumn,
			mpStatusColumn,
			mpCreatedAtColumn,
		).
		Values(
			p.ID,
			p.MatchID,
			p.PlayerID,
			p.Team,
			p.Status,
			p.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("MatchRepo - AddPlayer - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MatchRepo - AddPlayer - executor.Exec: %w", err)
	}

	return nil
}

func (r *MatchRepo) ListPlayers(ctx context.Context, matchID uuid.UUID) ([]*entity.MatchPlayer, error) {
	sql, args, err := r.Builder.
		Select(
			mpIDColumn,
			mpMatchIDColumn,
			mpPlayerIDColumn,
			mpTeamColumn,
			mpStatusColumn,
			mpCreatedAtColumn,
		).
		From(matchPlayersTable).
		Where(squirrel.Eq{mpMatchIDColumn: matchID}).
		OrderBy(mpCreatedAtColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MatchRepo - ListPlayers - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("MatchRepo - ListPlayers - executor.Query: %w", err)
	}
	defer rows.Close()

	var players []*entity.MatchPlayer
	for rows.Next() {
		var p entity.MatchPlayer
		err = rows.Scan(
			&p.ID,
			&p.MatchID,
			&p.PlayerID,
			&p.Team,
			&p.Status,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("MatchRepo - ListPlayers - rows.Scan: %w", err)
		}
		players = append(players, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MatchRepo - ListPlayers - rows.Err: %w", err)
	}

	return players, nil
}
