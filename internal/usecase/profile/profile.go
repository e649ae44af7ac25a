package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/internal/repo"
	"github.com/velenyx/sporthub/internal/usecase/events"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type UseCase struct {
	profiles       repo.ProfileRepo
	hubProfiles    repo.HubProfileRepo
	playerProfiles repo.PlayerProfileRepo
	outbox         repo.OutboxRepo
	transactor     repo.Transactor

	logger logger.Interface
}

func New(
	profiles repo.ProfileRepo,
	hubProfiles repo.HubProfileRepo,
	playerProfiles repo.PlayerProfileRepo,
	outbox repo.OutboxRepo,
	transactor repo.Transactor,
	l logger.Interface,
) *UseCase {
	return &UseCase{
		profiles:       profiles,
		hubProfiles:    hubProfiles,
		playerProfiles: playerProfiles,
		outbox:         outbox,
		transactor:     transactor,
		logger:         l,
	}
}

func (uc *UseCase) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ProfileUseCase - GetProfile - uc.profiles.GetByID: %w", err)
	}

	return p, nil
}

// AttachProfilePicture is the persistence half of the picture pipeline:
// a single-field update plus a picture_updated event, in one
// transaction. The object is already in storage when this runs.
func (uc *UseCase) AttachProfilePicture(ctx context.Context, id uuid.UUID, url string) error {
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.profiles.SetPictureURL(ctx, id, url); err != nil {
			return fmt.Errorf("uc.profiles.SetPictureURL: %w", err)
		}

		return uc.appendPictureEvent(ctx, id, "profile", url)
	})
	if err != nil {
		return fmt.Errorf("ProfileUseCase - AttachProfilePicture - uc.transactor.WithinTransaction: %w: %w", errs.ErrPersistence, err)
	}

	return nil
}

// GetOrCreateHubProfile returns the user's profile in the given hub,
// creating an empty one on first entry.
func (uc *UseCase) GetOrCreateHubProfile(ctx context.Context, userID, hubID uuid.UUID) (*entity.HubProfile, error) {
	hp, err := uc.hubProfiles.GetByUserAndHub(ctx, userID, hubID)
	if err == nil {
		return hp, nil
	}
	if !errors.Is(err, errs.ErrRecordNotFound) {
		return nil, fmt.Errorf("ProfileUseCase - GetOrCreateHubProfile - uc.hubProfiles.GetByUserAndHub: %w", err)
	}

	now := time.Now()
	hp = &entity.HubProfile{
		ID:        uuid.New(),
		UserID:    userID,
		HubID:     hubID,
		Stats:     map[string]int64{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.hubProfiles.Create(ctx, hp)
	if err != nil {
		return nil, fmt.Errorf("ProfileUseCase - GetOrCreateHubProfile - uc.hubProfiles.Create: %w", err)
	}

	return hp, nil
}

func (uc *UseCase) GetHubProfile(ctx context.Context, id uuid.UUID) (*entity.HubProfile, error) {
	hp, err := uc.hubProfiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ProfileUseCase - GetHubProfile - uc.hubProfiles.GetByID: %w", err)
	}

	return hp, nil
}

func (uc *UseCase) UpdateBio(ctx context.Context, hubProfileID uuid.UUID, bio string) error {
	err := uc.hubProfiles.SetBio(ctx, hubProfileID, bio)
	if err != nil {
		return fmt.Errorf("ProfileUseCase - UpdateBio - uc.hubProfiles.SetBio: %w", err)
	}

	return nil
}

func (uc *UseCase) AttachHubPicture(ctx context.Context, hubProfileID uuid.UUID, url string) error {
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.hubProfiles.SetPictureURL(ctx, hubProfileID, url); err != nil {
			return fmt.Errorf("uc.hubProfiles.SetPictureURL: %w", err)
		}

		return uc.appendPictureEvent(ctx, hubProfileID, "hub_profile", url)
	})
	if err != nil {
		return fmt.Errorf("ProfileUseCase - AttachHubPicture - uc.transactor.WithinTransaction: %w: %w", errs.ErrPersistence, err)
	}

	return nil
}

func (uc *UseCase) GetPlayerProfile(ctx context.Context, id uuid.UUID) (*entity.PlayerProfile, error) {
	pp, err := uc.playerProfiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ProfileUseCase - GetPlayerProfile - uc.playerProfiles.GetByID: %w", err)
	}

	return pp, nil
}

// GetPlayerProfileByHub resolves the player card record belonging to a
// hub profile. A hub member without one gets ErrRecordNotFound.
func (uc *UseCase) GetPlayerProfileByHub(ctx context.Context, hubProfileID uuid.UUID) (*entity.PlayerProfile, error) {
	pp, err := uc.playerProfiles.GetByHubProfile(ctx, hubProfileID)
	if err != nil {
		return nil, fmt.Errorf("ProfileUseCase - GetPlayerProfileByHub - uc.playerProfiles.GetByHubProfile: %w", err)
	}

	return pp, nil
}

func (uc *UseCase) AttachPlayerCard(ctx context.Context, playerProfileID uuid.UUID, url string) error {
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.playerProfiles.SetCardURL(ctx, playerProfileID, url); err != nil {
			return fmt.Errorf("uc.playerProfiles.SetCardURL: %w", err)
		}

		return uc.appendPictureEvent(ctx, playerProfileID, "player_profile", url)
	})
	if err != nil {
		return fmt.Errorf("ProfileUseCase - AttachPlayerCard - uc.transactor.WithinTransaction: %w: %w", errs.ErrPersistence, err)
	}

	return nil
}

func (uc *UseCase) appendPictureEvent(ctx context.Context, aggregateID uuid.UUID, target, url string) error {
	event, err := events.Build(entity.EventPictureUpdated, aggregateID, map[string]string{
		"target": target,
		"url":    url,
	})
	if err != nil {
		return fmt.Errorf("events.Build: %w", err)
	}

	if err := uc.outbox.Create(ctx, event); err != nil {
		return fmt.Errorf("uc.outbox.Create: %w", err)
	}

	return nil
}
