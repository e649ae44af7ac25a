package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type fakePlayerProfiles struct {
	byHub map[uuid.UUID]*entity.PlayerProfile
}

func (f *fakePlayerProfiles) GetByID(context.Context, uuid.UUID) (*entity.PlayerProfile, error) {
	return nil, errs.ErrRecordNotFound
}

func (f *fakePlayerProfiles) GetByHubProfile(_ context.Context, hubProfileID uuid.UUID) (*entity.PlayerProfile, error) {
	if pp, ok := f.byHub[hubProfileID]; ok {
		return pp, nil
	}
	return nil, errs.ErrRecordNotFound
}

func (f *fakePlayerProfiles) SetCardURL(context.Context, uuid.UUID, string) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func TestGetPlayerProfileByHub(t *testing.T) {
	hubProfileID := uuid.New()
	pp := &entity.PlayerProfile{
		ID:           uuid.New(),
		HubProfileID: hubProfileID,
		SportType:    "football",
	}

	uc := New(nil, nil, &fakePlayerProfiles{
		byHub: map[uuid.UUID]*entity.PlayerProfile{hubProfileID: pp},
	}, nil, nil, nopLogger{})

	got, err := uc.GetPlayerProfileByHub(context.Background(), hubProfileID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.ID != pp.ID {
		t.Fatalf("unexpected player profile %s", got.ID)
	}

	_, err = uc.GetPlayerProfileByHub(context.Background(), uuid.New())
	if !errors.Is(err, errs.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
