package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type fakeHubProfiles struct {
	increments map[string]int64
}

func newFakeHubProfiles() *fakeHubProfiles {
	return &fakeHubProfiles{increments: make(map[string]int64)}
}

func (f *fakeHubProfiles) GetByID(context.Context, uuid.UUID) (*entity.HubProfile, error) {
	return nil, errs.ErrRecordNotFound
}

func (f *fakeHubProfiles) GetByUserAndHub(context.Context, uuid.UUID, uuid.UUID) (*entity.HubProfile, error) {
	return nil, errs.ErrRecordNotFound
}

func (f *fakeHubProfiles) Create(context.Context, *entity.HubProfile) error { return nil }

func (f *fakeHubProfiles) SetBio(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeHubProfiles) SetPictureURL(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeHubProfiles) IncrementStat(_ context.Context, id uuid.UUID, key string, delta int64) error {
	f.increments[id.String()+"/"+key] += delta
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func TestApplyMatchCreated(t *testing.T) {
	repo := newFakeHubProfiles()
	uc := New(repo, nopLogger{})

	creatorID := uuid.New()
	payload, _ := json.Marshal(map[string]string{"creator_id": creatorID.String()})

	err := uc.Apply(context.Background(), entity.EventMatchCreated, uuid.New(), payload)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if repo.increments[creatorID.String()+"/matches_created"] != 1 {
		t.Fatalf("matches_created not incremented: %+v", repo.increments)
	}
}

func TestApplyPlayerJoined(t *testing.T) {
	repo := newFakeHubProfiles()
	uc := New(repo, nopLogger{})

	playerID := uuid.New()
	payload, _ := json.Marshal(map[string]string{"player_id": playerID.String(), "team": "away"})

	err := uc.Apply(context.Background(), entity.EventPlayerJoined, uuid.New(), payload)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if repo.increments[playerID.String()+"/matches_joined"] != 1 {
		t.Fatalf("matches_joined not incremented: %+v", repo.increments)
	}
}

func TestApplyPictureUpdated(t *testing.T) {
	repo := newFakeHubProfiles()
	uc := New(repo, nopLogger{})

	hubProfileID := uuid.New()
	payload, _ := json.Marshal(map[string]string{"target": "hub_profile", "url": "https://s3.local/x"})

	err := uc.Apply(context.Background(), entity.EventPictureUpdated, hubProfileID, payload)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if repo.increments[hubProfileID.String()+"/picture_updates"] != 1 {
		t.Fatalf("picture_updates not incremented: %+v", repo.increments)
	}

	// Targets whose aggregate is not a hub profile are skipped.
	other, _ := json.Marshal(map[string]string{"target": "profile"})
	if err := uc.Apply(context.Background(), entity.EventPictureUpdated, uuid.New(), other); err != nil {
		t.Fatalf("non-hub target must be skipped silently: %v", err)
	}
	if len(repo.increments) != 1 {
		t.Fatalf("unexpected increments: %+v", repo.increments)
	}
}

func TestApplyUnknownKind(t *testing.T) {
	uc := New(newFakeHubProfiles(), nopLogger{})

	err := uc.Apply(context.Background(), entity.EventKind("venue_booked"), uuid.New(), []byte("{}"))
	if !errors.Is(err, errs.ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}
