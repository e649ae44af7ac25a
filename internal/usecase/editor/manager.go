package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/pkg/logger"
)

// Kind names an editor call site. The three kinds are configuration of
// one polymorphic editor, not separate implementations.
type Kind string

const (
	ProfilePicture Kind = "profile_picture"
	PlayerCard     Kind = "player_card"
	HubBioPicture  Kind = "hub_bio_picture"
)

// Buckets carries the logical namespaces the editors write to.
type Buckets struct {
	ProfilePictures string
	PlayerCards     string
}

// Manager hands out one editor per (kind, record), so the
// one-upload-in-flight guard holds across concurrent requests for the
// same record while independent records stay fully independent.
type Manager struct {
	cropper  usecase.CropperUseCase
	picture  usecase.PictureUseCase
	profiles usecase.ProfileUseCase
	sessions *session.Holder
	logger   logger.Interface

	buckets      Buckets
	maxFileSize  int64
	storeTimeout time.Duration

	mu      sync.Mutex
	editors map[editorKey]*Editor
}

type editorKey struct {
	kind     Kind
	recordID uuid.UUID
}

func NewManager(
	cropper usecase.CropperUseCase,
	picture usecase.PictureUseCase,
	profiles usecase.ProfileUseCase,
	sessions *session.Holder,
	buckets Buckets,
	maxFileSize int64,
	storeTimeout time.Duration,
	l logger.Interface,
) *Manager {
	return &Manager{
		cropper:      cropper,
		picture:      picture,
		profiles:     profiles,
		sessions:     sessions,
		logger:       l,
		buckets:      buckets,
		maxFileSize:  maxFileSize,
		storeTimeout: storeTimeout,
		editors:      make(map[editorKey]*Editor),
	}
}

// For returns the editor bound to (kind, recordID), creating it on
// first use.
func (m *Manager) For(kind Kind, recordID uuid.UUID) (*Editor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := editorKey{kind: kind, recordID: recordID}
	if ed, ok := m.editors[key]; ok {
		return ed, nil
	}

	cfg, binding, err := m.build(kind, recordID)
	if err != nil {
		return nil, fmt.Errorf("Manager - For: %w", err)
	}

	ed := New(cfg, binding, m.cropper, m.picture, m.sessions, m.logger)
	m.editors[key] = ed

	return ed, nil
}

func (m *Manager) build(kind Kind, recordID uuid.UUID) (Config, Binding, error) {
	switch kind {
	case ProfilePicture:
		return Config{
				Bucket:       m.buckets.ProfilePictures,
				AspectRatio:  1,
				Shape:        dto.ShapeRound,
				MaxFileSize:  m.maxFileSize,
				StoreTimeout: m.storeTimeout,
			}, Binding{
				RecordID: recordID,
				PriorURL: func(ctx context.Context) (string, error) {
					p, err := m.profiles.GetProfile(ctx, recordID)
					if err != nil {
						return "", err
					}
					return deref(p.ProfilePictureURL), nil
				},
				Attach: func(ctx context.Context, url string) error {
					return m.profiles.AttachProfilePicture(ctx, recordID, url)
				},
			}, nil

	case PlayerCard:
		return Config{
				Bucket:       m.buckets.PlayerCards,
				AspectRatio:  9.0 / 16.0,
				Shape:        dto.ShapeRect,
				MaxFileSize:  m.maxFileSize,
				StoreTimeout: m.storeTimeout,
			}, Binding{
				RecordID: recordID,
				PriorURL: func(ctx context.Context) (string, error) {
					pp, err := m.profiles.GetPlayerProfile(ctx, recordID)
					if err != nil {
						return "", err
					}
					return deref(pp.PlayerCardURL), nil
				},
				Attach: func(ctx context.Context, url string) error {
					return m.profiles.AttachPlayerCard(ctx, recordID, url)
				},
				StampText: func(ctx context.Context) (string, error) {
					return m.playerName(ctx, recordID)
				},
			}, nil

	case HubBioPicture:
		return Config{
				Bucket:       m.buckets.ProfilePictures,
				AspectRatio:  1,
				Shape:        dto.ShapeRound,
				MaxFileSize:  m.maxFileSize,
				StoreTimeout: m.storeTimeout,
			}, Binding{
				RecordID: recordID,
				PriorURL: func(ctx context.Context) (string, error) {
					hp, err := m.profiles.GetHubProfile(ctx, recordID)
					if err != nil {
						return "", err
					}
					return deref(hp.ProfilePictureURL), nil
				},
				Attach: func(ctx context.Context, url string) error {
					return m.profiles.AttachHubPicture(ctx, recordID, url)
				},
			}, nil

	default:
		return Config{}, Binding{}, fmt.Errorf("unknown editor kind %q", kind)
	}
}

// playerName resolves the display name stamped onto player cards:
// player profile -> hub profile -> base profile.
func (m *Manager) playerName(ctx context.Context, playerProfileID uuid.UUID) (string, error) {
	pp, err := m.profiles.GetPlayerProfile(ctx, playerProfileID)
	if err != nil {
		return "", err
	}

	hp, err := m.profiles.GetHubProfile(ctx, pp.HubProfileID)
	if err != nil {
		return "", err
	}

	p, err := m.profiles.GetProfile(ctx, hp.UserID)
	if err != nil {
		return "", err
	}

	return p.FullName, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
