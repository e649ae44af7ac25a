package entity

import (
	"time"

	"github.com/google/uuid"
)

// HubProfile is the per-hub extension of a base profile. A user has at
// most one per hub.
type HubProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	HubID  uuid.UUID `json:"hub_id"`

	Bio               *string `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`

	Stats map[string]int64 `json:"stats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerProfile is the sport-specific layer on top of a hub profile.
type PlayerProfile struct {
	ID           uuid.UUID `json:"id"`
	HubProfileID uuid.UUID `json:"hub_profile_id"`
	SportType    string    `json:"sport_type"`

	SkillLevel      *string `json:"skill_level,omitempty"`
	YearsExperience *string `json:"years_experience,omitempty"`
	PlayerCardURL   *string `json:"player_card_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
