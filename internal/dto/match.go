package dto

import "github.com/google/uuid"

type CreateMatch struct {
	HubID          uuid.UUID  `json:"hub_id"`
	Type           string     `json:"type"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Duration       int        `json:"duration"`
	PlayersPerTeam int        `json:"players_per_team"`
	VenueID        *uuid.UUID `json:"venue_id,omitempty"`
	Description    *string    `json:"description,omitempty"`
	GenderPref     *string    `json:"gender_preference,omitempty"`
	SkillLevel     *string    `json:"skill_level,omitempty"`
}
