package entity

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchOpen      MatchStatus = "open"
	MatchFull      MatchStatus = "full"
	MatchCancelled MatchStatus = "cancelled"
)

type Match struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creator_id"` // hub profile id, not user id
	HubID     uuid.UUID `json:"hub_id"`

	Type           string      `json:"type"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Duration       int         `json:"duration"`
	PlayersPerTeam int         `json:"players_per_team"`
	VenueID        *uuid.UUID  `json:"venue_id,omitempty"`
	Description    *string     `json:"description,omitempty"`
	GenderPref     *string     `json:"gender_preference,omitempty"`
	SkillLevel     *string     `json:"skill_level,omitempty"`
	Status         MatchStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

type Team string

const (
	TeamHome Team = "home"
	TeamAway Team = "away"
)

type MatchPlayer struct {
	ID       uuid.UUID `json:"id"`
	MatchID  uuid.UUID `json:"match_id"`
	PlayerID uuid.UUID `json:"player_id"` // hub profile id
	Team     Team      `json:"team"`
	Status   string    `json:"status"` // ready, joined

	CreatedAt time.Time `json:"created_at"`
}

// MatchDetails aggregates a match with its seated players for the
// details endpoint.
type MatchDetails struct {
	Match   Match         `json:"match"`
	Players []MatchPlayer `json:"players"`
}
