package response

import "github.com/velenyx/sporthub/internal/dto"

type Error struct {
	Error string `json:"error"`
}

type Session struct {
	UserID   string `json:"user_id"`
	SignedIn bool   `json:"signed_in"`
}

type EditorState struct {
	Kind        string          `json:"kind"`
	RecordID    string          `json:"record_id"`
	State       string          `json:"state"`
	Shape       string          `json:"shape"`
	AspectRatio float64         `json:"aspect_ratio"`
	Region      *dto.CropRegion `json:"region,omitempty"`
	CurrentURL  string          `json:"current_url,omitempty"`
	LastError   string          `json:"last_error,omitempty"`
}

type Preview struct {
	State   string `json:"state"`
	NativeW int    `json:"native_width"`
	NativeH int    `json:"native_height"`
}

type Confirm struct {
	State string `json:"state"`
	URL   string `json:"url,omitempty"`
}

type Profile struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

type HubProfile struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	HubID             string           `json:"hub_id"`
	Bio               string           `json:"bio,omitempty"`
	ProfilePictureURL string           `json:"profile_picture_url,omitempty"`
	Stats             map[string]int64 `json:"stats"`
}

type PlayerProfile struct {
	ID              string `json:"id"`
	HubProfileID    string `json:"hub_profile_id"`
	SportType       string `json:"sport_type"`
	SkillLevel      string `json:"skill_level,omitempty"`
	YearsExperience string `json:"years_experience,omitempty"`
	PlayerCardURL   string `json:"player_card_url,omitempty"`
}

type Match struct {
	ID             string `json:"id"`
	CreatorID      string `json:"creator_id"`
	HubID          string `json:"hub_id"`
	Type           string `json:"type"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Duration       int    `json:"duration"`
	PlayersPerTeam int    `json:"players_per_team"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type MatchPlayer struct {
	PlayerID string `json:"player_id"`
	Team     string `json:"team"`
	Status   string `json:"status"`
}

type MatchDetails struct {
	Match   Match         `json:"match"`
	Players []MatchPlayer `json:"players"`
}
