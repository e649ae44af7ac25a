package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the user's base record. ProfilePictureURL is the single
// URL-typed field the picture pipeline mutates on it.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`

	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
