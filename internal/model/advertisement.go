// Package model defines domain entities for the application.
package model

import "time"

// Field limits for advertisements, enforced at the service layer
// and mirrored by the database column types.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 300
)

// Advertisement represents a classified ad.
// UserID is nil for unowned ads; unowned ads cannot be mutated.
type Advertisement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      *int64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsOwnedBy reports whether the ad is owned by the given user.
// An unowned ad is owned by no one.
func (a *Advertisement) IsOwnedBy(userID int64) bool {
	return a.UserID != nil && *a.UserID == userID
}
