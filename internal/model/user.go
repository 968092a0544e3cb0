// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that can own advertisements.
// Users are provisioned out of band; there is no signup endpoint.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never serialize
	CreatedAt    time.Time `json:"created_at"`
}
