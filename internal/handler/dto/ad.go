// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/adboard/adboard/internal/model"

// CreateAdRequest represents the request body for creating an advertisement.
// Fields outside this allow-list are ignored by the JSON decoder, so clients
// cannot set attributes that are not meant to be writable.
type CreateAdRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      *int64 `json:"user_id,omitempty"`
}

// UpdateAdRequest represents a partial update of an advertisement.
// Nil fields are left unchanged.
type UpdateAdRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AdResponse represents an advertisement in API responses.
// CreationDate is epoch seconds; Owner is the owning user id or null.
type AdResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreationDate int64  `json:"creation_date"`
	Owner        *int64 `json:"owner"`
}

// CreateAdResponse acknowledges a newly created advertisement.
type CreateAdResponse struct {
	ID int64 `json:"id"`
}

// StatusResponse acknowledges a successful mutation.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ToAdResponse converts an Advertisement model to AdResponse DTO.
func ToAdResponse(ad *model.Advertisement) *AdResponse {
	return &AdResponse{
		ID:           ad.ID,
		Title:        ad.Title,
		Description:  ad.Description,
		CreationDate: ad.CreatedAt.Unix(),
		Owner:        ad.UserID,
	}
}
