// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/adboard/adboard/internal/model"
	"github.com/adboard/adboard/internal/repository"
)

// Service errors.
var (
	ErrAdNotFound          = errors.New("advertisement not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title exceeds maximum length")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrNotOwner            = errors.New("advertisement is owned by another user")
	ErrAdUnowned           = errors.New("advertisement has no owner")
)

// AdStore is the persistence surface the ad service needs.
type AdStore interface {
	CreateAd(ctx context.Context, ad *model.Advertisement) error
	GetAdByID(ctx context.Context, id int64) (*model.Advertisement, error)
	UpdateAd(ctx context.Context, ad *model.Advertisement) error
	DeleteAd(ctx context.Context, id int64) error
}

// AdService handles advertisement business logic.
type AdService struct {
	store AdStore
}

// NewAdService creates a new AdService.
func NewAdService(store AdStore) *AdService {
	return &AdService{store: store}
}

// CreateAdInput defines input for creating an advertisement.
// Only these fields are client-writable; anything else in a request
// body is dropped before it reaches this layer.
type CreateAdInput struct {
	Title       string
	Description string
	UserID      *int64
}

// CreateAd validates and persists a new advertisement.
func (s *AdService) CreateAd(ctx context.Context, input CreateAdInput) (*model.Advertisement, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	ad := &model.Advertisement{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := s.store.CreateAd(ctx, ad); err != nil {
		return nil, fmt.Errorf("create advertisement: %w", err)
	}

	return ad, nil
}

// GetAd fetches an advertisement by id.
func (s *AdService) GetAd(ctx context.Context, id int64) (*model.Advertisement, error) {
	ad, err := s.store.GetAdByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	return ad, nil
}

// UpdateAdInput defines a partial update. Nil fields are left untouched;
// all provided fields are applied in a single atomic persist.
type UpdateAdInput struct {
	ID          int64
	ActorID     int64
	Title       *string
	Description *string
}

// UpdateAd applies a partial update to an advertisement owned by the actor.
// Unowned advertisements cannot be mutated by anyone.
func (s *AdService) UpdateAd(ctx context.Context, input UpdateAdInput) error {
	ad, err := s.store.GetAdByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("get advertisement: %w", err)
	}

	if err := s.checkOwner(ad, input.ActorID); err != nil {
		return err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return err
		}
		ad.Title = *input.Title
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return err
		}
		ad.Description = *input.Description
	}

	if err := s.store.UpdateAd(ctx, ad); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("update advertisement: %w", err)
	}

	return nil
}

// DeleteAd removes an advertisement owned by the actor.
func (s *AdService) DeleteAd(ctx context.Context, id, actorID int64) error {
	ad, err := s.store.GetAdByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("get advertisement: %w", err)
	}

	if err := s.checkOwner(ad, actorID); err != nil {
		return err
	}

	if err := s.store.DeleteAd(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("delete advertisement: %w", err)
	}

	return nil
}

// checkOwner enforces the mutation rule against the stored owner.
func (s *AdService) checkOwner(ad *model.Advertisement, actorID int64) error {
	if ad.UserID == nil {
		return ErrAdUnowned
	}
	if !ad.IsOwnedBy(actorID) {
		return ErrNotOwner
	}
	return nil
}

// Limits count characters, not bytes, matching the varchar columns.
func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > model.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
