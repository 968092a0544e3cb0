package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adboard/adboard/internal/model"
)

// ErrAdNotFound is returned when an advertisement is absent by primary key.
var ErrAdNotFound = errors.New("advertisement not found")

// CreateAd inserts a new advertisement and populates its ID and creation time.
func (r *Repository) CreateAd(ctx context.Context, ad *model.Advertisement) error {
	query := `
		INSERT INTO advertisements (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.conn(ctx).QueryRow(ctx, query, ad.Title, ad.Description, ad.UserID).
		Scan(&ad.ID, &ad.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create advertisement: %w", err)
	}

	return nil
}

// GetAdByID retrieves an advertisement by its ID.
func (r *Repository) GetAdByID(ctx context.Context, id int64) (*model.Advertisement, error) {
	query := `
		SELECT id, title, description, user_id, created_at
		FROM advertisements
		WHERE id = $1
	`

	var ad model.Advertisement
	err := r.conn(ctx).QueryRow(ctx, query, id).Scan(
		&ad.ID,
		&ad.Title,
		&ad.Description,
		&ad.UserID,
		&ad.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdNotFound
		}
		return nil, fmt.Errorf("failed to get advertisement by ID: %w", err)
	}

	return &ad, nil
}

// UpdateAd persists the mutable fields of an advertisement in one statement.
func (r *Repository) UpdateAd(ctx context.Context, ad *model.Advertisement) error {
	query := `
		UPDATE advertisements
		SET title = $2, description = $3
		WHERE id = $1
	`

	result, err := r.conn(ctx).Exec(ctx, query, ad.ID, ad.Title, ad.Description)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAdNotFound
	}

	return nil
}

// DeleteAd removes an advertisement by its ID.
func (r *Repository) DeleteAd(ctx context.Context, id int64) error {
	query := `DELETE FROM advertisements WHERE id = $1`

	result, err := r.conn(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAdNotFound
	}

	return nil
}
