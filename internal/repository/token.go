package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adboard/adboard/internal/model"
)

// ErrTokenNotFound is returned when a token is absent by primary key.
var ErrTokenNotFound = errors.New("token not found")

// CreateToken inserts a new token and populates its creation time.
func (r *Repository) CreateToken(ctx context.Context, token *model.Token) error {
	query := `
		INSERT INTO tokens (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.conn(ctx).QueryRow(ctx, query, token.ID, token.UserID).
		Scan(&token.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	return nil
}

// GetTokenByID retrieves a token by its ID.
func (r *Repository) GetTokenByID(ctx context.Context, id uuid.UUID) (*model.Token, error) {
	query := `
		SELECT id, user_id, created_at
		FROM tokens
		WHERE id = $1
	`

	var token model.Token
	err := r.conn(ctx).QueryRow(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token by ID: %w", err)
	}

	return &token, nil
}
