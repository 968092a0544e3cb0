package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adboard/adboard/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameExists   = errors.New("name already exists")
)

// CreateUser inserts a new user and populates its ID and creation time.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (name, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.conn(ctx).QueryRow(ctx, query, user.Name, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.conn(ctx).QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

// GetUserByName retrieves a user by their unique name.
func (r *Repository) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM users
		WHERE name = $1
	`

	var user model.User
	err := r.conn(ctx).QueryRow(ctx, query, name).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return &user, nil
}
