package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adboard/adboard/internal/auth"
	"github.com/adboard/adboard/internal/model"
	"github.com/adboard/adboard/internal/repository"
)

// ErrInvalidCredentials covers both an unknown name and a wrong password,
// so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("incorrect login or password")

// decoyHash is a syntactically valid argon2id hash verified against when
// the user does not exist, so both failure paths cost a full KDF run.
const decoyHash = "$argon2id$v=19$m=65536,t=3,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthStore is the persistence surface the auth service needs.
type AuthStore interface {
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	CreateToken(ctx context.Context, token *model.Token) error
}

// AuthService handles credential verification and token issuance.
type AuthService struct {
	store AuthStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store AuthStore) *AuthService {
	return &AuthService{store: store}
}

// Login verifies the credentials and issues a new token on success.
func (s *AuthService) Login(ctx context.Context, name, password string) (*model.Token, error) {
	user, err := s.store.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a verification anyway to keep timing level.
			_, _ = auth.VerifyPassword(password, decoyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by name: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	token := &model.Token{
		ID:     uuid.New(),
		UserID: user.ID,
	}

	if err := s.store.CreateToken(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return token, nil
}
