package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adboard/adboard/internal/auth"
	"github.com/adboard/adboard/internal/model"
	"github.com/adboard/adboard/internal/repository"
)

// TokenHeader is the request header carrying the token identifier.
const TokenHeader = "token"

// Error messages surfaced to the caller. A missing header and an unknown
// token id produce the same message so callers cannot probe for valid ids.
const (
	msgIncorrectToken = "incorrect token!"
	msgTokenExpired   = "the token has expired!"
)

// TokenSource resolves a token identifier to a stored token.
type TokenSource interface {
	GetTokenByID(ctx context.Context, id uuid.UUID) (*model.Token, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Tokens TokenSource
	TTL    time.Duration
}

// Auth returns a middleware that authenticates requests by the token header.
// It resolves the header value to a stored token, checks its TTL, and
// injects the caller's identity into the request context.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(TokenHeader)
			if raw == "" {
				logAuthFailure(cfg.Logger, r, "missing_token")
				writeError(w, http.StatusForbidden, msgIncorrectToken)
				return
			}

			tokenID, err := uuid.Parse(raw)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "malformed_token")
				writeError(w, http.StatusForbidden, msgIncorrectToken)
				return
			}

			token, err := cfg.Tokens.GetTokenByID(r.Context(), tokenID)
			if err != nil {
				if errors.Is(err, repository.ErrTokenNotFound) {
					logAuthFailure(cfg.Logger, r, "unknown_token")
					writeError(w, http.StatusForbidden, msgIncorrectToken)
					return
				}
				cfg.Logger.Error("database error during auth",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if token.IsExpired(cfg.TTL) {
				logAuthFailure(cfg.Logger, r, "expired_token")
				writeError(w, http.StatusForbidden, msgTokenExpired)
				return
			}

			identity := &auth.Identity{TokenID: token.ID, UserID: token.UserID}
			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}
