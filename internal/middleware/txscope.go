package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/adboard/adboard/internal/repository"
)

// TxBeginner starts a transaction for a single request's scope.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxScopeConfig holds configuration for the transaction scope middleware.
type TxScopeConfig struct {
	Logger *slog.Logger
	DB     TxBeginner
}

// TxScope returns a middleware that opens one storage transaction per
// request and binds it into the request context. The transaction commits
// when the response status is below 500 and rolls back otherwise. The
// deferred rollback also covers handler panics; after a successful commit
// it is a no-op.
func TxScope(cfg TxScopeConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tx, err := cfg.DB.Begin(ctx)
			if err != nil {
				cfg.Logger.Error("failed to begin transaction",
					slog.String("request_id", GetRequestID(ctx)),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			defer func() {
				_ = tx.Rollback(ctx)
			}()

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r.WithContext(repository.ContextWithTx(ctx, tx)))

			if wrapped.status >= http.StatusInternalServerError {
				return
			}

			if err := tx.Commit(ctx); err != nil {
				// The response has already been written; all we can do is log.
				cfg.Logger.Error("failed to commit transaction",
					slog.String("request_id", GetRequestID(ctx)),
					slog.String("error", err.Error()),
				)
			}
		})
	}
}
