package middleware

import (
	"net/http"
)

// SecurityConfig holds configuration for security headers.
type SecurityConfig struct {
	// IsDevelopment disables HSTS in dev environments.
	IsDevelopment bool
	// MaxRequestBodySize is the max allowed request body in bytes.
	MaxRequestBodySize int64
}

// Security returns a middleware that applies baseline security headers to
// all responses and caps the request body size.
func Security(cfg SecurityConfig) func(http.Handler) http.Handler {
	maxBody := cfg.MaxRequestBodySize
	if maxBody <= 0 {
		maxBody = 1 << 20 // 1MB
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.IsDevelopment {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Cache-Control", "no-store")

			r.Body = http.MaxBytesReader(w, r.Body, maxBody)

			next.ServeHTTP(w, r)
		})
	}
}
