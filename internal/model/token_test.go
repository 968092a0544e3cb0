package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestToken_IsExpired(t *testing.T) {
	t.Parallel()

	ttl := 60 * time.Second

	testCases := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{
			name:      "fresh token is valid",
			createdAt: time.Now(),
			want:      false,
		},
		{
			name:      "token within TTL is valid",
			createdAt: time.Now().Add(-30 * time.Second),
			want:      false,
		},
		{
			name:      "token past TTL is expired",
			createdAt: time.Now().Add(-61 * time.Second),
			want:      true,
		},
		{
			name:      "ancient token is expired",
			createdAt: time.Now().Add(-24 * time.Hour),
			want:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token := &Token{
				ID:        uuid.New(),
				UserID:    1,
				CreatedAt: tc.createdAt,
			}

			if got := token.IsExpired(ttl); got != tc.want {
				t.Errorf("IsExpired() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToken_IsExpired_InclusiveBoundary(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := &Token{ID: uuid.New(), UserID: 1, CreatedAt: created}
	ttl := time.Hour

	if !token.isExpiredAt(created.Add(ttl), ttl) {
		t.Error("token at exactly creation+TTL should be expired")
	}
	if token.isExpiredAt(created.Add(ttl-time.Nanosecond), ttl) {
		t.Error("token just inside the TTL should be valid")
	}
}

func TestToken_ExpiresAt(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := &Token{ID: uuid.New(), UserID: 1, CreatedAt: created}

	want := created.Add(time.Hour)
	if got := token.ExpiresAt(time.Hour); !got.Equal(want) {
		t.Errorf("ExpiresAt() = %v, want %v", got, want)
	}
}

func TestAdvertisement_IsOwnedBy(t *testing.T) {
	t.Parallel()

	owner := int64(42)

	testCases := []struct {
		name   string
		userID *int64
		check  int64
		want   bool
	}{
		{name: "owner matches", userID: &owner, check: 42, want: true},
		{name: "different user", userID: &owner, check: 7, want: false},
		{name: "unowned ad matches no one", userID: nil, check: 42, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ad := &Advertisement{ID: 1, Title: "t", Description: "d", UserID: tc.userID}
			if got := ad.IsOwnedBy(tc.check); got != tc.want {
				t.Errorf("IsOwnedBy(%d) = %v, want %v", tc.check, got, tc.want)
			}
		})
	}
}
