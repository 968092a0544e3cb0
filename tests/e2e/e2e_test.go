//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/adboard/adboard/internal/auth"
	"github.com/adboard/adboard/internal/model"
	"github.com/adboard/adboard/internal/repository"
)

const fixturePassword = "e2e-password-1"

type loginResponse struct {
	Token string `json:"token"`
}

type createAdResponse struct {
	ID int64 `json:"id"`
}

type adResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreationDate int64  `json:"creation_date"`
	Owner        *int64 `json:"owner"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("ADBOARD_BASE_URL", "http://localhost:8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatalf("DATABASE_URL is required for e2e tests")
	}

	owner := provisionUser(t, dbURL)
	stranger := provisionUser(t, dbURL)

	ownerToken := login(t, baseURL, owner.Name, fixturePassword)
	strangerToken := login(t, baseURL, stranger.Name, fixturePassword)

	// Posting and reading ads needs no token.
	adID := createAd(t, baseURL, "garage sale", "everything must go", owner.ID)

	ad := getAd(t, baseURL, adID)
	if ad.Title != "garage sale" || ad.Description != "everything must go" {
		t.Fatalf("unexpected ad content: %+v", ad)
	}
	if ad.Owner == nil || *ad.Owner != owner.ID {
		t.Fatalf("expected owner %d, got %v", owner.ID, ad.Owner)
	}
	if ad.CreationDate == 0 {
		t.Fatalf("expected a populated creation_date")
	}

	// A non-owner cannot update the ad even with a valid token.
	patchURL := fmt.Sprintf("%s/users/%d/ads/%d", baseURL, owner.ID, adID)
	var denied errorResponse
	status := doJSON(t, http.MethodPatch, patchURL, strangerToken,
		map[string]any{"title": "hijacked"}, &denied)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner patch, got %d", status)
	}
	if denied.Description != "access for owner only!" {
		t.Fatalf("unexpected denial message: %q", denied.Description)
	}

	// Garbage tokens are rejected with the generic message.
	var rejected errorResponse
	status = doJSON(t, http.MethodPatch, patchURL, "not-a-token",
		map[string]any{"title": "hijacked"}, &rejected)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for garbage token, got %d", status)
	}
	if rejected.Description != "incorrect token!" {
		t.Fatalf("unexpected rejection message: %q", rejected.Description)
	}

	// The owner can patch a single field.
	var patched statusResponse
	status = doJSON(t, http.MethodPatch, patchURL, ownerToken,
		map[string]any{"title": "moving sale"}, &patched)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from owner patch, got %d", status)
	}
	if patched.Status != "success" {
		t.Fatalf("unexpected patch status: %q", patched.Status)
	}

	ad = getAd(t, baseURL, adID)
	if ad.Title != "moving sale" {
		t.Fatalf("patch not applied, title is %q", ad.Title)
	}
	if ad.Description != "everything must go" {
		t.Fatalf("patch clobbered the description: %q", ad.Description)
	}

	// Delete, then confirm the ad is gone.
	var deleted statusResponse
	status = doJSON(t, http.MethodDelete, patchURL, ownerToken, nil, &deleted)
	if status != http.StatusOK || deleted.Status != "success" {
		t.Fatalf("expected successful delete, got %d %+v", status, deleted)
	}

	var gone errorResponse
	status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/ads/%d", baseURL, adID), "", nil, &gone)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
	if gone.Description != "Advertisement not found" {
		t.Fatalf("unexpected not-found message: %q", gone.Description)
	}
}

func TestE2ELoginRejectsBadCredentials(t *testing.T) {
	baseURL := envOrDefault("ADBOARD_BASE_URL", "http://localhost:8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatalf("DATABASE_URL is required for e2e tests")
	}

	user := provisionUser(t, dbURL)

	cases := []struct {
		name     string
		login    string
		password string
	}{
		{"wrong password", user.Name, "wrong"},
		{"unknown user", "no-such-user-" + ulid.Make().String(), fixturePassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var resp errorResponse
			status := doJSON(t, http.MethodPost, baseURL+"/login", "",
				map[string]any{"name": tc.login, "password": tc.password}, &resp)
			if status != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", status)
			}
			if resp.Description != "incorrect login or password" {
				t.Fatalf("unexpected message: %q", resp.Description)
			}
		})
	}
}

func TestE2ECreateIgnoresUnknownFields(t *testing.T) {
	baseURL := envOrDefault("ADBOARD_BASE_URL", "http://localhost:8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatalf("DATABASE_URL is required for e2e tests")
	}

	user := provisionUser(t, dbURL)

	// Client-supplied id and creation_date must not leak into the record.
	var created createAdResponse
	status := doJSON(t, http.MethodPost, baseURL+"/ads/", "", map[string]any{
		"title":         "bike",
		"description":   "red bike",
		"user_id":       user.ID,
		"id":            999999,
		"creation_date": 1,
	}, &created)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from create, got %d", status)
	}
	if created.ID == 999999 {
		t.Fatalf("client-supplied id was honored")
	}

	ad := getAd(t, baseURL, created.ID)
	if ad.CreationDate == 1 {
		t.Fatalf("client-supplied creation_date was honored")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// provisionUser inserts a user with a unique name directly through the
// repository, the same way the bootstrap script does.
func provisionUser(t *testing.T, dbURL string) *model.User {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer repo.Close()

	if err := repo.InitSchema(ctx); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	hash, err := auth.HashPassword(fixturePassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Name:         "e2e-" + strings.ToLower(ulid.Make().String()),
		PasswordHash: hash,
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func login(t *testing.T, baseURL, name, password string) string {
	t.Helper()

	var resp loginResponse
	status := doJSON(t, http.MethodPost, baseURL+"/login", "",
		map[string]any{"name": name, "password": password}, &resp)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d", status)
	}
	if _, err := uuid.Parse(resp.Token); err != nil {
		t.Fatalf("login returned a non-uuid token %q: %v", resp.Token, err)
	}
	return resp.Token
}

func createAd(t *testing.T, baseURL, title, description string, ownerID int64) int64 {
	t.Helper()

	var resp createAdResponse
	status := doJSON(t, http.MethodPost, baseURL+"/ads/", "", map[string]any{
		"title":       title,
		"description": description,
		"user_id":     ownerID,
	}, &resp)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from ad create, got %d", status)
	}
	if resp.ID == 0 {
		t.Fatalf("ad create response missing id")
	}
	return resp.ID
}

func getAd(t *testing.T, baseURL string, id int64) adResponse {
	t.Helper()

	var resp adResponse
	status := doJSON(t, http.MethodGet, fmt.Sprintf("%s/ads/%d", baseURL, id), "", nil, &resp)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from ad get, got %d", status)
	}
	return resp
}

func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && resp.ContentLength != 0 {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp.StatusCode
}
