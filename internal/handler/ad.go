package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adboard/adboard/internal/auth"
	"github.com/adboard/adboard/internal/handler/dto"
	"github.com/adboard/adboard/internal/service"
)

// AdHandler handles HTTP requests for advertisement operations.
type AdHandler struct {
	svc    *service.AdService
	logger *slog.Logger
}

// NewAdHandler creates a new AdHandler.
func NewAdHandler(svc *service.AdService, logger *slog.Logger) *AdHandler {
	return &AdHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /ads/.
func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.CreateAdInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	}

	ad, err := h.svc.CreateAd(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("ad_created",
		"ad_id", ad.ID,
		"owned", ad.UserID != nil,
	)

	writeJSON(w, http.StatusOK, dto.CreateAdResponse{ID: ad.ID})
}

// Get handles GET /ads/{ads_id}.
func (h *AdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}

	ad, err := h.svc.GetAd(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAdResponse(ad))
}

// Update handles PATCH /users/{user_id}/ads/{ads_id}.
// The ownership guard has already matched the route's user_id against
// the authenticated identity; the service still verifies that identity
// against the stored owner.
func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}

	actorID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "access denied!")
		return
	}

	var req dto.UpdateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateAdInput{
		ID:          id,
		ActorID:     actorID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.svc.UpdateAd(r.Context(), input); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("ad_updated", "ad_id", id, "user_id", actorID)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "success"})
}

// Delete handles DELETE /users/{user_id}/ads/{ads_id}.
func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}

	actorID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "access denied!")
		return
	}

	if err := h.svc.DeleteAd(r.Context(), id, actorID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("ad_deleted", "ad_id", id, "user_id", actorID)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "success"})
}

// adID parses the ads_id route parameter, writing a 404 on failure.
func (h *AdHandler) adID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ads_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Advertisement not found")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses.
func (h *AdHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAdNotFound):
		writeError(w, http.StatusNotFound, "Advertisement not found")
	case errors.Is(err, service.ErrNotOwner), errors.Is(err, service.ErrAdUnowned):
		writeError(w, http.StatusForbidden, "access for owner only!")
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrDescriptionTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
