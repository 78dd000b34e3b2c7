package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dylan-PlymouthUni/trailhead/internal/trail"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// TrailStore provides persistence for trail records.
type TrailStore interface {
	List(ctx context.Context) ([]*trail.Trail, error)
	GetByID(ctx context.Context, id string) (*trail.Trail, error)
	Create(ctx context.Context, input trail.CreateTrailInput) (*trail.Trail, error)
	Update(ctx context.Context, id string, input trail.UpdateTrailInput) (*trail.Trail, error)
	Delete(ctx context.Context, id string) error
}

// trailsHandler groups trail-related HTTP handlers.
type trailsHandler struct {
	store TrailStore
}

func newTrailsHandler(store TrailStore) *trailsHandler {
	return &trailsHandler{store: store}
}

// ListTrails handles GET /trails.
func (h *trailsHandler) ListTrails(w http.ResponseWriter, r *http.Request) {
	trails, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list trails")
		return
	}
	if trails == nil {
		trails = []*trail.Trail{}
	}
	writeJSON(w, http.StatusOK, trails)
}

// GetTrail handles GET /trails/{id}.
func (h *trailsHandler) GetTrail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "not_found", "trail not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to get trail")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTrail handles POST /trails (admin).
func (h *trailsHandler) CreateTrail(w http.ResponseWriter, r *http.Request) {
	var input trail.CreateTrailInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	t, err := h.store.Create(r.Context(), input)
	if err != nil {
		if trail.IsValidationError(err) || trail.IsConstraintViolation(err) {
			writeUnprocessable(w, r, err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create trail")
		return
	}

	auditLog(r, "create", "trail", t.TrailID, "name", t.Name)

	writeJSON(w, http.StatusCreated, t)
}

// UpdateTrail handles PUT /trails/{id} (admin). Only fields named in the
// request body are overwritten; the rest keep their stored values.
func (h *trailsHandler) UpdateTrail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input trail.UpdateTrailInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	t, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "not_found", "trail not found")
			return
		}
		if trail.IsConstraintViolation(err) {
			writeUnprocessable(w, r, err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to update trail")
		return
	}

	auditLog(r, "update", "trail", id)

	writeJSON(w, http.StatusOK, t)
}

// DeleteTrail handles DELETE /trails/{id} (admin).
func (h *trailsHandler) DeleteTrail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "not_found", "trail not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to delete trail")
		return
	}

	auditLog(r, "delete", "trail", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Trail deleted successfully"})
}
