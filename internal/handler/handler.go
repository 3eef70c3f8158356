// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington-high/activities/internal/metrics"
	"github.com/mergington-high/activities/internal/model"
	"github.com/mergington-high/activities/internal/service"
	"github.com/mergington-high/activities/internal/store"
)

// ActivityHandler holds all HTTP handlers for the activities API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Detail: msg})
}

// activityName extracts the {name} route parameter. chi routes on the
// escaped path only when it differs from the decoded one (URL.RawPath is
// set); just in that case the param still carries %-escapes and needs one
// decode. Unescaping unconditionally would double-decode names containing
// a literal percent sign.
func activityName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("invalid activity name %q", name)
	}
	return decoded, nil
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns the full catalog as a JSON object keyed by activity name.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// Signup handles POST /activities/{name}/signup?email=...
// Enrolls the email in the named activity.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name, err := activityName(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	email := r.URL.Query().Get("email")

	if _, err := h.svc.Signup(r.Context(), name, email); err != nil {
		// The activity label must stay bounded: only names that resolved
		// against the store may be used, never client-supplied strings.
		switch {
		case errors.Is(err, store.ErrNotFound):
			metrics.SignupsTotal.WithLabelValues(metrics.UnknownActivity, "not_found").Inc()
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrAlreadySignedUp):
			metrics.SignupsTotal.WithLabelValues(name, "duplicate").Inc()
			writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
		case errors.Is(err, store.ErrActivityFull):
			metrics.SignupsTotal.WithLabelValues(name, "full").Inc()
			writeError(w, http.StatusConflict, "Activity is full")
		default:
			metrics.SignupsTotal.WithLabelValues(metrics.UnknownActivity, "invalid").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	metrics.SignupsTotal.WithLabelValues(name, "ok").Inc()
	writeJSON(w, http.StatusOK, model.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Remove handles POST /activities/{name}/remove?email=...
// Unenrolls the email from the named activity.
func (h *ActivityHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name, err := activityName(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	email := r.URL.Query().Get("email")

	if _, err := h.svc.Remove(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "Participant not found in this activity")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, name),
	})
}

// ─── Root & health ────────────────────────────────────────────────────────────

// Root handles GET / by redirecting to the static index page.
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// HealthCheck returns a handler for GET /health reporting the process
// instance id, so restarts (and the store reset they imply) are observable.
func HealthCheck(instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.HealthResponse{
			Status:     "ok",
			InstanceID: instanceID,
		})
	}
}
