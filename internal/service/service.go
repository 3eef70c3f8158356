// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the activity store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington-high/activities/internal/model"
	"github.com/mergington-high/activities/internal/store"
)

// ActivityService orchestrates activity-related operations.
type ActivityService struct {
	store *store.Store
}

// NewActivityService constructs an ActivityService with its store.
func NewActivityService(s *store.Store) *ActivityService {
	return &ActivityService{store: s}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *ActivityService) ListActivities(ctx context.Context) map[string]model.Activity {
	return s.store.List(ctx)
}

// Signup validates the request and enrolls email in the named activity.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (*model.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !isValidEmail(email) {
		return nil, fmt.Errorf("email is not a valid email address")
	}

	activity, err := s.store.Signup(ctx, name, email)
	if err != nil {
		// Surface domain errors directly so handlers can set correct HTTP status.
		if errors.Is(err, store.ErrNotFound) ||
			errors.Is(err, store.ErrActivityFull) ||
			errors.Is(err, store.ErrAlreadySignedUp) {
			return nil, err
		}
		return nil, fmt.Errorf("sign up for activity: %w", err)
	}
	return activity, nil
}

// Remove validates the request and unenrolls email from the named activity.
func (s *ActivityService) Remove(ctx context.Context, name, email string) (*model.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	activity, err := s.store.Remove(ctx, name, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) ||
			errors.Is(err, store.ErrParticipantNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("remove from activity: %w", err)
	}
	return activity, nil
}

// isValidEmail does a basic structural check (no external deps).
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
