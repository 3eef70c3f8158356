package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-high/activities/internal/model"
	"github.com/mergington-high/activities/internal/store"
)

func newTestService() *ActivityService {
	return NewActivityService(store.New(map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}))
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  string
	}{
		{
			name:     "empty activity name",
			activity: "   ",
			email:    "a@b.com",
			wantErr:  "activity name is required",
		},
		{
			name:     "empty email",
			activity: "Chess Club",
			email:    "",
			wantErr:  "email is required",
		},
		{
			name:     "email without domain",
			activity: "Chess Club",
			email:    "not-an-email",
			wantErr:  "not a valid email address",
		},
		{
			name:     "email with bare domain",
			activity: "Chess Club",
			email:    "a@nodot",
			wantErr:  "not a valid email address",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.Signup(context.Background(), tc.activity, tc.email)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSignup_NormalizesEmail(t *testing.T) {
	svc := newTestService()

	got, err := svc.Signup(context.Background(), "Chess Club", "  New.Student@Mergington.EDU ")
	require.NoError(t, err)
	assert.Contains(t, got.Participants, "new.student@mergington.edu")
}

func TestSignup_PassesThroughStoreErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Quidditch", "a@b.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Signup(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, store.ErrAlreadySignedUp)
}

func TestRemove_PassesThroughStoreErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Remove(ctx, "Quidditch", "a@b.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Remove(ctx, "Chess Club", "stranger@mergington.edu")
	assert.ErrorIs(t, err, store.ErrParticipantNotFound)
}

func TestRemove_NormalizesEmail(t *testing.T) {
	svc := newTestService()

	got, err := svc.Remove(context.Background(), "Chess Club", " Michael@Mergington.EDU ")
	require.NoError(t, err)
	assert.Empty(t, got.Participants)
}

func TestListActivities(t *testing.T) {
	svc := newTestService()

	got := svc.ListActivities(context.Background())
	require.Len(t, got, 1)
	assert.Contains(t, got, "Chess Club")
}
