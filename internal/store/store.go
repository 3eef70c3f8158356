// Package store implements the in-memory activity store. It replaces a
// database layer entirely: the whole catalog lives in process memory, is
// seeded at construction, and resets on restart.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mergington-high/activities/internal/model"
)

// ErrNotFound is returned when a requested activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining spots.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadySignedUp is returned when the same email signs up twice.
var ErrAlreadySignedUp = errors.New("already signed up for this activity")

// ErrParticipantNotFound is returned when removing an email that is not
// enrolled in the activity.
var ErrParticipantNotFound = errors.New("participant not found")

// Store holds the mapping from activity name to Activity and mediates all
// mutations behind a single mutex.
//
// A naive read-then-append on a shared map loses updates under concurrent
// signups: two handlers read the same participant slice, both append, and
// one write clobbers the other. The mutex serialises the check-then-append
// critical section so capacity and duplicate checks observe a consistent
// snapshot.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New constructs a Store populated with the given seed activities. The seed
// is deep-copied so the caller's map stays untouched.
func New(seed map[string]model.Activity) *Store {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		copied := a
		copied.Participants = append([]string(nil), a.Participants...)
		activities[name] = &copied
	}
	return &Store{activities: activities}
}

// List returns a deep copy of the full catalog. Callers may mutate the
// result freely without affecting shared state.
func (s *Store) List(ctx context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		copied := *a
		copied.Participants = append([]string(nil), a.Participants...)
		out[name] = copied
	}
	return out
}

// Get returns a copy of a single activity or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return &copied, nil
}

// Signup appends email to the named activity's participant list and returns
// the updated activity. It fails with ErrNotFound for an unknown activity,
// ErrAlreadySignedUp for a duplicate email, and ErrActivityFull when the
// activity is at capacity.
func (s *Store) Signup(ctx context.Context, name, email string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	if a.HasParticipant(email) {
		return nil, ErrAlreadySignedUp
	}
	if a.IsFull() {
		return nil, ErrActivityFull
	}

	a.Participants = append(a.Participants, email)

	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return &copied, nil
}

// Remove deletes email from the named activity's participant list and
// returns the updated activity. It fails with ErrNotFound for an unknown
// activity and ErrParticipantNotFound when the email is not enrolled.
func (s *Store) Remove(ctx context.Context, name, email string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}

	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrParticipantNotFound
	}

	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)

	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return &copied, nil
}
