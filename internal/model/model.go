// Package model defines the core domain types for the school activities
// signup service.
package model

// Activity represents an extracurricular offering students can sign up for.
// Activities are identified by their human-readable name, which serves as the
// map key in the store and on the wire, so the name is not repeated here.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Remaining returns the number of open spots.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when no spots remain.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already enrolled.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// MessageResponse is the envelope for signup/remove confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error envelope. The field is named
// "detail" to preserve the wire format the frontend already consumes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the payload for the health endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	InstanceID string `json:"instance_id"`
}
