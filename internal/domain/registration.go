package domain

import (
	"context"
	"time"
)

// Registration represents an attendee's registration for an event. When the
// attendee arrived through an invite link, ReferredByInviteeID points at that invitee.
// swagger:model Registration
type Registration struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	ReferredByInviteeID *string   `json:"referred_by_invitee_id"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(eventID, name, email string, referredBy *string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:             eventID,
		Name:                name,
		Email:               email,
		ReferredByInviteeID: referredBy,
		CreatedAt:           createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts reg unless (event_id, email) is already registered. created is
	// false when it was; reg is then filled with the stored registration.
	Create(ctx context.Context, reg *Registration) (created bool, err error)
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Registration, error)
}

// RegisterInput is the data submitted to register for an event.
type RegisterInput struct {
	EventID     string
	CallerID    string
	InviteToken string
	Name        string
	Email       string
}

// AttendeeService defines attendee-facing operations such as event registration.
type AttendeeService interface {
	// RegisterForEvent registers for the event if the caller may view it. Returns (reg, created, err):
	// created is true if a new registration was created, false if already registered.
	RegisterForEvent(ctx context.Context, in RegisterInput) (*Registration, bool, error)
}
