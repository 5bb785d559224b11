package domain

import (
	"context"
	"time"
)

// EventStatus is the visibility state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublic    EventStatus = "public"
	EventStatusPrivate   EventStatus = "private"
	EventStatusCancelled EventStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublic, EventStatusPrivate, EventStatusCancelled:
		return true
	}
	return false
}

// Event represents an organizer's event.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartsAt    *time.Time  `json:"starts_at"`
	Location    string      `json:"location"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(ownerID, title, description, location string, startsAt *time.Time, status EventStatus, createdAt, updatedAt time.Time) *Event {
	return &Event{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    startsAt,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsOwnedBy reports whether userID owns the event. An empty userID never owns anything.
func (e *Event) IsOwnedBy(userID string) bool {
	return userID != "" && e.OwnerID == userID
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// CreateWithInvitees inserts the event and one invitee per email in a single
	// transaction. Duplicate emails are reported as not created; any other failure
	// rolls back the event as well.
	CreateWithInvitees(ctx context.Context, event *Event, emails []string) ([]*InviteItem, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
}

// CreateEventInput is the data accepted when an organizer creates an event.
type CreateEventInput struct {
	OwnerID     string
	Title       string
	Description string
	Location    string
	StartsAt    *time.Time
	Status      EventStatus
	Invitees    []string
}

// CreatedEvent is the result of creating an event: the event plus the outcome
// of each invitee supplied with it (private events only).
type CreatedEvent struct {
	Event    *Event        `json:"event"`
	Invitees []*InviteItem `json:"invitees"`
}

// EventView is an event together with the reason the caller may see it.
type EventView struct {
	Event  *Event          `json:"event"`
	Access *AccessDecision `json:"access"`
}

// EventService defines the business logic for events and the access gate.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*CreatedEvent, error)
	ListEventsByOwner(ctx context.Context, ownerID string) ([]*Event, error)
	// GetPublicEvent returns the event only when it is public.
	GetPublicEvent(ctx context.Context, eventID string) (*Event, error)
	// GetPrivateEvent resolves access for a private event using the presented token.
	GetPrivateEvent(ctx context.Context, eventID, callerID, token string) (*EventView, error)
	// ViewEvent runs the full gate: public first, then owner, then token.
	ViewEvent(ctx context.Context, eventID, callerID, token string) (*EventView, error)
}
