package domain

import (
	"context"
	"time"
)

// Subjects published on the event bus.
const (
	SubjectInviteeCreated  = "invitee.created"
	SubjectInviteeAccessed = "invitee.accessed"
)

// EventPublisher publishes domain notifications. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// InviteeCreatedEvent is published once per newly created invitee.
type InviteeCreatedEvent struct {
	InviteeID string    `json:"invitee_id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// InviteeAccessedEvent is published when an invitee first opens their invite link.
type InviteeAccessedEvent struct {
	InviteeID  string    `json:"invitee_id"`
	EventID    string    `json:"event_id"`
	AccessedAt time.Time `json:"accessed_at"`
}
