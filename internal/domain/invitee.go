package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Invitee is one invited recipient of a private event. The invite token is a
// bearer credential granting view access to that event only.
// swagger:model Invitee
type Invitee struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	Email         string     `json:"email"`
	InviteToken   string     `json:"invite_token"`
	HasAccessed   bool       `json:"has_accessed"`
	AccessedAt    *time.Time `json:"accessed_at"`
	ReferredCount int        `json:"referred_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether email looks like a deliverable address once normalized.
func ValidEmail(email string) bool {
	email = NormalizeEmail(email)
	return len(email) <= 254 && emailPattern.MatchString(email)
}

// InviteLink builds the link sent to an invitee. The query parameter name and the
// raw token are relied upon by links already delivered, so neither may change.
func InviteLink(baseURL, eventID, token string) string {
	return strings.TrimSuffix(baseURL, "/") + "/event/" + eventID + "?invite=" + token
}

// InviteOutcome discriminates the result of inviting a single email.
type InviteOutcome string

const (
	InviteOutcomeCreated        InviteOutcome = "created"
	InviteOutcomeAlreadyInvited InviteOutcome = "already_invited"
	InviteOutcomeFailed         InviteOutcome = "failed"
)

// InviteItem is the per-email result of an invite request.
// swagger:model InviteItem
type InviteItem struct {
	Email   string        `json:"email"`
	Outcome InviteOutcome `json:"outcome"`
	Invitee *Invitee      `json:"invitee,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// InviteResult holds one item per submitted email, in submission order.
type InviteResult struct {
	Items []*InviteItem
}

// Created returns the items whose invitee record was created by this request.
func (r *InviteResult) Created() []*InviteItem {
	out := make([]*InviteItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.Outcome == InviteOutcomeCreated {
			out = append(out, it)
		}
	}
	return out
}

// NotCreated returns the items that were skipped or failed.
func (r *InviteResult) NotCreated() []*InviteItem {
	out := make([]*InviteItem, 0)
	for _, it := range r.Items {
		if it.Outcome != InviteOutcomeCreated {
			out = append(out, it)
		}
	}
	return out
}

// InviteeListItem is an invitee as shown to the event organizer.
// swagger:model InviteeListItem
type InviteeListItem struct {
	*Invitee
	InviteLink string `json:"invite_link"`
}

// ResendFilter selects invitees for a resend. Empty filter means all invitees of the event.
// When both fields are set, InviteeIDs wins.
type ResendFilter struct {
	InviteeIDs []string
	Emails     []string
}

// ResendResult aggregates delivery outcomes of a resend.
// swagger:model ResendResult
type ResendResult struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// InviteTokenIssuer mints opaque invite tokens.
type InviteTokenIssuer interface {
	Issue() (string, error)
}

// InviteeRepository defines storage operations for invitees.
type InviteeRepository interface {
	// UpsertIfAbsent creates an invitee for (eventID, email) unless one already exists.
	// created is false when the pair was already present; the existing record is not modified.
	UpsertIfAbsent(ctx context.Context, eventID, email string) (inv *Invitee, created bool, err error)
	FindByToken(ctx context.Context, token string) (*Invitee, error)
	FindByEventAndEmail(ctx context.Context, eventID, email string) (*Invitee, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Invitee, error)
	ListForResend(ctx context.Context, eventID string, filter ResendFilter) ([]*Invitee, error)
	// MarkAccessed flips has_accessed to true and stamps accessed_at, only the first time.
	MarkAccessed(ctx context.Context, inviteeID string, at time.Time) error
	// DeleteMany deletes the given ids that belong to eventID and returns how many were removed.
	DeleteMany(ctx context.Context, eventID string, ids []string) (int64, error)
}

// InvitationService manages invitees of private events. Every operation requires
// the caller to own the event.
type InvitationService interface {
	Invite(ctx context.Context, eventID, callerID string, emails []string) (*InviteResult, error)
	ListInvitees(ctx context.Context, eventID, callerID string) ([]*InviteeListItem, error)
	RemoveInvitees(ctx context.Context, eventID, callerID string, ids []string) (int64, error)
	Resend(ctx context.Context, eventID, callerID string, filter ResendFilter) (*ResendResult, error)
	// EnqueueInvitations schedules delivery of invitation emails for freshly created
	// invitees without waiting for the outcome, and announces each one on the event bus.
	EnqueueInvitations(ctx context.Context, event *Event, invitees []*Invitee)
}
