package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the private event invitation email.
type InvitationEmailData struct {
	Email            string     `json:"email"`
	EventID          string     `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	InviteLink       string     `json:"invite_link"`
}

// EventDate formats the event date for templates, or "" when unscheduled.
func (d *InvitationEmailData) EventDate() string {
	if d.EventStartsAt == nil {
		return ""
	}
	return d.EventStartsAt.Format("Monday, January 2, 2006")
}

// EventTime formats the event start time for templates, or "" when unscheduled.
func (d *InvitationEmailData) EventTime() string {
	if d.EventStartsAt == nil {
		return ""
	}
	return d.EventStartsAt.Format("15:04 MST")
}

// NewInvitationEmailData builds the invitation payload for one invitee.
func NewInvitationEmailData(event *Event, inv *Invitee, baseURL string) *InvitationEmailData {
	return &InvitationEmailData{
		Email:            inv.Email,
		EventID:          event.ID,
		EventTitle:       event.Title,
		EventDescription: event.Description,
		EventLocation:    event.Location,
		EventStartsAt:    event.StartsAt,
		InviteLink:       InviteLink(baseURL, event.ID, inv.InviteToken),
	}
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvitation(ctx context.Context, data *InvitationEmailData) error
}

// DeliveryQueue accepts invitation emails for delivery in the background.
// Enqueue never blocks on delivery and never reports delivery failures to the caller.
type DeliveryQueue interface {
	Enqueue(data *InvitationEmailData)
}
