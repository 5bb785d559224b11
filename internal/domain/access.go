package domain

import "context"

// AccessReason explains why a viewer was granted access to an event.
type AccessReason string

const (
	AccessReasonOwner   AccessReason = "owner"
	AccessReasonInvited AccessReason = "invited"
	// AccessReasonSharedLink is reserved. Forwarded links are classified as invited.
	AccessReasonSharedLink  AccessReason = "shared_link"
	AccessReasonPublicEvent AccessReason = "public_event"
)

// AccessDecision is the outcome of classifying one view attempt. It is computed
// fresh on every request and never persisted.
// swagger:model AccessDecision
type AccessDecision struct {
	Granted bool         `json:"granted"`
	Reason  AccessReason `json:"reason,omitempty"`
	// InviteeID and InviteeEmail are set when Reason is invited.
	InviteeID    string `json:"invitee_id,omitempty"`
	InviteeEmail string `json:"invitee_email,omitempty"`
}

// Denied is the decision returned when no rule grants access.
func Denied() *AccessDecision {
	return &AccessDecision{Granted: false}
}

// AccessClassifier decides whether a caller may view an event.
type AccessClassifier interface {
	// Classify evaluates owner, public and invited rules in that order. callerID and
	// token may be empty. An unknown token yields a denied decision, not an error.
	Classify(ctx context.Context, event *Event, callerID, token string) (*AccessDecision, error)
}
