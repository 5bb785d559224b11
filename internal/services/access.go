package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventticketing/internal/domain"
)

type accessClassifier struct {
	inviteeRepo domain.InviteeRepository
	publisher   domain.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewAccessClassifier returns the classifier used by every event view and registration.
func NewAccessClassifier(inviteeRepo domain.InviteeRepository, publisher domain.EventPublisher, logger *slog.Logger) domain.AccessClassifier {
	return &accessClassifier{
		inviteeRepo: inviteeRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (c *accessClassifier) Classify(ctx context.Context, event *domain.Event, callerID, token string) (*domain.AccessDecision, error) {
	if event.IsOwnedBy(callerID) {
		return &domain.AccessDecision{Granted: true, Reason: domain.AccessReasonOwner}, nil
	}
	if event.Status == domain.EventStatusPublic {
		return &domain.AccessDecision{Granted: true, Reason: domain.AccessReasonPublicEvent}, nil
	}
	if event.Status != domain.EventStatusPrivate || token == "" {
		return domain.Denied(), nil
	}

	inv, err := c.inviteeRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Denied(), nil
		}
		return nil, fmt.Errorf("find invitee by token: %w", err)
	}
	// A token only opens the event it was issued for.
	if inv.EventID != event.ID {
		return domain.Denied(), nil
	}

	if !inv.HasAccessed {
		at := c.now().UTC()
		if err := c.inviteeRepo.MarkAccessed(ctx, inv.ID, at); err != nil {
			return nil, fmt.Errorf("mark invitee accessed: %w", err)
		}
		payload := domain.InviteeAccessedEvent{InviteeID: inv.ID, EventID: event.ID, AccessedAt: at}
		if err := c.publisher.Publish(ctx, domain.SubjectInviteeAccessed, payload); err != nil {
			c.logger.WarnContext(ctx, "failed to publish invitee.accessed", "invitee_id", inv.ID, "error", err)
		}
	}

	return &domain.AccessDecision{
		Granted:      true,
		Reason:       domain.AccessReasonInvited,
		InviteeID:    inv.ID,
		InviteeEmail: inv.Email,
	}, nil
}
