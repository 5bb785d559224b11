package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventticketing/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	invitations    domain.InvitationService
	classifier     domain.AccessClassifier
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(
	eventRepo domain.EventRepository,
	invitations domain.InvitationService,
	classifier domain.AccessClassifier,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		invitations:    invitations,
		classifier:     classifier,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func validateCreateEvent(in *domain.CreateEventInput) error {
	var details []string
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		details = append(details, "title is required")
	}
	if in.Status == "" {
		in.Status = domain.EventStatusDraft
	}
	if !in.Status.Valid() {
		details = append(details, fmt.Sprintf("status must be one of draft, public, private, cancelled (got %q)", in.Status))
	}
	if in.Status == domain.EventStatusPrivate {
		for _, e := range in.Invitees {
			if !domain.ValidEmail(e) {
				details = append(details, fmt.Sprintf("invalid email: %q", e))
			}
		}
	}
	if len(details) > 0 {
		return domain.NewValidationError(details...)
	}
	return nil
}

// CreateEvent stores the event. Invitees are only honored for private events; they
// are written in the same transaction and their invitations are queued after commit.
func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.CreatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.OwnerID == "" {
		return nil, domain.ErrForbidden
	}
	if err := validateCreateEvent(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := domain.NewEvent(in.OwnerID, in.Title, strings.TrimSpace(in.Description), strings.TrimSpace(in.Location), in.StartsAt, in.Status, now, now)

	if event.Status != domain.EventStatusPrivate || len(in.Invitees) == 0 {
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return nil, fmt.Errorf("create event: %w", err)
		}
		return &domain.CreatedEvent{Event: event, Invitees: []*domain.InviteItem{}}, nil
	}

	items, err := s.eventRepo.CreateWithInvitees(ctx, event, in.Invitees)
	if err != nil {
		return nil, fmt.Errorf("create event with invitees: %w", err)
	}
	var created []*domain.Invitee
	for _, it := range items {
		if it.Outcome == domain.InviteOutcomeCreated {
			created = append(created, it.Invitee)
		}
	}
	s.invitations.EnqueueInvitations(ctx, event, created)
	return &domain.CreatedEvent{Event: event, Invitees: items}, nil
}

func (s *eventService) ListEventsByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.ListByOwnerID(ctx, ownerID)
}

func (s *eventService) getEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetPublicEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusPublic {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (s *eventService) GetPrivateEvent(ctx context.Context, eventID, callerID, token string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusPrivate {
		return nil, domain.ErrNotFound
	}
	return s.classify(ctx, event, callerID, token)
}

// ViewEvent resolves public events first, then defers to the classifier for the
// owner and invite token rules. Missing and denied are both ErrNotFound.
func (s *eventService) ViewEvent(ctx context.Context, eventID, callerID, token string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == domain.EventStatusPublic {
		return &domain.EventView{
			Event:  event,
			Access: &domain.AccessDecision{Granted: true, Reason: domain.AccessReasonPublicEvent},
		}, nil
	}
	return s.classify(ctx, event, callerID, token)
}

func (s *eventService) classify(ctx context.Context, event *domain.Event, callerID, token string) (*domain.EventView, error) {
	decision, err := s.classifier.Classify(ctx, event, callerID, token)
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		return nil, domain.ErrNotFound
	}
	return &domain.EventView{Event: event, Access: decision}, nil
}
