package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventticketing/internal/domain"
)

type attendeeService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	classifier       domain.AccessClassifier
	contextTimeout   time.Duration
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	classifier domain.AccessClassifier,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		classifier:       classifier,
		contextTimeout:   timeout,
	}
}

// RegisterForEvent registers for a public or private event the caller may view.
// Arriving through an invite prefills the email and records the referring invitee.
func (s *attendeeService) RegisterForEvent(ctx context.Context, in domain.RegisterInput) (*domain.Registration, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusPublic && event.Status != domain.EventStatusPrivate {
		return nil, false, domain.ErrNotFound
	}

	decision, err := s.classifier.Classify(ctx, event, in.CallerID, in.InviteToken)
	if err != nil {
		return nil, false, err
	}
	if !decision.Granted {
		return nil, false, domain.ErrNotFound
	}

	email := in.Email
	var referredBy *string
	if decision.Reason == domain.AccessReasonInvited {
		if strings.TrimSpace(email) == "" {
			email = decision.InviteeEmail
		}
		id := decision.InviteeID
		referredBy = &id
	}

	name := strings.TrimSpace(in.Name)
	var details []string
	if name == "" {
		details = append(details, "name is required")
	}
	if !domain.ValidEmail(email) {
		details = append(details, "a valid email is required")
	}
	if len(details) > 0 {
		return nil, false, domain.NewValidationError(details...)
	}

	reg := domain.NewRegistration(event.ID, name, domain.NormalizeEmail(email), referredBy, time.Now().UTC())
	created, err := s.registrationRepo.Create(ctx, reg)
	if err != nil {
		return nil, false, fmt.Errorf("create registration: %w", err)
	}
	return reg, created, nil
}
