package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"eventticketing/internal/domain"
)

// InvitationConfig tunes the invitation service.
type InvitationConfig struct {
	// BaseURL is the public web origin used to build invite links.
	BaseURL string
	// ResendConcurrency caps simultaneous deliveries during a resend.
	ResendConcurrency int
	Timeout           time.Duration
	// ResendTimeout bounds Resend, which waits for every delivery.
	ResendTimeout time.Duration
}

const defaultResendTimeout = 2 * time.Minute

type invitationService struct {
	eventRepo    domain.EventRepository
	inviteeRepo  domain.InviteeRepository
	emailService domain.EmailService
	queue        domain.DeliveryQueue
	publisher    domain.EventPublisher
	logger       *slog.Logger
	cfg          InvitationConfig
}

func NewInvitationService(
	eventRepo domain.EventRepository,
	inviteeRepo domain.InviteeRepository,
	emailService domain.EmailService,
	queue domain.DeliveryQueue,
	publisher domain.EventPublisher,
	logger *slog.Logger,
	cfg InvitationConfig,
) domain.InvitationService {
	if cfg.ResendConcurrency < 1 {
		cfg.ResendConcurrency = 1
	}
	if cfg.ResendTimeout <= 0 {
		cfg.ResendTimeout = defaultResendTimeout
	}
	return &invitationService{
		eventRepo:    eventRepo,
		inviteeRepo:  inviteeRepo,
		emailService: emailService,
		queue:        queue,
		publisher:    publisher,
		logger:       logger,
		cfg:          cfg,
	}
}

// ownedEvent loads the event and checks that callerID owns it. Non-owners only
// learn that a non-public event exists as ErrNotFound.
func (s *invitationService) ownedEvent(ctx context.Context, eventID, callerID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.IsOwnedBy(callerID) {
		if event.Status != domain.EventStatusPublic {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *invitationService) ownedPrivateEvent(ctx context.Context, eventID, callerID string) (*domain.Event, error) {
	event, err := s.ownedEvent(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusPrivate {
		return nil, domain.ErrEventNotPrivate
	}
	return event, nil
}

// validateInviteEmails rejects an empty list or any malformed address.
func validateInviteEmails(emails []string) error {
	if len(emails) == 0 {
		return domain.NewValidationError("emails must contain at least one address")
	}
	var details []string
	for _, e := range emails {
		if !domain.ValidEmail(e) {
			details = append(details, fmt.Sprintf("invalid email: %q", e))
		}
	}
	if len(details) > 0 {
		return domain.NewValidationError(details...)
	}
	return nil
}

func (s *invitationService) Invite(ctx context.Context, eventID, callerID string, emails []string) (*domain.InviteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	event, err := s.ownedPrivateEvent(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	if err := validateInviteEmails(emails); err != nil {
		return nil, err
	}

	// Upserts run in submission order: a repeated address must see the row its
	// first occurrence created.
	result := &domain.InviteResult{Items: make([]*domain.InviteItem, 0, len(emails))}
	var created []*domain.Invitee
	for _, raw := range emails {
		email := domain.NormalizeEmail(raw)
		inv, isNew, err := s.inviteeRepo.UpsertIfAbsent(ctx, event.ID, email)
		item := &domain.InviteItem{Email: email, Invitee: inv}
		switch {
		case err != nil:
			s.logger.ErrorContext(ctx, "failed to store invitee", "event_id", event.ID, "email", email, "error", err)
			item.Outcome = domain.InviteOutcomeFailed
			item.Reason = "could not store invitation"
		case !isNew:
			item.Outcome = domain.InviteOutcomeAlreadyInvited
			item.Reason = "already invited"
		default:
			item.Outcome = domain.InviteOutcomeCreated
			created = append(created, inv)
		}
		result.Items = append(result.Items, item)
	}

	s.EnqueueInvitations(ctx, event, created)
	return result, nil
}

func (s *invitationService) EnqueueInvitations(ctx context.Context, event *domain.Event, invitees []*domain.Invitee) {
	// The bus publish must not be cut short by the request finishing.
	ctx = context.WithoutCancel(ctx)
	for _, inv := range invitees {
		s.queue.Enqueue(domain.NewInvitationEmailData(event, inv, s.cfg.BaseURL))
		payload := domain.InviteeCreatedEvent{
			InviteeID: inv.ID,
			EventID:   event.ID,
			Email:     inv.Email,
			CreatedAt: inv.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, domain.SubjectInviteeCreated, payload); err != nil {
			s.logger.WarnContext(ctx, "failed to publish invitee.created", "invitee_id", inv.ID, "error", err)
		}
	}
}

func (s *invitationService) ListInvitees(ctx context.Context, eventID, callerID string) ([]*domain.InviteeListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	event, err := s.ownedEvent(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	invitees, err := s.inviteeRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list invitees: %w", err)
	}
	items := make([]*domain.InviteeListItem, 0, len(invitees))
	for _, inv := range invitees {
		items = append(items, &domain.InviteeListItem{
			Invitee:    inv,
			InviteLink: domain.InviteLink(s.cfg.BaseURL, event.ID, inv.InviteToken),
		})
	}
	return items, nil
}

func (s *invitationService) RemoveInvitees(ctx context.Context, eventID, callerID string, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids must contain at least one invitee id")
	}
	event, err := s.ownedEvent(ctx, eventID, callerID)
	if err != nil {
		return 0, err
	}
	n, err := s.inviteeRepo.DeleteMany(ctx, event.ID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete invitees: %w", err)
	}
	return n, nil
}

// Resend redelivers invitations with the tokens already on record and waits for
// every attempt. A failed delivery is counted, never returned.
func (s *invitationService) Resend(ctx context.Context, eventID, callerID string, filter domain.ResendFilter) (*domain.ResendResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ResendTimeout)
	defer cancel()

	event, err := s.ownedPrivateEvent(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	invitees, err := s.inviteeRepo.ListForResend(ctx, event.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("list invitees: %w", err)
	}
	if len(invitees) == 0 {
		return nil, domain.ErrNoInviteesMatched
	}

	var successful atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.cfg.ResendConcurrency)
	for _, inv := range invitees {
		g.Go(func() error {
			data := domain.NewInvitationEmailData(event, inv, s.cfg.BaseURL)
			if err := s.emailService.SendInvitation(ctx, data); err != nil {
				s.logger.WarnContext(ctx, "resend failed", "event_id", event.ID, "invitee_id", inv.ID, "error", err)
				return nil
			}
			successful.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	ok := int(successful.Load())
	return &domain.ResendResult{
		Total:      len(invitees),
		Successful: ok,
		Failed:     len(invitees) - ok,
	}, nil
}
