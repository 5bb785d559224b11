package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"eventticketing/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventRepo is an in-memory EventRepository for tests. CreateWithInvitees
// writes through invitees so both repos share state like one database.
type fakeEventRepo struct {
	byID     map[string]*domain.Event
	nextID   int
	err      error // if set, Create and CreateWithInvitees return this error
	invitees *fakeInviteeRepo
}

func newFakeEventRepo(invitees *fakeInviteeRepo) *fakeEventRepo {
	return &fakeEventRepo{
		byID:     make(map[string]*domain.Event),
		nextID:   1,
		invitees: invitees,
	}
}

func (f *fakeEventRepo) add(e *domain.Event) *domain.Event {
	if e.ID == "" {
		e.ID = fmt.Sprintf("ev-%d", f.nextID)
		f.nextID++
	}
	f.byID[e.ID] = e
	return e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.add(e)
	return nil
}

func (f *fakeEventRepo) CreateWithInvitees(ctx context.Context, e *domain.Event, emails []string) ([]*domain.InviteItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.add(e)
	items := make([]*domain.InviteItem, 0, len(emails))
	for _, email := range emails {
		inv, created, err := f.invitees.UpsertIfAbsent(ctx, e.ID, email)
		if err != nil {
			delete(f.byID, e.ID)
			return nil, err
		}
		item := &domain.InviteItem{Email: domain.NormalizeEmail(email), Invitee: inv, Outcome: domain.InviteOutcomeCreated}
		if !created {
			item.Outcome = domain.InviteOutcomeAlreadyInvited
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeInviteeRepo keeps invitees in memory and enforces (event_id, email) uniqueness.
type fakeInviteeRepo struct {
	mu         sync.Mutex
	byID       map[string]*domain.Invitee
	order      []string
	nextID     int
	failEmails map[string]bool
	findErr    error
	markCalls  int
}

func newFakeInviteeRepo() *fakeInviteeRepo {
	return &fakeInviteeRepo{byID: make(map[string]*domain.Invitee), failEmails: make(map[string]bool)}
}

func (f *fakeInviteeRepo) UpsertIfAbsent(ctx context.Context, eventID, email string) (*domain.Invitee, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = domain.NormalizeEmail(email)
	if f.failEmails[email] {
		return nil, false, errors.New("insert failed")
	}
	for _, id := range f.order {
		inv := f.byID[id]
		if inv.EventID == eventID && inv.Email == email {
			return inv, false, nil
		}
	}
	f.nextID++
	inv := &domain.Invitee{
		ID:          fmt.Sprintf("inv-%d", f.nextID),
		EventID:     eventID,
		Email:       email,
		InviteToken: fmt.Sprintf("token%011d", f.nextID),
		CreatedAt:   time.Now().UTC(),
	}
	f.byID[inv.ID] = inv
	f.order = append(f.order, inv.ID)
	return inv, true, nil
}

func (f *fakeInviteeRepo) FindByToken(ctx context.Context, token string) (*domain.Invitee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, inv := range f.byID {
		if inv.InviteToken == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInviteeRepo) FindByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Invitee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.byID {
		if inv.EventID == eventID && inv.Email == domain.NormalizeEmail(email) {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInviteeRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Invitee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Invitee, 0)
	for i := len(f.order) - 1; i >= 0; i-- {
		if inv := f.byID[f.order[i]]; inv != nil && inv.EventID == eventID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInviteeRepo) ListForResend(ctx context.Context, eventID string, filter domain.ResendFilter) ([]*domain.Invitee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := toSet(filter.InviteeIDs, func(s string) string { return s })
	emails := toSet(filter.Emails, domain.NormalizeEmail)
	out := make([]*domain.Invitee, 0)
	for _, id := range f.order {
		inv := f.byID[id]
		if inv == nil || inv.EventID != eventID {
			continue
		}
		switch {
		case len(ids) > 0:
			if !ids[inv.ID] {
				continue
			}
		case len(emails) > 0:
			if !emails[inv.Email] {
				continue
			}
		}
		out = append(out, inv)
	}
	return out, nil
}

func toSet(in []string, norm func(string) string) map[string]bool {
	out := make(map[string]bool, len(in))
	for _, s := range in {
		out[norm(s)] = true
	}
	return out
}

func (f *fakeInviteeRepo) MarkAccessed(ctx context.Context, inviteeID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markCalls++
	inv, ok := f.byID[inviteeID]
	if !ok || inv.HasAccessed {
		return nil
	}
	inv.HasAccessed = true
	inv.AccessedAt = &at
	return nil
}

func (f *fakeInviteeRepo) DeleteMany(ctx context.Context, eventID string, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if inv, ok := f.byID[id]; ok && inv.EventID == eventID {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

type fakeRegistrationRepo struct {
	regs   []*domain.Registration
	nextID int
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) (bool, error) {
	for _, r := range f.regs {
		if r.EventID == reg.EventID && r.Email == reg.Email {
			*reg = *r
			return false, nil
		}
	}
	f.nextID++
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.regs = append(f.regs, reg)
	return true, nil
}

func (f *fakeRegistrationRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	for _, r := range f.regs {
		if r.EventID == eventID && r.Email == email {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// recordingEmailService records sent invitations and fails for addresses in failFor.
type recordingEmailService struct {
	mu      sync.Mutex
	sent    []*domain.InvitationEmailData
	failFor map[string]bool
}

func (r *recordingEmailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor[data.Email] {
		return errors.New("mailbox unavailable")
	}
	r.sent = append(r.sent, data)
	return nil
}

func (r *recordingEmailService) sentTo() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, d := range r.sent {
		out = append(out, d.Email)
	}
	sort.Strings(out)
	return out
}

type recordingQueue struct {
	jobs []*domain.InvitationEmailData
}

func (q *recordingQueue) Enqueue(data *domain.InvitationEmailData) {
	q.jobs = append(q.jobs, data)
}

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return p.err
}

// fixture wires the services against shared in-memory fakes.
type fixture struct {
	events      *fakeEventRepo
	invitees    *fakeInviteeRepo
	regs        *fakeRegistrationRepo
	emails      *recordingEmailService
	queue       *recordingQueue
	publisher   *recordingPublisher
	invitations domain.InvitationService
	classifier  domain.AccessClassifier
	eventSvc    domain.EventService
	attendees   domain.AttendeeService
}

const testBaseURL = "https://app.example.com"

func newFixture() *fixture {
	f := &fixture{
		invitees:  newFakeInviteeRepo(),
		regs:      &fakeRegistrationRepo{},
		emails:    &recordingEmailService{failFor: map[string]bool{}},
		queue:     &recordingQueue{},
		publisher: &recordingPublisher{},
	}
	f.events = newFakeEventRepo(f.invitees)
	logger := discardLogger()
	f.invitations = NewInvitationService(f.events, f.invitees, f.emails, f.queue, f.publisher, logger, InvitationConfig{
		BaseURL:           testBaseURL,
		ResendConcurrency: 2,
		Timeout:           5 * time.Second,
	})
	f.classifier = NewAccessClassifier(f.invitees, f.publisher, logger)
	f.eventSvc = NewEventService(f.events, f.invitations, f.classifier, logger, 5*time.Second)
	f.attendees = NewAttendeeService(f.events, f.regs, f.classifier, 5*time.Second)
	return f
}

func (f *fixture) event(owner string, status domain.EventStatus) *domain.Event {
	now := time.Now().UTC()
	return f.events.add(domain.NewEvent(owner, "Launch", "Rooftop", "Roof", nil, status, now, now))
}
