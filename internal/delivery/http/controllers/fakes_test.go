package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testOwnerID = "owner-1"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err         error
	created     *domain.CreatedEvent
	events      []*domain.Event
	event       *domain.Event
	view        *domain.EventView
	lastCreate  domain.CreateEventInput
	lastCaller  string
	lastToken   string
	lastEventID string
}

func (f *fakeEventService) CreateEvent(_ context.Context, in domain.CreateEventInput) (*domain.CreatedEvent, error) {
	f.lastCreate = in
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeEventService) ListEventsByOwner(_ context.Context, ownerID string) ([]*domain.Event, error) {
	f.lastCaller = ownerID
	return f.events, f.err
}

func (f *fakeEventService) GetPublicEvent(_ context.Context, eventID string) (*domain.Event, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) GetPrivateEvent(_ context.Context, eventID, callerID, token string) (*domain.EventView, error) {
	f.lastEventID, f.lastCaller, f.lastToken = eventID, callerID, token
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeEventService) ViewEvent(_ context.Context, eventID, callerID, token string) (*domain.EventView, error) {
	f.lastEventID, f.lastCaller, f.lastToken = eventID, callerID, token
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	err         error
	result      *domain.InviteResult
	list        []*domain.InviteeListItem
	deleted     int64
	resend      *domain.ResendResult
	lastEmails  []string
	lastIDs     []string
	lastFilter  domain.ResendFilter
	lastCaller  string
	lastEventID string
}

func (f *fakeInvitationService) Invite(_ context.Context, eventID, callerID string, emails []string) (*domain.InviteResult, error) {
	f.lastEventID, f.lastCaller, f.lastEmails = eventID, callerID, emails
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeInvitationService) ListInvitees(_ context.Context, eventID, callerID string) ([]*domain.InviteeListItem, error) {
	f.lastEventID, f.lastCaller = eventID, callerID
	return f.list, f.err
}

func (f *fakeInvitationService) RemoveInvitees(_ context.Context, eventID, callerID string, ids []string) (int64, error) {
	f.lastEventID, f.lastCaller, f.lastIDs = eventID, callerID, ids
	return f.deleted, f.err
}

func (f *fakeInvitationService) Resend(_ context.Context, eventID, callerID string, filter domain.ResendFilter) (*domain.ResendResult, error) {
	f.lastEventID, f.lastCaller, f.lastFilter = eventID, callerID, filter
	if f.err != nil {
		return nil, f.err
	}
	return f.resend, nil
}

func (f *fakeInvitationService) EnqueueInvitations(context.Context, *domain.Event, []*domain.Invitee) {
}

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	err     error
	reg     *domain.Registration
	created bool
	lastIn  domain.RegisterInput
}

func (f *fakeAttendeeService) RegisterForEvent(_ context.Context, in domain.RegisterInput) (*domain.Registration, bool, error) {
	f.lastIn = in
	if f.err != nil {
		return nil, false, f.err
	}
	return f.reg, f.created, nil
}

// newRequest builds a request with eventID as path value and, when userID is set, an authenticated context.
func newRequest(method, target, body, userID string) *http.Request {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.SetPathValue("eventID", testEventID)
	if userID != "" {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	return req
}

// decode unmarshals the envelope, placing data into dest when non-nil.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	if dest != nil && env.Error == nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env.Error
}
