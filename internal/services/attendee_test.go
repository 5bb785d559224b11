package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventticketing/internal/domain"
)

func TestAttendeeService_RegisterForEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	private := f.event("owner-1", domain.EventStatusPrivate)
	public := f.event("owner-1", domain.EventStatusPublic)
	draft := f.event("owner-1", domain.EventStatusDraft)
	inv := inviteOne(t, f, private, "guest@example.com")

	t.Run("invitee email is prefilled and referral recorded", func(t *testing.T) {
		reg, created, err := f.attendees.RegisterForEvent(ctx, domain.RegisterInput{
			EventID: private.ID, InviteToken: inv.InviteToken, Name: "Guest",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "guest@example.com", reg.Email)
		require.NotNil(t, reg.ReferredByInviteeID)
		assert.Equal(t, inv.ID, *reg.ReferredByInviteeID)
	})

	t.Run("second registration is idempotent", func(t *testing.T) {
		reg, created, err := f.attendees.RegisterForEvent(ctx, domain.RegisterInput{
			EventID: private.ID, InviteToken: inv.InviteToken, Name: "Guest", Email: "GUEST@example.com",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "reg-1", reg.ID)
	})

	t.Run("forwarded link may register a different address", func(t *testing.T) {
		reg, created, err := f.attendees.RegisterForEvent(ctx, domain.RegisterInput{
			EventID: private.ID, InviteToken: inv.InviteToken, Name: "Friend", Email: "friend@example.com",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, inv.ID, *reg.ReferredByInviteeID)
	})

	t.Run("public event without referral", func(t *testing.T) {
		reg, created, err := f.attendees.RegisterForEvent(ctx, domain.RegisterInput{
			EventID: public.ID, Name: "Walk-in", Email: "walkin@example.com",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Nil(t, reg.ReferredByInviteeID)
	})

	errorCases := []struct {
		name    string
		in      domain.RegisterInput
		wantErr error
	}{
		{name: "private without token", in: domain.RegisterInput{EventID: private.ID, Name: "X", Email: "x@example.com"}, wantErr: domain.ErrNotFound},
		{name: "draft even for owner", in: domain.RegisterInput{EventID: draft.ID, CallerID: "owner-1", Name: "X", Email: "x@example.com"}, wantErr: domain.ErrNotFound},
		{name: "missing event", in: domain.RegisterInput{EventID: "missing", Name: "X", Email: "x@example.com"}, wantErr: domain.ErrNotFound},
		{name: "missing name", in: domain.RegisterInput{EventID: public.ID, Email: "x@example.com"}, wantErr: domain.ErrInvalidInput},
		{name: "missing email on public event", in: domain.RegisterInput{EventID: public.ID, Name: "X"}, wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.attendees.RegisterForEvent(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
