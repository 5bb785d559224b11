package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteeController_Invite(t *testing.T) {
	result := &domain.InviteResult{Items: []*domain.InviteItem{
		{Email: "new@example.com", Outcome: domain.InviteOutcomeCreated, Invitee: &domain.Invitee{ID: "i1", Email: "new@example.com"}},
		{Email: "old@example.com", Outcome: domain.InviteOutcomeAlreadyInvited, Reason: "already invited"},
	}}

	tests := []struct {
		name       string
		body       string
		userID     string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"mixed outcomes", `{"emails":["new@example.com","old@example.com"]}`, testOwnerID, nil, http.StatusOK, ""},
		{"unauthenticated", `{"emails":["a@example.com"]}`, "", nil, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"empty emails", `{"emails":[]}`, testOwnerID, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"not owner", `{"emails":["a@example.com"]}`, "stranger", domain.ErrForbidden, http.StatusForbidden, helpers.ErrCodeForbidden},
		{"not private", `{"emails":["a@example.com"]}`, testOwnerID, domain.ErrEventNotPrivate, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"missing event", `{"emails":["a@example.com"]}`, testOwnerID, domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{err: tt.svcErr, result: result}
			rec := httptest.NewRecorder()
			NewInviteeController(testLogger, svc).Invite(rec, newRequest(http.MethodPost, "/events/x/invitees", tt.body, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				apiErr := decode(t, rec, nil)
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			var got InviteResponse
			require.Nil(t, decode(t, rec, &got))
			assert.True(t, got.Success)
			require.Len(t, got.Invitees, 1)
			assert.Equal(t, "new@example.com", got.Invitees[0].Email)
			require.Len(t, got.Errors, 1)
			assert.Equal(t, "already invited", got.Errors[0].Reason)
			assert.Equal(t, testEventID, svc.lastEventID)
		})
	}
}

func TestInviteeController_ListInvitees(t *testing.T) {
	svc := &fakeInvitationService{list: []*domain.InviteeListItem{
		{Invitee: &domain.Invitee{ID: "i1", Email: "a@example.com", InviteToken: "tok"}, InviteLink: "https://app.example.com/event/" + testEventID + "?invite=tok"},
	}}
	rec := httptest.NewRecorder()
	NewInviteeController(testLogger, svc).ListInvitees(rec, newRequest(http.MethodGet, "/events/x/invitees", "", testOwnerID))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Invitees []map[string]any `json:"invitees"`
	}
	require.Nil(t, decode(t, rec, &got))
	require.Len(t, got.Invitees, 1)
	assert.Equal(t, "i1", got.Invitees[0]["id"])
	assert.Equal(t, "https://app.example.com/event/"+testEventID+"?invite=tok", got.Invitees[0]["invite_link"])
	assert.Equal(t, testOwnerID, svc.lastCaller)
}

func TestInviteeController_RemoveInvitees(t *testing.T) {
	t.Run("ids required", func(t *testing.T) {
		svc := &fakeInvitationService{}
		rec := httptest.NewRecorder()
		NewInviteeController(testLogger, svc).RemoveInvitees(rec, newRequest(http.MethodDelete, "/events/x/invitees?ids=,", "", testOwnerID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.lastIDs)
	})

	t.Run("deletes", func(t *testing.T) {
		svc := &fakeInvitationService{deleted: 2}
		rec := httptest.NewRecorder()
		NewInviteeController(testLogger, svc).RemoveInvitees(rec, newRequest(http.MethodDelete, "/events/x/invitees?ids=a,b,+c", "", testOwnerID))

		require.Equal(t, http.StatusOK, rec.Code)
		var got RemoveInviteesResponse
		require.Nil(t, decode(t, rec, &got))
		assert.Equal(t, RemoveInviteesResponse{Success: true, DeletedCount: 2}, got)
		assert.Equal(t, []string{"a", "b", "c"}, svc.lastIDs)
	})
}

func TestInviteeController_ResendInvitations(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantFilter domain.ResendFilter
	}{
		{"no body resends all", "", nil, http.StatusOK, domain.ResendFilter{}},
		{"by ids", `{"invitee_ids":["i1"]}`, nil, http.StatusOK, domain.ResendFilter{InviteeIDs: []string{"i1"}}},
		{"by emails", `{"emails":["a@example.com"]}`, nil, http.StatusOK, domain.ResendFilter{Emails: []string{"a@example.com"}}},
		{"none matched", `{"emails":["z@example.com"]}`, domain.ErrNoInviteesMatched, http.StatusNotFound, domain.ResendFilter{Emails: []string{"z@example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{err: tt.svcErr, resend: &domain.ResendResult{Total: 3, Successful: 2, Failed: 1}}
			rec := httptest.NewRecorder()
			NewInviteeController(testLogger, svc).ResendInvitations(rec, newRequest(http.MethodPatch, "/events/x/invitees", tt.body, testOwnerID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantFilter, svc.lastFilter)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var got ResendResponse
			require.Nil(t, decode(t, rec, &got))
			assert.True(t, got.Success)
			assert.Equal(t, "Resent 2 of 3 invitations", got.Message)
			assert.Equal(t, 1, got.Results.Failed)
		})
	}
}
