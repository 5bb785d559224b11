package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	userID string
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		wantStatus    int
		wantBodyCode  string
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid token sets context and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{userID: "user-123"},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
		},
		{
			name:         "missing authorization header",
			verifier:     &fakeTokenVerifier{userID: "user-123"},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "wrong scheme",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{userID: "user-123"},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "invalid token",
			authHeader:   "Bearer expired",
			verifier:     &fakeTokenVerifier{err: errors.New("expired")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var gotID string
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}
			req := httptest.NewRequest(http.MethodGet, "/events/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			RequireAuth(tt.verifier, testLogger)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, called)
			assert.Equal(t, tt.wantContextID, gotID)
			if tt.wantBodyCode != "" {
				var resp helpers.APIResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantBodyCode, resp.Error.Code)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifier   domain.TokenVerifier
		wantID     string
		wantAuthed bool
	}{
		{name: "anonymous", verifier: &fakeTokenVerifier{userID: "u1"}},
		{name: "valid token", authHeader: "Bearer ok", verifier: &fakeTokenVerifier{userID: "u1"}, wantID: "u1", wantAuthed: true},
		{name: "invalid token continues anonymously", authHeader: "Bearer bad", verifier: &fakeTokenVerifier{err: errors.New("bad")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called, authed bool
			var gotID string
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, authed = UserIDFromContext(r.Context())
			}
			req := httptest.NewRequest(http.MethodGet, "/events/e1/view", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			OptionalAuth(tt.verifier, testLogger)(next)(httptest.NewRecorder(), req)

			assert.True(t, called)
			assert.Equal(t, tt.wantAuthed, authed)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}
