package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail []string
	}{
		{"validation", domain.NewValidationError("invalid email: x"), http.StatusBadRequest, helpers.ErrCodeBadRequest, []string{"invalid email: x"}},
		{"not private", domain.ErrEventNotPrivate, http.StatusBadRequest, helpers.ErrCodeBadRequest, nil},
		{"forbidden", fmt.Errorf("invite: %w", domain.ErrForbidden), http.StatusForbidden, helpers.ErrCodeForbidden, nil},
		{"none matched", domain.ErrNoInviteesMatched, http.StatusNotFound, helpers.ErrCodeNotFound, nil},
		{"not found", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound, nil},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, helpers.ErrCodeInternalError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(testLogger, rec, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err, "event not found")

			assert.Equal(t, tt.wantStatus, rec.Code)
			apiErr := decode(t, rec, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantDetail, apiErr.Details)
			assert.NotContains(t, apiErr.Message, "pq:")
		})
	}
}
