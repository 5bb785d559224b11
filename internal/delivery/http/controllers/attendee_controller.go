package controllers

import (
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"
)

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
// Email may be omitted when arriving through an invite link.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterForEventSuccessResponse is the success response envelope for POST /events/{eventID}/registrations (200 or 201).
type RegisterForEventSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterForEvent godoc
// @Summary Register for an event
// @Description Registers for an event the caller may view. With an invite token the invitee's email is used when none is given and the registration is attributed to that invitee. Idempotent: 201 when created, 200 when already registered.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param X-Invite-Token header string false "Invite token"
// @Param invite query string false "Invite token"
// @Param body body RegisterRequest true "Attendee details"
// @Success 200 {object} controllers.RegisterForEventSuccessResponse "Already registered"
// @Success 201 {object} controllers.RegisterForEventSuccessResponse "New registration created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *AttendeeController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	reg, created, err := c.Service.RegisterForEvent(r.Context(), domain.RegisterInput{
		EventID:     eventID,
		CallerID:    userID,
		InviteToken: helpers.InviteToken(r),
		Name:        req.Name,
		Email:       req.Email,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, reg)
}
