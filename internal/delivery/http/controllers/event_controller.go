package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	Status      string     `json:"status"`
	// Invitees is only honored when status is private.
	Invitees []string `json:"invitees"`
}

// Validate implements Validator. Email rules are applied by the service.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.Status != "" && !domain.EventStatus(c.Status).Valid() {
		errs = append(errs, "status must be one of draft, public, private, cancelled")
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.CreatedEvent `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events/me.
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventSuccessResponse is the success response envelope for GET /events/{eventID}/public.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventViewSuccessResponse is the success response envelope for the gated event routes.
type EventViewSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the authenticated user. Status defaults to draft. When status is private, invitees are stored with the event in one transaction and their invitations are sent in the background.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the event and per-invitee outcomes"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.CreateEvent(r.Context(), domain.CreateEventInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		Status:      domain.EventStatus(req.Status),
		Invitees:    req.Invitees,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListMyEvents godoc
// @Summary List my events
// @Description Returns the events owned by the authenticated user, newest first.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/me [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListEventsByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetPublicEvent godoc
// @Summary Get a public event
// @Description Returns the event when it is public. Any other status is reported as not found.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/public [get]
func (c *EventController) GetPublicEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetPublicEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetPrivateEvent godoc
// @Summary Get a private event
// @Description Returns a private event to its owner or to the holder of one of its invite tokens. The token is read from X-Invite-Token, else the invite query parameter. First use of a token marks the invitee as accessed.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param X-Invite-Token header string false "Invite token"
// @Param invite query string false "Invite token"
// @Success 200 {object} controllers.EventViewSuccessResponse "data contains the event and the access decision"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/private [get]
func (c *EventController) GetPrivateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	view, err := c.Service.GetPrivateEvent(r.Context(), eventID, userID, helpers.InviteToken(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// ViewEvent godoc
// @Summary View an event
// @Description Resolves access to any event: public events are open, otherwise the owner or an invite token for this event is required. Denied and missing events are indistinguishable.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param X-Invite-Token header string false "Invite token"
// @Param invite query string false "Invite token"
// @Success 200 {object} controllers.EventViewSuccessResponse "data contains the event and the access decision"
// @Failure 404 {object} helpers.APIResponse "error.code: access_required"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/view [get]
func (c *EventController) ViewEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	view, err := c.Service.ViewEvent(r.Context(), eventID, userID, helpers.InviteToken(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeAccessRequired, "event not found or access required")
			return
		}
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}
