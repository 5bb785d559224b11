package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"
)

// InviteRequest is the request body for POST /events/{eventID}/invitees.
type InviteRequest struct {
	Emails []string `json:"emails"`
}

// Validate implements Validator. Per-address checks happen in the service.
func (i InviteRequest) Validate() []string {
	if len(i.Emails) == 0 {
		return []string{"emails must contain at least one address"}
	}
	return nil
}

// InviteResponse is the data returned by POST /events/{eventID}/invitees.
// Invitees holds created items; Errors holds skipped and failed ones.
type InviteResponse struct {
	Success  bool                 `json:"success"`
	Invitees []*domain.InviteItem `json:"invitees"`
	Errors   []*domain.InviteItem `json:"errors"`
}

// InviteSuccessResponse is the success response envelope for POST /events/{eventID}/invitees.
type InviteSuccessResponse struct {
	Data  InviteResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListInviteesResponse is the data returned by GET /events/{eventID}/invitees.
type ListInviteesResponse struct {
	Invitees []*domain.InviteeListItem `json:"invitees"`
}

// ListInviteesSuccessResponse is the success response envelope for GET /events/{eventID}/invitees.
type ListInviteesSuccessResponse struct {
	Data  ListInviteesResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RemoveInviteesResponse is the data returned by DELETE /events/{eventID}/invitees.
type RemoveInviteesResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
}

// RemoveInviteesSuccessResponse is the success response envelope for DELETE /events/{eventID}/invitees.
type RemoveInviteesSuccessResponse struct {
	Data  RemoveInviteesResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ResendRequest is the request body for PATCH /events/{eventID}/invitees.
// Both fields empty resends to every invitee. invitee_ids wins over emails.
type ResendRequest struct {
	InviteeIDs []string `json:"invitee_ids"`
	Emails     []string `json:"emails"`
}

// ResendResponse is the data returned by PATCH /events/{eventID}/invitees.
type ResendResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Results *domain.ResendResult `json:"results"`
}

// ResendSuccessResponse is the success response envelope for PATCH /events/{eventID}/invitees.
type ResendSuccessResponse struct {
	Data  ResendResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InviteeController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInviteeController(logger *slog.Logger, svc domain.InvitationService) *InviteeController {
	return &InviteeController{
		Logger:  logger,
		Service: svc,
	}
}

// callerAndEvent extracts the authenticated user and eventID, writing the error response when either is missing.
func callerAndEvent(w http.ResponseWriter, r *http.Request) (userID, eventID string, ok bool) {
	eventID = r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return "", "", false
	}
	userID, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", "", false
	}
	return userID, eventID, true
}

// Invite godoc
// @Summary Invite people to a private event
// @Description Creates one invitee per new email and sends their invitations in the background. Already invited emails are reported in errors with reason "already invited". Only the event owner may invite.
// @Tags invitees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body InviteRequest true "Emails to invite"
// @Success 200 {object} controllers.InviteSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid emails or event not private)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitees [post]
func (c *InviteeController) Invite(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := callerAndEvent(w, r)
	if !ok {
		return
	}
	var req InviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Invite(r.Context(), eventID, userID, req.Emails)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, InviteResponse{
		Success:  true,
		Invitees: res.Created(),
		Errors:   res.NotCreated(),
	})
}

// ListInvitees godoc
// @Summary List invitees of an event
// @Description Returns every invitee of the event, newest first, with access state, referral count and invite link. Only the event owner may list.
// @Tags invitees
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ListInviteesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitees [get]
func (c *InviteeController) ListInvitees(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := callerAndEvent(w, r)
	if !ok {
		return
	}
	items, err := c.Service.ListInvitees(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	if items == nil {
		items = []*domain.InviteeListItem{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListInviteesResponse{Invitees: items})
}

// RemoveInvitees godoc
// @Summary Remove invitees
// @Description Deletes the given invitees of the event. Their tokens stop granting access immediately. Unknown ids are ignored.
// @Tags invitees
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param ids query string true "Comma separated invitee ids"
// @Success 200 {object} controllers.RemoveInviteesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitees [delete]
func (c *InviteeController) RemoveInvitees(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := callerAndEvent(w, r)
	if !ok {
		return
	}
	ids := helpers.SplitList(r.URL.Query().Get("ids"))
	if len(ids) == 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "ids query parameter is required")
		return
	}
	deleted, err := c.Service.RemoveInvitees(r.Context(), eventID, userID, ids)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RemoveInviteesResponse{Success: true, DeletedCount: deleted})
}

// ResendInvitations godoc
// @Summary Resend invitations
// @Description Sends the invitation email again, reusing each invitee's existing token. Selects by invitee_ids, else by emails, else all invitees. Delivery failures are counted, not returned as errors.
// @Tags invitees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body ResendRequest false "Invitee filter"
// @Success 200 {object} controllers.ResendSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitees [patch]
func (c *InviteeController) ResendInvitations(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := callerAndEvent(w, r)
	if !ok {
		return
	}
	var req ResendRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Resend(r.Context(), eventID, userID, domain.ResendFilter{
		InviteeIDs: req.InviteeIDs,
		Emails:     req.Emails,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ResendResponse{
		Success: true,
		Message: fmt.Sprintf("Resent %d of %d invitations", res.Successful, res.Total),
		Results: res,
	})
}
