package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/delivery/http/middleware"
	"eventattendance/internal/domain"
)

// CreateEventRequest is the request body for POST /workspaces/{workspaceID}/events.
type CreateEventRequest struct {
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /workspaces/{workspaceID}/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Summary     *string    `json:"summary"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	return errs
}

// EventSuccessResponse is the success envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event `json:"data"`
	Error *h.APIError   `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /workspaces/{workspaceID}/events.
type EventListSuccessResponse struct {
	Data  []*domain.Event `json:"data"`
	Error *h.APIError     `json:"error"`
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
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /workspaces/{workspaceID}/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event := &domain.Event{
		WorkspaceID: r.PathValue("workspaceID"),
		Name:        strings.TrimSpace(req.Name),
		Summary:     req.Summary,
		Description: req.Description,
		Date:        req.Date,
		CreatedBy:   userID,
	}
	if err := c.Service.Create(r.Context(), event); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events of a workspace
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /workspaces/{workspaceID}/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.Get(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventPatch{
		Name:        req.Name,
		Summary:     req.Summary,
		Description: req.Description,
		Date:        req.Date,
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	event, err := c.Service.Update(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), patch)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// DuplicateEvent godoc
// @Summary Duplicate an event
// @Description Copies the event details under the name "<name> (Copy)". Participants are not copied.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/duplicate [post]
func (c *EventController) DuplicateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Duplicate(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), userID)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and its participant list.
// @Tags events
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
