package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/delivery/http/middleware"
	"eventattendance/internal/domain"
)

// CreateWorkspaceRequest is the request body for POST /workspaces. Slug is derived from name when empty.
type CreateWorkspaceRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Validate implements Validator.
func (c CreateWorkspaceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// AddMemberRequest is the request body for POST /workspaces/{workspaceID}/members.
type AddMemberRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (a AddMemberRequest) Validate() []string {
	if msg := emailProblem(a.Email, true); msg != "" {
		return []string{msg}
	}
	return nil
}

// WorkspaceSuccessResponse is the success envelope for endpoints returning one workspace.
type WorkspaceSuccessResponse struct {
	Data  *domain.Workspace `json:"data"`
	Error *h.APIError       `json:"error"`
}

// WorkspaceListSuccessResponse is the success envelope for GET /workspaces.
type WorkspaceListSuccessResponse struct {
	Data  []*domain.Workspace `json:"data"`
	Error *h.APIError         `json:"error"`
}

type WorkspaceController struct {
	Logger  *slog.Logger
	Service domain.WorkspaceService
}

func NewWorkspaceController(logger *slog.Logger, svc domain.WorkspaceService) *WorkspaceController {
	return &WorkspaceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateWorkspace godoc
// @Summary Create a workspace
// @Description The caller becomes the creator and first member.
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWorkspaceRequest true "Workspace data"
// @Success 201 {object} controllers.WorkspaceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces [post]
func (c *WorkspaceController) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkspaceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	ws, err := c.Service.Create(r.Context(), userID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Slug))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, ws)
}

// ListMyWorkspaces godoc
// @Summary List my workspaces
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.WorkspaceListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /workspaces [get]
func (c *WorkspaceController) ListMyWorkspaces(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	list, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetWorkspace godoc
// @Summary Get a workspace
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Success 200 {object} controllers.WorkspaceSuccessResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID} [get]
func (c *WorkspaceController) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	ws, err := c.Service.Get(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ws)
}

// DeleteWorkspace godoc
// @Summary Delete a workspace
// @Description Only the creator may delete a workspace.
// @Tags workspaces
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Success 204
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID} [delete]
func (c *WorkspaceController) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("workspaceID"), userID); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember godoc
// @Summary Add a workspace member by email
// @Description The user must already have an account.
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param body body AddMemberRequest true "Member email"
// @Success 201 {object} helpers.APIResponse "data contains the added user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces/{workspaceID}/members [post]
func (c *WorkspaceController) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Service.AddMemberByEmail(r.Context(), r.PathValue("workspaceID"), userID, req.Email)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}
