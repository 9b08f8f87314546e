package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/domain"
)

// AddParticipantRequest is the request body for PUT .../participants/{participantID}.
// Fields default to the profile's when id_number is omitted.
type AddParticipantRequest struct {
	PersonRequest
	Status domain.ParticipantStatus `json:"status"`
}

// Validate implements Validator.
func (a AddParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.IDNumber) != "" {
		errs = append(errs, a.PersonRequest.Validate()...)
	}
	if a.Status != "" && !a.Status.Valid() {
		errs = append(errs, "status must be registered, attended or no-show")
	}
	return errs
}

// UpdateStatusRequest is the request body for PATCH .../participants/{participantID}/status.
type UpdateStatusRequest struct {
	Status domain.ParticipantStatus `json:"status"`
}

// Validate implements Validator.
func (u UpdateStatusRequest) Validate() []string {
	if !u.Status.Valid() {
		return []string{"status must be registered, attended or no-show"}
	}
	return nil
}

// CheckInRequest is the request body for check-in endpoints.
type CheckInRequest struct {
	IDNumber string `json:"id_number"`
}

// Validate implements Validator.
func (c CheckInRequest) Validate() []string {
	if domain.NormalizeIDNumber(c.IDNumber) == "" {
		return []string{"id_number is required"}
	}
	return nil
}

// BulkResult reports how many participants a bulk operation touched.
type BulkResult struct {
	Affected int64 `json:"affected"`
}

// ParticipantSuccessResponse is the success envelope for endpoints returning one participant.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *h.APIError         `json:"error"`
}

// ParticipantListSuccessResponse is the success envelope for GET .../participants.
type ParticipantListSuccessResponse struct {
	Data  []*domain.Participant `json:"data"`
	Error *h.APIError           `json:"error"`
}

// RegistrationSuccessResponse is the success envelope for registrations.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *h.APIError          `json:"error"`
}

// CheckInSuccessResponse is the success envelope for check-ins.
type CheckInSuccessResponse struct {
	Data  *domain.CheckInResult `json:"data"`
	Error *h.APIError           `json:"error"`
}

type ParticipantController struct {
	Logger   *slog.Logger
	Service  domain.ParticipantService
	Importer domain.ImportService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService, importer domain.ImportService) *ParticipantController {
	return &ParticipantController{
		Logger:   logger,
		Service:  svc,
		Importer: importer,
	}
}

// ListParticipants godoc
// @Summary List the participants of an event
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ParticipantListSuccessResponse
// @Router /workspaces/{workspaceID}/events/{eventID}/participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// AddParticipant godoc
// @Summary Add a profile to an event
// @Description participantID is the profile ID. An existing participant is returned unchanged with 200.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Profile ID"
// @Param body body AddParticipantRequest false "Participant fields and status"
// @Success 201 {object} controllers.ParticipantSuccessResponse "created"
// @Success 200 {object} controllers.ParticipantSuccessResponse "already a participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/{participantID} [put]
func (c *ParticipantController) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if r.ContentLength != 0 {
		if !h.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	p, created, err := c.Service.Add(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), r.PathValue("participantID"), req.fields(), req.Status)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.WriteJSONSuccess(w, status, p)
}

// RegisterParticipant godoc
// @Summary Register a person for an event
// @Description Resolves the ID number to a profile, creating it when absent, and adds it to the event.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param body body PersonRequest true "Person fields"
// @Success 201 {object} controllers.RegistrationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants [post]
func (c *ParticipantController) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	register(w, r, c.Logger, c.Service)
}

func register(w http.ResponseWriter, r *http.Request, logger *slog.Logger, svc domain.ParticipantService) {
	var req PersonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := svc.Register(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), req.fields())
	if err != nil {
		h.WriteDomainError(w, r, logger, err)
		return
	}
	status := http.StatusCreated
	if reg.AlreadyRegistered {
		status = http.StatusOK
	}
	h.WriteJSONSuccess(w, status, reg)
}

// UpdateParticipantStatus godoc
// @Summary Change a participant's status
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/{participantID}/status [patch]
func (c *ParticipantController) UpdateParticipantStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.UpdateStatus(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), r.PathValue("participantID"), req.Status)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, p)
}

// RemoveParticipant godoc
// @Summary Remove a participant from an event
// @Tags participants
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/{participantID} [delete]
func (c *ParticipantController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Remove(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), r.PathValue("participantID")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearParticipants godoc
// @Summary Delete every participant of an event
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data.affected is the number removed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/clear [post]
func (c *ParticipantController) ClearParticipants(w http.ResponseWriter, r *http.Request) {
	n, err := c.Service.ClearList(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BulkResult{Affected: n})
}

// ResetParticipants godoc
// @Summary Set every participant of an event back to registered
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data.affected is the number reset"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/reset [post]
func (c *ParticipantController) ResetParticipants(w http.ResponseWriter, r *http.Request) {
	n, err := c.Service.ResetList(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BulkResult{Affected: n})
}

// ImportParticipants godoc
// @Summary Import participants from a spreadsheet
// @Description Reconciles each row against workspace profiles and the event's participant list.
// @Tags participants
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param file formData file true "Spreadsheet (.xlsx or .csv)"
// @Success 200 {object} controllers.ImportReportSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/events/{eventID}/participants/import [post]
func (c *ParticipantController) ImportParticipants(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()
	report, err := c.Importer.ImportParticipants(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), filename, file)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}

// CheckIn godoc
// @Summary Check in a participant by ID number
// @Description An unknown ID number is reported with outcome not_found, not as an error.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param body body CheckInRequest true "Scanned ID number"
// @Success 200 {object} controllers.CheckInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /workspaces/{workspaceID}/events/{eventID}/check-ins [post]
func (c *ParticipantController) CheckIn(w http.ResponseWriter, r *http.Request) {
	checkIn(w, r, c.Logger, c.Service)
}

func checkIn(w http.ResponseWriter, r *http.Request, logger *slog.Logger, svc domain.ParticipantService) {
	var req CheckInRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := svc.CheckIn(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"), req.IDNumber)
	if err != nil {
		h.WriteDomainError(w, r, logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, res)
}
