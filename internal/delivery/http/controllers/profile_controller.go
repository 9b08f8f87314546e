package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/domain"
)

// PersonRequest carries the personal fields of a profile or registration.
type PersonRequest struct {
	IDNumber          string `json:"id_number"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	MiddleName        string `json:"middle_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	CollegeDepartment string `json:"college_department"`
	Course            string `json:"course"`
	YearLevel         string `json:"year_level"`
	Section           string `json:"section"`
}

// Validate implements Validator.
func (p PersonRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.IDNumber) == "" {
		errs = append(errs, "id_number is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if msg := emailProblem(p.Email, false); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}

func (p PersonRequest) fields() domain.PersonFields {
	return domain.PersonFields{
		IDNumber:          p.IDNumber,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		MiddleName:        p.MiddleName,
		Email:             p.Email,
		Phone:             p.Phone,
		CollegeDepartment: p.CollegeDepartment,
		Course:            p.Course,
		YearLevel:         p.YearLevel,
		Section:           p.Section,
	}.Normalize()
}

// UpdateProfileRequest is the request body for PATCH /workspaces/{workspaceID}/profiles/{profileID}.
type UpdateProfileRequest struct {
	domain.ProfilePatch
}

// Validate implements Validator.
func (u UpdateProfileRequest) Validate() []string {
	var errs []string
	required := map[string]*string{
		"id_number":  u.IDNumber,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
	for _, name := range []string{"id_number", "first_name", "last_name"} {
		if v := required[name]; v != nil && strings.TrimSpace(*v) == "" {
			errs = append(errs, name+" cannot be empty")
		}
	}
	return errs
}

// ProfileSuccessResponse is the success envelope for endpoints returning one profile.
type ProfileSuccessResponse struct {
	Data  *domain.Profile `json:"data"`
	Error *h.APIError     `json:"error"`
}

// ProfileListSuccessResponse is the success envelope for GET /workspaces/{workspaceID}/profiles.
type ProfileListSuccessResponse struct {
	Data  []*domain.Profile `json:"data"`
	Error *h.APIError       `json:"error"`
}

// ImportReportSuccessResponse is the success envelope for spreadsheet imports.
type ImportReportSuccessResponse struct {
	Data  *domain.ImportReport `json:"data"`
	Error *h.APIError          `json:"error"`
}

type ProfileController struct {
	Logger   *slog.Logger
	Service  domain.ProfileService
	Importer domain.ImportService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService, importer domain.ImportService) *ProfileController {
	return &ProfileController{
		Logger:   logger,
		Service:  svc,
		Importer: importer,
	}
}

// CreateProfile godoc
// @Summary Create a profile
// @Description Fails with 409 when the workspace already has a profile with the ID number.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param body body PersonRequest true "Profile fields"
// @Success 201 {object} controllers.ProfileSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces/{workspaceID}/profiles [post]
func (c *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profile, err := c.Service.Create(r.Context(), r.PathValue("workspaceID"), req.fields())
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, profile)
}

// ListProfiles godoc
// @Summary List profiles of a workspace
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Success 200 {object} controllers.ProfileListSuccessResponse
// @Router /workspaces/{workspaceID}/profiles [get]
func (c *ProfileController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetProfile godoc
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param profileID path string true "Profile ID"
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/profiles/{profileID} [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Service.Get(r.Context(), r.PathValue("workspaceID"), r.PathValue("profileID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// LookupProfile godoc
// @Summary Resolve a profile by ID number
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param id_number query string true "ID number"
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /workspaces/{workspaceID}/profiles/lookup [get]
func (c *ProfileController) LookupProfile(w http.ResponseWriter, r *http.Request) {
	if profile, ok := lookupProfile(w, r, c.Logger, c.Service); ok {
		h.WriteJSONSuccess(w, http.StatusOK, profile)
	}
}

// lookupProfile resolves the id_number query parameter, writing the error
// response itself when it fails.
func lookupProfile(w http.ResponseWriter, r *http.Request, logger *slog.Logger, svc domain.ProfileService) (*domain.Profile, bool) {
	idNumber := domain.NormalizeIDNumber(r.URL.Query().Get("id_number"))
	if idNumber == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "id_number is required")
		return nil, false
	}
	profile, err := svc.ResolveByIDNumber(r.Context(), r.PathValue("workspaceID"), idNumber)
	if err != nil {
		h.WriteDomainError(w, r, logger, err)
		return nil, false
	}
	return profile, true
}

// UpdateProfile godoc
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param profileID path string true "Profile ID"
// @Param body body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces/{workspaceID}/profiles/{profileID} [patch]
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profile, err := c.Service.Update(r.Context(), r.PathValue("workspaceID"), r.PathValue("profileID"), req.ProfilePatch)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete a profile
// @Description Fails with 409 while participants reference the profile unless cascade=true.
// @Tags profiles
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param profileID path string true "Profile ID"
// @Param cascade query bool false "Also delete the profile's participant records"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /workspaces/{workspaceID}/profiles/{profileID} [delete]
func (c *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	cascade := false
	if v := r.URL.Query().Get("cascade"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "cascade must be true or false")
			return
		}
		cascade = parsed
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("workspaceID"), r.PathValue("profileID"), cascade); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportProfiles godoc
// @Summary Import profiles from a spreadsheet
// @Description Creates a profile for every row whose ID number is new. Existing profiles are left unchanged.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param workspaceID path string true "Workspace ID"
// @Param file formData file true "Spreadsheet (.xlsx or .csv)"
// @Success 200 {object} controllers.ImportReportSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /workspaces/{workspaceID}/profiles/import [post]
func (c *ProfileController) ImportProfiles(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()
	report, err := c.Importer.ImportProfiles(r.Context(), r.PathValue("workspaceID"), filename, file)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}
