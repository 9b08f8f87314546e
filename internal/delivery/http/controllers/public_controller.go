package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/domain"
)

// PublicEvent is the event summary shown on the public registration page.
type PublicEvent struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
}

// PublicEventSuccessResponse is the success envelope for GET /public/.../events/{eventID}.
type PublicEventSuccessResponse struct {
	Data  PublicEvent `json:"data"`
	Error *h.APIError `json:"error"`
}

// PublicProfile is the subset of a profile used to autofill the public
// registration form. Contact details and internal IDs are left out.
type PublicProfile struct {
	IDNumber          string `json:"id_number"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	MiddleName        string `json:"middle_name"`
	CollegeDepartment string `json:"college_department"`
	Course            string `json:"course"`
	YearLevel         string `json:"year_level"`
	Section           string `json:"section"`
}

// PublicProfileSuccessResponse is the success envelope for the public profile lookup.
type PublicProfileSuccessResponse struct {
	Data  PublicProfile `json:"data"`
	Error *h.APIError   `json:"error"`
}

// PublicController serves the unauthenticated registration and check-in pages.
type PublicController struct {
	Logger       *slog.Logger
	Events       domain.EventService
	Profiles     domain.ProfileService
	Participants domain.ParticipantService
}

func NewPublicController(logger *slog.Logger, events domain.EventService, profiles domain.ProfileService, participants domain.ParticipantService) *PublicController {
	return &PublicController{
		Logger:       logger,
		Events:       events,
		Profiles:     profiles,
		Participants: participants,
	}
}

// GetEvent godoc
// @Summary Get a public event summary
// @Tags public
// @Produce json
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.PublicEventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Router /public/workspaces/{workspaceID}/events/{eventID} [get]
func (c *PublicController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Events.Get(r.Context(), r.PathValue("workspaceID"), r.PathValue("eventID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, PublicEvent{
		ID:          event.ID,
		Name:        event.Name,
		Summary:     event.Summary,
		Description: event.Description,
		Date:        event.Date,
	})
}

// LookupProfile godoc
// @Summary Look up a profile by ID number for form autofill
// @Tags public
// @Produce json
// @Param workspaceID path string true "Workspace ID"
// @Param id_number query string true "ID number"
// @Success 200 {object} controllers.PublicProfileSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Router /public/workspaces/{workspaceID}/profiles/lookup [get]
func (c *PublicController) LookupProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := lookupProfile(w, r, c.Logger, c.Profiles)
	if !ok {
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, PublicProfile{
		IDNumber:          profile.IDNumber,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		MiddleName:        profile.MiddleName,
		CollegeDepartment: profile.CollegeDepartment,
		Course:            profile.Course,
		YearLevel:         profile.YearLevel,
		Section:           profile.Section,
	})
}

// Register godoc
// @Summary Register for an event
// @Tags public
// @Accept json
// @Produce json
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param body body PersonRequest true "Person fields"
// @Success 201 {object} controllers.RegistrationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Router /public/workspaces/{workspaceID}/events/{eventID}/registrations [post]
func (c *PublicController) Register(w http.ResponseWriter, r *http.Request) {
	register(w, r, c.Logger, c.Participants)
}

// CheckIn godoc
// @Summary Check in by scanned ID number
// @Tags public
// @Accept json
// @Produce json
// @Param workspaceID path string true "Workspace ID"
// @Param eventID path string true "Event ID"
// @Param body body CheckInRequest true "Scanned ID number"
// @Success 200 {object} controllers.CheckInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Router /public/workspaces/{workspaceID}/events/{eventID}/check-ins [post]
func (c *PublicController) CheckIn(w http.ResponseWriter, r *http.Request) {
	checkIn(w, r, c.Logger, c.Participants)
}
