package http

import (
	"log/slog"
	"net/http"

	"eventattendance/internal/delivery/http/controllers"
	"eventattendance/internal/delivery/http/middleware"
	"eventattendance/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Workspaces   *controllers.WorkspaceController
	Events       *controllers.EventController
	Profiles     *controllers.ProfileController
	Participants *controllers.ParticipantController
	Public       *controllers.PublicController
	Health       *controllers.HealthController
}

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger   *slog.Logger
	Verifier domain.TokenVerifier
	Members  middleware.MembershipChecker
	// PublicLimiter rate limits the unauthenticated routes; nil disables limiting.
	PublicLimiter *middleware.RateLimiter
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig, c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	member := middleware.RequireWorkspaceMember(cfg.Members, cfg.Logger)
	scoped := func(next http.HandlerFunc) http.HandlerFunc { return auth(member(next)) }
	public := func(next http.HandlerFunc) http.HandlerFunc {
		if cfg.PublicLimiter == nil {
			return next
		}
		return cfg.PublicLimiter.Wrap(next)
	}

	// Auth
	mux.HandleFunc("POST /auth/signup", public(c.Auth.SignUp))
	mux.HandleFunc("POST /auth/login", public(c.Auth.Login))

	// Workspaces
	mux.HandleFunc("POST /workspaces", auth(c.Workspaces.CreateWorkspace))
	mux.HandleFunc("GET /workspaces", auth(c.Workspaces.ListMyWorkspaces))
	mux.HandleFunc("GET /workspaces/{workspaceID}", scoped(c.Workspaces.GetWorkspace))
	mux.HandleFunc("DELETE /workspaces/{workspaceID}", scoped(c.Workspaces.DeleteWorkspace))
	mux.HandleFunc("POST /workspaces/{workspaceID}/members", scoped(c.Workspaces.AddMember))

	// Events
	mux.HandleFunc("POST /workspaces/{workspaceID}/events", scoped(c.Events.CreateEvent))
	mux.HandleFunc("GET /workspaces/{workspaceID}/events", scoped(c.Events.ListEvents))
	mux.HandleFunc("GET /workspaces/{workspaceID}/events/{eventID}", scoped(c.Events.GetEvent))
	mux.HandleFunc("PATCH /workspaces/{workspaceID}/events/{eventID}", scoped(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /workspaces/{workspaceID}/events/{eventID}", scoped(c.Events.DeleteEvent))
	mux.HandleFunc("POST /workspaces/{workspaceID}/events/{eventID}/duplicate", scoped(c.Events.DuplicateEvent))

	// Profiles
	mux.HandleFunc("POST /workspaces/{workspaceID}/profiles", scoped(c.Profiles.CreateProfile))
	mux.HandleFunc("GET /workspaces/{workspaceID}/profiles", scoped(c.Profiles.ListProfiles))
	mux.HandleFunc("GET /workspaces/{workspaceID}/profiles/lookup", scoped(c.Profiles.LookupProfile))
	mux.HandleFunc("POST /workspaces/{workspaceID}/profiles/import", scoped(c.Profiles.ImportProfiles))
	mux.HandleFunc("GET /workspaces/{workspaceID}/profiles/{profileID}", scoped(c.Profiles.GetProfile))
	mux.HandleFunc("PATCH /workspaces/{workspaceID}/profiles/{profileID}", scoped(c.Profiles.UpdateProfile))
	mux.HandleFunc("DELETE /workspaces/{workspaceID}/profiles/{profileID}", scoped(c.Profiles.DeleteProfile))

	// Participants
	const participants = "/workspaces/{workspaceID}/events/{eventID}/participants"
	mux.HandleFunc("GET "+participants, scoped(c.Participants.ListParticipants))
	mux.HandleFunc("POST "+participants, scoped(c.Participants.RegisterParticipant))
	mux.HandleFunc("POST "+participants+"/clear", scoped(c.Participants.ClearParticipants))
	mux.HandleFunc("POST "+participants+"/reset", scoped(c.Participants.ResetParticipants))
	mux.HandleFunc("POST "+participants+"/import", scoped(c.Participants.ImportParticipants))
	mux.HandleFunc("PUT "+participants+"/{participantID}", scoped(c.Participants.AddParticipant))
	mux.HandleFunc("DELETE "+participants+"/{participantID}", scoped(c.Participants.RemoveParticipant))
	mux.HandleFunc("PATCH "+participants+"/{participantID}/status", scoped(c.Participants.UpdateParticipantStatus))
	mux.HandleFunc("POST /workspaces/{workspaceID}/events/{eventID}/check-ins", scoped(c.Participants.CheckIn))

	// Public registration and check-in pages
	mux.HandleFunc("GET /public/workspaces/{workspaceID}/events/{eventID}", public(c.Public.GetEvent))
	mux.HandleFunc("POST /public/workspaces/{workspaceID}/events/{eventID}/registrations", public(c.Public.Register))
	mux.HandleFunc("POST /public/workspaces/{workspaceID}/events/{eventID}/check-ins", public(c.Public.CheckIn))
	mux.HandleFunc("GET /public/workspaces/{workspaceID}/profiles/lookup", public(c.Public.LookupProfile))

	// Operations
	mux.HandleFunc("GET /healthz", c.Health.Healthz)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
