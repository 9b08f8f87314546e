// @title Event Attendance API
// @version 1.0
// @description Workspaces, events, profiles, participant lists, spreadsheet imports and check-ins.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"eventattendance/config"
	_ "eventattendance/docs"
	"eventattendance/internal/adapters/auth"
	"eventattendance/internal/adapters/email"
	"eventattendance/internal/adapters/spreadsheet"
	deliveryhttp "eventattendance/internal/delivery/http"
	"eventattendance/internal/delivery/http/controllers"
	"eventattendance/internal/delivery/http/middleware"
	"eventattendance/internal/domain"
	"eventattendance/internal/metrics"
	"eventattendance/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	policy, err := domain.StatusPolicyFromName(cfg.StatusPolicy)
	if err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	timeout := cfg.RequestTimeout
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, renderer, logger)
	authService := services.NewAuthService(st.users, auth.NewBcryptHasher(bcrypt.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)
	workspaceService := services.NewWorkspaceService(st.workspaces, st.users, timeout)
	eventService := services.NewEventService(st.events, timeout)
	profileService := services.NewProfileService(st.profiles, st.participants, timeout)
	participantService := services.NewParticipantService(st.events, st.profiles, st.participants, policy, emailService, logger, m, timeout)
	importService := services.NewImportService(st.events, st.profiles, st.participants, spreadsheet.NewParser(), cfg.ImportConcurrency, logger, m)

	limiter := middleware.NewRateLimiter(cfg.PublicRateLimitPerMin, cfg.PublicRateLimitPerMin)
	limiter.TrustForwardedFor = cfg.TrustProxy

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:        logger,
		Verifier:      auth.NewJWTVerifier(cfg.JWTSecret),
		Members:       workspaceService,
		PublicLimiter: limiter,
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Workspaces:   controllers.NewWorkspaceController(logger, workspaceService),
		Events:       controllers.NewEventController(logger, eventService),
		Profiles:     controllers.NewProfileController(logger, profileService, importService),
		Participants: controllers.NewParticipantController(logger, participantService, importService),
		Public:       controllers.NewPublicController(logger, eventService, profileService, participantService),
		Health:       controllers.NewHealthController(logger, st.ping),
	})

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", cfg.StoreBackend, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
