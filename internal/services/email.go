package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventattendance/internal/domain"
)

const registrationTemplate = "registration_confirmation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil || data.Email == "" {
		return errors.New("registration email needs a recipient")
	}
	msg, err := s.renderer.Render(registrationTemplate, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", registrationTemplate, err)
	}
	msg.To = data.Email
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %s: %w", registrationTemplate, err)
	}
	s.logger.DebugContext(ctx, "registration confirmation sent", "event", data.EventName)
	return nil
}
