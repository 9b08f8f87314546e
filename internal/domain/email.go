package domain

import "context"

// EmailMessage is a rendered email ready for delivery.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers rendered messages.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders a named template. The returned message has no recipient.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (EmailMessage, error)
}

// RegistrationEmailData feeds the registration confirmation template.
type RegistrationEmailData struct {
	Email     string
	FirstName string
	IDNumber  string
	EventName string
	EventDate string
}

// EmailService sends domain-level notifications.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}
