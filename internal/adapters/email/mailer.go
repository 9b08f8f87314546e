package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventattendance/internal/domain"
)

const sendTimeout = 15 * time.Second

// SESConfig holds AWS SES credentials and transport options.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig selects and configures a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
	Logger      *slog.Logger
}

// NewMailer returns the mailer named by config.Provider: "ses", or "noop" (the default),
// which only logs. An unknown provider is an error.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "mailer", "provider", config.Provider)

	switch config.Provider {
	case "", "noop":
		return &logMailer{logger: logger}, nil
	case "ses":
		if config.FromAddress == "" {
			return nil, errors.New("ses mailer requires a from address")
		}
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS verification disabled for SES")
		}
		return &sesMailer{
			client: ses.NewFromConfig(sesAWSConfig(config.SES)),
			source: (&mail.Address{Name: config.FromName, Address: config.FromAddress}).String(),
			logger: logger,
		}, nil
	}
	return nil, fmt.Errorf("unknown email provider %q", config.Provider)
}

func sesAWSConfig(c SESConfig) aws.Config {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: c.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}
	return aws.Config{
		Region:      c.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")),
		HTTPClient:  &http.Client{Transport: transport},
	}
}

type sesMailer struct {
	client *ses.Client
	source string
	logger *slog.Logger
}

func (s *sesMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	out, err := s.client.SendEmail(ctx, sendEmailInput(s.source, msg))
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent", "message_id", aws.ToString(out.MessageId))
	return nil
}

// sendEmailInput omits body parts that are empty.
func sendEmailInput(source string, msg domain.EmailMessage) *ses.SendEmailInput {
	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = utf8(msg.HTML)
	}
	if msg.Text != "" {
		body.Text = utf8(msg.Text)
	}
	return &ses.SendEmailInput{
		Source:      aws.String(source),
		Destination: &types.Destination{ToAddresses: []string{msg.To}},
		Message:     &types.Message{Subject: utf8(msg.Subject), Body: body},
	}
}

func utf8(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

// logMailer records what would have been sent.
type logMailer struct {
	logger *slog.Logger
}

func (l *logMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	l.logger.InfoContext(ctx, "email not delivered", "subject", msg.Subject)
	return nil
}
