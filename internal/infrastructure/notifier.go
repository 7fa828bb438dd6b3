package infrastructure

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
	"lead-service/internal/domain"
	"lead-service/internal/domain/entities"
)

const sendGridMailEndpoint = "/v3/mail/send"

// SendGridNotifier e-mails operators about registrations that need manual CRM follow-up.
type SendGridNotifier struct {
	apiKey string
	host   string
	from   *mail.Email
	to     *mail.Email
}

func NewSendGridNotifier(cfg config.NotifyConfig) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey: cfg.SendGridAPIKey,
		host:   cfg.SendGridHost,
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		to:     mail.NewEmail("", cfg.ToEmail),
	}
}

func (n *SendGridNotifier) NotifyCRMFailure(ctx context.Context, registration *entities.Registration, errs []domain.FieldError) error {
	subject := fmt.Sprintf("CRM sync failed: %s %s", registration.LastName, registration.FirstName)
	plainTextContent := crmFailureText(registration, errs)
	htmlContent := "<pre>" + html.EscapeString(plainTextContent) + "</pre>"

	message := mail.NewSingleEmail(n.from, subject, n.to, plainTextContent, htmlContent)

	request := sendgrid.GetRequest(n.apiKey, sendGridMailEndpoint, n.host)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("send crm failure notification: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
	}

	log.WithField("registration_id", registration.Id).Info("crm failure notification sent")
	return nil
}

func crmFailureText(registration *entities.Registration, errs []domain.FieldError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Registration %s was saved but could not be synced to the CRM.\n\n", registration.Id)
	fmt.Fprintf(&b, "Course: %s\n", registration.CourseTitle())
	fmt.Fprintf(&b, "Name: %s %s %s\n", registration.LastName, registration.FirstName, registration.MiddleName)
	fmt.Fprintf(&b, "Phone: %s\n", registration.Phone)
	fmt.Fprintf(&b, "Email: %s\n", registration.Email)
	if registration.TelegramUsername != "" {
		fmt.Fprintf(&b, "Telegram: %s\n", registration.TelegramUsername)
	}
	b.WriteString("\nErrors:\n")
	for _, e := range errs {
		fmt.Fprintf(&b, "- [%s] %s\n", e.Code, e.Message)
	}
	return b.String()
}

// LogNotifier records CRM failures in the log only.
type LogNotifier struct{}

func (LogNotifier) NotifyCRMFailure(_ context.Context, registration *entities.Registration, errs []domain.FieldError) error {
	log.WithFields(log.Fields{
		"registration_id": registration.Id,
		"phone":           registration.Phone,
		"errors":          errs,
	}).Warn("registration needs manual CRM follow-up")
	return nil
}
