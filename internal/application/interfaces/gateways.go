package interfaces

import (
	"context"
	"io"
	"time"

	"lead-service/internal/domain"
	"lead-service/internal/domain/entities"
	"lead-service/internal/infrastructure/crm"
)

// OTPService issues and consumes phone verification codes.
type OTPService interface {
	Generate(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) (bool, error)
	Invalidate(ctx context.Context, phone string) error
	TTL() time.Duration
}

type SMSSender interface {
	Send(ctx context.Context, phone, text string) error
}

type RateLimiter interface {
	Allow(key string) bool
}

type VerificationTokens interface {
	Issue(phone string) (string, time.Time, error)
	Validate(token, phone string) error
}

type CRMClient interface {
	ProcessRegistration(ctx context.Context, registration *entities.Registration) crm.Result
}

type MediaStorage interface {
	Save(ctx context.Context, dir, filename string, content io.Reader) (string, error)
	URL(name string) string
	Delete(ctx context.Context, name string) error
}

type Notifier interface {
	NotifyCRMFailure(ctx context.Context, registration *entities.Registration, errs []domain.FieldError) error
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, event interface{}) error
}
