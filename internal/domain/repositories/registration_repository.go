package repositories

import (
	"context"

	"github.com/google/uuid"

	"lead-service/internal/domain/entities"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entities.ValidatedRegistration) (*entities.Registration, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Registration, error)
}
