package repositories

import (
	"context"

	"lead-service/internal/domain/entities"
)

type ContactRequestRepository interface {
	Create(ctx context.Context, request *entities.ContactRequest) (*entities.ContactRequest, error)
}
