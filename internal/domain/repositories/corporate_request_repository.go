package repositories

import (
	"context"

	"lead-service/internal/domain/entities"
)

type CompanyRepository interface {
	FindById(ctx context.Context, id uint) (*entities.Company, error)
}

type CorporateRequestRepository interface {
	Create(ctx context.Context, request *entities.CorporateRequest) (*entities.CorporateRequest, error)
}
