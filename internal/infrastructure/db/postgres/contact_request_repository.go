package postgres

import (
	"context"

	"gorm.io/gorm"

	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type ContactRequestRepository struct {
	db *gorm.DB
}

func NewContactRequestRepository(db *gorm.DB) repositories.ContactRequestRepository {
	return &ContactRequestRepository{db: db}
}

func (r *ContactRequestRepository) Create(ctx context.Context, request *entities.ContactRequest) (*entities.ContactRequest, error) {
	requestModel := ContactRequestModel{
		Id:        request.Id,
		CreatedAt: request.CreatedAt,
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Message:   request.Message,
	}

	if err := r.db.WithContext(ctx).Create(&requestModel).Error; err != nil {
		return nil, err
	}

	return &entities.ContactRequest{
		Id:        requestModel.Id,
		CreatedAt: requestModel.CreatedAt,
		Name:      requestModel.Name,
		Phone:     requestModel.Phone,
		Email:     requestModel.Email,
		Message:   requestModel.Message,
	}, nil
}
