package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) FindById(ctx context.Context, id uint) (*entities.Company, error) {
	var companyModel CompanyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Company{Id: companyModel.Id, Title: companyModel.Title}, nil
}

type CorporateRequestRepository struct {
	db *gorm.DB
}

func NewCorporateRequestRepository(db *gorm.DB) repositories.CorporateRequestRepository {
	return &CorporateRequestRepository{db: db}
}

func (r *CorporateRequestRepository) Create(ctx context.Context, request *entities.CorporateRequest) (*entities.CorporateRequest, error) {
	requestModel := CorporateRequestModel{
		Id:           request.Id,
		CreatedAt:    request.CreatedAt,
		CompanyId:    request.CompanyId,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PhoneNumber:  request.PhoneNumber,
		EmailAddress: request.EmailAddress,
		CV:           request.CV,
		Message:      request.Message,
	}

	if err := r.db.WithContext(ctx).Omit("Company").Create(&requestModel).Error; err != nil {
		return nil, err
	}

	created := *request
	created.CreatedAt = requestModel.CreatedAt
	return &created, nil
}
