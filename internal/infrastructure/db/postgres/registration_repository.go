package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) repositories.RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.ValidatedRegistration) (*entities.Registration, error) {
	registrationEntity := registration.GetRegistration()

	registrationModel := RegistrationModel{
		Id:               registrationEntity.Id,
		CreatedAt:        registrationEntity.CreatedAt,
		UpdatedAt:        registrationEntity.UpdatedAt,
		CourseId:         registrationEntity.CourseId,
		LastName:         registrationEntity.LastName,
		FirstName:        registrationEntity.FirstName,
		MiddleName:       registrationEntity.MiddleName,
		BirthDate:        registrationEntity.BirthDate,
		PassportSeries:   registrationEntity.PassportSeries,
		PassportNumber:   registrationEntity.PassportNumber,
		PassportImage:    registrationEntity.PassportImage,
		Pinfl:            registrationEntity.Pinfl,
		Phone:            registrationEntity.Phone,
		Email:            registrationEntity.Email,
		TelegramUsername: registrationEntity.TelegramUsername,
	}

	if err := r.db.WithContext(ctx).Omit("Course").Create(&registrationModel).Error; err != nil {
		return nil, err
	}

	// Read back the created registration to ensure data integrity
	return r.FindById(ctx, registrationEntity.Id)
}

func (r *RegistrationRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Registration, error) {
	var registrationModel RegistrationModel
	if err := r.db.WithContext(ctx).Preload("Course").Where("id = ?", id).First(&registrationModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&registrationModel), nil
}

func (r *RegistrationRepository) mapToEntity(registrationModel *RegistrationModel) *entities.Registration {
	registration := &entities.Registration{
		Id:               registrationModel.Id,
		CreatedAt:        registrationModel.CreatedAt,
		UpdatedAt:        registrationModel.UpdatedAt,
		CourseId:         registrationModel.CourseId,
		LastName:         registrationModel.LastName,
		FirstName:        registrationModel.FirstName,
		MiddleName:       registrationModel.MiddleName,
		BirthDate:        registrationModel.BirthDate,
		PassportSeries:   registrationModel.PassportSeries,
		PassportNumber:   registrationModel.PassportNumber,
		PassportImage:    registrationModel.PassportImage,
		Pinfl:            registrationModel.Pinfl,
		Phone:            registrationModel.Phone,
		Email:            registrationModel.Email,
		TelegramUsername: registrationModel.TelegramUsername,
	}
	if registrationModel.Course.Id != 0 {
		registration.Course = &entities.Course{
			Id:               registrationModel.Course.Id,
			Title:            registrationModel.Course.Title,
			Slug:             registrationModel.Course.Slug,
			BitrixCategoryId: registrationModel.Course.BitrixCategoryId,
		}
	}
	return registration
}
