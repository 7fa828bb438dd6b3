package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type VacancyRepository struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) repositories.VacancyRepository {
	return &VacancyRepository{db: db}
}

func (r *VacancyRepository) FindById(ctx context.Context, id uint) (*entities.Vacancy, error) {
	var vacancyModel VacancyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vacancyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Vacancy{
		Id:       vacancyModel.Id,
		JobTitle: vacancyModel.JobTitle,
		Slug:     vacancyModel.Slug,
	}, nil
}

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) repositories.JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

func (r *JobApplicationRepository) Create(ctx context.Context, application *entities.JobApplication) (*entities.JobApplication, error) {
	applicationModel := JobApplicationModel{
		Id:          application.Id,
		CreatedAt:   application.CreatedAt,
		VacancyId:   application.VacancyId,
		FullName:    application.FullName,
		PhoneNumber: application.PhoneNumber,
		Email:       application.Email,
		CV:          application.CV,
		CoverLetter: application.CoverLetter,
	}

	if err := r.db.WithContext(ctx).Omit("Vacancy").Create(&applicationModel).Error; err != nil {
		return nil, err
	}

	created := *application
	created.CreatedAt = applicationModel.CreatedAt
	return &created, nil
}
