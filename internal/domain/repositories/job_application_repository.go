package repositories

import (
	"context"

	"lead-service/internal/domain/entities"
)

type VacancyRepository interface {
	FindById(ctx context.Context, id uint) (*entities.Vacancy, error)
}

type JobApplicationRepository interface {
	Create(ctx context.Context, application *entities.JobApplication) (*entities.JobApplication, error)
}
