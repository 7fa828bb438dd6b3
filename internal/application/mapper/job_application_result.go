package mapper

import (
	"lead-service/internal/application/common"
	"lead-service/internal/domain/entities"
)

func NewJobApplicationResultFromEntity(application *entities.JobApplication, cvURL string) *common.JobApplicationResult {
	return &common.JobApplicationResult{
		Id:           application.Id,
		Vacancy:      application.VacancyId,
		VacancyTitle: application.VacancyTitle(),
		FullName:     application.FullName,
		PhoneNumber:  application.PhoneNumber,
		Email:        application.Email,
		CV:           cvURL,
		CoverLetter:  application.CoverLetter,
		CreatedAt:    application.CreatedAt,
	}
}
