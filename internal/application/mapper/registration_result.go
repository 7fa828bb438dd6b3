package mapper

import (
	"lead-service/internal/application/common"
	"lead-service/internal/domain/entities"
)

const birthDateLayout = "2006-01-02"

// NewRegistrationResultFromEntity maps a stored registration; imageURL is the public
// URL of the passport scan or empty when none was uploaded.
func NewRegistrationResultFromEntity(registration *entities.Registration, imageURL string) *common.RegistrationResult {
	var passportImage *string
	if imageURL != "" {
		passportImage = &imageURL
	}

	return &common.RegistrationResult{
		Id:               registration.Id,
		Course:           registration.CourseId,
		CourseTitle:      registration.CourseTitle(),
		LastName:         registration.LastName,
		FirstName:        registration.FirstName,
		MiddleName:       registration.MiddleName,
		BirthDate:        registration.BirthDate.Format(birthDateLayout),
		PassportSeries:   registration.PassportSeries,
		PassportNumber:   registration.PassportNumber,
		PassportImage:    passportImage,
		Pinfl:            registration.Pinfl,
		Phone:            registration.Phone,
		Email:            registration.Email,
		TelegramUsername: registration.TelegramUsername,
		CreatedAt:        registration.CreatedAt,
	}
}
