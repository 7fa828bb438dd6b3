package common

import (
	"time"

	"github.com/google/uuid"
)

type JobApplicationResult struct {
	Id           uuid.UUID `json:"id"`
	Vacancy      uint      `json:"vacancy"`
	VacancyTitle string    `json:"vacancy_title,omitempty"`
	FullName     string    `json:"full_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email"`
	CV           string    `json:"cv"`
	CoverLetter  string    `json:"cover_letter"`
	CreatedAt    time.Time `json:"created_at"`
}
