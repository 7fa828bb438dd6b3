package common

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationResult struct {
	Id               uuid.UUID `json:"id"`
	Course           uint      `json:"course"`
	CourseTitle      string    `json:"course_title,omitempty"`
	LastName         string    `json:"last_name"`
	FirstName        string    `json:"first_name"`
	MiddleName       string    `json:"middle_name"`
	BirthDate        string    `json:"birth_date"`
	PassportSeries   string    `json:"passport_series"`
	PassportNumber   string    `json:"passport_number"`
	PassportImage    *string   `json:"passport_image"`
	Pinfl            string    `json:"pinfl"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	TelegramUsername string    `json:"telegram_username"`
	CreatedAt        time.Time `json:"created_at"`
}
