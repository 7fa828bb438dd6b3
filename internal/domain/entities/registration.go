package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Registration is one applicant's submission for a course.
type Registration struct {
	Id               uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CourseId         uint
	Course           *Course
	LastName         string
	FirstName        string
	MiddleName       string
	BirthDate        time.Time
	PassportSeries   string
	PassportNumber   string
	PassportImage    string
	Pinfl            string
	Phone            string
	Email            string
	TelegramUsername string
}

func NewRegistration(course *Course) *Registration {
	now := time.Now()
	return &Registration{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		CourseId:  course.Id,
		Course:    course,
	}
}

func (r *Registration) validate() error {
	if r.CourseId == 0 {
		return errors.New("registration must reference a course")
	}
	if r.LastName == "" || r.FirstName == "" {
		return errors.New("first and last name must not be empty")
	}
	if r.BirthDate.IsZero() {
		return errors.New("birth date must be set")
	}
	if r.Phone == "" {
		return errors.New("phone must not be empty")
	}
	if r.Email == "" {
		return errors.New("email must not be empty")
	}
	if r.CreatedAt.After(r.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// CourseTitle returns the title of the loaded course or an empty string.
func (r *Registration) CourseTitle() string {
	if r.Course == nil {
		return ""
	}
	return r.Course.Title
}
