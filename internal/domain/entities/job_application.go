package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Vacancy struct {
	Id       uint
	JobTitle string
	Slug     string
}

// JobApplication is a CV sent in for an open vacancy.
type JobApplication struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	VacancyId   uint
	Vacancy     *Vacancy
	FullName    string
	PhoneNumber string
	Email       string
	CV          string
	CoverLetter string
}

func NewJobApplication(vacancy *Vacancy) *JobApplication {
	return &JobApplication{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		VacancyId: vacancy.Id,
		Vacancy:   vacancy,
	}
}

func (a *JobApplication) Validate() error {
	if a.VacancyId == 0 {
		return errors.New("application must reference a vacancy")
	}
	if a.FullName == "" {
		return errors.New("full name must not be empty")
	}
	if a.PhoneNumber == "" {
		return errors.New("phone number must not be empty")
	}
	if a.CV == "" {
		return errors.New("cv must be stored before the application")
	}
	return nil
}

func (a *JobApplication) VacancyTitle() string {
	if a.Vacancy == nil {
		return ""
	}
	return a.Vacancy.JobTitle
}
