package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Company is a corporate training offer that inquiries are sent for.
type Company struct {
	Id    uint
	Title string
}

type CorporateRequest struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	CompanyId    uint
	Company      *Company
	FirstName    string
	LastName     string
	PhoneNumber  string
	EmailAddress string
	CV           string
	Message      string
}

func NewCorporateRequest(company *Company) *CorporateRequest {
	return &CorporateRequest{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		CompanyId: company.Id,
		Company:   company,
	}
}

func (r *CorporateRequest) Validate() error {
	if r.CompanyId == 0 {
		return errors.New("request must reference a company")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name must not be empty")
	}
	if r.PhoneNumber == "" || r.EmailAddress == "" {
		return errors.New("phone number and email must not be empty")
	}
	if r.CV == "" {
		return errors.New("cv must be stored before the request")
	}
	return nil
}

func (r *CorporateRequest) CompanyTitle() string {
	if r.Company == nil {
		return ""
	}
	return r.Company.Title
}
