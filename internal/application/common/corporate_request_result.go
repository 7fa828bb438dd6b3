package common

import (
	"time"

	"github.com/google/uuid"
)

type CorporateRequestResult struct {
	Id           uuid.UUID `json:"id"`
	Company      uint      `json:"company"`
	CompanyTitle string    `json:"company_title,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	EmailAddress string    `json:"email_address"`
	CV           string    `json:"cv"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
