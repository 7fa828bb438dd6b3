package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContactRequest is a "call me back" message left on the site.
type ContactRequest struct {
	Id        uuid.UUID
	CreatedAt time.Time
	Name      string
	Phone     string
	Email     string
	Message   string
}

func NewContactRequest(name, phone, email, message string) *ContactRequest {
	return &ContactRequest{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Message:   message,
	}
}

func (c *ContactRequest) Validate() error {
	if c.Name == "" {
		return errors.New("name must not be empty")
	}
	if c.Phone == "" {
		return errors.New("phone must not be empty")
	}
	if c.Email == "" {
		return errors.New("email must not be empty")
	}
	return nil
}
