package common

import (
	"time"

	"github.com/google/uuid"
)

type ContactRequestResult struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
