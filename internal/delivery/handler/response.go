package handler

import (
	"github.com/labstack/echo/v4"

	"lead-service/internal/domain"
)

// envelope is the body shape shared by every endpoint.
type envelope struct {
	Success bool                `json:"success"`
	Errors  []domain.FieldError `json:"errors"`
	Data    interface{}         `json:"data"`
}

func respond(c echo.Context, status int, data interface{}) error {
	if data == nil {
		data = struct{}{}
	}
	return c.JSON(status, envelope{Success: true, Errors: []domain.FieldError{}, Data: data})
}

func respondErrors(c echo.Context, status int, errs []domain.FieldError, data interface{}) error {
	if data == nil {
		data = struct{}{}
	}
	if errs == nil {
		errs = []domain.FieldError{}
	}
	return c.JSON(status, envelope{Success: false, Errors: errs, Data: data})
}
