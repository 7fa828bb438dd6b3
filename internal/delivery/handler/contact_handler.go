package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
)

func (h *Handler) CreateContactRequest(c echo.Context) error {
	var createCommand command.CreateContactRequestCommand
	if err := c.Bind(&createCommand); err != nil {
		return invalidBody()
	}

	result, err := h.contactService.CreateContactRequest(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, result.Result)
}
