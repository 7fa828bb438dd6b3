package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
)

func (h *Handler) CreateCorporateRequest(c echo.Context) error {
	var createCommand command.CreateCorporateRequestCommand
	if err := c.Bind(&createCommand); err != nil {
		return invalidBody()
	}

	cv, closeCV, err := formUpload(c, "cv")
	if err != nil {
		return err
	}
	defer closeCV()
	createCommand.CV = cv

	result, err := h.corporateService.CreateCorporateRequest(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, result.Result)
}
