package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
)

func (h *Handler) ApplyForVacancy(c echo.Context) error {
	var applyCommand command.ApplyForVacancyCommand
	if err := c.Bind(&applyCommand); err != nil {
		return invalidBody()
	}

	cv, closeCV, err := formUpload(c, "cv")
	if err != nil {
		return err
	}
	defer closeCV()
	applyCommand.CV = cv

	result, err := h.careerService.ApplyForVacancy(c.Request().Context(), &applyCommand)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, result.Result)
}
