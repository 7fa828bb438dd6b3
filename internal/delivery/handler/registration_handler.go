package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
	"lead-service/internal/application/common"
	"lead-service/internal/infrastructure/crm"
)

type registrationResponse struct {
	Registration *common.RegistrationResult `json:"registration"`
	crm.Data
}

// RegisterCourse answers 201 when the CRM sync succeeded and 207 when the
// registration was stored but the CRM sync failed or was only partial.
func (h *Handler) RegisterCourse(c echo.Context) error {
	var registerCommand command.RegisterCourseCommand
	if err := c.Bind(&registerCommand); err != nil {
		return invalidBody()
	}

	upload, closeUpload, err := formUpload(c, "passport_image")
	if err != nil {
		return err
	}
	defer closeUpload()
	registerCommand.PassportImage = upload

	result, err := h.registrationService.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return err
	}

	payload := registrationResponse{Registration: result.Registration, Data: result.CRM.Data}
	if !result.CRM.Success {
		return respondErrors(c, http.StatusMultiStatus, result.CRM.Errors, payload)
	}
	return respond(c, http.StatusCreated, payload)
}
