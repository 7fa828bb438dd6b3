package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
	"lead-service/internal/domain"
)

func (h *Handler) RequestOTP(c echo.Context) error {
	var requestCommand command.RequestOTPCommand
	if err := c.Bind(&requestCommand); err != nil {
		return invalidBody()
	}

	result, err := h.phoneVerificationService.RequestOTP(c.Request().Context(), &requestCommand)
	if errors.Is(err, domain.ErrOTPRateLimited) {
		return respondErrors(c, http.StatusTooManyRequests, []domain.FieldError{{Field: "phone", Message: err.Error()}}, nil)
	}
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result)
}

func (h *Handler) VerifyOTP(c echo.Context) error {
	var verifyCommand command.VerifyOTPCommand
	if err := c.Bind(&verifyCommand); err != nil {
		return invalidBody()
	}

	result, err := h.phoneVerificationService.VerifyOTP(c.Request().Context(), &verifyCommand)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result)
}
