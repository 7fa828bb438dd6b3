package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/domain"
)

// ErrorHandler renders every unhandled error in the response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var validationErrs domain.ValidationErrors
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &validationErrs):
		if writeErr := respondErrors(c, http.StatusBadRequest, validationErrs, nil); writeErr != nil {
			log.WithError(writeErr).Error("failed to write error response")
		}
		return
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}).Error("unhandled request error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = respondErrors(c, status, []domain.FieldError{{Field: domain.NonFieldErrors, Message: message}}, nil)
	}
	if writeErr != nil {
		log.WithError(writeErr).Error("failed to write error response")
	}
}
