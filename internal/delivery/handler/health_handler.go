package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/domain"
)

const healthCheckTimeout = 3 * time.Second

func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	var failed []domain.FieldError
	for _, check := range h.healthChecks {
		if err := check.Check(ctx); err != nil {
			log.WithError(err).WithField("component", check.Name).Warn("health check failed")
			failed = append(failed, domain.FieldError{Field: check.Name, Message: "unavailable"})
		}
	}

	if len(failed) > 0 {
		return respondErrors(c, http.StatusServiceUnavailable, failed, map[string]string{"status": "unavailable"})
	}
	return respond(c, http.StatusOK, map[string]string{"status": "ok"})
}
