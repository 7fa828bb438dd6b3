package handler

import (
	"context"

	"lead-service/internal/application/interfaces"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct {
	registrationService      interfaces.RegistrationService
	phoneVerificationService interfaces.PhoneVerificationService
	contactService           interfaces.ContactService
	careerService            interfaces.CareerService
	corporateService         interfaces.CorporateService
	healthChecks             []HealthCheck
}

func NewHandler(
	registrationService interfaces.RegistrationService,
	phoneVerificationService interfaces.PhoneVerificationService,
	contactService interfaces.ContactService,
	careerService interfaces.CareerService,
	corporateService interfaces.CorporateService,
	healthChecks ...HealthCheck,
) *Handler {
	return &Handler{
		registrationService:      registrationService,
		phoneVerificationService: phoneVerificationService,
		contactService:           contactService,
		careerService:            careerService,
		corporateService:         corporateService,
		healthChecks:             healthChecks,
	}
}
