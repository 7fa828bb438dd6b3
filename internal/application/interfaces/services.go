package interfaces

import (
	"context"

	"lead-service/internal/application/command"
)

type RegistrationService interface {
	Register(ctx context.Context, registerCommand *command.RegisterCourseCommand) (*command.RegisterCourseCommandResult, error)
}

type PhoneVerificationService interface {
	RequestOTP(ctx context.Context, requestCommand *command.RequestOTPCommand) (*command.RequestOTPCommandResult, error)
	VerifyOTP(ctx context.Context, verifyCommand *command.VerifyOTPCommand) (*command.VerifyOTPCommandResult, error)
}

type ContactService interface {
	CreateContactRequest(ctx context.Context, createCommand *command.CreateContactRequestCommand) (*command.CreateContactRequestCommandResult, error)
}

type CareerService interface {
	ApplyForVacancy(ctx context.Context, applyCommand *command.ApplyForVacancyCommand) (*command.ApplyForVacancyCommandResult, error)
}

type CorporateService interface {
	CreateCorporateRequest(ctx context.Context, createCommand *command.CreateCorporateRequestCommand) (*command.CreateCorporateRequestCommandResult, error)
}
