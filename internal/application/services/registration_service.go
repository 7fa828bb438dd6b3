package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/application/command"
	"lead-service/internal/application/common"
	"lead-service/internal/application/interfaces"
	"lead-service/internal/application/mapper"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain"
	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

const passportScanDir = "passport_scans"

type RegistrationServiceDeps struct {
	CourseRepo       repositories.CourseRepository
	RegistrationRepo repositories.RegistrationRepository
	CRM              interfaces.CRMClient
	Media            interfaces.MediaStorage
	Tokens           interfaces.VerificationTokens
	Notifier         interfaces.Notifier
	Publisher        interfaces.EventPublisher
	Validator        *validation.Validator

	// RequirePhoneVerification makes a valid verification token mandatory.
	RequirePhoneVerification bool
}

type RegistrationService struct {
	courseRepo               repositories.CourseRepository
	registrationRepo         repositories.RegistrationRepository
	crm                      interfaces.CRMClient
	media                    interfaces.MediaStorage
	tokens                   interfaces.VerificationTokens
	notifier                 interfaces.Notifier
	publisher                interfaces.EventPublisher
	validator                *validation.Validator
	requirePhoneVerification bool
}

func NewRegistrationService(deps RegistrationServiceDeps) interfaces.RegistrationService {
	return &RegistrationService{
		courseRepo:               deps.CourseRepo,
		registrationRepo:         deps.RegistrationRepo,
		crm:                      deps.CRM,
		media:                    deps.Media,
		tokens:                   deps.Tokens,
		notifier:                 deps.Notifier,
		publisher:                deps.Publisher,
		validator:                deps.Validator,
		requirePhoneVerification: deps.RequirePhoneVerification,
	}
}

// Register validates and stores a registration, then syncs it to the CRM.
// The stored row is kept whatever the CRM outcome is.
func (s *RegistrationService) Register(ctx context.Context, registerCommand *command.RegisterCourseCommand) (*command.RegisterCourseCommandResult, error) {
	course, errs, err := s.validate(ctx, registerCommand)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}

	birthDate, _ := time.Parse("2006-01-02", registerCommand.BirthDate)

	newRegistration := entities.NewRegistration(course)
	newRegistration.LastName = registerCommand.LastName
	newRegistration.FirstName = registerCommand.FirstName
	newRegistration.MiddleName = registerCommand.MiddleName
	newRegistration.BirthDate = birthDate
	newRegistration.PassportSeries = registerCommand.PassportSeries
	newRegistration.PassportNumber = registerCommand.PassportNumber
	newRegistration.Pinfl = registerCommand.Pinfl
	newRegistration.Phone = registerCommand.Phone
	newRegistration.Email = registerCommand.Email
	newRegistration.TelegramUsername = registerCommand.TelegramUsername

	// Store the passport scan before the row that points at it
	if upload := registerCommand.PassportImage; upload != nil {
		stored, err := s.media.Save(ctx, passportScanDir, upload.Filename, upload.Content)
		if err != nil {
			return nil, fmt.Errorf("store passport image: %w", err)
		}
		newRegistration.PassportImage = stored
	}

	validatedRegistration, err := entities.NewValidatedRegistration(newRegistration)
	if err != nil {
		discardUpload(ctx, s.media, newRegistration.PassportImage)
		return nil, err
	}

	createdRegistration, err := s.registrationRepo.Create(ctx, validatedRegistration)
	if err != nil {
		discardUpload(ctx, s.media, newRegistration.PassportImage)
		return nil, err
	}
	createdRegistration.Course = course

	// The lead is committed; a client disconnect must not abort the sync
	syncCtx := context.WithoutCancel(ctx)
	crmResult := s.crm.ProcessRegistration(syncCtx, createdRegistration)
	if !crmResult.Success {
		log.WithFields(log.Fields{
			"registration_id": createdRegistration.Id,
			"partial_success": crmResult.Data.PartialSuccess,
			"errors":          crmResult.Errors,
		}).Warn("registration stored but crm sync failed")

		if err := s.notifier.NotifyCRMFailure(syncCtx, createdRegistration, crmResult.Errors); err != nil {
			log.WithError(err).WithField("registration_id", createdRegistration.Id).Error("failed to notify operators about crm failure")
		}
	}

	event := common.LeadEvent{
		Type:       common.SubjectRegistrationCreated,
		Id:         createdRegistration.Id,
		CourseId:   createdRegistration.CourseId,
		Phone:      createdRegistration.Phone,
		CRMSynced:  crmResult.Success,
		ContactId:  crmResult.Data.ContactID,
		DealId:     crmResult.Data.DealID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(syncCtx, common.SubjectRegistrationCreated, event); err != nil {
		log.WithError(err).WithField("registration_id", createdRegistration.Id).Error("failed to publish registration event")
	}

	return &command.RegisterCourseCommandResult{
		Registration: mapper.NewRegistrationResultFromEntity(createdRegistration, s.media.URL(createdRegistration.PassportImage)),
		CRM:          crmResult,
	}, nil
}

// validate collects every client-caused problem; err is only set for infrastructure failures.
func (s *RegistrationService) validate(ctx context.Context, registerCommand *command.RegisterCourseCommand) (*entities.Course, domain.ValidationErrors, error) {
	errs := s.validator.Struct(registerCommand)

	var course *entities.Course
	if !errs.Has("course") {
		if courseId, ok := referenceId(registerCommand.Course); ok {
			found, err := s.courseRepo.FindById(ctx, courseId)
			if err != nil {
				return nil, nil, err
			}
			course = found
		}
		if course == nil {
			errs = append(errs, domain.FieldError{Field: "course", Message: "Course with the given id does not exist"})
		}
	}

	if fieldErr := checkExtension("passport_image", registerCommand.PassportImage, allowedImageExtensions,
		"Unsupported file extension. Allowed extensions are: jpeg, jpg, png, heic, heif."); fieldErr != nil {
		errs = append(errs, *fieldErr)
	}

	if s.requirePhoneVerification && !errs.Has("phone") {
		if err := s.tokens.Validate(registerCommand.VerificationToken, registerCommand.Phone); err != nil {
			errs = append(errs, domain.FieldError{Field: "verification_token", Message: "Phone number has not been verified"})
		}
	}

	return course, errs, nil
}
