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

const jobApplicationCVDir = "vacancy/applications"

type CareerService struct {
	vacancyRepo     repositories.VacancyRepository
	applicationRepo repositories.JobApplicationRepository
	media           interfaces.MediaStorage
	publisher       interfaces.EventPublisher
	validator       *validation.Validator
}

func NewCareerService(
	vacancyRepo repositories.VacancyRepository,
	applicationRepo repositories.JobApplicationRepository,
	media interfaces.MediaStorage,
	publisher interfaces.EventPublisher,
	validator *validation.Validator,
) interfaces.CareerService {
	return &CareerService{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
		media:           media,
		publisher:       publisher,
		validator:       validator,
	}
}

func (s *CareerService) ApplyForVacancy(ctx context.Context, applyCommand *command.ApplyForVacancyCommand) (*command.ApplyForVacancyCommandResult, error) {
	errs := s.validator.Struct(applyCommand)

	var vacancy *entities.Vacancy
	if !errs.Has("vacancy") {
		if vacancyId, ok := referenceId(applyCommand.Vacancy); ok {
			found, err := s.vacancyRepo.FindById(ctx, vacancyId)
			if err != nil {
				return nil, err
			}
			vacancy = found
		}
		if vacancy == nil {
			errs = append(errs, domain.FieldError{Field: "vacancy", Message: "Vacancy with the given id does not exist"})
		}
	}
	if applyCommand.CV == nil {
		errs = append(errs, domain.FieldError{Field: "cv", Message: "No file was submitted."})
	} else if fieldErr := checkExtension("cv", applyCommand.CV, allowedDocumentExtensions, unsupportedDocumentMessage); fieldErr != nil {
		errs = append(errs, *fieldErr)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	newApplication := entities.NewJobApplication(vacancy)
	newApplication.FullName = applyCommand.FullName
	newApplication.PhoneNumber = applyCommand.PhoneNumber
	newApplication.Email = applyCommand.Email
	newApplication.CoverLetter = applyCommand.CoverLetter

	stored, err := s.media.Save(ctx, jobApplicationCVDir, applyCommand.CV.Filename, applyCommand.CV.Content)
	if err != nil {
		return nil, fmt.Errorf("store cv: %w", err)
	}
	newApplication.CV = stored

	if err := newApplication.Validate(); err != nil {
		discardUpload(ctx, s.media, stored)
		return nil, err
	}

	createdApplication, err := s.applicationRepo.Create(ctx, newApplication)
	if err != nil {
		discardUpload(ctx, s.media, stored)
		return nil, err
	}

	event := common.LeadEvent{
		Type:       common.SubjectJobApplicationCreated,
		Id:         createdApplication.Id,
		VacancyId:  createdApplication.VacancyId,
		Phone:      createdApplication.PhoneNumber,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), common.SubjectJobApplicationCreated, event); err != nil {
		log.WithError(err).WithField("job_application_id", createdApplication.Id).Error("failed to publish job application event")
	}

	return &command.ApplyForVacancyCommandResult{
		Result: mapper.NewJobApplicationResultFromEntity(createdApplication, s.media.URL(createdApplication.CV)),
	}, nil
}
