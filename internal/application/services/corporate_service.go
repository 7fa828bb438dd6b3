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

const corporateCVDir = "corporate/cv"

type CorporateService struct {
	companyRepo repositories.CompanyRepository
	requestRepo repositories.CorporateRequestRepository
	media       interfaces.MediaStorage
	publisher   interfaces.EventPublisher
	validator   *validation.Validator
}

func NewCorporateService(
	companyRepo repositories.CompanyRepository,
	requestRepo repositories.CorporateRequestRepository,
	media interfaces.MediaStorage,
	publisher interfaces.EventPublisher,
	validator *validation.Validator,
) interfaces.CorporateService {
	return &CorporateService{
		companyRepo: companyRepo,
		requestRepo: requestRepo,
		media:       media,
		publisher:   publisher,
		validator:   validator,
	}
}

func (s *CorporateService) CreateCorporateRequest(ctx context.Context, createCommand *command.CreateCorporateRequestCommand) (*command.CreateCorporateRequestCommandResult, error) {
	errs := s.validator.Struct(createCommand)

	var company *entities.Company
	if !errs.Has("company") {
		if companyId, ok := referenceId(createCommand.Company); ok {
			found, err := s.companyRepo.FindById(ctx, companyId)
			if err != nil {
				return nil, err
			}
			company = found
		}
		if company == nil {
			errs = append(errs, domain.FieldError{Field: "company", Message: "Company with the given id does not exist"})
		}
	}
	if createCommand.CV == nil {
		errs = append(errs, domain.FieldError{Field: "cv", Message: "No file was submitted."})
	} else if fieldErr := checkExtension("cv", createCommand.CV, allowedDocumentExtensions, unsupportedDocumentMessage); fieldErr != nil {
		errs = append(errs, *fieldErr)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	newRequest := entities.NewCorporateRequest(company)
	newRequest.FirstName = createCommand.FirstName
	newRequest.LastName = createCommand.LastName
	newRequest.PhoneNumber = createCommand.PhoneNumber
	newRequest.EmailAddress = createCommand.EmailAddress
	newRequest.Message = createCommand.Message

	stored, err := s.media.Save(ctx, corporateCVDir, createCommand.CV.Filename, createCommand.CV.Content)
	if err != nil {
		return nil, fmt.Errorf("store cv: %w", err)
	}
	newRequest.CV = stored

	if err := newRequest.Validate(); err != nil {
		discardUpload(ctx, s.media, stored)
		return nil, err
	}

	createdRequest, err := s.requestRepo.Create(ctx, newRequest)
	if err != nil {
		discardUpload(ctx, s.media, stored)
		return nil, err
	}

	event := common.LeadEvent{
		Type:       common.SubjectCorporateRequestCreated,
		Id:         createdRequest.Id,
		CompanyId:  createdRequest.CompanyId,
		Phone:      createdRequest.PhoneNumber,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), common.SubjectCorporateRequestCreated, event); err != nil {
		log.WithError(err).WithField("corporate_request_id", createdRequest.Id).Error("failed to publish corporate request event")
	}

	return &command.CreateCorporateRequestCommandResult{
		Result: mapper.NewCorporateRequestResultFromEntity(createdRequest, s.media.URL(createdRequest.CV)),
	}, nil
}
