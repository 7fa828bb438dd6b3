package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/application/command"
	"lead-service/internal/application/common"
	"lead-service/internal/application/interfaces"
	"lead-service/internal/application/mapper"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type ContactService struct {
	contactRepo repositories.ContactRequestRepository
	publisher   interfaces.EventPublisher
	validator   *validation.Validator
}

func NewContactService(
	contactRepo repositories.ContactRequestRepository,
	publisher interfaces.EventPublisher,
	validator *validation.Validator,
) interfaces.ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		publisher:   publisher,
		validator:   validator,
	}
}

func (s *ContactService) CreateContactRequest(ctx context.Context, createCommand *command.CreateContactRequestCommand) (*command.CreateContactRequestCommandResult, error) {
	if errs := s.validator.Struct(createCommand); len(errs) > 0 {
		return nil, errs
	}

	newRequest := entities.NewContactRequest(createCommand.Name, createCommand.Phone, createCommand.Email, createCommand.Message)
	if err := newRequest.Validate(); err != nil {
		return nil, err
	}

	createdRequest, err := s.contactRepo.Create(ctx, newRequest)
	if err != nil {
		return nil, err
	}

	event := common.LeadEvent{
		Type:       common.SubjectContactCreated,
		Id:         createdRequest.Id,
		Phone:      createdRequest.Phone,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), common.SubjectContactCreated, event); err != nil {
		log.WithError(err).WithField("contact_request_id", createdRequest.Id).Error("failed to publish contact event")
	}

	return &command.CreateContactRequestCommandResult{
		Result: mapper.NewContactRequestResultFromEntity(createdRequest),
	}, nil
}
