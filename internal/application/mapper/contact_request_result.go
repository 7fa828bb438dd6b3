package mapper

import (
	"lead-service/internal/application/common"
	"lead-service/internal/domain/entities"
)

func NewContactRequestResultFromEntity(request *entities.ContactRequest) *common.ContactRequestResult {
	return &common.ContactRequestResult{
		Id:        request.Id,
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Message:   request.Message,
		CreatedAt: request.CreatedAt,
	}
}
