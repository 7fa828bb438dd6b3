package mapper

import (
	"lead-service/internal/application/common"
	"lead-service/internal/domain/entities"
)

func NewCorporateRequestResultFromEntity(request *entities.CorporateRequest, cvURL string) *common.CorporateRequestResult {
	return &common.CorporateRequestResult{
		Id:           request.Id,
		Company:      request.CompanyId,
		CompanyTitle: request.CompanyTitle(),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PhoneNumber:  request.PhoneNumber,
		EmailAddress: request.EmailAddress,
		CV:           cvURL,
		Message:      request.Message,
		CreatedAt:    request.CreatedAt,
	}
}
