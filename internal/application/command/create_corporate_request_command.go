package command

import "lead-service/internal/application/common"

type CreateCorporateRequestCommand struct {
	Company      Reference   `json:"company" form:"company" validate:"required,numeric"`
	FirstName    string      `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName     string      `json:"last_name" form:"last_name" validate:"required,max=100"`
	PhoneNumber  string      `json:"phone_number" form:"phone_number" validate:"required,max=20"`
	EmailAddress string      `json:"email_address" form:"email_address" validate:"required,email,max=254"`
	Message      string      `json:"message" form:"message" validate:"max=5000"`
	CV           *FileUpload `json:"-" form:"-"`
}

type CreateCorporateRequestCommandResult struct {
	Result *common.CorporateRequestResult `json:"result"`
}
