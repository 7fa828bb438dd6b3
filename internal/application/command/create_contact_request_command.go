package command

import "lead-service/internal/application/common"

type CreateContactRequestCommand struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Phone   string `json:"phone" form:"phone" validate:"required,max=20"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Message string `json:"message" form:"message" validate:"max=5000"`
}

type CreateContactRequestCommandResult struct {
	Result *common.ContactRequestResult `json:"result"`
}
