package command

type RequestOTPCommand struct {
	Phone string `json:"phone" form:"phone" validate:"required,uzphone"`
}

type RequestOTPCommandResult struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}
