package command

import "lead-service/internal/application/common"

type ApplyForVacancyCommand struct {
	Vacancy     Reference   `json:"vacancy" form:"vacancy" validate:"required,numeric"`
	FullName    string      `json:"full_name" form:"full_name" validate:"required,max=255"`
	PhoneNumber string      `json:"phone_number" form:"phone_number" validate:"required,max=20"`
	Email       string      `json:"email" form:"email" validate:"omitempty,email,max=254"`
	CoverLetter string      `json:"cover_letter" form:"cover_letter" validate:"max=5000"`
	CV          *FileUpload `json:"-" form:"-"`
}

type ApplyForVacancyCommandResult struct {
	Result *common.JobApplicationResult `json:"result"`
}
