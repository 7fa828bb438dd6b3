package command

import (
	"bytes"
	"encoding/json"
	"io"

	"lead-service/internal/application/common"
	"lead-service/internal/infrastructure/crm"
)

// FileUpload is an uploaded file handed over by the delivery layer.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// Reference holds an id submitted either as a JSON number or a string.
// Any other JSON value is kept verbatim so validation reports it against
// its own field instead of failing the whole body.
type Reference string

func (r *Reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reference(s)
		return nil
	}
	*r = Reference(data)
	return nil
}

func (r Reference) String() string {
	return string(r)
}

type RegisterCourseCommand struct {
	Course            Reference   `json:"course" form:"course" validate:"required,numeric"`
	LastName          string      `json:"last_name" form:"last_name" validate:"required,max=255"`
	FirstName         string      `json:"first_name" form:"first_name" validate:"required,max=255"`
	MiddleName        string      `json:"middle_name" form:"middle_name" validate:"max=255"`
	BirthDate         string      `json:"birth_date" form:"birth_date" validate:"required,datetime=2006-01-02"`
	PassportSeries    string      `json:"passport_series" form:"passport_series" validate:"required,passport_series"`
	PassportNumber    string      `json:"passport_number" form:"passport_number" validate:"required,passport_number"`
	Pinfl             string      `json:"pinfl" form:"pinfl" validate:"required,pinfl"`
	Phone             string      `json:"phone" form:"phone" validate:"required,uzphone"`
	Email             string      `json:"email" form:"email" validate:"required,email,max=254"`
	TelegramUsername  string      `json:"telegram_username" form:"telegram_username" validate:"omitempty,max=100,telegram"`
	VerificationToken string      `json:"verification_token" form:"verification_token"`
	PassportImage     *FileUpload `json:"-" form:"-"`
}

type RegisterCourseCommandResult struct {
	Registration *common.RegistrationResult
	CRM          crm.Result
}
