package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobApplicationValidate(t *testing.T) {
	application := NewJobApplication(&Vacancy{Id: 5, JobTitle: "Go developer"})
	application.FullName = "Aziz Karimov"
	application.PhoneNumber = "998901234567"

	assert.Error(t, application.Validate(), "cv is mandatory")

	application.CV = "vacancy/applications/cv.pdf"
	assert.NoError(t, application.Validate())
	assert.Equal(t, "Go developer", application.VacancyTitle())

	application.Vacancy = nil
	assert.Equal(t, "", application.VacancyTitle())
}

func TestCorporateRequestValidate(t *testing.T) {
	request := NewCorporateRequest(&Company{Id: 2, Title: "Team building"})
	request.FirstName = "Aziz"
	request.LastName = "Karimov"
	request.PhoneNumber = "998901234567"
	request.CV = "corporate/cv/cv.pdf"

	assert.Error(t, request.Validate(), "email is mandatory")

	request.EmailAddress = "hr@example.com"
	assert.NoError(t, request.Validate())
	assert.Equal(t, "Team building", request.CompanyTitle())
}
