package crm

import (
	"fmt"

	"lead-service/internal/domain/entities"
)

const birthDateLayout = "2006-01-02"

type request struct {
	Fields interface{} `json:"fields"`
}

type multiField struct {
	Value     string `json:"VALUE"`
	ValueType string `json:"VALUE_TYPE"`
}

type contactFields struct {
	Name             string       `json:"NAME"`
	LastName         string       `json:"LAST_NAME"`
	SecondName       string       `json:"SECOND_NAME"`
	BirthDate        string       `json:"BIRTHDATE"`
	Phone            []multiField `json:"PHONE"`
	Email            []multiField `json:"EMAIL"`
	PassportSeries   string       `json:"UF_CRM_616F7E3810AFB"`
	PassportNumber   string       `json:"UF_CRM_1640158035566"`
	Pinfl            string       `json:"UF_CRM_1664772076922"`
	TelegramUsername string       `json:"UF_CRM_6488092EEC562"`
}

type dealFields struct {
	Title            string   `json:"TITLE"`
	ContactID        int64    `json:"CONTACT_ID"`
	CategoryID       int      `json:"CATEGORY_ID"`
	Comments         string   `json:"COMMENTS"`
	Direction        string   `json:"UF_CRM_620E99B9D06E4"`
	InterestedIn     []string `json:"UF_CRM_676E46AB7683D"`
	LastName         string   `json:"UF_CRM_616FE09315135"`
	MiddleName       string   `json:"UF_CRM_61B88631159A8"`
	Phones           []string `json:"UF_CRM_616FE09331687"`
	Emails           []string `json:"UF_CRM_616FE0933D8EF"`
	PassportSeries   string   `json:"UF_CRM_616E92488947B"`
	PassportNumbers  []string `json:"UF_CRM_620E99B9E49E0"`
	TelegramUsername string   `json:"UF_CRM_64D9B9125F4BB"`
}

func newContactRequest(r *entities.Registration) request {
	birthDate := ""
	if !r.BirthDate.IsZero() {
		birthDate = r.BirthDate.Format(birthDateLayout)
	}

	return request{Fields: contactFields{
		Name:             r.FirstName,
		LastName:         r.LastName,
		SecondName:       r.MiddleName,
		BirthDate:        birthDate,
		Phone:            []multiField{{Value: r.Phone, ValueType: "WORK"}},
		Email:            []multiField{{Value: r.Email, ValueType: "WORK"}},
		PassportSeries:   r.PassportSeries,
		PassportNumber:   r.PassportNumber,
		Pinfl:            r.Pinfl,
		TelegramUsername: r.TelegramUsername,
	}}
}

func newDealRequest(r *entities.Registration, contactID int64) request {
	title := r.CourseTitle()
	categoryID := 0
	if r.Course != nil {
		categoryID = r.Course.BitrixCategoryId
	}

	return request{Fields: dealFields{
		Title:            fmt.Sprintf("%s %s - %s", r.LastName, r.FirstName, title),
		ContactID:        contactID,
		CategoryID:       categoryID,
		Comments:         fmt.Sprintf("Registration from website. Course: %s", title),
		Direction:        title,
		InterestedIn:     []string{title},
		LastName:         r.LastName,
		MiddleName:       r.MiddleName,
		Phones:           []string{r.Phone},
		Emails:           []string{r.Email},
		PassportSeries:   r.PassportSeries,
		PassportNumbers:  []string{r.PassportNumber},
		TelegramUsername: r.TelegramUsername,
	}}
}
