package postgres

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	Id               uint   `gorm:"primaryKey"`
	Title            string `gorm:"size:255;not null"`
	Slug             string `gorm:"size:255;uniqueIndex;not null"`
	BitrixCategoryId int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CourseModel) TableName() string {
	return "courses"
}

type RegistrationModel struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	CourseId         uint        `gorm:"not null;index"`
	Course           CourseModel `gorm:"foreignKey:CourseId;constraint:OnDelete:RESTRICT"`
	LastName         string      `gorm:"size:255;not null"`
	FirstName        string      `gorm:"size:255;not null"`
	MiddleName       string      `gorm:"size:255"`
	BirthDate        time.Time   `gorm:"type:date;not null"`
	PassportSeries   string      `gorm:"size:2;not null"`
	PassportNumber   string      `gorm:"size:7;not null"`
	PassportImage    string      `gorm:"size:255"`
	Pinfl            string      `gorm:"size:14;not null"`
	Phone            string      `gorm:"size:12;not null;index"`
	Email            string      `gorm:"size:254;not null"`
	TelegramUsername string      `gorm:"size:100"`
}

func (RegistrationModel) TableName() string {
	return "course_registrations"
}

type ContactRequestModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Name      string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:20;not null"`
	Email     string    `gorm:"size:254;not null"`
	Message   string    `gorm:"type:text"`
}

func (ContactRequestModel) TableName() string {
	return "contact_requests"
}

type VacancyModel struct {
	Id        uint   `gorm:"primaryKey"`
	JobTitle  string `gorm:"size:255;not null"`
	Slug      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VacancyModel) TableName() string {
	return "vacancies"
}

type JobApplicationModel struct {
	Id          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time    `gorm:"index"`
	VacancyId   uint         `gorm:"not null;index"`
	Vacancy     VacancyModel `gorm:"foreignKey:VacancyId;constraint:OnDelete:CASCADE"`
	FullName    string       `gorm:"size:255;not null"`
	PhoneNumber string       `gorm:"size:20;not null"`
	Email       string       `gorm:"size:254"`
	CV          string       `gorm:"column:cv;size:255;not null"`
	CoverLetter string       `gorm:"type:text"`
}

func (JobApplicationModel) TableName() string {
	return "job_applications"
}

type CompanyModel struct {
	Id          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CompanyModel) TableName() string {
	return "corporates"
}

type CorporateRequestModel struct {
	Id           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time    `gorm:"index"`
	CompanyId    uint         `gorm:"not null;index"`
	Company      CompanyModel `gorm:"foreignKey:CompanyId;constraint:OnDelete:CASCADE"`
	FirstName    string       `gorm:"size:100;not null"`
	LastName     string       `gorm:"size:100;not null"`
	PhoneNumber  string       `gorm:"size:20;not null"`
	EmailAddress string       `gorm:"size:254;not null"`
	CV           string       `gorm:"column:cv;size:255;not null"`
	Message      string       `gorm:"type:text"`
}

func (CorporateRequestModel) TableName() string {
	return "corporate_requests"
}

// Models lists every table owned by this service, in migration order.
func Models() []interface{} {
	return []interface{}{
		&CourseModel{}, &RegistrationModel{}, &ContactRequestModel{},
		&VacancyModel{}, &JobApplicationModel{},
		&CompanyModel{}, &CorporateRequestModel{},
	}
}
