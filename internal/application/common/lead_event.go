package common

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubjectRegistrationCreated     = "registration.created"
	SubjectContactCreated          = "contact.created"
	SubjectJobApplicationCreated   = "job_application.created"
	SubjectCorporateRequestCreated = "corporate_request.created"
)

// LeadEvent is published after a lead has been stored.
type LeadEvent struct {
	Type       string    `json:"type"`
	Id         uuid.UUID `json:"id"`
	CourseId   uint      `json:"course_id,omitempty"`
	VacancyId  uint      `json:"vacancy_id,omitempty"`
	CompanyId  uint      `json:"company_id,omitempty"`
	Phone      string    `json:"phone"`
	CRMSynced  bool      `json:"crm_synced"`
	ContactId  int64     `json:"crm_contact_id,omitempty"`
	DealId     int64     `json:"crm_deal_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
