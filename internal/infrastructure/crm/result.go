package crm

import "lead-service/internal/domain"

// ErrorField marks errors that come from the CRM integration rather than a form input.
const ErrorField = "bitrix24"

const (
	CodeConnectionError = "CONNECTION_ERROR"
	CodeProxyError      = "PROXY_ERROR"
	CodeAPIError        = "BITRIX24_API_ERROR"
	CodeException       = "BITRIX24_EXCEPTION"
)

// Result is the outcome of a CRM call. It is never persisted.
type Result struct {
	Success bool                `json:"success"`
	Data    Data                `json:"data"`
	Errors  []domain.FieldError `json:"errors"`
}

type Data struct {
	ContactID      int64 `json:"contact_id,omitempty"`
	DealID         int64 `json:"deal_id,omitempty"`
	PartialSuccess bool  `json:"partial_success,omitempty"`
}

func failure(code, message string) Result {
	return Result{
		Errors: []domain.FieldError{{Field: ErrorField, Message: message, Code: code}},
	}
}
