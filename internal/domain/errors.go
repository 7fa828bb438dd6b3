package domain

import (
	"errors"
	"strings"
)

var (
	ErrOTPRateLimited            = errors.New("too many OTP requests, please try again later")
	ErrInvalidVerificationToken  = errors.New("invalid verification token")
	ErrVerificationPhoneMismatch = errors.New("verification token was issued for another phone")
)

// NonFieldErrors is the field name used for errors that belong to no single input.
const NonFieldErrors = "non_field_errors"

// FieldError describes one failed input or one failed integration step.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidationErrors collects every client-caused failure of a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a failure was already recorded for field.
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}
