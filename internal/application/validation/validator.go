package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"lead-service/internal/domain"
)

var (
	phonePattern          = regexp.MustCompile(`^998\d{9}$`)
	passportSeriesPattern = regexp.MustCompile(`^[A-Z0-9]{2}$`)
	passportNumberPattern = regexp.MustCompile(`^\d{7}$`)
	pinflPattern          = regexp.MustCompile(`^\d{14}$`)
	telegramPattern       = regexp.MustCompile(`^@?\w+$`)
)

// messages for the custom tags registered in New.
var patternMessages = map[string]string{
	"uzphone":         "Phone number must start with 998 followed by 9 digits",
	"passport_series": "Passport series must be 2 uppercase letters or digits",
	"passport_number": "Passport number must be exactly 7 digits",
	"pinfl":           "PINFL must be exactly 14 digits",
	"telegram":        "Telegram username may contain only letters, digits and underscores",
}

// Validator runs struct tag validation and reports failures keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	patterns := map[string]*regexp.Regexp{
		"uzphone":         phonePattern,
		"passport_series": passportSeriesPattern,
		"passport_number": passportNumberPattern,
		"pinfl":           pinflPattern,
		"telegram":        telegramPattern,
	}
	for tag, re := range patterns {
		re := re
		// registration only fails for an empty tag or nil func
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return &Validator{validate: v}
}

// Struct validates s and returns every failing field, or nil.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: domain.NonFieldErrors, Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := patternMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "len":
		return fmt.Sprintf("Ensure this field has exactly %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "numeric":
		return "A valid number is required."
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
