package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"

	"roost/shared/failure"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be at most {param} characters",
		"min":        "{field} must be at least {param} characters",
		"len":        "{field} must be exactly {param} characters",
		"email":      "{field} must be a valid email address",
		"numeric":    "{field} must contain only digits",
		"startswith": "{field} must start with {param}",
		"ltefield":   "{field} must be less than or equal to {param}",
	}
)

// Violations converts raw validator errors into the full set of field violations.
func Violations(err error) []failure.Violation {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.Violation{{Field: "request", Message: err.Error()}}
	}

	violations := make([]failure.Violation, 0, len(valErrors))

	for _, valErr := range valErrors {
		violations = append(violations, failure.Violation{
			Field:   valErr.Field(),
			Message: message(valErr),
		})
	}

	return violations
}

func message(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}
