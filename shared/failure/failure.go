package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Violation is a single field-level constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Violations carries the full set of field-level failures when the error was raised by
// entity validation; Secondary carries a follow-up error (such as a failed rollback)
// that must not replace the original cause.
type Failure struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations,omitempty"`
	Secondary  error       `json:"-"`
}

// Error returns the failure message, including the secondary cause when present.
func (e *Failure) Error() string {
	if e.Secondary != nil {
		return fmt.Sprintf("%s (secondary: %v)", e.Message, e.Secondary)
	}

	return e.Message
}

// Validation returns a new Failure carrying the complete set of field violations.
func Validation(violations []Violation) error {
	messages := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}

	return &Failure{
		Code:       http.StatusBadRequest,
		Message:    strings.Join(messages, "; "),
		Violations: violations,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure with code for uniqueness conflicts with existing data.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Transaction returns a new Failure for a unit of work that was rolled back.
// The triggering error becomes the message; a failed rollback is attached with
// WithSecondary and never hides the original cause.
func Transaction(err error) *Failure {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: "transaction failed: " + err.Error(),
	}
}

// WithSecondary attaches a secondary cause to the failure and returns it.
func (e *Failure) WithSecondary(err error) *Failure {
	e.Secondary = err

	return e
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetViolations returns the violation set of an error interface, if any.
func GetViolations(err error) []Violation {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Violations
	}

	return nil
}

// IsConflict reports whether the error is a uniqueness conflict.
func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}

// IsNotFound reports whether the error is an entity-not-found failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
