package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roost/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("customer"), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("customer email already exists"), code: http.StatusConflict},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "transaction", err: failure.Transaction(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "plain error defaults to internal", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.EqualError(t, failure.NotFound("customer"), "customer not found")
	assert.EqualError(t, failure.NotFound("hotel"), "hotel not found")
}

func TestValidationCarriesEveryViolation(t *testing.T) {
	violations := []failure.Violation{
		{Field: "first_name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	err := failure.Validation(violations)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, violations, failure.GetViolations(err))
	assert.Contains(t, err.Error(), "first_name: is required")
	assert.Contains(t, err.Error(), "email: must be a valid email address")
}

func TestGetViolationsOnWrappedError(t *testing.T) {
	err := failure.Validation([]failure.Violation{{Field: "status", Message: "too short"}})
	wrapped := fmt.Errorf("creating booking: %w", err)

	assert.Len(t, failure.GetViolations(wrapped), 1)
	assert.Nil(t, failure.GetViolations(errors.New("plain")))
}

func TestTransactionSecondaryCause(t *testing.T) {
	fail := failure.Transaction(errors.New("insert failed")).WithSecondary(errors.New("rollback failed"))

	assert.Contains(t, fail.Error(), "insert failed")
	assert.Contains(t, fail.Error(), "rollback failed")
	assert.EqualError(t, fail.Secondary, "rollback failed")
}

func TestIsConflictAndIsNotFound(t *testing.T) {
	assert.True(t, failure.IsConflict(failure.Conflict("duplicate")))
	assert.False(t, failure.IsConflict(failure.NotFound("customer")))
	assert.True(t, failure.IsNotFound(failure.NotFound("customer")))
	assert.False(t, failure.IsNotFound(errors.New("boom")))
}
