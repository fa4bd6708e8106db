package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"roost/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report violations against the wire-level field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then performs
// validation on the struct using the validator package. Every violated field is
// reported, not just the first.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return CheckStruct(data)
}

// Decode reads from the given io.Reader into the given struct without validating it.
// Handlers use this when the domain validator owns the whole violation set, so field
// checks are not split across layers.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// CheckStruct validates the struct tags of data and returns a failure carrying the
// complete set of field violations, or nil when the struct is valid.
func CheckStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Validation(Violations(err)) //nolint:wrapcheck
	}

	return nil
}

// StructViolations validates the struct tags of data and returns the complete set of
// field violations, or nil when the struct is valid. Callers that need to extend the
// set with checks the tags cannot express use this instead of CheckStruct.
func StructViolations[T any](data *T) []failure.Violation {
	if err := validate.Struct(data); err != nil {
		return Violations(err)
	}

	return nil
}

// CheckVar validates a single value against the given tag.
func CheckVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.Validation(Violations(err)) //nolint:wrapcheck
	}

	return nil
}
