package validator

//go:generate go run go.uber.org/mock/mockgen -source=./validator.go -destination=./mocks/validator_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"roost/infras/otel"
	"roost/internal/domains/customer/model"
	"roost/internal/domains/customer/model/dto"
	"roost/internal/domains/customer/repository"
	"roost/shared"
	"roost/shared/constant"
	"roost/shared/failure"
	"roost/shared/timezone"
	sharedValidator "roost/shared/validator"
)

// Customer checks a customer payload in two phases: first the complete set of
// field-level violations, then email uniqueness against the store. The phases
// never mix, so a caller always sees every field problem before any conflict.
type Customer interface {
	ValidateCreate(ctx context.Context, req dto.CreateCustomerRequest) error
	ValidateUpdate(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
}

type validatorImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &validatorImpl{
		repo: repo,
		otel: otel,
	}
}

func (v *validatorImpl) ValidateCreate(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateCreateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := sharedValidator.StructViolations(&req)
	violations = append(violations, birthDateViolations(req.BirthDate)...)

	if len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	return v.checkDuplicateEmail(ctx, req.Email, constant.Empty)
}

func (v *validatorImpl) ValidateUpdate(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateUpdateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := sharedValidator.StructViolations(&req)
	violations = append(violations, birthDateViolations(req.BirthDate)...)

	if len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	if req.Email == constant.Empty {
		return nil
	}

	return v.checkDuplicateEmail(ctx, req.Email, id)
}

// checkDuplicateEmail reports a conflict when another customer already holds the
// email. The record identified by excludeID is ignored, so an update carrying the
// customer's own email passes.
func (v *validatorImpl) checkDuplicateEmail(ctx context.Context, email, excludeID string) error {
	existing, err := v.repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName), model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to check customer email uniqueness: %w", err)
	}

	if existing.ID != constant.Empty && existing.ID != excludeID {
		return failure.Conflict("customer email already exists") // nolint:wrapcheck
	}

	return nil
}

func birthDateViolations(value string) []failure.Violation {
	if value == constant.Empty {
		return nil
	}

	birthDate, err := time.Parse(constant.BookingDateFormat, value)
	if err != nil {
		return []failure.Violation{{
			Field:   model.FieldBirthDate,
			Message: "must be a valid date in YYYY-MM-DD format",
		}}
	}

	if !birthDate.Before(timezone.Now().Truncate(24 * time.Hour)) {
		return []failure.Violation{{
			Field:   model.FieldBirthDate,
			Message: "must be a date in the past",
		}}
	}

	return nil
}
