package validator

//go:generate go run go.uber.org/mock/mockgen -source=./validator.go -destination=./mocks/validator_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"roost/infras/otel"
	"roost/internal/domains/booking/model"
	"roost/internal/domains/booking/model/dto"
	"roost/internal/domains/booking/repository"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"
	sharedValidator "roost/shared/validator"
)

// Booking checks a booking payload in two phases: the complete set of
// field-level violations first, then uniqueness of the customer, hotel and
// booking date combination against the store.
type Booking interface {
	ValidateCreate(ctx context.Context, req dto.CreateBookingRequest) error
	ValidateUpdate(ctx context.Context, req dto.UpdateBookingRequest, existing model.Booking) error
}

type validatorImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &validatorImpl{
		repo: repo,
		otel: otel,
	}
}

func (v *validatorImpl) ValidateCreate(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateCreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := sharedValidator.StructViolations(&req)

	bookingDate, dateViolations := parseBookingDate(req.BookingDate)
	violations = append(violations, dateViolations...)

	if len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	return v.checkDuplicateTriple(ctx, req.CustomerID, req.HotelID, bookingDate, constant.Empty)
}

// ValidateUpdate validates the patch against the booking it applies to. The
// uniqueness triple is checked on the merged result and the booking itself is
// excluded, so resubmitting the same date passes.
func (v *validatorImpl) ValidateUpdate(ctx context.Context, req dto.UpdateBookingRequest, existing model.Booking) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateUpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := sharedValidator.StructViolations(&req)

	bookingDate := existing.BookingDate

	if req.BookingDate != constant.Empty {
		parsed, dateViolations := parseBookingDate(req.BookingDate)
		violations = append(violations, dateViolations...)

		if len(dateViolations) == 0 {
			bookingDate = parsed
		}
	}

	if len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	if req.BookingDate == constant.Empty {
		return nil
	}

	return v.checkDuplicateTriple(ctx, existing.CustomerID, existing.HotelID, bookingDate, existing.ID)
}

func (v *validatorImpl) checkDuplicateTriple(ctx context.Context, customerID, hotelID string, bookingDate time.Time, excludeID string) error {
	existing, err := v.repo.Get(ctx, FilterByTriple(customerID, hotelID, bookingDate), model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to check booking uniqueness: %w", err)
	}

	if existing.ID != constant.Empty && existing.ID != excludeID {
		return failure.Conflict("booking for this customer, hotel and date already exists") // nolint:wrapcheck
	}

	return nil
}

func parseBookingDate(value string) (time.Time, []failure.Violation) {
	if value == constant.Empty {
		return time.Time{}, nil
	}

	bookingDate, err := time.Parse(constant.BookingDateFormat, value)
	if err != nil {
		return time.Time{}, []failure.Violation{{
			Field:   model.FieldBookingDate,
			Message: "must be a valid date in YYYY-MM-DD format",
		}}
	}

	return bookingDate, nil
}

// FilterByTriple matches a booking on its unique customer, hotel and date
// combination.
func FilterByTriple(customerID, hotelID string, bookingDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingDate,
				Table:    model.TableName,
			},
		},
	}
}
