package validator

//go:generate go run go.uber.org/mock/mockgen -source=./validator.go -destination=./mocks/validator_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roost/infras/otel"
	"roost/internal/domains/hotel/model"
	"roost/internal/domains/hotel/model/dto"
	"roost/internal/domains/hotel/repository"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"
	sharedValidator "roost/shared/validator"
)

// Hotel checks a hotel payload in two phases: the complete set of field-level
// violations first, then name and location pair uniqueness against the store.
type Hotel interface {
	ValidateCreate(ctx context.Context, req dto.CreateHotelRequest) error
	ValidateUpdate(ctx context.Context, req dto.UpdateHotelRequest, existing model.Hotel) error
}

type validatorImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Hotel {
	return &validatorImpl{
		repo: repo,
		otel: otel,
	}
}

func (v *validatorImpl) ValidateCreate(ctx context.Context, req dto.CreateHotelRequest) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateCreateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if violations := sharedValidator.StructViolations(&req); len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	return v.checkDuplicatePair(ctx, req.Name, req.Location, constant.Empty)
}

// ValidateUpdate validates the patch against the hotel it applies to. Room counts
// and the name/location pair are checked on the merged result, so a patch that
// only moves one side of the pair still collides correctly.
func (v *validatorImpl) ValidateUpdate(ctx context.Context, req dto.UpdateHotelRequest, existing model.Hotel) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateUpdateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := sharedValidator.StructViolations(&req)

	totalRooms := existing.TotalRooms
	if req.TotalRooms != 0 {
		totalRooms = req.TotalRooms
	}

	availableRooms := existing.AvailableRooms
	if req.AvailableRooms != 0 {
		availableRooms = req.AvailableRooms
	}

	if availableRooms > totalRooms {
		violations = append(violations, failure.Violation{
			Field:   model.FieldAvailableRooms,
			Message: "must not exceed total_rooms",
		})
	}

	if len(violations) > 0 {
		return failure.Validation(violations) // nolint:wrapcheck
	}

	if req.Name == constant.Empty && req.Location == constant.Empty {
		return nil
	}

	name := existing.Name
	if req.Name != constant.Empty {
		name = req.Name
	}

	location := existing.Location
	if req.Location != constant.Empty {
		location = req.Location
	}

	return v.checkDuplicatePair(ctx, name, location, existing.ID)
}

func (v *validatorImpl) checkDuplicatePair(ctx context.Context, name, location, excludeID string) error {
	existing, err := v.repo.Get(ctx, FilterByNameLocation(name, location), model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to check hotel uniqueness: %w", err)
	}

	if existing.ID != constant.Empty && existing.ID != excludeID {
		return failure.Conflict("hotel with the same name and location already exists") // nolint:wrapcheck
	}

	return nil
}

// FilterByNameLocation matches a hotel on its unique name and location pair.
func FilterByNameLocation(name, location string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorEq,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}
}
