package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"roost/infras/otel"
	"roost/infras/postgres"
	bookingModel "roost/internal/domains/booking/model"
	bookingService "roost/internal/domains/booking/service"
	customerService "roost/internal/domains/customer/service"
	"roost/internal/domains/guestbooking/model/dto"
	"roost/internal/events"
	"roost/shared"
	"roost/shared/cache"
	"roost/shared/constant"
	"roost/shared/failure"
)

const (
	cacheCustomerPrefix = "customer"
	cacheBookingPrefix  = "booking"
)

// GuestBooking creates a customer and their first booking as one atomic unit
// of work. Either both rows land or neither does.
type GuestBooking interface {
	Create(ctx context.Context, req dto.CreateGuestBookingRequest) (dto.GuestBookingResponse, error)
}

type serviceImpl struct {
	customerService customerService.Customer
	bookingService  bookingService.Booking
	db              *postgres.Connection
	cache           cache.RedisCache
	publisher       events.Publisher
	otel            otel.Otel
}

func New(
	customerSvc customerService.Customer,
	bookingSvc bookingService.Booking,
	db *postgres.Connection,
	cache cache.RedisCache,
	publisher events.Publisher,
	otel otel.Otel,
) GuestBooking {
	return &serviceImpl{
		customerService: customerSvc,
		bookingService:  bookingSvc,
		db:              db,
		cache:           cache,
		publisher:       publisher,
		otel:            otel,
	}
}

// Create runs the customer insert and the booking insert in one transaction.
// Any error rolls both back and surfaces as a transaction failure carrying the
// original cause; a rollback that itself fails is attached as the secondary
// cause and never hides the first error. Events and cache invalidation happen
// only after the commit.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestBookingRequest) (res dto.GuestBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGuestBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := s.db.Begin(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin guest booking transaction")

		return res, failure.Transaction(err) // nolint:wrapcheck
	}

	customer, err := s.customerService.CreateTx(ctx, sqltx, req.Customer)
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest customer")

		return res, shared.TxFailure(sqltx, err) // nolint:wrapcheck
	}

	booking, err := s.bookingService.CreateTx(ctx, sqltx, req.ToBookingRequest(customer.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest booking")

		return res, shared.TxFailure(sqltx, err) // nolint:wrapcheck
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit guest booking")

		return res, shared.TxFailure(sqltx, err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCustomerPrefix)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)

		s.publisher.Publish(c, events.TopicBookings, bookingModel.EntityName, events.ActionGuestBookingCompleted, booking.ID)
	}()

	res.Customer.FromModel(customer)
	res.Booking.FromModel(booking)

	return res, nil
}
