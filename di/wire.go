//go:build wireinject
// +build wireinject

package di

import (
	"roost/config"
	"roost/infras/kafka"
	"roost/infras/otel"
	"roost/infras/postgres"
	"roost/infras/redis"
	"roost/internal/events"
	"roost/shared/cache"
	"roost/transport/http"
	"roost/transport/http/middleware"
	"roost/transport/http/router"

	bookingRepository "roost/internal/domains/booking/repository"
	bookingService "roost/internal/domains/booking/service"
	bookingValidator "roost/internal/domains/booking/validator"
	customerRepository "roost/internal/domains/customer/repository"
	customerService "roost/internal/domains/customer/service"
	customerValidator "roost/internal/domains/customer/validator"
	guestBookingService "roost/internal/domains/guestbooking/service"
	hotelRepository "roost/internal/domains/hotel/repository"
	hotelService "roost/internal/domains/hotel/service"
	hotelValidator "roost/internal/domains/hotel/validator"

	bookingHandler "roost/internal/handlers/booking"
	customerHandler "roost/internal/handlers/customer"
	guestBookingHandler "roost/internal/handlers/guestbooking"
	hotelHandler "roost/internal/handlers/hotel"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerValidator.New,
	customerService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelValidator.New,
	hotelService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingValidator.New,
	bookingService.New,
)

var guestBookingDomain = wire.NewSet(
	guestBookingService.New,
)

var domains = wire.NewSet(
	customerDomain,
	hotelDomain,
	bookingDomain,
	guestBookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	customerHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	guestBookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
