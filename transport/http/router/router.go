package router

import (
	"github.com/go-chi/chi/v5"

	"roost/internal/handlers/booking"
	"roost/internal/handlers/customer"
	"roost/internal/handlers/guestbooking"
	"roost/internal/handlers/hotel"
)

type DomainHandlers struct {
	Customer     customer.Handler
	Hotel        hotel.Handler
	Booking      booking.Handler
	GuestBooking guestbooking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.GuestBooking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
