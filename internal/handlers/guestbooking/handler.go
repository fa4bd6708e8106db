package guestbooking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"roost/infras/otel"
	"roost/internal/domains/guestbooking/model/dto"
	"roost/internal/domains/guestbooking/service"
	"roost/shared/constant"
	"roost/shared/validator"
	"roost/transport/http/response"
)

type Handler struct {
	service service.GuestBooking
	otel    otel.Otel
}

func New(service service.GuestBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guest-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuestBooking)
	})
}

// CreateGuestBooking registers a new customer and its first booking in one transaction.
// @Summary Create a guest booking
// @Description Register a new customer and its first booking atomically. Either both
// @Description records are persisted or neither is.
// @Tags GuestBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestBookingRequest true "Create Guest Booking Request"
// @Success 201 {object} dto.GuestBookingResponse "Created customer and booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-bookings [post]
func (handler *Handler) CreateGuestBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuestBooking")
	defer scope.End()

	req := dto.CreateGuestBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	guestBooking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest booking created successfully")

	response.WithJSON(writer, http.StatusCreated, guestBooking)
}
