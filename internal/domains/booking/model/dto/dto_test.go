package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roost/internal/domains/booking/model"
	"roost/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: "2026-10-01",
		Status:      "CONFIRMED",
	}

	booking, err := req.ToModel()

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.CustomerID, booking.CustomerID)
	assert.Equal(t, req.HotelID, booking.HotelID)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), booking.BookingDate)
	assert.Equal(t, req.Status, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: "01/10/2026",
		Status:      "CONFIRMED",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:      "CONFIRMED",
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.CustomerID, response.CustomerID)
	assert.Equal(t, booking.HotelID, response.HotelID)
	assert.Equal(t, "2026-10-01", response.BookingDate)
	assert.Equal(t, booking.Status, response.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "booking-2", BookingDate: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 2, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
}
