package dto

import (
	bookingDto "roost/internal/domains/booking/model/dto"
	customerDto "roost/internal/domains/customer/model/dto"
)

// CreateGuestBookingRequest carries a new customer and the booking to open for
// them. The booking's customer id is assigned by the orchestrator once the
// customer row exists.
type CreateGuestBookingRequest struct {
	Customer    customerDto.CreateCustomerRequest `json:"customer"     validate:"required"`
	HotelID     string                            `json:"hotel_id"     validate:"required"`
	BookingDate string                            `json:"booking_date" validate:"required"`
	Status      string                            `json:"status"       validate:"required,min=5,max=20"`
}

func (c *CreateGuestBookingRequest) ToBookingRequest(customerID string) bookingDto.CreateBookingRequest {
	return bookingDto.CreateBookingRequest{
		CustomerID:  customerID,
		HotelID:     c.HotelID,
		BookingDate: c.BookingDate,
		Status:      c.Status,
	}
}

type GuestBookingResponse struct {
	Customer customerDto.CustomerResponse `json:"customer"`
	Booking  bookingDto.BookingResponse   `json:"booking"`
}
