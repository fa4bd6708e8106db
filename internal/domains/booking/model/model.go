package model

import (
	"time"

	"roost/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldHotelID     = "hotel_id"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"
)

type Booking struct {
	ID          string    `db:"id"`
	CustomerID  string    `db:"customer_id"`
	HotelID     string    `db:"hotel_id"`
	BookingDate time.Time `db:"booking_date"`
	Status      string    `db:"status"`
	model.Metadata
}
