package dto

import (
	"time"

	"github.com/google/uuid"

	"roost/internal/domains/booking/model"
	"roost/shared"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerID  string `json:"customer_id"  validate:"required"`
	HotelID     string `json:"hotel_id"     validate:"required"`
	BookingDate string `json:"booking_date" validate:"required"`
	Status      string `json:"status"       validate:"required,min=5,max=20"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		CustomerID:  c.CustomerID,
		HotelID:     c.HotelID,
		BookingDate: bookingDate,
		Status:      c.Status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"omitempty"`
	Status      string `db:"status"        json:"status" validate:"omitempty,min=5,max=20"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	HotelID     string `json:"hotel_id"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
