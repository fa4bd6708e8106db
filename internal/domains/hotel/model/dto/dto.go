package dto

import (
	"github.com/google/uuid"

	"roost/internal/domains/hotel/model"
	"roost/shared"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"
)

type CreateHotelRequest struct {
	Name           string `json:"name"            validate:"required,min=2,max=100"`
	Location       string `json:"location"        validate:"required,min=2,max=100"`
	Description    string `json:"description"     validate:"omitempty,max=500"`
	TotalRooms     int    `json:"total_rooms"     validate:"omitempty,gte=0"`
	AvailableRooms int    `json:"available_rooms" validate:"omitempty,gte=0,ltefield=TotalRooms"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	return model.Hotel{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Location:       c.Location,
		Description:    c.Description,
		TotalRooms:     c.TotalRooms,
		AvailableRooms: c.AvailableRooms,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateHotelRequest struct {
	Name           string `db:"name"            json:"name"            validate:"omitempty,min=2,max=100"`
	Location       string `db:"location"        json:"location"        validate:"omitempty,min=2,max=100"`
	Description    string `db:"description"     json:"description"     validate:"omitempty,max=500"`
	TotalRooms     int    `db:"total_rooms"     json:"total_rooms"     validate:"omitempty,gte=0"`
	AvailableRooms int    `db:"available_rooms" json:"available_rooms" validate:"omitempty,gte=0"`
}

type HotelResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Description = model.Description
	r.TotalRooms = model.TotalRooms
	r.AvailableRooms = model.AvailableRooms
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
