package model

import (
	"roost/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID             = "id"
	FieldName           = "name"
	FieldLocation       = "location"
	FieldDescription    = "description"
	FieldTotalRooms     = "total_rooms"
	FieldAvailableRooms = "available_rooms"
)

type Hotel struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Location       string `db:"location"`
	Description    string `db:"description"`
	TotalRooms     int    `db:"total_rooms"`
	AvailableRooms int    `db:"available_rooms"`
	model.Metadata
}
