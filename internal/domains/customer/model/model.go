package model

import (
	"time"

	"roost/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldBirthDate   = "birth_date"
	FieldState       = "state"
)

type Customer struct {
	ID          string    `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Email       string    `db:"email"`
	PhoneNumber string    `db:"phone_number"`
	BirthDate   time.Time `db:"birth_date"`
	State       string    `db:"state"`
	model.Metadata
}
