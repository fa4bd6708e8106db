package dto

import (
	"time"

	"github.com/google/uuid"

	"roost/internal/domains/customer/model"
	"roost/shared"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"
)

type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"   validate:"required,min=1,max=25"`
	LastName    string `json:"last_name"    validate:"required,min=1,max=25"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,len=11,numeric,startswith=0"`
	BirthDate   string `json:"birth_date"   validate:"required"`
	State       string `json:"state"        validate:"omitempty,max=50"`
}

func (c *CreateCustomerRequest) ToModel() (model.Customer, error) {
	birthDate, err := time.Parse(constant.BookingDateFormat, c.BirthDate)
	if err != nil {
		return model.Customer{}, err
	}

	return model.Customer{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   birthDate,
		State:       c.State,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateCustomerRequest struct {
	FirstName   string `db:"first_name"   json:"first_name"   validate:"omitempty,min=1,max=25"`
	LastName    string `db:"last_name"    json:"last_name"    validate:"omitempty,min=1,max=25"`
	Email       string `db:"email"        json:"email"        validate:"omitempty,email,max=100"`
	PhoneNumber string `db:"phone_number" json:"phone_number" validate:"omitempty,len=11,numeric,startswith=0"`
	BirthDate   string `json:"birth_date"  validate:"omitempty"`
	State       string `db:"state"        json:"state"        validate:"omitempty,max=50"`
}

type CustomerResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"`
	State       string `json:"state"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.BirthDate = model.BirthDate.Format(constant.BookingDateFormat)
	r.State = model.State
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
