package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roost/internal/domains/customer/model"
	"roost/internal/domains/customer/model/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"
)

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := dto.CreateCustomerRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   "1990-05-20",
		State:       "NY",
	}

	customer, err := req.ToModel()

	assert.NoError(t, err)
	assert.NotEmpty(t, customer.ID, "expected ID to be generated")
	assert.Equal(t, req.FirstName, customer.FirstName)
	assert.Equal(t, req.LastName, customer.LastName)
	assert.Equal(t, req.Email, customer.Email)
	assert.Equal(t, req.PhoneNumber, customer.PhoneNumber)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), customer.BirthDate)
	assert.Equal(t, req.State, customer.State)
	assert.False(t, customer.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, customer.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestCreateCustomerRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateCustomerRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   "20-05-1990",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}

func TestCustomerResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	customer := model.Customer{
		ID:          "customer-1",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		State:       "NY",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	var response dto.CustomerResponse
	response.FromModel(customer)

	assert.Equal(t, customer.ID, response.ID)
	assert.Equal(t, customer.FirstName, response.FirstName)
	assert.Equal(t, customer.LastName, response.LastName)
	assert.Equal(t, customer.Email, response.Email)
	assert.Equal(t, "1990-05-20", response.BirthDate)
	assert.Equal(t, customer.State, response.State)
}

func TestGetCustomersResponse_FromModels(t *testing.T) {
	models := []model.Customer{
		{ID: "customer-1", LastName: "Doe"},
		{ID: "customer-2", LastName: "Smith"},
	}

	var response dto.GetCustomersResponse
	response.FromModels(models, 12, 10)

	assert.Len(t, response.Customers, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "customer-1", response.Customers[0].ID)
}
