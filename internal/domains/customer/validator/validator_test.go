package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roost/infras/otel/mocks"
	customerMocks "roost/internal/domains/customer/mocks"
	"roost/internal/domains/customer/model"
	"roost/internal/domains/customer/model/dto"
	"roost/internal/domains/customer/validator"
	"roost/shared/failure"
)

func validCreateRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   "1990-05-20",
		State:       "NY",
	}
}

func TestCustomerValidator_ValidateCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockOtel := mocks.NewOtel()

	val := validator.New(mockRepo, mockOtel)

	tests := []struct {
		name           string
		req            dto.CreateCustomerRequest
		setupMock      func()
		wantErr        bool
		wantCode       int
		wantViolations []string
	}{
		{
			name: "valid request",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Customer{}, nil)
			},
			wantErr: false,
		},
		{
			name: "every field violation is reported at once",
			req: dto.CreateCustomerRequest{
				LastName:    "Doe",
				Email:       "not-an-email",
				PhoneNumber: "1234",
				BirthDate:   "20-05-1990",
			},
			setupMock:      func() {},
			wantErr:        true,
			wantCode:       400,
			wantViolations: []string{"first_name", "email", "phone_number", "birth_date"},
		},
		{
			name: "birth date in the future",
			req: func() dto.CreateCustomerRequest {
				req := validCreateRequest()
				req.BirthDate = "2999-01-01"

				return req
			}(),
			setupMock:      func() {},
			wantErr:        true,
			wantCode:       400,
			wantViolations: []string{"birth_date"},
		},
		{
			name: "phone number must start with zero",
			req: func() dto.CreateCustomerRequest {
				req := validCreateRequest()
				req.PhoneNumber = "18123456789"

				return req
			}(),
			setupMock:      func() {},
			wantErr:        true,
			wantCode:       400,
			wantViolations: []string{"phone_number"},
		},
		{
			name: "duplicate email",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Customer{ID: "existing-id"}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "uniqueness check fails",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := val.ValidateCreate(context.Background(), tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}

			if len(tt.wantViolations) > 0 {
				fields := make([]string, 0)
				for _, violation := range failure.GetViolations(err) {
					fields = append(fields, violation.Field)
				}

				for _, want := range tt.wantViolations {
					assert.Contains(t, fields, want)
				}

				assert.Len(t, fields, len(tt.wantViolations))
			}
		})
	}
}

func TestCustomerValidator_ValidateUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockOtel := mocks.NewOtel()

	val := validator.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "empty email skips the uniqueness check",
			req:       dto.UpdateCustomerRequest{FirstName: "Janet"},
			id:        "customer-1",
			setupMock: func() {},
			wantErr:   false,
		},
		{
			name: "own email passes",
			req:  dto.UpdateCustomerRequest{Email: "jane.doe@example.com"},
			id:   "customer-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Customer{ID: "customer-1"}, nil)
			},
			wantErr: false,
		},
		{
			name: "email held by another customer",
			req:  dto.UpdateCustomerRequest{Email: "jane.doe@example.com"},
			id:   "customer-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Customer{ID: "customer-2"}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:      "invalid birth date format",
			req:       dto.UpdateCustomerRequest{BirthDate: "05/20/1990"},
			id:        "customer-1",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := val.ValidateUpdate(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
