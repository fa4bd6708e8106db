package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roost/infras/otel/mocks"
	hotelMocks "roost/internal/domains/hotel/mocks"
	"roost/internal/domains/hotel/model"
	"roost/internal/domains/hotel/model/dto"
	"roost/internal/domains/hotel/validator"
	"roost/shared/failure"
)

func TestHotelValidator_ValidateCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	val := validator.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "valid request",
			req: dto.CreateHotelRequest{
				Name:           "Grand Hotel",
				Location:       "New York",
				Description:    "A grand hotel",
				TotalRooms:     100,
				AvailableRooms: 80,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Hotel{}, nil)
			},
			wantErr: false,
		},
		{
			name: "name too short and available rooms above total",
			req: dto.CreateHotelRequest{
				Name:           "G",
				Location:       "New York",
				TotalRooms:     10,
				AvailableRooms: 20,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate name and location pair",
			req: dto.CreateHotelRequest{
				Name:     "Grand Hotel",
				Location: "New York",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Hotel{ID: "existing-id"}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := val.ValidateCreate(context.Background(), tt.req)

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

func TestHotelValidator_ValidateUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	val := validator.New(mockRepo, mockOtel)

	existing := model.Hotel{
		ID:             "hotel-1",
		Name:           "Grand Hotel",
		Location:       "New York",
		TotalRooms:     100,
		AvailableRooms: 80,
	}

	tests := []struct {
		name      string
		req       dto.UpdateHotelRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "patch without name or location skips the uniqueness check",
			req:       dto.UpdateHotelRequest{Description: "Renovated"},
			setupMock: func() {},
			wantErr:   false,
		},
		{
			name:      "available rooms above the existing total",
			req:       dto.UpdateHotelRequest{AvailableRooms: 150},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "lowering total below the existing available count",
			req:  dto.UpdateHotelRequest{TotalRooms: 50},
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "moving location onto another hotel's pair",
			req:  dto.UpdateHotelRequest{Location: "Chicago"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Hotel{ID: "hotel-2"}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "resubmitting its own pair passes",
			req:  dto.UpdateHotelRequest{Name: "Grand Hotel"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Hotel{ID: "hotel-1"}, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := val.ValidateUpdate(context.Background(), tt.req, existing)

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
