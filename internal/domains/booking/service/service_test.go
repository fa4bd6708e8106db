package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roost/config"
	"roost/infras/otel/mocks"
	bookingMocks "roost/internal/domains/booking/mocks"
	"roost/internal/domains/booking/model"
	"roost/internal/domains/booking/model/dto"
	"roost/internal/domains/booking/service"
	validatorMocks "roost/internal/domains/booking/validator/mocks"
	customerMocks "roost/internal/domains/customer/mocks"
	hotelMocks "roost/internal/domains/hotel/mocks"
	eventsMocks "roost/internal/events/mocks"
	"roost/shared/cache"
	cacheMocks "roost/shared/cache/mocks"
	"roost/shared/failure"
)

type bookingServiceFixture struct {
	repo      *bookingMocks.MockBooking
	customer  *customerMocks.MockCustomer
	hotel     *hotelMocks.MockHotel
	validator *validatorMocks.MockBooking
	cache     *cacheMocks.MockRedisCache
	publisher *eventsMocks.MockPublisher
	svc       service.Booking
}

func newBookingServiceFixture(t *testing.T, ctrl *gomock.Controller) bookingServiceFixture {
	t.Helper()

	f := bookingServiceFixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		customer:  customerMocks.NewMockCustomer(ctrl),
		hotel:     hotelMocks.NewMockHotel(ctrl),
		validator: validatorMocks.NewMockBooking(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventsMocks.NewMockPublisher(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.customer, f.hotel, f.validator, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(t, ctrl)

	req := dto.CreateBookingRequest{
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: "2026-10-01",
		Status:      "CONFIRMED",
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantErrMsg string
	}{
		{
			name: "successful creation",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
				f.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.hotel.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown customer",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
				f.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:    true,
			wantCode:   404,
			wantErrMsg: "customer not found",
		},
		{
			name: "unknown hotel",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
				f.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.hotel.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:    true,
			wantCode:   404,
			wantErrMsg: "hotel not found",
		},
		{
			name: "duplicate triple",
			setupMock: func() {
				f.validator.EXPECT().
					ValidateCreate(gomock.Any(), req).
					Return(failure.Conflict("booking for this customer, hotel and date already exists"))
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
				f.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.hotel.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantErrMsg != "" {
					assert.Equal(t, tt.wantErrMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "2026-10-01", res.BookingDate)
		})
	}
}

func TestBookingService_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(t, ctrl)

	mockDb, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	defer mockDb.Close()

	db := sqlx.NewDb(mockDb, "sqlmock")

	req := dto.CreateBookingRequest{
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: "2026-10-01",
		Status:      "CONFIRMED",
	}

	t.Run("existence checks go through the transaction", func(t *testing.T) {
		sqlMock.ExpectBegin()

		sqltx, err := db.Beginx()
		require.NoError(t, err)

		f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
		f.customer.EXPECT().ExistTx(gomock.Any(), sqltx, gomock.Any()).Return(true, nil)
		f.hotel.EXPECT().ExistTx(gomock.Any(), sqltx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), sqltx, gomock.Any()).Return(nil)

		booking, err := f.svc.CreateTx(context.Background(), sqltx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "customer-1", booking.CustomerID)
	})

	t.Run("unknown customer inside the transaction", func(t *testing.T) {
		sqlMock.ExpectBegin()

		sqltx, err := db.Beginx()
		require.NoError(t, err)

		f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
		f.customer.EXPECT().ExistTx(gomock.Any(), sqltx, gomock.Any()).Return(false, nil)

		_, err = f.svc.CreateTx(context.Background(), sqltx, req)

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(t, ctrl)

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:          "booking-1",
				CustomerID:  "customer-1",
				HotelID:     "hotel-1",
				BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				Status:      "CONFIRMED",
			}, nil)

		res, err := f.svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "2026-10-01", res.BookingDate)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(t, ctrl)

	existing := model.Booking{
		ID:          "booking-1",
		CustomerID:  "customer-1",
		HotelID:     "hotel-1",
		BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:      "CONFIRMED",
	}

	t.Run("empty request is rejected", func(t *testing.T) {
		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("successful status update", func(t *testing.T) {
		req := dto.UpdateBookingRequest{Status: "CANCELLED"}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		f.validator.EXPECT().ValidateUpdate(gomock.Any(), req, existing).Return(nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

		_, err := f.svc.Update(context.Background(), req, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: "CANCELLED"}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(t, ctrl)

	t.Run("successful delete", func(t *testing.T) {
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}
