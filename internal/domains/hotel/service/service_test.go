package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roost/config"
	"roost/infras/otel/mocks"
	"roost/infras/postgres"
	bookingMocks "roost/internal/domains/booking/mocks"
	hotelMocks "roost/internal/domains/hotel/mocks"
	"roost/internal/domains/hotel/model"
	"roost/internal/domains/hotel/model/dto"
	"roost/internal/domains/hotel/service"
	validatorMocks "roost/internal/domains/hotel/validator/mocks"
	eventsMocks "roost/internal/events/mocks"
	"roost/shared/cache"
	cacheMocks "roost/shared/cache/mocks"
	"roost/shared/failure"
)

type hotelServiceFixture struct {
	repo      *hotelMocks.MockHotel
	booking   *bookingMocks.MockBooking
	validator *validatorMocks.MockHotel
	cache     *cacheMocks.MockRedisCache
	publisher *eventsMocks.MockPublisher
	sqlMock   sqlmock.Sqlmock
	svc       service.Hotel
}

func newHotelServiceFixture(t *testing.T, ctrl *gomock.Controller) hotelServiceFixture {
	t.Helper()

	mockDb, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	conn := &postgres.Connection{Read: db, Write: db}

	f := hotelServiceFixture{
		repo:      hotelMocks.NewMockHotel(ctrl),
		booking:   bookingMocks.NewMockBooking(ctrl),
		validator: validatorMocks.NewMockHotel(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventsMocks.NewMockPublisher(ctrl),
		sqlMock:   sqlMock,
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.booking, f.validator, conn, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func TestHotelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHotelServiceFixture(t, ctrl)

	req := dto.CreateHotelRequest{
		Name:           "Grand Hotel",
		Location:       "New York",
		TotalRooms:     100,
		AvailableRooms: 80,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate pair",
			setupMock: func() {
				f.validator.EXPECT().
					ValidateCreate(gomock.Any(), req).
					Return(failure.Conflict("hotel with the same name and location already exists"))
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			setupMock: func() {
				f.validator.EXPECT().ValidateCreate(gomock.Any(), req).Return(nil)
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

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Grand Hotel", res.Name)
		})
	}
}

func TestHotelService_GetByNameAndLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHotelServiceFixture(t, ctrl)

	t.Run("found", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Hotel{ID: "hotel-1", Name: "Grand Hotel", Location: "New York"}, nil)

		res, err := f.svc.GetByNameAndLocation(context.Background(), "Grand Hotel", "New York")

		assert.NoError(t, err)
		assert.Equal(t, "hotel-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Hotel{}, nil)

		_, err := f.svc.GetByNameAndLocation(context.Background(), "Grand Hotel", "Chicago")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestHotelService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHotelServiceFixture(t, ctrl)

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1"}, nil)

		res, err := f.svc.Get(context.Background(), "hotel-1")

		assert.NoError(t, err)
		assert.Equal(t, "hotel-1", res.ID)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestHotelService_Delete(t *testing.T) {
	t.Run("deletes the hotel and its bookings in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHotelServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.sqlMock.ExpectBegin()

		gomock.InOrder(
			f.booking.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		f.sqlMock.ExpectCommit()

		err := f.svc.Delete(context.Background(), "hotel-1")

		assert.NoError(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHotelServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("booking delete failure rolls everything back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHotelServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.sqlMock.ExpectBegin()
		f.booking.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("delete failed"))
		f.sqlMock.ExpectRollback()

		err := f.svc.Delete(context.Background(), "hotel-1")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}
