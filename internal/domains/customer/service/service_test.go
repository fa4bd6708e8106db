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
	"roost/infras/postgres"
	bookingMocks "roost/internal/domains/booking/mocks"
	customerMocks "roost/internal/domains/customer/mocks"
	"roost/internal/domains/customer/model"
	"roost/internal/domains/customer/model/dto"
	"roost/internal/domains/customer/service"
	validatorMocks "roost/internal/domains/customer/validator/mocks"
	eventsMocks "roost/internal/events/mocks"
	"roost/shared/cache"
	cacheMocks "roost/shared/cache/mocks"
	"roost/shared/failure"
	gModel "roost/shared/model"
	"roost/shared/timezone"
)

type customerServiceFixture struct {
	repo      *customerMocks.MockCustomer
	booking   *bookingMocks.MockBooking
	validator *validatorMocks.MockCustomer
	cache     *cacheMocks.MockRedisCache
	publisher *eventsMocks.MockPublisher
	sqlMock   sqlmock.Sqlmock
	svc       service.Customer
}

func newCustomerServiceFixture(t *testing.T, ctrl *gomock.Controller) customerServiceFixture {
	t.Helper()

	mockDb, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	conn := &postgres.Connection{Read: db, Write: db}

	f := customerServiceFixture{
		repo:      customerMocks.NewMockCustomer(ctrl),
		booking:   bookingMocks.NewMockBooking(ctrl),
		validator: validatorMocks.NewMockCustomer(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventsMocks.NewMockPublisher(ctrl),
		sqlMock:   sqlMock,
	}

	// Cache writes and event publishes run on background goroutines after the
	// operation returns, so their timing is not pinned down here.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.booking, f.validator, conn, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCustomerServiceFixture(t, ctrl)

	req := dto.CreateCustomerRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   "1990-05-20",
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
			name: "validation failure",
			setupMock: func() {
				f.validator.EXPECT().
					ValidateCreate(gomock.Any(), req).
					Return(failure.Validation([]failure.Violation{{Field: "email", Message: "must be a valid email address"}}))
			},
			wantErr:  true,
			wantCode: 400,
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
			assert.Equal(t, "jane.doe@example.com", res.Email)
			assert.Equal(t, "1990-05-20", res.BirthDate)
		})
	}
}

func TestCustomerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCustomerServiceFixture(t, ctrl)

	customer := model.Customer{
		ID:          "customer-1",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "08123456789",
		BirthDate:   time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls through to the repository",
			id:   "customer-1",
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown customer",
			id:   "missing",
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   "customer-1",
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "customer-1", res.ID)
		})
	}
}

func TestCustomerService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCustomerServiceFixture(t, ctrl)

	t.Run("found", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{ID: "customer-1", Email: "jane.doe@example.com"}, nil)

		res, err := f.svc.GetByEmail(context.Background(), "jane.doe@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "customer-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		_, err := f.svc.GetByEmail(context.Background(), "nobody@example.com")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCustomerServiceFixture(t, ctrl)

	existing := model.Customer{ID: "customer-1", Email: "jane.doe@example.com"}

	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "empty request is rejected",
			req:       dto.UpdateCustomerRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown customer",
			req:  dto.UpdateCustomerRequest{FirstName: "Janet"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "successful update",
			req:  dto.UpdateCustomerRequest{FirstName: "Janet", BirthDate: "1991-01-02"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.validator.EXPECT().ValidateUpdate(gomock.Any(), gomock.Any(), "customer-1").Return(nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Janet", fields[model.FieldFirstName])
						assert.Equal(t, time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC), fields[model.FieldBirthDate])

						return nil
					})
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Update(context.Background(), tt.req, "customer-1")

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

func TestCustomerService_Delete(t *testing.T) {
	t.Run("deletes the customer and its bookings in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCustomerServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.sqlMock.ExpectBegin()

		gomock.InOrder(
			f.booking.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		f.sqlMock.ExpectCommit()

		err := f.svc.Delete(context.Background(), "customer-1")

		assert.NoError(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCustomerServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("booking delete failure rolls everything back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCustomerServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.sqlMock.ExpectBegin()
		f.booking.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("delete failed"))
		f.sqlMock.ExpectRollback()

		err := f.svc.Delete(context.Background(), "customer-1")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.Contains(t, err.Error(), "delete failed")
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("customer delete failure rolls everything back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCustomerServiceFixture(t, ctrl)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.sqlMock.ExpectBegin()
		f.booking.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("delete failed"))
		f.sqlMock.ExpectRollback()

		err := f.svc.Delete(context.Background(), "customer-1")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}
