package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roost/infras/otel/mocks"
	"roost/infras/postgres"
	"roost/shared/dto"
	"roost/shared/repository"
)

type guestRecord struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func newGuestRepository(t *testing.T) (repository.Repository[guestRecord], sqlmock.Sqlmock) {
	t.Helper()

	mockDb, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	conn := &postgres.Connection{Read: db, Write: db}

	return repository.NewRepository[guestRecord]("Guest", "guests", "id", conn, mocks.NewOtel()), sqlMock
}

func TestRepositoryGetAllOrdering(t *testing.T) {
	noOrdering := `^SELECT guests\.id, guests\.name FROM guests\s*$`

	tests := []struct {
		name    string
		params  dto.QueryParams
		wantSQL string
	}{
		{
			name:    "known column orders the statement",
			params:  dto.QueryParams{SortBy: "name", SortDir: "ASC"},
			wantSQL: "ORDER BY name ASC",
		},
		{
			name:    "lowercase direction is normalized",
			params:  dto.QueryParams{SortBy: "name", SortDir: "desc"},
			wantSQL: "ORDER BY name DESC",
		},
		{
			name:    "unknown column never reaches the statement",
			params:  dto.QueryParams{SortBy: "(SELECT pg_sleep(10))", SortDir: "ASC"},
			wantSQL: noOrdering,
		},
		{
			name:    "invalid direction never reaches the statement",
			params:  dto.QueryParams{SortBy: "name", SortDir: "ASC; DROP TABLE guests"},
			wantSQL: noOrdering,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, sqlMock := newGuestRepository(t)

			rows := sqlmock.NewRows([]string{"id", "name"}).AddRow("guest-1", "Alice")
			sqlMock.ExpectPrepare(tt.wantSQL).ExpectQuery().WillReturnRows(rows)

			res, err := repo.GetAll(context.Background(), tt.params, dto.FilterGroup{})

			assert.NoError(t, err)
			assert.Len(t, res, 1)
			assert.Equal(t, "guest-1", res[0].ID)
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}
