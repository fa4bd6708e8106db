package shared_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roost/shared"
	"roost/shared/constant"
	"roost/shared/dto"
	"roost/shared/failure"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 10, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounds up", total: 21, limit: 10, expected: 3},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Location string `db:"location"`
		Rooms    int    `db:"total_rooms"`
		Internal string
	}

	fields := shared.TransformFields(updateRequest{Name: "Grand Hotel", Rooms: 100, Internal: "skipped"})

	assert.Equal(t, "Grand Hotel", fields["name"])
	assert.Equal(t, 100, fields["total_rooms"])
	assert.NotContains(t, fields, "location", "zero values are not updated")
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.Len(t, fields, 3)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "customer:get:customer-1", shared.BuildCacheKey("customer:get", "customer-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "last_name", SortDir: "ASC"}
	filter := shared.FilterByID("customer-1", "id", "customers")

	first := shared.BuildCacheKeyWithQuery("customer:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("customer:gets", params, filter)
	other := shared.BuildCacheKeyWithQuery("customer:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.Equal(t, first, second, "same query must hash to the same key")
	assert.NotEqual(t, first, other, "different queries must not collide")
	assert.Contains(t, first, "customer:gets:")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("customer-1", "id", "customers")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(customers.id = :id)", where)
	assert.Equal(t, "customer-1", args["id"])
}

func TestTxFailure(t *testing.T) {
	t.Run("rolls back and keeps the original cause", func(t *testing.T) {
		mockDb, sqlMock, err := sqlmock.New()
		require.NoError(t, err)

		defer mockDb.Close()

		db := sqlx.NewDb(mockDb, "sqlmock")

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		sqltx, err := db.Beginx()
		require.NoError(t, err)

		failErr := shared.TxFailure(sqltx, errors.New("insert failed"))

		assert.Equal(t, 500, failure.GetCode(failErr))
		assert.Contains(t, failErr.Error(), "insert failed")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("failed rollback becomes the secondary cause", func(t *testing.T) {
		mockDb, sqlMock, err := sqlmock.New()
		require.NoError(t, err)

		defer mockDb.Close()

		db := sqlx.NewDb(mockDb, "sqlmock")

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback().WillReturnError(errors.New("connection lost"))

		sqltx, err := db.Beginx()
		require.NoError(t, err)

		failErr := shared.TxFailure(sqltx, errors.New("insert failed"))

		assert.Contains(t, failErr.Error(), "insert failed")
		assert.Contains(t, failErr.Error(), "connection lost")

		var fail *failure.Failure
		assert.ErrorAs(t, failErr, &fail)
		assert.EqualError(t, fail.Secondary, "connection lost")
	})

	t.Run("finished transaction leaves no secondary cause", func(t *testing.T) {
		mockDb, sqlMock, err := sqlmock.New()
		require.NoError(t, err)

		defer mockDb.Close()

		db := sqlx.NewDb(mockDb, "sqlmock")

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		sqltx, err := db.Beginx()
		require.NoError(t, err)

		require.Error(t, sqltx.Commit())

		failErr := shared.TxFailure(sqltx, errors.New("commit failed"))

		assert.Contains(t, failErr.Error(), "commit failed")

		var fail *failure.Failure
		assert.ErrorAs(t, failErr, &fail)
		assert.NoError(t, fail.Secondary)
	})
}
