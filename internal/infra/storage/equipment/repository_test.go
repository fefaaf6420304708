package equipment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	"github.com/m04kA/AgriRent-BookingService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *dbmetrics.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), mock, wrapped
}

func equipmentRows() *sqlmock.Rows {
	now := time.Now()
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	till := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		7, 1, "Mahindra 575 DI", "Tractor", "Mahindra 575", "Mahindra", "good", nil,
		"Punjab", "Ludhiana", "Khanna",
		2500.0, "per_day", false, 500.0, from, till, now, now,
	)
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, _ := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM equipment WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(equipmentRows())

		e, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), e.OwnerID)
		assert.Equal(t, domain.PricingPerDay, e.PricingType)
		require.NotNil(t, e.AvailableTill)
		assert.Equal(t, 30, e.AvailableTill.Day())
		assert.Nil(t, e.Description)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock, _ := newRepo(t)
		mock.ExpectQuery("FROM equipment").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 8)

		assert.ErrorIs(t, err, ErrEquipmentNotFound)
	})
}

func TestRepository_LockByID_UsesForUpdateInsideTx(t *testing.T) {
	repo, mock, db := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(equipmentRows())

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repo.LockByID(dbmetrics.WithTx(ctx, tx), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAvailable(t *testing.T) {
	repo, mock, _ := newRepo(t)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (available_till IS NULL OR available_till >= $1)")).
		WithArgs(today).
		WillReturnRows(equipmentRows())

	list, err := repo.ListAvailable(context.Background(), today)

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_Create_CheckViolation(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("INSERT INTO equipment").
		WillReturnError(&pq.Error{Code: "23514", Constraint: "equipment_window_check"})

	_, err := repo.Create(context.Background(), &domain.Equipment{OwnerID: 1, PricingType: domain.PricingPerDay})

	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
