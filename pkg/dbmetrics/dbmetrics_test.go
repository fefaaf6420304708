package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu         sync.Mutex
	operations []string
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ error, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, operation)
}

func (c *recordingCollector) SetDBStats(sql.DBStats) {}

func TestQueryOperation(t *testing.T) {
	assert.Equal(t, "SELECT", queryOperation("  select id from bookings"))
	assert.Equal(t, "UPDATE", queryOperation("UPDATE bookings SET status = $1"))
	assert.Equal(t, "UNKNOWN", queryOperation(""))
}

func TestDB_ObservesQueriesInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = tx.ExecContext(ctx, "UPDATE bookings SET status = 'approved' WHERE id = 1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, []string{"BEGIN", "UPDATE", "COMMIT"}, collector.operations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, wrapped))
}
