package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/db"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, db.DBTX) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func putSetting(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, 'now')`, key, value)
	return err
}

func readSetting(t *testing.T, conn db.DBTX, key string) (string, bool) {
	t.Helper()
	var val string
	err := conn.QueryRowContext(context.Background(), `SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	return val, err == nil
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, conn := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return putSetting(ctx, tx, "k1", "v1")
	})
	require.NoError(t, err)

	val, found := readSetting(t, conn, "k1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "v1", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, conn := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putSetting(ctx, tx, "k2", "v2"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readSetting(t, conn, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, conn := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putSetting(ctx, tx, "k3", "v3")
			panic("boom")
		})
	})

	_, found := readSetting(t, conn, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}
