package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	storage, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Migrate(context.Background()))
	return storage
}

func testUser(username string) *model.User {
	return &model.User{
		Username:     username,
		FirstName:    "Sara",
		LastName:     "Ahmadi",
		Phone:        "09123456789",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		City:         "Tehran",
		Email:        "sara@gmail.com",
		Birthdate:    "1995-04-12",
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates missing parent directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		storage, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		assert.NoError(t, storage.Close())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	storage := createTestStorage(t)

	// Running again on an up-to-date database is a no-op.
	require.NoError(t, storage.Migrate(context.Background()))

	var version int
	require.NoError(t, storage.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestValidateContext(t *testing.T) {
	storage := createTestStorage(t)

	//nolint:staticcheck // passing nil on purpose
	err := storage.SaveRecord(nil, &model.Record{
		Type: model.RecordTypeExpense, Username: "sara", Amount: 1, Date: "2024-01-01",
	})
	assert.ErrorIs(t, err, ErrNilContext)
}
