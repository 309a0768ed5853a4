package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
)

// SetupDB opens a fresh SQLite database in a temp dir, applies all
// migrations and registers cleanup. The seeded default blacklist is present.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scan.db")
	sqlDB, dialect, err := db.Open("sqlite://" + path)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(sqlDB, dialect))
	return sqlDB
}

// SetupStore is SetupDB wrapped in a db.Store.
func SetupStore(t *testing.T) *db.SQLStore {
	t.Helper()
	return db.NewStore(SetupDB(t), db.SQLite)
}
