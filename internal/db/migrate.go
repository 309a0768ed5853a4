package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var MigrationsFS embed.FS

// Open parses a DB_URL and opens the matching driver. postgres:// and
// postgresql:// URLs select PostgreSQL; sqlite://path or a bare path selects
// an SQLite file.
func Open(dbURL string) (*sql.DB, Dialect, error) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		sqlDB, err := sql.Open("postgres", dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		return sqlDB, Postgres, nil
	default:
		path := strings.TrimPrefix(dbURL, "sqlite://")
		if path == "" {
			return nil, "", errors.New("empty sqlite path")
		}
		sqlDB, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite allows a single writer; serialise through one connection.
		sqlDB.SetMaxOpenConns(1)
		if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
			sqlDB.Close()
			return nil, "", fmt.Errorf("configure sqlite: %w", err)
		}
		return sqlDB, SQLite, nil
	}
}

// Migrate applies every pending migration for dialect.
func Migrate(sqlDB *sql.DB, dialect Dialect) error {
	srcDriver, err := iofs.New(MigrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	var dbDriver database.Driver
	switch dialect {
	case Postgres:
		dbDriver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case SQLite:
		dbDriver, err = sqlite.WithInstance(sqlDB, &sqlite.Config{})
	default:
		return fmt.Errorf("unknown dialect %q", dialect)
	}
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, string(dialect), dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
