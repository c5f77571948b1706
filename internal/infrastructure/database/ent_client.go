package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database/migrate"
)

// NewEntDriver opens the configured database behind an ent SQL driver. The returned
// driver is wrapped with a debug logger when database.log_sql is set.
func NewEntDriver(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var drv *entsql.Driver
	switch driver {
	case config.DriverPostgres:
		drv, err = openPostgres(dsn)
	case config.DriverSQLite:
		drv, err = OpenSQLite(dsn)
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}

	var out dialect.Driver = drv
	if cfg.Database.LogSQL {
		out = dialect.DebugWithContext(drv, func(_ context.Context, args ...any) {
			logger.WithField("component", "ent").Debug(args...)
		})
	}
	return out, func() { _ = drv.Close() }, nil
}

// Migrate creates or updates the schema on drv.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	if err := migrate.Create(ctx, drv, migrate.WithForeignKeys(true)); err != nil {
		return fmt.Errorf("run schema migration: %w", err)
	}
	return nil
}

func openPostgres(dsn string) (*entsql.Driver, error) {
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open ent sql db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping ent sql db: %w", err)
	}
	return entsql.OpenDB(dialect.Postgres, rawDB), nil
}

// OpenSQLite opens a sqlite database with foreign keys enforced. Tests use it with
// in-memory DSNs.
func OpenSQLite(dsn string) (*entsql.Driver, error) {
	rawDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}
	return entsql.OpenDB(dialect.SQLite, rawDB), nil
}
