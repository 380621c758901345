package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
)

// Driver names accepted by [database/sql] and, in the same spelling, by the
// goose migration runner.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the raw connection together with everything that differs between
// the two supported backends: the driver name (used to pick the migration
// dialect), the statement builder with the right placeholder format, and
// driver-specific unique-violation detection.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens the user store described by cfg.
//
// When a DSN is configured the store runs on PostgreSQL; otherwise it falls
// back to the embedded SQLite database at cfg.SQLitePath. The choice is made
// exactly once here, so no other component ever inspects the environment.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN != "" {
		return connect(ctx, DriverPostgres, cfg.DSN, log)
	}

	return connect(ctx, DriverSQLite, cfg.SQLitePath, log)
}

func connect(ctx context.Context, driver, dataSource string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		log.Err(err).Str("func", "store.connect").Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	switch driver {
	case DriverPostgres:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		conn.SetMaxOpenConns(10)
	case DriverSQLite:
		// a single writer connection avoids SQLITE_BUSY under concurrent requests
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.connect").Str("driver", driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "store.connect").Str("driver", driver).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		driver:  driver,
		builder: builder,
		logger:  log,
	}, nil
}

// Driver returns the database/sql driver name the connection was opened with.
// It doubles as the goose migration dialect.
func (db *DB) Driver() string {
	return db.driver
}
