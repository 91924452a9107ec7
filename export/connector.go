package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver (pgx)
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
	"github.com/shibukawa/gccopt"
)

// ConnectionPoolSettings defines database connection pool configuration
type ConnectionPoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolSettings keeps a single connection, which an export needs anyway
// and which in-memory SQLite databases require.
var DefaultPoolSettings = ConnectionPoolSettings{
	MaxOpenConns:    1,
	MaxIdleConns:    1,
	ConnMaxLifetime: 5 * time.Minute,
}

// Open connects to the database named by driver and connection and verifies
// the connection.
func Open(ctx context.Context, driver, connection string) (*sql.DB, gccopt.Dialect, error) {
	dialect, err := gccopt.DialectForDriver(driver)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(dialect.DriverName(), connection)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	db.SetMaxOpenConns(DefaultPoolSettings.MaxOpenConns)
	db.SetMaxIdleConns(DefaultPoolSettings.MaxIdleConns)
	db.SetConnMaxLifetime(DefaultPoolSettings.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to connect to %s database: %w", dialect, err)
	}

	return db, dialect, nil
}
