// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/leadpage/cliparse"
)

func init() {
	// sqlx only knows the cgo driver name
	sqlx.BindDriver(cliparse.DriverSQLite, sqlx.QUESTION)
}

// Open connects to the resolved database and verifies the connection.
func Open(ctx context.Context, target cliparse.Database) (*sqlx.DB, error) {
	conn, err := sqlx.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", target.Driver, err)
	}

	if target.Driver == cliparse.DriverSQLite {
		// One writer at a time keeps sqlite out of SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", target.Driver, err)
	}

	return conn, nil
}
