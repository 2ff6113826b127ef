package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const probeTimeout = 3 * time.Second

// Probe runs a round trip against the database and returns its clock.
func Probe(ctx context.Context, db *sql.DB) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var now string
	if err := db.QueryRowContext(ctx, "SELECT now()::text").Scan(&now); err != nil {
		return "", fmt.Errorf("probe database: %w", err)
	}
	return now, nil
}
