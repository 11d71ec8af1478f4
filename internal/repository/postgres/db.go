package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lib/pq"
)

// ErrSchemaMissing is returned by Connect when the match tables have not been
// created. Apply migrations/001_initial.up.sql first.
var ErrSchemaMissing = errors.New("match schema missing")

// matchTables are the tables MatchRepo reads and writes.
var matchTables = []string{"matches", "match_players", "turn_records"}

// Connect opens a pool sized for workers concurrent matches and verifies the
// match schema is present.
func Connect(ctx context.Context, databaseURL string, workers int) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(poolSize(workers))
	db.SetMaxIdleConns(max(workers, 1))
	db.SetConnMaxIdleTime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if err := CheckSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// poolSize gives every match worker a connection for its turn batches and
// one for reads, within [4, 50].
func poolSize(workers int) int {
	return min(max(2*workers, 4), 50)
}

// Queryer is satisfied by *sql.DB and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// CheckSchema reports ErrSchemaMissing, naming the absent tables, unless
// every match table exists in the current schema.
func CheckSchema(ctx context.Context, db Queryer) error {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = current_schema() AND table_name = ANY($1)`,
		pq.Array(matchTables))
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan table name: %w", err)
		}
		found = append(found, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	if missing := missingTables(found); len(missing) > 0 {
		return fmt.Errorf("%w: %s (apply migrations/001_initial.up.sql)", ErrSchemaMissing, strings.Join(missing, ", "))
	}
	return nil
}

func missingTables(found []string) []string {
	var missing []string
	for _, t := range matchTables {
		if !slices.Contains(found, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
