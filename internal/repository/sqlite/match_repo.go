// Package sqlite is a single-file match store for local runs without a
// Postgres server.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/freeeve/realmwright/internal/model"
)

// MatchRepo implements repository.MatchRepository on SQLite.
type MatchRepo struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(path string) (*MatchRepo, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite serialises writers anyway; one connection also keeps :memory: a single database.
	conn.SetMaxOpenConns(1)

	r := &MatchRepo{conn: conn}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// Close closes the database connection.
func (r *MatchRepo) Close() error {
	return r.conn.Close()
}

func (r *MatchRepo) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		seed INTEGER NOT NULL,
		max_turns INTEGER NOT NULL,
		turns INTEGER NOT NULL DEFAULT 0,
		winner TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS match_players (
		match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		seat INTEGER NOT NULL,
		name TEXT NOT NULL,
		colour TEXT NOT NULL DEFAULT '',
		playstyle TEXT NOT NULL,
		human INTEGER NOT NULL DEFAULT 0,
		settlements INTEGER NOT NULL DEFAULT 0,
		units INTEGER NOT NULL DEFAULT 0,
		wealth REAL NOT NULL DEFAULT 0,
		blessings_json TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (match_id, seat)
	);

	CREATE TABLE IF NOT EXISTS turn_records (
		match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		turn INTEGER NOT NULL,
		player TEXT NOT NULL,
		wealth REAL NOT NULL,
		settlements INTEGER NOT NULL,
		units INTEGER NOT NULL,
		ongoing TEXT NOT NULL DEFAULT '',
		blessings_json TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (match_id, turn, player)
	);

	CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at);
	`
	_, err := r.conn.Exec(schema)
	return err
}

type playerRow struct {
	model.MatchPlayer
	BlessingsJSON string `db:"blessings_json"`
}

type turnRow struct {
	model.TurnRecord
	BlessingsJSON string `db:"blessings_json"`
}

func encodeNames(names []string) string {
	if len(names) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(names)
	return string(data)
}

func decodeNames(data string) ([]string, error) {
	var names []string
	if err := json.Unmarshal([]byte(data), &names); err != nil {
		return nil, fmt.Errorf("decode blessings: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}
	return names, nil
}

// Create inserts a new active match with its seats.
func (r *MatchRepo) Create(ctx context.Context, name string, seed int64, maxTurns int, players []model.MatchPlayer) (*model.Match, error) {
	m := model.Match{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    model.StatusActive,
		Seed:      seed,
		MaxTurns:  maxTurns,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO matches (id, name, status, seed, max_turns, turns, winner, created_at)
		 VALUES (:id, :name, :status, :seed, :max_turns, :turns, :winner, :created_at)`, &m); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	for i, p := range players {
		p.MatchID = m.ID
		p.Seat = i
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO match_players (match_id, seat, name, colour, playstyle, human)
			 VALUES (:match_id, :seat, :name, :colour, :playstyle, :human)`, &p); err != nil {
			return nil, fmt.Errorf("insert player %s: %w", p.Name, err)
		}
		m.Players = append(m.Players, p)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit match: %w", err)
	}
	return &m, nil
}

// RecordTurns inserts a batch of turn records in one transaction.
func (r *MatchRepo) RecordTurns(ctx context.Context, records []model.TurnRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx,
		`INSERT INTO turn_records (match_id, turn, player, wealth, settlements, units, ongoing, blessings_json, created_at)
		 VALUES (:match_id, :turn, :player, :wealth, :settlements, :units, :ongoing, :blessings_json, :created_at)`)
	if err != nil {
		return fmt.Errorf("prepare turn insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, rec := range records {
		row := turnRow{TurnRecord: rec, BlessingsJSON: encodeNames(rec.Blessings)}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		if _, err := stmt.ExecContext(ctx, &row); err != nil {
			return fmt.Errorf("insert turn %d for %s: %w", rec.Turn, rec.Player, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE matches SET turns = MAX(turns, ?) WHERE id = ?`,
		records[len(records)-1].Turn, records[0].MatchID); err != nil {
		return fmt.Errorf("update turn count: %w", err)
	}
	return tx.Commit()
}

// SetFinished marks a match finished and stores the final standings.
func (r *MatchRepo) SetFinished(ctx context.Context, matchID string, turns int, winner string, standings []model.MatchPlayer) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE matches SET status = ?, turns = ?, winner = ?, finished_at = ? WHERE id = ?`,
		model.StatusFinished, turns, winner, time.Now().UTC(), matchID); err != nil {
		return fmt.Errorf("set finished: %w", err)
	}
	for _, p := range standings {
		if _, err := tx.ExecContext(ctx,
			`UPDATE match_players SET settlements = ?, units = ?, wealth = ?, blessings_json = ?
			 WHERE match_id = ? AND name = ?`,
			p.Settlements, p.Units, p.Wealth, encodeNames(p.Blessings), matchID, p.Name); err != nil {
			return fmt.Errorf("update standing for %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// FindByID returns a match with its players, or nil if there is none.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	var m model.Match
	err := r.conn.GetContext(ctx, &m,
		`SELECT id, name, status, seed, max_turns, turns, winner, created_at, finished_at
		 FROM matches WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}

	var rows []playerRow
	if err := r.conn.SelectContext(ctx, &rows,
		`SELECT match_id, seat, name, colour, playstyle, human, settlements, units, wealth, blessings_json
		 FROM match_players WHERE match_id = ? ORDER BY seat`, id); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	for _, row := range rows {
		p := row.MatchPlayer
		if p.Blessings, err = decodeNames(row.BlessingsJSON); err != nil {
			return nil, err
		}
		m.Players = append(m.Players, p)
	}
	return &m, nil
}

// ListRecent returns the most recently created matches, newest first.
func (r *MatchRepo) ListRecent(ctx context.Context, limit int) ([]model.Match, error) {
	var matches []model.Match
	err := r.conn.SelectContext(ctx, &matches,
		`SELECT id, name, status, seed, max_turns, turns, winner, created_at, finished_at
		 FROM matches ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return matches, nil
}

// TurnHistory returns a match's turn records in turn then player order.
func (r *MatchRepo) TurnHistory(ctx context.Context, matchID string) ([]model.TurnRecord, error) {
	var rows []turnRow
	err := r.conn.SelectContext(ctx, &rows,
		`SELECT match_id, turn, player, wealth, settlements, units, ongoing, blessings_json, created_at
		 FROM turn_records WHERE match_id = ? ORDER BY turn, player`, matchID)
	if err != nil {
		return nil, fmt.Errorf("turn history: %w", err)
	}
	records := make([]model.TurnRecord, 0, len(rows))
	for _, row := range rows {
		rec := row.TurnRecord
		if rec.Blessings, err = decodeNames(row.BlessingsJSON); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
