package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/freeeve/realmwright/internal/model"
)

// MatchRepo handles match, match_player and turn_record operations.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo creates a MatchRepo.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// Create inserts a new active match with its seats.
func (r *MatchRepo) Create(ctx context.Context, name string, seed int64, maxTurns int, players []model.MatchPlayer) (*model.Match, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var m model.Match
	err = tx.QueryRowContext(ctx,
		`INSERT INTO matches (name, seed, max_turns)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, status, seed, max_turns, turns, created_at`,
		name, seed, maxTurns,
	).Scan(&m.ID, &m.Name, &m.Status, &m.Seed, &m.MaxTurns, &m.Turns, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}

	for i, p := range players {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO match_players (match_id, seat, name, colour, playstyle, human)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, i, p.Name, p.Colour, p.Playstyle, p.Human)
		if err != nil {
			return nil, fmt.Errorf("insert player %s: %w", p.Name, err)
		}
		p.MatchID = m.ID
		p.Seat = i
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
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO turn_records (match_id, turn, player, wealth, settlements, units, ongoing, blessings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("prepare turn insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.MatchID, rec.Turn, rec.Player, rec.Wealth, rec.Settlements, rec.Units,
			rec.Ongoing, pq.Array(nonNil(rec.Blessings))); err != nil {
			return fmt.Errorf("insert turn %d for %s: %w", rec.Turn, rec.Player, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE matches SET turns = GREATEST(turns, $2) WHERE id = $1`,
		records[0].MatchID, records[len(records)-1].Turn); err != nil {
		return fmt.Errorf("update turn count: %w", err)
	}
	return tx.Commit()
}

// SetFinished marks a match finished and stores the final standings.
func (r *MatchRepo) SetFinished(ctx context.Context, matchID string, turns int, winner string, standings []model.MatchPlayer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE matches SET status = 'finished', turns = $2, winner = NULLIF($3, ''), finished_at = now() WHERE id = $1`,
		matchID, turns, winner)
	if err != nil {
		return fmt.Errorf("set finished: %w", err)
	}
	for _, p := range standings {
		_, err := tx.ExecContext(ctx,
			`UPDATE match_players SET settlements = $3, units = $4, wealth = $5, blessings = $6
			 WHERE match_id = $1 AND name = $2`,
			matchID, p.Name, p.Settlements, p.Units, p.Wealth, pq.Array(nonNil(p.Blessings)))
		if err != nil {
			return fmt.Errorf("update standing for %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// FindByID returns a match with its players.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	var m model.Match
	var winner sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, status, seed, max_turns, turns, winner, created_at, finished_at
		 FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Status, &m.Seed, &m.MaxTurns, &m.Turns, &winner, &m.CreatedAt, &m.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	m.Winner = winner.String

	players, err := r.ListPlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Players = players
	return &m, nil
}

// ListPlayers returns a match's seats in seat order.
func (r *MatchRepo) ListPlayers(ctx context.Context, matchID string) ([]model.MatchPlayer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT match_id, seat, name, colour, playstyle, human, settlements, units, wealth, blessings
		 FROM match_players WHERE match_id = $1 ORDER BY seat`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []model.MatchPlayer
	for rows.Next() {
		var p model.MatchPlayer
		if err := rows.Scan(&p.MatchID, &p.Seat, &p.Name, &p.Colour, &p.Playstyle, &p.Human, &p.Settlements, &p.Units,
			&p.Wealth, pq.Array(&p.Blessings)); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListRecent returns the most recently created matches, newest first.
func (r *MatchRepo) ListRecent(ctx context.Context, limit int) ([]model.Match, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, status, seed, max_turns, turns, winner, created_at, finished_at
		 FROM matches ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		var winner sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Status, &m.Seed, &m.MaxTurns, &m.Turns, &winner, &m.CreatedAt, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Winner = winner.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// TurnHistory returns a match's turn records in turn then player order.
func (r *MatchRepo) TurnHistory(ctx context.Context, matchID string) ([]model.TurnRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT match_id, turn, player, wealth, settlements, units, ongoing, blessings, created_at
		 FROM turn_records WHERE match_id = $1 ORDER BY turn, player`, matchID)
	if err != nil {
		return nil, fmt.Errorf("turn history: %w", err)
	}
	defer rows.Close()

	var records []model.TurnRecord
	for rows.Next() {
		var rec model.TurnRecord
		if err := rows.Scan(&rec.MatchID, &rec.Turn, &rec.Player, &rec.Wealth, &rec.Settlements, &rec.Units,
			&rec.Ongoing, pq.Array(&rec.Blessings), &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
