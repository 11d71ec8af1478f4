package repository

import (
	"context"
	"encoding/json"

	"github.com/freeeve/realmwright/internal/model"
)

// MatchRepository stores match results and per-turn history.
type MatchRepository interface {
	Create(ctx context.Context, name string, seed int64, maxTurns int, players []model.MatchPlayer) (*model.Match, error)
	RecordTurns(ctx context.Context, records []model.TurnRecord) error
	SetFinished(ctx context.Context, matchID string, turns int, winner string, standings []model.MatchPlayer) error
	FindByID(ctx context.Context, id string) (*model.Match, error)
	ListRecent(ctx context.Context, limit int) ([]model.Match, error)
	TurnHistory(ctx context.Context, matchID string) ([]model.TurnRecord, error)
}

// WorldCache holds the live world snapshot of running matches.
type WorldCache interface {
	SetSnapshot(ctx context.Context, matchID string, snapshot json.RawMessage) error
	GetSnapshot(ctx context.Context, matchID string) (json.RawMessage, error)
	DeleteMatchData(ctx context.Context, matchID string) error
}
