package arena

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/freeeve/realmwright/internal/model"
)

type fakeRepo struct {
	createErr error
	created   *model.Match
	turns     [][]model.TurnRecord
	finished  bool
	winner    string
	final     []model.MatchPlayer
	lastTurn  int
}

func (r *fakeRepo) Create(_ context.Context, name string, seed int64, maxTurns int, players []model.MatchPlayer) (*model.Match, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = &model.Match{ID: "match-1", Name: name, Seed: seed, MaxTurns: maxTurns, Players: players}
	return r.created, nil
}

func (r *fakeRepo) RecordTurns(_ context.Context, records []model.TurnRecord) error {
	r.turns = append(r.turns, records)
	return nil
}

func (r *fakeRepo) SetFinished(_ context.Context, _ string, turns int, winner string, standings []model.MatchPlayer) error {
	r.finished = true
	r.lastTurn = turns
	r.winner = winner
	r.final = standings
	return nil
}

func (r *fakeRepo) FindByID(context.Context, string) (*model.Match, error) {
	return r.created, nil
}

func (r *fakeRepo) ListRecent(context.Context, int) ([]model.Match, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRepo) TurnHistory(context.Context, string) ([]model.TurnRecord, error) {
	return nil, errors.New("not implemented")
}

type fakeCache struct {
	ids       map[string]bool
	snapshots []json.RawMessage
}

func (c *fakeCache) SetSnapshot(_ context.Context, matchID string, snapshot json.RawMessage) error {
	if c.ids == nil {
		c.ids = make(map[string]bool)
	}
	c.ids[matchID] = true
	c.snapshots = append(c.snapshots, snapshot)
	return nil
}

func (c *fakeCache) GetSnapshot(context.Context, string) (json.RawMessage, error) {
	if len(c.snapshots) == 0 {
		return nil, nil
	}
	return c.snapshots[len(c.snapshots)-1], nil
}

func (c *fakeCache) DeleteMatchData(context.Context, string) error {
	c.snapshots = nil
	return nil
}
