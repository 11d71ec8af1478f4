package sqlite

import (
	"context"
	"testing"

	"github.com/freeeve/realmwright/internal/model"
)

func openMemory(t *testing.T) *MatchRepo {
	t.Helper()
	repo, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seats() []model.MatchPlayer {
	return []model.MatchPlayer{
		{Name: "Red", Colour: "#ff0000", Playstyle: "aggressive"},
		{Name: "Blue", Colour: "#0000ff", Playstyle: "defensive", Human: true},
	}
}

func TestMatchCreateAndFind(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	m, err := repo.Create(ctx, "duel", 42, 100, seats())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" || m.Status != model.StatusActive {
		t.Fatalf("unexpected match %+v", m)
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.Seed != 42 || got.MaxTurns != 100 || got.Name != "duel" {
		t.Fatalf("unexpected match %+v", got)
	}
	if len(got.Players) != 2 {
		t.Fatalf("expected 2 seats, got %d", len(got.Players))
	}
	if got.Players[1].Name != "Blue" || got.Players[1].Seat != 1 || !got.Players[1].Human {
		t.Errorf("unexpected second seat %+v", got.Players[1])
	}
	if got.FinishedAt != nil {
		t.Errorf("expected active match to have no finish time")
	}
}

func TestMatchFindMissing(t *testing.T) {
	repo := openMemory(t)

	got, err := repo.FindByID(context.Background(), "no-such-match")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestRecordTurnsAndHistory(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	m, err := repo.Create(ctx, "history", 7, 10, seats())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	batch := []model.TurnRecord{
		{MatchID: m.ID, Turn: 1, Player: "Red", Wealth: 12.5, Settlements: 1, Units: 1, Ongoing: "Beginner Spells"},
		{MatchID: m.ID, Turn: 1, Player: "Blue", Wealth: 8, Settlements: 1, Units: 2, Blessings: []string{"Forestry"}},
	}
	if err := repo.RecordTurns(ctx, batch); err != nil {
		t.Fatalf("record turn 1: %v", err)
	}
	if err := repo.RecordTurns(ctx, []model.TurnRecord{{MatchID: m.ID, Turn: 2, Player: "Red", Wealth: 20}}); err != nil {
		t.Fatalf("record turn 2: %v", err)
	}
	if err := repo.RecordTurns(ctx, nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}

	history, err := repo.TurnHistory(ctx, m.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 records, got %d", len(history))
	}
	if history[0].Player != "Blue" || len(history[0].Blessings) != 1 || history[0].Blessings[0] != "Forestry" {
		t.Errorf("expected Blue first with Forestry, got %+v", history[0])
	}
	if history[1].Ongoing != "Beginner Spells" || history[1].Blessings != nil {
		t.Errorf("unexpected Red record %+v", history[1])
	}
	if history[2].Turn != 2 || history[2].Wealth != 20 {
		t.Errorf("unexpected last record %+v", history[2])
	}
	if history[0].CreatedAt.IsZero() {
		t.Errorf("expected created_at to be set")
	}

	got, _ := repo.FindByID(ctx, m.ID)
	if got.Turns != 2 {
		t.Errorf("expected turns 2, got %d", got.Turns)
	}
}

func TestSetFinished(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	m, err := repo.Create(ctx, "final", 1, 50, seats())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	standings := []model.MatchPlayer{
		{Name: "Red", Settlements: 3, Units: 4, Wealth: 99.5, Blessings: []string{"Beginner Spells", "Forestry"}},
		{Name: "Blue", Settlements: 0, Units: 0},
	}
	if err := repo.SetFinished(ctx, m.ID, 37, "Red", standings); err != nil {
		t.Fatalf("set finished: %v", err)
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != model.StatusFinished || got.Turns != 37 || got.Winner != "Red" {
		t.Errorf("unexpected finished match %+v", got)
	}
	if got.FinishedAt == nil {
		t.Errorf("expected finish time")
	}
	red := got.Players[0]
	if red.Settlements != 3 || red.Units != 4 || red.Wealth != 99.5 {
		t.Errorf("unexpected standing %+v", red)
	}
	if len(red.Blessings) != 2 || red.Blessings[1] != "Forestry" {
		t.Errorf("expected 2 blessings, got %v", red.Blessings)
	}
	if got.Players[1].Blessings != nil {
		t.Errorf("expected no blessings for Blue, got %v", got.Players[1].Blessings)
	}
}

func TestListRecent(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := repo.Create(ctx, name, 1, 10, nil); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	matches, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Name != "third" || matches[1].Name != "second" {
		t.Errorf("expected newest first, got %s, %s", matches[0].Name, matches[1].Name)
	}
}
