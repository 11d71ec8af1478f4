package arena

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/freeeve/realmwright/internal/config"
	"github.com/freeeve/realmwright/pkg/realm"
)

func smallMatch(t *testing.T, playstyles string, turns int, seed int64) MatchConfig {
	t.Helper()
	players, err := ParsePlaystyleConfig(playstyles, DefaultRoster)
	if err != nil {
		t.Fatalf("parse playstyles: %v", err)
	}
	return MatchConfig{
		Name:     "test",
		Players:  players,
		MaxTurns: turns,
		Seed:     seed,
		Width:    40,
		Height:   30,
		Heathens: 4,
		DryRun:   true,
	}
}

func TestRunMatchDryRun(t *testing.T) {
	cfg := smallMatch(t, "red=aggressive,blue=defensive,*=neutral", 30, 42)

	result, err := RunMatch(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if result.Turns != 30 {
		t.Errorf("expected 30 turns, got %d", result.Turns)
	}
	if result.MatchID != "" {
		t.Errorf("expected no match id in dry run, got %q", result.MatchID)
	}
	if len(result.Standings) != 4 {
		t.Fatalf("expected 4 standings, got %d", len(result.Standings))
	}
	for _, s := range result.Standings {
		if s.Settlements < 1 {
			t.Errorf("%s: expected at least one settlement, got %d", s.Name, s.Settlements)
		}
	}
	if result.Standings[0].Playstyle != "aggressive" || result.Standings[1].Playstyle != "defensive" {
		t.Errorf("unexpected playstyles %+v", result.Standings)
	}

	t.Logf("Result: winner=%q turns=%d", result.Winner, result.Turns)
	for _, s := range result.Standings {
		t.Logf("  %s (%s): %d settlements, %d units, %.1f wealth", s.Name, s.Playstyle, s.Settlements, s.Units, s.Wealth)
	}
}

func TestRunMatchDeterministic(t *testing.T) {
	cfg := smallMatch(t, "*=aggressive", 25, 7)

	a, err := RunMatch(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := RunMatch(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if a.Winner != b.Winner {
		t.Errorf("expected same winner, got %q and %q", a.Winner, b.Winner)
	}
	for i := range a.Standings {
		if a.Standings[i] != b.Standings[i] {
			t.Errorf("standing %d differs: %+v vs %+v", i, a.Standings[i], b.Standings[i])
		}
	}
}

func TestRunMatchRecordsTurns(t *testing.T) {
	cfg := smallMatch(t, "*=neutral", 12, 3)
	cfg.DryRun = false
	repo := &fakeRepo{}
	cache := &fakeCache{}

	result, err := RunMatch(context.Background(), cfg, repo, cache)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if result.MatchID != "match-1" {
		t.Errorf("expected match id from repo, got %q", result.MatchID)
	}
	if repo.created == nil || len(repo.created.Players) != 4 || repo.created.Players[2].Name != "green" {
		t.Fatalf("unexpected created match %+v", repo.created)
	}
	if len(repo.turns) != 12 {
		t.Fatalf("expected 12 turn batches, got %d", len(repo.turns))
	}
	last := repo.turns[11]
	if len(last) != 4 || last[0].Turn != 12 || last[0].MatchID != "match-1" {
		t.Errorf("unexpected last batch %+v", last)
	}
	if !repo.finished || repo.lastTurn != 12 || repo.winner != result.Winner {
		t.Errorf("expected finished at 12 with winner %q, got %v %d %q", result.Winner, repo.finished, repo.lastTurn, repo.winner)
	}
	if len(repo.final) != 4 {
		t.Errorf("expected 4 final seats, got %d", len(repo.final))
	}

	if len(cache.snapshots) != 12 || !cache.ids["match-1"] {
		t.Fatalf("expected 12 snapshots for match-1, got %d %v", len(cache.snapshots), cache.ids)
	}
	var snap Snapshot
	if err := json.Unmarshal(cache.snapshots[11], &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Turn != 12 || len(snap.Players) != 4 {
		t.Errorf("unexpected snapshot turn=%d players=%d", snap.Turn, len(snap.Players))
	}
	if len(snap.Players[0].Settlements) == 0 {
		t.Errorf("expected red to hold a settlement in the snapshot")
	}
}

func TestRunMatchCacheWithoutRepo(t *testing.T) {
	cfg := smallMatch(t, "", 3, 11)
	cfg.DryRun = false
	cache := &fakeCache{}

	result, err := RunMatch(context.Background(), cfg, nil, cache)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if result.MatchID == "" || !cache.ids[result.MatchID] {
		t.Errorf("expected generated match id to key snapshots, got %q", result.MatchID)
	}
}

func TestRunMatchDryRunSkipsRepo(t *testing.T) {
	cfg := smallMatch(t, "", 5, 1)
	repo := &fakeRepo{}

	if _, err := RunMatch(context.Background(), cfg, repo, &fakeCache{}); err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if repo.created != nil || len(repo.turns) != 0 || repo.finished {
		t.Errorf("expected dry run to leave repo untouched")
	}
}

func TestRunMatchCreateError(t *testing.T) {
	cfg := smallMatch(t, "", 5, 1)
	cfg.DryRun = false
	repo := &fakeRepo{createErr: errors.New("db down")}

	if _, err := RunMatch(context.Background(), cfg, repo, nil); err == nil {
		t.Fatal("expected create error")
	}
}

func TestRunMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunMatch(ctx, smallMatch(t, "", 50, 5), nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunMatchNoPlayers(t *testing.T) {
	_, err := RunMatch(context.Background(), MatchConfig{DryRun: true}, nil, nil)
	if !errors.Is(err, ErrNoPlayers) {
		t.Errorf("expected ErrNoPlayers, got %v", err)
	}
}

func TestRunMatchBadEngageRule(t *testing.T) {
	cfg := smallMatch(t, "", 5, 1)
	cfg.Players[0].Engage = "Attacker.Power >"

	if _, err := RunMatch(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected compile error for engage rule")
	}
}

func TestRunMatchEngageRule(t *testing.T) {
	cfg := smallMatch(t, "*=aggressive", 15, 9)
	cfg.Players[0].Engage = "Attacker.Health >= Defender.Health && Distance <= 1"

	if _, err := RunMatch(context.Background(), cfg, nil, nil); err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
}

func TestRunMatchHumanNotMoved(t *testing.T) {
	cfg := smallMatch(t, "*=aggressive", 20, 13)
	cfg.Players[3].Human = true

	result, err := RunMatch(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	human := result.Standings[3]
	if human.Settlements != 1 || human.Units != 1 {
		t.Errorf("expected the human to keep its starting settlement and garrison, got %+v", human)
	}
	if human.Blessings != 0 {
		t.Errorf("expected no blessings for the idle human, got %d", human.Blessings)
	}
}

func TestWinner(t *testing.T) {
	town := &realm.Settlement{}
	tests := []struct {
		name    string
		players []*realm.Player
		want    string
	}{
		{"none", nil, ""},
		{"most settlements", []*realm.Player{
			{Name: "a", Wealth: 100, Settlements: []*realm.Settlement{town}},
			{Name: "b", Wealth: 1, Settlements: []*realm.Settlement{town, town}},
		}, "b"},
		{"wealth breaks tie", []*realm.Player{
			{Name: "a", Wealth: 10, Settlements: []*realm.Settlement{town}},
			{Name: "b", Wealth: 20, Settlements: []*realm.Settlement{town}},
		}, "b"},
		{"full tie is a draw", []*realm.Player{
			{Name: "a", Wealth: 10, Settlements: []*realm.Settlement{town}},
			{Name: "b", Wealth: 10, Settlements: []*realm.Settlement{town}},
		}, ""},
		{"tie broken later", []*realm.Player{
			{Name: "a", Wealth: 10, Settlements: []*realm.Settlement{town}},
			{Name: "b", Wealth: 10, Settlements: []*realm.Settlement{town}},
			{Name: "c", Wealth: 5, Settlements: []*realm.Settlement{town, town}},
		}, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := winner(tt.players); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParsePlaystyleConfig(t *testing.T) {
	got, err := ParsePlaystyleConfig("red=aggressive,gold=defensive,*=neutral", DefaultRoster)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []realm.Playstyle{realm.Aggressive, realm.Neutral, realm.Neutral, realm.Defensive}
	for i, ps := range want {
		if got[i].Playstyle != ps {
			t.Errorf("%s: expected %s, got %s", got[i].Name, ps, got[i].Playstyle)
		}
	}
	if DefaultRoster[0].Playstyle != "" {
		t.Errorf("expected DefaultRoster to be left untouched")
	}

	all, err := ParseMatchup("defensive", DefaultRoster)
	if err != nil {
		t.Fatalf("matchup: %v", err)
	}
	for _, p := range all {
		if p.Playstyle != realm.Defensive {
			t.Errorf("%s: expected defensive, got %s", p.Name, p.Playstyle)
		}
	}

	empty, err := ParsePlaystyleConfig("", DefaultRoster)
	if err != nil || empty[2].Playstyle != realm.Neutral {
		t.Errorf("expected neutral default, got %v %v", empty, err)
	}
}

func TestParsePlaystyleConfigErrors(t *testing.T) {
	if _, err := ParsePlaystyleConfig("red=reckless", DefaultRoster); !errors.Is(err, ErrUnknownPlaystyle) {
		t.Errorf("expected ErrUnknownPlaystyle, got %v", err)
	}
	if _, err := ParsePlaystyleConfig("purple=aggressive", DefaultRoster); err == nil {
		t.Error("expected error for unknown player")
	}
}

func TestFromMatchFile(t *testing.T) {
	mf := &config.MatchFile{
		Name:     "file",
		Turns:    40,
		Seed:     5,
		Board:    config.BoardConfig{Width: 30, Height: 20},
		Heathens: 2,
		Players: []config.PlayerConfig{
			{Name: "a", Playstyle: "aggressive", Engage: "Distance <= 1"},
			{Name: "b", Human: true},
		},
	}

	cfg, err := FromMatchFile(mf)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if cfg.MaxTurns != 40 || cfg.Width != 30 || cfg.Height != 20 || cfg.Heathens != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Players[0].Playstyle != realm.Aggressive || cfg.Players[0].Engage != "Distance <= 1" {
		t.Errorf("unexpected first player %+v", cfg.Players[0])
	}
	if cfg.Players[1].Playstyle != realm.Neutral || !cfg.Players[1].Human {
		t.Errorf("unexpected second player %+v", cfg.Players[1])
	}
}
