// Package arena plays complete AI-vs-AI matches: it generates a board, seats
// the players, runs the move maker for every AI each turn and records the
// outcome.
package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freeeve/realmwright/internal/logger"
	"github.com/freeeve/realmwright/internal/movemaker"
	"github.com/freeeve/realmwright/internal/overlay"
	"github.com/freeeve/realmwright/internal/repository"
	"github.com/freeeve/realmwright/pkg/board"
	"github.com/freeeve/realmwright/pkg/catalogue"
	"github.com/freeeve/realmwright/pkg/realm"
	"github.com/freeeve/realmwright/pkg/rules"
)

// DefaultMaxTurns caps a match when MatchConfig leaves MaxTurns at zero.
const DefaultMaxTurns = 200

// PlayerSpec seats one player.
type PlayerSpec struct {
	Name      string
	Colour    string
	Playstyle realm.Playstyle
	Human     bool   // humans are seated but never moved by the arena
	Engage    string // optional engagement expression, see movemaker.ScriptedStrategy
}

// MatchConfig configures a single match.
type MatchConfig struct {
	Name     string
	Players  []PlayerSpec
	MaxTurns int   // 0 = DefaultMaxTurns
	Seed     int64 // 0 = random
	Width    int   // 0 = board default
	Height   int   // 0 = board default
	Heathens int
	DryRun   bool // skip repo and cache writes
}

// Standing is a player's position when the match ends.
type Standing struct {
	Name        string  `json:"name"`
	Playstyle   string  `json:"playstyle"`
	Settlements int     `json:"settlements"`
	Units       int     `json:"units"`
	Wealth      float64 `json:"wealth"`
	Blessings   int     `json:"blessings"`
}

// MatchResult describes the outcome of a completed match.
type MatchResult struct {
	MatchID      string     `json:"match_id,omitempty"`
	Seed         int64      `json:"seed"`
	Winner       string     `json:"winner"` // "" for a draw
	Turns        int        `json:"turns"`
	Standings    []Standing `json:"standings"`
	HumanAttacks int        `json:"human_attacks"` // attacks shown to the human player
}

// match is the mutable state of one running match.
type match struct {
	cfg     MatchConfig
	id      string
	world   *realm.World
	mover   *movemaker.MoveMaker
	calc    rules.Calculator
	done    rules.Completer
	overlay *overlay.Slot
	repo    repository.MatchRepository
	cache   repository.WorldCache
	log     zerolog.Logger
}

// RunMatch plays a full match. Pass nil repo and cache, or set DryRun, to
// play without persistence.
func RunMatch(
	ctx context.Context,
	cfg MatchConfig,
	repo repository.MatchRepository,
	cache repository.WorldCache,
) (*MatchResult, error) {
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Name == "" {
		cfg.Name = "realmmatch"
	}
	if cfg.DryRun {
		repo, cache = nil, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	bcfg := board.DefaultConfig(cfg.Seed)
	if cfg.Width > 0 {
		bcfg.Width = cfg.Width
	}
	if cfg.Height > 0 {
		bcfg.Height = cfg.Height
	}
	b := board.Generate(bcfg)
	cat := catalogue.Standard(cfg.Seed)

	m := &match{
		cfg:     cfg,
		world:   seatPlayers(cfg, b, cat, rng),
		overlay: &overlay.Slot{},
		repo:    repo,
		cache:   cache,
	}
	m.mover = movemaker.New(movemaker.Deps{
		Catalogue:  cat,
		Calculator: m.calc,
		Combat:     rules.NewResolver(rng),
		Completer:  m.done,
		Map:        b,
		Presenter:  m.overlay,
		Rand:       rng,
	})
	for _, spec := range cfg.Players {
		if spec.Engage == "" {
			continue
		}
		strat, err := movemaker.NewScriptedStrategy(movemaker.StrategyForPlaystyle(spec.Playstyle), spec.Engage)
		if err != nil {
			return nil, fmt.Errorf("engage rule for %s: %w", spec.Name, err)
		}
		m.mover.SetStrategy(spec.Name, strat)
	}

	if repo != nil {
		created, err := repo.Create(ctx, cfg.Name, cfg.Seed, cfg.MaxTurns, seats(cfg))
		if err != nil {
			return nil, fmt.Errorf("create match: %w", err)
		}
		m.id = created.ID
	} else if cache != nil {
		m.id = uuid.NewString()
	}
	m.log = logger.ForMatch(m.id, cfg.Name)
	m.log.Info().Int64("seed", cfg.Seed).Int("players", len(cfg.Players)).
		Int("width", bcfg.Width).Int("height", bcfg.Height).Msg("Match started")

	for m.world.Turn < cfg.MaxTurns {
		if err := m.playTurn(ctx); err != nil {
			return nil, err
		}
		if m.decided() {
			break
		}
	}
	return m.finish(ctx)
}

// playTurn moves every AI player in seat order, then advances the world.
func (m *match) playTurn(ctx context.Context) error {
	for _, p := range m.world.Players {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if p.Human || eliminated(p) {
			continue
		}
		if err := m.mover.MakeMove(p, m.world); err != nil {
			return fmt.Errorf("turn %d move for %s: %w", m.world.Turn, p.Name, err)
		}
	}

	if res, ok := m.overlay.Pending(); ok {
		m.log.Debug().Int("turn", m.world.Turn).
			Float64("damageToDefender", res.DamageToDefender).
			Bool("defenderKilled", res.DefenderWasKilled).
			Msg("Human unit attacked")
		m.overlay.Dismiss()
	}

	report := rules.AdvanceTurn(m.world, m.calc, m.done)
	for name, done := range report.Blessings {
		for _, b := range done {
			m.log.Debug().Str("player", name).Str("blessing", b.Name).Int("turn", m.world.Turn).Msg("Blessing completed")
		}
	}
	for name, levels := range report.LevelUps {
		m.log.Debug().Str("player", name).Strs("settlements", levels).Int("turn", m.world.Turn).Msg("Settlements grew")
	}

	if m.repo != nil {
		if err := m.repo.RecordTurns(ctx, turnRecords(m.id, m.world)); err != nil {
			return fmt.Errorf("record turn %d: %w", m.world.Turn, err)
		}
	}
	if m.cache != nil {
		data, err := json.Marshal(snapshotOf(m.world))
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := m.cache.SetSnapshot(ctx, m.id, data); err != nil {
			return fmt.Errorf("set snapshot: %w", err)
		}
	}
	return nil
}

// decided reports whether at most one player still holds settlements. A
// single-player match only ends on the turn limit.
func (m *match) decided() bool {
	if len(m.world.Players) < 2 {
		return false
	}
	alive := 0
	for _, p := range m.world.Players {
		if len(p.Settlements) > 0 {
			alive++
		}
	}
	return alive <= 1
}

func (m *match) finish(ctx context.Context) (*MatchResult, error) {
	result := &MatchResult{
		MatchID:      m.id,
		Seed:         m.cfg.Seed,
		Winner:       winner(m.world.Players),
		Turns:        m.world.Turn,
		Standings:    standings(m.world.Players),
		HumanAttacks: m.overlay.Shown(),
	}
	if m.repo != nil {
		if err := m.repo.SetFinished(ctx, m.id, result.Turns, result.Winner, finalSeats(m.world.Players)); err != nil {
			return nil, fmt.Errorf("set finished: %w", err)
		}
	}
	if result.Winner == "" {
		m.log.Info().Int("turns", result.Turns).Msg("Match ended as draw")
	} else {
		m.log.Info().Str("winner", result.Winner).Int("turns", result.Turns).Msg("Match won")
	}
	return result, nil
}

// seatPlayers gives each player a starting settlement with a garrisoned
// warrior on a random land quad, then scatters the heathens.
func seatPlayers(cfg MatchConfig, b *board.Board, cat *catalogue.Catalogue, rng *rand.Rand) *realm.World {
	w := &realm.World{}
	for _, spec := range cfg.Players {
		quad := b.RandomLand(rng)
		name, err := cat.SettlementName(quad.Biome)
		if err != nil {
			name = spec.Name + " Capital"
		}
		s := realm.NewSettlement(name, quad)
		s.Station(catalogue.DefaultUnit(quad.Location))
		w.Players = append(w.Players, &realm.Player{
			Name:        spec.Name,
			Colour:      spec.Colour,
			Human:       spec.Human,
			Playstyle:   spec.Playstyle,
			Settlements: []*realm.Settlement{s},
		})
	}
	for i := 0; i < cfg.Heathens; i++ {
		w.Heathens = append(w.Heathens, catalogue.NewHeathen(b.RandomLand(rng).Location))
	}
	return w
}

// eliminated reports whether p has nothing left to move.
func eliminated(p *realm.Player) bool {
	return len(p.Settlements) == 0 && len(p.Units) == 0
}

// winner returns the player with the most settlements, breaking ties on
// wealth. A tie on both is a draw.
func winner(players []*realm.Player) string {
	var best *realm.Player
	tied := false
	for _, p := range players {
		switch {
		case best == nil:
			best = p
		case len(p.Settlements) > len(best.Settlements),
			len(p.Settlements) == len(best.Settlements) && p.Wealth > best.Wealth:
			best, tied = p, false
		case len(p.Settlements) == len(best.Settlements) && p.Wealth == best.Wealth:
			tied = true
		}
	}
	if best == nil || tied {
		return ""
	}
	return best.Name
}
