package arena

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/freeeve/realmwright/internal/config"
	"github.com/freeeve/realmwright/internal/model"
	"github.com/freeeve/realmwright/pkg/realm"
)

var (
	// ErrNoPlayers is returned by RunMatch for an empty roster.
	ErrNoPlayers = errors.New("match has no players")
	// ErrUnknownPlaystyle is returned for a playstyle name that does not parse.
	ErrUnknownPlaystyle = errors.New("unknown playstyle")
)

// DefaultRoster is the four-seat roster used when no match file is given.
var DefaultRoster = []PlayerSpec{
	{Name: "red", Colour: "#c0392b"},
	{Name: "blue", Colour: "#2e86c1"},
	{Name: "green", Colour: "#27ae60"},
	{Name: "gold", Colour: "#d4ac0d"},
}

// ParsePlaystyleConfig parses a playstyle configuration string like
// "red=aggressive,*=neutral" against a roster, returning a copy of the roster
// with playstyles filled in. Seats not named take the "*" default, or neutral.
func ParsePlaystyleConfig(s string, roster []PlayerSpec) ([]PlayerSpec, error) {
	named := make(map[string]realm.Playstyle)
	fallback := realm.Neutral

	if s != "" {
		for _, part := range splitConfig(s) {
			idx := indexOf(part, '=')
			if idx < 0 {
				continue
			}
			key, val := part[:idx], part[idx+1:]
			ps, ok := realm.ParsePlaystyle(val)
			if !ok {
				return nil, fmt.Errorf("%w %q for %s", ErrUnknownPlaystyle, val, key)
			}
			if key == "*" {
				fallback = ps
			} else {
				named[key] = ps
			}
		}
	}

	out := make([]PlayerSpec, len(roster))
	for i, spec := range roster {
		spec.Playstyle = fallback
		if ps, ok := named[spec.Name]; ok {
			spec.Playstyle = ps
			delete(named, spec.Name)
		}
		out[i] = spec
	}
	if len(named) > 0 {
		unknown := slices.Sorted(maps.Keys(named))
		return nil, fmt.Errorf("playstyle set for unknown player %q", unknown[0])
	}
	return out, nil
}

// ParseMatchup gives every seat of roster the same playstyle.
func ParseMatchup(s string, roster []PlayerSpec) ([]PlayerSpec, error) {
	return ParsePlaystyleConfig("*="+s, roster)
}

// FromMatchFile converts a validated match file into a MatchConfig.
func FromMatchFile(mf *config.MatchFile) (MatchConfig, error) {
	cfg := MatchConfig{
		Name:     mf.Name,
		MaxTurns: mf.Turns,
		Seed:     mf.Seed,
		Width:    mf.Board.Width,
		Height:   mf.Board.Height,
		Heathens: mf.Heathens,
	}
	for _, p := range mf.Players {
		ps, ok := realm.ParsePlaystyle(p.Playstyle)
		if !ok {
			return MatchConfig{}, fmt.Errorf("%w %q for %s", ErrUnknownPlaystyle, p.Playstyle, p.Name)
		}
		cfg.Players = append(cfg.Players, PlayerSpec{
			Name:      p.Name,
			Colour:    p.Colour,
			Playstyle: ps,
			Human:     p.Human,
			Engage:    p.Engage,
		})
	}
	return cfg, nil
}

func splitConfig(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// seats converts the roster into match_players rows.
func seats(cfg MatchConfig) []model.MatchPlayer {
	out := make([]model.MatchPlayer, len(cfg.Players))
	for i, spec := range cfg.Players {
		out[i] = model.MatchPlayer{
			Seat:      i,
			Name:      spec.Name,
			Colour:    spec.Colour,
			Playstyle: string(spec.Playstyle),
			Human:     spec.Human,
		}
	}
	return out
}

func finalSeats(players []*realm.Player) []model.MatchPlayer {
	out := make([]model.MatchPlayer, len(players))
	for i, p := range players {
		out[i] = model.MatchPlayer{
			Seat:        i,
			Name:        p.Name,
			Colour:      p.Colour,
			Playstyle:   string(p.Playstyle),
			Human:       p.Human,
			Settlements: len(p.Settlements),
			Units:       unitCount(p),
			Wealth:      p.Wealth,
			Blessings:   blessingNames(p),
		}
	}
	return out
}

func turnRecords(matchID string, w *realm.World) []model.TurnRecord {
	out := make([]model.TurnRecord, len(w.Players))
	for i, p := range w.Players {
		rec := model.TurnRecord{
			MatchID:     matchID,
			Turn:        w.Turn,
			Player:      p.Name,
			Wealth:      p.Wealth,
			Settlements: len(p.Settlements),
			Units:       unitCount(p),
			Blessings:   blessingNames(p),
		}
		if p.OngoingBlessing != nil {
			rec.Ongoing = p.OngoingBlessing.Blessing.Name
		}
		out[i] = rec
	}
	return out
}

func standings(players []*realm.Player) []Standing {
	out := make([]Standing, len(players))
	for i, p := range players {
		out[i] = Standing{
			Name:        p.Name,
			Playstyle:   string(p.Playstyle),
			Settlements: len(p.Settlements),
			Units:       unitCount(p),
			Wealth:      p.Wealth,
			Blessings:   len(p.Blessings),
		}
	}
	return out
}

// unitCount counts the roster plus every garrison.
func unitCount(p *realm.Player) int {
	n := len(p.Units)
	for _, s := range p.Settlements {
		n += len(s.Garrison)
	}
	return n
}

func blessingNames(p *realm.Player) []string {
	if len(p.Blessings) == 0 {
		return nil
	}
	names := make([]string, len(p.Blessings))
	for i, b := range p.Blessings {
		names[i] = b.Name
	}
	return names
}
