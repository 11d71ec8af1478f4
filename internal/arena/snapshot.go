package arena

import "github.com/freeeve/realmwright/pkg/realm"

// Snapshot is the JSON view of a world written to the world cache after each
// turn.
type Snapshot struct {
	Turn     int              `json:"turn"`
	Players  []PlayerSnapshot `json:"players"`
	Heathens []UnitSnapshot   `json:"heathens,omitempty"`
}

// PlayerSnapshot is one player's visible state.
type PlayerSnapshot struct {
	Name        string               `json:"name"`
	Colour      string               `json:"colour,omitempty"`
	Playstyle   string               `json:"playstyle"`
	Wealth      float64              `json:"wealth"`
	Ongoing     string               `json:"ongoing,omitempty"`
	Blessings   []string             `json:"blessings,omitempty"`
	Settlements []SettlementSnapshot `json:"settlements"`
	Units       []UnitSnapshot       `json:"units,omitempty"`
}

// SettlementSnapshot is one settlement's visible state.
type SettlementSnapshot struct {
	Name     string `json:"name"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Level    int    `json:"level"`
	Garrison int    `json:"garrison"`
	Building string `json:"building,omitempty"`
}

// UnitSnapshot is one unit's visible state.
type UnitSnapshot struct {
	Plan   string  `json:"plan"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Health float64 `json:"health"`
}

func snapshotOf(w *realm.World) Snapshot {
	snap := Snapshot{Turn: w.Turn, Players: make([]PlayerSnapshot, len(w.Players))}
	for i, p := range w.Players {
		ps := PlayerSnapshot{
			Name:        p.Name,
			Colour:      p.Colour,
			Playstyle:   string(p.Playstyle),
			Wealth:      p.Wealth,
			Blessings:   blessingNames(p),
			Settlements: make([]SettlementSnapshot, len(p.Settlements)),
		}
		if p.OngoingBlessing != nil {
			ps.Ongoing = p.OngoingBlessing.Blessing.Name
		}
		for j, s := range p.Settlements {
			ss := SettlementSnapshot{
				Name:     s.Name,
				X:        s.Location.X,
				Y:        s.Location.Y,
				Level:    s.Level,
				Garrison: len(s.Garrison),
			}
			if s.CurrentWork != nil {
				ss.Building = s.CurrentWork.Name()
			}
			ps.Settlements[j] = ss
		}
		for _, u := range p.Units {
			ps.Units = append(ps.Units, unitSnapshot(u))
		}
		snap.Players[i] = ps
	}
	for _, h := range w.Heathens {
		snap.Heathens = append(snap.Heathens, unitSnapshot(h))
	}
	return snap
}

func unitSnapshot(u *realm.Unit) UnitSnapshot {
	return UnitSnapshot{Plan: u.Plan.Name, X: u.Location.X, Y: u.Location.Y, Health: u.Health}
}
