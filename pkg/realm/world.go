package realm

import "slices"

// World is the full multi-player state. A MakeMove call needs exclusive access
// to all of it for its duration.
type World struct {
	Turn     int
	Players  []*Player
	Heathens []*Unit
}

// Human returns the human-controlled player, or nil in all-AI games.
func (w *World) Human() *Player {
	for _, p := range w.Players {
		if p.Human {
			return p
		}
	}
	return nil
}

// OwnerOf returns the player whose roster holds u, or nil for heathens and
// garrisoned units.
func (w *World) OwnerOf(u *Unit) *Player {
	for _, p := range w.Players {
		if p.HasUnit(u) {
			return p
		}
	}
	return nil
}

// RemoveHeathen drops u from the heathen list. Like Player.RemoveUnit it is a
// no-op for units that are not there.
func (w *World) RemoveHeathen(u *Unit) bool {
	i := slices.Index(w.Heathens, u)
	if i < 0 {
		return false
	}
	w.Heathens = slices.Delete(w.Heathens, i, i+1)
	return true
}

// SettlementNamed reports whether any player owns a settlement called name.
func (w *World) SettlementNamed(name string) bool {
	for _, p := range w.Players {
		if p.Settlement(name) != nil {
			return true
		}
	}
	return false
}

// UnitCount returns the number of active units across every roster plus the
// heathens.
func (w *World) UnitCount() int {
	n := len(w.Heathens)
	for _, p := range w.Players {
		n += len(p.Units)
	}
	return n
}
