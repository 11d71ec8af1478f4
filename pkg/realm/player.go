package realm

import "slices"

// Playstyle is the behavioural policy an AI player follows.
type Playstyle string

const (
	Aggressive Playstyle = "aggressive"
	Defensive  Playstyle = "defensive"
	Neutral    Playstyle = "neutral"
)

// AllPlaystyles returns the playstyles in standard order.
func AllPlaystyles() []Playstyle {
	return []Playstyle{Aggressive, Defensive, Neutral}
}

// ParsePlaystyle converts a config string into a Playstyle.
func ParsePlaystyle(s string) (Playstyle, bool) {
	switch Playstyle(s) {
	case Aggressive, Defensive, Neutral:
		return Playstyle(s), true
	case "":
		return Neutral, true
	}
	return "", false
}

// Player is one faction: its treasury, settlements, free-roaming units and
// research state.
type Player struct {
	Name            string
	Colour          string
	Human           bool
	Playstyle       Playstyle
	Wealth          float64
	Settlements     []*Settlement
	Units           []*Unit // active roster; garrisoned units live on their settlement
	Blessings       []*Blessing
	OngoingBlessing *OngoingBlessing
}

// HasBlessing reports whether the player has completed b.
func (p *Player) HasBlessing(b *Blessing) bool {
	if b == nil {
		return false
	}
	for _, have := range p.Blessings {
		if have == b || have.Name == b.Name {
			return true
		}
	}
	return false
}

// HasUnit reports whether u is in the player's active roster.
func (p *Player) HasUnit(u *Unit) bool {
	return slices.Contains(p.Units, u)
}

// RemoveUnit takes u out of the active roster. Removing a unit that is not
// there is a no-op, since a unit can die more than once in a single pass.
func (p *Player) RemoveUnit(u *Unit) bool {
	i := slices.Index(p.Units, u)
	if i < 0 {
		return false
	}
	p.Units = slices.Delete(p.Units, i, i+1)
	return true
}

// Deploy moves u out of s's garrison and into the active roster, placing it
// one tile south of the settlement. If u is not garrisoned in s, neither
// collection is touched and Deploy returns false.
func (p *Player) Deploy(s *Settlement, u *Unit) bool {
	if !s.release(u) {
		return false
	}
	u.Garrisoned = false
	u.Location = s.Location.Offset(0, 1)
	p.Units = append(p.Units, u)
	return true
}

// Settlement returns the player's settlement called name, or nil.
func (p *Player) Settlement(name string) *Settlement {
	for _, s := range p.Settlements {
		if s.Name == name {
			return s
		}
	}
	return nil
}
