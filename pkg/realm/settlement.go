package realm

import "slices"

// Starting stats for a newly founded settlement.
const (
	FoundingStrength     = 100
	FoundingSatisfaction = 50
)

// Settlement is a player-owned city.
type Settlement struct {
	Name            string
	Level           int
	Strength        float64
	Satisfaction    float64
	HarvestReserves float64
	Location        Location
	Quads           []Quad
	Improvements    []*Improvement
	Garrison        []*Unit
	ProducedSettler bool
	CurrentWork     *Construction
}

// NewSettlement returns a level-1 settlement at quad's location owning only
// that quad.
func NewSettlement(name string, quad Quad) *Settlement {
	return &Settlement{
		Name:         name,
		Level:        1,
		Strength:     FoundingStrength,
		Satisfaction: FoundingSatisfaction,
		Location:     quad.Location,
		Quads:        []Quad{quad},
	}
}

// HasImprovement reports whether imp has already been built here.
func (s *Settlement) HasImprovement(imp *Improvement) bool {
	for _, have := range s.Improvements {
		if have == imp || have.Name == imp.Name {
			return true
		}
	}
	return false
}

// Station places u in the garrison.
func (s *Settlement) Station(u *Unit) {
	u.Garrisoned = true
	u.Location = s.Location
	s.Garrison = append(s.Garrison, u)
}

func (s *Settlement) release(u *Unit) bool {
	i := slices.Index(s.Garrison, u)
	if i < 0 {
		return false
	}
	s.Garrison = slices.Delete(s.Garrison, i, i+1)
	return true
}
