package rules

import "github.com/freeeve/realmwright/pkg/realm"

// MaxSatisfaction caps a settlement's satisfaction.
const MaxSatisfaction = 100

// Completer finishes a settlement's current work.
type Completer struct{}

// CompleteConstruction realises s's current work and clears it. A finished
// improvement is added and its strength and satisfaction effects applied; a
// finished unit is stationed in the garrison. It does nothing when s has no
// current work.
func (Completer) CompleteConstruction(p *realm.Player, s *realm.Settlement) {
	work := s.CurrentWork
	if work == nil {
		return
	}
	switch {
	case work.Improvement != nil:
		imp := work.Improvement
		s.Improvements = append(s.Improvements, imp)
		s.Strength = max(0, s.Strength+imp.Effect.Strength)
		s.Satisfaction = min(MaxSatisfaction, max(0, s.Satisfaction+imp.Effect.Satisfaction))
	case work.UnitPlan != nil:
		s.Station(realm.NewUnit(work.UnitPlan, s.Location, true))
		if work.UnitPlan.CanSettle {
			s.ProducedSettler = true
		}
	}
	s.CurrentWork = nil
}
