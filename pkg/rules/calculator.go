// Package rules holds the reference game rules the move maker consumes:
// resource totals, combat, construction completion and end-of-round accrual.
package rules

import "github.com/freeeve/realmwright/pkg/realm"

// UnrestThreshold is the satisfaction below which a settlement's zeal and
// harvest yields are halved.
const UnrestThreshold = 20

// UpkeepDivisor converts a unit plan's cost into its per-turn wealth upkeep.
const UpkeepDivisor = 50

var biomeYields = map[realm.Biome]realm.Totals{
	realm.Desert:   {Wealth: 3, Harvest: 1, Zeal: 2, Fortune: 2},
	realm.Forest:   {Wealth: 2, Harvest: 4, Zeal: 2, Fortune: 2},
	realm.Sea:      {Wealth: 3, Harvest: 3, Zeal: 1, Fortune: 2},
	realm.Mountain: {Wealth: 2, Harvest: 1, Zeal: 4, Fortune: 2},
}

// BiomeYield returns the base per-turn yield of a quad of biome b.
func BiomeYield(b realm.Biome) realm.Totals {
	return biomeYields[b]
}

// Calculator computes per-turn totals. It is stateless.
type Calculator struct{}

// SettlementTotals returns what s yields per turn: its quads' base yields
// plus the effects of its improvements.
func (Calculator) SettlementTotals(s *realm.Settlement) realm.Totals {
	var t realm.Totals
	for _, q := range s.Quads {
		t = t.Add(BiomeYield(q.Biome))
	}
	for _, imp := range s.Improvements {
		t = t.Add(imp.Effect.Totals())
	}
	if s.Satisfaction < UnrestThreshold {
		t.Zeal /= 2
		t.Harvest /= 2
	}
	return t
}

// PlayerTotals sums every settlement's totals and subtracts the wealth upkeep
// of the player's active units.
func (c Calculator) PlayerTotals(p *realm.Player) realm.Totals {
	var t realm.Totals
	for _, s := range p.Settlements {
		t = t.Add(c.SettlementTotals(s))
	}
	for _, u := range p.Units {
		t.Wealth -= Upkeep(u.Plan)
	}
	return t
}

// Upkeep returns the per-turn wealth cost of keeping a unit of plan active.
func Upkeep(plan *realm.UnitPlan) float64 {
	return plan.Cost / UpkeepDivisor
}
