// Package catalogue is the standard content table: blessings, improvements,
// unit plans and the settlement name pools, with the filtered, cost-sorted
// views the move maker asks for.
package catalogue

import (
	"errors"
	"math/rand"
	"slices"
	"sort"

	"github.com/freeeve/realmwright/pkg/realm"
)

// ErrNamesExhausted is returned by SettlementName once a biome's pool is empty.
var ErrNamesExhausted = errors.New("settlement name pool exhausted")

// Catalogue holds one game's content. Name pools are consumed as settlements
// are founded, so each game needs its own Catalogue.
type Catalogue struct {
	blessings    []*realm.Blessing
	improvements []*realm.Improvement
	unitPlans    []*realm.UnitPlan
	names        map[realm.Biome][]string
	rng          *rand.Rand
}

// Standard returns a catalogue with the standard content. Names are drawn
// using a source seeded with seed.
func Standard(seed int64) *Catalogue {
	return New(standardBlessings(), standardImprovements(), standardUnitPlans(), standardNames(), seed)
}

// New builds a catalogue from explicit tables. The name pools are copied.
func New(blessings []*realm.Blessing, improvements []*realm.Improvement, plans []*realm.UnitPlan, names map[realm.Biome][]string, seed int64) *Catalogue {
	pools := make(map[realm.Biome][]string, len(names))
	for b, pool := range names {
		pools[b] = slices.Clone(pool)
	}
	return &Catalogue{
		blessings:    blessings,
		improvements: improvements,
		unitPlans:    plans,
		names:        pools,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// AvailableImprovements returns the improvements s can still build: not yet
// built there, with the prerequisite met. Cheapest first.
func (c *Catalogue) AvailableImprovements(p *realm.Player, s *realm.Settlement) []*realm.Improvement {
	var imps []*realm.Improvement
	for _, imp := range c.improvements {
		if imp.Prereq != nil && !p.HasBlessing(imp.Prereq) {
			continue
		}
		if s.HasImprovement(imp) {
			continue
		}
		imps = append(imps, imp)
	}
	sort.SliceStable(imps, func(i, j int) bool { return imps[i].Cost < imps[j].Cost })
	return imps
}

// AvailableUnitPlans returns the plans a settlement of the given level can
// train. Settle-capable plans need level 2 or higher. Cheapest first.
func (c *Catalogue) AvailableUnitPlans(p *realm.Player, level int) []*realm.UnitPlan {
	var plans []*realm.UnitPlan
	for _, up := range c.unitPlans {
		if up.Prereq != nil && !p.HasBlessing(up.Prereq) {
			continue
		}
		if up.CanSettle && level <= 1 {
			continue
		}
		plans = append(plans, up)
	}
	sort.SliceStable(plans, func(i, j int) bool { return plans[i].Cost < plans[j].Cost })
	return plans
}

// AvailableBlessings returns the blessings p has not completed, cheapest first.
func (c *Catalogue) AvailableBlessings(p *realm.Player) []*realm.Blessing {
	var bls []*realm.Blessing
	for _, b := range c.blessings {
		if !p.HasBlessing(b) {
			bls = append(bls, b)
		}
	}
	sort.SliceStable(bls, func(i, j int) bool { return bls[i].Cost < bls[j].Cost })
	return bls
}

// UnlockableImprovements returns the improvements that require b.
func (c *Catalogue) UnlockableImprovements(b *realm.Blessing) []*realm.Improvement {
	var imps []*realm.Improvement
	for _, imp := range c.improvements {
		if imp.Prereq == b {
			imps = append(imps, imp)
		}
	}
	return imps
}

// UnlockableUnits returns the unit plans that require b.
func (c *Catalogue) UnlockableUnits(b *realm.Blessing) []*realm.UnitPlan {
	var plans []*realm.UnitPlan
	for _, up := range c.unitPlans {
		if up.Prereq == b {
			plans = append(plans, up)
		}
	}
	return plans
}

// SettlementName draws a random unused name for a settlement in biome and
// removes it from the pool.
func (c *Catalogue) SettlementName(biome realm.Biome) (string, error) {
	pool := c.names[biome]
	if len(pool) == 0 {
		return "", ErrNamesExhausted
	}
	i := c.rng.Intn(len(pool))
	name := pool[i]
	c.names[biome] = slices.Delete(pool, i, i+1)
	return name, nil
}

// NamesLeft returns how many names remain in biome's pool.
func (c *Catalogue) NamesLeft(biome realm.Biome) int {
	return len(c.names[biome])
}

// DefaultUnit returns a garrisoned warrior at loc, the unit every settlement
// starts the game with.
func DefaultUnit(loc realm.Location) *realm.Unit {
	return realm.NewUnit(Warrior, loc, true)
}

// NewHeathen returns a wandering ownerless unit at loc.
func NewHeathen(loc realm.Location) *realm.Unit {
	return realm.NewUnit(Heathen, loc, false)
}
