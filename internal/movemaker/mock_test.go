package movemaker

import (
	"github.com/freeeve/realmwright/pkg/catalogue"
	"github.com/freeeve/realmwright/pkg/realm"
)

// stubCatalogue serves fixed, already cost-sorted tables.
type stubCatalogue struct {
	blessings    []*realm.Blessing
	improvements []*realm.Improvement
	plans        []*realm.UnitPlan
	unlockImps   map[*realm.Blessing][]*realm.Improvement
	unlockUnits  map[*realm.Blessing][]*realm.UnitPlan
	names        []string
	byBiome      map[realm.Biome][]string
}

func (c *stubCatalogue) AvailableImprovements(_ *realm.Player, s *realm.Settlement) []*realm.Improvement {
	var out []*realm.Improvement
	for _, imp := range c.improvements {
		if !s.HasImprovement(imp) {
			out = append(out, imp)
		}
	}
	return out
}

func (c *stubCatalogue) AvailableUnitPlans(_ *realm.Player, level int) []*realm.UnitPlan {
	var out []*realm.UnitPlan
	for _, up := range c.plans {
		if up.CanSettle && level <= 1 {
			continue
		}
		out = append(out, up)
	}
	return out
}

func (c *stubCatalogue) AvailableBlessings(p *realm.Player) []*realm.Blessing {
	var out []*realm.Blessing
	for _, b := range c.blessings {
		if !p.HasBlessing(b) {
			out = append(out, b)
		}
	}
	return out
}

func (c *stubCatalogue) UnlockableImprovements(b *realm.Blessing) []*realm.Improvement {
	return c.unlockImps[b]
}

func (c *stubCatalogue) UnlockableUnits(b *realm.Blessing) []*realm.UnitPlan {
	return c.unlockUnits[b]
}

func (c *stubCatalogue) SettlementName(b realm.Biome) (string, error) {
	if pool := c.byBiome[b]; len(pool) > 0 {
		c.byBiome[b] = pool[1:]
		return pool[0], nil
	}
	if len(c.names) == 0 {
		return "", catalogue.ErrNamesExhausted
	}
	name := c.names[0]
	c.names = c.names[1:]
	return name, nil
}

// stubCalculator returns fixed totals.
type stubCalculator struct {
	player     realm.Totals
	settlement realm.Totals
}

func (c *stubCalculator) SettlementTotals(*realm.Settlement) realm.Totals { return c.settlement }
func (c *stubCalculator) PlayerTotals(*realm.Player) realm.Totals { return c.player }

// stubCombat deals fixed damage and records every fight.
type stubCombat struct {
	toAttacker float64
	toDefender float64
	fights     [][2]*realm.Unit
}

func (c *stubCombat) Attack(attacker, defender *realm.Unit, playerAttack bool) realm.AttackResult {
	c.fights = append(c.fights, [2]*realm.Unit{attacker, defender})
	attacker.Health -= c.toAttacker
	defender.Health -= c.toDefender
	return realm.AttackResult{
		Attacker:          attacker,
		Defender:          defender,
		DamageToAttacker:  c.toAttacker,
		DamageToDefender:  c.toDefender,
		AttackerWasKilled: attacker.Dead(),
		DefenderWasKilled: defender.Dead(),
		PlayerAttack:      playerAttack,
	}
}

// stubCompleter clears the work and records which settlements finished.
type stubCompleter struct {
	completed []string
}

func (c *stubCompleter) CompleteConstruction(_ *realm.Player, s *realm.Settlement) {
	c.completed = append(c.completed, s.Name+": "+s.CurrentWork.Name())
	s.CurrentWork = nil
}

// flatMap is a single-biome map where every location is its own quad.
type flatMap realm.Biome

func (f flatMap) QuadAt(loc realm.Location) realm.Quad {
	return realm.Quad{Biome: realm.Biome(f), Location: loc}
}

func (flatMap) Wrap(loc realm.Location) realm.Location { return loc }
func (flatMap) Distance(a, b realm.Location) int { return realm.Distance(a, b) }

// torusMap wraps at its edges. Columns left of the middle are forest and the
// rest desert.
type torusMap struct {
	width, height int
}

func (m torusMap) Wrap(loc realm.Location) realm.Location {
	return realm.Location{X: wrapInt(loc.X, m.width), Y: wrapInt(loc.Y, m.height)}
}

func (m torusMap) QuadAt(loc realm.Location) realm.Quad {
	w := m.Wrap(loc)
	if w.X < m.width/2 {
		return realm.Quad{Biome: realm.Forest, Location: w}
	}
	return realm.Quad{Biome: realm.Desert, Location: w}
}

func (m torusMap) Distance(a, b realm.Location) int {
	dx := wrapInt(a.X-b.X, m.width)
	dy := wrapInt(a.Y-b.Y, m.height)
	return max(min(dx, m.width-dx), min(dy, m.height-dy))
}

func wrapInt(a, n int) int {
	return ((a % n) + n) % n
}

// recordingPresenter keeps every attack it is shown.
type recordingPresenter struct {
	shown []realm.AttackResult
}

func (p *recordingPresenter) ShowAttack(res realm.AttackResult) {
	p.shown = append(p.shown, res)
}

// scriptedRand replays fixed draws, then returns 0.
type scriptedRand struct {
	draws []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.draws) == 0 {
		return 0
	}
	d := r.draws[0]
	r.draws = r.draws[1:]
	if d >= n {
		panic("scripted draw out of range")
	}
	return d
}
