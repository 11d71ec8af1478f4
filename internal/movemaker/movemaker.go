// Package movemaker is the decision engine for AI players. Once per turn it
// picks a blessing, sets and buys out settlement constructions, deploys
// garrisons, moves every active unit (settling or attacking as it goes) and
// liquidates a unit when the treasury is about to go negative.
package movemaker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/realmwright/pkg/catalogue"
	"github.com/freeeve/realmwright/pkg/realm"
)

// ErrEmptyCatalogue is returned when a settlement needs new work but the
// catalogue offers neither an improvement nor a unit plan.
var ErrEmptyCatalogue = errors.New("catalogue offers no improvements or unit plans")

// MinSettlementSpacing is the Chebyshev distance a settler must be from every
// settlement of its player before it founds a new one.
const MinSettlementSpacing = 10

// Catalogue is the read-only content the engine chooses from. Every list is
// cost-ascending.
type Catalogue interface {
	AvailableImprovements(p *realm.Player, s *realm.Settlement) []*realm.Improvement
	AvailableUnitPlans(p *realm.Player, level int) []*realm.UnitPlan
	AvailableBlessings(p *realm.Player) []*realm.Blessing
	UnlockableImprovements(b *realm.Blessing) []*realm.Improvement
	UnlockableUnits(b *realm.Blessing) []*realm.UnitPlan
	SettlementName(biome realm.Biome) (string, error)
}

// Calculator computes per-turn resource totals.
type Calculator interface {
	SettlementTotals(s *realm.Settlement) realm.Totals
	PlayerTotals(p *realm.Player) realm.Totals
}

// Combat resolves one attack, mutating both units' health.
type Combat interface {
	Attack(attacker, defender *realm.Unit, playerAttack bool) realm.AttackResult
}

// Completer finishes a settlement's current work.
type Completer interface {
	CompleteConstruction(p *realm.Player, s *realm.Settlement)
}

// WorldMap is the wrapping board units move on. Locations handed back to the
// engine are always wrapped, and Distance measures the short way round.
type WorldMap interface {
	QuadAt(loc realm.Location) realm.Quad
	Wrap(loc realm.Location) realm.Location
	Distance(a, b realm.Location) int
}

// Presenter receives attacks on the human player.
type Presenter interface {
	ShowAttack(res realm.AttackResult)
}

// Rand is the engine's randomness. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Deps bundles the collaborators a MoveMaker needs. Presenter is optional.
type Deps struct {
	Catalogue  Catalogue
	Calculator Calculator
	Combat     Combat
	Completer  Completer
	Map        WorldMap
	Presenter  Presenter
	Rand       Rand
}

// MoveMaker makes AI moves. It is not safe for concurrent use; the caller
// must hold the whole world exclusively for each MakeMove.
type MoveMaker struct {
	catalogue  Catalogue
	calc       Calculator
	combat     Combat
	completer  Completer
	worldMap   WorldMap
	presenter  Presenter
	rng        Rand
	strategies map[string]Strategy
}

// New returns a MoveMaker wired to d.
func New(d Deps) *MoveMaker {
	return &MoveMaker{
		catalogue:  d.Catalogue,
		calc:       d.Calculator,
		combat:     d.Combat,
		completer:  d.Completer,
		worldMap:   d.Map,
		presenter:  d.Presenter,
		rng:        d.Rand,
		strategies: make(map[string]Strategy),
	}
}

// SetStrategy overrides the playstyle strategy for the named player.
func (m *MoveMaker) SetStrategy(player string, s Strategy) {
	m.strategies[player] = s
}

// StrategyFor returns the override for p if one is set, otherwise the
// strategy for p's playstyle.
func (m *MoveMaker) StrategyFor(p *realm.Player) Strategy {
	if s, ok := m.strategies[p.Name]; ok {
		return s
	}
	return StrategyForPlaystyle(p.Playstyle)
}

// MakeMove plays one turn for p against w.
func (m *MoveMaker) MakeMove(p *realm.Player, w *realm.World) error {
	strat := m.StrategyFor(p)

	if p.OngoingBlessing == nil {
		m.setBlessing(p, m.calc.PlayerTotals(p), strat)
	}

	for _, s := range p.Settlements {
		if s.CurrentWork == nil {
			if err := m.setConstruction(p, s, strat); err != nil {
				return fmt.Errorf("set construction for %s: %w", s.Name, err)
			}
		} else {
			m.buyout(p, s)
		}
		m.manageGarrison(p, s, strat)
	}

	idx := newSpatialIndex(w)
	for _, u := range slices.Clone(p.Units) {
		// Units killed earlier in this pass are skipped.
		if !p.HasUnit(u) {
			continue
		}
		m.moveUnit(p, u, w, idx, strat)
	}

	m.checkSolvency(p)
	return nil
}

// setBlessing commits p to a new blessing. It does nothing when none are
// available.
func (m *MoveMaker) setBlessing(p *realm.Player, totals realm.Totals, strat Strategy) {
	avail := m.catalogue.AvailableBlessings(p)
	if len(avail) == 0 {
		return
	}
	ideal := m.idealBlessing(avail, totals.Lowest())
	chosen := strat.ChooseBlessing(BlessingChoice{
		Available: avail,
		Ideal:     ideal,
		Catalogue: m.catalogue,
	})
	if chosen == nil {
		chosen = ideal
	}
	p.OngoingBlessing = &realm.OngoingBlessing{Blessing: chosen}
	log.Debug().Str("player", p.Name).Str("blessing", chosen.Name).Str("lowest", totals.Lowest().String()).Msg("Blessing chosen")
}

// idealBlessing returns the blessing whose unlockable improvements add the
// most to the lowest resource. A blessing must score above zero to beat the
// cheapest one.
func (m *MoveMaker) idealBlessing(avail []*realm.Blessing, lowest realm.Resource) *realm.Blessing {
	ideal, best := avail[0], 0.0
	for _, b := range avail {
		sum := 0.0
		for _, imp := range m.catalogue.UnlockableImprovements(b) {
			sum += imp.Effect.Get(lowest)
		}
		if sum > best {
			ideal, best = b, sum
		}
	}
	return ideal
}

// setConstruction picks s's next work.
func (m *MoveMaker) setConstruction(p *realm.Player, s *realm.Settlement, strat Strategy) error {
	imps := m.catalogue.AvailableImprovements(p, s)
	plans := m.catalogue.AvailableUnitPlans(p, s.Level)
	if len(imps) == 0 && len(plans) == 0 {
		return ErrEmptyCatalogue
	}

	work := m.forcedConstruction(p, s, plans)
	if work == nil {
		ideal := idealConstruction(imps, plans, m.calc.SettlementTotals(s).Lowest())
		work = strat.ChooseConstruction(ConstructionChoice{
			Player:       p,
			Settlement:   s,
			Improvements: imps,
			UnitPlans:    plans,
			Ideal:        ideal,
		})
		if work == nil {
			work = ideal
		}
	}
	s.CurrentWork = work
	log.Debug().Str("player", p.Name).Str("settlement", s.Name).Str("work", work.Name()).Msg("Construction set")
	return nil
}

// forcedConstruction applies the rules that win over any playstyle: an empty
// empire trains its first unit, and a settlement of level 3 or more trains
// one settler.
func (m *MoveMaker) forcedConstruction(p *realm.Player, s *realm.Settlement, plans []*realm.UnitPlan) *realm.Construction {
	if len(p.Units) == 0 && len(s.Garrison) == 0 && len(plans) > 0 {
		return realm.TrainUnit(plans[0])
	}
	if s.Level >= 3 && !s.ProducedSettler {
		for _, up := range plans {
			if up.CanSettle {
				return realm.TrainUnit(up)
			}
		}
	}
	return nil
}

// idealConstruction returns the improvement with the largest effect on the
// lowest resource, first seen on ties, or the first unit plan when there are
// no improvements.
func idealConstruction(imps []*realm.Improvement, plans []*realm.UnitPlan, lowest realm.Resource) *realm.Construction {
	if len(imps) == 0 {
		return realm.TrainUnit(plans[0])
	}
	ideal := imps[0]
	for _, imp := range imps[1:] {
		if imp.Effect.Get(lowest) > ideal.Effect.Get(lowest) {
			ideal = imp
		}
	}
	return realm.BuildImprovement(ideal)
}

// buyout completes s's current work outright when what remains costs less
// than a third of the treasury.
func (m *MoveMaker) buyout(p *realm.Player, s *realm.Settlement) {
	remaining := s.CurrentWork.Remaining()
	if remaining >= p.Wealth/3 {
		return
	}
	name := s.CurrentWork.Name()
	m.completer.CompleteConstruction(p, s)
	p.Wealth -= remaining
	log.Debug().Str("player", p.Name).Str("settlement", s.Name).Str("work", name).Float64("paid", remaining).Msg("Construction bought out")
}

// manageGarrison deploys every settler, then deploys the last unit if the
// garrison is still over the strategy's limit.
func (m *MoveMaker) manageGarrison(p *realm.Player, s *realm.Settlement, strat Strategy) {
	for _, u := range slices.Clone(s.Garrison) {
		if u.Plan.CanSettle {
			m.deploy(p, s, u)
		}
	}
	if n := len(s.Garrison); n > strat.DeploymentPolicy().GarrisonLimit {
		m.deploy(p, s, s.Garrison[n-1])
	}
}

func (m *MoveMaker) deploy(p *realm.Player, s *realm.Settlement, u *realm.Unit) {
	p.Deploy(s, u)
	u.Location = m.worldMap.Wrap(u.Location)
}

func (m *MoveMaker) moveUnit(p *realm.Player, u *realm.Unit, w *realm.World, idx *spatialIndex, strat Strategy) {
	if u.Plan.CanSettle {
		m.walk(u, idx)
		if m.farFromSettlements(p, u.Location) {
			m.found(p, u, w, idx)
		}
		return
	}

	target := idx.firstTarget(u, strat)
	if target == nil {
		m.walk(u, idx)
		return
	}
	m.attack(p, u, target, w, idx)
}

// walk moves u by a random offset that spends all of its stamina: dx is drawn
// from [-s, s] and dy takes what is left with a random sign.
func (m *MoveMaker) walk(u *realm.Unit, idx *spatialIndex) {
	s := max(u.RemainingStamina, 0)
	dx := m.rng.Intn(2*s+1) - s
	dy := s - abs(dx)
	if m.rng.Intn(2) == 0 {
		dy = -dy
	}
	from := u.Location
	u.Location = m.worldMap.Wrap(u.Location.Offset(dx, dy))
	u.RemainingStamina -= abs(dx) + abs(dy)
	idx.move(u, from)
}

func (m *MoveMaker) farFromSettlements(p *realm.Player, loc realm.Location) bool {
	for _, s := range p.Settlements {
		if m.worldMap.Distance(loc, s.Location) < MinSettlementSpacing {
			return false
		}
	}
	return true
}

// found turns settler u into a new settlement at its location.
func (m *MoveMaker) found(p *realm.Player, u *realm.Unit, w *realm.World, idx *spatialIndex) {
	quad := m.worldMap.QuadAt(u.Location)
	name := m.settlementName(quad.Biome, w)
	s := realm.NewSettlement(name, quad)
	p.Settlements = append(p.Settlements, s)
	p.RemoveUnit(u)
	idx.remove(u)
	log.Debug().Str("player", p.Name).Str("settlement", name).Str("biome", string(quad.Biome)).
		Int("x", s.Location.X).Int("y", s.Location.Y).Msg("Settlement founded")
}

// settlementName draws from the biome's pool, falling back to a numbered
// outpost name no player is using yet.
func (m *MoveMaker) settlementName(biome realm.Biome, w *realm.World) string {
	name, err := m.catalogue.SettlementName(biome)
	if err == nil {
		return name
	}
	if !errors.Is(err, catalogue.ErrNamesExhausted) {
		log.Warn().Err(err).Str("biome", string(biome)).Msg("Settlement name lookup failed")
	}
	for n := 1; ; n++ {
		name = fmt.Sprintf("%s Outpost %d", titleCase(string(biome)), n)
		if !w.SettlementNamed(name) {
			return name
		}
	}
}

// attack moves u next to target on the side it approaches from, spends its
// stamina and resolves the fight. Participants below zero health are removed.
func (m *MoveMaker) attack(p *realm.Player, u, target *realm.Unit, w *realm.World, idx *spatialIndex) {
	from := u.Location
	if target.Location.X-u.Location.X < 0 {
		u.Location = m.worldMap.Wrap(target.Location.Offset(1, 0))
	} else {
		u.Location = m.worldMap.Wrap(target.Location.Offset(-1, 0))
	}
	idx.move(u, from)
	u.RemainingStamina = 0

	defender := idx.owner(target)
	res := m.combat.Attack(u, target, false)
	if m.presenter != nil && defender != nil && defender.Human {
		m.presenter.ShowAttack(res)
	}

	log.Debug().Str("player", p.Name).Str("unit", u.Plan.Name).Str("target", target.Plan.Name).
		Float64("dealt", res.DamageToDefender).Float64("taken", res.DamageToAttacker).Msg("Attack resolved")

	if target.Dead() {
		if defender != nil {
			defender.RemoveUnit(target)
		} else {
			w.RemoveHeathen(target)
		}
		idx.remove(target)
	}
	if u.Dead() {
		p.RemoveUnit(u)
		idx.remove(u)
	}
}

// checkSolvency liquidates the weakest active unit when the coming turn
// would leave the treasury negative.
func (m *MoveMaker) checkSolvency(p *realm.Player) {
	totals := m.calc.PlayerTotals(p)
	if p.Wealth+totals.Wealth >= 0 {
		return
	}
	var victim *realm.Unit
	for _, u := range p.Units {
		if u.Garrisoned {
			continue
		}
		if victim == nil || u.Health+u.Plan.Power < victim.Health+victim.Plan.Power {
			victim = u
		}
	}
	if victim == nil {
		return
	}
	p.Wealth += victim.Plan.Cost
	p.RemoveUnit(victim)
	log.Debug().Str("player", p.Name).Str("unit", victim.Plan.Name).Float64("refund", victim.Plan.Cost).Msg("Unit liquidated")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
