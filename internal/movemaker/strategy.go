package movemaker

import "github.com/freeeve/realmwright/pkg/realm"

// Strategy is the playstyle-specific part of an AI player's decisions.
type Strategy interface {
	Name() string
	ChooseBlessing(c BlessingChoice) *realm.Blessing
	ChooseConstruction(c ConstructionChoice) *realm.Construction
	DeploymentPolicy() DeploymentPolicy
	MayEngage(unit, target *realm.Unit) bool
}

// BlessingChoice is what a strategy sees when picking a blessing. Available
// is cost-ascending and non-empty; Ideal is the blessing that best covers the
// player's lowest resource.
type BlessingChoice struct {
	Available []*realm.Blessing
	Ideal     *realm.Blessing
	Catalogue Catalogue
}

// ConstructionChoice is what a strategy sees when picking a settlement's next
// work. Ideal is the improvement that best covers the settlement's lowest
// resource, or the cheapest unit plan when no improvement is available.
type ConstructionChoice struct {
	Player       *realm.Player
	Settlement   *realm.Settlement
	Improvements []*realm.Improvement
	UnitPlans    []*realm.UnitPlan
	Ideal        *realm.Construction
}

// DeploymentPolicy controls how many units a settlement keeps home.
type DeploymentPolicy struct {
	// GarrisonLimit is the garrison size above which one unit is sent out
	// each turn.
	GarrisonLimit int
}

// StrategyForPlaystyle returns the strategy for a playstyle. Unknown values
// play neutral.
func StrategyForPlaystyle(ps realm.Playstyle) Strategy {
	switch ps {
	case realm.Aggressive:
		return AggressiveStrategy{}
	case realm.Defensive:
		return DefensiveStrategy{}
	default:
		return NeutralStrategy{}
	}
}

// --- NeutralStrategy ---

// NeutralStrategy always follows the ideal choice and only picks fights it
// is twice as healthy for.
type NeutralStrategy struct{}

func (NeutralStrategy) Name() string { return string(realm.Neutral) }

func (NeutralStrategy) ChooseBlessing(c BlessingChoice) *realm.Blessing { return c.Ideal }

func (NeutralStrategy) ChooseConstruction(c ConstructionChoice) *realm.Construction { return c.Ideal }

func (NeutralStrategy) DeploymentPolicy() DeploymentPolicy { return DeploymentPolicy{} }

func (NeutralStrategy) MayEngage(unit, target *realm.Unit) bool {
	return unit.Health >= 2*target.Health
}

// --- AggressiveStrategy ---

// AggressiveStrategy researches towards new units, keeps at least one unit
// per settlement level and attacks anything in reach.
type AggressiveStrategy struct{}

func (AggressiveStrategy) Name() string { return string(realm.Aggressive) }

// ChooseBlessing takes the cheapest blessing that unlocks a unit plan.
func (AggressiveStrategy) ChooseBlessing(c BlessingChoice) *realm.Blessing {
	for _, b := range c.Available {
		if len(c.Catalogue.UnlockableUnits(b)) > 0 {
			return b
		}
	}
	return c.Ideal
}

func (AggressiveStrategy) ChooseConstruction(c ConstructionChoice) *realm.Construction {
	if len(c.Player.Units) < c.Settlement.Level && len(c.UnitPlans) > 0 {
		return realm.TrainUnit(strongest(c.UnitPlans))
	}
	return c.Ideal
}

func (AggressiveStrategy) DeploymentPolicy() DeploymentPolicy { return DeploymentPolicy{} }

func (AggressiveStrategy) MayEngage(_, _ *realm.Unit) bool { return true }

// --- DefensiveStrategy ---

// DefensiveStrategy researches and builds for strength, keeps up to three
// units home and never attacks.
type DefensiveStrategy struct{}

func (DefensiveStrategy) Name() string { return string(realm.Defensive) }

// ChooseBlessing takes the cheapest blessing that unlocks an improvement with
// positive strength.
func (DefensiveStrategy) ChooseBlessing(c BlessingChoice) *realm.Blessing {
	for _, b := range c.Available {
		for _, imp := range c.Catalogue.UnlockableImprovements(b) {
			if imp.Effect.Strength > 0 {
				return b
			}
		}
	}
	return c.Ideal
}

func (DefensiveStrategy) ChooseConstruction(c ConstructionChoice) *realm.Construction {
	if len(c.Player.Units)*2 < c.Settlement.Level && len(c.UnitPlans) > 0 {
		return realm.TrainUnit(sturdiest(c.UnitPlans))
	}
	for _, imp := range c.Improvements {
		if imp.Effect.Strength > 0 {
			return realm.BuildImprovement(imp)
		}
	}
	return c.Ideal
}

func (DefensiveStrategy) DeploymentPolicy() DeploymentPolicy {
	return DeploymentPolicy{GarrisonLimit: 3}
}

func (DefensiveStrategy) MayEngage(_, _ *realm.Unit) bool { return false }

// strongest returns the plan with the highest power. The comparison is >=,
// so among equals the last one wins.
func strongest(plans []*realm.UnitPlan) *realm.UnitPlan {
	best := plans[0]
	for _, up := range plans {
		if up.Power >= best.Power {
			best = up
		}
	}
	return best
}

// sturdiest returns the plan with the highest max health, last one winning
// among equals.
func sturdiest(plans []*realm.UnitPlan) *realm.UnitPlan {
	best := plans[0]
	for _, up := range plans {
		if up.MaxHealth >= best.MaxHealth {
			best = up
		}
	}
	return best
}
