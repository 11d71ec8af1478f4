package rules

import "github.com/freeeve/realmwright/pkg/realm"

// Source is the randomness the resolver draws damage variance from.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Damage variance: each hit lands between 75% and 125% of its base.
const (
	minSwing = 0.75
	swing    = 0.5
)

// CounterRatio scales the damage a defender deals back to its attacker.
const CounterRatio = 0.5

// Resolver settles attacks between two units.
type Resolver struct {
	rng Source
}

// NewResolver returns a resolver drawing from rng.
func NewResolver(rng Source) *Resolver {
	return &Resolver{rng: rng}
}

// Attack applies one exchange of blows. Each side hits for its power scaled
// by the fraction of health it has left; the defender's counter is weaker.
// Health is mutated in place and may drop below zero.
func (r *Resolver) Attack(attacker, defender *realm.Unit, playerAttack bool) realm.AttackResult {
	toDefender := strike(attacker) * (minSwing + r.rng.Float64()*swing)
	toAttacker := strike(defender) * CounterRatio * (minSwing + r.rng.Float64()*swing)

	defender.Health -= toDefender
	attacker.Health -= toAttacker

	return realm.AttackResult{
		Attacker:          attacker,
		Defender:          defender,
		DamageToAttacker:  toAttacker,
		DamageToDefender:  toDefender,
		AttackerWasKilled: attacker.Dead(),
		DefenderWasKilled: defender.Dead(),
		PlayerAttack:      playerAttack,
	}
}

func strike(u *realm.Unit) float64 {
	if u.Plan.MaxHealth <= 0 || u.Health <= 0 {
		return 0
	}
	return u.Plan.Power * (u.Health / u.Plan.MaxHealth)
}
