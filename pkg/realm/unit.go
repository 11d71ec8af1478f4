package realm

// Unit is a single mobile unit, either in a player's roster or in a
// settlement's garrison.
type Unit struct {
	Health           float64
	RemainingStamina int
	Location         Location
	Garrisoned       bool
	Plan             *UnitPlan
}

// NewUnit returns a unit at full health and stamina.
func NewUnit(plan *UnitPlan, loc Location, garrisoned bool) *Unit {
	return &Unit{
		Health:           plan.MaxHealth,
		RemainingStamina: plan.TotalStamina,
		Location:         loc,
		Garrisoned:       garrisoned,
		Plan:             plan,
	}
}

// Dead reports whether the unit's health has dropped below zero.
func (u *Unit) Dead() bool {
	return u.Health < 0
}

// AttackResult is the outcome of one attack as reported by the combat
// resolver.
type AttackResult struct {
	Attacker          *Unit
	Defender          *Unit
	DamageToAttacker  float64
	DamageToDefender  float64
	AttackerWasKilled bool
	DefenderWasKilled bool
	PlayerAttack      bool // true when the human player initiated
}
