package movemaker

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/realmwright/pkg/realm"
)

// UnitView is the read-only shape of a unit inside an engage rule.
type UnitView struct {
	Name      string
	Health    float64
	MaxHealth float64
	Power     float64
	Stamina   int
	X         int
	Y         int
}

func viewOf(u *realm.Unit) UnitView {
	return UnitView{
		Name:      u.Plan.Name,
		Health:    u.Health,
		MaxHealth: u.Plan.MaxHealth,
		Power:     u.Plan.Power,
		Stamina:   u.RemainingStamina,
		X:         u.Location.X,
		Y:         u.Location.Y,
	}
}

// EngageEnv is the environment an engage rule is evaluated against, e.g.
//
//	Attacker.Power > Defender.Power && Distance <= 2
type EngageEnv struct {
	Attacker UnitView
	Defender UnitView
	Distance int
}

// ScriptedStrategy wraps another strategy and replaces its engagement
// decision with a compiled boolean expression.
type ScriptedStrategy struct {
	Strategy
	source  string
	program *vm.Program
}

// NewScriptedStrategy compiles rule against EngageEnv.
func NewScriptedStrategy(base Strategy, rule string) (*ScriptedStrategy, error) {
	prog, err := expr.Compile(rule, expr.Env(EngageEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile engage rule %q: %w", rule, err)
	}
	return &ScriptedStrategy{Strategy: base, source: rule, program: prog}, nil
}

func (s *ScriptedStrategy) Name() string { return s.Strategy.Name() + "+scripted" }

// Rule returns the engage rule source.
func (s *ScriptedStrategy) Rule() string { return s.source }

// MayEngage evaluates the rule. A rule that fails at runtime never engages.
func (s *ScriptedStrategy) MayEngage(unit, target *realm.Unit) bool {
	env := EngageEnv{
		Attacker: viewOf(unit),
		Defender: viewOf(target),
		Distance: realm.Distance(unit.Location, target.Location),
	}
	result, err := vm.Run(s.program, env)
	if err != nil {
		log.Warn().Err(err).Str("rule", s.source).Msg("Engage rule failed")
		return false
	}
	ok, _ := result.(bool)
	return ok
}
