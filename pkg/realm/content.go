package realm

// ImprovementCategory groups improvements by the kind of benefit they give.
type ImprovementCategory string

const (
	Magical      ImprovementCategory = "magical"
	Industrial   ImprovementCategory = "industrial"
	Economical   ImprovementCategory = "economical"
	Bountiful    ImprovementCategory = "bountiful"
	Intimidatory ImprovementCategory = "intimidatory"
	Pandering    ImprovementCategory = "pandering"
)

// Blessing is an empire-wide pursuit paid for with accumulated fortune.
// Completing one unlocks the improvements and unit plans that name it as
// their prerequisite.
type Blessing struct {
	Name        string
	Description string
	Cost        float64
}

// Improvement is a permanent settlement building with a fixed per-turn effect.
type Improvement struct {
	Category    ImprovementCategory
	Cost        float64
	Name        string
	Description string
	Effect      Effect
	Prereq      *Blessing // nil when always available
}

// UnitPlan is the immutable template units are trained from.
type UnitPlan struct {
	Cost         float64
	MaxHealth    float64
	TotalStamina int
	Name         string
	Prereq       *Blessing // nil when always available
	Power        float64
	CanSettle    bool
}

// Construction is the build order a settlement is working on: exactly one of
// Improvement or UnitPlan is set.
type Construction struct {
	Improvement  *Improvement
	UnitPlan     *UnitPlan
	ZealConsumed float64
}

// BuildImprovement returns a fresh construction for imp.
func BuildImprovement(imp *Improvement) *Construction {
	return &Construction{Improvement: imp}
}

// TrainUnit returns a fresh construction for plan.
func TrainUnit(plan *UnitPlan) *Construction {
	return &Construction{UnitPlan: plan}
}

// Cost returns the total zeal cost of the target.
func (c *Construction) Cost() float64 {
	if c.Improvement != nil {
		return c.Improvement.Cost
	}
	if c.UnitPlan != nil {
		return c.UnitPlan.Cost
	}
	return 0
}

// Remaining returns how much of the cost has not been paid yet.
func (c *Construction) Remaining() float64 {
	return c.Cost() - c.ZealConsumed
}

// Name returns the target's display name.
func (c *Construction) Name() string {
	if c.Improvement != nil {
		return c.Improvement.Name
	}
	if c.UnitPlan != nil {
		return c.UnitPlan.Name
	}
	return ""
}

// OngoingBlessing tracks the fortune paid so far towards a blessing.
type OngoingBlessing struct {
	Blessing        *Blessing
	FortuneConsumed float64
}
