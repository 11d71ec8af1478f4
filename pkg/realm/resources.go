package realm

// Resource names one of the four per-turn totals a settlement or player yields.
type Resource int

const (
	Wealth Resource = iota
	Harvest
	Zeal
	Fortune
)

func (r Resource) String() string {
	switch r {
	case Wealth:
		return "wealth"
	case Harvest:
		return "harvest"
	case Zeal:
		return "zeal"
	case Fortune:
		return "fortune"
	}
	return "unknown"
}

// Totals holds per-turn wealth, harvest, zeal and fortune.
type Totals struct {
	Wealth  float64
	Harvest float64
	Zeal    float64
	Fortune float64
}

// Get returns the total for r.
func (t Totals) Get(r Resource) float64 {
	switch r {
	case Wealth:
		return t.Wealth
	case Harvest:
		return t.Harvest
	case Zeal:
		return t.Zeal
	case Fortune:
		return t.Fortune
	}
	return 0
}

// Add returns the component-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Wealth:  t.Wealth + o.Wealth,
		Harvest: t.Harvest + o.Harvest,
		Zeal:    t.Zeal + o.Zeal,
		Fortune: t.Fortune + o.Fortune,
	}
}

// Lowest returns the resource with the smallest total. Ties go to the
// earlier resource in wealth, harvest, zeal, fortune order.
func (t Totals) Lowest() Resource {
	lowest := Wealth
	for _, r := range []Resource{Harvest, Zeal, Fortune} {
		if t.Get(r) < t.Get(lowest) {
			lowest = r
		}
	}
	return lowest
}

// Effect is the per-turn change an improvement applies to its settlement.
type Effect struct {
	Wealth       float64
	Harvest      float64
	Zeal         float64
	Fortune      float64
	Strength     float64
	Satisfaction float64
}

// Get returns the effect's delta for one of the four totals.
func (e Effect) Get(r Resource) float64 {
	switch r {
	case Wealth:
		return e.Wealth
	case Harvest:
		return e.Harvest
	case Zeal:
		return e.Zeal
	case Fortune:
		return e.Fortune
	}
	return 0
}

// Totals returns the effect's contribution to the four per-turn totals.
func (e Effect) Totals() Totals {
	return Totals{Wealth: e.Wealth, Harvest: e.Harvest, Zeal: e.Zeal, Fortune: e.Fortune}
}
