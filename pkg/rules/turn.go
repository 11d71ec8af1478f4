package rules

import "github.com/freeeve/realmwright/pkg/realm"

// MaxLevel is the highest level a settlement can reach.
const MaxLevel = 10

// LevelThreshold is the harvest reserve a settlement of the given level needs
// to grow.
func LevelThreshold(level int) float64 {
	return 25 * float64(level)
}

// TotalsCalculator is the part of Calculator AdvanceTurn needs.
type TotalsCalculator interface {
	SettlementTotals(s *realm.Settlement) realm.Totals
	PlayerTotals(p *realm.Player) realm.Totals
}

// ConstructionCompleter is the part of Completer AdvanceTurn needs.
type ConstructionCompleter interface {
	CompleteConstruction(p *realm.Player, s *realm.Settlement)
}

// TurnReport lists what finished during one AdvanceTurn.
type TurnReport struct {
	Blessings     map[string][]*realm.Blessing // player name -> completed
	Constructions map[string][]string          // player name -> "settlement: work"
	LevelUps      map[string][]string          // player name -> settlement names
}

// AdvanceTurn applies end-of-round accrual to every player and resets
// stamina across the board, then increments w.Turn.
func AdvanceTurn(w *realm.World, calc TotalsCalculator, done ConstructionCompleter) TurnReport {
	report := TurnReport{
		Blessings:     make(map[string][]*realm.Blessing),
		Constructions: make(map[string][]string),
		LevelUps:      make(map[string][]string),
	}
	for _, p := range w.Players {
		totals := calc.PlayerTotals(p)
		p.Wealth += totals.Wealth

		if ob := p.OngoingBlessing; ob != nil {
			ob.FortuneConsumed += totals.Fortune
			if ob.FortuneConsumed >= ob.Blessing.Cost {
				p.Blessings = append(p.Blessings, ob.Blessing)
				p.OngoingBlessing = nil
				report.Blessings[p.Name] = append(report.Blessings[p.Name], ob.Blessing)
			}
		}

		for _, s := range p.Settlements {
			st := calc.SettlementTotals(s)
			if work := s.CurrentWork; work != nil {
				work.ZealConsumed += st.Zeal
				if work.ZealConsumed >= work.Cost() {
					report.Constructions[p.Name] = append(report.Constructions[p.Name], s.Name+": "+work.Name())
					done.CompleteConstruction(p, s)
				}
			}

			s.HarvestReserves += st.Harvest
			if s.Level < MaxLevel && s.HarvestReserves >= LevelThreshold(s.Level) {
				s.HarvestReserves = 0
				s.Level++
				report.LevelUps[p.Name] = append(report.LevelUps[p.Name], s.Name)
			}

			for _, u := range s.Garrison {
				u.RemainingStamina = u.Plan.TotalStamina
			}
		}

		for _, u := range p.Units {
			u.RemainingStamina = u.Plan.TotalStamina
		}
	}
	for _, h := range w.Heathens {
		h.RemainingStamina = h.Plan.TotalStamina
	}
	w.Turn++
	return report
}
