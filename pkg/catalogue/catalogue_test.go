package catalogue

import (
	"errors"
	"testing"

	"github.com/freeeve/realmwright/pkg/realm"
)

func TestAvailableImprovements_SortedAndFiltered(t *testing.T) {
	c := Standard(1)
	p := &realm.Player{Name: "Red"}
	s := realm.NewSettlement("Enfu", realm.Quad{Biome: realm.Desert})

	imps := c.AvailableImprovements(p, s)
	if len(imps) != 6 {
		t.Fatalf("expected the 6 base improvements, got %d", len(imps))
	}
	for i, imp := range imps {
		if imp.Prereq != nil {
			t.Errorf("%s requires %s but player has no blessings", imp.Name, imp.Prereq.Name)
		}
		if i > 0 && imps[i-1].Cost > imp.Cost {
			t.Errorf("not cost-ascending at %d", i)
		}
	}

	s.Improvements = append(s.Improvements, imps[0])
	if got := c.AvailableImprovements(p, s); len(got) != 5 {
		t.Errorf("expected built improvement to be excluded, got %d", len(got))
	}

	p.Blessings = append(p.Blessings, AdvancedTrading)
	got := c.AvailableImprovements(p, s)
	if len(got) != 7 {
		t.Fatalf("expected Advanced Trading to unlock 2 improvements, got %d total", len(got))
	}
	if got[len(got)-1].Cost != 150 {
		t.Errorf("expected unlocked improvements last, got %s", got[len(got)-1].Name)
	}
}

func TestAvailableUnitPlans_SettlerNeedsLevel2(t *testing.T) {
	c := Standard(1)
	p := &realm.Player{}

	for _, up := range c.AvailableUnitPlans(p, 1) {
		if up.CanSettle {
			t.Errorf("level 1 should not offer %s", up.Name)
		}
	}

	plans := c.AvailableUnitPlans(p, 2)
	if len(plans) != 3 {
		t.Fatalf("expected warrior, archer and settler, got %d", len(plans))
	}
	if !plans[0].CanSettle {
		t.Errorf("expected cheapest plan to be the settler, got %s", plans[0].Name)
	}
}

func TestAvailableBlessings_ExcludesCompleted(t *testing.T) {
	c := Standard(1)
	p := &realm.Player{Blessings: []*realm.Blessing{BeginnerSpells}}

	bls := c.AvailableBlessings(p)
	if len(bls) != 11 {
		t.Fatalf("expected 11 blessings, got %d", len(bls))
	}
	for i, b := range bls {
		if b == BeginnerSpells {
			t.Error("completed blessing offered again")
		}
		if i > 0 && bls[i-1].Cost > b.Cost {
			t.Errorf("not cost-ascending at %d", i)
		}
	}
}

func TestUnlockables(t *testing.T) {
	c := Standard(1)

	units := c.UnlockableUnits(RoboticExperiments)
	if len(units) != 1 || units[0].Name != "Drone" {
		t.Errorf("expected Drone, got %v", units)
	}
	if got := c.UnlockableUnits(AdvancedTrading); len(got) != 0 {
		t.Errorf("expected no units for Advanced Trading, got %d", len(got))
	}

	imps := c.UnlockableImprovements(SelfLockingVaults)
	if len(imps) != 2 {
		t.Fatalf("expected 2 improvements, got %d", len(imps))
	}
	for _, imp := range imps {
		if imp.Prereq != SelfLockingVaults {
			t.Errorf("%s does not require Self-locking Vaults", imp.Name)
		}
	}
}

func TestSettlementName_ConsumesPool(t *testing.T) {
	c := Standard(7)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name, err := c.SettlementName(realm.Forest)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if seen[name] {
			t.Errorf("name %q drawn twice", name)
		}
		seen[name] = true
	}
	if c.NamesLeft(realm.Forest) != 0 {
		t.Errorf("expected pool empty, %d left", c.NamesLeft(realm.Forest))
	}
	if _, err := c.SettlementName(realm.Forest); !errors.Is(err, ErrNamesExhausted) {
		t.Errorf("expected ErrNamesExhausted, got %v", err)
	}
	if c.NamesLeft(realm.Sea) != 10 {
		t.Errorf("other pools should be untouched, sea has %d", c.NamesLeft(realm.Sea))
	}
}

func TestNew_CopiesNamePools(t *testing.T) {
	names := map[realm.Biome][]string{realm.Desert: {"Enfu"}}
	c := New(nil, nil, nil, names, 1)
	if _, err := c.SettlementName(realm.Desert); err != nil {
		t.Fatal(err)
	}
	if len(names[realm.Desert]) != 1 {
		t.Error("caller's name pool was mutated")
	}
}
