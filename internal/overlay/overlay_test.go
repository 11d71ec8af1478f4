package overlay

import (
	"sync"
	"testing"

	"github.com/freeeve/realmwright/pkg/realm"
)

func TestSlot(t *testing.T) {
	var s Slot
	if _, ok := s.Pending(); ok {
		t.Fatal("new slot should be empty")
	}

	first := realm.AttackResult{DamageToDefender: 10}
	second := realm.AttackResult{DamageToDefender: 20, DefenderWasKilled: true}
	s.ShowAttack(first)
	s.ShowAttack(second)

	got, ok := s.Pending()
	if !ok {
		t.Fatal("expected pending attack")
	}
	if got.DamageToDefender != 20 || !got.DefenderWasKilled {
		t.Errorf("expected most recent attack, got %+v", got)
	}
	if s.Shown() != 2 {
		t.Errorf("expected 2 shown, got %d", s.Shown())
	}

	s.Dismiss()
	if _, ok := s.Pending(); ok {
		t.Error("expected slot cleared after Dismiss")
	}
}

func TestSlot_ConcurrentReaders(t *testing.T) {
	var s Slot
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ShowAttack(realm.AttackResult{DamageToDefender: 1})
		}()
		go func() {
			defer wg.Done()
			s.Pending()
		}()
	}
	wg.Wait()
	if s.Shown() != 8 {
		t.Errorf("expected 8 shown, got %d", s.Shown())
	}
}
