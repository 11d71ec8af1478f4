// Package overlay holds what the renderer should surface to the human player
// between frames.
package overlay

import (
	"sync"

	"github.com/freeeve/realmwright/pkg/realm"
)

// Slot keeps the most recent attack on the human player until the renderer
// dismisses it. The engine writes and a renderer goroutine reads.
type Slot struct {
	mu     sync.Mutex
	attack *realm.AttackResult
	shown  int
}

// ShowAttack replaces any pending attack with res.
func (s *Slot) ShowAttack(res realm.AttackResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attack = &res
	s.shown++
}

// Pending returns the attack waiting to be shown, if any.
func (s *Slot) Pending() (realm.AttackResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attack == nil {
		return realm.AttackResult{}, false
	}
	return *s.attack, true
}

// Dismiss clears the pending attack.
func (s *Slot) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attack = nil
}

// Shown returns how many attacks have been surfaced since the slot was made.
func (s *Slot) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}
