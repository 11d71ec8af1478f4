package movemaker

import (
	"testing"

	"github.com/freeeve/realmwright/pkg/realm"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 8, 0},
		{8, 8, 1},
		{-1, 8, -1},
		{-8, 8, -1},
		{-9, 8, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestSpatialIndex_BoardOrder(t *testing.T) {
	a := unitAt(warrior, 5, 5)
	b := unitAt(warrior, -3, -3)
	c := unitAt(warrior, 0, 0)
	h := realm.NewUnit(heathen, realm.Location{X: 1, Y: 1}, false)
	w := &realm.World{
		Players: []*realm.Player{
			{Name: "Red", Units: []*realm.Unit{a}},
			{Name: "Blue", Units: []*realm.Unit{b, c}},
		},
		Heathens: []*realm.Unit{h},
	}
	idx := newSpatialIndex(w)

	got := idx.within(realm.Location{}, 5)
	want := []*realm.Unit{a, b, c, h}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.unit != want[i] {
			t.Errorf("position %d: expected ordinal %d, got %d", i, i, e.ordinal)
		}
	}

	if n := len(idx.within(realm.Location{}, 3)); n != 3 {
		t.Errorf("expected 3 within range 3, got %d", n)
	}
	if idx.owner(h) != nil {
		t.Error("heathens have no owner")
	}
	if idx.owner(c) != w.Players[1] {
		t.Error("expected Blue to own c")
	}
}

func TestSpatialIndex_MoveAndRemove(t *testing.T) {
	u := unitAt(warrior, 0, 0)
	w := &realm.World{Players: []*realm.Player{{Name: "Red", Units: []*realm.Unit{u}}}}
	idx := newSpatialIndex(w)

	from := u.Location
	u.Location = realm.Location{X: 40, Y: -40}
	idx.move(u, from)

	if n := len(idx.within(realm.Location{}, 2)); n != 0 {
		t.Errorf("expected old cell empty, found %d", n)
	}
	if n := len(idx.within(realm.Location{X: 40, Y: -40}, 0)); n != 1 {
		t.Errorf("expected unit in new cell, found %d", n)
	}

	idx.remove(u)
	idx.remove(u)
	if n := len(idx.within(realm.Location{X: 40, Y: -40}, 0)); n != 0 {
		t.Errorf("expected unit removed, found %d", n)
	}
	if len(idx.cells) != 0 {
		t.Errorf("expected no empty buckets left, have %d", len(idx.cells))
	}
}

func TestSpatialIndex_FirstTargetIncludesFriendly(t *testing.T) {
	me := unitAt(warrior, 0, 0)
	friend := unitAt(warrior, 0, 1)
	enemy := unitAt(archer, 2, 2)
	red := &realm.Player{Name: "Red", Units: []*realm.Unit{me, friend}}
	blue := &realm.Player{Name: "Blue", Units: []*realm.Unit{enemy}}
	idx := newSpatialIndex(&realm.World{Players: []*realm.Player{red, blue}})

	if got := idx.firstTarget(me, AggressiveStrategy{}); got != friend {
		t.Errorf("expected friend first in board order, got %v", got)
	}
	if got := idx.firstTarget(friend, AggressiveStrategy{}); got != me {
		t.Errorf("expected me first in board order, got %v", got)
	}
	idx.remove(friend)
	if got := idx.firstTarget(me, AggressiveStrategy{}); got != enemy {
		t.Errorf("expected enemy once friend is gone, got %v", got)
	}
	if got := idx.firstTarget(me, DefensiveStrategy{}); got != nil {
		t.Errorf("defensive should never target, got %v", got)
	}
}
