package movemaker

import (
	"sort"

	"github.com/freeeve/realmwright/pkg/realm"
)

// cellSize is the side of a spatial index bucket. Unit stamina rarely
// exceeds it, so a range query touches at most a 3x3 block.
const cellSize = 8

type cellKey struct{ cx, cy int }

// indexEntry is one active unit on the board. ordinal is its board order:
// players in world order, each roster in order, then heathens.
type indexEntry struct {
	unit    *realm.Unit
	owner   *realm.Player // nil for heathens
	ordinal int
}

// spatialIndex buckets every active unit by location for range queries.
// Targeting must pick the first qualifying unit in board order, so queries
// sort candidates by ordinal before testing them.
type spatialIndex struct {
	cells   map[cellKey][]*indexEntry
	entries map[*realm.Unit]*indexEntry
}

func newSpatialIndex(w *realm.World) *spatialIndex {
	idx := &spatialIndex{
		cells:   make(map[cellKey][]*indexEntry),
		entries: make(map[*realm.Unit]*indexEntry),
	}
	ord := 0
	for _, p := range w.Players {
		for _, u := range p.Units {
			idx.insert(&indexEntry{unit: u, owner: p, ordinal: ord})
			ord++
		}
	}
	for _, h := range w.Heathens {
		idx.insert(&indexEntry{unit: h, ordinal: ord})
		ord++
	}
	return idx
}

func keyFor(loc realm.Location) cellKey {
	return cellKey{floorDiv(loc.X, cellSize), floorDiv(loc.Y, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (idx *spatialIndex) insert(e *indexEntry) {
	k := keyFor(e.unit.Location)
	idx.cells[k] = append(idx.cells[k], e)
	idx.entries[e.unit] = e
}

func (idx *spatialIndex) detach(e *indexEntry, at realm.Location) {
	k := keyFor(at)
	bucket := idx.cells[k]
	for i, have := range bucket {
		if have == e {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(idx.cells, k)
	} else {
		idx.cells[k] = bucket
	}
}

// move rebuckets u after it moved away from from. Untracked units are ignored.
func (idx *spatialIndex) move(u *realm.Unit, from realm.Location) {
	e, ok := idx.entries[u]
	if !ok {
		return
	}
	if keyFor(from) == keyFor(u.Location) {
		return
	}
	idx.detach(e, from)
	k := keyFor(u.Location)
	idx.cells[k] = append(idx.cells[k], e)
}

// remove drops u from the index. Removing an untracked unit is a no-op.
func (idx *spatialIndex) remove(u *realm.Unit) {
	e, ok := idx.entries[u]
	if !ok {
		return
	}
	idx.detach(e, u.Location)
	delete(idx.entries, u)
}

// owner returns the player whose roster held u when the index was built.
func (idx *spatialIndex) owner(u *realm.Unit) *realm.Player {
	if e, ok := idx.entries[u]; ok {
		return e.owner
	}
	return nil
}

// within returns the entries at Chebyshev distance <= r from loc, in board
// order.
func (idx *spatialIndex) within(loc realm.Location, r int) []*indexEntry {
	r = max(r, 0)
	lo := keyFor(loc.Offset(-r, -r))
	hi := keyFor(loc.Offset(r, r))
	var found []*indexEntry
	for cx := lo.cx; cx <= hi.cx; cx++ {
		for cy := lo.cy; cy <= hi.cy; cy++ {
			for _, e := range idx.cells[cellKey{cx, cy}] {
				if realm.Distance(loc, e.unit.Location) <= r {
					found = append(found, e)
				}
			}
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ordinal < found[j].ordinal })
	return found
}

// firstTarget returns the first unit in board order that u can reach with
// its remaining stamina and that strat allows it to attack. Every active unit
// is a candidate, the mover's own side included. Only u itself is skipped.
func (idx *spatialIndex) firstTarget(u *realm.Unit, strat Strategy) *realm.Unit {
	for _, e := range idx.within(u.Location, u.RemainingStamina) {
		if e.unit == u {
			continue
		}
		if strat.MayEngage(u, e.unit) {
			return e.unit
		}
	}
	return nil
}
