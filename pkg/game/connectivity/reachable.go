package connectivity

import (
	"github.com/zyedidia/generic/mapset"

	"outpost/pkg/engine/world"
)

// ReachableSet is an insertion-ordered set of map coordinates.
// Membership tests are O(1).
type ReachableSet struct {
	order []world.MapCoordinate
	seen  mapset.Set[world.MapCoordinate]
}

// NewReachableSet creates an empty set
func NewReachableSet() *ReachableSet {
	return &ReachableSet{
		seen: mapset.New[world.MapCoordinate](),
	}
}

// Add inserts pos and returns false if it was already present
func (r *ReachableSet) Add(pos world.MapCoordinate) bool {
	if r.seen.Has(pos) {
		return false
	}
	r.seen.Put(pos)
	r.order = append(r.order, pos)
	return true
}

// Has returns true if pos is in the set
func (r *ReachableSet) Has(pos world.MapCoordinate) bool {
	return r.seen.Has(pos)
}

// Len returns the number of coordinates in the set
func (r *ReachableSet) Len() int {
	return len(r.order)
}

// Coordinates returns a copy of the coordinates in insertion order
func (r *ReachableSet) Coordinates() []world.MapCoordinate {
	out := make([]world.MapCoordinate, len(r.order))
	copy(out, r.order)
	return out
}

// Each calls fn for every coordinate in insertion order
func (r *ReachableSet) Each(fn func(pos world.MapCoordinate)) {
	for _, pos := range r.order {
		fn(pos)
	}
}

// Equal reports whether both sets hold the same coordinates, ignoring order
func (r *ReachableSet) Equal(o *ReachableSet) bool {
	if r.Len() != o.Len() {
		return false
	}
	for _, pos := range r.order {
		if !o.Has(pos) {
			return false
		}
	}
	return true
}

// Reset empties the set so it can be reused for another walk
func (r *ReachableSet) Reset() {
	r.order = r.order[:0]
	r.seen = mapset.New[world.MapCoordinate]()
}
