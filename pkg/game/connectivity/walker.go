package connectivity

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"outpost/pkg/engine/world"
)

// Grid is the read-only view of a tile map that Walk traverses.
// Implementations must answer CanEnterFrom only for in-bounds positions;
// Walk never asks about a position that fails IsValidPosition.
type Grid interface {
	IsValidPosition(pos world.MapCoordinate) bool
	CanEnterFrom(pos world.MapCoordinate, side world.Direction) bool
}

// ExitRestrictor is implemented by grids whose tiles also limit the sides
// traffic may leave through. Walk then requires both the tile being left and
// the tile being entered to be open on the shared edge.
type ExitRestrictor interface {
	CanExitTo(pos world.MapCoordinate, side world.Direction) bool
}

// walker holds the state of a single traversal
type walker struct {
	grid  Grid
	exits ExitRestrictor
	out   *ReachableSet
	work  *stack.Stack[world.MapCoordinate]
}

// Walk collects into out every coordinate reachable from start.
//
// The start coordinate is added first. Neighbors are expanded North, East,
// South, West from a LIFO work stack, so for a given grid the insertion order
// of out is reproducible. Coordinates already present in out are treated as
// visited, which lets a caller accumulate several walks into one set.
//
// Walk fails fast with ErrOutOfBounds or ErrNotConnective when start is not a
// usable starting tile; out is left untouched in that case.
func Walk(start world.MapCoordinate, grid Grid, out *ReachableSet) error {
	if grid == nil || out == nil {
		return ErrNilArgument
	}
	if !grid.IsValidPosition(start) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}
	if !isConnective(grid, start) {
		return fmt.Errorf("%w: %v", ErrNotConnective, start)
	}

	w := &walker{
		grid: grid,
		out:  out,
		work: stack.New[world.MapCoordinate](),
	}
	if exits, ok := grid.(ExitRestrictor); ok {
		w.exits = exits
	}

	w.visit(start)
	w.run()
	return nil
}

// Reachable is a convenience wrapper that walks into a fresh set
func Reachable(start world.MapCoordinate, grid Grid) (*ReachableSet, error) {
	out := NewReachableSet()
	if err := Walk(start, grid, out); err != nil {
		return nil, err
	}
	return out, nil
}

func isConnective(grid Grid, pos world.MapCoordinate) bool {
	for _, dir := range world.AllDirections() {
		if grid.CanEnterFrom(pos, dir) {
			return true
		}
	}
	return false
}

func (w *walker) visit(pos world.MapCoordinate) {
	w.out.Add(pos)
	w.work.Push(pos)
}

func (w *walker) run() {
	for w.work.Size() > 0 {
		current := w.work.Pop()
		for _, dir := range world.AllDirections() {
			w.check(current, dir)
		}
	}
}

// check visits the neighbor of from in direction dir if the shared edge is open
func (w *walker) check(from world.MapCoordinate, dir world.Direction) {
	next := from.Translate(dir)
	if !w.grid.IsValidPosition(next) {
		return
	}
	if w.out.Has(next) {
		return
	}
	if w.exits != nil && !w.exits.CanExitTo(from, dir) {
		return
	}
	if !w.grid.CanEnterFrom(next, dir.Opposite()) {
		return
	}
	w.visit(next)
}
