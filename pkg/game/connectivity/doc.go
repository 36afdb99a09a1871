// Package connectivity answers "which tiles are joined to this one" on a tile map.
//
// Walk runs a depth-first traversal from a start coordinate and collects every
// coordinate reachable through sides the grid reports as open. The traversal uses
// an explicit work stack, so serpentine tube networks on large maps cannot exhaust
// the goroutine stack.
//
// A Grid only has to answer two questions: whether a coordinate is on the map, and
// whether the tile there accepts traffic entering through a given side. Grids whose
// tiles also restrict which sides traffic may leave through implement
// ExitRestrictor as well.
//
// Errors:
//
//   - ErrNilArgument: the grid or output set is nil.
//   - ErrOutOfBounds: the start coordinate is outside the grid.
//   - ErrNotConnective: the start tile accepts traffic on no side.
//
// Walk performs no traversal and leaves the output untouched when it returns an error.
package connectivity
