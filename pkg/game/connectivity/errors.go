package connectivity

import "errors"

var (
	// ErrNilArgument indicates Walk was called without a grid or output set.
	ErrNilArgument = errors.New("connectivity: grid and output set must not be nil")
	// ErrOutOfBounds indicates the start coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("connectivity: start coordinate is out of bounds")
	// ErrNotConnective indicates the start tile accepts traffic on no side.
	ErrNotConnective = errors.New("connectivity: start tile is not connective")
)
