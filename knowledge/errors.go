package knowledge

import "errors"

var (
	// ErrInvalidGrid is returned when an agent is created with a non-positive dimension.
	ErrInvalidGrid = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a cell is not within the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrAlreadyMoved is returned when evidence is given twice for the same cell.
	ErrAlreadyMoved = errors.New("cell already revealed")
	// ErrInvalidCount is returned when a mine count cannot fit the cells it applies to.
	ErrInvalidCount = errors.New("invalid mine count")
	// ErrContradiction is returned when the evidence is not consistent anymore,
	// i.e when a cell would be both a mine and safe.
	ErrContradiction = errors.New("contradictory evidence")
)
