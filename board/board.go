package board

import (
	"fmt"

	"github.com/crillab/sweeper/knowledge"
)

// A Board is a grid with mines placed on some of its cells.
type Board struct {
	grid    knowledge.Grid
	mines   map[knowledge.Cell]bool
	flagged map[knowledge.Cell]bool
}

// New returns a board of the given dimensions with mines on the given cells.
func New(height, width int, mines []knowledge.Cell) (*Board, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", knowledge.ErrInvalidGrid, height, width)
	}
	b := &Board{
		grid:    knowledge.Grid{Height: height, Width: width},
		mines:   make(map[knowledge.Cell]bool, len(mines)),
		flagged: make(map[knowledge.Cell]bool),
	}
	for _, m := range mines {
		if !b.grid.Contains(m) {
			return nil, fmt.Errorf("invalid mine %v: %w", m, knowledge.ErrOutOfBounds)
		}
		b.mines[m] = true
	}
	return b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.Height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.Width }

// Grid returns the bounds of the board.
func (b *Board) Grid() knowledge.Grid { return b.grid }

// NbMines returns the number of mines on the board.
func (b *Board) NbMines() int { return len(b.mines) }

// IsMine is true iff there is a mine on c.
func (b *Board) IsMine(c knowledge.Cell) bool {
	return b.mines[c]
}

// Mines returns the cells holding a mine, in row-major order.
func (b *Board) Mines() []knowledge.Cell {
	var res []knowledge.Cell
	for _, c := range b.grid.Cells() {
		if b.mines[c] {
			res = append(res, c)
		}
	}
	return res
}

// NearbyMines returns the number of mines among the neighbours of c, c itself excluded.
func (b *Board) NearbyMines(c knowledge.Cell) int {
	count := 0
	for _, n := range b.grid.Neighbors(c) {
		if b.mines[n] {
			count++
		}
	}
	return count
}

// Flag records that the player believes there is a mine on c.
func (b *Board) Flag(c knowledge.Cell) error {
	if !b.grid.Contains(c) {
		return fmt.Errorf("could not flag %v: %w", c, knowledge.ErrOutOfBounds)
	}
	b.flagged[c] = true
	return nil
}

// Won is true iff the flagged cells are exactly the mines.
func (b *Board) Won() bool {
	if len(b.flagged) != len(b.mines) {
		return false
	}
	for c := range b.flagged {
		if !b.mines[c] {
			return false
		}
	}
	return true
}
