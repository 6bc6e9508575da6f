package knowledge

import (
	"fmt"
	"sort"
)

// A Cell is a position on the grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// less is the row-major order used to keep cell lists canonical.
func (c Cell) less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// An Evidence is a revealed cell, associated with the number of mines among its neighbours.
type Evidence struct {
	Cell  Cell
	Count int
}

// A Grid describes the bounds of the board. It is fixed for the lifetime of an agent.
type Grid struct {
	Height int
	Width  int
}

// Contains is true iff c is within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Size returns the total number of cells.
func (g Grid) Size() int {
	return g.Height * g.Width
}

// Neighbors returns the cells at distance 1 of c, in row-major order.
// c itself is not part of the result.
func (g Grid) Neighbors(c Cell) []Cell {
	res := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if g.Contains(n) {
				res = append(res, n)
			}
		}
	}
	return res
}

// Cells returns all the cells of the grid, in row-major order.
func (g Grid) Cells() []Cell {
	res := make([]Cell, 0, g.Size())
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			res = append(res, Cell{Row: r, Col: c})
		}
	}
	return res
}

// A cellSet is a set of cells.
type cellSet map[Cell]struct{}

func (s cellSet) has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// sorted returns the content of the set in row-major order.
func (s cellSet) sorted() []Cell {
	res := make([]Cell, 0, len(s))
	for c := range s {
		res = append(res, c)
	}
	sortCells(res)
	return res
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].less(cells[j]) })
}
