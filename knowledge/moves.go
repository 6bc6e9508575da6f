package knowledge

// MakeSafeMove returns a cell known to be safe that was not played yet.
// When several cells are eligible, the first one in row-major order is returned.
// The second return value is false if no such cell exists.
// The agent is not modified.
func (a *Agent) MakeSafeMove() (Cell, bool) {
	for _, c := range a.safes.sorted() {
		if !a.movesMade.has(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// MakeRandomMove returns a cell, chosen uniformly among the cells that were neither played
// nor known to be mines.
// The second return value is false if no such cell exists.
func (a *Agent) MakeRandomMove() (Cell, bool) {
	candidates := make([]Cell, 0, a.grid.Size()-len(a.movesMade))
	for _, c := range a.grid.Cells() {
		if !a.movesMade.has(c) && !a.mines.has(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[a.rand.IntN(len(candidates))], true
}

// Height returns the number of rows of the grid.
func (a *Agent) Height() int { return a.grid.Height }

// Width returns the number of columns of the grid.
func (a *Agent) Width() int { return a.grid.Width }

// Grid returns the bounds of the grid.
func (a *Agent) Grid() Grid { return a.grid }

// InBounds is true iff c is within the grid.
func (a *Agent) InBounds(c Cell) bool { return a.grid.Contains(c) }

// Neighbors returns the cells adjacent to c, in row-major order.
func (a *Agent) Neighbors(c Cell) []Cell { return a.grid.Neighbors(c) }

// Mines returns the cells known to be mines, in row-major order.
func (a *Agent) Mines() []Cell { return a.mines.sorted() }

// Safes returns the cells known to be safe, in row-major order.
func (a *Agent) Safes() []Cell { return a.safes.sorted() }

// MovesMade returns the cells that were revealed, in row-major order.
func (a *Agent) MovesMade() []Cell { return a.movesMade.sorted() }

// IsMine is true iff c is known to be a mine.
func (a *Agent) IsMine(c Cell) bool { return a.mines.has(c) }

// IsSafe is true iff c is known to be safe.
func (a *Agent) IsSafe(c Cell) bool { return a.safes.has(c) }

// Moved is true iff c was revealed.
func (a *Agent) Moved(c Cell) bool { return a.movesMade.has(c) }

// Knowledge returns a copy of the sentences currently known.
func (a *Agent) Knowledge() []Sentence {
	res := make([]Sentence, len(a.knowledge))
	for i, s := range a.knowledge {
		res[i] = s.clone()
	}
	return res
}

// Evidence returns the revealed cells and their counts, in the order they were given.
func (a *Agent) Evidence() []Evidence {
	res := make([]Evidence, len(a.evidence))
	copy(res, a.evidence)
	return res
}
