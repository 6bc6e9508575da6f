package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// A Sentence is a logical statement about the grid: exactly Count of its cells are mines.
// Cells are kept sorted in row-major order and without duplicates, so that two sentences
// can be compared cheaply.
type Sentence struct {
	cells []Cell
	count int
}

// NewSentence returns the sentence stating that exactly count of the given cells are mines.
// Duplicate cells are ignored.
func NewSentence(cells []Cell, count int) (Sentence, error) {
	cs := make([]Cell, len(cells))
	copy(cs, cells)
	sortCells(cs)
	j := 0
	for i, c := range cs {
		if i > 0 && c == cs[j-1] {
			continue
		}
		cs[j] = c
		j++
	}
	cs = cs[:j]
	if count < 0 || count > len(cs) {
		return Sentence{}, fmt.Errorf("%w: %d mines among %d cells", ErrInvalidCount, count, len(cs))
	}
	return Sentence{cells: cs, count: count}, nil
}

// Cells returns a copy of the cells of the sentence.
func (s Sentence) Cells() []Cell {
	res := make([]Cell, len(s.cells))
	copy(res, s.cells)
	return res
}

// Count returns the number of mines among the cells.
func (s Sentence) Count() int {
	return s.count
}

// Len returns the number of cells.
func (s Sentence) Len() int {
	return len(s.cells)
}

// IsEmpty is true iff the sentence has no cell left. Such a sentence carries no information.
func (s Sentence) IsEmpty() bool {
	return len(s.cells) == 0
}

func (s Sentence) index(c Cell) int {
	i := sort.Search(len(s.cells), func(i int) bool { return !s.cells[i].less(c) })
	if i < len(s.cells) && s.cells[i] == c {
		return i
	}
	return -1
}

// Contains is true iff c is one of the cells of the sentence.
func (s Sentence) Contains(c Cell) bool {
	return s.index(c) != -1
}

// KnownMines returns all the cells if all of them must be mines, nil else.
func (s Sentence) KnownMines() []Cell {
	if len(s.cells) == 0 || s.count != len(s.cells) {
		return nil
	}
	return s.Cells()
}

// KnownSafes returns all the cells if none of them can be a mine, nil else.
func (s Sentence) KnownSafes() []Cell {
	if len(s.cells) == 0 || s.count != 0 {
		return nil
	}
	return s.Cells()
}

// MarkMine updates the sentence given the fact that c is a mine.
// If c is a member, it is removed and the count is decremented.
// If the count was already 0, the sentence is not modified and ErrContradiction is returned.
func (s *Sentence) MarkMine(c Cell) error {
	i := s.index(c)
	if i == -1 {
		return nil
	}
	if s.count == 0 {
		return fmt.Errorf("%w: %v is a mine but %v has no mine left", ErrContradiction, c, s)
	}
	s.remove(i)
	s.count--
	return nil
}

// MarkSafe updates the sentence given the fact that c is safe.
// If c is a member, it is removed and the count is left unchanged.
// If all remaining cells were mines, the sentence is not modified and ErrContradiction is returned.
func (s *Sentence) MarkSafe(c Cell) error {
	i := s.index(c)
	if i == -1 {
		return nil
	}
	if s.count == len(s.cells) {
		return fmt.Errorf("%w: %v is safe but all cells of %v are mines", ErrContradiction, c, s)
	}
	s.remove(i)
	return nil
}

// remove deletes the ith cell.
// A new array is allocated, since copies of s may still share the old one.
func (s *Sentence) remove(i int) {
	cells := make([]Cell, 0, len(s.cells)-1)
	cells = append(cells, s.cells[:i]...)
	s.cells = append(cells, s.cells[i+1:]...)
}

// Equal is true iff both sentences have the same cells and the same count.
func (s Sentence) Equal(other Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// IsSubset is true iff all the cells of s are cells of other.
func (s Sentence) IsSubset(other Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	j := 0
	for _, c := range s.cells {
		for j < len(other.cells) && other.cells[j].less(c) {
			j++
		}
		if j == len(other.cells) || other.cells[j] != c {
			return false
		}
		j++
	}
	return true
}

// difference returns the cells of s that are not in sub.
func (s Sentence) difference(sub Sentence) []Cell {
	res := make([]Cell, 0, len(s.cells)-len(sub.cells))
	for _, c := range s.cells {
		if !sub.Contains(c) {
			res = append(res, c)
		}
	}
	return res
}

// key is a canonical representation of the sentence, used for deduplication.
func (s Sentence) key() string {
	var sb strings.Builder
	for _, c := range s.cells {
		fmt.Fprintf(&sb, "%d:%d,", c.Row, c.Col)
	}
	fmt.Fprintf(&sb, "=%d", s.count)
	return sb.String()
}

func (s Sentence) clone() Sentence {
	return Sentence{cells: s.Cells(), count: s.count}
}

// String returns a representation of the sentence, such as "{(0,1), (1,1)} = 1".
func (s Sentence) String() string {
	strs := make([]string, len(s.cells))
	for i, c := range s.cells {
		strs[i] = c.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(strs, ", "), s.count)
}
