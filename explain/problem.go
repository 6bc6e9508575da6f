package explain

import (
	"fmt"
	"strings"

	"github.com/crillab/gophersat/solver"
	"github.com/crillab/sweeper/knowledge"
)

// A Verdict is what the evidence entails about a cell.
type Verdict byte

const (
	// Unknown means the cell can be either a mine or safe.
	Unknown = Verdict(iota)
	// Safe means the cell cannot be a mine.
	Safe
	// Mine means the cell must be a mine.
	Mine
)

func (v Verdict) String() string {
	switch v {
	case Unknown:
		return "UNKNOWN"
	case Safe:
		return "SAFE"
	case Mine:
		return "MINE"
	default:
		panic("invalid verdict")
	}
}

// A Problem is the set of pseudo-boolean constraints stated by some evidence about a grid.
// Each cell is associated with a boolean variable, true iff the cell is a mine.
// This package does not use the agent's representation: the constraints only come from
// the raw evidence, so that the agent's deductions can be checked independently.
type Problem struct {
	grid    knowledge.Grid
	constrs []solver.PBConstr
}

// New returns the problem associated with the given evidence.
func New(grid knowledge.Grid, evidence []knowledge.Evidence) (*Problem, error) {
	pb := &Problem{grid: grid}
	for _, e := range evidence {
		if !grid.Contains(e.Cell) {
			return nil, fmt.Errorf("could not use evidence on %v: %w", e.Cell, knowledge.ErrOutOfBounds)
		}
		neighbors := grid.Neighbors(e.Cell)
		if e.Count < 0 || e.Count > len(neighbors) {
			return nil, fmt.Errorf("could not use evidence on %v: %w", e.Cell, knowledge.ErrInvalidCount)
		}
		pb.add(solver.PropClause(-pb.lit(e.Cell)))
		pb.add(solver.AtLeast(pb.lits(neighbors), e.Count))
		pb.add(solver.AtMost(pb.lits(neighbors), e.Count))
	}
	return pb, nil
}

// FromAgent returns the problem associated with the evidence the agent received.
func FromAgent(a *knowledge.Agent) (*Problem, error) {
	return New(a.Grid(), a.Evidence())
}

// add appends c to the problem, unless it is trivially satisfied.
func (pb *Problem) add(c solver.PBConstr) {
	if c.AtLeast > 0 {
		pb.constrs = append(pb.constrs, c)
	}
}

// lit returns the CNF literal associated with c. Variables start at 1.
func (pb *Problem) lit(c knowledge.Cell) int {
	return c.Row*pb.grid.Width + c.Col + 1
}

func (pb *Problem) lits(cells []knowledge.Cell) []int {
	res := make([]int, len(cells))
	for i, c := range cells {
		res[i] = pb.lit(c)
	}
	return res
}

// sat solves the problem, with the given literal forced to true if it is not 0.
func (pb *Problem) sat(lit int) bool {
	constrs := make([]solver.PBConstr, len(pb.constrs), len(pb.constrs)+1)
	copy(constrs, pb.constrs)
	if lit != 0 {
		constrs = append(constrs, solver.PropClause(lit))
	}
	if len(constrs) == 0 {
		return true
	}
	s := solver.New(solver.ParsePBConstrs(constrs))
	return s.Solve() == solver.Sat
}

// Consistent is true iff at least one placement of mines agrees with the evidence.
func (pb *Problem) Consistent() bool {
	return pb.sat(0)
}

// Entailed returns what the evidence entails about c.
// The result is meaningless if the problem is not consistent.
func (pb *Problem) Entailed(c knowledge.Cell) Verdict {
	if !pb.grid.Contains(c) {
		return Unknown
	}
	v := pb.lit(c)
	switch {
	case !pb.sat(v):
		return Safe
	case !pb.sat(-v):
		return Mine
	default:
		return Unknown
	}
}

// PBString returns a representation of the problem in the OPB format.
func (pb *Problem) PBString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "* #variable= %d #constraint= %d\n", pb.grid.Size(), len(pb.constrs))
	for _, c := range pb.constrs {
		for _, l := range c.Lits {
			if l < 0 {
				fmt.Fprintf(&sb, "+1 ~x%d ", -l)
			} else {
				fmt.Fprintf(&sb, "+1 x%d ", l)
			}
		}
		fmt.Fprintf(&sb, ">= %d ;\n", c.AtLeast)
	}
	return sb.String()
}
