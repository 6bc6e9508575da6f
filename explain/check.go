// Package explain provides facilities to check and understand the deductions of a knowledge.Agent.
//
// The evidence received by an agent is translated into pseudo-boolean constraints and handed
// to the gophersat solver. A cell is entailed safe iff the problem becomes UNSAT once the cell
// is supposed to be a mine, and entailed mine iff it becomes UNSAT once the cell is supposed safe.
// This is complete, contrary to the agent's inference, which only uses subset resolution.
package explain

import (
	"fmt"

	"github.com/crillab/sweeper/knowledge"
)

// A Report compares the deductions of an agent with what the evidence entails.
type Report struct {
	Mines   []knowledge.Cell // Unrevealed cells entailed to be mines
	Safes   []knowledge.Cell // Unrevealed cells entailed to be safe
	Unsound []knowledge.Cell // Cells the agent deduced, but that are not entailed that way
	Missed  []knowledge.Cell // Cells entailed safe or mine, but unknown to the agent
}

// Sound is true iff every deduction of the agent is entailed by its evidence.
func (r *Report) Sound() bool {
	return len(r.Unsound) == 0
}

// Complete is true iff the agent found every cell the evidence is enough to know about.
func (r *Report) Complete() bool {
	return len(r.Missed) == 0
}

// Audit checks every deduction of a against its evidence.
// An error is returned if the evidence itself is inconsistent.
func Audit(a *knowledge.Agent) (*Report, error) {
	pb, err := FromAgent(a)
	if err != nil {
		return nil, err
	}
	if !pb.Consistent() {
		return nil, fmt.Errorf("could not audit agent: %w", knowledge.ErrContradiction)
	}
	var r Report
	for _, c := range a.Grid().Cells() {
		if a.Moved(c) {
			continue
		}
		v := pb.Entailed(c)
		switch v {
		case Mine:
			r.Mines = append(r.Mines, c)
		case Safe:
			r.Safes = append(r.Safes, c)
		}
		switch {
		case a.IsMine(c) && v != Mine, a.IsSafe(c) && v != Safe:
			r.Unsound = append(r.Unsound, c)
		case v != Unknown && !a.IsMine(c) && !a.IsSafe(c):
			r.Missed = append(r.Missed, c)
		}
	}
	return &r, nil
}
