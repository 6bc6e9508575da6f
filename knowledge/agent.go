package knowledge

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Stats are statistics about the inferences made by an agent.
type Stats struct {
	NbEvidence int // Number of revealed cells integrated so far
	NbPasses   int // Total number of fixpoint passes
	LastPasses int // Number of fixpoint passes run by the last call to IntegrateEvidence
	NbDerived  int // Number of sentences added through subset inference
	NbMines    int // Number of cells known to be mines
	NbSafes    int // Number of cells known to be safe
}

// An Agent maintains a knowledge base about a grid and deduces from it which cells are mines
// and which cells are safe.
type Agent struct {
	Stats     Stats
	grid      Grid
	movesMade cellSet
	safes     cellSet
	mines     cellSet
	knowledge []Sentence // Owned by the agent; sentences are mutated in place
	evidence  []Evidence
	err       error // Non-nil once the evidence was proven inconsistent
	logger    *zap.Logger
	rand      *rand.Rand
}

// An Option configures an agent.
type Option func(*Agent)

// WithLogger sets the logger used to trace inferences. By default, nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRand sets the source of randomness used by MakeRandomMove.
func WithRand(r *rand.Rand) Option {
	return func(a *Agent) {
		if r != nil {
			a.rand = r
		}
	}
}

// New returns an agent knowing nothing about a grid of the given dimensions.
func New(height, width int, opts ...Option) (*Agent, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, height, width)
	}
	a := &Agent{
		grid:      Grid{Height: height, Width: width},
		movesMade: make(cellSet),
		safes:     make(cellSet),
		mines:     make(cellSet),
		logger:    zap.NewNop(),
		rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// IntegrateEvidence is called when the game reveals the safe cell c, which has count mines among its neighbours.
// The cell is marked as played and safe, a new sentence is built from its unknown neighbours,
// and inference runs until no more cell can be deduced and no more sentence can be derived.
//
// The call is rejected without modifying the agent if c is out of bounds, if it was already revealed,
// or if count cannot fit its neighbours.
// If the evidence contradicts what is already known, ErrContradiction is returned and the agent
// will reject any further evidence.
func (a *Agent) IntegrateEvidence(c Cell, count int) error {
	if a.err != nil {
		return a.err
	}
	if !a.grid.Contains(c) {
		return fmt.Errorf("could not integrate %v: %w", c, ErrOutOfBounds)
	}
	if a.movesMade.has(c) {
		return fmt.Errorf("could not integrate %v: %w", c, ErrAlreadyMoved)
	}
	neighbors := a.grid.Neighbors(c)
	if count < 0 || count > len(neighbors) {
		return fmt.Errorf("could not integrate %v: %w: %d mines among %d neighbours", c, ErrInvalidCount, count, len(neighbors))
	}
	if a.mines.has(c) {
		return fmt.Errorf("could not integrate %v: %w: cell is known to be a mine", c, ErrContradiction)
	}
	if err := a.checkSafe(c); err != nil {
		return fmt.Errorf("could not integrate %v: %w", c, err)
	}
	unknowns := make([]Cell, 0, len(neighbors))
	mineCount := count
	for _, n := range neighbors {
		switch {
		case a.mines.has(n):
			mineCount--
		case a.safes.has(n):
		default:
			unknowns = append(unknowns, n)
		}
	}
	s, err := NewSentence(unknowns, mineCount)
	if err != nil {
		return fmt.Errorf("could not integrate %v: %w: %v", c, ErrContradiction, err)
	}

	a.movesMade[c] = struct{}{}
	a.evidence = append(a.evidence, Evidence{Cell: c, Count: count})
	a.Stats.NbEvidence++
	evidenceTotal.Inc()
	if err := a.MarkSafe(c); err != nil {
		return a.fail(err)
	}
	if !s.IsEmpty() && !a.knows(s) {
		a.knowledge = append(a.knowledge, s)
	}
	if err := a.infer(); err != nil {
		return a.fail(err)
	}
	return nil
}

// fail makes the agent inconsistent and returns the associated error.
func (a *Agent) fail(err error) error {
	a.err = fmt.Errorf("inconsistent knowledge: %w", err)
	a.logger.Warn("evidence is contradictory", zap.Error(err))
	return a.err
}

// Err returns a non-nil error iff the agent received contradictory evidence.
func (a *Agent) Err() error {
	return a.err
}

// infer runs fixpoint passes until a pass neither marks a new cell nor derives a new sentence.
func (a *Agent) infer() error {
	passes := 0
	for {
		passes++
		marked, err := a.propagate()
		if err != nil {
			return err
		}
		a.cleanup()
		derived, err := a.resolveSubsets()
		if err != nil {
			return err
		}
		a.logger.Debug("fixpoint pass",
			zap.Int("pass", passes),
			zap.Int("marked", marked),
			zap.Int("derived", derived),
			zap.Int("sentences", len(a.knowledge)))
		if marked == 0 && derived == 0 {
			break
		}
	}
	a.Stats.LastPasses = passes
	a.Stats.NbPasses += passes
	passesTotal.Add(float64(passes))
	passesPerEvidence.Observe(float64(passes))
	return nil
}

// propagate collects every cell a sentence proves to be a mine or safe, then marks them in the whole knowledge base.
// It returns the number of cells that were not known before.
func (a *Agent) propagate() (int, error) {
	mines := make(cellSet)
	safes := make(cellSet)
	for _, s := range a.knowledge {
		for _, c := range s.KnownMines() {
			mines[c] = struct{}{}
		}
		for _, c := range s.KnownSafes() {
			safes[c] = struct{}{}
		}
	}
	nbNew := 0
	for _, c := range mines.sorted() {
		if safes.has(c) {
			return nbNew, fmt.Errorf("%w: %v is proven both mine and safe", ErrContradiction, c)
		}
		if !a.mines.has(c) {
			nbNew++
		}
		if err := a.MarkMine(c); err != nil {
			return nbNew, err
		}
	}
	for _, c := range safes.sorted() {
		if !a.safes.has(c) {
			nbNew++
		}
		if err := a.MarkSafe(c); err != nil {
			return nbNew, err
		}
	}
	return nbNew, nil
}

// cleanup removes empty and duplicate sentences.
func (a *Agent) cleanup() {
	seen := make(map[string]struct{}, len(a.knowledge))
	j := 0
	for _, s := range a.knowledge {
		if s.IsEmpty() {
			continue
		}
		k := s.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		a.knowledge[j] = s
		j++
	}
	a.knowledge = a.knowledge[:j]
}

// resolveSubsets derives (B - A) = B.count - A.count for every pair of sentences A, B such that A's cells
// are a strict subset of B's cells. Each ordered pair is considered once.
// It returns the number of sentences that were added.
func (a *Agent) resolveSubsets() (int, error) {
	known := make(map[string]struct{}, len(a.knowledge))
	for _, s := range a.knowledge {
		known[s.key()] = struct{}{}
	}
	nb := len(a.knowledge)
	derived := 0
	for i := 0; i < nb; i++ {
		sub := a.knowledge[i]
		for j := 0; j < nb; j++ {
			if i == j {
				continue
			}
			super := a.knowledge[j]
			if sub.IsEmpty() || !sub.IsSubset(super) {
				continue
			}
			if sub.Len() == super.Len() {
				if sub.count != super.count {
					return derived, fmt.Errorf("%w: %v and %v", ErrContradiction, sub, super)
				}
				continue
			}
			s, err := NewSentence(super.difference(sub), super.count-sub.count)
			if err != nil {
				return derived, fmt.Errorf("%w: %v cannot be a subset of %v: %v", ErrContradiction, sub, super, err)
			}
			k := s.key()
			if _, ok := known[k]; ok {
				continue
			}
			known[k] = struct{}{}
			a.knowledge = append(a.knowledge, s)
			derived++
		}
	}
	a.Stats.NbDerived += derived
	derivedTotal.Add(float64(derived))
	return derived, nil
}

// knows is true iff s is already part of the knowledge base.
func (a *Agent) knows(s Sentence) bool {
	for _, s2 := range a.knowledge {
		if s.Equal(s2) {
			return true
		}
	}
	return false
}

// checkMine returns an error if marking c as a mine would contradict the knowledge base.
func (a *Agent) checkMine(c Cell) error {
	if a.safes.has(c) {
		return fmt.Errorf("%w: %v is known to be safe", ErrContradiction, c)
	}
	for _, s := range a.knowledge {
		if s.count == 0 && s.Contains(c) {
			return fmt.Errorf("%w: %v is a mine but %v has no mine left", ErrContradiction, c, s)
		}
	}
	return nil
}

// checkSafe returns an error if marking c as safe would contradict the knowledge base.
func (a *Agent) checkSafe(c Cell) error {
	if a.mines.has(c) {
		return fmt.Errorf("%w: %v is known to be a mine", ErrContradiction, c)
	}
	for _, s := range a.knowledge {
		if s.count == s.Len() && s.Contains(c) {
			return fmt.Errorf("%w: %v is safe but all cells of %v are mines", ErrContradiction, c, s)
		}
	}
	return nil
}

// MarkMine records c as a mine and removes it from every sentence.
// Marking the same cell twice has no further effect.
// The agent is left untouched if c is out of bounds or if it cannot be a mine.
func (a *Agent) MarkMine(c Cell) error {
	if !a.grid.Contains(c) {
		return fmt.Errorf("could not mark %v: %w", c, ErrOutOfBounds)
	}
	if err := a.checkMine(c); err != nil {
		return err
	}
	if !a.mines.has(c) {
		a.mines[c] = struct{}{}
		a.Stats.NbMines++
		deducedTotal.WithLabelValues("mine").Inc()
	}
	for i := range a.knowledge {
		if err := a.knowledge[i].MarkMine(c); err != nil {
			panic(fmt.Sprintf("unchecked contradiction in %v: %v", a.knowledge[i], err))
		}
	}
	return nil
}

// MarkSafe records c as safe and removes it from every sentence.
// Marking the same cell twice has no further effect.
// The agent is left untouched if c is out of bounds or if it cannot be safe.
func (a *Agent) MarkSafe(c Cell) error {
	if !a.grid.Contains(c) {
		return fmt.Errorf("could not mark %v: %w", c, ErrOutOfBounds)
	}
	if err := a.checkSafe(c); err != nil {
		return err
	}
	if !a.safes.has(c) {
		a.safes[c] = struct{}{}
		a.Stats.NbSafes++
		deducedTotal.WithLabelValues("safe").Inc()
	}
	for i := range a.knowledge {
		if err := a.knowledge[i].MarkSafe(c); err != nil {
			panic(fmt.Sprintf("unchecked contradiction in %v: %v", a.knowledge[i], err))
		}
	}
	return nil
}
