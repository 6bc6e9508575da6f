// Package game plays minesweeper games, letting a knowledge.Agent choose moves on a board.Board.
package game

import (
	"fmt"

	"github.com/crillab/sweeper/board"
	"github.com/crillab/sweeper/knowledge"
	"go.uber.org/zap"
)

// A Strategy tells how a move was chosen.
type Strategy byte

const (
	// Safe means the cell was known to be safe.
	Safe = Strategy(iota)
	// Random means no cell was known to be safe and the move is a guess.
	Random
)

func (s Strategy) String() string {
	switch s {
	case Safe:
		return "SAFE"
	case Random:
		return "RANDOM"
	default:
		panic("invalid strategy")
	}
}

// An Outcome is the way a game ended.
type Outcome byte

const (
	// Won means every safe cell was revealed or every mine was flagged.
	Won = Outcome(iota)
	// Lost means a mine was revealed.
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		panic("invalid outcome")
	}
}

// A Move is a cell revealed during a game.
type Move struct {
	Cell     knowledge.Cell
	Strategy Strategy
	Count    int // Number of neighbouring mines, or -1 if the cell was a mine
}

// A Result describes a finished game.
type Result struct {
	Outcome Outcome
	Moves   []Move
	Flagged []knowledge.Cell // Cells flagged as mines, in row-major order
}

// NbGuesses returns the number of moves that were not known to be safe.
func (r *Result) NbGuesses() int {
	nb := 0
	for _, m := range r.Moves {
		if m.Strategy == Random {
			nb++
		}
	}
	return nb
}

// Play lets a play on b until it wins or reveals a mine.
// Safe moves are always preferred to random ones. Each cell the agent finds to be a mine is flagged.
// a must be a fresh agent whose grid has the dimensions of b.
func Play(b *board.Board, a *knowledge.Agent, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if a.Grid() != b.Grid() {
		return nil, fmt.Errorf("agent grid %dx%d does not match board %dx%d", a.Height(), a.Width(), b.Height(), b.Width())
	}
	var res Result
	nbSafe := b.Grid().Size() - b.NbMines()
	for {
		if len(a.MovesMade()) == nbSafe || (b.NbMines() > 0 && b.Won()) {
			res.Outcome = Won
			break
		}
		strategy := Safe
		c, ok := a.MakeSafeMove()
		if !ok {
			strategy = Random
			if c, ok = a.MakeRandomMove(); !ok {
				// Every cell left is a known mine.
				res.Outcome = Won
				break
			}
		}
		if b.IsMine(c) {
			res.Moves = append(res.Moves, Move{Cell: c, Strategy: strategy, Count: -1})
			logger.Debug("mine revealed", zap.Stringer("cell", c), zap.Stringer("strategy", strategy))
			res.Outcome = Lost
			break
		}
		count := b.NearbyMines(c)
		res.Moves = append(res.Moves, Move{Cell: c, Strategy: strategy, Count: count})
		logger.Debug("move", zap.Stringer("cell", c), zap.Stringer("strategy", strategy), zap.Int("count", count))
		if err := a.IntegrateEvidence(c, count); err != nil {
			return nil, fmt.Errorf("could not play %v: %w", c, err)
		}
		for _, m := range a.Mines() {
			if err := b.Flag(m); err != nil {
				return nil, err
			}
		}
	}
	res.Flagged = a.Mines()
	logger.Info("game over",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("moves", len(res.Moves)),
		zap.Int("guesses", res.NbGuesses()),
		zap.Int("flagged", len(res.Flagged)))
	return &res, nil
}
