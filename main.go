package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/crillab/sweeper/board"
	"github.com/crillab/sweeper/explain"
	"github.com/crillab/sweeper/game"
	"github.com/crillab/sweeper/internal/config"
	"github.com/crillab/sweeper/internal/logging"
	"github.com/crillab/sweeper/knowledge"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// A session holds what every subcommand needs once flags are parsed.
type session struct {
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	var s session
	root := &cobra.Command{
		Use:   "sweeper",
		Short: "Minesweeper agent that only plays moves it knows to be safe",
		Long: `sweeper plays minesweeper boards with a knowledge-based agent.

The agent keeps a set of sentences "exactly n of these cells are mines" and
deduces from them which cells are safe and which are mines. It only guesses
when no safe cell is known.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(s.configPath)
			if err != nil {
				return err
			}
			if s.verbose {
				cfg.Log.Level = "debug"
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVar(&s.verbose, "verbose", false, "log every inference pass")
	root.AddCommand(newPlayCmd(&s), newDeduceCmd(&s))
	return root
}

func newPlayCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "play [board-file]",
		Short: "Let the agent play a whole game on a board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, b, err := s.loadBoard(args)
			if err != nil {
				return err
			}
			logger := s.logger.With(zap.String("game", uuid.NewString()), zap.String("board", path))
			a, err := s.newAgent(b, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "c playing %s (%dx%d, %d mines)\n", path, b.Height(), b.Width(), b.NbMines())
			res, err := game.Play(b, a, logger)
			if err != nil {
				return err
			}
			for _, m := range res.Moves {
				fmt.Fprintf(out, "%-6s %v %d\n", m.Strategy, m.Cell, m.Count)
			}
			fmt.Fprintln(out, res.Outcome)
			fmt.Fprintf(out, "c nb moves: %d\nc nb guesses: %d\nc nb flagged: %d\n", len(res.Moves), res.NbGuesses(), len(res.Flagged))
			fmt.Fprintf(out, "c nb passes: %d\nc nb derived: %d\n", a.Stats.NbPasses, a.Stats.NbDerived)
			return nil
		},
	}
}

func newDeduceCmd(s *session) *cobra.Command {
	var (
		reveal []string
		opb    bool
	)
	cmd := &cobra.Command{
		Use:   "deduce [board-file]",
		Short: "Reveal some cells and show what the agent deduces from them",
		Long: `Reveals the given cells in order, then prints the cells the agent knows
to be mines or safe, its remaining sentences, and checks its deductions against
a complete pseudo-boolean solver.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := s.loadBoard(args)
			if err != nil {
				return err
			}
			a, err := s.newAgent(b, s.logger)
			if err != nil {
				return err
			}
			for _, r := range reveal {
				c, err := parseCell(r)
				if err != nil {
					return err
				}
				if b.IsMine(c) {
					return fmt.Errorf("cannot reveal %v: it is a mine", c)
				}
				if err := a.IntegrateEvidence(c, b.NearbyMines(c)); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			printCells(out, "mines", a.Mines())
			printCells(out, "safes", a.Safes())
			for _, sentence := range a.Knowledge() {
				fmt.Fprintf(out, "c %v\n", sentence)
			}
			pb, err := explain.FromAgent(a)
			if err != nil {
				return err
			}
			if opb {
				fmt.Fprint(out, pb.PBString())
			}
			report, err := explain.Audit(a)
			if err != nil {
				return err
			}
			printCells(out, "missed", report.Missed)
			if !report.Sound() {
				printCells(out, "unsound", report.Unsound)
				return fmt.Errorf("agent made %d unsound deductions", len(report.Unsound))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&reveal, "reveal", nil, "cell to reveal, as row,col (can be repeated)")
	cmd.Flags().BoolVar(&opb, "opb", false, "print the evidence as an OPB problem")
	return cmd
}

func (s *session) loadBoard(args []string) (string, *board.Board, error) {
	path := s.cfg.Board.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return "", nil, fmt.Errorf("no board given")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	b, err := board.Parse(f)
	if err != nil {
		return "", nil, fmt.Errorf("could not parse board %q: %v", path, err)
	}
	return path, b, nil
}

func (s *session) newAgent(b *board.Board, logger *zap.Logger) (*knowledge.Agent, error) {
	seed := s.cfg.Agent.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("creating agent", zap.Uint64("seed", seed))
	return knowledge.New(b.Height(), b.Width(),
		knowledge.WithLogger(logger),
		knowledge.WithRand(rand.New(rand.NewPCG(seed, seed))))
}

func parseCell(s string) (knowledge.Cell, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return knowledge.Cell{}, fmt.Errorf("invalid cell %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return knowledge.Cell{}, fmt.Errorf("invalid row in %q: %v", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return knowledge.Cell{}, fmt.Errorf("invalid column in %q: %v", s, err)
	}
	return knowledge.Cell{Row: row, Col: col}, nil
}

func printCells(w io.Writer, name string, cells []knowledge.Cell) {
	strs := make([]string, len(cells))
	for i, c := range cells {
		strs[i] = c.String()
	}
	fmt.Fprintf(w, "%s: %s\n", name, strings.Join(strs, " "))
}
