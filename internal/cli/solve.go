package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/observe"
	"github.com/katalvlaran/statespace/puzzle"
)

// ErrCancelled is returned when a search is cancelled or times out.
var ErrCancelled = errors.New("search cancelled")

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	From      string
	To        string
	Occupies  string
	Puzzle    string
	MaxDepth  int
	MaxStates int
	Timeout   time.Duration
	Method    string
}

const (
	methodBFS    = "bfs"
	methodDeepen = "deepen"
)

// ValidMethods defines the allowed search methods.
var ValidMethods = []string{methodBFS, methodDeepen}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest knight-move policy between two boards",
		Long: `Find a shortest sequence of knight jumps from one board to another.

Boards are given as square lists like "0,0 0,1 1,0", or read from a puzzle
file with --puzzle. Use --occupies instead of --to to accept any board that
holds a knight on each listed square.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidMethods, opts.Method) {
				return fmt.Errorf("invalid method %q: must be one of %v", opts.Method, ValidMethods)
			}
			p, err := opts.puzzle(cmd)
			if err != nil {
				return err
			}
			return runSolve(rootOpts, p, opts.Method, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "start squares, e.g. \"0,0 0,1\"")
	cmd.Flags().StringVar(&opts.To, "to", "", "target squares (exact board)")
	cmd.Flags().StringVar(&opts.Occupies, "occupies", "", "squares the goal board must hold")
	cmd.Flags().StringVar(&opts.Puzzle, "puzzle", "", "puzzle YAML file")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "longest policy to consider (0 = no limit)")
	cmd.Flags().IntVar(&opts.MaxStates, "max-states", 0, "most boards to record (0 = no limit)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "give up after this long (0 = no limit)")
	cmd.Flags().StringVar(&opts.Method, "method", methodBFS, "search method (bfs|deepen); deepen ignores --max-states")
	cmd.MarkFlagsMutuallyExclusive("puzzle", "from")
	cmd.MarkFlagsMutuallyExclusive("to", "occupies")

	return cmd
}

// puzzle builds the problem from either the puzzle file or the board flags.
// Limit flags given on the command line override the file's.
func (o *SolveOptions) puzzle(cmd *cobra.Command) (*puzzle.Puzzle, error) {
	var p *puzzle.Puzzle
	switch {
	case o.Puzzle != "":
		loaded, err := puzzle.Load(o.Puzzle)
		if err != nil {
			return nil, err
		}
		p = loaded
	case o.From == "":
		return nil, errors.New("one of --from or --puzzle is required")
	default:
		start, err := parseBoard(o.From)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		switch {
		case o.To != "":
			target, err := parseBoard(o.To)
			if err != nil {
				return nil, fmt.Errorf("--to: %w", err)
			}
			p = puzzle.New("", start, target)
		case o.Occupies != "":
			cells, err := parseBoard(o.Occupies)
			if err != nil {
				return nil, fmt.Errorf("--occupies: %w", err)
			}
			p = puzzle.NewOccupying("", start, cells.Occupied()...)
		default:
			return nil, errors.New("one of --to or --occupies is required")
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		p.MaxDepth = o.MaxDepth
	}
	if flags.Changed("max-states") {
		p.MaxStates = o.MaxStates
	}
	if flags.Changed("timeout") {
		p.Timeout = o.Timeout
	}

	return p, nil
}

func runSolve(opts *RootOptions, p *puzzle.Puzzle, method string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	var (
		sum searchSummary
		err error
	)
	switch method {
	case methodDeepen:
		sum, err = deepen(ctx, p)
	default:
		var res *bfs.Result
		res, err = observe.Search(ctx, p.Start(), p.Goal(), opts.instruments(), p.Options()...)
		if res != nil {
			sum = summarizeBFS(res)
		}
	}

	if sum.outcome == bfs.Cancelled.String() {
		if werr := writeSolve(cmd.OutOrStdout(), opts.Format, p, sum); werr != nil {
			return werr
		}
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if err != nil {
		return err
	}

	return writeSolve(cmd.OutOrStdout(), opts.Format, p, sum)
}

// deepen solves p by iterative deepening. A context error is reported as a
// cancelled outcome together with the error.
func deepen(ctx context.Context, p *puzzle.Puzzle) (searchSummary, error) {
	dopts := []dfs.Option{dfs.WithContext(ctx)}
	if p.MaxDepth > 0 {
		dopts = append(dopts, dfs.WithMaxDepth(p.MaxDepth))
	}
	res, err := dfs.Deepen(p.Start(), p.Goal(), dopts...)
	if res == nil {
		return searchSummary{}, err
	}
	cancelled := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)

	return summarizeDeepen(res, cancelled), err
}

// instruments returns the run's telemetry, or none when the command runs
// without the root's pre-run hook.
func (o *RootOptions) instruments() observe.Instruments {
	if o.tel == nil {
		return observe.Instruments{}
	}
	return o.tel.in
}
