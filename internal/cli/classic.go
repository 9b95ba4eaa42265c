package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/puzzle"
)

// NewClassicCommand creates the classic command.
func NewClassicCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classic [name]",
		Short: "List or solve the bundled puzzles",
		Long: `Without arguments, list the bundled formation-shift puzzles.
With a name, solve that puzzle.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				all, err := puzzle.Classics()
				if err != nil {
					return err
				}
				return writeClassics(cmd.OutOrStdout(), rootOpts.Format, all)
			}
			p, err := puzzle.Classic(args[0])
			if err != nil {
				return err
			}
			return runSolve(rootOpts, p, methodBFS, cmd)
		},
	}

	return cmd
}
