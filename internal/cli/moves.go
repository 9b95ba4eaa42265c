package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMovesCommand creates the moves command.
func NewMovesCommand(rootOpts *RootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:           "moves",
		Short:         "List the knight jumps available on a board",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return errors.New("--from is required")
			}
			s, err := parseBoard(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			return writeMoves(cmd.OutOrStdout(), rootOpts.Format, s, s.Successors())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "board squares, e.g. \"0,0 0,1\"")

	return cmd
}
