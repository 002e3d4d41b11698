package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitegen-workers/internal/presets"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check preset files against the preset schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				f, err := presets.LoadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d preset(s) valid\n", path, len(f))
			}
			return nil
		},
	}
}
