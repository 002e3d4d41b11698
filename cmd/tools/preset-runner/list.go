package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sitegen-workers/internal/presets"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the preset catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			reg := presets.Default()
			if _, err := presets.LoadInto(reg, cfg.Generation.PresetsPath); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tMODE\tTIER\tINDUSTRY\tBUSINESS")
			for _, p := range reg.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Mode, dash(p.Tier), dash(p.EffectiveIndustry()), p.Data.BusinessName)
			}
			return tw.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
