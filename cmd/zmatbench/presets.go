// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zmatbench/bench"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in benchmark presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTRATEGY\tREPS\tSIZE\tKERNEL")
			for _, name := range bench.PresetNames() {
				cfg, err := bench.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
					name, cfg.Strategy, cfg.Repetitions, cfg.Size(), cfg.Kernel)
			}

			return tw.Flush()
		},
	}
}
