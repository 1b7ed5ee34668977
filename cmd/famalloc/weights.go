package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erelsgl/family-fair-allocation/weight"
)

func weightsCmd(opts *rootOptions) *cobra.Command {
	var r, s, k int

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print voting balances and weights",
		Long: "Print the balance B(r,s) and weight B(r,s)-B(r-1,s) of an agent who still\n" +
			"needs s of the r remaining goods. Without --s, prints every s from 0 to r.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r < 0 {
				return fmt.Errorf("--r must be >= 0, got %d", r)
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			var engineOpts []weight.Option
			if cfg.Metrics.Enabled {
				collector := newMetricsCollector(opts, cfg)
				engineOpts = append(engineOpts, weight.WithMetrics(collector))
			}
			e := weight.NewEngine(engineOpts...)

			from, to := 0, r
			if cmd.Flags().Changed("s") {
				from, to = s, s
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%4s %4s %4s %12s %12s\n", "r", "s", "k", "balance", "weight")
			for ss := from; ss <= to; ss++ {
				b, err := e.Balance(r, ss, k)
				if err != nil {
					return err
				}
				w, err := e.Weight(r, ss, k)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%4d %4d %4d %12.6f %12.6f\n", r, ss, k, b, w)
			}

			return opts.writeMetrics(out)
		},
	}

	cmd.Flags().IntVar(&r, "r", 4, "number of remaining goods")
	cmd.Flags().IntVar(&s, "s", 0, "number of goods the agent still needs")
	cmd.Flags().IntVar(&k, "k", 2, "number of families")

	return cmd
}
