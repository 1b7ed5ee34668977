package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	flags := &runFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "check <scenario>",
		Short: "Allocate the goods of a scenario and print the fairness report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(output)
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}

			p, err := opts.prepare(cmd, args[0], flags)
			if err != nil {
				return err
			}

			res, report, err := p.alloc.AllocateAndEvaluate(cmd.Context(), p.families, p.goods)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				doc := struct {
					Allocation any `yaml:"allocation"`
					Report     any `yaml:"report"`
				}{res, report}
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				if err := enc.Close(); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				return opts.writeMetrics(out)
			}

			fmt.Fprintf(out, "Protocol: %s\n", res.Protocol)
			for i, name := range res.Families {
				fmt.Fprintf(out, "%s gets %s\n", name, res.Descriptions[i])
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, report)

			satisfied, total := report.Satisfied()
			fmt.Fprintf(out, "Satisfied: %d out of %d agents\n", satisfied, total)

			return opts.writeMetrics(out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")

	return cmd
}
