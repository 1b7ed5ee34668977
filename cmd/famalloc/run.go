package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	famalloc "github.com/erelsgl/family-fair-allocation"
	"github.com/erelsgl/family-fair-allocation/protocol"
	"github.com/erelsgl/family-fair-allocation/scenario"
)

type runFlags struct {
	protocol  string
	threshold float64
	trace     bool
	watch     bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.protocol, "protocol", protocol.NameRWAV, fmt.Sprintf("allocation protocol %v", protocol.Names()))
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0.6, "enhanced RWAV threshold in [0,1]")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print every protocol decision")
}

func (f *runFlags) registerWatch(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-run whenever the scenario file changes")
}

// problem is a built scenario ready for allocation.
type problem struct {
	scenario *scenario.Scenario
	families []famalloc.Family
	goods    []famalloc.Good
	alloc    *famalloc.Allocator
}

func (o *rootOptions) prepare(cmd *cobra.Command, path string, flags *runFlags) (*problem, error) {
	s, err := scenario.NewFile(path).Scenario(cmd.Context())
	if err != nil {
		return nil, err
	}

	return o.build(cmd, s, flags)
}

func (o *rootOptions) build(cmd *cobra.Command, s *scenario.Scenario, flags *runFlags) (*problem, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	families, goods, err := s.Build()
	if err != nil {
		return nil, err
	}
	applyScenario(cmd, &cfg, s, flags.protocol, flags.threshold)

	opts := o.allocatorOptions(cfg)
	if flags.trace {
		out := cmd.OutOrStdout()
		opts = append(opts, famalloc.WithHooks(&famalloc.Hooks{
			OnTrace: func(msg string) { fmt.Fprintln(out, msg) },
		}))
	}

	alloc, err := famalloc.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &problem{scenario: s, families: families, goods: goods, alloc: alloc}, nil
}

func (o *rootOptions) runOnce(cmd *cobra.Command, s *scenario.Scenario, flags *runFlags) error {
	p, err := o.build(cmd, s, flags)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if p.scenario.Name != "" {
		fmt.Fprintf(out, "Scenario: %s\n", p.scenario.Name)
	}
	for _, f := range p.families {
		fmt.Fprintln(out, f)
	}

	res, err := p.alloc.Allocate(p.families, p.goods)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nProtocol: %s\n", res.Protocol)
	for i, name := range res.Families {
		fmt.Fprintf(out, "%s gets %s\n", name, res.Descriptions[i])
	}
	fmt.Fprintf(out, "Fingerprint: %s\n", res.Fingerprint)

	return o.writeMetrics(out)
}

func runCmd(opts *rootOptions) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Allocate the goods of a scenario and print each family's bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := scenario.NewFile(args[0])
			s, err := src.Scenario(cmd.Context())
			if err != nil {
				return err
			}
			if err := opts.runOnce(cmd, s, flags); err != nil {
				return err
			}
			if !flags.watch {
				return nil
			}

			// Errors after the first run are reported and the watch goes on.
			errOut := cmd.ErrOrStderr()
			err = src.Watch(cmd.Context(), func(s *scenario.Scenario, err error) {
				if err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "\n--- %s changed\n", src.Path())
					err = opts.runOnce(cmd, s, flags)
				}
				if err != nil {
					fmt.Fprintln(errOut, "error:", err)
				}
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}

			return err
		},
	}
	flags.register(cmd)
	flags.registerWatch(cmd)

	return cmd
}
