package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	famalloc "github.com/erelsgl/family-fair-allocation"
	"github.com/erelsgl/family-fair-allocation/internal/metrics"
	"github.com/erelsgl/family-fair-allocation/scenario"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logBackend string
	metrics    bool

	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "famalloc",
		Short:         "Fair allocation of indivisible goods among families",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logBackend, "log-backend", "", "log backend: slog, zap, nop")
	root.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics after the command")

	root.AddCommand(runCmd(opts), checkCmd(opts), weightsCmd(opts))

	return root
}

// loadConfig reads the config file and applies the persistent flags on top.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (famalloc.Config, error) {
	cfg, err := famalloc.LoadConfig(o.configPath)
	if err != nil {
		return famalloc.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-backend") {
		cfg.Logging.Backend = o.logBackend
	}
	if o.metrics {
		cfg.Metrics.Enabled = true
	}

	return cfg, nil
}

// allocatorOptions returns the options shared by run and check.
func (o *rootOptions) allocatorOptions(cfg famalloc.Config) []famalloc.Option {
	if !cfg.Metrics.Enabled {
		return nil
	}
	o.registry = prometheus.NewRegistry()

	return []famalloc.Option{famalloc.WithRegisterer(o.registry)}
}

// newMetricsCollector creates a Prometheus collector on a fresh registry that
// writeMetrics prints.
func newMetricsCollector(o *rootOptions, cfg famalloc.Config) famalloc.MetricsCollector {
	o.registry = prometheus.NewRegistry()

	return metrics.NewPrometheus(o.registry, cfg.Metrics.Namespace)
}

// applyScenario lets the scenario pick the protocol and threshold unless the
// command line already did.
func applyScenario(cmd *cobra.Command, cfg *famalloc.Config, s *scenario.Scenario, protocolName string, threshold float64) {
	flags := cmd.Flags()

	switch {
	case flags.Changed("protocol"):
		cfg.Protocol = protocolName
	case s.Protocol != "":
		cfg.Protocol = s.Protocol
	}

	switch {
	case flags.Changed("threshold"):
		cfg.Threshold = threshold
	case s.Threshold != nil:
		cfg.Threshold = *s.Threshold
	}
}

func (o *rootOptions) writeMetrics(w io.Writer) error {
	if o.registry == nil {
		return nil
	}

	mfs, err := o.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
