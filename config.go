package famalloc

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/erelsgl/family-fair-allocation/internal/logging"
	"github.com/erelsgl/family-fair-allocation/protocol"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "FAMALLOC_"

// TwoThirdsConfig tunes the two-thirds equilibrium protocol.
type TwoThirdsConfig struct {
	// IterationFactor bounds the protocol to IterationFactor iterations per
	// agent before it gives up looking for a fixed point.
	// Default: 2
	IterationFactor int `yaml:"iterationFactor" toml:"iteration_factor" env:"ITERATION_FACTOR"`
}

// ReportConfig controls fairness report evaluation.
type ReportConfig struct {
	// Workers is the number of members evaluated concurrently.
	// Default: 0 (GOMAXPROCS)
	Workers int `yaml:"workers" toml:"workers" env:"WORKERS"`

	// MMSApproximation scales the maximin share a member must reach to count
	// as satisfied under the MMS column of the report.
	// Default: 1.0
	MMSApproximation float64 `yaml:"mmsApproximation" toml:"mms_approximation" env:"MMS_APPROXIMATION"`
}

// LoggingConfig selects the logger built by NewLogger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" toml:"level" env:"LEVEL"`

	// Format is text or json.
	Format string `yaml:"format" toml:"format" env:"FORMAT"`

	// Backend is slog, zap or nop.
	Backend string `yaml:"backend" toml:"backend" env:"BACKEND"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns on the Prometheus collector.
	Enabled bool `yaml:"enabled" toml:"enabled" env:"ENABLED"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" toml:"namespace" env:"NAMESPACE"`
}

// Config is the configuration for the Allocator.
type Config struct {
	// Protocol names the allocation protocol: rwav, enhanced-rwav, line or two-thirds.
	Protocol string `yaml:"protocol" toml:"protocol" env:"PROTOCOL"`

	// Threshold is the enhanced RWAV fraction of members that must want a
	// single good for their family to take it outright. Must be in [0,1].
	//
	// 0 is a valid threshold, so SetDefaults never overwrites it.
	Threshold float64 `yaml:"threshold" toml:"threshold" env:"THRESHOLD"`

	// TwoThirds tunes the two-thirds protocol.
	TwoThirds TwoThirdsConfig `yaml:"twoThirds" toml:"two_thirds" envPrefix:"TWO_THIRDS_"`

	// Report controls fairness report evaluation.
	Report ReportConfig `yaml:"report" toml:"report" envPrefix:"REPORT_"`

	// Logging selects the logger.
	Logging LoggingConfig `yaml:"logging" toml:"logging" envPrefix:"LOG_"`

	// Metrics controls Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics" envPrefix:"METRICS_"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Protocol:  protocol.NameRWAV,
		Threshold: 0.6,
		TwoThirds: TwoThirdsConfig{
			IterationFactor: protocol.DefaultIterationFactor,
		},
		Report: ReportConfig{
			Workers:          0,
			MMSApproximation: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  logging.FormatText,
			Backend: logging.BackendSlog,
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "famalloc",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Protocol == "" {
		cfg.Protocol = defaults.Protocol
	}
	if cfg.TwoThirds.IterationFactor == 0 {
		cfg.TwoThirds.IterationFactor = defaults.TwoThirds.IterationFactor
	}
	if cfg.Report.MMSApproximation == 0 {
		cfg.Report.MMSApproximation = defaults.Report.MMSApproximation
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
	if cfg.Logging.Backend == "" {
		cfg.Logging.Backend = defaults.Logging.Backend
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	// Note: Threshold of 0 is valid (first wanted good always triggers), so we don't apply default
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: types.ErrInvalidConfig wrapped with an explanation, nil if valid
func (cfg *Config) Validate() error {
	if _, err := protocol.ByName(cfg.Protocol, cfg.Threshold); err != nil {
		return fmt.Errorf("%w: protocol: %w", ErrInvalidConfig, err)
	}

	if math.IsNaN(cfg.Threshold) || cfg.Threshold < 0 || cfg.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0,1], got %v", ErrInvalidConfig, cfg.Threshold)
	}

	if cfg.TwoThirds.IterationFactor < 1 {
		return fmt.Errorf("%w: twoThirds.iterationFactor must be >= 1, got %d",
			ErrInvalidConfig, cfg.TwoThirds.IterationFactor)
	}

	if cfg.Report.Workers < 0 {
		return fmt.Errorf("%w: report.workers must be >= 0, got %d", ErrInvalidConfig, cfg.Report.Workers)
	}

	if cfg.Report.MMSApproximation <= 0 || cfg.Report.MMSApproximation > 1 {
		return fmt.Errorf("%w: report.mmsApproximation must be in (0,1], got %v",
			ErrInvalidConfig, cfg.Report.MMSApproximation)
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	switch strings.ToLower(cfg.Logging.Backend) {
	case logging.BackendSlog, logging.BackendZap, logging.BackendNop:
	default:
		return fmt.Errorf("%w: unknown logging.backend %q", ErrInvalidConfig, cfg.Logging.Backend)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, cfg.Logging.Format)
	}

	return nil
}

// LoadConfig reads a configuration file and applies environment overrides.
//
// The file format follows the extension: .yaml/.yml for YAML and .toml for
// TOML. An empty path skips the file. Fields absent from the file keep their
// DefaultConfig values; FAMALLOC_* environment variables then override both,
// e.g. FAMALLOC_PROTOCOL=line or FAMALLOC_LOG_LEVEL=debug.
//
// Parameters:
//   - path: Configuration file path (may be empty)
//
// Returns:
//   - Config: The validated configuration
//   - error: Read, decode or validation error
//
// Example:
//
//	cfg, err := famalloc.LoadConfig("famalloc.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	alloc, err := famalloc.New(cfg)
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := decodeConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeConfigFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(path))
	}

	return nil
}

// TestConfig returns a configuration for tests: RWAV with logging and metrics off.
//
// Returns:
//   - Config: Configuration suitable for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Logging.Backend = logging.BackendNop
	cfg.Report.Workers = 2

	return cfg
}
