package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

// Supported file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Member types.
const (
	MemberBinary   = "binary"
	MemberAdditive = "additive"
	MemberMonotone = "monotone"
)

// Scenario is a declarative allocation problem.
type Scenario struct {
	// Name describes the scenario.
	Name string `yaml:"name" toml:"name"`

	// Goods lists the goods to allocate. When empty, the goods are the union
	// of every member's universe.
	Goods []string `yaml:"goods,omitempty" toml:"goods"`

	// Criterion is the default fairness criterion of every family.
	Criterion Criterion `yaml:"criterion" toml:"criterion"`

	// Protocol optionally names the protocol that fits the scenario.
	Protocol string `yaml:"protocol,omitempty" toml:"protocol"`

	// Threshold optionally sets the enhanced RWAV threshold.
	Threshold *float64 `yaml:"threshold,omitempty" toml:"threshold"`

	// Families in turn order.
	Families []Family `yaml:"families" toml:"families"`
}

// Criterion names a fairness criterion and its parameters.
type Criterion struct {
	Name string `yaml:"name" toml:"name"`
	N    int    `yaml:"n,omitempty" toml:"n"`
	C    int    `yaml:"c,omitempty" toml:"c"`
}

// Family describes one family.
type Family struct {
	Name string `yaml:"name" toml:"name"`

	// Criterion overrides the scenario criterion for this family.
	Criterion *Criterion `yaml:"criterion,omitempty" toml:"criterion"`

	Members []Member `yaml:"members" toml:"members"`
}

// Member describes one or more identical agents.
type Member struct {
	// Type is binary (default), additive or monotone.
	Type string `yaml:"type,omitempty" toml:"type"`

	// Cardinality is the number of identical agents (default 1).
	Cardinality int `yaml:"cardinality,omitempty" toml:"cardinality"`

	// Wants lists the desired goods of a binary member.
	Wants []string `yaml:"wants,omitempty" toml:"wants"`

	// Weights maps goods to values for an additive member.
	Weights map[string]int `yaml:"weights,omitempty" toml:"weights"`

	// Table maps bundles ("x,y") to values for a monotone member.
	Table map[string]int `yaml:"table,omitempty" toml:"table"`
}

// FormatOf returns the format implied by a file extension.
//
// Returns:
//   - string: FormatYAML or FormatTOML
//   - error: types.ErrInvalidScenario for other extensions
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", types.ErrInvalidScenario, filepath.Ext(path))
	}
}

// Load reads and parses a scenario file. The format follows the extension.
//
// Parameters:
//   - path: Path to a .yaml, .yml or .toml file
//
// Returns:
//   - *Scenario: The parsed scenario (not yet built)
//   - error: Read or parse error
func Load(path string) (*Scenario, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a scenario.
//
// Parameters:
//   - data: Encoded scenario
//   - format: FormatYAML or FormatTOML
//
// Returns:
//   - *Scenario: The parsed scenario
//   - error: types.ErrInvalidScenario on decode failure or unknown format
func Parse(data []byte, format string) (*Scenario, error) {
	var s Scenario

	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidScenario, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidScenario, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown keys %v", types.ErrInvalidScenario, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", types.ErrInvalidScenario, format)
	}

	return &s, nil
}

// Build turns the scenario into families and goods.
//
// Returns:
//   - []family.Family: Families in the scenario's order
//   - []types.Good: Sorted goods
//   - error: types.ErrInvalidScenario wrapped with the offending family or member
func (s *Scenario) Build() ([]family.Family, []types.Good, error) {
	if len(s.Families) == 0 {
		return nil, nil, fmt.Errorf("%w: no families", types.ErrInvalidScenario)
	}

	if s.Threshold != nil && (*s.Threshold < 0 || *s.Threshold > 1) {
		return nil, nil, fmt.Errorf("%w: threshold must be in [0,1], got %v", types.ErrInvalidScenario, *s.Threshold)
	}

	families := make([]family.Family, 0, len(s.Families))
	universe := types.NewBundle()
	for i, fs := range s.Families {
		crit := s.Criterion
		if fs.Criterion != nil {
			crit = *fs.Criterion
		}
		criterion, err := buildCriterion(crit)
		if err != nil {
			return nil, nil, fmt.Errorf("family %d (%s): %w", i+1, fs.Name, err)
		}

		members := make([]valuation.Valuation, 0, len(fs.Members))
		for j, ms := range fs.Members {
			m, err := ms.build()
			if err != nil {
				return nil, nil, fmt.Errorf("family %d (%s) member %d: %w", i+1, fs.Name, j+1, err)
			}
			members = append(members, m)
			universe = universe.Union(m.Universe())
		}

		families = append(families, family.New(fs.Name, criterion, members...))
	}

	if len(s.Goods) == 0 {
		return families, universe.Sorted(), nil
	}

	goods := make([]types.Good, 0, len(s.Goods))
	for _, g := range s.Goods {
		good, err := parseGood(g)
		if err != nil {
			return nil, nil, fmt.Errorf("goods: %w", err)
		}
		goods = append(goods, good)
	}

	return families, types.SortGoods(goods), nil
}

// parseGood trims name and rejects names that bundle syntax cannot express.
func parseGood(name string) (types.Good, error) {
	g := types.Good(strings.TrimSpace(name))
	if err := types.ValidateGood(g); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrInvalidScenario, err)
	}

	return g, nil
}

func buildCriterion(c Criterion) (types.FairnessCriterion, error) {
	if c.Name == "" {
		return nil, nil
	}

	criterion, err := fairness.CriterionByName(c.Name, fairness.Params{N: c.N, C: c.C})
	if err != nil {
		return nil, fmt.Errorf("%w: criterion: %w", types.ErrInvalidScenario, err)
	}

	return criterion, nil
}

func (m Member) build() (valuation.Valuation, error) {
	if m.Cardinality < 0 {
		return nil, fmt.Errorf("%w: negative cardinality %d", types.ErrInvalidScenario, m.Cardinality)
	}
	opts := []valuation.Option{}
	if m.Cardinality > 0 {
		opts = append(opts, valuation.WithCardinality(m.Cardinality))
	}

	switch strings.ToLower(m.Type) {
	case "", MemberBinary:
		desired := types.NewBundle()
		for _, name := range m.Wants {
			g, err := parseGood(name)
			if err != nil {
				return nil, err
			}
			desired.Add(g)
		}
		return valuation.NewBinary(desired, opts...), nil
	case MemberAdditive:
		if len(m.Weights) == 0 {
			return nil, fmt.Errorf("%w: additive member without weights", types.ErrInvalidScenario)
		}
		weights := make(map[types.Good]int, len(m.Weights))
		for name, w := range m.Weights {
			g, err := parseGood(name)
			if err != nil {
				return nil, err
			}
			weights[g] = w
		}
		return valuation.NewAdditive(weights, opts...), nil
	case MemberMonotone:
		if len(m.Table) == 0 {
			return nil, fmt.Errorf("%w: monotone member without table", types.ErrInvalidScenario)
		}
		v, err := valuation.NewMonotone(m.Table, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidScenario, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unknown member type %q", types.ErrInvalidScenario, m.Type)
	}
}
