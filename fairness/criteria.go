package fairness

import (
	"fmt"
	"strings"

	"github.com/erelsgl/family-fair-allocation/types"
)

// OneOfBestCCriterion owes each agent one good out of its best c goods.
type OneOfBestCCriterion struct {
	C int
}

var _ types.FairnessCriterion = OneOfBestCCriterion{}

// OneOfBestC returns the 1-of-best-c criterion: an agent that wants at least c
// goods is owed 1, any other agent is owed nothing.
func OneOfBestC(c int) OneOfBestCCriterion {
	return OneOfBestCCriterion{C: c}
}

// Name returns e.g. "1-of-best-2".
func (o OneOfBestCCriterion) Name() string {
	return fmt.Sprintf("1-of-best-%d", o.C)
}

// TargetValue returns 1 when totalValue >= C and 0 otherwise.
func (o OneOfBestCCriterion) TargetValue(totalValue int) int {
	if totalValue >= o.C {
		return 1
	}

	return 0
}

// ProportionalExceptCCriterion owes each agent 1/N of its total after
// removing its best C goods (PROPc).
type ProportionalExceptCCriterion struct {
	N int
	C int
}

var _ types.FairnessCriterion = ProportionalExceptCCriterion{}

// ProportionalExceptC returns the PROPc criterion for n agents. With n = 2 and
// c = 1 it coincides with EF1 for binary agents.
func ProportionalExceptC(n, c int) ProportionalExceptCCriterion {
	return ProportionalExceptCCriterion{N: n, C: c}
}

// Name returns e.g. "PROP-except-1-of-2".
func (p ProportionalExceptCCriterion) Name() string {
	return fmt.Sprintf("PROP-except-%d-of-%d", p.C, p.N)
}

// TargetValue returns ceil((totalValue - C) / N), or 0 when nothing is left.
func (p ProportionalExceptCCriterion) TargetValue(totalValue int) int {
	rest := totalValue - p.C
	if rest <= 0 || p.N < 1 {
		return 0
	}

	return ceilDiv(rest, p.N)
}

// ProportionalCriterion owes each agent 1/N of its total value.
type ProportionalCriterion struct {
	N int
}

var _ types.FairnessCriterion = ProportionalCriterion{}

// Proportional returns the PROP criterion for n agents.
func Proportional(n int) ProportionalCriterion {
	return ProportionalCriterion{N: n}
}

// Name returns e.g. "PROP-of-2".
func (p ProportionalCriterion) Name() string {
	return fmt.Sprintf("PROP-of-%d", p.N)
}

// TargetValue returns ceil(totalValue / N).
func (p ProportionalCriterion) TargetValue(totalValue int) int {
	if totalValue <= 0 || p.N < 1 {
		return 0
	}

	return ceilDiv(totalValue, p.N)
}

// MaximinShareCriterion owes each agent its 1-out-of-C maximin share, computed
// for binary agents as floor(total / C).
type MaximinShareCriterion struct {
	C int
}

var _ types.FairnessCriterion = MaximinShareCriterion{}

// MaximinShare returns the 1-of-c MMS criterion.
func MaximinShare(c int) MaximinShareCriterion {
	return MaximinShareCriterion{C: c}
}

// Name returns e.g. "1-of-2-MMS".
func (m MaximinShareCriterion) Name() string {
	return fmt.Sprintf("1-of-%d-MMS", m.C)
}

// TargetValue returns floor(totalValue / C).
func (m MaximinShareCriterion) TargetValue(totalValue int) int {
	if totalValue <= 0 || m.C < 1 {
		return 0
	}

	return totalValue / m.C
}

// Params carries the numeric parameters of a named criterion.
type Params struct {
	// N is the number of agents (or families) sharing the goods.
	N int `yaml:"n" toml:"n"`

	// C is the number of goods excluded or the number of parts.
	C int `yaml:"c" toml:"c"`
}

// CriterionByName resolves a criterion from its configuration name.
//
// Accepted names (case-insensitive): "one-of-best-c", "prop-except-c",
// "proportional", "mms".
//
// Returns:
//   - types.FairnessCriterion: The criterion
//   - error: types.ErrUnknownCriterion for unknown names, types.ErrInvalidArgument for bad parameters
func CriterionByName(name string, params Params) (types.FairnessCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "one-of-best-c", "1-of-best-c":
		if params.C < 1 {
			return nil, fmt.Errorf("%w: %s needs c >= 1", types.ErrInvalidArgument, name)
		}
		return OneOfBestC(params.C), nil
	case "prop-except-c", "propc":
		if params.N < 1 || params.C < 0 {
			return nil, fmt.Errorf("%w: %s needs n >= 1 and c >= 0", types.ErrInvalidArgument, name)
		}
		return ProportionalExceptC(params.N, params.C), nil
	case "proportional", "prop":
		if params.N < 1 {
			return nil, fmt.Errorf("%w: %s needs n >= 1", types.ErrInvalidArgument, name)
		}
		return Proportional(params.N), nil
	case "mms", "maximin-share":
		if params.C < 1 {
			return nil, fmt.Errorf("%w: %s needs c >= 1", types.ErrInvalidArgument, name)
		}
		return MaximinShare(params.C), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownCriterion, name)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
