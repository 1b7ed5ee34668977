package protocol

import (
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
)

// Line implements the two-family turn protocol over goods ordered on a line.
//
// Turns and votes work as in RWAV with k = 2. The goods keep the order in which
// they were passed, and traces list the remaining goods in that order.
type Line struct {
	cfg config
}

var _ Protocol = (*Line)(nil)

// NewLine creates a new line protocol.
func NewLine(opts ...Option) *Line {
	return &Line{cfg: newConfig(NameLine, opts)}
}

// Name returns "line".
func (p *Line) Name() string {
	return NameLine
}

// Allocate runs the line protocol.
//
// Returns:
//   - []types.Bundle: One bundle per family
//   - error: types.ErrPreconditionViolation unless there are exactly 2 families,
//     types.ErrUnsupportedOperation for members without desired goods
func (p *Line) Allocate(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	if err := requireTwoFamilies(NameLine, families); err != nil {
		return nil, err
	}

	line := lineOrder(goods)

	return p.cfg.measure(NameLine, families, line, func() ([]types.Bundle, error) {
		return p.cfg.takeTurns(NameLine, families, line, 2)
	})
}
