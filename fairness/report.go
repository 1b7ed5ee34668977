package fairness

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

// Outcome is the result of one fairness check for one member.
type Outcome int

const (
	// NotApplicable means the check is undefined for the member's valuation.
	NotApplicable Outcome = iota
	// Pass means the member's requirement holds.
	Pass
	// Fail means the member's requirement does not hold.
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "yes"
	case Fail:
		return "no"
	default:
		return "n/a"
	}
}

// MarshalText renders the outcome as its String form in JSON and YAML reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func outcome(ok bool, err error) (Outcome, error) {
	switch {
	case errors.Is(err, types.ErrUnsupportedOperation):
		return NotApplicable, nil
	case err != nil:
		return NotApplicable, err
	case ok:
		return Pass, nil
	default:
		return Fail, nil
	}
}

// MemberReport holds every check for one family member.
type MemberReport struct {
	Family      string `json:"family" yaml:"family"`
	Member      string `json:"member" yaml:"member"`
	Cardinality int    `json:"cardinality" yaml:"cardinality"`
	Value       int    `json:"value" yaml:"value"`
	Target      int    `json:"target" yaml:"target"`

	Satisfied bool    `json:"satisfied" yaml:"satisfied"`
	EF        Outcome `json:"ef" yaml:"ef"`
	EF1       Outcome `json:"ef1" yaml:"ef1"`
	EFx       Outcome `json:"efx" yaml:"efx"`
	PROP      Outcome `json:"prop" yaml:"prop"`
	PROPc     Outcome `json:"propc" yaml:"propc"`
	MMS       Outcome `json:"mms" yaml:"mms"`
}

// Report is the fairness evaluation of an allocation, one entry per member in
// family order then member order.
type Report struct {
	Members []MemberReport `json:"members" yaml:"members"`
}

// Satisfied returns how many agents reached their target, weighted by cardinality,
// and the total number of agents.
func (r *Report) Satisfied() (satisfied, total int) {
	for _, m := range r.Members {
		total += m.Cardinality
		if m.Satisfied {
			satisfied += m.Cardinality
		}
	}

	return satisfied, total
}

// String renders one line per member.
func (r *Report) String() string {
	var sb strings.Builder
	for _, m := range r.Members {
		fmt.Fprintf(&sb, "%s / %s: value %d target %d satisfied=%t EF=%s EF1=%s EFx=%s PROP=%s PROPc=%s MMS=%s\n",
			m.Family, m.Member, m.Value, m.Target, m.Satisfied, m.EF, m.EF1, m.EFx, m.PROP, m.PROPc, m.MMS)
	}

	return sb.String()
}

// ReportOption configures Evaluate.
type ReportOption func(*reportConfig)

type reportConfig struct {
	workers int
	approx  float64
}

// WithWorkers bounds the number of members evaluated concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) ReportOption {
	return func(c *reportConfig) {
		c.workers = n
	}
}

// WithMMSApproximation sets the factor applied to the maximin share (default 1).
func WithMMSApproximation(factor float64) ReportOption {
	return func(c *reportConfig) {
		c.approx = factor
	}
}

// Evaluate checks every member of every family against bundles, where
// bundles[i] is the bundle of families[i].
//
// With n families, PROP uses 1/n, PROPc drops the best n-1 goods, EF1 and EFx
// compare against every bundle and MMS is the 1-out-of-n maximin share. Checks
// that a valuation cannot answer are reported as NotApplicable.
//
// Parameters:
//   - ctx: Cancels outstanding evaluations
//   - families: Families in allocation order
//   - bundles: One bundle per family
//   - opts: Report options
//
// Returns:
//   - *Report: Per-member results
//   - error: types.ErrInvalidArgument on a length mismatch, or the first evaluation error
func Evaluate(ctx context.Context, families []family.Family, bundles []types.Bundle, opts ...ReportOption) (*Report, error) {
	if len(families) != len(bundles) {
		return nil, fmt.Errorf("%w: %d families but %d bundles", types.ErrInvalidArgument, len(families), len(bundles))
	}

	cfg := reportConfig{approx: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	type job struct {
		fam    family.Family
		own    types.Bundle
		member valuation.Valuation
	}
	var jobs []job
	for i, f := range families {
		for _, m := range f.Members {
			jobs = append(jobs, job{fam: f, own: bundles[i], member: m})
		}
	}

	n := len(families)
	results := make([]MemberReport, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := evaluateMember(j.fam, j.member, j.own, bundles, n, cfg.approx)
			if err != nil {
				return fmt.Errorf("%s / %s: %w", j.fam.Name, j.member, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Members: results}, nil
}

func evaluateMember(f family.Family, m valuation.Valuation, own types.Bundle, all []types.Bundle, n int, approx float64) (MemberReport, error) {
	value, err := m.Value(own)
	if err != nil {
		return MemberReport{}, err
	}
	target := f.Target(m)

	r := MemberReport{
		Family:      f.Name,
		Member:      m.String(),
		Cardinality: m.Cardinality(),
		Value:       value,
		Target:      target,
		Satisfied:   value >= target,
	}

	checks := []struct {
		dst *Outcome
		fn  func() (bool, error)
	}{
		{&r.EF, func() (bool, error) { return IsEF(m, own, all) }},
		{&r.EF1, func() (bool, error) { return IsEF1(m, own, all) }},
		{&r.EFx, func() (bool, error) { return IsEFx(m, own, all) }},
		{&r.PROP, func() (bool, error) { return IsPROP(m, own, n) }},
		{&r.PROPc, func() (bool, error) { return IsPROPc(m, own, n) }},
		{&r.MMS, func() (bool, error) { return Is1OfCMMS(m, own, n, approx) }},
	}
	for _, c := range checks {
		o, err := outcome(c.fn())
		if err != nil {
			return MemberReport{}, err
		}
		*c.dst = o
	}

	return r, nil
}
