// Package capacity estimates the Merkle commitment tree height needed over a network lifetime,
// or the lifetime supported by a tree of a given depth.
package capacity

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/capacity/status"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Unit names used by the estimates
const (
	Commit = "COMMIT"
	Sec    = "SEC"
	Min    = "MIN"
	Hour   = "HOUR"
	Day    = "DAY"
	Year   = "YEAR"
	Branch = "BRANCH"
	Level  = "LEVEL"
)

const (
	// MaxDepth is the largest tree depth accepted by LifetimeFromDepth
	MaxDepth = 256

	defaultOutputRate   = 10000
	defaultLifetime     = 200
	defaultBranchFactor = 2
)

// Mode selects the formula used by an estimate
type Mode string

const (
	// DepthFromLifetime estimates the tree height needed for a network lifetime
	DepthFromLifetime Mode = "depth-from-lifetime"

	// LifetimeFromDepth estimates the network lifetime supported by a tree depth
	LifetimeFromDepth Mode = "lifetime-from-depth"
)

// Units used by the evaluator, interned in its registry
type Units struct {
	Commit *quantity.Unit
	Sec    *quantity.Unit
	Min    *quantity.Unit
	Hour   *quantity.Unit
	Day    *quantity.Unit
	Year   *quantity.Unit
	Branch *quantity.Unit
	Level  *quantity.Unit
}

// Evaluator computes capacity estimates
type Evaluator struct {
	units          Units
	secondsPerYear quantity.Quantity
	logger         *zap.Logger
}

// Option is a functor to build an evaluator with some options
type Option func(*Evaluator)

// Logger sets the logger used to trace intermediate results
func Logger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEvaluator builds an evaluator, registering its units in reg
func NewEvaluator(reg *quantity.Registry, opts ...Option) *Evaluator {
	u := Units{
		Commit: reg.Unit(Commit),
		Sec:    reg.Unit(Sec),
		Min:    reg.Unit(Min),
		Hour:   reg.Unit(Hour),
		Day:    reg.Unit(Day),
		Year:   reg.Unit(Year),
		Branch: reg.Unit(Branch),
		Level:  reg.Unit(Level),
	}
	e := &Evaluator{
		units:  u,
		logger: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(e)
	}

	// leap days and leap seconds are ignored
	e.secondsPerYear = u.Sec.Of(60).Per(u.Min).
		Mul(u.Min.Of(60).Per(u.Hour)).
		Mul(u.Hour.Of(24).Per(u.Day)).
		Mul(u.Day.Of(365).Per(u.Year))

	return e
}

// Units known to the evaluator
func (e *Evaluator) Units() Units { return e.units }

// SecondsPerYear is 31536000 SEC·YEAR⁻¹
func (e *Evaluator) SecondsPerYear() quantity.Quantity { return e.secondsPerYear }

// RateDimension is COMMIT·SEC⁻¹
func (e *Evaluator) RateDimension() quantity.Dimension {
	return e.units.Commit.Dimension().Div(e.units.Sec.Dimension())
}

// DefaultOutputRate is 10000 COMMIT·SEC⁻¹
func (e *Evaluator) DefaultOutputRate() quantity.Quantity {
	return e.units.Commit.Of(defaultOutputRate).Per(e.units.Sec)
}

// DefaultLifetime is 200 YEAR
func (e *Evaluator) DefaultLifetime() quantity.Quantity {
	return e.units.Year.Of(defaultLifetime)
}

// DefaultBranchFactor is 2 BRANCH
func (e *Evaluator) DefaultBranchFactor() quantity.Quantity {
	return e.units.Branch.Of(defaultBranchFactor)
}

// DefaultParams for a mode, with a lifetime of 200 years or a depth of 32 levels
func (e *Evaluator) DefaultParams(mode Mode) Params {
	return Params{
		Mode:         mode,
		OutputRate:   e.DefaultOutputRate(),
		Lifetime:     e.DefaultLifetime(),
		Depth:        e.units.Level.Of(32),
		BranchFactor: e.DefaultBranchFactor(),
	}
}

// Evaluate validates the parameters then runs the formula selected by their mode.
func (e *Evaluator) Evaluate(p Params) (Estimate, error) {
	if err := e.Validate(p); err != nil {
		return Estimate{}, err
	}
	switch p.Mode {
	case DepthFromLifetime:
		return e.depthFromLifetime(p)
	case LifetimeFromDepth:
		return e.lifetimeFromDepth(p)
	default:
		return Estimate{}, status.ErrInvalidArgument.Detailf("unknown mode %q", p.Mode)
	}
}

// DepthFromLifetime computes
//
//	total_commits = output_rate * lifetime * seconds_per_year
//
// and the minimal tree height holding total_commits.
func (e *Evaluator) DepthFromLifetime(rate, lifetime, branchFactor quantity.Quantity) (Estimate, error) {
	return e.Evaluate(Params{
		Mode:         DepthFromLifetime,
		OutputRate:   rate,
		Lifetime:     lifetime,
		BranchFactor: branchFactor,
	})
}

// LifetimeFromDepth computes
//
//	total_commits = COMMIT(2^depth)
//	lifetime = total_commits / (output_rate * seconds_per_year)
//
// and the minimal tree height holding total_commits.
func (e *Evaluator) LifetimeFromDepth(rate, depth, branchFactor quantity.Quantity) (Estimate, error) {
	return e.Evaluate(Params{
		Mode:         LifetimeFromDepth,
		OutputRate:   rate,
		Depth:        depth,
		BranchFactor: branchFactor,
	})
}

func (e *Evaluator) depthFromLifetime(p Params) (Estimate, error) {
	p.Depth = quantity.Quantity{}
	total := p.OutputRate.Mul(p.Lifetime).Mul(e.secondsPerYear)
	e.logger.Debug("total commits over lifetime",
		zap.Stringer("output_rate", p.OutputRate),
		zap.Stringer("lifetime", p.Lifetime),
		zap.Stringer("seconds_per_year", e.secondsPerYear),
		zap.Stringer("total_commits", total),
	)
	return e.estimate(p, p.Lifetime, total)
}

func (e *Evaluator) lifetimeFromDepth(p Params) (Estimate, error) {
	leaves, err := quantity.Dimensionless(decimal.NewFromInt(2)).Pow(int32(p.Depth.Magnitude().IntPart()))
	if err != nil {
		return Estimate{}, err
	}
	total := leaves.Mul(e.units.Commit.One())
	lifetime, err := total.Div(p.OutputRate.Mul(e.secondsPerYear))
	if err != nil {
		return Estimate{}, err
	}
	e.logger.Debug("lifetime for tree depth",
		zap.Stringer("output_rate", p.OutputRate),
		zap.Stringer("depth", p.Depth),
		zap.Stringer("total_commits", total),
		zap.Stringer("lifetime", lifetime),
	)
	return e.estimate(p, lifetime, total)
}

func (e *Evaluator) estimate(p Params, lifetime, total quantity.Quantity) (Estimate, error) {
	logTotal, height, err := TreeHeight(total, p.BranchFactor)
	if err != nil {
		return Estimate{}, err
	}
	e.logger.Debug("minimal tree height",
		zap.Stringer("branch_factor", p.BranchFactor),
		zap.Stringer("log_total_commits", logTotal),
		zap.Int64("min_tree_height", height),
	)
	return Estimate{
		Mode:            p.Mode,
		OutputRate:      p.OutputRate,
		Lifetime:        lifetime,
		Depth:           p.Depth,
		BranchFactor:    p.BranchFactor,
		SecondsPerYear:  e.secondsPerYear,
		TotalCommits:    total,
		LogTotalCommits: logTotal,
		MinTreeHeight:   height,
	}, nil
}
