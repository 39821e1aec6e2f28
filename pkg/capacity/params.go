package capacity

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/capacity/status"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Params are the inputs of an estimate.
//
// Lifetime is only used by DepthFromLifetime, Depth only by LifetimeFromDepth.
type Params struct {
	Mode         Mode
	OutputRate   quantity.Quantity // COMMIT·SEC⁻¹
	Lifetime     quantity.Quantity // YEAR
	Depth        quantity.Quantity // LEVEL
	BranchFactor quantity.Quantity // BRANCH
}

// Estimate is the outcome of a capacity computation
type Estimate struct {
	Mode            Mode
	OutputRate      quantity.Quantity
	Lifetime        quantity.Quantity
	Depth           quantity.Quantity
	BranchFactor    quantity.Quantity
	SecondsPerYear  quantity.Quantity
	TotalCommits    quantity.Quantity
	LogTotalCommits decimal.Decimal
	MinTreeHeight   int64
}

// Validate checks the parameters for the selected mode.
//
// All violations are reported at once. Each one matches status.ErrInvalidArgument,
// and quantities with an unexpected unit also match the quantity unit mismatch error.
func (e *Evaluator) Validate(p Params) error {
	var err error

	err = multierr.Append(err, mustBePositive("output rate", p.OutputRate, e.RateDimension()))
	switch p.Mode {
	case DepthFromLifetime:
		err = multierr.Append(err, mustBePositive("lifetime", p.Lifetime, e.units.Year.Dimension()))
	case LifetimeFromDepth:
		err = multierr.Append(err, e.validateDepth(p.Depth))
	default:
		err = multierr.Append(err, status.ErrInvalidArgument.Detailf("unknown mode %q", p.Mode))
	}
	err = multierr.Append(err, e.validateBranchFactor(p.BranchFactor))

	return err
}

func (e *Evaluator) validateDepth(depth quantity.Quantity) error {
	if err := mustBePositive("depth", depth, e.units.Level.Dimension()); err != nil {
		return err
	}
	if !depth.Magnitude().IsInteger() {
		return status.ErrInvalidArgument.Detailf("depth must be an integral number of levels, got %s", depth)
	}
	if depth.Magnitude().GreaterThan(decimal.NewFromInt(MaxDepth)) {
		return status.ErrInvalidArgument.Detailf("depth must not exceed %d levels, got %s", MaxDepth, depth)
	}
	return nil
}

func (e *Evaluator) validateBranchFactor(branchFactor quantity.Quantity) error {
	if err := branchFactor.Expect(e.units.Branch.Dimension()); err != nil {
		return status.ErrInvalidArgument.Detailf("branch factor %s", branchFactor).Wrap(err)
	}
	if branchFactor.Magnitude().LessThanOrEqual(decimal.NewFromInt(1)) {
		return status.ErrInvalidArgument.Detailf("branch factor must be greater than 1, got %s", branchFactor)
	}
	return nil
}

func mustBePositive(name string, q quantity.Quantity, dim quantity.Dimension) error {
	if err := q.Expect(dim); err != nil {
		return status.ErrInvalidArgument.Detailf("%s %s", name, q).Wrap(err)
	}
	if q.Sign() <= 0 {
		return status.ErrInvalidArgument.Detailf("%s must be positive, got %s", name, q)
	}
	return nil
}
