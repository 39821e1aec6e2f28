package capacity

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/capacity/status"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"github.com/shopspring/decimal"
)

// TreeHeight returns log_b(total) and the minimal height h of a tree with branch factor b,
// i.e. the smallest non-negative integer such that b^h >= total.
//
// Logarithms are taken on raw magnitudes, units are not checked.
// The ceiling of the logarithm is a first guess, then checked against exact decimal
// powers of b, so rounding in the logarithm never changes the result.
func TreeHeight(total, branchFactor quantity.Quantity) (decimal.Decimal, int64, error) {
	b := branchFactor.Magnitude()
	if b.LessThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, 0, status.ErrInvalidArgument.Detailf("branch factor must be greater than 1, got %s", branchFactor)
	}
	if total.Sign() <= 0 {
		return decimal.Decimal{}, 0, status.ErrInvalidArgument.Detailf("total commits must be positive, got %s", total)
	}

	lnTotal, err := total.LnMagnitudeUnchecked()
	if err != nil {
		return decimal.Decimal{}, 0, err
	}
	lnBranch, err := branchFactor.LnMagnitudeUnchecked()
	if err != nil {
		return decimal.Decimal{}, 0, err
	}

	logTotal := lnTotal.DivRound(lnBranch, quantity.LogPrecision)
	height := logTotal.Ceil().IntPart()
	if height < 0 {
		height = 0
	}
	return logTotal, exactHeight(total.Magnitude(), b, height), nil
}

func exactHeight(total, b decimal.Decimal, h int64) int64 {
	for h > 0 && power(b, h-1).GreaterThanOrEqual(total) {
		h--
	}
	for power(b, h).LessThan(total) {
		h++
	}
	return h
}

// power of b > 1 to a non-negative exponent, exact for any finite decimal b
func power(b decimal.Decimal, exp int64) decimal.Decimal {
	p, _ := b.PowInt32(int32(exp))
	return p
}
