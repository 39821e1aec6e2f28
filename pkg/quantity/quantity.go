package quantity

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity/status"
	"github.com/shopspring/decimal"
)

const (
	// DivisionPrecision is the number of fractional digits kept by a division
	DivisionPrecision int32 = 40

	// LogPrecision is the number of fractional digits kept by a logarithm
	LogPrecision int32 = 32
)

// Quantity is an immutable magnitude tagged with a dimension.
type Quantity struct {
	magnitude decimal.Decimal
	dim       Dimension
}

// New quantity from a decimal magnitude
func New(magnitude decimal.Decimal, dim Dimension) Quantity {
	return Quantity{magnitude: magnitude, dim: dim}
}

// FromInt builds a quantity from an integral magnitude
func FromInt(magnitude int64, dim Dimension) Quantity {
	return Quantity{magnitude: decimal.NewFromInt(magnitude), dim: dim}
}

// Magnitude of the quantity, without unit
func (q Quantity) Magnitude() decimal.Decimal { return q.magnitude }

// Dimension of the quantity
func (q Quantity) Dimension() Dimension { return q.dim }

// IsDimensionless is true for a pure number
func (q Quantity) IsDimensionless() bool { return q.dim.IsDimensionless() }

// Sign returns -1, 0 or 1 according to the sign of the magnitude
func (q Quantity) Sign() int { return q.magnitude.Sign() }

// Equal is true when both dimension and magnitude are equal
func (q Quantity) Equal(b Quantity) bool {
	return q.dim.Equal(b.dim) && q.magnitude.Equal(b.magnitude)
}

// Expect checks that the quantity has the expected dimension.
func (q Quantity) Expect(dim Dimension) error {
	if !q.dim.Equal(dim) {
		return mismatch(q.dim, dim)
	}
	return nil
}

// Mul multiplies magnitudes and sums unit exponents.
func (q Quantity) Mul(b Quantity) Quantity {
	return Quantity{
		magnitude: q.magnitude.Mul(b.magnitude),
		dim:       q.dim.Mul(b.dim),
	}
}

// Div divides magnitudes and subtracts unit exponents.
//
// It fails with status.ErrDivideByZero when b is zero.
func (q Quantity) Div(b Quantity) (Quantity, error) {
	if b.magnitude.IsZero() {
		return Quantity{}, status.ErrDivideByZero.Detailf("%s / %s", q, b)
	}
	return Quantity{
		magnitude: q.magnitude.DivRound(b.magnitude, DivisionPrecision),
		dim:       q.dim.Div(b.dim),
	}, nil
}

// Pow raises the magnitude and every unit exponent to the power n.
//
// Raising zero to a negative power fails with status.ErrDivideByZero.
func (q Quantity) Pow(n int32) (Quantity, error) {
	switch {
	case n == 0:
		return Dimensionless(decimal.NewFromInt(1)), nil
	case n < 0 && q.magnitude.IsZero():
		return Quantity{}, status.ErrDivideByZero.Detailf("(%s)^%d", q, n)
	}

	abs := n
	if abs < 0 {
		abs = -abs
	}
	m, err := q.magnitude.PowInt32(abs)
	if err != nil {
		return Quantity{}, status.ErrDomain.Detailf("(%s)^%d", q, n).Wrap(err)
	}
	if n < 0 {
		m = decimal.NewFromInt(1).DivRound(m, DivisionPrecision)
	}
	return Quantity{magnitude: m, dim: q.dim.Pow(int(n))}, nil
}

// Per divides the quantity by one unit, e.g. SEC(60) per MIN.
func (q Quantity) Per(u *Unit) Quantity {
	return Quantity{magnitude: q.magnitude, dim: q.dim.Div(u.Dimension())}
}

// Scale multiplies the magnitude by a pure number
func (q Quantity) Scale(factor decimal.Decimal) Quantity {
	return Quantity{magnitude: q.magnitude.Mul(factor), dim: q.dim}
}

// Add two quantities of the same dimension.
func (q Quantity) Add(b Quantity) (Quantity, error) {
	if err := b.Expect(q.dim); err != nil {
		return Quantity{}, err
	}
	return Quantity{magnitude: q.magnitude.Add(b.magnitude), dim: q.dim}, nil
}

// Sub subtracts two quantities of the same dimension.
func (q Quantity) Sub(b Quantity) (Quantity, error) {
	if err := b.Expect(q.dim); err != nil {
		return Quantity{}, err
	}
	return Quantity{magnitude: q.magnitude.Sub(b.magnitude), dim: q.dim}, nil
}

// Cmp compares two quantities of the same dimension and returns -1, 0 or 1.
func (q Quantity) Cmp(b Quantity) (int, error) {
	if err := b.Expect(q.dim); err != nil {
		return 0, err
	}
	return q.magnitude.Cmp(b.magnitude), nil
}

// Ln is the natural logarithm of a dimensionless quantity.
//
// It fails with status.ErrDimension when the quantity carries a unit.
func (q Quantity) Ln() (decimal.Decimal, error) {
	if !q.IsDimensionless() {
		return decimal.Decimal{}, status.ErrDimension.Detailf("ln(%s)", q)
	}
	return q.LnMagnitudeUnchecked()
}

// LnMagnitudeUnchecked is the natural logarithm of the raw magnitude.
//
// The unit is discarded without checking: ln(63072000000000 COMMIT) is taken as
// ln(63072000000000). Capacity estimates take the log of commit counts and
// branch factors this way, and only the ratio of two such logarithms is
// meaningful.
func (q Quantity) LnMagnitudeUnchecked() (decimal.Decimal, error) {
	if q.magnitude.Sign() <= 0 {
		return decimal.Decimal{}, status.ErrDomain.Detailf("ln(%s)", q.magnitude)
	}
	ln, err := q.magnitude.Ln(LogPrecision)
	if err != nil {
		return decimal.Decimal{}, status.ErrDomain.Detailf("ln(%s)", q.magnitude).Wrap(err)
	}
	return ln, nil
}

// Format renders the magnitude with a fixed number of decimal places,
// followed by the canonical dimension, e.g. "10000.00 COMMIT·SEC⁻¹".
func (q Quantity) Format(precision int32) string {
	return render(q.magnitude.StringFixed(precision), q.dim)
}

// String renders the exact magnitude, followed by the canonical dimension.
func (q Quantity) String() string {
	return render(q.magnitude.String(), q.dim)
}

func render(magnitude string, dim Dimension) string {
	if dim.IsDimensionless() {
		return magnitude
	}
	return magnitude + " " + dim.String()
}

func mismatch(got, want Dimension) error {
	return status.ErrUnitMismatch.Detailf("got [%s], expected [%s]", got, want)
}
