package quantity

import (
	"testing"

	"github.com/oneconcern/zcash-scale-calc/pkg/errors"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity/status"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDiv(t *testing.T, a, b Quantity) Quantity {
	q, err := a.Div(b)
	require.NoError(t, err)
	return q
}

func TestRegistryInterning(t *testing.T) {
	reg := NewRegistry("SEC", "COMMIT")
	sec := reg.Unit("SEC")
	assert.Same(t, sec, reg.Unit("SEC"))

	u, ok := reg.Lookup("COMMIT")
	require.True(t, ok)
	assert.Equal(t, "COMMIT", u.Name())

	_, ok = reg.Lookup("YEAR")
	assert.False(t, ok)
	reg.Unit("YEAR")
	assert.Equal(t, []string{"COMMIT", "SEC", "YEAR"}, reg.Names())

	// independent registries agree on dimensions by name
	other := NewRegistry()
	assert.NotSame(t, sec, other.Unit("SEC"))
	assert.True(t, sec.Dimension().Equal(other.Unit("SEC").Dimension()))
}

func TestRegistryQuantity(t *testing.T) {
	reg := NewRegistry()
	commit := reg.Unit("COMMIT")

	q, err := reg.Quantity("10000.5", commit.Dimension())
	require.NoError(t, err)
	assert.True(t, q.Magnitude().Equal(decimal.RequireFromString("10000.5")))
	assert.True(t, q.Dimension().Equal(commit.Dimension()))

	_, err = reg.Quantity("ten thousand", commit.Dimension())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrParse))
}

func TestMulAssociativeCommutative(t *testing.T) {
	reg := NewRegistry()
	commit, sec, year := reg.Unit("COMMIT"), reg.Unit("SEC"), reg.Unit("YEAR")

	a := mustDiv(t, commit.Of(10000), sec.One())
	b := year.Of(200)
	c := mustDiv(t, sec.Of(31536000), year.One())

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	assert.True(t, left.Equal(right))
	assert.True(t, a.Mul(b).Dimension().Equal(b.Mul(a).Dimension()))
	assert.True(t, a.Mul(c).Equal(c.Mul(a)))

	assert.True(t, left.Dimension().Equal(commit.Dimension()))
	assert.Equal(t, "63072000000000 COMMIT", left.String())
}

func TestDivBySelf(t *testing.T) {
	reg := NewRegistry()
	commit, sec := reg.Unit("COMMIT"), reg.Unit("SEC")

	for _, q := range []Quantity{
		commit.Of(3),
		mustDiv(t, commit.Of(10000), sec.One()),
		New(decimal.RequireFromString("-0.125"), sec.Dimension().Pow(2)),
		Dimensionless(decimal.NewFromInt(7)),
	} {
		r := mustDiv(t, q, q)
		assert.True(t, r.IsDimensionless(), "%s / %s", q, q)
		assert.True(t, r.Magnitude().Equal(decimal.NewFromInt(1)), "%s / %s", q, q)
	}
}

func TestDivByZero(t *testing.T) {
	reg := NewRegistry()
	sec := reg.Unit("SEC")

	_, err := sec.One().Div(sec.Of(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrDivideByZero))
}

func TestPow(t *testing.T) {
	reg := NewRegistry()
	sec := reg.Unit("SEC")

	q, err := sec.Of(2).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, "8 SEC³", q.String())

	q, err = sec.Of(2).Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, "0.5 SEC⁻¹", q.String())

	q, err = sec.Of(5).Pow(0)
	require.NoError(t, err)
	assert.True(t, q.IsDimensionless())
	assert.Equal(t, "1", q.String())

	q, err = Dimensionless(decimal.NewFromInt(2)).Pow(32)
	require.NoError(t, err)
	assert.Equal(t, "4294967296", q.String())

	_, err = sec.Of(0).Pow(-2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrDivideByZero))
}

func TestAddSubCmp(t *testing.T) {
	reg := NewRegistry()
	commit, sec := reg.Unit("COMMIT"), reg.Unit("SEC")

	sum, err := commit.Of(2).Add(commit.Of(3))
	require.NoError(t, err)
	assert.True(t, sum.Equal(commit.Of(5)))

	diff, err := commit.Of(2).Sub(commit.Of(3))
	require.NoError(t, err)
	assert.True(t, diff.Equal(commit.Of(-1)))

	c, err := commit.Of(2).Cmp(commit.Of(3))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
	c, err = commit.Of(3).Cmp(commit.Of(3))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	rate := mustDiv(t, commit.One(), sec.One())
	pairs := [][2]Quantity{
		{commit.Of(1), sec.Of(1)},
		{commit.Of(1), rate},
		{commit.Of(1), Dimensionless(decimal.NewFromInt(1))},
		{rate, rate.Mul(sec.One())},
	}
	for _, p := range pairs {
		_, err := p[0].Add(p[1])
		assert.True(t, errors.Is(err, status.ErrUnitMismatch), "add %s + %s", p[0], p[1])
		_, err = p[0].Sub(p[1])
		assert.True(t, errors.Is(err, status.ErrUnitMismatch), "sub %s - %s", p[0], p[1])
		_, err = p[0].Cmp(p[1])
		assert.True(t, errors.Is(err, status.ErrUnitMismatch), "cmp %s <> %s", p[0], p[1])
	}
}

func TestLn(t *testing.T) {
	reg := NewRegistry()
	commit := reg.Unit("COMMIT")

	ln, err := Dimensionless(decimal.NewFromInt(1)).Ln()
	require.NoError(t, err)
	assert.Equal(t, "0.0000000000", ln.StringFixed(10))

	_, err = commit.Of(100).Ln()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrDimension))

	ln100, err := commit.Of(100).LnMagnitudeUnchecked()
	require.NoError(t, err)
	ln10, err := Dimensionless(decimal.NewFromInt(10)).Ln()
	require.NoError(t, err)
	assert.Equal(t, "2.0000000000", ln100.DivRound(ln10, 20).StringFixed(10))

	_, err = commit.Of(0).LnMagnitudeUnchecked()
	assert.True(t, errors.Is(err, status.ErrDomain))
	_, err = commit.Of(-4).LnMagnitudeUnchecked()
	assert.True(t, errors.Is(err, status.ErrDomain))
}

func TestFormat(t *testing.T) {
	reg := NewRegistry()
	commit, sec, minute := reg.Unit("COMMIT"), reg.Unit("SEC"), reg.Unit("MIN")

	rate := mustDiv(t, commit.Of(10000), sec.One())
	assert.Equal(t, "10000 COMMIT·SEC⁻¹", rate.Format(0))
	assert.Equal(t, "10000.00 COMMIT·SEC⁻¹", rate.Format(2))
	assert.Equal(t, "60 SEC·MIN⁻¹", mustDiv(t, sec.Of(60), minute.One()).String())
	assert.Equal(t, "1 MIN⁻²·SEC⁻¹", mustDiv(t, Dimensionless(decimal.NewFromInt(1)), sec.One().Mul(minute.One()).Mul(minute.One())).String())
	assert.Equal(t, "0.50", Dimensionless(decimal.RequireFromString("0.5")).Format(2))
}

func TestDimensionCanonical(t *testing.T) {
	reg := NewRegistry()
	sec, year := reg.Unit("SEC").Dimension(), reg.Unit("YEAR").Dimension()

	d := sec.Mul(year).Div(sec)
	assert.True(t, d.Equal(year))
	assert.Equal(t, 0, d.Exponent("SEC"))
	assert.True(t, year.Div(year).IsDimensionless())
	assert.True(t, sec.Pow(0).IsDimensionless())
	assert.Equal(t, -2, sec.Pow(-2).Exponent("SEC"))
	assert.Equal(t, "", Dimension{}.String())
}
