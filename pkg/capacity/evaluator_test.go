package capacity

import (
	"testing"

	"github.com/oneconcern/zcash-scale-calc/pkg/capacity/status"
	"github.com/oneconcern/zcash-scale-calc/pkg/errors"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	qstatus "github.com/oneconcern/zcash-scale-calc/pkg/quantity/status"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

func newTestEvaluator(t *testing.T) (*Evaluator, *quantity.Registry) {
	reg := quantity.NewRegistry()
	return NewEvaluator(reg, Logger(zaptest.NewLogger(t))), reg
}

func TestSecondsPerYear(t *testing.T) {
	e, _ := newTestEvaluator(t)
	assert.Equal(t, "31536000 SEC·YEAR⁻¹", e.SecondsPerYear().String())
}

func TestDefaults(t *testing.T) {
	e, reg := newTestEvaluator(t)
	assert.Equal(t, "10000 COMMIT·SEC⁻¹", e.DefaultOutputRate().String())
	assert.Equal(t, "200 YEAR", e.DefaultLifetime().String())
	assert.Equal(t, "2 BRANCH", e.DefaultBranchFactor().String())
	assert.Equal(t, []string{"BRANCH", "COMMIT", "DAY", "HOUR", "LEVEL", "MIN", "SEC", "YEAR"}, reg.Names())
}

func TestDepthFromLifetime(t *testing.T) {
	e, _ := newTestEvaluator(t)

	est, err := e.DepthFromLifetime(e.DefaultOutputRate(), e.DefaultLifetime(), e.DefaultBranchFactor())
	require.NoError(t, err)

	assert.Equal(t, DepthFromLifetime, est.Mode)
	assert.Equal(t, "63072000000000 COMMIT", est.TotalCommits.String())
	assert.True(t, est.Lifetime.Equal(e.DefaultLifetime()))
	assert.Equal(t, "45.84", est.LogTotalCommits.StringFixed(2))
	assert.Equal(t, int64(46), est.MinTreeHeight)
}

func TestDepthFromLifetimeBranchFactor(t *testing.T) {
	e, _ := newTestEvaluator(t)
	u := e.Units()

	est, err := e.DepthFromLifetime(e.DefaultOutputRate(), e.DefaultLifetime(), u.Branch.Of(4))
	require.NoError(t, err)
	assert.Equal(t, "22.92", est.LogTotalCommits.StringFixed(2))
	assert.Equal(t, int64(23), est.MinTreeHeight)
}

func TestLifetimeFromDepth(t *testing.T) {
	e, _ := newTestEvaluator(t)
	u := e.Units()

	est, err := e.LifetimeFromDepth(e.DefaultOutputRate(), u.Level.Of(32), e.DefaultBranchFactor())
	require.NoError(t, err)

	assert.Equal(t, LifetimeFromDepth, est.Mode)
	assert.Equal(t, "4294967296 COMMIT", est.TotalCommits.String())
	assert.True(t, est.Lifetime.Dimension().Equal(u.Year.Dimension()))
	assert.Equal(t, "0.01362 YEAR", est.Lifetime.Format(5))
	assert.Equal(t, "32.00", est.LogTotalCommits.StringFixed(2))
	assert.Equal(t, int64(32), est.MinTreeHeight)
	assert.True(t, est.Depth.Equal(u.Level.Of(32)))
}

func TestEvaluateDefaultParams(t *testing.T) {
	e, _ := newTestEvaluator(t)

	est, err := e.Evaluate(e.DefaultParams(DepthFromLifetime))
	require.NoError(t, err)
	assert.Equal(t, int64(46), est.MinTreeHeight)

	est, err = e.Evaluate(e.DefaultParams(LifetimeFromDepth))
	require.NoError(t, err)
	assert.Equal(t, int64(32), est.MinTreeHeight)

	p := e.DefaultParams("sideways")
	_, err = e.Evaluate(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidArgument))
}

func TestValidation(t *testing.T) {
	e, reg := newTestEvaluator(t)
	u := e.Units()
	dec := decimal.RequireFromString

	for _, toPin := range []struct {
		name     string
		mutate   func(*Params)
		mismatch bool
	}{
		{name: "branch factor 1", mutate: func(p *Params) { p.BranchFactor = u.Branch.Of(1) }},
		{name: "branch factor below 1", mutate: func(p *Params) { p.BranchFactor = quantity.New(dec("0.5"), u.Branch.Dimension()) }},
		{name: "zero rate", mutate: func(p *Params) { p.OutputRate = u.Commit.Of(0).Per(u.Sec) }},
		{name: "negative rate", mutate: func(p *Params) { p.OutputRate = u.Commit.Of(-5).Per(u.Sec) }},
		{name: "zero lifetime", mutate: func(p *Params) { p.Lifetime = u.Year.Of(0) }},
		{name: "rate without time", mutate: func(p *Params) { p.OutputRate = u.Commit.Of(10000) }, mismatch: true},
		{name: "lifetime in seconds", mutate: func(p *Params) { p.Lifetime = u.Sec.Of(10) }, mismatch: true},
		{name: "dimensionless branch factor", mutate: func(p *Params) { p.BranchFactor = quantity.Dimensionless(dec("2")) }, mismatch: true},
		{name: "foreign unit", mutate: func(p *Params) { p.BranchFactor = reg.Unit("ARITY").Of(2) }, mismatch: true},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			p := e.DefaultParams(DepthFromLifetime)
			fixture.mutate(&p)
			_, err := e.Evaluate(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, status.ErrInvalidArgument))
			assert.Equal(t, fixture.mismatch, errors.Is(err, qstatus.ErrUnitMismatch))
		})
	}
}

func TestValidateDepth(t *testing.T) {
	e, _ := newTestEvaluator(t)
	u := e.Units()

	for _, depth := range []quantity.Quantity{
		u.Level.Of(0),
		u.Level.Of(-3),
		quantity.New(decimal.RequireFromString("32.5"), u.Level.Dimension()),
		u.Level.Of(MaxDepth + 1),
		u.Year.Of(32),
	} {
		p := e.DefaultParams(LifetimeFromDepth)
		p.Depth = depth
		_, err := e.Evaluate(p)
		require.Error(t, err, "depth %s", depth)
		assert.True(t, errors.Is(err, status.ErrInvalidArgument), "depth %s", depth)
	}

	p := e.DefaultParams(LifetimeFromDepth)
	p.Depth = u.Level.Of(MaxDepth)
	_, err := e.Evaluate(p)
	require.NoError(t, err)
}

func TestValidateReportsAllViolations(t *testing.T) {
	e, _ := newTestEvaluator(t)
	u := e.Units()

	err := e.Validate(Params{
		Mode:         DepthFromLifetime,
		OutputRate:   u.Commit.Of(0).Per(u.Sec),
		Lifetime:     u.Year.Of(-1),
		BranchFactor: u.Branch.Of(1),
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	for _, violation := range multierr.Errors(err) {
		assert.True(t, errors.Is(violation, status.ErrInvalidArgument))
	}
}
