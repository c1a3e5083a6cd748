// SPDX-License-Identifier: MIT

package service_test

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tridiag/config"
	"github.com/katalvlaran/tridiag/fixture"
	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/service"
	"github.com/katalvlaran/tridiag/tridiagonal"
)

func newRunner(t *testing.T, backend string, mutate ...func(*config.Config)) (*service.Runner, *observer.ObservedLogs) {
	t.Helper()
	cfg := config.Default()
	cfg.FixturesDir = "testdata"
	cfg.Backend = backend
	for _, m := range mutate {
		m(&cfg)
	}
	core, logs := observer.New(zapcore.InfoLevel)
	r, err := service.NewRunner(cfg, zap.New(core))
	require.NoError(t, err)

	return r, logs
}

func floats(t *testing.T, ss []string) []float64 {
	t.Helper()
	out := make([]float64, len(ss))
	for i, s := range ss {
		f, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		out[i] = f
	}

	return out
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "quad"
	_, err := service.NewRunner(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_Basic(t *testing.T) {
	for _, backend := range numeric.Backends() {
		t.Run(backend, func(t *testing.T) {
			r, logs := newRunner(t, backend)

			res, err := r.Run(context.Background(), "basic")
			require.NoError(t, err)
			assert.Equal(t, "basic", res.ID)
			assert.Equal(t, backend, res.Backend)
			assert.NotEmpty(t, res.RunID)
			assert.True(t, res.T1)
			assert.False(t, res.T2)
			// decimal keeps exponents ("0.0"), so compare values
			assert.Equal(t, []float64{1, 0, 2}, floats(t, res.Solution))
			assert.Equal(t, []float64{0, 0, 0}, floats(t, res.Residual))
			assert.Empty(t, res.Error)
			assert.Nil(t, res.CrossCheck)

			assert.Equal(t, 1, logs.FilterMessage("verification done").Len())
		})
	}
}

func TestRun_Decimal(t *testing.T) {
	r, _ := newRunner(t, numeric.NameDecimal)

	res, err := r.Run(context.Background(), "decimal")
	require.NoError(t, err)
	assert.Len(t, res.Solution, 4)
}

func TestRun_CrossCheck(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64, func(c *config.Config) { c.CrossCheck = true })

	res, err := r.Run(context.Background(), "dominant")
	require.NoError(t, err)
	require.NotNil(t, res.CrossCheck)
	assert.Empty(t, res.CrossCheck.DenseError)
	assert.Empty(t, res.CrossCheck.SparseError)
	assert.Less(t, res.CrossCheck.Dense, 1e-12)
	assert.Less(t, res.CrossCheck.Sparse, 1e-12)
}

func TestRun_CrossCheckOverflow(t *testing.T) {
	r, _ := newRunner(t, numeric.NameBigFloat, func(c *config.Config) { c.CrossCheck = true })

	res, err := r.Run(context.Background(), "overflow")
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	require.Len(t, res.Solution, 3)
	x1, ok := new(big.Float).SetString(res.Solution[1])
	require.True(t, ok, res.Solution[1])
	want, _ := new(big.Float).SetString("1e600")
	ratio, _ := new(big.Float).Quo(x1, want).Float64()
	assert.InDelta(t, 1, ratio, 1e-12)

	// the float64 references cannot represent x[1] = 1e600
	require.NotNil(t, res.CrossCheck)
	assert.NotEmpty(t, res.CrossCheck.DenseError)
	assert.NotEmpty(t, res.CrossCheck.SparseError)
	assert.Zero(t, res.CrossCheck.Dense)
	assert.Zero(t, res.CrossCheck.Sparse)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dense_error"`)
}

func TestRun_Unsolvable(t *testing.T) {
	r, logs := newRunner(t, numeric.NameBigFloat)

	res, err := r.Run(context.Background(), "singular")
	assert.ErrorIs(t, err, tridiagonal.ErrUnsolvable)
	assert.True(t, res.T1)
	assert.False(t, res.T2)
	assert.Nil(t, res.Solution)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, 1, logs.FilterMessage("verification failed").Len())
}

func TestRun_Errors(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64)
	ctx := context.Background()

	_, err := r.Run(ctx, "../basic")
	assert.ErrorIs(t, err, fixture.ErrInvalidID)

	res, err := r.Run(ctx, "missing")
	assert.ErrorIs(t, err, fixture.ErrNotFound)
	assert.Equal(t, "missing", res.ID)
	assert.NotEmpty(t, res.Error)

	_, err = r.Run(ctx, "short_line")
	assert.ErrorIs(t, err, tridiagonal.ErrLoad)
}

func TestRun_CanceledContext(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "basic")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck(t *testing.T) {
	r, _ := newRunner(t, numeric.NameDecimal)

	res, err := r.Check(context.Background(), "dominant")
	require.NoError(t, err)
	assert.True(t, res.T1)
	assert.True(t, res.T2)
	assert.Nil(t, res.Solution)

	res, err = r.Check(context.Background(), "singular")
	require.NoError(t, err, "checks never solve")
	assert.True(t, res.T1)
}

func TestRunBatch_AllFixtures(t *testing.T) {
	r, _ := newRunner(t, numeric.NameBigFloat, func(c *config.Config) { c.Workers = 2 })

	results, err := r.RunBatch(context.Background(), nil)
	require.NoError(t, err)

	ids := make([]string, len(results))
	failed := map[string]bool{}
	for i, res := range results {
		ids[i] = res.ID
		failed[res.ID] = res.Error != ""
	}
	assert.Equal(t, []string{"basic", "decimal", "dominant", "overflow", "short_line", "singular"}, ids)
	assert.Equal(t, map[string]bool{
		"basic": false, "decimal": false, "dominant": false, "overflow": false, "short_line": true, "singular": true,
	}, failed)
}

func TestRunBatch_ExplicitIDs(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64)

	results, err := r.RunBatch(context.Background(), []string{"dominant", "nope", "basic"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "dominant", results[0].ID)
	assert.Contains(t, results[1].Error, "not found")
	assert.Equal(t, []string{"1", "0", "2"}, results[2].Solution)
}

func TestRunBatch_Canceled(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RunBatch(ctx, []string{"basic", "dominant"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_JSON(t *testing.T) {
	r, _ := newRunner(t, numeric.NameFloat64)
	res, err := r.Run(context.Background(), "basic")
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, true, m["th1"])
	assert.Equal(t, false, m["th2"])
	assert.Equal(t, []any{"1", "0", "2"}, m["result"])
	assert.NotContains(t, m, "error")
	assert.NotContains(t, m, "cross_check")
}
