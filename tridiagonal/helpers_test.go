// SPDX-License-Identifier: MIT
// Package tridiagonal_test contains shared fixtures and helpers.
//
// Purpose:
//   • Load testdata fixtures under any backend with one call.
//   • Build random diagonally dominant systems from float64 seeds so every
//     backend sees the same decimal literals.

package tridiagonal_test

import (
	"math/rand"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/tridiagonal"
	"github.com/katalvlaran/tridiag/vector"
	"github.com/stretchr/testify/require"
)

// Backends under test, typed as fields so generic helpers infer T directly.
var (
	f64Field numeric.Field[numeric.Float64]  = numeric.Float64Field{}
	bigField numeric.Field[numeric.BigFloat] = numeric.NewBigFloatField(0)
	decField numeric.Field[numeric.Decimal]  = numeric.NewDecimalField(0)
)

// fixture returns the path of a testdata file.
func fixture(name string) string { return filepath.Join("testdata", name) }

// mustLoad loads a testdata fixture or fails the test.
func mustLoad[T numeric.Number[T]](t testing.TB, name string, f numeric.Field[T]) *tridiagonal.System[T] {
	t.Helper()
	s, err := tridiagonal.Load(fixture(name), f)
	require.NoError(t, err, "Load(%s)", name)

	return s
}

// num parses s in f or fails the test.
func num[T numeric.Number[T]](t testing.TB, f numeric.Field[T], s string) T {
	t.Helper()
	v, err := f.Parse(s)
	require.NoError(t, err, "Parse(%q)", s)

	return v
}

// nums parses every literal in f.
func nums[T numeric.Number[T]](t testing.TB, f numeric.Field[T], ss ...string) []T {
	t.Helper()
	out := make([]T, len(ss))
	for i, s := range ss {
		out[i] = num(t, f, s)
	}

	return out
}

// requireVecEqual asserts element-wise Cmp == 0 against decimal literals.
func requireVecEqual[T numeric.Number[T]](t testing.TB, f numeric.Field[T], want []string, got *vector.Vector[T]) {
	t.Helper()
	vals := got.Values()
	require.Len(t, vals, len(want))
	for i, w := range want {
		require.Equal(t, 0, vals[i].Cmp(num(t, f, w)), "x[%d]: want %s, got %s", i, w, vals[i])
	}
}

// literal formats a float64 as a round-trip decimal literal.
func literal(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// randomDominant returns the literals of a random system with
// |kappa1| < 1, |kappa2| < 1 and |b| >= |a| + |c| + 0.5 on every row.
// Such systems satisfy T1 and never hit a zero pivot.
func randomDominant(rng *rand.Rand, rows int) (head [4]string, body [][4]string) {
	sym := func(scale float64) float64 { return (rng.Float64()*2 - 1) * scale }

	head = [4]string{literal(sym(0.95)), literal(sym(0.95)), literal(sym(10)), literal(sym(10))}
	body = make([][4]string, rows)
	for i := range body {
		a, c := sym(3), sym(3)
		b := abs(a) + abs(c) + 0.5 + rng.Float64()*2
		if rng.Intn(2) == 0 {
			b = -b
		}
		body[i] = [4]string{literal(a), literal(b), literal(c), literal(sym(10))}
	}

	return head, body
}

// build turns literals into a System over f.
func build[T numeric.Number[T]](t testing.TB, f numeric.Field[T], head [4]string, body [][4]string) *tridiagonal.System[T] {
	t.Helper()
	rows := make([]tridiagonal.Row[T], len(body))
	for i, r := range body {
		rows[i] = tridiagonal.Row[T]{A: num(t, f, r[0]), B: num(t, f, r[1]), C: num(t, f, r[2]), D: num(t, f, r[3])}
	}
	s, err := tridiagonal.New(f,
		tridiagonal.Boundary[T]{Kappa1: num(t, f, head[0]), Kappa2: num(t, f, head[1])},
		tridiagonal.RightBound[T]{Mu1: num(t, f, head[2]), Mu2: num(t, f, head[3])},
		rows,
	)
	require.NoError(t, err)

	return s
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
