package tridiagonal_test

import (
	"os"
	"strings"
	"testing"

	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/tridiagonal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Basic verifies boundary, rows and the n = rows + 2 invariant.
func TestLoad_Basic(t *testing.T) {
	s := mustLoad(t, "basic.txt", f64Field)

	assert.Equal(t, 3, s.N())
	assert.Equal(t, tridiagonal.Boundary[numeric.Float64]{Kappa1: 0, Kappa2: 0}, s.Boundary())
	assert.Equal(t, tridiagonal.RightBound[numeric.Float64]{Mu1: 1, Mu2: 2}, s.RightBound())
	assert.Equal(t, []tridiagonal.Row[numeric.Float64]{{A: 1, B: 2, C: 1, D: 3}}, s.Rows())
	assert.Equal(t, numeric.NameFloat64, s.Field().Name())
}

// TestLoad_BoundaryOnly verifies that a single boundary line is a valid n=2 system.
func TestLoad_BoundaryOnly(t *testing.T) {
	s := mustLoad(t, "boundary_only.txt", decField)
	assert.Equal(t, 2, s.N())
	assert.Empty(t, s.Rows())
}

// TestLoad_Errors checks every documented failure surfaces as ErrLoad.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		file  string
		cause error
		msg   string
	}{
		{name: "missing file", file: "does_not_exist.txt", cause: os.ErrNotExist},
		{name: "short line", file: "short_line.txt", msg: "line 2: want 4 tokens, got 3"},
		{name: "bad token", file: "bad_token.txt", cause: numeric.ErrParse, msg: "line 2 token 2"},
		{name: "empty file", file: "empty.txt", msg: "missing boundary line"},
		{name: "blank line", file: "blank_line.txt", msg: "line 2: want 4 tokens, got 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tridiagonal.Load(fixture(tc.file), f64Field)
			require.Error(t, err)
			assert.ErrorIs(t, err, tridiagonal.ErrLoad)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

// TestLoad_ExtraTokensIgnored verifies tokens past the fourth are skipped.
func TestLoad_ExtraTokensIgnored(t *testing.T) {
	s := mustLoad(t, "extra_tokens.txt", f64Field)
	assert.Equal(t, 3, s.N())
	assert.Equal(t, []tridiagonal.Row[numeric.Float64]{{A: 1, B: 2, C: 1, D: 3}}, s.Rows())
}

// TestLoad_NonFiniteRejected verifies NaN/Inf tokens fail with ErrNonFinite.
func TestLoad_NonFiniteRejected(t *testing.T) {
	_, err := tridiagonal.Read(strings.NewReader("0 0 1 Inf\n"), f64Field)
	assert.ErrorIs(t, err, tridiagonal.ErrLoad)
	assert.ErrorIs(t, err, numeric.ErrNonFinite)
}

// TestRead_NilField verifies a nil field is a load error, not a panic.
func TestRead_NilField(t *testing.T) {
	_, err := tridiagonal.Read[numeric.Float64](strings.NewReader("0 0 1 2\n"), nil)
	assert.ErrorIs(t, err, tridiagonal.ErrLoad)
	assert.ErrorIs(t, err, tridiagonal.ErrNilField)
}

// TestLoad_RightRoundTrip rebuilds (mu1, d_1..d_m, mu2) from the raw tokens of
// each fixture and compares it with Right() under every backend.
func TestLoad_RightRoundTrip(t *testing.T) {
	for _, name := range []string{"basic.txt", "boundary_only.txt", "dominant.txt", "decimal.txt"} {
		raw, err := os.ReadFile(fixture(name))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

		want := []string{strings.Fields(lines[0])[2]}
		for _, l := range lines[1:] {
			want = append(want, strings.Fields(l)[3])
		}
		want = append(want, strings.Fields(lines[0])[3])

		t.Run(name, func(t *testing.T) {
			requireVecEqual(t, f64Field, want, mustLoad(t, name, f64Field).Right())
			requireVecEqual(t, bigField, want, mustLoad(t, name, bigField).Right())
			requireVecEqual(t, decField, want, mustLoad(t, name, decField).Right())
		})
	}
}

// TestLoad_DecimalKeepsLiterals verifies no digit of a long literal is lost.
func TestLoad_DecimalKeepsLiterals(t *testing.T) {
	s := mustLoad(t, "decimal.txt", decField)
	assert.Equal(t, "0.3333333333333333333333333333333333333333", s.RightBound().Mu1.String())
	assert.Equal(t, "123456789.123456789123456789", s.Rows()[1].D.String())
}

// TestNew_CopiesRows verifies the system owns its rows.
func TestNew_CopiesRows(t *testing.T) {
	rows := []tridiagonal.Row[numeric.Float64]{{A: 1, B: 4, C: 1, D: 0}}
	s, err := tridiagonal.New(f64Field, tridiagonal.Boundary[numeric.Float64]{}, tridiagonal.RightBound[numeric.Float64]{}, rows)
	require.NoError(t, err)

	rows[0].B = 0
	assert.Equal(t, numeric.Float64(4), s.Rows()[0].B, "caller slice must not alias")

	got := s.Rows()
	got[0].B = 0
	assert.Equal(t, numeric.Float64(4), s.Rows()[0].B, "Rows must return a copy")
	assert.Equal(t, 3, s.N())
}

// TestNew_NilField verifies ErrNilField.
func TestNew_NilField(t *testing.T) {
	_, err := tridiagonal.New[numeric.Float64](nil, tridiagonal.Boundary[numeric.Float64]{}, tridiagonal.RightBound[numeric.Float64]{}, nil)
	assert.ErrorIs(t, err, tridiagonal.ErrNilField)
}
