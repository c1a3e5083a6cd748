// SPDX-License-Identifier: MIT

package numeric

// Backend names reported by Field.Name. They double as configuration values.
const (
	NameFloat64  = "float64"
	NameBigFloat = "bigfloat"
	NameDecimal  = "decimal"
)

// Backends returns the backend names in a stable order.
func Backends() []string { return []string{NameFloat64, NameBigFloat, NameDecimal} }

// IsBackend reports whether name is one of the Name* constants.
func IsBackend(name string) bool {
	switch name {
	case NameFloat64, NameBigFloat, NameDecimal:
		return true
	}

	return false
}

// Number is the value-side contract of a numeric field element.
// T is the implementing type itself (e.g. Number[Float64]).
//
// Contract:
//   - Operations never mutate the receiver or the argument.
//   - Cmp is a total order on finite values: -1, 0, +1.
//   - IsZero is an exact test; no tolerance is applied.
//   - Quo by an exact zero is undefined for the backend; the solver never
//     performs it (pivots are checked with IsZero first).
type Number[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	Neg() T
	Abs() T
	Cmp(y T) int
	IsZero() bool

	// Float64 returns the nearest float64; used for reporting and reference solves.
	Float64() float64

	String() string
}

// Field supplies identities and text parsing for a Number backend.
// Implementations are small value types and safe for concurrent use.
type Field[T Number[T]] interface {
	// Name returns the backend name (one of the Name* constants).
	Name() string
	// Zero returns the additive identity at the field's precision.
	Zero() T
	// One returns the multiplicative identity at the field's precision.
	One() T
	// Parse converts a decimal token to T, failing with ErrParse or ErrNonFinite.
	Parse(s string) (T, error)
}

// Compile-time assertions.
var (
	_ Field[Float64]  = Float64Field{}
	_ Field[BigFloat] = BigFloatField{}
	_ Field[Decimal]  = DecimalField{}
)

// Max returns the larger of x and y under Cmp.
func Max[T Number[T]](x, y T) T {
	if x.Cmp(y) >= 0 {
		return x
	}

	return y
}
