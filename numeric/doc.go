// Package numeric defines the numeric field abstraction used by the solver
// packages and ships three concrete backends.
//
// What is here?
//
//	Number[T] is the value-side contract: closed arithmetic (+, -, *, /),
//	negation, absolute value, a total order (Cmp), an exact zero test and a
//	lossy float64 projection for reporting and cross-checks.
//
//	Field[T] is the capability side: additive and multiplicative identities,
//	text parsing and a stable backend name.
//
// Backends:
//   - Float64: IEEE-754 double precision (fixed precision).
//   - BigFloat: math/big binary floating point, DefaultBigFloatPrecision bits.
//   - Decimal: apd arbitrary-precision decimal, DefaultDecimalDigits digits.
//
// The zero value of every backend is a valid additive identity, so generic
// code may write `var sum T` and start accumulating.
//
// Values are immutable: every operation returns a fresh value and never
// mutates its operands, which keeps them safe to share between goroutines.
//
//	f := numeric.NewDecimalField(0) // default precision
//	x, err := f.Parse("0.1")
//	y := x.Add(f.One()).Quo(x)      // 11
package numeric
