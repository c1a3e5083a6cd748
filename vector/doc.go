// Package vector provides a fixed-length vector generic over numeric.Number.
//
// The vector package offers:
//
//   - New / FromSlice constructors (FromSlice copies its input).
//   - Safe indexed access (At, Set) that returns ErrOutOfRange instead of panicking.
//   - Pairwise Add / Sub, Dot product and the max-absolute-value Norm.
//
// Binary operations validate lengths first and return ErrDimensionMismatch
// on a mismatch. Results are always freshly allocated.
package vector
