// Package reference cross-checks the tridiagonal sweep against general
// purpose float64 solvers.
//
// Assemble lays a tridiagonal.System out as an explicit matrix in COO form.
// DenseSolve (gonum LU with partial pivoting) and SparseSolve (sparse LU)
// solve that matrix independently of the sweep's alpha/beta bookkeeping, and
// MaxDeviation measures how far a sweep solution lies from a reference one.
//
// The reference solvers pivot, so they also succeed on some systems where the
// non-pivoting sweep reports tridiagonal.ErrUnsolvable.
package reference
