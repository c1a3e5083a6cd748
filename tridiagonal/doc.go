// Package tridiagonal solves boundary-extended tridiagonal systems over any
// numeric field and reports how well-posed and how accurate the result is.
//
// What is a boundary-extended tridiagonal system?
//
//	N+1 unknowns x0..xN. The interior equations couple three neighbours,
//	the two boundary equations couple the first two / last two unknowns:
//
//	  x0 - kappa1*x1                 = mu1
//	  a_i*x(i-1) - b_i*x(i) + c_i*x(i+1) = d_i      i = 1..N-1
//	  xN - kappa2*x(N-1)             = mu2
//
//	The system size is always n = len(rows) + 2; a system with no interior
//	rows is the 2×2 boundary coupling.
//
// Key features:
//   - Load / Read: text fixtures, every token parsed by the numeric field.
//   - Solve: generalized Thomas sweep, O(n), exact-zero pivot test.
//   - CheckT1 / CheckT2: diagonal-dominance sufficient conditions.
//   - Apply / Right / Residual: the system as a linear operator and the
//     max-norm of A·x - rhs.
//   - Verify: all of the above in one Report.
//
// Usage:
//
//	sys, err := tridiagonal.Load("fixtures/tridiagonal/basic.txt", numeric.NewDecimalField(0))
//	if err != nil { ... }                 // errors.Is(err, tridiagonal.ErrLoad)
//	rep, err := sys.Verify()
//	if errors.Is(err, tridiagonal.ErrUnsolvable) { ... }
//	fmt.Println(rep.T1, rep.T2, rep.Solution, rep.Norm)
//
// A System is immutable, so one value may be shared by many goroutines.
package tridiagonal
