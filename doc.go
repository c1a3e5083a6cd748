// Package tridiag verifies boundary-extended tridiagonal linear systems.
//
// A system of n = m+2 unknowns x_0..x_{n-1} is given by two boundary
// equations and m interior three-point equations:
//
//	x_0     = kappa1*x_1     + mu1
//	a_i*x_{i-1} - b_i*x_i + c_i*x_{i+1} = d_i      i = 1..m
//	x_{n-1} = kappa2*x_{n-2} + mu2
//
// The library checks two classical sufficient conditions for the sweep
// (Thomas) algorithm (T1, T2), solves the system with it and measures the
// residual, generically over a numeric field:
//
//	numeric/     Number/Field contracts; float64, 1024-bit big.Float and
//	             310-digit apd.Decimal backends
//	vector/      fixed-length Vector[T] with At/Set/Add/Sub/Dot/Norm
//	tridiagonal/ System[T]: Load, CheckT1, CheckT2, Solve, Apply, Residual, Verify
//	reference/   float64 cross-checks with dense (gonum) and sparse LU
//	fixture/     fixture id -> file resolution
//	config/      viper-backed settings
//	service/     backend dispatch, JSON results, parallel batches
//	server/      gin HTTP transport
//	cmd/tridiag  cobra CLI
//
// Quick start:
//
//	sys, err := tridiagonal.Load("fixtures/tridiagonal/basic.txt", numeric.NewBigFloatField(0))
//	rep, err := sys.Verify() // rep.T1, rep.T2, rep.Solution, rep.Residual, rep.Norm
package tridiag
