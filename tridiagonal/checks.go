// SPDX-License-Identifier: MIT

package tridiagonal

// CheckT1 reports the non-strict sufficient condition
//
//	|kappa1| <= 1, |kappa2| < 1, and |b| >= |a| + |c| for every row.
//
// The result is informational only; Solve never consults it.
// A nil or zero-value System reports false.
// Note that rows like (a, b, 0, d) with |a| == |b| satisfy T1 and can still
// produce a zero pivot when |kappa1| == 1.
func (s *System[T]) CheckT1() bool {
	if validateSize(s) != nil {
		return false
	}
	one := s.field.One()
	if s.bound.Kappa1.Abs().Cmp(one) > 0 || s.bound.Kappa2.Abs().Cmp(one) >= 0 {
		return false
	}
	for _, row := range s.rows {
		if row.B.Abs().Cmp(row.A.Abs().Add(row.C.Abs())) < 0 {
			return false
		}
	}

	return true
}

// CheckT2 reports the strict, non-degenerate sufficient condition
//
//	|kappa1| <= 1, |kappa2| <= 1, and for every row
//	a != 0, c != 0, |b| > |a| + |c|.
//
// The result is informational only; Solve never consults it.
// A nil or zero-value System reports false.
func (s *System[T]) CheckT2() bool {
	if validateSize(s) != nil {
		return false
	}
	one := s.field.One()
	if s.bound.Kappa1.Abs().Cmp(one) > 0 || s.bound.Kappa2.Abs().Cmp(one) > 0 {
		return false
	}
	for _, row := range s.rows {
		if row.A.IsZero() || row.C.IsZero() {
			return false
		}
		if row.B.Abs().Cmp(row.A.Abs().Add(row.C.Abs())) <= 0 {
			return false
		}
	}

	return true
}
