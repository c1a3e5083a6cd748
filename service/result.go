// SPDX-License-Identifier: MIT

package service

import (
	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/tridiagonal"
	"github.com/katalvlaran/tridiag/vector"
)

// Result is the JSON view of one verification run. Numbers are rendered as
// decimal strings so arbitrary-precision values survive serialization.
type Result struct {
	ID         string      `json:"id"`
	RunID      string      `json:"run_id"`
	Backend    string      `json:"backend"`
	T1         bool        `json:"th1"`
	T2         bool        `json:"th2"`
	Solution   []string    `json:"result,omitempty"`
	Residual   []string    `json:"residual,omitempty"`
	Norm       string      `json:"norm,omitempty"`
	CrossCheck *CrossCheck `json:"cross_check,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// CrossCheck holds the max abs deviation of the sweep solution from each
// float64 reference solver. A solver that failed reports its error instead.
type CrossCheck struct {
	Dense       float64 `json:"dense"`
	DenseError  string  `json:"dense_error,omitempty"`
	Sparse      float64 `json:"sparse"`
	SparseError string  `json:"sparse_error,omitempty"`
}

func texts[T numeric.Number[T]](v *vector.Vector[T]) []string {
	if v == nil {
		return nil
	}
	vals := v.Values()
	out := make([]string, len(vals))
	for i, x := range vals {
		out[i] = x.String()
	}

	return out
}

// fill copies a report into res. Solution fields stay empty when the system
// was not solved.
func fill[T numeric.Number[T]](res *Result, rep tridiagonal.Report[T]) {
	res.T1, res.T2 = rep.T1, rep.T2
	if rep.Solution == nil {
		return
	}
	res.Solution = texts(rep.Solution)
	res.Residual = texts(rep.Residual)
	res.Norm = rep.Norm.String()
}
