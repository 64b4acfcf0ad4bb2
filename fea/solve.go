// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/vladimir-ch/iterative"
)

// Krylov solves sparse linear systems iteratively (BiCGStab) with a
// configurable relative tolerance and preconditioner
type Krylov struct {
	RTol  float64 // relative tolerance for the Krylov iteration
	MaxIt int     // maximum number of Krylov iterations; 0 means default
	Pc    string  // preconditioner in use: "ilu", "jacobi" or "none"
}

// Preconditioners returns the names of the available preconditioners
func Preconditioners() []string {
	return []string{"ilu", "jacobi"}
}

// NewKrylov creates a linear solver preferring the named preconditioner.
// An unavailable "amg" preference falls back to ILU with a warning; other
// unknown names are fatal.
func NewKrylov(rtol float64, prefer string) (o *Krylov) {
	o = new(Krylov)
	o.RTol = rtol
	o.Pc = strings.ToLower(prefer)
	available := false
	for _, pc := range Preconditioners() {
		if o.Pc == pc {
			available = true
		}
	}
	switch {
	case available || o.Pc == "none":
		// keep preference
	case o.Pc == "amg" || o.Pc == "":
		io.Pforan("Missing AMG preconditioner, using ILU.\n")
		o.Pc = "ilu"
	default:
		chk.Panic("preconditioner %q is not available", prefer)
	}
	return
}

// Solve solves A x = b starting from the value of x. Failures of the
// factorisation or of the Krylov iteration are returned to the caller.
func (o *Krylov) Solve(A *Matrix, x, b []float64) (err error) {

	// preconditioner
	var psolve func(dst, rhs []float64) error
	switch o.Pc {
	case "ilu":
		ilu, err := NewILU(A)
		if err != nil {
			return err
		}
		psolve = ilu.Solve
	case "jacobi":
		jac, err := NewJacobi(A)
		if err != nil {
			return err
		}
		psolve = jac.Solve
	}

	// initial guess
	x0 := make([]float64, len(x))
	copy(x0, x)

	// solve
	res, err := iterative.LinearSolve(iterative.MatrixOps{MatVec: A.MatVec}, b, &iterative.BiCGStab{}, iterative.Settings{
		X0:            x0,
		Tolerance:     o.RTol,
		MaxIterations: o.MaxIt,
		PSolve:        psolve,
	})
	if err != nil {
		return chk.Err("krylov solver failed:\n%v", err)
	}
	la.VecCopy(x, 1, res.X)
	return
}
