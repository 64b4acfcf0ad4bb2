// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/dfm/geco/ansatz"
	"github.com/dfm/geco/fea"
)

// Provider assembles weak forms and solves the linear systems
type Provider interface {
	Ndofs() int
	NewMatrix() *fea.Matrix
	NewVector() []float64
	AssembleMatrix(a fea.BilinearForm, A *fea.Matrix) error
	AssembleVector(l fea.LinearForm, b []float64) error
	AssembleScalar(f fea.Coefficient) (float64, error)
	AssembleAction(a fea.BilinearForm, u *fea.Field, res []float64) error
	Solve(A *fea.Matrix, x, b []float64) error
}

// Equation is one field equation of the coupled system. The right-hand
// side is a closure over the live fields, so reassembling it during a
// sweep observes the updates already applied to earlier equations
// (block Gauss-Seidel).
type Equation struct {

	// definition
	Name   string             // field name; e.g. "NU"
	Lhs    fea.BilinearForm   // left-hand-side operator
	Rhs    fea.LinearForm     // right-hand-side functional
	Static bool               // operator is field-independent: assemble once
	Ebcs   []*fea.EssentialBc // boundary conditions, applied in order
	U      *fea.Field         // the unknown, updated in place

	// run-time
	A *fea.Matrix // system matrix
	x []float64   // solution buffer
	b []float64   // right-hand-side vector
	f []float64   // residual vector
}

// Summary records the outcome of a self-consistent-field run
type Summary struct {
	Converged  bool      // tolerance met before maxiter
	Iterations int       // number of outer iterations performed
	Tolerance  float64   // residual tolerance used
	Residuals  []float64 // aggregate residual after each iteration
	C          float64   // last scale constant
}

// Iterator drives the damped self-consistent-field iteration: mass
// rescale, block Gauss-Seidel sweep with damped updates, residual check.
type Iterator struct {
	Prov     Provider         // linear-algebra provider
	Eqs      []*Equation      // the coupled equations, swept in order
	Models   []ansatz.Model   // matter models (reset every iteration)
	MassFn   fea.Coefficient  // unscaled mass integrand
	C        *fea.Const       // shared scale constant
	Bc0      *fea.EssentialBc // zero-Dirichlet residual filter
	Target   float64          // target mass
	Maxiter  int              // maximum number of outer iterations
	Theta    float64          // damping factor within [0, 1]
	Tol      float64          // residual tolerance
	Callback func(it int)     // after-update hook; may be nil
}

// Run executes the iteration until convergence or Maxiter. A zero
// assembled mass aborts with an error; failures inside assembly or the
// linear solves propagate unmodified. Reaching Maxiter without meeting
// the tolerance is a soft failure: the summary reports Converged=false
// and the last iterate stays in the fields.
func (o *Iterator) Run() (sum Summary, err error) {

	// check
	if len(o.Eqs) < 1 {
		err = chk.Err("iterator needs at least one equation")
		return
	}
	sum.Tolerance = o.Tol

	// allocate linear systems
	for _, eq := range o.Eqs {
		eq.A = o.Prov.NewMatrix()
		eq.x = o.Prov.NewVector()
		eq.b = o.Prov.NewVector()
		eq.f = o.Prov.NewVector()
	}

	// field-independent operators are assembled once for the whole run
	for _, eq := range o.Eqs {
		if eq.Static {
			if err = o.Prov.AssembleMatrix(eq.Lhs, eq.A); err != nil {
				return
			}
			for _, ebc := range eq.Ebcs {
				ebc.ApplyToMat(eq.A)
			}
		}
	}

	norms := make([]float64, len(o.Eqs))
	for it := 0; it < o.Maxiter; it++ {

		io.Pf("\niteration %d\n", it)
		sum.Iterations = it + 1

		// reset matter models and reload their parameters
		for _, mdl := range o.Models {
			mdl.Reset()
			if err = mdl.ReadParameters(); err != nil {
				return
			}
		}

		// rescale to the target mass
		var mass float64
		if mass, err = o.Prov.AssembleScalar(o.MassFn); err != nil {
			return
		}
		if mass == 0 {
			err = chk.Err("zero mass distribution")
			return
		}
		o.C.V = o.Target / mass
		sum.C = o.C.V
		io.Pf("C = %.15g\n", o.C.V)

		// sweep the equations in order
		for _, eq := range o.Eqs {

			// field-dependent operators are rebuilt against the
			// latest fields, with boundary conditions reapplied
			if !eq.Static {
				eq.A.Start()
				if err = o.Prov.AssembleMatrix(eq.Lhs, eq.A); err != nil {
					return
				}
				for _, ebc := range eq.Ebcs {
					ebc.ApplyToMat(eq.A)
				}
			}

			// right-hand side against the latest fields
			if err = o.Prov.AssembleVector(eq.Rhs, eq.b); err != nil {
				return
			}
			for _, ebc := range eq.Ebcs {
				ebc.ApplyToVec(eq.b)
			}

			// solve, warm-started from the current iterate
			la.VecCopy(eq.x, 1, eq.U.V)
			if err = o.Prov.Solve(eq.A, eq.x, eq.b); err != nil {
				return
			}

			// damped update. Theta = 0 freezes the field (and must
			// leave it bit-identical, hence the skip).
			if o.Theta > 0 {
				for i, v := range eq.U.V {
					eq.U.V[i] = (1.0-o.Theta)*v + o.Theta*eq.x[i]
				}
			}
		}

		// derived-field hook
		if o.Callback != nil {
			o.Callback(it)
		}

		// nonlinear residuals on the post-update fields
		resid := 0.0
		for i, eq := range o.Eqs {
			if err = o.Prov.AssembleAction(eq.Lhs, eq.U, eq.f); err != nil {
				return
			}
			if err = o.Prov.AssembleVector(eq.Rhs, eq.b); err != nil {
				return
			}
			for j := range eq.f {
				eq.f[j] -= eq.b[j]
			}
			o.Bc0.ApplyToVec(eq.f)
			norms[i] = la.VecLargest(eq.f, 1)
			if norms[i] > resid {
				resid = norms[i]
			}
		}
		sum.Residuals = append(sum.Residuals, resid)
		msg := ""
		for i, eq := range o.Eqs {
			if i > 0 {
				msg += ", "
			}
			msg += io.Sf("%s=%.3g", eq.Name, norms[i])
		}
		io.Pf("||F|| = %.3g (%s)\n", resid, msg)

		// convergence test. The it > 0 guard rejects a spurious pass
		// before any relaxation has happened.
		if resid < o.Tol && it > 0 {
			sum.Converged = true
			io.Pf("\nSOLUTION CONVERGED in %d iterations to tolerance %g\n", it+1, o.Tol)
			return
		}
	}

	io.PfRed("\n*** ITERATIONS FAILED TO CONVERGE\n")
	return
}
