// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/dfm/geco/ansatz"
	"github.com/dfm/geco/fea"
)

// mock provides one-dof "assembly" for iterator tests: vectors come
// from evaluating the forms at an empty sample, the action of any
// operator is the identity and solving returns the right-hand side
type mock struct {
	n        int
	nmat     map[*fea.Matrix]int // matrix assemblies per matrix
	nvec     int                 // vector assemblies
	solveErr error               // returned by Solve when set
}

func newMock(n int) *mock {
	return &mock{n: n, nmat: make(map[*fea.Matrix]int)}
}

func (o *mock) Ndofs() int             { return o.n }
func (o *mock) NewMatrix() *fea.Matrix { return fea.NewMatrix(o.n) }
func (o *mock) NewVector() []float64   { return make([]float64, o.n) }

func (o *mock) AssembleMatrix(a fea.BilinearForm, A *fea.Matrix) error {
	o.nmat[A]++
	return nil
}

func (o *mock) AssembleVector(l fea.LinearForm, b []float64) error {
	o.nvec++
	for i := range b {
		b[i] = l.F(fea.Sample{})
	}
	return nil
}

func (o *mock) AssembleScalar(f fea.Coefficient) (float64, error) {
	return f(fea.Sample{}), nil
}

func (o *mock) AssembleAction(a fea.BilinearForm, u *fea.Field, res []float64) error {
	copy(res, u.V)
	return nil
}

func (o *mock) Solve(A *fea.Matrix, x, b []float64) error {
	if o.solveErr != nil {
		return o.solveErr
	}
	copy(x, b)
	return nil
}

// counterModel records the iterator's model calls
type counterModel struct {
	nreset int
	nread  int
}

func (o *counterModel) Init(prms fun.Prms) error              { return nil }
func (o *counterModel) GetPrms(example bool) fun.Prms         { return nil }
func (o *counterModel) SetFields(nu, bb, mu, ww *fea.Field)   {}
func (o *counterModel) SetIntegrationParameters(numSteps int) {}
func (o *counterModel) ReadParameters() error                 { o.nread++; return nil }
func (o *counterModel) Reset()                                { o.nreset++ }
func (o *counterModel) RadiusOfSupport() float64              { return 0 }
func (o *counterModel) E0() float64                           { return 0 }
func (o *counterModel) Terms(s fea.Sample) ansatz.Terms       { return ansatz.Terms{} }

// newPair builds the coupled one-dof system x = a + b*y, y = c + d*x
// with the right-hand sides reading the live fields (Gauss-Seidel)
func newPair(a, b, c, d float64) (ex, ey *Equation) {
	ux := &fea.Field{V: []float64{0}}
	uy := &fea.Field{V: []float64{0}}
	ex = &Equation{Name: "X", U: ux, Static: true,
		Rhs: fea.LinearForm{F: func(fea.Sample) float64 { return a + b*uy.V[0] }}}
	ey = &Equation{Name: "Y", U: uy, Static: true,
		Rhs: fea.LinearForm{F: func(fea.Sample) float64 { return c + d*ux.V[0] }}}
	return
}

func Test_iter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter01. assembly counts and mass scaling")

	ex, ey := newPair(1, 0.3, 2, 0.2)
	ey.Static = false
	mdl := new(counterModel)
	prov := newMock(1)
	it := Iterator{
		Prov:    prov,
		Eqs:     []*Equation{ex, ey},
		Models:  []ansatz.Model{mdl},
		MassFn:  fea.Cte(5),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  2.5,
		Maxiter: 3,
		Theta:   1,
		Tol:     0, // never met: run all iterations
	}
	ncall := 0
	it.Callback = func(itn int) { ncall++ }

	sum, err := it.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if sum.Converged {
		tst.Errorf("iteration cannot converge to tolerance zero")
		return
	}
	chk.IntAssert(sum.Iterations, 3)
	chk.IntAssert(len(sum.Residuals), 3)
	chk.Scalar(tst, "C", 1e-17, sum.C, 0.5)

	// static operators once, field-dependent ones every iteration
	chk.IntAssert(prov.nmat[ex.A], 1)
	chk.IntAssert(prov.nmat[ey.A], 3)

	// right-hand sides are rebuilt for the sweep and for the residuals
	chk.IntAssert(prov.nvec, 12)

	// models are reset and reloaded every iteration; the callback runs too
	chk.IntAssert(mdl.nreset, 3)
	chk.IntAssert(mdl.nread, 3)
	chk.IntAssert(ncall, 3)
}

func Test_iter02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter02. zero mass distribution aborts")

	ex, _ := newPair(1, 0, 1, 0)
	it := Iterator{
		Prov:    newMock(1),
		Eqs:     []*Equation{ex},
		MassFn:  fea.Cte(0),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 10,
		Theta:   1,
		Tol:     1e-8,
	}
	_, err := it.Run()
	if err == nil {
		tst.Errorf("Run should fail on a zero mass distribution")
		return
	}
}

func Test_iter03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter03. theta=0 leaves fields bit-identical")

	eq := &Equation{Name: "U", U: &fea.Field{V: []float64{0.7}}, Static: true,
		Rhs: fea.LinearForm{F: fea.Cte(3)}}
	it := Iterator{
		Prov:    newMock(1),
		Eqs:     []*Equation{eq},
		MassFn:  fea.Cte(1),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 2,
		Theta:   0,
		Tol:     0,
	}
	sum, err := it.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if eq.U.V[0] != 0.7 {
		tst.Errorf("field changed under theta=0: %v", eq.U.V[0])
		return
	}
	chk.Vector(tst, "residuals", 1e-15, sum.Residuals, []float64{2.3, 2.3})
}

func Test_iter04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter04. sweep sees updates of earlier equations")

	// y = 10*x with x = 2: a single undamped sweep already lands on the
	// fixed point because the second right-hand side reads the updated x
	ex, ey := newPair(2, 0, 0, 10)
	it := Iterator{
		Prov:    newMock(1),
		Eqs:     []*Equation{ex, ey},
		MassFn:  fea.Cte(1),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 10,
		Theta:   1,
		Tol:     1e-8,
	}
	sum, err := it.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if !sum.Converged {
		tst.Errorf("iteration should converge")
		return
	}
	chk.IntAssert(sum.Iterations, 2) // a first pass never counts as converged
	chk.Scalar(tst, "x", 1e-15, ex.U.V[0], 2)
	chk.Scalar(tst, "y", 1e-15, ey.U.V[0], 20)
}

func Test_iter05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter05. damped iteration contracts onto the fixed point")

	a, b, c, d := 1.0, 0.3, 2.0, 0.2
	ex, ey := newPair(a, b, c, d)
	it := Iterator{
		Prov:    newMock(1),
		Eqs:     []*Equation{ex, ey},
		MassFn:  fea.Cte(1),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 100,
		Theta:   0.5,
		Tol:     1e-8,
	}
	sum, err := it.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if !sum.Converged {
		tst.Errorf("iteration should converge within 100 iterations")
		return
	}
	xs := (a + b*c) / (1.0 - b*d)
	ys := c + d*xs
	chk.Scalar(tst, "x", 1e-6, ex.U.V[0], xs)
	chk.Scalar(tst, "y", 1e-6, ey.U.V[0], ys)

	// the residual history of a contraction never increases
	for i := 1; i < len(sum.Residuals); i++ {
		if sum.Residuals[i] > sum.Residuals[i-1]*(1.0+1e-12) {
			tst.Errorf("residual increased at iteration %d: %g > %g", i, sum.Residuals[i], sum.Residuals[i-1])
			return
		}
	}
}

func Test_iter06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter06. running out of iterations is a soft failure")

	ex, ey := newPair(1, 0.3, 2, 0.2)
	it := Iterator{
		Prov:    newMock(1),
		Eqs:     []*Equation{ex, ey},
		MassFn:  fea.Cte(1),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 1,
		Theta:   0.5,
		Tol:     1e-8,
	}
	sum, err := it.Run()
	if err != nil {
		tst.Errorf("reaching maxiter must not be an error:\n%v", err)
		return
	}
	if sum.Converged {
		tst.Errorf("a single iteration cannot report convergence")
		return
	}
	chk.IntAssert(sum.Iterations, 1)
}

func Test_iter07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iter07. linear solver failures propagate")

	ex, ey := newPair(1, 0.3, 2, 0.2)
	prov := newMock(1)
	prov.solveErr = chk.Err("linear solver exploded")
	it := Iterator{
		Prov:    prov,
		Eqs:     []*Equation{ex, ey},
		MassFn:  fea.Cte(1),
		C:       &fea.Const{V: 1},
		Bc0:     &fea.EssentialBc{},
		Target:  1,
		Maxiter: 10,
		Theta:   1,
		Tol:     1e-8,
	}
	_, err := it.Run()
	if err == nil {
		tst.Errorf("Run should fail when the linear solver fails")
		return
	}
	chk.String(tst, err.Error(), "linear solver exploded")
}
