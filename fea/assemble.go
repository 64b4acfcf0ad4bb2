// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"github.com/cpmech/gosl/la"
)

// integration points for triangles: barycentric coordinates (l1, l2) and
// weight of the interior 3-point rule (degree 2). All points are strictly
// inside the element, so coefficients are never evaluated at r = 0.
var ipsTri = [][]float64{
	{1.0 / 6.0, 1.0 / 6.0, 1.0 / 3.0},
	{2.0 / 3.0, 1.0 / 6.0, 1.0 / 3.0},
	{1.0 / 6.0, 2.0 / 3.0, 1.0 / 3.0},
}

// Assembler evaluates weak forms over a mesh and solves the resulting
// linear systems. It is the linear-algebra provider consumed by the
// self-consistent-field iteration.
type Assembler struct {
	Msh *Mesh   // the mesh
	Lin *Krylov // linear solver
}

// NewAssembler creates an assembler on msh with the given linear solver
func NewAssembler(msh *Mesh, lin *Krylov) *Assembler {
	return &Assembler{msh, lin}
}

// Ndofs returns the number of degrees of freedom (one per vertex)
func (o *Assembler) Ndofs() int { return o.Msh.Nverts() }

// NewMatrix creates a system matrix
func (o *Assembler) NewMatrix() *Matrix { return NewMatrix(o.Ndofs()) }

// NewVector creates a system vector
func (o *Assembler) NewVector() []float64 { return make([]float64, o.Ndofs()) }

// AssembleMatrix assembles the bilinear form into A
func (o *Assembler) AssembleMatrix(a BilinearForm, A *Matrix) (err error) {
	A.Start()
	var k [3][3]float64
	for ic := range o.Msh.Cells {
		o.elemMat(ic, a, &k)
		c := o.Msh.Cells[ic]
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				A.Put(c[m], c[n], k[m][n])
			}
		}
	}
	return
}

// AssembleVector assembles the linear form into b
func (o *Assembler) AssembleVector(l LinearForm, b []float64) (err error) {
	la.VecFill(b, 0)
	for ic := range o.Msh.Cells {
		c := o.Msh.Cells[ic]
		for _, ip := range ipsTri {
			s, S := o.sample(ic, ip)
			coef := o.Msh.Areas[ic] * ip[2] * l.F(s)
			for m := 0; m < 3; m++ {
				b[c[m]] += coef * S[m]
			}
		}
	}
	return
}

// AssembleScalar integrates the coefficient over the domain
func (o *Assembler) AssembleScalar(f Coefficient) (value float64, err error) {
	for ic := range o.Msh.Cells {
		for _, ip := range ipsTri {
			s, _ := o.sample(ic, ip)
			value += o.Msh.Areas[ic] * ip[2] * f(s)
		}
	}
	return
}

// AssembleAction computes res = A(a) u without building the matrix, for
// residual evaluation against the current fields
func (o *Assembler) AssembleAction(a BilinearForm, u *Field, res []float64) (err error) {
	la.VecFill(res, 0)
	var k [3][3]float64
	for ic := range o.Msh.Cells {
		o.elemMat(ic, a, &k)
		c := o.Msh.Cells[ic]
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				res[c[m]] += k[m][n] * u.V[c[n]]
			}
		}
	}
	return
}

// Solve solves A x = b with the configured linear solver
func (o *Assembler) Solve(A *Matrix, x, b []float64) (err error) {
	return o.Lin.Solve(A, x, b)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// sample builds the assembly sample and shape values at one ip of cell ic
func (o *Assembler) sample(ic int, ip []float64) (s Sample, S [3]float64) {
	S[0] = 1.0 - ip[0] - ip[1]
	S[1] = ip[0]
	S[2] = ip[1]
	c := o.Msh.Cells[ic]
	s.Elem = ic
	s.L = S
	for m := 0; m < 3; m++ {
		s.X.R += S[m] * o.Msh.Verts[c[m]].R
		s.X.Z += S[m] * o.Msh.Verts[c[m]].Z
	}
	return
}

// elemMat computes the local matrix of the bilinear form over cell ic
func (o *Assembler) elemMat(ic int, a BilinearForm, k *[3][3]float64) {
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			k[m][n] = 0
		}
	}
	G := &o.Msh.Grads[ic]
	for _, ip := range ipsTri {
		s, S := o.sample(ic, ip)
		coef := o.Msh.Areas[ic] * ip[2]
		if a.Grad != nil {
			g := coef * a.Grad(s)
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					k[m][n] += g * (G[m][0]*G[n][0] + G[m][1]*G[n][1])
				}
			}
		}
		if a.Dr != nil {
			d := coef * a.Dr(s)
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					k[m][n] += d * S[m] * G[n][0]
				}
			}
		}
		if a.Mass != nil {
			mv := coef * a.Mass(s)
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					k[m][n] += mv * S[m] * S[n]
				}
			}
		}
	}
}
