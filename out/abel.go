// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/dfm/geco/fea"
)

// Abel performs discrete forward and inverse Abel transforms on a
// uniform radial grid using onion-peeling weights: the profile is
// constant on each annulus and the projection at height y sums the
// chord lengths through the annuli outside y. The weights telescope,
// so a uniform ball projects exactly onto 2*sqrt(a*a - y*y).
type Abel struct {
	N  int     // number of radial samples
	Dr float64 // grid spacing

	w  *mat.Dense // [n][n] chord-length weights, upper triangular
	lu mat.LU     // factorisation for the inverse transform
}

// NewAbel builds the transform for n samples spanning [0, rmax)
func NewAbel(n int, rmax float64) (o *Abel) {
	o = new(Abel)
	o.N = n
	o.Dr = rmax / float64(n)
	o.w = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		yi := float64(i) * o.Dr
		for j := i; j < n; j++ {
			rin := float64(j) * o.Dr
			rout := float64(j+1) * o.Dr
			o.w.Set(i, j, 2.0*(math.Sqrt(rout*rout-yi*yi)-math.Sqrt(rin*rin-yi*yi)))
		}
	}
	o.lu.Factorize(o.w)
	return
}

// Forward projects an axisymmetric radial profile onto the image plane
func (o *Abel) Forward(rho []float64) (proj []float64) {
	var p mat.VecDense
	p.MulVec(o.w, mat.NewVecDense(o.N, rho))
	proj = make([]float64, o.N)
	copy(proj, p.RawVector().Data)
	return
}

// Inverse recovers the radial profile from a projection
func (o *Abel) Inverse(proj []float64) (rho []float64, err error) {
	var x mat.VecDense
	if err = o.lu.SolveVecTo(&x, false, mat.NewVecDense(o.N, proj)); err != nil {
		return
	}
	rho = make([]float64, o.N)
	copy(rho, x.RawVector().Data)
	return
}

// Image samples a density field on a uniform quarter grid and returns
// the sampled rows together with their forward Abel projections, one
// row per z value
func Image(rho *fea.Field, rmax, zmax float64, res int) (img, proj [][]float64, err error) {
	tr := NewAbel(res, rmax)
	zvals := utl.LinSpace(0, zmax, res)
	img = make([][]float64, res)
	proj = make([][]float64, res)
	for j, z := range zvals {
		row := make([]float64, res)
		for i := 0; i < res; i++ {
			var v float64
			if v, err = rho.Eval(fea.Point{R: float64(i) * tr.Dr, Z: z}); err != nil {
				return nil, nil, err
			}
			row[i] = v
		}
		img[j] = row
		proj[j] = tr.Forward(row)
	}
	return
}
