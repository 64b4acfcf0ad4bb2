// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/dfm/geco/fea"
)

// constants
var (
	Npts = 101 // number of points along sampling rays
)

// SampleEquator evaluates a field along the equatorial ray z = 0
func SampleEquator(fld *fea.Field, npts int) (rr, vv []float64) {
	rr = utl.LinSpace(0, fld.Msh.R, npts)
	vv = make([]float64, npts)
	for i, r := range rr {
		v, err := fld.Eval(fea.Point{R: r, Z: 0})
		if err != nil {
			chk.Panic("cannot evaluate field on equator at r=%g: %v", r, err)
		}
		vv[i] = v
	}
	return
}

// SampleAxis evaluates a field along the symmetry axis r = 0
func SampleAxis(fld *fea.Field, npts int) (zz, vv []float64) {
	zz = utl.LinSpace(-fld.Msh.R, fld.Msh.R, npts)
	vv = make([]float64, npts)
	for i, z := range zz {
		v, err := fld.Eval(fea.Point{R: 0, Z: z})
		if err != nil {
			chk.Panic("cannot evaluate field on axis at z=%g: %v", z, err)
		}
		vv[i] = v
	}
	return
}

// PlotIteration saves equator and axis profiles of the derived density
// at one iteration of the solver
func PlotIteration(vals []float64, msh *fea.Mesh, dirout, fnkey string, it int) {
	rho := &fea.Field{Msh: msh, V: vals}
	rr, ve := SampleEquator(rho, Npts)
	zz, va := SampleAxis(rho, Npts)
	plt.Reset(false, nil)
	plt.Plot(rr, ve, &plt.A{C: "b", Ls: "-", L: "equator"})
	plt.Plot(zz, va, &plt.A{C: "r", Ls: "--", L: "axis"})
	plt.Gll("$s$", GetTexLabel("rho", ""), nil)
	plt.Title(io.Sf("iteration %d", it), nil)
	plt.SaveD(dirout, io.Sf("%s-rho-%03d.png", fnkey, it))
}

// PlotSolution saves equatorial profiles of the solution fields, one
// subplot per field
func PlotSolution(names []string, flds []*fea.Field, dirout, fnkey string) {
	plt.Reset(false, nil)
	nr, nc := utl.BestSquare(len(flds))
	for k, fld := range flds {
		plt.Subplot(nr, nc, k+1)
		rr, vv := SampleEquator(fld, Npts)
		plt.Plot(rr, vv, &plt.A{C: "b", Ls: "-"})
		plt.Gll("$r$", GetTexLabel(names[k], ""), nil)
	}
	plt.SaveD(dirout, fnkey+"-fields.png")
}

// PlotConvergence saves the residual history of a run
func PlotConvergence(residuals []float64, dirout, fnkey string) {
	n := len(residuals)
	its := utl.LinSpace(0, float64(n-1), n)
	logres := make([]float64, n)
	for i, r := range residuals {
		logres[i] = math.Log10(r)
	}
	plt.Reset(false, nil)
	plt.Plot(its, logres, &plt.A{C: "k", M: "o", Ls: "-"})
	plt.Gll("iteration", "$\\log_{10}||F||$", nil)
	plt.SaveD(dirout, fnkey+"-conv.png")
}
