// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/dfm/geco/ana"
	"github.com/dfm/geco/out"
	"github.com/dfm/geco/solver"
	"github.com/dfm/geco/tests"
)

func Test_static01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("static01. non-rotating ball run to convergence")

	sim, sol, res := tests.RunSim("data/ev_ball.sim")
	c := res.Chars

	// the rescaling reproduces the prescribed mass exactly
	chk.Scalar(tst, "mass", 1e-17, c.Mass, 1.0)

	// a static ball: no angular momentum, no ergo region
	chk.Scalar(tst, "J", 1e-15, c.TotalAngularMomentum, 0)
	if c.ErgoRegion || c.GttMax >= 0 {
		tst.Errorf("a static solution has no ergo region: gtt_max=%g", c.GttMax)
		return
	}

	// binding: the ball holds more rest mass than gravitating mass
	if c.RestMass <= c.Mass {
		tst.Errorf("the configuration must be bound: Mr=%g <= M=%g", c.RestMass, c.Mass)
		return
	}
	chk.Scalar(tst, "Eb", 1e-15, c.FracBindingEnergy, 1.0-c.Mass/c.RestMass)

	// the matter stays strictly inside the grid
	if c.RadiusOfSupport <= 0 || c.RadiusOfSupport >= sim.Solver.Radius {
		tst.Errorf("support radius %g must lie inside the grid of radius %g", c.RadiusOfSupport, sim.Solver.Radius)
		return
	}
	if c.ArealRadiusOfSupport <= c.RadiusOfSupport {
		tst.Errorf("areal radius %g must exceed the coordinate radius %g", c.ArealRadiusOfSupport, c.RadiusOfSupport)
		return
	}
	if c.Gamma <= 0 || c.Gamma >= 1 {
		tst.Errorf("compactness must be within (0, 1): gamma=%g", c.Gamma)
		return
	}

	// matter at the centre needs a lapse below the cutoff
	if zmin := 1.0/0.85 - 1.0; c.CentralRedshift <= zmin {
		tst.Errorf("central redshift %g must exceed the cutoff bound %g", c.CentralRedshift, zmin)
		return
	}
	if res.RHO.V[0] <= 0 {
		tst.Errorf("the centre must carry matter: rho=%g", res.RHO.V[0])
		return
	}

	// the outer arc carries the vacuum far-field data
	fv := ana.FlatVacuum{}
	fv.Init([]*fun.Prm{&fun.Prm{N: "m", V: 1.0}})
	msh := res.NU.Msh
	for _, v := range msh.Infty {
		x := msh.Verts[v]
		s := math.Sqrt(x.R*x.R + x.Z*x.Z)
		fv.CheckBoundary(tst, []float64{res.NU.V[v], res.BB.V[v], res.MU.V[v], res.WW.V[v]}, s, 1e-8)
	}

	// recomputing from the final nodal values reproduces the record
	rc, ok := sol.(solver.Recomputer)
	if !ok {
		tst.Errorf("solver must recompute characteristics from saved fields")
		return
	}
	res2, err := rc.Recompute(map[string][]float64{
		"nu": res.NU.V, "bb": res.BB.V, "mu": res.MU.V, "ww": res.WW.V,
	})
	if err != nil {
		tst.Errorf("Recompute failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "recomputed C", 1e-6, res2.Sum.C, res.Sum.C)
	chk.Scalar(tst, "recomputed Mr", 1e-6, res2.Chars.RestMass, c.RestMass)
	chk.Scalar(tst, "recomputed Zc", 1e-6, res2.Chars.CentralRedshift, c.CentralRedshift)

	// multipole moments of a spherical density
	m0, m2, _, err := out.Moments(res.RHO)
	if err != nil {
		tst.Errorf("cannot compute moments:\n%v", err)
		return
	}
	if m0 <= 0 {
		tst.Errorf("monopole moment must be positive: M0=%g", m0)
		return
	}
	r2 := c.RadiusOfSupport * c.RadiusOfSupport
	if math.Abs(m2) > 0.1*r2*m0 {
		tst.Errorf("quadrupole moment %g is too large for a spherical density", m2)
		return
	}
}
