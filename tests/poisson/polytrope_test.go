// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dfm/geco/ana"
	"github.com/dfm/geco/tests"
)

func Test_polytrope01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("polytrope01. Newtonian ball against the Lane-Emden profile")

	sim, _, res := tests.RunSim("data/vp_ball.sim")
	c := res.Chars

	// the Newtonian rest mass is the prescribed mass by construction
	chk.Scalar(tst, "mass", 1e-17, c.Mass, 1.0)
	chk.Scalar(tst, "rest mass", 1e-12, c.RestMass, 1.0)

	// the outer arc carries the vacuum data -m/s
	msh := res.NU.Msh
	for _, v := range msh.Infty {
		x := msh.Verts[v]
		s := math.Sqrt(x.R*x.R + x.Z*x.Z)
		chk.Scalar(tst, io.Sf("U at vertex %d", v), 1e-8, res.NU.V[v], -sim.Solver.Mass/s)
	}

	// with k = 0 the ball is an n = 3/2 polytrope: the cutoff fixes the
	// support radius m/|E0| and the Lane-Emden solution fixes the rest
	le := ana.LaneEmden{}
	le.Init(1.5)
	xi1 := le.FirstZero()
	mxi := le.DimlessMass(xi1)
	e0 := -0.25 // cutoff energy from the input file
	r0 := sim.Solver.Mass / (-e0)
	alpha := r0 / xi1
	chk.Scalar(tst, "support radius", 0.5, c.RadiusOfSupport, r0)
	chk.Scalar(tst, "central potential", 0.03, c.CentralPotential, e0-sim.Solver.Mass/(alpha*mxi))

	// the measured central density closes the scaling relations
	rhoc := res.RHO.V[0]
	if rhoc <= 0 {
		tst.Errorf("the centre must carry matter: rho=%g", rhoc)
		return
	}
	am := math.Sqrt((e0 - c.CentralPotential) / (4.0 * math.Pi * rhoc))
	chk.Scalar(tst, "length scale", 0.05, am, alpha)
	chk.Scalar(tst, "dimensionless mass", 0.15, c.Mass/(4.0*math.Pi*rhoc*am*am*am), mxi)
}
