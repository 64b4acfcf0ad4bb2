// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/dfm/geco/fea"
)

// characteristics derives the diagnostics record from the converged
// fields. The ansatz coefficient is rescaled one final time against the
// assembled mass before any scaled quantity is integrated.
func (o *EinsteinVlasov) characteristics() (c Characteristics, err error) {

	pi := math.Pi
	m := o.sim.Solver.Mass

	// final rescale of the ansatz coefficient
	mass, err := o.asm.AssembleScalar(o.massFn())
	if err != nil {
		return
	}
	o.cc.V = m / mass

	// rest mass
	rm, err := o.asm.AssembleScalar(func(s fea.Sample) float64 {
		return 2.0 * pi * o.scaled(s).Rest * s.X.R
	})
	if err != nil {
		return
	}

	// total angular momentum
	J, err := o.asm.AssembleScalar(func(s fea.Sample) float64 {
		t := o.scaled(s)
		nu := o.nu.ValueAt(s)
		bb := o.bb.ValueAt(s)
		ww := o.ww.ValueAt(s)
		rb := s.X.R * bb
		return -2.0 * pi * math.Exp(-4.0*nu) * bb * (t.P03 + rb*rb*ww*t.P33) * s.X.R
	})
	if err != nil {
		return
	}

	// gtt component of the metric tensor
	gtt := fea.NewField(o.msh)
	for v := 0; v < o.msh.Nverts(); v++ {
		x := o.msh.VertSample(v).X
		a := o.ww.V[v] * x.R * o.bb.V[v]
		e2 := math.Exp(2.0 * o.nu.V[v])
		gtt.V[v] = -e2 * (1.0 - a*a*math.Exp(-4.0*o.nu.V[v]))
	}
	gttMax := gtt.Max()

	// radii of support and the Buchdahl quantity
	r0 := 0.0
	for _, mdl := range o.models {
		if rs := mdl.RadiusOfSupport(); rs > r0 {
			r0 = rs
		}
	}
	R0 := r0 * math.Pow(1.0+m/(2.0*r0), 2.0)

	// asymptotic expressions for mass and angular momentum along the
	// equator, for inspection only
	rlist := utl.LinSpace(r0, o.sim.Solver.Radius, 5)
	mlist := make([]float64, 5)
	jlist := make([]float64, 5)
	for i, r := range rlist {
		p := fea.Point{R: r, Z: 0}
		var nu, bb, ww float64
		if nu, err = o.nu.Eval(p); err != nil {
			return
		}
		if bb, err = o.bb.Eval(p); err != nil {
			return
		}
		if ww, err = o.ww.Eval(p); err != nil {
			return
		}
		mlist[i] = 0.5 * r * (math.Exp(2.0*nu) - 1.0)
		jlist[i] = 0.5 * r * r * r * ww * bb * bb * math.Exp(-2.0*nu)
	}
	io.Pf("rlist = (%.16g,%.16g,%.16g,%.16g,%.16g)\n", rlist[0], rlist[1], rlist[2], rlist[3], rlist[4])
	io.Pf("mlist = (%.16g,%.16g,%.16g,%.16g,%.16g)\n", mlist[0], mlist[1], mlist[2], mlist[3], mlist[4])
	io.Pf("jlist = (%.16g,%.16g,%.16g,%.16g,%.16g)\n", jlist[0], jlist[1], jlist[2], jlist[3], jlist[4])

	c = Characteristics{
		AnsatzCoefficient:    o.cc.V,
		Mass:                 m,
		RadiusOfSupport:      r0,
		ArealRadiusOfSupport: R0,
		RestMass:             rm,
		FracBindingEnergy:    1.0 - m/rm,
		CentralRedshift:      1.0/math.Sqrt(-gtt.V[0]) - 1.0,
		Gamma:                2.0 * m / R0,
		TotalAngularMomentum: J,
		ErgoRegion:           gttMax > 0,
		GttMax:               gttMax,
	}
	return
}

// Recompute derives the characteristics from saved nodal values, keyed
// "nu", "bb", "mu" and "ww". A later Solve continues from these fields.
func (o *EinsteinVlasov) Recompute(flds map[string][]float64) (res *Results, err error) {
	for name, fld := range map[string]*fea.Field{"nu": o.nu, "bb": o.bb, "mu": o.mu, "ww": o.ww} {
		v, ok := flds[name]
		if !ok {
			return nil, chk.Err("field %q is missing from the saved solution", name)
		}
		if len(v) != o.msh.Nverts() {
			return nil, chk.Err("field %q has %d values but the mesh has %d vertices", name, len(v), o.msh.Nverts())
		}
		copy(fld.V, v)
	}
	for _, mdl := range o.models {
		mdl.Reset()
		if err = mdl.ReadParameters(); err != nil {
			return nil, err
		}
	}
	chars, err := o.characteristics()
	if err != nil {
		return nil, err
	}
	o.updateRho()
	o.started = true
	return &Results{NU: o.nu, BB: o.bb, MU: o.mu, WW: o.ww, RHO: o.rho, Chars: chars, Sum: Summary{C: o.cc.V}}, nil
}
