// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/dfm/geco/ansatz"
	"github.com/dfm/geco/fea"
	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/out"
)

// EinsteinVlasov solves the stationary axisymmetric Einstein-Vlasov
// system for the metric potentials {NU, BB, MU, WW} in quasi-isotropic
// coordinates. The four field equations are relaxed by the damped
// self-consistent-field Iterator; the matter terms on the right-hand
// sides carry the mass-normalisation constant C.
type EinsteinVlasov struct {

	// input
	sim *inp.Simulation

	// discretisation
	msh *fea.Mesh
	asm *fea.Assembler

	// matter
	models []ansatz.Model

	// solution
	nu  *fea.Field
	bb  *fea.Field
	mu  *fea.Field
	ww  *fea.Field
	rho *fea.Field
	cc  *fea.Const

	// state
	started bool
}

// add solver to factory
func init() {
	allocators["ev"] = func(sim *inp.Simulation) (Solver, error) { return NewEinsteinVlasov(sim) }
}

// NewEinsteinVlasov allocates the Einstein-Vlasov solver
func NewEinsteinVlasov(sim *inp.Simulation) (o *EinsteinVlasov, err error) {
	o = new(EinsteinVlasov)
	o.sim = sim
	o.msh = fea.NewMesh(sim.Solver.Radius, sim.Solver.Resolution)
	o.asm = fea.NewAssembler(o.msh, fea.NewKrylov(sim.Solver.KrylovTol, sim.Solver.Precond))
	o.models, err = sim.AllocModels()
	if err != nil {
		return nil, err
	}
	o.nu = fea.NewField(o.msh)
	o.bb = fea.NewField(o.msh)
	o.mu = fea.NewField(o.msh)
	o.ww = fea.NewField(o.msh)
	o.rho = fea.NewField(o.msh)
	o.cc = &fea.Const{V: 1}
	for _, mdl := range o.models {
		mdl.SetFields(o.nu, o.bb, o.mu, o.ww)
	}
	return
}

// Solve runs the self-consistent-field iteration and derives the
// characteristics. Calling Solve again continues from the previous
// solution (warm start).
func (o *EinsteinVlasov) Solve() (res *Results, err error) {

	// initial data
	if o.started {
		io.Pf("Reusing function space and initial data.\n")
	} else {
		o.initdata()
		o.started = true
	}

	// equations, boundary conditions and iterator
	eqs, bc0 := o.equations()
	it := Iterator{
		Prov:    o.asm,
		Eqs:     eqs,
		Models:  o.models,
		MassFn:  o.massFn(),
		C:       o.cc,
		Bc0:     bc0,
		Target:  o.sim.Solver.Mass,
		Maxiter: o.sim.Solver.Maxiter,
		Theta:   o.sim.Solver.Theta,
		Tol:     o.sim.Solver.Tolerance,
		Callback: func(itn int) {
			o.updateRho()
			if o.sim.Output.PlotIteration {
				out.PlotIteration(o.rho.V, o.msh, o.sim.DirOut, o.sim.Key, itn)
			}
		},
	}
	sum, err := it.Run()
	if err != nil {
		return nil, err
	}

	// diagnostics
	chars, err := o.characteristics()
	if err != nil {
		return nil, err
	}

	return &Results{NU: o.nu, BB: o.bb, MU: o.mu, WW: o.ww, RHO: o.rho, Chars: chars, Sum: sum}, nil
}

// initdata sets the fresh-start fields: a shallow potential well scaled
// by the first model's cutoff energy, with flat azimuthal data
func (o *EinsteinVlasov) initdata() {
	e0 := o.models[0].E0()
	o.nu.SetFunc(func(x fea.Point) float64 {
		return -0.5 * e0 / (1.0 + sdist(x)/4.0)
	})
	o.bb.SetFunc(func(x fea.Point) float64 {
		return 1.0 - 0.25*math.Exp(-0.25*sdist(x))
	})
	o.mu.SetFunc(func(x fea.Point) float64 {
		return e0 / (1.0 + sdist(x)/4.0)
	})
	o.ww.Fill(0)
	o.cc.V = 1
}

// equations builds the four field equations, their boundary conditions
// and the residual filter
func (o *EinsteinVlasov) equations() (eqs []*Equation, bc0 *fea.EssentialBc) {

	pi := math.Pi
	radial := func(s fea.Sample) float64 { return s.X.R }

	// equation 0: NU
	f0 := func(s fea.Sample) float64 {
		t := o.scaled(s)
		rr := s.X.R
		nu := o.nu.ValueAt(s)
		bb := o.bb.ValueAt(s)
		ww := o.ww.ValueAt(s)
		e4 := math.Exp(-4.0 * nu)
		rb := rr * bb
		gbn := dot(o.bb, o.nu, s.Elem)
		gww := dot(o.ww, o.ww, s.Elem)
		v := -4.0*pi*(t.P00+t.P11) - 4.0*pi*(1.0+rb*rb*e4*ww*ww)*t.P33 -
			8.0*pi*e4*ww*t.P03 + gbn/bb - 0.5*e4*rb*rb*gww
		return v * rr
	}

	// equation 1: BB. The matter term makes the operator field-dependent.
	m1 := func(s fea.Sample) float64 {
		return 8.0 * pi * o.scaled(s).P11 * s.X.R
	}

	// equation 2: MU
	f2 := func(s fea.Sample) float64 {
		t := o.scaled(s)
		rr := s.X.R
		nu := o.nu.ValueAt(s)
		bb := o.bb.ValueAt(s)
		ww := o.ww.ValueAt(s)
		e4 := math.Exp(-4.0 * nu)
		rb := rr * bb
		gbn := dot(o.bb, o.nu, s.Elem)
		gnn := dot(o.nu, o.nu, s.Elem)
		gww := dot(o.ww, o.ww, s.Elem)
		v := 4.0*pi*(t.P00+t.P11) + 4.0*pi*(rb*rb*e4*ww*ww-1.0)*t.P33 +
			8.0*pi*e4*ww*t.P03 - gbn/bb + gnn - 0.25*e4*rb*rb*gww
		nur, _ := o.nu.GradAt(s.Elem)
		return v*rr - nur
	}

	// equation 3: WW
	f3 := func(s fea.Sample) float64 {
		t := o.scaled(s)
		rr := s.X.R
		bb := o.bb.ValueAt(s)
		ww := o.ww.ValueAt(s)
		rb := rr * bb
		gbw := dot(o.bb, o.ww, s.Elem)
		gnw := dot(o.nu, o.ww, s.Elem)
		v := -16.0*pi/(rb*rb)*(t.P03+ww*rb*rb*t.P33) + 3.0*gbw/bb - 4.0*gnw
		return v * rr
	}

	// asymptotically flat boundary data
	m := o.sim.Solver.Mass
	J := o.sim.Solver.AngMom
	flatNU := fea.NewEssentialBc(o.msh, "infty", func(v int, x fea.Point) float64 {
		return -m / sdist(x)
	})
	flatBB := fea.NewEssentialBc(o.msh, "infty", func(v int, x fea.Point) float64 {
		s := sdist(x)
		return 1.0 - m*m/(4.0*s*s)
	})
	flatMU := fea.NewEssentialBc(o.msh, "infty", func(v int, x fea.Point) float64 {
		return m / sdist(x)
	})
	flatWW := fea.NewEssentialBc(o.msh, "infty", func(v int, x fea.Point) float64 {
		s := sdist(x)
		return 2.0 * J / (s * s * s)
	})

	// regularity on the axis ties MU to the live NU and BB
	axisMU := fea.NewEssentialBc(o.msh, "axis", func(v int, x fea.Point) float64 {
		return math.Log(o.bb.V[v]) - o.nu.V[v]
	})

	eqs = []*Equation{
		{Name: "NU", U: o.nu, Static: true,
			Lhs:  fea.BilinearForm{Grad: radial},
			Rhs:  fea.LinearForm{F: f0},
			Ebcs: []*fea.EssentialBc{flatNU}},
		{Name: "BB", U: o.bb, Static: false,
			Lhs:  fea.BilinearForm{Grad: radial, Dr: fea.Cte(-1), Mass: m1},
			Rhs:  fea.LinearForm{F: fea.Cte(0)},
			Ebcs: []*fea.EssentialBc{flatBB}},
		{Name: "MU", U: o.mu, Static: true,
			Lhs:  fea.BilinearForm{Grad: radial, Dr: fea.Cte(1)},
			Rhs:  fea.LinearForm{F: f2},
			Ebcs: []*fea.EssentialBc{flatMU, axisMU}},
		{Name: "WW", U: o.ww, Static: true,
			Lhs:  fea.BilinearForm{Grad: radial, Dr: fea.Cte(-2)},
			Rhs:  fea.LinearForm{F: f3},
			Ebcs: []*fea.EssentialBc{flatWW}},
	}
	bc0 = fea.NewZeroBc(o.msh)
	return
}

// matter sums the unscaled stress-energy terms over the models
func (o *EinsteinVlasov) matter(s fea.Sample) (t ansatz.Terms) {
	for _, mdl := range o.models {
		ti := mdl.Terms(s)
		t.P00 += ti.P00
		t.P11 += ti.P11
		t.P33 += ti.P33
		t.P03 += ti.P03
		t.Rest += ti.Rest
	}
	return
}

// scaled multiplies the matter terms by the current ansatz coefficient
func (o *EinsteinVlasov) scaled(s fea.Sample) ansatz.Terms {
	t := o.matter(s)
	c := o.cc.V
	t.P00 *= c
	t.P11 *= c
	t.P33 *= c
	t.P03 *= c
	t.Rest *= c
	return t
}

// density computes the unscaled Tolman-like mass density
func (o *EinsteinVlasov) density(s fea.Sample) float64 {
	t := o.matter(s)
	nu := o.nu.ValueAt(s)
	bb := o.bb.ValueAt(s)
	ww := o.ww.ValueAt(s)
	rb := s.X.R * bb
	e4 := math.Exp(-4.0 * nu)
	return bb * (t.P00 + t.P11 + t.P33*(1.0-rb*rb*ww*ww*e4))
}

// massFn is the unscaled mass integrand used for the rescaling
func (o *EinsteinVlasov) massFn() fea.Coefficient {
	return func(s fea.Sample) float64 {
		return 2.0 * math.Pi * o.density(s) * s.X.R
	}
}

// updateRho recomputes the derived density at every vertex
func (o *EinsteinVlasov) updateRho() {
	for v := 0; v < o.msh.Nverts(); v++ {
		o.rho.V[v] = o.cc.V * o.density(o.msh.VertSample(v))
	}
}

// dot computes grad(a).grad(b) on one element
func dot(a, b *fea.Field, ic int) float64 {
	ar, az := a.GradAt(ic)
	br, bz := b.GradAt(ic)
	return ar*br + az*bz
}

// sdist is the distance to the origin
func sdist(x fea.Point) float64 {
	return math.Sqrt(x.R*x.R + x.Z*x.Z)
}
