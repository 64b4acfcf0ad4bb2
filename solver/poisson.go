// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dfm/geco/ansatz"
	"github.com/dfm/geco/fea"
	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/out"
)

// VlasovPoisson solves the Newtonian limit: a single Poisson equation
// for the potential U, relaxed with the same self-consistent-field
// iteration as the relativistic solver.
type VlasovPoisson struct {

	// input
	sim *inp.Simulation

	// discretisation
	msh *fea.Mesh
	asm *fea.Assembler

	// matter
	models []ansatz.Model

	// solution
	uu  *fea.Field
	rho *fea.Field
	cc  *fea.Const

	// state
	started bool
}

// add solver to factory
func init() {
	allocators["vp"] = func(sim *inp.Simulation) (Solver, error) { return NewVlasovPoisson(sim) }
}

// NewVlasovPoisson allocates the Vlasov-Poisson solver
func NewVlasovPoisson(sim *inp.Simulation) (o *VlasovPoisson, err error) {
	o = new(VlasovPoisson)
	o.sim = sim
	o.msh = fea.NewMesh(sim.Solver.Radius, sim.Solver.Resolution)
	o.asm = fea.NewAssembler(o.msh, fea.NewKrylov(sim.Solver.KrylovTol, sim.Solver.Precond))
	o.models, err = sim.AllocModels()
	if err != nil {
		return nil, err
	}
	o.uu = fea.NewField(o.msh)
	o.rho = fea.NewField(o.msh)
	o.cc = &fea.Const{V: 1}
	for _, mdl := range o.models {
		mdl.SetFields(o.uu, nil, nil, nil)
	}
	return
}

// Solve runs the iteration and derives the Newtonian characteristics
func (o *VlasovPoisson) Solve() (res *Results, err error) {

	// initial data: a fixed-depth potential well
	if o.started {
		io.Pf("Reusing function space and initial data.\n")
	} else {
		o.uu.SetFunc(func(x fea.Point) float64 {
			return -0.5 / (1.0 + sdist(x)/4.0)
		})
		o.cc.V = 1
		o.started = true
	}

	// Poisson equation with vacuum boundary data
	m := o.sim.Solver.Mass
	flat := fea.NewEssentialBc(o.msh, "infty", func(v int, x fea.Point) float64 {
		return -m / sdist(x)
	})
	eq := &Equation{
		Name:   "U",
		U:      o.uu,
		Static: true,
		Lhs:    fea.BilinearForm{Grad: func(s fea.Sample) float64 { return s.X.R }},
		Rhs: fea.LinearForm{F: func(s fea.Sample) float64 {
			return -4.0 * math.Pi * o.cc.V * o.restAt(s) * s.X.R
		}},
		Ebcs: []*fea.EssentialBc{flat},
	}

	it := Iterator{
		Prov:    o.asm,
		Eqs:     []*Equation{eq},
		Models:  o.models,
		MassFn:  o.massFn(),
		C:       o.cc,
		Bc0:     fea.NewZeroBc(o.msh),
		Target:  m,
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

	return &Results{NU: o.uu, RHO: o.rho, Chars: chars, Sum: sum}, nil
}

// characteristics derives the Newtonian diagnostics record. The rest
// mass reproduces the prescribed mass by construction of the rescaling.
func (o *VlasovPoisson) characteristics() (c Characteristics, err error) {
	m := o.sim.Solver.Mass
	mass, err := o.asm.AssembleScalar(o.massFn())
	if err != nil {
		return
	}
	o.cc.V = m / mass
	rm, err := o.asm.AssembleScalar(func(s fea.Sample) float64 {
		return 2.0 * math.Pi * o.cc.V * o.restAt(s) * s.X.R
	})
	if err != nil {
		return
	}
	r0 := 0.0
	for _, mdl := range o.models {
		if rs := mdl.RadiusOfSupport(); rs > r0 {
			r0 = rs
		}
	}
	c = Characteristics{
		AnsatzCoefficient: o.cc.V,
		Mass:              m,
		RadiusOfSupport:   r0,
		RestMass:          rm,
		CentralPotential:  o.uu.V[0],
	}
	return
}

// Recompute derives the characteristics from a saved potential, keyed
// "uu". A later Solve continues from this field.
func (o *VlasovPoisson) Recompute(flds map[string][]float64) (res *Results, err error) {
	v, ok := flds["uu"]
	if !ok {
		return nil, chk.Err("field %q is missing from the saved solution", "uu")
	}
	if len(v) != o.msh.Nverts() {
		return nil, chk.Err("field %q has %d values but the mesh has %d vertices", "uu", len(v), o.msh.Nverts())
	}
	copy(o.uu.V, v)
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
	return &Results{NU: o.uu, RHO: o.rho, Chars: chars, Sum: Summary{C: o.cc.V}}, nil
}

// restAt sums the unscaled rest-mass density over the models
func (o *VlasovPoisson) restAt(s fea.Sample) (rest float64) {
	for _, mdl := range o.models {
		rest += mdl.Terms(s).Rest
	}
	return
}

// massFn is the unscaled Newtonian mass integrand
func (o *VlasovPoisson) massFn() fea.Coefficient {
	return func(s fea.Sample) float64 {
		return 2.0 * math.Pi * o.restAt(s) * s.X.R
	}
}

// updateRho recomputes the derived density at every vertex
func (o *VlasovPoisson) updateRho() {
	for v := 0; v < o.msh.Nverts(); v++ {
		o.rho.V[v] = o.cc.V * o.restAt(o.msh.VertSample(v))
	}
}
