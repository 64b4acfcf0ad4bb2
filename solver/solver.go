// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the damped self-consistent-field iteration for
// stationary, axisymmetric self-gravitating Vlasov matter, with drivers for
// the Einstein-Vlasov and Vlasov-Poisson systems.
package solver

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dfm/geco/fea"
	"github.com/dfm/geco/inp"
)

// Solver computes one self-gravitating configuration
type Solver interface {
	Solve() (*Results, error)
}

// Recomputer derives the diagnostics record from previously saved nodal
// fields, without iterating. Both solvers implement it; the map keys
// follow the saved-field names.
type Recomputer interface {
	Recompute(flds map[string][]float64) (*Results, error)
}

// Characteristics holds the diagnostics record derived from a solution
type Characteristics struct {
	AnsatzCoefficient    float64 `json:"ansatz_coefficient"`
	Mass                 float64 `json:"mass"`
	RadiusOfSupport      float64 `json:"radius_of_support"`
	ArealRadiusOfSupport float64 `json:"areal_radius_of_support"`
	RestMass             float64 `json:"rest_mass"`
	FracBindingEnergy    float64 `json:"frac_binding_energy"`
	CentralRedshift      float64 `json:"central_redshift"`
	Gamma                float64 `json:"gamma"`
	TotalAngularMomentum float64 `json:"total_angular_momentum"`
	ErgoRegion           bool    `json:"ergo_region"`
	GttMax               float64 `json:"gtt_max"`

	// Newtonian runs only
	CentralPotential float64 `json:"central_potential,omitempty"`
}

// Results holds the outcome of a solve: the potentials, the derived
// density, the diagnostics record and the iteration summary. Newtonian
// runs fill NU with the potential U and leave BB, MU and WW nil.
type Results struct {
	NU    *fea.Field // metric potential nu (or the Newtonian potential U)
	BB    *fea.Field // metric potential B
	MU    *fea.Field // metric potential mu
	WW    *fea.Field // metric potential omega
	RHO   *fea.Field // derived matter density
	Chars Characteristics
	Sum   Summary
}

// New returns a new solver according to the simulation input
func New(sim *inp.Simulation) (Solver, error) {
	allocator, ok := allocators[sim.Solver.Name]
	if !ok {
		return nil, chk.Err("solver %q is not available in 'solver' database", sim.Solver.Name)
	}
	return allocator(sim)
}

// allocators holds all available solvers
var allocators = make(map[string]func(sim *inp.Simulation) (Solver, error))
