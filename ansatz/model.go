// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ansatz implements matter-model ansatzes for the Einstein-Vlasov
// and Vlasov-Poisson systems. A model holds the distribution-function
// parameters, binds to the current potential fields, and reports pointwise
// stress-energy contributions obtained by momentum-space quadrature.
//  References:
//   [1] Andreasson H, Kunze M and Rein G (2014) Existence of axially
//       symmetric static solutions of the Einstein-Vlasov system,
//       Commun. Math. Phys. 329, 787-808
//   [2] Ames E, Andreasson H and Logg A (2016) On axisymmetric and
//       stationary solutions of the self-gravitating Vlasov system,
//       Class. Quantum Grav. 33, 155008
package ansatz

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/dfm/geco/fea"
)

// Terms collects the pointwise stress-energy contributions of a model at
// one spatial sample: the ZAMO-frame components entering the field
// equations and the rest density. All components are unscaled; the solver
// multiplies by the current ansatz coefficient.
type Terms struct {
	P00  float64 // energy density component
	P11  float64 // meridional pressure component
	P33  float64 // azimuthal pressure component
	P03  float64 // momentum density (frame dragging source)
	Rest float64 // rest (particle) density
}

// Model defines a matter-model ansatz
type Model interface {
	Init(prms fun.Prms) error                    // initialises the model with named parameters
	GetPrms(example bool) fun.Prms               // gets (an example of) parameters
	SetFields(nu, bb, mu, ww *fea.Field)         // binds the current potentials
	SetIntegrationParameters(numSteps int)       // sets the momentum quadrature resolution
	ReadParameters() error                       // revalidates parameters; idempotent
	Reset()                                      // clears the support-radius accumulator
	RadiusOfSupport() float64                    // largest radius with matter since the last Reset
	E0() float64                                 // cutoff energy
	Terms(s fea.Sample) Terms                    // stress-energy contributions at a sample
}

// New returns a new matter-model ansatz
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'ansatz' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
