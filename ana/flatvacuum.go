// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference solutions
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FlatVacuum is the leading order of the vacuum field far away from an
// isolated stationary body with mass M and angular momentum J:
//
//	ν = -M/s      B = 1 - M²/(4s²)      μ = M/s      ω = 2J/s³
//
// where s is the distance from the centre. The expressions become exact as
// s → ∞ and provide the outer boundary values for the field equations.
type FlatVacuum struct {
	M float64 // total mass
	J float64 // total angular momentum
}

// Init initialises this structure
func (o *FlatVacuum) Init(prms fun.Prms) {

	// default values
	o.M = 1.0
	o.J = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "m":
			o.M = p.V
		case "j":
			o.J = p.V
		}
	}
}

// NU returns ν at distance s
func (o FlatVacuum) NU(s float64) float64 {
	return -o.M / s
}

// BB returns B at distance s
func (o FlatVacuum) BB(s float64) float64 {
	return 1.0 - o.M*o.M/(4.0*s*s)
}

// MU returns μ at distance s
func (o FlatVacuum) MU(s float64) float64 {
	return o.M / s
}

// WW returns ω at distance s
func (o FlatVacuum) WW(s float64) float64 {
	return 2.0 * o.J / (s * s * s)
}

// CheckBoundary checks nodal potentials at distance s. vals must be ordered
// as {ν, B, μ, ω}.
func (o FlatVacuum) CheckBoundary(tst *testing.T, vals []float64, s float64, tol float64) {
	vana := []float64{o.NU(s), o.BB(s), o.MU(s), o.WW(s)}
	chk.Vector(tst, "potentials", tol, vals, vana)
}
