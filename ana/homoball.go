// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HomogeneousBall computes the Newtonian field of a ball with constant
// density, total mass M and radius a:
//
//	ρ(s) = 3M/(4πa³)                s ≤ a
//	m(s) = M・s³/a³                  s ≤ a      m(s) = M     s > a
//	U(s) = M・(s² - 3a²)/(2a³)       s ≤ a      U(s) = -M/s  s > a
//
// The potential is continuously differentiable across s = a and satisfies
// dU/ds = m(s)/s².
type HomogeneousBall struct {
	// input
	M float64 // total mass
	A float64 // radius of the ball

	// derived
	ρ0 float64 // density inside the ball
}

// Init initialises this structure
func (o *HomogeneousBall) Init(prms fun.Prms) {

	// default values
	o.M = 1.0
	o.A = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "m":
			o.M = p.V
		case "a":
			o.A = p.V
		}
	}

	// derived
	o.ρ0 = 3.0 * o.M / (4.0 * math.Pi * o.A * o.A * o.A)
}

// Rho returns the density at distance s from the centre
func (o HomogeneousBall) Rho(s float64) float64 {
	if s > o.A {
		return 0
	}
	return o.ρ0
}

// Menc returns the mass enclosed within distance s
func (o HomogeneousBall) Menc(s float64) float64 {
	if s > o.A {
		return o.M
	}
	return o.M * s * s * s / (o.A * o.A * o.A)
}

// U returns the gravitational potential at distance s
func (o HomogeneousBall) U(s float64) float64 {
	if s > o.A {
		return -o.M / s
	}
	return o.M * (s*s - 3.0*o.A*o.A) / (2.0 * o.A * o.A * o.A)
}

// Projection returns the column density along a line passing at distance y
// from the centre
func (o HomogeneousBall) Projection(y float64) float64 {
	if y >= o.A {
		return 0
	}
	return 2.0 * o.ρ0 * math.Sqrt(o.A*o.A-y*y)
}

// CheckPotential checks sampled potential values u at distances s
func (o HomogeneousBall) CheckPotential(tst *testing.T, u, s []float64, tol float64) {
	uana := make([]float64, len(s))
	for i, si := range s {
		uana[i] = o.U(si)
	}
	chk.Vector(tst, "U", tol, u, uana)
}
