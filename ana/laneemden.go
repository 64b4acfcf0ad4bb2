// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// LaneEmden computes the profile θ(ξ) of a polytropic ball with index n:
//
//	θ'' + (2/ξ)・θ' + θⁿ = 0      θ(0) = 1      θ'(0) = 0
//
// The density of the ball is ρ = ρc・θⁿ and its surface sits at the first
// zero ξ1 of θ. Closed forms exist for three indices:
//
//	n=0:  θ = 1 - ξ²/6      n=1:  θ = sin(ξ)/ξ      n=5:  θ = 1/√(1+ξ²/3)
//
// Other indices are integrated numerically. The integration starts slightly
// off-centre, from the series expansion θ = 1 - ξ²/6 + n・ξ⁴/120, to avoid
// the coordinate singularity at ξ = 0.
type LaneEmden struct {
	N   float64    // polytropic index
	ξa  float64    // start of the numerical integration
	sol ode.Solver // ODE solver
}

// Init initialises the solver for polytropic index n
func (o *LaneEmden) Init(n float64) {
	o.N = n
	o.ξa = 1e-4

	// numerical solver with y := {θ, θ'}
	silent := true
	o.sol.Init("Radau5", 2, func(f []float64, dξ, ξ float64, y []float64, args ...interface{}) error {
		θ := math.Max(y[0], 0.0) // θⁿ is only evaluated on the positive part
		f[0] = y[1]
		f[1] = -math.Pow(θ, o.N) - 2.0*y[1]/ξ
		return nil
	}, nil, nil, nil, silent)
	o.sol.SetTol(1e-10, 1e-7)
	o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
}

// Calc returns θ and dθ/dξ at ξ
func (o LaneEmden) Calc(ξ float64) (θ, dθ float64) {
	if ξ <= o.ξa {
		return o.series(ξ)
	}
	θ, dθ = o.series(o.ξa)
	y := []float64{θ, dθ}
	err := o.sol.Solve(y, o.ξa, ξ, ξ-o.ξa, false)
	if err != nil {
		chk.Panic("LaneEmden failed to integrate profile up to ξ=%g: %v", ξ, err)
	}
	return y[0], y[1]
}

// series evaluates the expansion of θ about the centre
func (o LaneEmden) series(ξ float64) (θ, dθ float64) {
	θ = 1.0 - ξ*ξ/6.0 + o.N*ξ*ξ*ξ*ξ/120.0
	dθ = -ξ/3.0 + o.N*ξ*ξ*ξ/30.0
	return
}

// FirstZero returns the first zero ξ1 of θ. It panics for n ≥ 5 because the
// profile stays positive and the ball has no surface.
func (o LaneEmden) FirstZero() (ξ1 float64) {

	// bracket the zero
	a, b := o.ξa, o.ξa
	for {
		b += 0.1
		if b > 100.0 {
			chk.Panic("LaneEmden cannot find a zero of θ with n=%g", o.N)
		}
		if θ, _ := o.Calc(b); θ < 0 {
			break
		}
		a = b
	}

	// bisection
	for i := 0; i < 60; i++ {
		m := (a + b) / 2.0
		if θ, _ := o.Calc(m); θ < 0 {
			b = m
		} else {
			a = m
		}
	}
	return (a + b) / 2.0
}

// DimlessMass returns the dimensionless mass -ξ²・θ'(ξ) enclosed within ξ
func (o LaneEmden) DimlessMass(ξ float64) float64 {
	_, dθ := o.Calc(ξ)
	return -ξ * ξ * dθ
}

// Plot draws the profile and its derivative up to the first zero
func (o LaneEmden) Plot(dirout, fnkey string, np int) {

	ξ1 := o.FirstZero()
	Ξ := utl.LinSpace(o.ξa, ξ1, np)
	Θ := make([]float64, np)
	D := make([]float64, np)
	for i, ξ := range Ξ {
		Θ[i], D[i] = o.Calc(ξ)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(Ξ, Θ, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$\\xi$", "$\\theta$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(Ξ, D, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$\\xi$", "$d\\theta/d\\xi$", nil)

	plt.SaveD(dirout, fnkey+".png")
}
