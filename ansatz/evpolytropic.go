// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansatz

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/dfm/geco/fea"
)

// EvPolytropic implements the relativistic polytropic ansatz
//  f(E,L) = (E0-E)_+^k |L|^l (1 + rotation*sign(L))
// where E is the conserved particle energy and L the angular momentum
// about the symmetry axis. rotation = 0 gives a reflection-symmetric
// distribution; |rotation| = 1 keeps only one sense of rotation. The even
// momentum moments are independent of rotation.
type EvPolytropic struct {

	// parameters
	e0  float64 // cutoff energy
	k   float64 // energy polytropic exponent
	l   float64 // angular momentum polytropic exponent
	rot float64 // net rotation bias in [-1, 1]

	// integration
	nsteps int // quadrature steps per momentum direction

	// bound fields
	nu *fea.Field
	bb *fea.Field
	mu *fea.Field
	ww *fea.Field

	// accumulator
	rsup float64 // largest radius with matter since the last Reset
}

// add model to factory
func init() {
	allocators["ev-e-polytropic-l-polytropic"] = func() Model { return new(EvPolytropic) }
}

// Init initialises model
func (o *EvPolytropic) Init(prms fun.Prms) (err error) {
	o.e0 = 0.94
	o.nsteps = 10
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e0":
			o.e0 = p.V
		case "k":
			o.k = p.V
		case "l":
			o.l = p.V
		case "rotation":
			o.rot = p.V
		default:
			return chk.Err("ev-e-polytropic-l-polytropic: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.ReadParameters()
}

// GetPrms gets (an example) of parameters
func (o EvPolytropic) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E0", V: 0.94},
		&fun.Prm{N: "k", V: 0.0},
		&fun.Prm{N: "l", V: 0.0},
		&fun.Prm{N: "rotation", V: 0.0},
	}
}

// SetFields binds the current potentials
func (o *EvPolytropic) SetFields(nu, bb, mu, ww *fea.Field) {
	o.nu, o.bb, o.mu, o.ww = nu, bb, mu, ww
}

// SetIntegrationParameters sets the momentum quadrature resolution
func (o *EvPolytropic) SetIntegrationParameters(numSteps int) {
	o.nsteps = numSteps
}

// ReadParameters revalidates the parameters. Called once per outer
// iteration; idempotent.
func (o *EvPolytropic) ReadParameters() (err error) {
	if !(o.e0 > 0 && o.e0 < 1) {
		return chk.Err("ev-e-polytropic-l-polytropic: E0=%g must be within (0, 1)", o.e0)
	}
	if o.k < 0 || o.l < 0 {
		return chk.Err("ev-e-polytropic-l-polytropic: exponents must be non-negative. k=%g, l=%g", o.k, o.l)
	}
	if o.rot < -1 || o.rot > 1 {
		return chk.Err("ev-e-polytropic-l-polytropic: rotation=%g must be within [-1, 1]", o.rot)
	}
	return
}

// Reset clears the support-radius accumulator
func (o *EvPolytropic) Reset() {
	o.rsup = 0
}

// RadiusOfSupport returns the largest radius with matter since the last Reset
func (o *EvPolytropic) RadiusOfSupport() float64 {
	return o.rsup
}

// E0 returns the cutoff energy
func (o *EvPolytropic) E0() float64 {
	return o.e0
}

// Terms computes the stress-energy contributions at one spatial sample by
// midpoint product quadrature over the momentum half-plane q >= 0. The p3
// sweep adds symmetric pairs so p3-odd integrands cancel exactly where the
// energy is even in p3 (in particular P03 = 0 on the axis).
func (o *EvPolytropic) Terms(s fea.Sample) (t Terms) {
	nu := o.nu.ValueAt(s)
	enu := math.Exp(nu)
	if enu >= o.e0 {
		return // vacuum: a particle at rest already exceeds the cutoff
	}
	bb := o.bb.ValueAt(s)
	ww := o.ww.ValueAt(s)
	h := s.X.R * bb / enu // angular momentum per unit p3: L = h p3
	pmax := o.cutoff(enu, math.Abs(ww)*h)
	dp := pmax / float64(o.nsteps)
	for i := 0; i < o.nsteps; i++ {
		q := (float64(i) + 0.5) * dp
		w := 2.0 * math.Pi * q * dp * dp
		for j := 0; j < o.nsteps; j++ {
			p3 := (float64(j) + 0.5) * dp
			eps := math.Sqrt(1.0 + q*q + p3*p3)
			fp := o.fdist(enu*eps+ww*h*p3, h*p3)
			fm := o.fdist(enu*eps-ww*h*p3, -h*p3)
			t.P00 += w * (fp + fm) * eps
			t.P11 += w * (fp + fm) * q * q / eps
			t.P33 += w * (fp + fm) * p3 * p3 / eps
			t.P03 += w * (fp - fm) * p3
			t.Rest += w * (fp + fm)
		}
	}
	if t.Rest > 0 {
		d := math.Sqrt(s.X.R*s.X.R + s.X.Z*s.X.Z)
		if d > o.rsup {
			o.rsup = d
		}
	}
	return
}

// fdist evaluates the distribution function
func (o *EvPolytropic) fdist(E, L float64) (f float64) {
	if E >= o.e0 {
		return
	}
	f = math.Pow(o.e0-E, o.k)
	if o.l > 0 {
		if L == 0 {
			return 0
		}
		f *= math.Pow(math.Abs(L), o.l)
	}
	if o.rot != 0 && L != 0 {
		if L > 0 {
			f *= 1.0 + o.rot
		} else {
			f *= 1.0 - o.rot
		}
	}
	return
}

// cutoff computes the momentum-space support radius: the single positive
// root of the convex function
//  g(p) = e^nu sqrt(1+p^2) - wh p - E0
// which bounds the region E < E0. wh is |WW| r BB e^{-nu}.
func (o *EvPolytropic) cutoff(enu, wh float64) float64 {
	g := func(p float64) float64 {
		return enu*math.Sqrt(1.0+p*p) - wh*p - o.e0
	}
	hi := 1.0
	for it := 0; g(hi) < 0; it++ {
		if it == 60 {
			return hi // dragging term dominates the lapse; cap the support
		}
		hi *= 2.0
	}
	lo := 0.0
	for it := 0; it < 100; it++ {
		mid := 0.5 * (lo + hi)
		if g(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
