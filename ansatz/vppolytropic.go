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

// VpPolytropic implements the Newtonian polytropic ansatz
//  f(E,L) = (E0-E)_+^k |L|^l (1 + rotation*sign(L))
// with E = U + p^2/2 and L = r p3. Only the density moment is nonzero;
// the rotation bias is accepted for interface symmetry but cannot enter
// the Poisson source. A negative cutoff E0 gives compactly supported
// configurations (U vanishes at infinity).
type VpPolytropic struct {

	// parameters
	e0  float64 // cutoff energy
	k   float64 // energy polytropic exponent
	l   float64 // angular momentum polytropic exponent
	rot float64 // net rotation bias in [-1, 1]

	// integration
	nsteps int // quadrature steps per momentum direction

	// bound field (the Newtonian potential; the remaining slots are unused)
	u *fea.Field

	// accumulator
	rsup float64 // largest radius with matter since the last Reset
}

// add model to factory
func init() {
	allocators["vp-e-polytropic-l-polytropic"] = func() Model { return new(VpPolytropic) }
}

// Init initialises model
func (o *VpPolytropic) Init(prms fun.Prms) (err error) {
	o.e0 = -0.1
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
			return chk.Err("vp-e-polytropic-l-polytropic: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.ReadParameters()
}

// GetPrms gets (an example) of parameters
func (o VpPolytropic) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E0", V: -0.1},
		&fun.Prm{N: "k", V: 0.0},
		&fun.Prm{N: "l", V: 0.0},
		&fun.Prm{N: "rotation", V: 0.0},
	}
}

// SetFields binds the current potential. The Newtonian model reads only
// the first slot.
func (o *VpPolytropic) SetFields(nu, bb, mu, ww *fea.Field) {
	o.u = nu
}

// SetIntegrationParameters sets the momentum quadrature resolution
func (o *VpPolytropic) SetIntegrationParameters(numSteps int) {
	o.nsteps = numSteps
}

// ReadParameters revalidates the parameters. Called once per outer
// iteration; idempotent.
func (o *VpPolytropic) ReadParameters() (err error) {
	if o.e0 >= 1 {
		return chk.Err("vp-e-polytropic-l-polytropic: E0=%g must be below 1", o.e0)
	}
	if o.k < 0 || o.l < 0 {
		return chk.Err("vp-e-polytropic-l-polytropic: exponents must be non-negative. k=%g, l=%g", o.k, o.l)
	}
	if o.rot < -1 || o.rot > 1 {
		return chk.Err("vp-e-polytropic-l-polytropic: rotation=%g must be within [-1, 1]", o.rot)
	}
	return
}

// Reset clears the support-radius accumulator
func (o *VpPolytropic) Reset() {
	o.rsup = 0
}

// RadiusOfSupport returns the largest radius with matter since the last Reset
func (o *VpPolytropic) RadiusOfSupport() float64 {
	return o.rsup
}

// E0 returns the cutoff energy
func (o *VpPolytropic) E0() float64 {
	return o.e0
}

// Terms computes the density at one spatial sample. For k = 0, l = 0 the
// quadrature approximates the classical polytropic law
//  rho = 4 pi / 3 (2 (E0-U))^{3/2}
func (o *VpPolytropic) Terms(s fea.Sample) (t Terms) {
	u := o.u.ValueAt(s)
	if u >= o.e0 {
		return // vacuum
	}
	pmax := math.Sqrt(2.0 * (o.e0 - u))
	dp := pmax / float64(o.nsteps)
	for i := 0; i < o.nsteps; i++ {
		q := (float64(i) + 0.5) * dp
		w := 2.0 * math.Pi * q * dp * dp
		for j := 0; j < o.nsteps; j++ {
			p3 := (float64(j) + 0.5) * dp
			e := u + 0.5*(q*q+p3*p3)
			fp := o.fdist(e, s.X.R*p3)
			fm := o.fdist(e, -s.X.R*p3)
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
func (o *VpPolytropic) fdist(E, L float64) (f float64) {
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
