// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/dfm/geco/fea"
)

// Moments computes the multipole moments of an axisymmetric density:
//
//   Mn = 2 pi int rho s^n Pn(z/s) r dr dz,   s^2 = r^2 + z^2
//
// with Pn the Legendre polynomials. M0 is the total amount of matter;
// M2 and M4 vanish for spherically symmetric configurations and
// measure the oblateness otherwise.
func Moments(rho *fea.Field) (m0, m2, m4 float64, err error) {
	asm := fea.NewAssembler(rho.Msh, nil)
	twoPi := 2.0 * math.Pi
	m0, err = asm.AssembleScalar(func(s fea.Sample) float64 {
		return twoPi * rho.ValueAt(s) * s.X.R
	})
	if err != nil {
		return
	}
	m2, err = asm.AssembleScalar(func(s fea.Sample) float64 {
		r, z := s.X.R, s.X.Z
		s2 := r*r + z*z
		return twoPi * rho.ValueAt(s) * 0.5 * (3.0*z*z - s2) * r
	})
	if err != nil {
		return
	}
	m4, err = asm.AssembleScalar(func(s fea.Sample) float64 {
		r, z := s.X.R, s.X.Z
		s2 := r*r + z*z
		z2 := z * z
		return twoPi * rho.ValueAt(s) * 0.125 * (35.0*z2*z2 - 30.0*z2*s2 + 3.0*s2*s2) * r
	})
	return
}
