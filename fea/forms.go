// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

// Sample identifies an evaluation point during assembly
type Sample struct {
	Elem int        // cell id
	X    Point      // real coordinates of the point
	L    [3]float64 // barycentric coordinates within the cell
}

// Coefficient is a scalar function evaluated at assembly samples. Closures
// over fields and constants give the variable coefficients of the weak
// forms; any radial measure factor is part of the coefficient itself.
type Coefficient func(s Sample) float64

// BilinearForm describes the left-hand-side operator
//
//	a(u,v) = ∫ [ Grad ∇u・∇v + Dr (∂u/∂r) v + Mass u v ] dΩ
//
// Nil entries are absent terms.
type BilinearForm struct {
	Grad Coefficient // coefficient of ∇u・∇v
	Dr   Coefficient // coefficient of (∂u/∂r) v
	Mass Coefficient // coefficient of u v
}

// LinearForm describes the right-hand-side functional L(v) = ∫ F v dΩ
type LinearForm struct {
	F Coefficient
}

// Cte returns a constant coefficient
func Cte(value float64) Coefficient {
	return func(Sample) float64 { return value }
}
