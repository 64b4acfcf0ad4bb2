// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"github.com/cpmech/gosl/chk"
)

// BValue computes the prescribed boundary value at vertex v located at x.
// Closures over live fields implement value rules that depend on the
// current solution (e.g. an axis value derived from two other fields).
type BValue func(v int, x Point) float64

// EssentialBc prescribes values on one boundary group of the mesh
type EssentialBc struct {
	Key   string // boundary group: "axis", "infty" or "all"
	Msh   *Mesh  // the mesh
	Verts []int  // constrained vertex ids
	Fval  BValue // boundary value rule
}

// NewEssentialBc creates a boundary condition on the named group
func NewEssentialBc(msh *Mesh, key string, fval BValue) (o *EssentialBc) {
	o = &EssentialBc{Key: key, Msh: msh, Fval: fval}
	switch key {
	case "axis":
		o.Verts = msh.Axis
	case "infty":
		o.Verts = msh.Infty
	case "all":
		o.Verts = msh.Bry
	default:
		chk.Panic("unknown boundary group %q", key)
	}
	return
}

// NewZeroBc creates the homogeneous condition on the whole boundary, used
// both as a Dirichlet condition and as the residual filter
func NewZeroBc(msh *Mesh) *EssentialBc {
	return NewEssentialBc(msh, "all", func(int, Point) float64 { return 0 })
}

// ApplyToMat replaces the constrained rows of A by identity rows
func (o *EssentialBc) ApplyToMat(A *Matrix) {
	A.SetFixedRows(o.Verts)
}

// ApplyToVec sets the constrained entries of b to the prescribed values
func (o *EssentialBc) ApplyToVec(b []float64) {
	for _, v := range o.Verts {
		b[v] = o.Fval(v, o.Msh.Verts[v])
	}
}
