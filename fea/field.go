// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Field is a P1 scalar field: one nodal value per mesh vertex
type Field struct {
	Msh *Mesh     // the mesh
	V   []float64 // [nverts] nodal values
}

// Const is a mutable scalar shared into coefficient closures by pointer,
// so reassigning V is observed by every form that captures the constant
type Const struct {
	V float64
}

// NewField creates a field with all values set to zero
func NewField(msh *Mesh) *Field {
	return &Field{msh, make([]float64, msh.Nverts())}
}

// SetFunc sets the nodal values by evaluating f at the vertices
func (o *Field) SetFunc(f func(x Point) float64) {
	for v, p := range o.Msh.Verts {
		o.V[v] = f(p)
	}
}

// Fill sets all nodal values to value
func (o *Field) Fill(value float64) {
	la.VecFill(o.V, value)
}

// CopyFrom copies the nodal values of another field
func (o *Field) CopyFrom(f *Field) {
	la.VecCopy(o.V, 1, f.V)
}

// ValueAt interpolates the field at an assembly sample
func (o *Field) ValueAt(s Sample) float64 {
	c := o.Msh.Cells[s.Elem]
	return s.L[0]*o.V[c[0]] + s.L[1]*o.V[c[1]] + s.L[2]*o.V[c[2]]
}

// GradAt returns the (constant) gradient of the field over cell ic
func (o *Field) GradAt(ic int) (gr, gz float64) {
	c := o.Msh.Cells[ic]
	g := &o.Msh.Grads[ic]
	for k := 0; k < 3; k++ {
		gr += g[k][0] * o.V[c[k]]
		gz += g[k][1] * o.V[c[k]]
	}
	return
}

// Eval evaluates the field at an arbitrary point of the domain
func (o *Field) Eval(p Point) (value float64, err error) {
	ic, L, found := o.Msh.FindCell(p)
	if !found {
		return 0, chk.Err("point (%g,%g) is outside the domain", p.R, p.Z)
	}
	return o.ValueAt(Sample{ic, p, L}), nil
}

// Max returns the maximum (signed) nodal value
func (o *Field) Max() (max float64) {
	max = o.V[0]
	for _, v := range o.V {
		if v > max {
			max = v
		}
	}
	return
}

// VertSample returns a sample located exactly at vertex v, using one of
// the cells incident to it
func (o *Mesh) VertSample(v int) (s Sample) {
	s.Elem = o.VertCells[v][0]
	s.X = o.Verts[v]
	for k, vv := range o.Cells[s.Elem] {
		if vv == v {
			s.L[k] = 1
		}
	}
	return
}
