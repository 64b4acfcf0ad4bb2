// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fea implements P1 finite elements on a meridional half-disk:
// structured triangular meshes, nodal fields, weak-form assembly, sparse
// matrices, essential boundary conditions and preconditioned Krylov solves.
package fea

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// Point holds the cylindrical coordinates (r, z) of a point in the
// meridional plane
type Point struct {
	R float64 // radial coordinate; r >= 0
	Z float64 // axial coordinate
}

// Mesh implements a structured triangulation of the half-disk
//
//	{ (r,z) : r >= 0, r*r + z*z <= R*R }
//
// built from n concentric rings and m = 4*n angular divisions spanning
// [-pi/2, pi/2]. Ring 1 is a fan around the centre vertex; outer rings are
// quads split into triangle pairs. Two boundary groups are tagged: "axis"
// (the straight edge r = 0, centre included) and "infty" (the outer arc).
type Mesh struct {

	// geometry
	R float64 // radius of the outer arc
	N int     // number of rings
	M int     // number of angular divisions

	// entities
	Verts []Point  // [nverts] vertex coordinates
	Cells [][3]int // [ncells] vertex ids of each triangle, counter-clockwise

	// boundary groups
	Axis  []int // vertex ids on the axis r = 0
	Infty []int // vertex ids on the outer arc
	Bry   []int // all boundary vertex ids (axis + infty)

	// derived, per cell
	Areas []float64       // [ncells] triangle areas
	Grads [][3][2]float64 // [ncells] gradients of the P1 basis functions

	// derived, per vertex
	VertCells [][]int // [nverts] ids of cells sharing each vertex

	// spatial search
	bins gm.Bins
}

// NewMesh creates a half-disk mesh with outer radius R and n rings
func NewMesh(R float64, n int) (o *Mesh) {
	if R <= 0 {
		chk.Panic("mesh radius must be positive. R=%g is invalid", R)
	}
	if n < 1 {
		chk.Panic("mesh resolution must be at least 1. n=%d is invalid", n)
	}
	o = new(Mesh)
	o.R = R
	o.N = n
	o.M = 4 * n

	// vertices: centre first, then rings from the inside out.
	// vertex (i,j) sits at radius R*i/n and angle -pi/2 + pi*j/m
	o.Verts = make([]Point, 1+n*(o.M+1))
	o.Verts[0] = Point{0, 0}
	for i := 1; i <= n; i++ {
		ri := R * float64(i) / float64(n)
		for j := 0; j <= o.M; j++ {
			a := -math.Pi/2.0 + math.Pi*float64(j)/float64(o.M)
			p := Point{ri * math.Cos(a), ri * math.Sin(a)}
			if j == 0 {
				p = Point{0, -ri} // snap to the axis
			}
			if j == o.M {
				p = Point{0, ri}
			}
			o.Verts[o.vid(i, j)] = p
		}
	}

	// cells: fan around the centre, then split quads
	for j := 0; j < o.M; j++ {
		o.Cells = append(o.Cells, [3]int{0, o.vid(1, j), o.vid(1, j+1)})
	}
	for i := 2; i <= n; i++ {
		for j := 0; j < o.M; j++ {
			a, b := o.vid(i-1, j), o.vid(i, j)
			c, d := o.vid(i, j+1), o.vid(i-1, j+1)
			o.Cells = append(o.Cells, [3]int{a, b, c})
			o.Cells = append(o.Cells, [3]int{a, c, d})
		}
	}

	// boundary groups
	o.Axis = append(o.Axis, 0)
	for i := 1; i <= n; i++ {
		o.Axis = append(o.Axis, o.vid(i, 0), o.vid(i, o.M))
	}
	for j := 0; j <= o.M; j++ {
		o.Infty = append(o.Infty, o.vid(n, j))
	}
	onaxis := make(map[int]bool)
	for _, v := range o.Axis {
		onaxis[v] = true
	}
	o.Bry = append(o.Bry, o.Axis...)
	for _, v := range o.Infty {
		if !onaxis[v] {
			o.Bry = append(o.Bry, v)
		}
	}

	// per-cell geometry
	nc := len(o.Cells)
	o.Areas = make([]float64, nc)
	o.Grads = make([][3][2]float64, nc)
	for ic, c := range o.Cells {
		p0, p1, p2 := o.Verts[c[0]], o.Verts[c[1]], o.Verts[c[2]]
		det := (p1.R-p0.R)*(p2.Z-p0.Z) - (p2.R-p0.R)*(p1.Z-p0.Z)
		if det <= 0 {
			chk.Panic("cell %d has non-positive area: det=%g", ic, det)
		}
		o.Areas[ic] = det / 2.0
		o.Grads[ic][0] = [2]float64{(p1.Z - p2.Z) / det, (p2.R - p1.R) / det}
		o.Grads[ic][1] = [2]float64{(p2.Z - p0.Z) / det, (p0.R - p2.R) / det}
		o.Grads[ic][2] = [2]float64{(p0.Z - p1.Z) / det, (p1.R - p0.R) / det}
	}

	// vertex-to-cell map
	o.VertCells = make([][]int, len(o.Verts))
	for ic, c := range o.Cells {
		for _, v := range c {
			o.VertCells[v] = append(o.VertCells[v], ic)
		}
	}

	// bins for vertex search
	δ := R * 1e-8
	xi := []float64{-δ, -R - δ}
	xf := []float64{R + δ, R + δ}
	err := o.bins.Init(xi, xf, 2*n)
	if err != nil {
		chk.Panic("cannot initialise bins for mesh vertices: %v", err)
	}
	for v, p := range o.Verts {
		err = o.bins.Append([]float64{p.R, p.Z}, v)
		if err != nil {
			chk.Panic("cannot append vertex %d to bins: %v", v, err)
		}
	}
	return
}

// Nverts returns the number of vertices
func (o *Mesh) Nverts() int { return len(o.Verts) }

// Ncells returns the number of cells
func (o *Mesh) Ncells() int { return len(o.Cells) }

// Hmin returns a characteristic cell size
func (o *Mesh) Hmin() float64 { return o.R / float64(o.N) }

// Bary computes the barycentric coordinates of p within cell ic:
// lambda_k(p) = lambda_k(p0) + grad_k . (p - p0)
func (o *Mesh) Bary(ic int, p Point) (L [3]float64) {
	c := o.Cells[ic]
	p0 := o.Verts[c[0]]
	g := &o.Grads[ic]
	L[0] = 1.0 + g[0][0]*(p.R-p0.R) + g[0][1]*(p.Z-p0.Z)
	L[1] = g[1][0]*(p.R-p0.R) + g[1][1]*(p.Z-p0.Z)
	L[2] = g[2][0]*(p.R-p0.R) + g[2][1]*(p.Z-p0.Z)
	return
}

// FindCell locates the cell containing p and returns its barycentric
// coordinates. found is false if p lies outside the mesh (up to a small
// geometric tolerance).
func (o *Mesh) FindCell(p Point) (ic int, L [3]float64, found bool) {
	tol := -1e-9

	// try the cells around the nearest binned vertex first
	v := o.bins.Find([]float64{p.R, p.Z})
	if v >= 0 {
		for _, jc := range o.VertCells[v] {
			if l, in := o.inside(jc, p, tol); in {
				return jc, l, true
			}
		}
	}

	// fallback: scan all cells
	for jc := range o.Cells {
		if l, in := o.inside(jc, p, tol); in {
			return jc, l, true
		}
	}
	return -1, L, false
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// vid returns the vertex id of grid position (ring i, division j)
func (o *Mesh) vid(i, j int) int {
	return 1 + (i-1)*(o.M+1) + j
}

// inside checks whether p lies within cell ic
func (o *Mesh) inside(ic int, p Point, tol float64) (L [3]float64, in bool) {
	L = o.Bary(ic, p)
	in = L[0] >= tol && L[1] >= tol && L[2] >= tol
	return
}
