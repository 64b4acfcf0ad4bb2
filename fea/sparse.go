// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Matrix is a sparse square matrix assembled in triplet form and compiled
// on demand to compressed-row storage for products and preconditioning.
// Rows listed as fixed (essential boundary conditions) are replaced by
// identity rows during compilation.
type Matrix struct {

	// triplet storage
	n  int
	ti []int
	tj []int
	tv []float64

	// fixed rows (row replaced by the identity)
	fixed map[int]bool

	// compiled compressed-row storage
	ap, aj []int
	ax     []float64
	fresh  bool
}

// NewMatrix creates an n by n sparse matrix
func NewMatrix(n int) *Matrix {
	if n < 1 {
		chk.Panic("matrix dimension must be positive. n=%d is invalid", n)
	}
	return &Matrix{n: n, fixed: make(map[int]bool)}
}

// Dim returns the matrix dimension
func (o *Matrix) Dim() int { return o.n }

// Start (re)initialises the triplet storage for a new assembly
func (o *Matrix) Start() {
	o.ti = o.ti[:0]
	o.tj = o.tj[:0]
	o.tv = o.tv[:0]
	o.fixed = make(map[int]bool)
	o.fresh = false
}

// Put adds value to the (i,j) entry. Duplicates accumulate.
func (o *Matrix) Put(i, j int, value float64) {
	o.ti = append(o.ti, i)
	o.tj = append(o.tj, j)
	o.tv = append(o.tv, value)
	o.fresh = false
}

// SetFixedRows marks rows to be replaced by identity rows. Entries already
// put (and any put later) into these rows are discarded at compilation.
func (o *Matrix) SetFixedRows(rows []int) {
	for _, i := range rows {
		o.fixed[i] = true
	}
	o.fresh = false
}

// MatVec computes dst = A * src using the compiled form
func (o *Matrix) MatVec(dst, src []float64) {
	o.ensure()
	for i := 0; i < o.n; i++ {
		s := 0.0
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			s += o.ax[k] * src[o.aj[k]]
		}
		dst[i] = s
	}
}

// Diag extracts the diagonal into d
func (o *Matrix) Diag(d []float64) {
	o.ensure()
	for i := 0; i < o.n; i++ {
		d[i] = 0
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			if o.aj[k] == i {
				d[i] = o.ax[k]
				break
			}
		}
	}
}

// Nnz returns the number of stored entries in the compiled form
func (o *Matrix) Nnz() int {
	o.ensure()
	return len(o.ax)
}

// compilation /////////////////////////////////////////////////////////////////////////////////////

// ensure compiles the triplet data into compressed-row storage
func (o *Matrix) ensure() {
	if o.fresh {
		return
	}

	// count entries per row, replacing fixed rows by a single diagonal
	count := make([]int, o.n+1)
	for _, i := range o.ti {
		if !o.fixed[i] {
			count[i+1]++
		}
	}
	for i := range o.fixed {
		count[i+1]++
	}
	o.ap = make([]int, o.n+1)
	for i := 0; i < o.n; i++ {
		o.ap[i+1] = o.ap[i] + count[i+1]
	}

	// scatter
	nnz := o.ap[o.n]
	o.aj = make([]int, nnz)
	o.ax = make([]float64, nnz)
	pos := make([]int, o.n)
	copy(pos, o.ap[:o.n])
	for k, i := range o.ti {
		if o.fixed[i] {
			continue
		}
		o.aj[pos[i]] = o.tj[k]
		o.ax[pos[i]] = o.tv[k]
		pos[i]++
	}
	for i := range o.fixed {
		o.aj[pos[i]] = i
		o.ax[pos[i]] = 1.0
		pos[i]++
	}

	// sort each row by column and merge duplicates
	type entry struct {
		j int
		x float64
	}
	newap := make([]int, o.n+1)
	w := 0
	var row []entry
	for i := 0; i < o.n; i++ {
		row = row[:0]
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			row = append(row, entry{o.aj[k], o.ax[k]})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].j < row[b].j })
		newap[i] = w
		for k := 0; k < len(row); k++ {
			if k > 0 && row[k].j == o.aj[w-1] {
				o.ax[w-1] += row[k].x
				continue
			}
			o.aj[w] = row[k].j
			o.ax[w] = row[k].x
			w++
		}
	}
	newap[o.n] = w
	o.ap = newap
	o.aj = o.aj[:w]
	o.ax = o.ax[:w]
	o.fresh = true
}
