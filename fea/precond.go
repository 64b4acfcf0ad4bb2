// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ILU holds an incomplete LU factorisation with zero fill-in of a compiled
// sparse matrix. L has unit diagonal; L and U share the sparsity pattern
// of A.
type ILU struct {
	n    int
	ap   []int
	aj   []int
	lu   []float64
	dptr []int // position of the diagonal in each row
}

// NewILU factorises A (pattern of the compiled form, zero fill-in)
func NewILU(A *Matrix) (o *ILU, err error) {
	A.ensure()
	o = new(ILU)
	o.n = A.n
	o.ap = A.ap
	o.aj = A.aj
	o.lu = make([]float64, len(A.ax))
	copy(o.lu, A.ax)

	// diagonal positions
	o.dptr = make([]int, o.n)
	for i := 0; i < o.n; i++ {
		o.dptr[i] = -1
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			if o.aj[k] == i {
				o.dptr[i] = k
				break
			}
		}
		if o.dptr[i] < 0 {
			return nil, chk.Err("ilu: matrix has no diagonal entry in row %d", i)
		}
	}

	// ikj factorisation restricted to the pattern
	for i := 0; i < o.n; i++ {
		for kk := o.ap[i]; kk < o.ap[i+1]; kk++ {
			k := o.aj[kk]
			if k >= i {
				break
			}
			dk := o.lu[o.dptr[k]]
			if math.Abs(dk) < 1e-300 {
				return nil, chk.Err("ilu: zero pivot in row %d", k)
			}
			o.lu[kk] /= dk
			mult := o.lu[kk]
			for jj := o.dptr[k] + 1; jj < o.ap[k+1]; jj++ {
				pos := o.find(i, o.aj[jj])
				if pos >= 0 {
					o.lu[pos] -= mult * o.lu[jj]
				}
			}
		}
	}
	return
}

// Solve stores into dst the solution of (L U) dst = rhs
func (o *ILU) Solve(dst, rhs []float64) error {

	// forward: L y = rhs (unit diagonal)
	for i := 0; i < o.n; i++ {
		s := rhs[i]
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			j := o.aj[k]
			if j >= i {
				break
			}
			s -= o.lu[k] * dst[j]
		}
		dst[i] = s
	}

	// backward: U x = y
	for i := o.n - 1; i >= 0; i-- {
		s := dst[i]
		for k := o.dptr[i] + 1; k < o.ap[i+1]; k++ {
			s -= o.lu[k] * dst[o.aj[k]]
		}
		dst[i] = s / o.lu[o.dptr[i]]
	}
	return nil
}

// find locates column j within row i (columns are sorted)
func (o *ILU) find(i, j int) int {
	lo, hi := o.ap[i], o.ap[i+1]-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case o.aj[mid] < j:
			lo = mid + 1
		case o.aj[mid] > j:
			hi = mid - 1
		default:
			return mid
		}
	}
	return -1
}

// Jacobi is a diagonal-scaling preconditioner
type Jacobi struct {
	idiag []float64
}

// NewJacobi extracts the inverse diagonal of A
func NewJacobi(A *Matrix) (o *Jacobi, err error) {
	o = new(Jacobi)
	o.idiag = make([]float64, A.Dim())
	A.Diag(o.idiag)
	for i, d := range o.idiag {
		if math.Abs(d) < 1e-300 {
			return nil, chk.Err("jacobi: zero diagonal entry in row %d", i)
		}
		o.idiag[i] = 1.0 / d
	}
	return
}

// Solve stores into dst the solution of D dst = rhs
func (o *Jacobi) Solve(dst, rhs []float64) error {
	for i, d := range o.idiag {
		dst[i] = rhs[i] * d
	}
	return nil
}
