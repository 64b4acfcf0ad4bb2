// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/rnd"
)

// tridiag assembles the n by n matrix with 2 on the diagonal and -1 on the
// off-diagonals
func tridiag(n int) (A *Matrix) {
	A = NewMatrix(n)
	A.Start()
	for i := 0; i < n; i++ {
		A.Put(i, i, 2)
		if i > 0 {
			A.Put(i, i-1, -1)
		}
		if i < n-1 {
			A.Put(i, i+1, -1)
		}
	}
	return
}

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. triplet assembly, duplicates and fixed rows")

	// [ 3  0  2 ]
	// [ 0  5  0 ]
	// [ 1  0  4 ]   with the (0,0) entry put in two parts
	A := NewMatrix(3)
	A.Start()
	A.Put(0, 0, 1)
	A.Put(0, 2, 2)
	A.Put(1, 1, 5)
	A.Put(2, 0, 1)
	A.Put(2, 2, 4)
	A.Put(0, 0, 2)
	chk.IntAssert(A.Dim(), 3)

	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	A.MatVec(y, x)
	chk.Vector(tst, "A*x", 1e-15, y, []float64{9, 10, 13})
	chk.IntAssert(A.Nnz(), 5)

	d := make([]float64, 3)
	A.Diag(d)
	chk.Vector(tst, "diag(A)", 1e-15, d, []float64{3, 5, 4})

	// fixing row 0 replaces it by the identity row
	A.SetFixedRows([]int{0})
	A.MatVec(y, x)
	chk.Vector(tst, "A*x (fixed)", 1e-15, y, []float64{1, 10, 13})
	A.Diag(d)
	chk.Vector(tst, "diag (fixed)", 1e-15, d, []float64{1, 5, 4})

	// restarting clears everything
	A.Start()
	A.Put(0, 0, 1)
	A.Put(1, 1, 1)
	A.Put(2, 2, 1)
	A.MatVec(y, x)
	chk.Vector(tst, "I*x", 1e-15, y, x)
}

func Test_sparse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse02. ILU factorisation of a tridiagonal matrix")

	// the zero-fill factorisation of a tridiagonal matrix is its exact LU
	n := 8
	A := tridiag(n)
	M, err := NewILU(A)
	if err != nil {
		tst.Errorf("ILU failed: %v\n", err)
		return
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(1 + i%3)
	}
	b := make([]float64, n)
	A.MatVec(b, x)

	y := make([]float64, n)
	err = M.Solve(y, b)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	chk.Vector(tst, "x from ILU solve", 1e-12, y, x)
}

func Test_sparse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse03. Jacobi preconditioner")

	A := NewMatrix(3)
	A.Start()
	A.Put(0, 0, 2)
	A.Put(1, 1, 4)
	A.Put(2, 2, 8)
	A.Put(0, 1, 1)

	M, err := NewJacobi(A)
	if err != nil {
		tst.Errorf("Jacobi failed: %v\n", err)
		return
	}
	y := make([]float64, 3)
	err = M.Solve(y, []float64{2, 2, 2})
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	chk.Vector(tst, "scaled b", 1e-15, y, []float64{1, 0.5, 0.25})
}

func Test_sparse04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse04. random triplets against a dense reference")

	rnd.Init(1234)
	n := 12
	A := NewMatrix(n)
	A.Start()
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for k := 0; k < 40; k++ {
		i := rnd.Int(0, n-1)
		j := rnd.Int(0, n-1)
		v := rnd.Float64(-1, 1)
		A.Put(i, j, v)
		dense[i][j] += v
	}

	x := make([]float64, n)
	rnd.Float64s(x, -1, 1)
	y := make([]float64, n)
	A.MatVec(y, x)

	correct := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			correct[i] += dense[i][j] * x[j]
		}
	}
	chk.Vector(tst, "A*x random", 1e-14, y, correct)
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. Krylov solution of a Poisson-like system")

	// exact solution of tridiag(-1,2,-1) u = 1 is u[i] = (i+1)(n-i)/2
	n := 10
	A := tridiag(n)
	b := make([]float64, n)
	la.VecFill(b, 1)
	correct := make([]float64, n)
	for i := 0; i < n; i++ {
		correct[i] = float64((i+1)*(n-i)) / 2.0
	}

	for _, prec := range Preconditioners() {
		lin := NewKrylov(1e-12, prec)
		x := make([]float64, n)
		err := lin.Solve(A, x, b)
		if err != nil {
			tst.Errorf("krylov (%s) failed: %v\n", prec, err)
			return
		}
		chk.Vector(tst, "u ("+prec+")", 1e-8, x, correct)
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. missing AMG falls back to ILU")

	lin := NewKrylov(1e-9, "amg")
	if lin.Pc != "ilu" {
		tst.Errorf("expected fall back to ilu. got %q\n", lin.Pc)
	}
	lin = NewKrylov(1e-9, "")
	if lin.Pc != "ilu" {
		tst.Errorf("expected default ilu. got %q\n", lin.Pc)
	}
}
