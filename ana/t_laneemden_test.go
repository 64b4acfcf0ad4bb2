// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_laneemden01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laneemden01. profiles with closed forms")

	// n = 0: θ = 1 - ξ²/6
	var le0 LaneEmden
	le0.Init(0)
	for _, ξ := range utl.LinSpace(0.5, 2.0, 4) {
		θ, dθ := le0.Calc(ξ)
		chk.AnaNum(tst, io.Sf("n=0 θ(%.2f)", ξ), 1e-5, θ, 1.0-ξ*ξ/6.0, chk.Verbose)
		chk.AnaNum(tst, io.Sf("n=0 θ'(%.2f)", ξ), 1e-5, dθ, -ξ/3.0, chk.Verbose)
	}

	// n = 1: θ = sin(ξ)/ξ
	var le1 LaneEmden
	le1.Init(1)
	io.PfWhite("%8s%16s%16s%23s\n", "ξ", "θnum", "θana", "error")
	for _, ξ := range utl.LinSpace(0.5, 3.0, 6) {
		θ, dθ := le1.Calc(ξ)
		θana := math.Sin(ξ) / ξ
		dana := math.Cos(ξ)/ξ - math.Sin(ξ)/(ξ*ξ)
		io.Pf("%8.4f%16.10f%16.10f%23.15e\n", ξ, θ, θana, math.Abs(θ-θana))
		chk.AnaNum(tst, io.Sf("n=1 θ(%.2f)", ξ), 1e-5, θ, θana, chk.Verbose)
		chk.AnaNum(tst, io.Sf("n=1 θ'(%.2f)", ξ), 1e-5, dθ, dana, chk.Verbose)
	}

	// n = 5: θ = 1/√(1+ξ²/3)
	var le5 LaneEmden
	le5.Init(5)
	for _, ξ := range utl.LinSpace(1.0, 6.0, 6) {
		θ, _ := le5.Calc(ξ)
		chk.AnaNum(tst, io.Sf("n=5 θ(%.2f)", ξ), 1e-5, θ, 1.0/math.Sqrt(1.0+ξ*ξ/3.0), chk.Verbose)
	}
}

func Test_laneemden02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laneemden02. first zero and dimensionless mass")

	// indices with closed forms
	var le0, le1 LaneEmden
	le0.Init(0)
	le1.Init(1)
	chk.AnaNum(tst, "ξ1 n=0", 1e-5, le0.FirstZero(), math.Sqrt(6.0), chk.Verbose)
	chk.AnaNum(tst, "ξ1 n=1", 1e-5, le1.FirstZero(), math.Pi, chk.Verbose)
	chk.AnaNum(tst, "m n=0", 1e-4, le0.DimlessMass(math.Sqrt(6.0)), 2.0*math.Sqrt(6.0), chk.Verbose)
	chk.AnaNum(tst, "m n=1", 1e-4, le1.DimlessMass(math.Pi), math.Pi, chk.Verbose)

	// n = 3/2 is the profile of the isotropic polytropic ansatz with k = 0
	var le LaneEmden
	le.Init(1.5)
	ξ1 := le.FirstZero()
	chk.AnaNum(tst, "ξ1 n=3/2", 1e-4, ξ1, 3.65375374, chk.Verbose)
	chk.AnaNum(tst, "m n=3/2", 1e-3, le.DimlessMass(ξ1), 2.71406, chk.Verbose)

	if chk.Verbose {
		plt.Reset(false, nil)
		le.Plot("/tmp/geco", "ana_laneemden", 101)
	}
}
