// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_conv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv01. order of accuracy from (h, e) pairs")

	// second order
	h := []float64{0.4, 0.2, 0.1, 0.05}
	e := make([]float64, len(h))
	for i, hi := range h {
		e[i] = 3.0 * hi * hi
	}
	rate, err := ConvergenceRate(h, e)
	if err != nil {
		tst.Errorf("ConvergenceRate failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "rate p=2", 1e-12, rate, 2.0)

	// first order
	for i, hi := range h {
		e[i] = 0.5 * hi
	}
	rate, err = ConvergenceRate(h, e)
	if err != nil {
		tst.Errorf("ConvergenceRate failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "rate p=1", 1e-12, rate, 1.0)

	// pairs with zero error are skipped
	rate, err = ConvergenceRate(h, []float64{0.48, 0, 0.03, 0.0075})
	if err != nil {
		tst.Errorf("ConvergenceRate failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "rate with gaps", 1e-12, rate, 2.0)

	// mismatched and short inputs
	if _, err = ConvergenceRate([]float64{0.1}, []float64{0.01, 0.1}); err == nil {
		tst.Errorf("ConvergenceRate should fail with mismatched slices")
		return
	}
	if _, err = ConvergenceRate([]float64{0.1}, []float64{0.01}); err == nil {
		tst.Errorf("ConvergenceRate should fail with a single pair")
		return
	}
}

func Test_conv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv02. contraction factor of a geometric history")

	residuals := []float64{1, 0.1, 0.01, 0.001, 0.0001}
	factor, err := ContractionFactor(residuals)
	if err != nil {
		tst.Errorf("ContractionFactor failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "factor", 1e-12, factor, 0.1)

	// zero entries are skipped
	factor, err = ContractionFactor([]float64{1, 0, 0.01, 0.001})
	if err != nil {
		tst.Errorf("ContractionFactor failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "factor with gaps", 1e-12, factor, 0.1)

	// histories that are too short
	if _, err = ContractionFactor([]float64{1}); err == nil {
		tst.Errorf("ContractionFactor should fail with a single residual")
		return
	}
}
