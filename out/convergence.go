// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/stat"
)

// ConvergenceRate fits the order of accuracy p from pairs of mesh
// spacings h and errors e, by least squares on log10(e) = log10(C) +
// p log10(h). Pairs with a non-positive entry are skipped.
func ConvergenceRate(h, e []float64) (rate float64, err error) {
	if len(h) != len(e) {
		err = chk.Err("convergence fit needs matching slices; got %d spacings and %d errors", len(h), len(e))
		return
	}
	var lh, le []float64
	for i := range h {
		if h[i] > 0 && e[i] > 0 {
			lh = append(lh, math.Log10(h[i]))
			le = append(le, math.Log10(e[i]))
		}
	}
	if len(lh) < 2 {
		err = chk.Err("convergence fit needs at least two positive (h, e) pairs; got %d", len(lh))
		return
	}
	_, rate = stat.LinearRegression(lh, le, nil, false)
	return
}

// ContractionFactor estimates the contraction factor of a residual
// history by linear regression of log10(residual) against the iteration
// number. A factor below one means the iteration converges, and smaller
// is faster.
func ContractionFactor(residuals []float64) (factor float64, err error) {
	var its, logres []float64
	for i, r := range residuals {
		if r > 0 {
			its = append(its, float64(i))
			logres = append(logres, math.Log10(r))
		}
	}
	if len(its) < 2 {
		err = chk.Err("contraction factor needs at least two positive residuals; got %d", len(its))
		return
	}
	_, slope := stat.LinearRegression(its, logres, nil, false)
	return math.Pow(10.0, slope), nil
}
