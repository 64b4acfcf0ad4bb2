// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/out"
	"github.com/dfm/geco/solver"
)

var convergenceCmd = &cobra.Command{
	Use:   "convergence <file.sim>",
	Short: "Fit the convergence rate over a ladder of resolutions",
	Long: `Convergence re-runs the simulation on meshes of increasing resolution
and fits the order of accuracy of the central redshift (or of the
central potential for Newtonian runs) against the finest level.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvergence,
}

var convLevels int

func init() {
	convergenceCmd.Flags().IntVar(&convLevels, "levels", 3, "refinement levels; the resolution doubles per level")
}

func runConvergence(cmd *cobra.Command, args []string) error {

	// input
	sim := inp.ReadSim(args[0], "", false, false)
	if convLevels < 2 {
		return chk.Err("convergence needs at least 2 levels; got %d", convLevels)
	}

	// solve the ladder
	n0 := sim.Solver.Resolution
	ns := make([]int, convLevels)
	h := make([]float64, convLevels)
	vals := make([]float64, convLevels)
	for i := 0; i < convLevels; i++ {
		ns[i] = n0 << uint(i)
		h[i] = sim.Solver.Radius / float64(ns[i])
		sim.Solver.Resolution = ns[i]
		sol, err := solver.New(sim)
		if err != nil {
			return err
		}
		res, err := sol.Solve()
		if err != nil {
			return err
		}
		vals[i] = res.Chars.CentralRedshift
		if sim.Solver.Name == "vp" {
			vals[i] = res.Chars.CentralPotential
		}
	}

	// errors against the finest level
	e := make([]float64, convLevels-1)
	for i := range e {
		e[i] = math.Abs(vals[i] - vals[convLevels-1])
	}
	rate, err := out.ConvergenceRate(h[:convLevels-1], e)
	if err != nil {
		return err
	}

	// report
	io.PfWhite("\n%10s%8s%23s%23s\n", "h", "n", "value", "error")
	for i := 0; i < convLevels; i++ {
		if i < convLevels-1 {
			io.Pf("%10.5f%8d%23.15g%23.15g\n", h[i], ns[i], vals[i], e[i])
		} else {
			io.Pf("%10.5f%8d%23.15g%23s\n", h[i], ns[i], vals[i], "-")
		}
	}
	io.Pf("\nfitted rate = %.3f\n", rate)
	return nil
}
