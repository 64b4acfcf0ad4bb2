// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements end-to-end runs of the solvers
package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/solver"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// RunSim reads a simulation file, allocates the corresponding solver and
// iterates to convergence, panicking on any failure
func RunSim(simfilepath string) (sim *inp.Simulation, sol solver.Solver, res *solver.Results) {
	sim = inp.ReadSim(simfilepath, "", false, false)
	sol, err := solver.New(sim)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	res, err = sol.Solve()
	if err != nil {
		chk.Panic("cannot run simulation:\n%v", err)
	}
	if !res.Sum.Converged {
		chk.Panic("iteration stopped after %d steps without meeting tolerance %g",
			res.Sum.Iterations, sim.Solver.Tolerance)
	}
	return
}
