// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/out"
	"github.com/dfm/geco/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <file.sim>",
	Short: "Run the solver defined by a .sim file",
	Long: `Solve reads a .sim file, runs the solver named there and prints the
diagnostics record. With "savesol" set in the file, the resulting fields
and the record are written to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var (
	solveAlias   string
	solveErase   bool
	solveMaxiter int
	solveTheta   float64
)

func init() {
	solveCmd.Flags().StringVar(&solveAlias, "alias", "", "append an alias to the simulation key")
	solveCmd.Flags().BoolVar(&solveErase, "erase", false, "erase previous results from the output directory")
	solveCmd.Flags().IntVar(&solveMaxiter, "maxiter", 0, "override the maximum number of iterations")
	solveCmd.Flags().Float64Var(&solveTheta, "theta", -1, "override the damping factor")
}

func runSolve(cmd *cobra.Command, args []string) error {

	// input
	sim := inp.ReadSim(args[0], solveAlias, solveErase, true)
	if solveMaxiter > 0 {
		sim.Solver.Maxiter = solveMaxiter
	}
	if solveTheta >= 0 {
		sim.Solver.Theta = solveTheta
	}

	// solve
	sol, err := solver.New(sim)
	if err != nil {
		return err
	}
	res, err := sol.Solve()
	if err != nil {
		return err
	}

	// report
	rec, err := record(sim, res)
	if err != nil {
		return err
	}
	out.PrintData(rec)
	if factor, ferr := out.ContractionFactor(res.Sum.Residuals); ferr == nil {
		io.Pf("%-26s = %23.15g\n", "contraction factor", factor)
	}

	// save
	if sim.Output.SaveSolution {
		if err = saveResults(sim, res); err != nil {
			return err
		}
		return out.SaveData(sim.DirOut, sim.Key, rec)
	}
	return nil
}

// saveResults writes one file per field. Newtonian runs save the
// potential under "uu"; relativistic runs save the four potentials.
func saveResults(sim *inp.Simulation, res *solver.Results) (err error) {
	flds := map[string][]float64{"rho": res.RHO.V}
	if res.BB == nil {
		flds["uu"] = res.NU.V
	} else {
		flds["nu"] = res.NU.V
		flds["bb"] = res.BB.V
		flds["mu"] = res.MU.V
		flds["ww"] = res.WW.V
	}
	for name, v := range flds {
		if err = out.SaveField(sim.DirOut, sim.Key, name, sim.EncType, v); err != nil {
			return
		}
	}
	return
}

// record flattens the characteristics into the diagnostics record and
// attaches the mesh data needed to reload the solution later
func record(sim *inp.Simulation, res *solver.Results) (rec map[string]interface{}, err error) {
	b, err := json.Marshal(res.Chars)
	if err != nil {
		return
	}
	rec = make(map[string]interface{})
	if err = json.Unmarshal(b, &rec); err != nil {
		return
	}
	rec["solver"] = sim.Solver.Name
	rec["radius"] = sim.Solver.Radius
	rec["resolution"] = sim.Solver.Resolution
	rec["encoder"] = sim.EncType
	if len(res.Sum.Residuals) > 0 {
		rec["converged"] = res.Sum.Converged
		rec["iterations"] = res.Sum.Iterations
		rec["residuals"] = res.Sum.Residuals
	}
	return
}
