// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"

	"github.com/dfm/geco/inp"
	"github.com/dfm/geco/out"
	"github.com/dfm/geco/solver"
)

var dataCmd = &cobra.Command{
	Use:   "data <dir> <file.sim>",
	Short: "Recompute the diagnostics record from saved fields",
	Long: `Data loads the potentials saved in dir for the given simulation and
derives the diagnostics record from them again, without iterating. With
--save, the record file in dir is rewritten.`,
	Args: cobra.ExactArgs(2),
	RunE: runData,
}

var (
	dataAlias string
	dataSave  bool
)

func init() {
	dataCmd.Flags().StringVar(&dataAlias, "alias", "", "append an alias to the simulation key")
	dataCmd.Flags().BoolVar(&dataSave, "save", false, "rewrite the data record with the result")
}

func runData(cmd *cobra.Command, args []string) error {

	// input
	dir := args[0]
	sim := inp.ReadSim(args[1], dataAlias, false, false)
	sol, err := solver.New(sim)
	if err != nil {
		return err
	}
	rc, ok := sol.(solver.Recomputer)
	if !ok {
		return chk.Err("solver %q cannot recompute characteristics", sim.Solver.Name)
	}

	// saved fields
	names := []string{"nu", "bb", "mu", "ww"}
	if sim.Solver.Name == "vp" {
		names = []string{"uu"}
	}
	flds := make(map[string][]float64)
	for _, name := range names {
		if flds[name], err = out.LoadField(dir, sim.Key, name, sim.EncType); err != nil {
			return err
		}
	}

	// recompute
	res, err := rc.Recompute(flds)
	if err != nil {
		return err
	}
	rec, err := record(sim, res)
	if err != nil {
		return err
	}
	out.PrintData(rec)
	if dataSave {
		return out.SaveData(dir, sim.Key, rec)
	}
	return nil
}
