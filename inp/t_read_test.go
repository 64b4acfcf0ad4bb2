// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/spindle.sim", "", false, false)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}

	io.Pfyel("key     = %v\n", sim.Key)
	io.Pfyel("dirout  = %v\n", sim.DirOut)
	io.Pfcyan("encoder = %v\n", sim.EncType)

	chk.String(tst, sim.Key, "spindle")
	chk.String(tst, sim.DirOut, "/tmp/geco/spindle")
	chk.String(tst, sim.EncType, "json")
	chk.String(tst, sim.Solver.Name, "ev")

	// explicit values
	chk.Scalar(tst, "mass      ", 1e-17, sim.Solver.Mass, 1.0)
	chk.Scalar(tst, "radius    ", 1e-17, sim.Solver.Radius, 20)
	chk.Scalar(tst, "theta     ", 1e-17, sim.Solver.Theta, 0.5)
	chk.Scalar(tst, "tolerance ", 1e-17, sim.Solver.Tolerance, 1e-4)
	chk.IntAssert(sim.Solver.Resolution, 16)

	// defaults fill the gaps
	chk.Scalar(tst, "angmom    ", 1e-17, sim.Solver.AngMom, 0)
	chk.Scalar(tst, "krylovtol ", 1e-17, sim.Solver.KrylovTol, 1e-9)
	chk.IntAssert(sim.Solver.Maxiter, 100)
	chk.IntAssert(sim.Solver.NumSteps, 10)
	chk.String(tst, sim.Solver.Precond, "amg")

	// models
	chk.IntAssert(len(sim.Models), 1)
	chk.String(tst, sim.Models[0].Name, "ev-e-polytropic-l-polytropic")
	if !sim.Output.SaveSolution {
		tst.Errorf("savesol flag not read\n")
		return
	}

	models, err := sim.AllocModels()
	if err != nil {
		tst.Errorf("model allocation failed:\n%v", err)
		return
	}
	chk.IntAssert(len(models), 1)
	chk.Scalar(tst, "E0", 1e-17, models[0].E0(), 0.94)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim := ReadSim("data/vp01.sim", "check", false, false)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}

	chk.String(tst, sim.Key, "vp01-check")
	chk.String(tst, sim.Solver.Name, "vp")
	chk.String(tst, sim.EncType, "gob") // fallback when no encoder is given
	chk.Scalar(tst, "mass  ", 1e-17, sim.Solver.Mass, 2.5)
	chk.Scalar(tst, "radius", 1e-17, sim.Solver.Radius, 25)
	chk.Scalar(tst, "theta ", 1e-17, sim.Solver.Theta, 1.0)
	chk.IntAssert(sim.Solver.Resolution, 32)

	models, err := sim.AllocModels()
	if err != nil {
		tst.Errorf("model allocation failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "E0 (vp)", 1e-17, models[0].E0(), -0.1)

	// a bad model name surfaces as an error
	sim.Models[0].Name = "porous"
	if _, err = sim.AllocModels(); err == nil {
		tst.Errorf("allocation of unknown model must fail\n")
		return
	}
}
