// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/geco
	Encoder string `json:"encoder"` // encoder name; "gob" or "json"
}

// SolverData holds data for the self-consistent-field solver
type SolverData struct {

	// problem definition
	Name       string  `json:"name"`       // solver name: "ev" or "vp"
	Mass       float64 `json:"mass"`       // target mass; required, > 0
	AngMom     float64 `json:"angmom"`     // target angular-momentum parameter J
	Radius     float64 `json:"radius"`     // outer domain radius
	Resolution int     `json:"resolution"` // mesh resolution (number of rings)

	// iteration
	Maxiter   int     `json:"maxiter"`   // maximum number of outer iterations
	Theta     float64 `json:"theta"`     // damping factor within [0, 1]
	Tolerance float64 `json:"tolerance"` // residual tolerance
	NumSteps  int     `json:"numsteps"`  // momentum quadrature steps per direction
	KrylovTol float64 `json:"krylovtol"` // linear solver relative tolerance
	Precond   string  `json:"precond"`   // preferred preconditioner; e.g. "amg"
}

// ModelData holds one matter-model definition
type ModelData struct {
	Name string   `json:"name"` // model name in the ansatz database
	Prms fun.Prms `json:"prms"` // model parameters
}

// OutputData holds output options
type OutputData struct {
	PlotIteration bool `json:"plotiter"` // plot the density at every iteration (display only)
	SaveSolution  bool `json:"savesol"`  // save fields and data after solving
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data         `json:"data"`   // global data
	Solver SolverData   `json:"solver"` // SCF solver data
	Models []*ModelData `json:"models"` // matter models
	Output OutputData   `json:"output"` // output options

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string // encoder type
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Name = "ev"
	o.Radius = 25.0
	o.Resolution = 32
	o.Maxiter = 100
	o.Theta = 1.0
	o.Tolerance = 1e-3
	o.NumSteps = 10
	o.KrylovTol = 1e-9
	o.Precond = "amg"
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/geco/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check input
	if o.Solver.Mass <= 0 {
		chk.Panic("ReadSim: target mass must be positive. mass=%g is invalid", o.Solver.Mass)
	}
	if o.Solver.Theta < 0 || o.Solver.Theta > 1 {
		chk.Panic("ReadSim: damping factor must be within [0, 1]. theta=%g is invalid", o.Solver.Theta)
	}
	if len(o.Models) < 1 {
		chk.Panic("ReadSim: at least one matter model is required")
	}
	if o.Solver.Radius <= 0 {
		chk.Panic("ReadSim: domain radius must be positive. radius=%g is invalid", o.Solver.Radius)
	}
	if o.Solver.Resolution < 2 {
		chk.Panic("ReadSim: resolution must be at least 2. resolution=%d is invalid", o.Solver.Resolution)
	}
	if o.Solver.Maxiter < 1 {
		chk.Panic("ReadSim: maxiter must be at least 1. maxiter=%d is invalid", o.Solver.Maxiter)
	}
	return &o
}
