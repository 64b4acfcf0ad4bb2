// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/dfm/geco/fea"
	"github.com/dfm/geco/out"
)

var momentsCmd = &cobra.Command{
	Use:   "moments <dir>",
	Short: "Multipole moments of the saved densities",
	Long: `Moments computes the multipole moments M0, M2 and M4 of every density
field saved in dir. The solver mesh is rebuilt from the data records.`,
	Args: cobra.ExactArgs(1),
	RunE: runMoments,
}

func runMoments(cmd *cobra.Command, args []string) error {
	keys, err := recordKeys(args[0])
	if err != nil {
		return err
	}
	for _, fnkey := range keys {
		data, err := out.LoadData(args[0], fnkey)
		if err != nil {
			return err
		}
		msh, enctype, err := meshFromRecord(data)
		if err != nil {
			return err
		}
		v, err := out.LoadField(args[0], fnkey, "rho", enctype)
		if err != nil {
			return err
		}
		if len(v) != msh.Nverts() {
			return chk.Err("density of %q has %d values but the mesh has %d vertices", fnkey, len(v), msh.Nverts())
		}
		m0, m2, m4, err := out.Moments(&fea.Field{Msh: msh, V: v})
		if err != nil {
			return err
		}
		io.Pf("\n%s\n", fnkey)
		io.Pf("%-26s = %23.15g\n", "moment M0", m0)
		io.Pf("%-26s = %23.15g\n", "moment M2", m2)
		io.Pf("%-26s = %23.15g\n", "moment M4", m4)
	}
	return nil
}

// meshFromRecord rebuilds the solver mesh stored with a data record
func meshFromRecord(data map[string]interface{}) (msh *fea.Mesh, enctype string, err error) {
	radius, okR := data["radius"].(float64)
	res, okN := data["resolution"].(float64)
	if !okR || !okN {
		err = chk.Err("data record carries no mesh parameters (radius, resolution)")
		return
	}
	if enctype, _ = data["encoder"].(string); enctype == "" {
		enctype = "gob"
	}
	return fea.NewMesh(radius, int(res)), enctype, nil
}
