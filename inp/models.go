// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dfm/geco/ansatz"
)

// AllocModels allocates and initialises the matter models listed in the
// simulation input
func (o *Simulation) AllocModels() (models []ansatz.Model, err error) {
	for i, m := range o.Models {
		mdl, err := ansatz.New(m.Name)
		if err != nil {
			return nil, chk.Err("cannot allocate model #%d (%q):\n%v", i, m.Name, err)
		}
		if err = mdl.Init(m.Prms); err != nil {
			return nil, chk.Err("cannot initialise model #%d (%q):\n%v", i, m.Name, err)
		}
		mdl.SetIntegrationParameters(o.Solver.NumSteps)
		models = append(models, mdl)
	}
	return
}
