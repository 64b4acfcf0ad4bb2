// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetTexLabel returns the TeX label of a field or diagnostics key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "nu", "NU":
		l += "\\nu"
	case "bb", "BB":
		l += "B"
	case "mu", "MU":
		l += "\\mu"
	case "ww", "WW":
		l += "\\omega"
	case "rho", "RHO":
		l += "\\rho"
	case "uu", "U":
		l += "U"
	case "gtt":
		l += "g_{tt}"
	case "resid":
		l += "||F||"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
