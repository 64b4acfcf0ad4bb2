// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gosl/io"
)

// PrintData prints a diagnostics record as an aligned table
func PrintData(data map[string]interface{}) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := data[k].(type) {
		case float64:
			io.Pf("%-26s = %23.15g\n", k, v)
		default:
			io.Pf("%-26s = %23v\n", k, v)
		}
	}
}
