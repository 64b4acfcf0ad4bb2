// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/dfm/geco/out"
)

var printCmd = &cobra.Command{
	Use:   "print <dir>",
	Short: "Print the diagnostics records saved in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	keys, err := recordKeys(args[0])
	if err != nil {
		return err
	}
	for _, fnkey := range keys {
		data, err := out.LoadData(args[0], fnkey)
		if err != nil {
			return err
		}
		io.Pf("\n%s\n", fnkey)
		out.PrintData(data)
	}
	return nil
}

// recordKeys lists the simulation keys with a data record in dir
func recordKeys(dir string) (keys []string, err error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*-data.json"))
	if err != nil {
		return
	}
	if len(paths) == 0 {
		return nil, chk.Err("no data records found in %q", dir)
	}
	for _, p := range paths {
		keys = append(keys, strings.TrimSuffix(filepath.Base(p), "-data.json"))
	}
	return
}
