// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Geco computes stationary, axially symmetric, self-gravitating
// configurations of collisionless matter, in general relativity and in
// the Newtonian limit.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geco",
	Short: "stationary self-gravitating configurations of Vlasov matter",
	Long: `Geco computes stationary, axially symmetric solutions of the
Einstein-Vlasov and Vlasov-Poisson systems with a damped
self-consistent-field iteration over the metric potentials.

Simulations are defined by .sim JSON files; see the examples directory.`,
	SilenceUsage: true,
}

var quiet bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress iteration messages")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if quiet {
			io.Verbose = false
		}
	}
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(momentsCmd)
	rootCmd.AddCommand(convergenceCmd)
}

func main() {

	// input files are read with panics on malformed content
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
