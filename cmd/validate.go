// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <model.json>",
	Short: "Check a truss model file for structural defects",
	Long: `Run the validator only: zero-length members, non-positive section or
material values, dangling node references, coincident nodes and missing
restraints. All defects are listed at once.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	mdl, err := inp.ReadModel(args[0])
	if err != nil {
		return err
	}
	defects := fem.CheckModel(mdl, mdl.Config.Tol)
	if len(defects) == 0 {
		io.Pf("model is valid: %d nodes, %d members, %d supports, %d loads\n",
			len(mdl.Nodes), len(mdl.Members), len(mdl.Supports), len(mdl.Loads))
		return nil
	}
	for _, d := range fem.Warnings(defects) {
		io.Pfyel("warning: %v\n", d)
	}
	fatal := fem.FatalDefects(defects)
	if len(fatal) == 0 {
		return nil
	}
	for _, d := range fatal {
		io.Pfred("defect: %v\n", d)
	}
	return chk.Err("model has %d fatal defect(s)", len(fatal))
}
