// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/mdaipayan/Truss-app/diagram"
	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"
	"github.com/mdaipayan/Truss-app/out"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	solveTol      float64 // geometric and force tolerance
	solveCondWarn float64 // condition number warning threshold
	solveCondMax  float64 // condition number abort threshold
	solveDiagram  string  // figure output path
	solveScale    float64 // deformed shape exaggeration
	solveResults  string  // JSON results output path
)

var solveCmd = &cobra.Command{
	Use:   "solve <model.json>",
	Short: "Analyze a truss model file and print the report",
	Long: `Run the full analysis pipeline on a JSON model file: validation,
assembly, stability check, solve and member force recovery.

Tolerances default to the values carried by the model file (or 1e-9 and
1e12); command line flags override them.

Examples:
  # solve and print the report
  truss solve bridge.json

  # export a figure with the deformed shape exaggerated 500 times
  truss solve bridge.json --diagram bridge.png --scale 500

  # export machine-readable results
  truss solve bridge.json --results bridge-results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Float64Var(&solveTol, "tol", 0, "geometric/force tolerance ε (default from model file)")
	solveCmd.Flags().Float64Var(&solveCondWarn, "condwarn", 0, "condition number warning threshold (default from model file)")
	solveCmd.Flags().Float64Var(&solveCondMax, "condmax", 0, "condition number abort threshold τ (default from model file)")
	solveCmd.Flags().StringVar(&solveDiagram, "diagram", "", "write a figure to this file (png, svg or pdf)")
	solveCmd.Flags().Float64Var(&solveScale, "scale", 0, "deformed shape exaggeration factor for the figure")
	solveCmd.Flags().StringVar(&solveResults, "results", "", "write JSON results to this file")
}

func runSolve(cmd *cobra.Command, args []string) error {

	// read model; flags override the file's solver settings
	mdl, err := inp.ReadModel(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tol") {
		mdl.Config.Tol = solveTol
	}
	if cmd.Flags().Changed("condwarn") {
		mdl.Config.CondWarn = solveCondWarn
	}
	if cmd.Flags().Changed("condmax") {
		mdl.Config.CondMax = solveCondMax
	}

	// run pipeline
	res, err := fem.Solve(mdl)
	if err != nil {
		return err
	}

	// report
	out.Report(mdl, res)
	if res.Grade == fem.StabWarning {
		io.Pfred("\nnote: stiffness matrix is nearly singular; results are numerically suspect\n")
	}

	// optional exports
	if solveResults != "" {
		if err := out.WriteResults(solveResults, mdl, res); err != nil {
			return err
		}
		io.Pf("\nresults written to %s\n", solveResults)
	}
	if solveDiagram != "" {
		if err := diagram.Draw(mdl, res, solveScale, solveDiagram); err != nil {
			return err
		}
		io.Pf("\nfigure written to %s\n", solveDiagram)
	}
	return nil
}
