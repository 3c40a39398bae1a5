// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the command line interface of the truss solver
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "truss",
	Short: "2D Truss Analysis — Direct Stiffness Method",
	Long: `truss - Linear static analysis of 2D pin-jointed trusses

Given a JSON model file with nodes, members, supports and nodal loads,
the solver computes:
  - nodal displacements
  - support reactions
  - member axial forces (tension/compression) and stresses

The solver validates the model first and reports every structural defect
at once; unstable (mechanism) models are detected and rejected before the
linear solve, never returning garbage displacements.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  truss v%s — 2D Truss Analysis (Direct Stiffness Method)\n", Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    solve      analyze a model file and print the report")
		fmt.Println("    validate   check a model file for structural defects")
		fmt.Println("    version    print the version number")
		fmt.Println()
		fmt.Println("  Use 'truss --help' for details.")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
