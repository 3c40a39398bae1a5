// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version of the solver
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of truss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("truss v%s\n", Version)
		fmt.Println("Linear static analysis of 2D pin-jointed trusses (Direct Stiffness Method)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
