// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements post-processing of analysis results: plain-text
// reports, equilibrium summaries and a JSON export for external consumers
package out

import (
	"bytes"
	"math"

	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/io"
)

// Sreport returns the analysis report as a string
func Sreport(mdl *inp.Model, res *fem.Results) string {
	var b bytes.Buffer

	io.Ff(&b, "Truss Analysis Report — Direct Stiffness Method\n")
	io.Ff(&b, "===============================================\n")
	if mdl.Desc != "" {
		io.Ff(&b, "model: %s\n", mdl.Desc)
	}
	io.Ff(&b, "nodes: %d   members: %d   supports: %d   loads: %d\n",
		len(mdl.Nodes), len(mdl.Members), len(mdl.Supports), len(mdl.Loads))
	io.Ff(&b, "stability: %v (condition number ≈ %.3e)\n", res.Grade, res.Cond)
	for _, w := range res.Warnings {
		io.Ff(&b, "warning: %v\n", w)
	}

	io.Ff(&b, "\nMaterial & Section Properties\n")
	io.Ff(&b, "-----------------------------\n")
	io.Ff(&b, "%8s%14s%14s%14s\n", "member", "A", "E", "L")
	for i, mbr := range mdl.Members {
		dx := mdl.Nodes[mbr.J].X - mdl.Nodes[mbr.I].X
		dy := mdl.Nodes[mbr.J].Y - mdl.Nodes[mbr.I].Y
		io.Ff(&b, "%8d%14.4e%14.4e%14.6g\n", i, mbr.A, mbr.E, math.Hypot(dx, dy))
	}

	io.Ff(&b, "\nNodal Displacements\n")
	io.Ff(&b, "-------------------\n")
	io.Ff(&b, "%8s%16s%16s\n", "node", "ux", "uy")
	for n := range mdl.Nodes {
		io.Ff(&b, "%8d%16.6e%16.6e\n", n, res.U[2*n], res.U[2*n+1])
	}

	io.Ff(&b, "\nMember Forces\n")
	io.Ff(&b, "-------------\n")
	io.Ff(&b, "%8s%16s%16s%14s\n", "member", "N", "stress", "nature")
	for i := range mdl.Members {
		io.Ff(&b, "%8d%16.6e%16.6e%14s\n", i, res.N[i], res.Sig[i], res.Nature[i])
	}

	io.Ff(&b, "\nSupport Reactions\n")
	io.Ff(&b, "-----------------\n")
	io.Ff(&b, "%8s%16s%16s\n", "node", "Rx", "Ry")
	restrained := mdl.RestrainedDofs()
	for n := range mdl.Nodes {
		if !restrained[2*n] && !restrained[2*n+1] {
			continue
		}
		io.Ff(&b, "%8d%16.6e%16.6e\n", n, res.R[2*n], res.R[2*n+1])
	}

	sx, sy := res.SumForces()
	io.Ff(&b, "\nEquilibrium Check\n")
	io.Ff(&b, "-----------------\n")
	io.Ff(&b, "sum of reactions and loads: Fx = %.6e   Fy = %.6e\n", sx, sy)
	return b.String()
}

// Report prints the analysis report to standard output
func Report(mdl *inp.Model, res *fem.Results) {
	io.Pf("%s", Sreport(mdl, res))
}
