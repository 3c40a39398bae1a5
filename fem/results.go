// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Nature classifies a member axial force for display purposes. It is a pure
// function of the sign of N; |N| within tolerance of zero is a zero-force
// member, not ambiguous.
type Nature int

const (
	ZeroForce   Nature = iota // |N| ≤ tolerance
	Tension                   // N > 0; the member elongates
	Compression               // N < 0; the member shortens
)

// String returns the display label of this nature
func (o Nature) String() string {
	switch o {
	case ZeroForce:
		return "zero-force"
	case Tension:
		return "tension"
	case Compression:
		return "compression"
	}
	chk.Panic("unknown force nature %d", o)
	return ""
}

// ClassifyForce returns the nature of an axial force value
func ClassifyForce(n, tol float64) Nature {
	switch {
	case math.Abs(n) <= tol:
		return ZeroForce
	case n > 0:
		return Tension
	}
	return Compression
}

// Results holds the outcome of one analysis. Computed once per Run from an
// immutable model snapshot and never mutated afterward; a model change
// requires a full re-solve.
type Results struct {

	// nodal values, node-major DOF ordering
	U []float64 // [2n] displacements; zero at restrained DOFs
	R []float64 // [2n] support reactions; zero at free DOFs
	F []float64 // [2n] applied loads (copy, for equilibrium reporting)

	// member values, same order as Model.Members
	N      []float64 // axial forces; positive = tension
	Sig    []float64 // axial stresses == N/A
	Nature []Nature  // classification of N

	// diagnostics
	Cond     float64   // condition number estimate of Kff
	Grade    Stability // stability grade of the solve
	Warnings []Defect  // warning-severity defects from validation
}

// SumForces returns the sum of all reactions plus all applied loads. Both
// components vanish for a solved model in static equilibrium.
func (o *Results) SumForces() (sx, sy float64) {
	for i := 0; i < len(o.U); i += 2 {
		sx += o.R[i] + o.F[i]
		sy += o.R[i+1] + o.F[i+1]
	}
	return
}
