// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// UnstableError reports a singular or ill-conditioned free-free stiffness
// matrix; i.e. a mechanism or an effectively under-constrained structure.
// The solve is aborted; garbage displacements are never returned.
type UnstableError struct {
	Cond  float64 // condition number estimate; +Inf when factorization failed
	Nodes []int   // implicated node ids, when determinable
}

// Error returns a message with enough context to guide correction
func (o *UnstableError) Error() string {
	msg := "unstable structure: stiffness matrix is singular or nearly singular"
	if !math.IsInf(o.Cond, 1) {
		msg += io.Sf(" (condition number ≈ %.3e)", o.Cond)
	}
	if len(o.Nodes) > 0 {
		msg += io.Sf("; check restraints and members at nodes %v", o.Nodes)
	}
	return msg
}

// OverflowError reports non-finite numbers produced by extreme stiffness
// ratios during assembly or solution
type OverflowError struct {
	Stage string // "assembly" or "solve"
}

// Error returns the overflow message
func (o *OverflowError) Error() string {
	return io.Sf("numeric overflow: non-finite values during %s; check stiffness ratios and units", o.Stage)
}

// allFinite tells whether a slice contains finite numbers only
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
