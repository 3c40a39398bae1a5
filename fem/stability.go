// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Stability grades the numerical conditioning of the free-free stiffness
// matrix prior to solving
type Stability int

const (
	StabOK      Stability = iota // well conditioned
	StabWarning                  // near-singular; results returned but numerically suspect
	StabFatal                    // singular beyond recoverable precision; solve aborted
)

// String returns the name of this grade
func (o Stability) String() string {
	switch o {
	case StabOK:
		return "ok"
	case StabWarning:
		return "warning"
	case StabFatal:
		return "fatal"
	}
	chk.Panic("unknown stability grade %d", o)
	return ""
}

// CheckStability factorizes Kff and grades its conditioning. The stiffness
// matrix of a stable truss is symmetric positive definite, so a failed
// Cholesky factorization means rigid-body or mechanism freedom. Advisory and
// gating only; Kff is not modified. On success the factorization is returned
// so the solver factors the matrix exactly once.
func CheckStability(Kff *mat.SymDense, cfg *inp.Config) (grade Stability, cond float64, chol *mat.Cholesky) {
	chol = new(mat.Cholesky)
	if ok := chol.Factorize(Kff); !ok {
		return StabFatal, math.Inf(1), nil
	}
	cond = chol.Cond()
	switch {
	case cond > cfg.CondMax:
		grade = StabFatal
	case cond > cfg.CondWarn:
		grade = StabWarning
	default:
		grade = StabOK
	}
	return
}

// implicatedNodes lists nodes whose free DOFs carry (nearly) no stiffness;
// e.g. a loaded joint not connected to any member. Helps correcting an
// unstable model; an empty list means the culprit is not determinable from
// the diagonal alone.
func implicatedNodes(Kff *mat.SymDense, freeEqs []int, tol float64) (nodes []int) {
	nf := len(freeEqs)
	maxdiag := 0.0
	for a := 0; a < nf; a++ {
		if Kff.At(a, a) > maxdiag {
			maxdiag = Kff.At(a, a)
		}
	}
	seen := make(map[int]bool)
	for a := 0; a < nf; a++ {
		if Kff.At(a, a) <= tol*maxdiag {
			n := NodeOfEq(freeEqs[a])
			if !seen[n] {
				seen[n] = true
				nodes = append(nodes, n)
			}
		}
	}
	return
}
