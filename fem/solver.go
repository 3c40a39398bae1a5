// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mdaipayan/Truss-app/inp"

	"gonum.org/v1/gonum/mat"
)

// Analysis implements the solve pipeline: validation, element formulation,
// assembly, stability check, partitioned solve and force recovery. The
// pipeline is strictly sequential and owns every buffer it allocates, hence
// concurrent analyses over different models are independent.
type Analysis struct {
	Cfg *inp.Config // solver settings
	Dom *Domain     // set by Run; diagnostic exports
	Res *Results    // set by Run on success
}

// NewAnalysis returns an analysis operating on a deep copy of mdl. A nil cfg
// selects the settings carried by the model itself.
func NewAnalysis(mdl *inp.Model, cfg *inp.Config) *Analysis {
	snapshot := mdl.Clone()
	snapshot.Config.FillZero()
	if cfg == nil {
		cfg = &snapshot.Config
	}
	return &Analysis{Cfg: cfg, Dom: &Domain{Mdl: snapshot}}
}

// Run executes the pipeline. On failure the returned error is one of
// *ValidationError, *UnstableError or *OverflowError and Res stays nil.
func (o *Analysis) Run() (err error) {

	// validation: the complete defect list, eagerly. Degenerate geometry and
	// bad materials are rejected here so the solver never divides by zero.
	mdl := o.Dom.Mdl
	defects := CheckModel(mdl, o.Cfg.Tol)
	if fatal := FatalDefects(defects); len(fatal) > 0 {
		return &ValidationError{Defects: fatal}
	}

	// formulation, assembly and partitioning
	o.Dom, err = NewDomain(mdl)
	if err != nil {
		return
	}
	dom := o.Dom
	if !allFinite(dom.K.RawMatrix().Data) {
		return &OverflowError{Stage: "assembly"}
	}

	// solve for the unknown displacements. U is zero at restrained DOFs:
	// supports are non-yielding.
	U := make([]float64, dom.Ny)
	cond := 1.0
	grade := StabOK
	nf := len(dom.FreeEqs)
	if nf > 0 {

		// stability gate before any attempt to solve
		var chol *mat.Cholesky
		grade, cond, chol = CheckStability(dom.Kff, o.Cfg)
		if grade == StabFatal {
			return &UnstableError{Cond: cond, Nodes: implicatedNodes(dom.Kff, dom.FreeEqs, o.Cfg.Tol)}
		}

		uf := mat.NewVecDense(nf, nil)
		err = chol.SolveVecTo(uf, mat.NewVecDense(nf, dom.Ff))
		if err != nil {
			return &UnstableError{Cond: cond, Nodes: implicatedNodes(dom.Kff, dom.FreeEqs, o.Cfg.Tol)}
		}
		if !allFinite(uf.RawVector().Data) {
			return &OverflowError{Stage: "solve"}
		}
		for a, I := range dom.FreeEqs {
			U[I] = uf.AtVec(a)
		}
	}

	// reactions: R = K·U − F evaluated at the restrained equations. With
	// U_s = 0 this equals K_sf·U_f + K_ss·U_s − F_s.
	var ku mat.VecDense
	ku.MulVec(dom.K, mat.NewVecDense(dom.Ny, U))
	R := make([]float64, dom.Ny)
	for _, I := range dom.FixEqs {
		R[I] = ku.AtVec(I) - dom.F[I]
	}

	// member axial forces and stresses
	N, Sig, nature := extractForces(dom.Rods, U, o.Cfg.Tol)

	// results
	F := make([]float64, dom.Ny)
	copy(F, dom.F)
	o.Res = &Results{
		U:        U,
		R:        R,
		F:        F,
		N:        N,
		Sig:      Sig,
		Nature:   nature,
		Cond:     cond,
		Grade:    grade,
		Warnings: Warnings(defects),
	}
	return nil
}

// Solve runs the full pipeline on a model with its own settings. Referentially
// transparent: the same model yields the same results.
func Solve(mdl *inp.Model) (*Results, error) {
	a := NewAnalysis(mdl, nil)
	if err := a.Run(); err != nil {
		return nil, err
	}
	return a.Res, nil
}
