// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements the axial rod element of 2D pin-jointed trusses
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Rod represents a structural rod element (for axial loads only) with 2 nodes
// and a constant stiffness matrix; i.e. no numerical integration is needed.
// The global 4x4 stiffness is K = (E*A/L) * outer(v, v) with v = [c, s, -c, -s]
// and (c, s) the direction cosines from node i to node j.
type Rod struct {

	// basic data
	Id int         // member id
	X  [][]float64 // matrix of nodal coordinates [ndim][nnode]

	// parameters and properties
	E float64 // elastic modulus
	A float64 // cross-sectional area
	L float64 // length of rod
	C float64 // direction cosine: Δx/L
	S float64 // direction cosine: Δy/L

	// vectors and matrices
	T [][]float64 // [2][4] transformation matrix: global displacements => local axial displacements
	K [][]float64 // [4][4] element K matrix in global coordinates

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	ua []float64 // [2] local axial displacements
}

// NewRod formulates a rod element from its end coordinates and properties.
// Degenerate members never reach this point when the model is validated
// first; the zero-length guard here only protects the division.
func NewRod(id int, xi, yi, xj, yj, E, A float64) (*Rod, error) {

	// basic data
	var o Rod
	o.Id = id
	o.X = [][]float64{{xi, xj}, {yi, yj}}
	o.E = E
	o.A = A
	o.ua = make([]float64, 2)

	// geometry
	dx := xj - xi
	dy := yj - yi
	o.L = math.Sqrt(dx*dx + dy*dy)
	if o.L == 0 {
		return nil, chk.Err("rod %d has zero length", id)
	}
	o.C = dx / o.L
	o.S = dy / o.L

	// global-to-local transformation matrix
	c := o.C
	s := o.S
	o.T = [][]float64{
		{c, s, 0, 0},
		{0, 0, c, s},
	}

	// K matrix: α * outer(v, v)
	α := o.E * o.A / o.L
	v := []float64{c, s, -c, -s}
	o.K = utl.Alloc(4, 4)
	for p := 0; p < 4; p++ {
		for q := 0; q < 4; q++ {
			o.K[p][q] = α * v[p] * v[q]
		}
	}
	return &o, nil
}

// SetEqs sets the element equations; i.e. the global DOF numbers of
// [ux_i, uy_i, ux_j, uy_j]
func (o *Rod) SetEqs(eqs []int) {
	o.Umap = make([]int, 4)
	copy(o.Umap, eqs)
}

// AddToK adds the element K matrix to the global stiffness matrix Kb.
// Contributions sum; members sharing a node accumulate.
func (o *Rod) AddToK(Kb *mat.Dense) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.K[i][j])
		}
	}
}

// CalcN computes the axial force for given global nodal displacements.
// Sign convention: N > 0 means tension (the member elongates).
func (o *Rod) CalcN(U []float64) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j, J := range o.Umap {
			o.ua[i] += o.T[i][j] * U[J]
		}
	}
	δ := o.ua[1] - o.ua[0] // axial elongation
	return o.E * o.A / o.L * δ
}

// CalcSig computes the axial stress for given global nodal displacements
func (o *Rod) CalcSig(U []float64) float64 {
	return o.CalcN(U) / o.A
}
