// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mdaipayan/Truss-app/ele"
	"github.com/mdaipayan/Truss-app/inp"

	"gonum.org/v1/gonum/mat"
)

// Domain holds the equation numbering, the element set and the assembled
// global system of one analysis. All matrices and vectors are read-only
// exports for diagnostic display; the solver never mutates them after
// NewDomain returns.
type Domain struct {

	// input
	Mdl *inp.Model // model snapshot owned by this domain

	// elements
	Rods []*ele.Rod // one rod per member, same order

	// equations. DOFs are node-major: eq(ux of node n) = 2n, eq(uy) = 2n+1
	Ny      int   // total number of DOFs == 2 * number of nodes
	FreeEqs []int // free equation numbers (unknown displacements)
	FixEqs  []int // restrained equation numbers (known zero displacements)

	// assembled system
	K *mat.Dense // [ny][ny] global stiffness matrix, unpartitioned
	F []float64  // [ny] applied load vector

	// partitioned system
	Kff *mat.SymDense // free-free stiffness partition
	Ff  []float64     // loads at free DOFs
}

// NewDomain numbers the equations, formulates all rod elements and
// assembles the global and partitioned systems. The model must have been
// validated already; degenerate members make this fail.
func NewDomain(mdl *inp.Model) (*Domain, error) {

	// basic data
	var o Domain
	o.Mdl = mdl
	o.Ny = mdl.Ndof()

	// elements with assembly maps
	o.Rods = make([]*ele.Rod, len(mdl.Members))
	for i, mbr := range mdl.Members {
		ni := mdl.Nodes[mbr.I]
		nj := mdl.Nodes[mbr.J]
		rod, err := ele.NewRod(i, ni.X, ni.Y, nj.X, nj.Y, mbr.E, mbr.A)
		if err != nil {
			return nil, err
		}
		rod.SetEqs([]int{2 * mbr.I, 2*mbr.I + 1, 2 * mbr.J, 2*mbr.J + 1})
		o.Rods[i] = rod
	}

	// global stiffness: scatter-add all element matrices. K may be singular
	// here; rigid-body freedom before partitioning is expected.
	o.K = mat.NewDense(o.Ny, o.Ny, nil)
	for _, rod := range o.Rods {
		rod.AddToK(o.K)
	}

	// load vector
	o.F = mdl.LoadVector()

	// free/restrained partition
	restrained := mdl.RestrainedDofs()
	for eq := 0; eq < o.Ny; eq++ {
		if restrained[eq] {
			o.FixEqs = append(o.FixEqs, eq)
		} else {
			o.FreeEqs = append(o.FreeEqs, eq)
		}
	}

	// free-free partition and load sub-vector
	nf := len(o.FreeEqs)
	o.Kff = mat.NewSymDense(nf, nil)
	o.Ff = make([]float64, nf)
	for a, I := range o.FreeEqs {
		o.Ff[a] = o.F[I]
		for b := a; b < nf; b++ {
			o.Kff.SetSym(a, b, o.K.At(I, o.FreeEqs[b]))
		}
	}
	return &o, nil
}

// NodeOfEq returns the node id owning a global equation number
func NodeOfEq(eq int) int {
	return eq / 2
}
