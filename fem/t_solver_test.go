// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"path/filepath"
	"testing"

	"github.com/mdaipayan/Truss-app/ana"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// newOneBar returns a single horizontal bar, pinned at the left end with a
// vertical roller at the right end, pulled axially
func newOneBar(P float64) *inp.Model {
	mdl := &inp.Model{
		Desc: "single axial bar",
		Nodes: []inp.Node{
			{X: 0, Y: 0},
			{X: 2, Y: 0},
		},
		Members: []inp.Member{
			{I: 0, J: 1, A: 0.001, E: 2e11},
		},
		Supports: []inp.Support{
			{Node: 0, Kind: inp.KindPin},
			{Node: 1, Kind: inp.KindRollerY},
		},
		Loads: []inp.Load{
			{Node: 1, Fx: P, Fy: 0},
		},
	}
	mdl.Config.SetDefault()
	return mdl
}

func Test_assemb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemb01. global stiffness is symmetric and accumulated")

	mdl := newTriangle()
	dom, err := NewDomain(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(dom.Ny, 6)
	chk.Ints(tst, "FreeEqs", dom.FreeEqs, []int{2, 4, 5})
	chk.Ints(tst, "FixEqs", dom.FixEqs, []int{0, 1, 3})

	// symmetry of the unpartitioned K
	for i := 0; i < dom.Ny; i++ {
		for j := i + 1; j < dom.Ny; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d]=K[%d][%d]", i, j, j, i), 1e-8, dom.K.At(i, j), dom.K.At(j, i))
		}
	}

	// node 0 connects members 0 and 1: its diagonal block accumulates both
	sum := dom.Rods[0].K[0][0] + dom.Rods[1].K[0][0]
	chk.Float64(tst, "K[0][0] accumulation", 1e-8, dom.K.At(0, 0), sum)

	// partitioned load vector carries the apex load only
	chk.Array(tst, "Ff", 1e-17, dom.Ff, []float64{0, 0, -10})
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. single bar against closed form")

	P := 1000.0
	mdl := newOneBar(P)
	res, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	bar := ana.AxialBar{E: 2e11, A: 0.001, L: 2.0, P: P}
	io.Pforan("U = %v\n", res.U)
	chk.Float64(tst, "ux1", 1e-15, res.U[2], bar.Elongation())
	chk.Array(tst, "U (restrained zero)", 1e-17, []float64{res.U[0], res.U[1], res.U[3]}, []float64{0, 0, 0})

	chk.Float64(tst, "N", 1e-9, res.N[0], bar.Force())
	chk.Float64(tst, "sig", 1e-6, res.Sig[0], bar.Stress())
	if res.Nature[0] != Tension {
		tst.Errorf("bar must be in tension; got %v", res.Nature[0])
		return
	}

	// reaction balances the applied load
	chk.Float64(tst, "Rx0", 1e-9, res.R[0], -P)
	sx, sy := res.SumForces()
	chk.Float64(tst, "sum Fx", 1e-9, sx, 0)
	chk.Float64(tst, "sum Fy", 1e-9, sy, 0)

	// no warnings, well conditioned
	chk.IntAssert(len(res.Warnings), 0)
	if res.Grade != StabOK {
		tst.Errorf("grade must be ok; got %v", res.Grade)
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. triangular truss end-to-end")

	mdl := newTriangle()
	res, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	tt := ana.TriangleTruss{Span: 4.0, Rise: 3.0, P: 10.0}
	io.Pforan("N = %v\n", res.N)
	io.Pforan("R = %v\n", res.R)

	// reactions: vertical halves, no horizontal thrust
	chk.Float64(tst, "Ry0", 1e-9, res.R[1], tt.ReactionY())
	chk.Float64(tst, "Ry1", 1e-9, res.R[3], tt.ReactionY())
	chk.Float64(tst, "Rx0", 1e-9, res.R[0], 0)

	// member forces: inclined members in compression, chord in tension
	chk.Float64(tst, "N chord", 1e-9, res.N[0], tt.ChordForce())
	chk.Float64(tst, "N left", 1e-9, res.N[1], tt.InclinedForce())
	chk.Float64(tst, "N right", 1e-9, res.N[2], tt.InclinedForce())
	if res.Nature[0] != Tension || res.Nature[1] != Compression || res.Nature[2] != Compression {
		tst.Errorf("natures are wrong: %v", res.Nature)
		return
	}

	// global equilibrium
	sx, sy := res.SumForces()
	chk.Float64(tst, "sum Fx", 1e-9, sx, 0)
	chk.Float64(tst, "sum Fy", 1e-9, sy, 0)

	// stresses
	for i := range res.N {
		chk.Float64(tst, io.Sf("sig[%d]", i), 1e-9, res.Sig[i], res.N[i]/mdl.Members[i].A)
	}
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. mechanism detection, never garbage")

	// one bar held by a single pin: free rotation about the pin
	mdl := newOneBar(0)
	mdl.Supports = mdl.Supports[:1]
	mdl.Loads = []inp.Load{{Node: 1, Fx: 0, Fy: -500}}

	res, err := Solve(mdl)
	if err == nil {
		tst.Errorf("mechanism must not solve; got U = %v", res.U)
		return
	}
	uerr, ok := err.(*UnstableError)
	if !ok {
		tst.Errorf("error must be an *UnstableError; got %T: %v", err, err)
		return
	}
	io.Pforan("err = %v\n", uerr)
	chk.Ints(tst, "implicated nodes", uerr.Nodes, []int{1})

	// same mechanism, read from file
	mdl, err = inp.ReadModel(filepath.Join("..", "inp", "data", "mechanism.json"))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, err = Solve(mdl); err == nil {
		tst.Errorf("mechanism model file must not solve")
	}
}

func Test_solve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve04. idempotence and snapshot independence")

	mdl := newTriangle()
	res1, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res2, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "U", 1e-17, res1.U, res2.U)
	chk.Array(tst, "R", 1e-17, res1.R, res2.R)
	chk.Array(tst, "N", 1e-17, res1.N, res2.N)

	// the analysis works on a snapshot: editing the model afterwards does
	// not alter previously computed results
	a := NewAnalysis(mdl, nil)
	mdl.Loads[0].Fy = -999
	if err := a.Run(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "U (snapshot)", 1e-17, a.Res.U, res1.U)
}

func Test_solve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve05. loads applied directly at restrained DOFs")

	// vertical push at the roller: absorbed by the reaction, free equations
	// unchanged
	mdl := newOneBar(1000)
	mdl.Loads = append(mdl.Loads, inp.Load{Node: 1, Fx: 0, Fy: -300})
	res, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	bar := ana.AxialBar{E: 2e11, A: 0.001, L: 2.0, P: 1000}
	chk.Float64(tst, "ux1", 1e-15, res.U[2], bar.Elongation())
	chk.Float64(tst, "Ry1", 1e-9, res.R[3], 300)
	sx, sy := res.SumForces()
	chk.Float64(tst, "sum Fx", 1e-9, sx, 0)
	chk.Float64(tst, "sum Fy", 1e-9, sy, 0)
}

func Test_solve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve06. near-singular grading and per-field defaults")

	// a threshold below any finite condition number forces the warning
	// grade: results are still returned, flagged suspect
	mdl := newTriangle()
	mdl.Config.CondWarn = 1.0
	res, err := Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("grade = %v, cond = %v\n", res.Grade, res.Cond)
	if res.Grade != StabWarning {
		tst.Errorf("grade must be warning; got %v", res.Grade)
		return
	}
	tt := ana.TriangleTruss{Span: 4.0, Rise: 3.0, P: 10.0}
	chk.Float64(tst, "Ry0", 1e-9, res.R[1], tt.ReactionY())

	// zero settings are defaulted one by one: a caller-set tolerance
	// survives when only the thresholds were left unset
	mdl = newTriangle()
	mdl.Config = inp.Config{Tol: 1e-6}
	a := NewAnalysis(mdl, nil)
	chk.Float64(tst, "tol", 1e-17, a.Cfg.Tol, 1e-6)
	chk.Float64(tst, "condwarn", 1e-17, a.Cfg.CondWarn, 1e8)
	chk.Float64(tst, "condmax", 1e-17, a.Cfg.CondMax, 1e12)
	if err := a.Run(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if a.Res.Grade != StabOK {
		tst.Errorf("grade must be ok; got %v", a.Res.Grade)
	}
}

func Test_solve07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve07. overflow from extreme stiffness")

	// EA/L overflows float64: the pipeline must report the overflow, not
	// hand back infinite displacements
	mdl := newOneBar(1000)
	mdl.Members[0].E = 1e308
	mdl.Members[0].A = 1e100
	_, err := Solve(mdl)
	if err == nil {
		tst.Errorf("overflowing stiffness must not solve")
		return
	}
	oerr, ok := err.(*OverflowError)
	if !ok {
		tst.Errorf("error must be an *OverflowError; got %T: %v", err, err)
		return
	}
	io.Pforan("err = %v\n", oerr)
	chk.String(tst, oerr.Stage, "assembly")
}
