// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_rod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod01. stiffness matrix against closed form")

	// inclined rod: 3-4-5 triangle => c = 0.8, s = 0.6
	E := 200.0
	A := 5.0
	rod, err := NewRod(0, 0, 0, 4, 3, E, A)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, rod.L, 5.0)
	chk.Float64(tst, "c", 1e-15, rod.C, 0.8)
	chk.Float64(tst, "s", 1e-15, rod.S, 0.6)

	// explicit closed form with α = E*A/L
	α := E * A / rod.L
	c := rod.C
	s := rod.S
	Kref := [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}
	io.Pforan("K = %v\n", rod.K)
	chk.Deep2(tst, "K", 1e-13, rod.K, Kref)

	// symmetry
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d]=K[%d][%d]", i, j, j, i), 1e-17, rod.K[i][j], rod.K[j][i])
		}
	}

	// transformation matrix
	chk.Deep2(tst, "T", 1e-15, rod.T, [][]float64{
		{c, s, 0, 0},
		{0, 0, c, s},
	})
}

func Test_rod02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod02. axial force recovery and sign convention")

	E := 1000.0
	A := 2.0
	rod, err := NewRod(0, 0, 0, 2, 0, E, A)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	rod.SetEqs([]int{0, 1, 2, 3})
	chk.Ints(tst, "Umap", rod.Umap, utl.IntRange(4))

	// elongation of 0.001 => tension N = E*A/L * δ
	U := []float64{0, 0, 0.001, 0}
	chk.Float64(tst, "N (tension)", 1e-13, rod.CalcN(U), E*A/rod.L*0.001)
	chk.Float64(tst, "sig", 1e-13, rod.CalcSig(U), E/rod.L*0.001)

	// shortening => compression, negative
	U = []float64{0, 0, -0.001, 0}
	chk.Float64(tst, "N (compression)", 1e-13, rod.CalcN(U), -E*A/rod.L*0.001)

	// rigid-body translation => zero force
	U = []float64{0.5, -0.3, 0.5, -0.3}
	chk.Float64(tst, "N (rigid motion)", 1e-12, rod.CalcN(U), 0)
}

func Test_rod03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod03. vertical rod and zero-length guard")

	rod, err := NewRod(7, 1, 1, 1, 4, 100, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, rod.L, 3.0)
	chk.Float64(tst, "c", 1e-15, rod.C, 0.0)
	chk.Float64(tst, "s", 1e-15, rod.S, 1.0)

	// stretching along the axis only
	rod.SetEqs([]int{0, 1, 2, 3})
	U := []float64{0, 0, 0.123, 0.003}
	chk.Float64(tst, "N (vertical rod)", 1e-12, rod.CalcN(U), 100.0*1.0/3.0*0.003)

	// coincident nodes must be rejected
	_, err = NewRod(8, 2, 2, 2, 2, 100, 1)
	if err == nil {
		tst.Errorf("zero-length rod must fail")
		return
	}

	// 45 degrees: both cosines 1/sqrt(2)
	rod, err = NewRod(9, 0, 0, 1, 1, 100, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "c (45°)", 1e-15, rod.C, 1.0/math.Sqrt2)
	chk.Float64(tst, "s (45°)", 1e-15, rod.S, 1.0/math.Sqrt2)
}
