// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements closed-form solutions of elementary trusses for the
// verification of the numerical results
package ana

// AxialBar computes the response of a single prismatic bar fixed at one end
// and pulled by an axial force P at the other
//
//            L
//    |----------------
//    |################----> P
//    |----------------
//
//   δ = P·L/(E·A)   N = P   σ = P/A
type AxialBar struct {
	E float64 // elastic modulus
	A float64 // cross-sectional area
	L float64 // bar length
	P float64 // applied axial force; positive pulls (tension)
}

// Elongation returns the axial displacement of the free end
func (o AxialBar) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Force returns the axial force in the bar; equal to the applied load
func (o AxialBar) Force() float64 {
	return o.P
}

// Stress returns the axial stress in the bar
func (o AxialBar) Stress() float64 {
	return o.P / o.A
}
