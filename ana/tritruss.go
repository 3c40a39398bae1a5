// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// TriangleTruss computes the member forces and reactions of a symmetric,
// statically determinate triangular truss with a downward load P at the apex
//
//                P
//                |
//                V
//                o apex
//               / \
//              /   \  rise
//             /     \
//    pin  ---o-------o---  roller (vertical reaction only)
//                span
//
// Reactions: Ry = P/2 at each base node, Rx = 0.
// Inclined members carry compression; the bottom chord carries tension.
type TriangleTruss struct {
	Span float64 // distance between the base nodes
	Rise float64 // height of the apex
	P    float64 // magnitude of the downward apex load
}

// InclinedLength returns the length of each inclined member
func (o TriangleTruss) InclinedLength() float64 {
	half := o.Span / 2.0
	return math.Sqrt(half*half + o.Rise*o.Rise)
}

// ReactionY returns the vertical reaction at each base node
func (o TriangleTruss) ReactionY() float64 {
	return o.P / 2.0
}

// InclinedForce returns the axial force in each inclined member;
// negative by the tension-positive convention
func (o TriangleTruss) InclinedForce() float64 {
	return -o.ReactionY() * o.InclinedLength() / o.Rise
}

// ChordForce returns the axial force in the bottom chord; positive (tension)
func (o TriangleTruss) ChordForce() float64 {
	return o.ReactionY() * (o.Span / 2.0) / o.Rise
}
