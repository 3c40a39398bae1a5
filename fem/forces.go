// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mdaipayan/Truss-app/ele"
)

// extractForces recovers the axial force, stress and nature of every rod
// from the global displacement vector
func extractForces(rods []*ele.Rod, U []float64, tol float64) (N, Sig []float64, nature []Nature) {
	N = make([]float64, len(rods))
	Sig = make([]float64, len(rods))
	nature = make([]Nature, len(rods))
	for i, rod := range rods {
		N[i] = rod.CalcN(U)
		Sig[i] = N[i] / rod.A
		nature[i] = ClassifyForce(N[i], tol)
	}
	return
}
