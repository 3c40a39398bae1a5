// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
)

func Test_diagram01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram01. solved truss figure")

	mdl, err := inp.ReadModel(filepath.Join("..", "inp", "data", "triangle.json"))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res, err := fem.Solve(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	fn := filepath.Join(tst.TempDir(), "triangle.png")
	if err := Draw(mdl, res, 1000, fn); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	st, err := os.Stat(fn)
	if err != nil || st.Size() == 0 {
		tst.Errorf("figure file was not written")
	}
}

func Test_diagram02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram02. undeformed geometry only")

	mdl, err := inp.ReadModel(filepath.Join("..", "inp", "data", "onebar.json"))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	fn := filepath.Join(tst.TempDir(), "onebar.svg")
	if err := Draw(mdl, nil, 0, fn); err != nil {
		tst.Errorf("test failed:\n%v", err)
	}
}
