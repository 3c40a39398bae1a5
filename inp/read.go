// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// ReadModel reads a truss model from a JSON file. Solver settings missing
// from the file keep their default values.
func ReadModel(fnamepath string) (*Model, error) {

	// read file. os.ReadFile rather than gosl's, which panics on a missing
	// file; a broken path must come back as an error
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("ReadModel: cannot read model file %q", fnamepath)
	}

	// set default values
	var o Model
	o.Config.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("ReadModel: cannot unmarshal model file %q\n%v", fnamepath, err)
	}
	return &o, nil
}
