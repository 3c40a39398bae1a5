// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"os"

	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
)

// nodeRes holds the exported values of one node
type nodeRes struct {
	Id int     `json:"id"`
	Ux float64 `json:"ux"`
	Uy float64 `json:"uy"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
}

// memberRes holds the exported values of one member
type memberRes struct {
	Id     int     `json:"id"`
	N      float64 `json:"n"`
	Sig    float64 `json:"sig"`
	Nature string  `json:"nature"`
}

// resultsFile is the JSON schema of an exported analysis
type resultsFile struct {
	Desc      string      `json:"desc"`
	Stability string      `json:"stability"`
	Cond      float64     `json:"cond"`
	Warnings  []string    `json:"warnings,omitempty"`
	Nodes     []nodeRes   `json:"nodes"`
	Members   []memberRes `json:"members"`
}

// WriteResults writes an analysis to a JSON file for external consumers
// (UI and report generators)
func WriteResults(fnamepath string, mdl *inp.Model, res *fem.Results) error {
	rf := resultsFile{
		Desc:      mdl.Desc,
		Stability: res.Grade.String(),
		Cond:      res.Cond,
	}
	for _, w := range res.Warnings {
		rf.Warnings = append(rf.Warnings, w.String())
	}
	for n := range mdl.Nodes {
		rf.Nodes = append(rf.Nodes, nodeRes{
			Id: n,
			Ux: res.U[2*n],
			Uy: res.U[2*n+1],
			Rx: res.R[2*n],
			Ry: res.R[2*n+1],
		})
	}
	for i := range mdl.Members {
		rf.Members = append(rf.Members, memberRes{
			Id:     i,
			N:      res.N[i],
			Sig:    res.Sig[i],
			Nature: res.Nature[i].String(),
		})
	}
	b, err := json.MarshalIndent(&rf, "", "  ")
	if err != nil {
		return chk.Err("WriteResults: cannot marshal results\n%v", err)
	}
	if err := os.WriteFile(fnamepath, append(b, '\n'), 0644); err != nil {
		return chk.Err("WriteResults: cannot write %q\n%v", fnamepath, err)
	}
	return nil
}
