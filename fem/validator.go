// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the Direct Stiffness Method pipeline for 2D trusses:
// model validation, global assembly, boundary partitioning, stability
// checking, the linear solve and member force recovery
package fem

import (
	"math"

	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DefectKind enumerates the structural defects the validator detects
type DefectKind int

const (
	ZeroLengthMember  DefectKind = iota // member ends coincide within tolerance
	InvalidMaterial                     // A <= 0 or E <= 0
	DanglingReference                   // member, support or load references a nonexistent node
	DuplicateNode                       // two nodes share the same position within tolerance
	UnderConstrained                    // fewer than 3 independent restraints or all restraints parallel
)

// String returns the name of this kind
func (o DefectKind) String() string {
	switch o {
	case ZeroLengthMember:
		return "zero-length member"
	case InvalidMaterial:
		return "invalid material"
	case DanglingReference:
		return "dangling reference"
	case DuplicateNode:
		return "duplicate node"
	case UnderConstrained:
		return "under-constrained structure"
	}
	chk.Panic("unknown defect kind %d", o)
	return ""
}

// Defect holds one structural defect found in a model
type Defect struct {
	Kind  DefectKind // what is wrong
	Id    int        // id of the defective item; -1 when not applicable
	Field string     // "A" or "E" for InvalidMaterial; "member", "support" or "load" for DanglingReference
	Fatal bool       // false for warning-severity defects
}

// String returns a human readable message
func (o Defect) String() string {
	switch o.Kind {
	case ZeroLengthMember:
		return io.Sf("member %d has (nearly) zero length", o.Id)
	case InvalidMaterial:
		return io.Sf("member %d has non-positive %s", o.Id, o.Field)
	case DanglingReference:
		return io.Sf("%s %d references a nonexistent node", o.Field, o.Id)
	case DuplicateNode:
		return io.Sf("node %d coincides with an earlier node", o.Id)
	case UnderConstrained:
		return "supports provide fewer than 3 independent restraints; structure may be a mechanism"
	}
	return "unknown defect"
}

// ValidationError gathers the fatal defects of a model. The full list is
// reported at once; nothing is silently dropped or repaired.
type ValidationError struct {
	Defects []Defect
}

// Error returns all defect messages, one per line
func (o *ValidationError) Error() string {
	msg := "invalid model:"
	for _, d := range o.Defects {
		msg += "\n  " + d.String()
	}
	return msg
}

// CheckModel inspects a model and returns all structural defects found. All
// checks run independently; the caller sees every problem at once. An empty
// result means the model is valid. Pure inspection; the model is not touched.
func CheckModel(mdl *inp.Model, tol float64) (defects []Defect) {

	// members: references, geometry and materials
	nn := len(mdl.Nodes)
	for i, mbr := range mdl.Members {
		badref := mbr.I < 0 || mbr.I >= nn || mbr.J < 0 || mbr.J >= nn || mbr.I == mbr.J
		if badref {
			defects = append(defects, Defect{Kind: DanglingReference, Id: i, Field: "member", Fatal: true})
		} else {
			dx := mdl.Nodes[mbr.J].X - mdl.Nodes[mbr.I].X
			dy := mdl.Nodes[mbr.J].Y - mdl.Nodes[mbr.I].Y
			if math.Sqrt(dx*dx+dy*dy) < tol {
				defects = append(defects, Defect{Kind: ZeroLengthMember, Id: i, Fatal: true})
			}
		}
		if mbr.A <= 0 {
			defects = append(defects, Defect{Kind: InvalidMaterial, Id: i, Field: "A", Fatal: true})
		}
		if mbr.E <= 0 {
			defects = append(defects, Defect{Kind: InvalidMaterial, Id: i, Field: "E", Fatal: true})
		}
	}

	// supports and loads: references
	for i, sup := range mdl.Supports {
		if sup.Node < 0 || sup.Node >= nn {
			defects = append(defects, Defect{Kind: DanglingReference, Id: i, Field: "support", Fatal: true})
		}
	}
	for i, lod := range mdl.Loads {
		if lod.Node < 0 || lod.Node >= nn {
			defects = append(defects, Defect{Kind: DanglingReference, Id: i, Field: "load", Fatal: true})
		}
	}

	// coincident nodes
	for i := 0; i < nn; i++ {
		for j := 0; j < i; j++ {
			dx := mdl.Nodes[i].X - mdl.Nodes[j].X
			dy := mdl.Nodes[i].Y - mdl.Nodes[j].Y
			if math.Sqrt(dx*dx+dy*dy) < tol {
				defects = append(defects, Defect{Kind: DuplicateNode, Id: i, Fatal: true})
				break
			}
		}
	}

	// global restraint: at least 3 restrained DOFs, acting in both directions,
	// spread over at least two nodes. Warning only; the stability checker on
	// the partitioned matrix is the authoritative mechanism detector.
	nx, ny, ndofs := 0, 0, 0
	rnodes := make(map[int]bool)
	for _, sup := range mdl.Supports {
		if sup.Node < 0 || sup.Node >= nn {
			continue
		}
		if sup.Kind.RestrainsX() {
			nx++
			ndofs++
			rnodes[sup.Node] = true
		}
		if sup.Kind.RestrainsY() {
			ny++
			ndofs++
			rnodes[sup.Node] = true
		}
	}
	if ndofs < 3 || nx == 0 || ny == 0 || len(rnodes) < 2 {
		defects = append(defects, Defect{Kind: UnderConstrained, Id: -1})
	}
	return
}

// FatalDefects filters the fatal subset of defects
func FatalDefects(defects []Defect) (fatal []Defect) {
	for _, d := range defects {
		if d.Fatal {
			fatal = append(fatal, d)
		}
	}
	return
}

// Warnings filters the warning-severity subset of defects
func Warnings(defects []Defect) (warnings []Defect) {
	for _, d := range defects {
		if !d.Fatal {
			warnings = append(warnings, d)
		}
	}
	return
}
