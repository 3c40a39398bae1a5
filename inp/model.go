// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a truss model JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// SupportKind defines which translational DOFs of a node are restrained.
// A roller is named after the direction it restrains; e.g. KindRollerY
// provides a vertical reaction only.
type SupportKind int

const (
	KindFree    SupportKind = iota // no restraint
	KindRollerX                    // restrains X translation only
	KindRollerY                    // restrains Y translation only
	KindPin                        // restrains both translations
)

// RestrainsX tells whether this kind restrains horizontal translation
func (o SupportKind) RestrainsX() bool {
	switch o {
	case KindFree:
		return false
	case KindRollerX:
		return true
	case KindRollerY:
		return false
	case KindPin:
		return true
	}
	chk.Panic("unknown support kind %d", o)
	return false
}

// RestrainsY tells whether this kind restrains vertical translation
func (o SupportKind) RestrainsY() bool {
	switch o {
	case KindFree:
		return false
	case KindRollerX:
		return false
	case KindRollerY:
		return true
	case KindPin:
		return true
	}
	chk.Panic("unknown support kind %d", o)
	return false
}

// String returns the JSON name of this kind
func (o SupportKind) String() string {
	switch o {
	case KindFree:
		return "free"
	case KindRollerX:
		return "roller-x"
	case KindRollerY:
		return "roller-y"
	case KindPin:
		return "pin"
	}
	chk.Panic("unknown support kind %d", o)
	return ""
}

// MarshalJSON encodes the kind as its string name
func (o SupportKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes the kind from its string name
func (o *SupportKind) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	switch name {
	case "free":
		*o = KindFree
	case "roller-x":
		*o = KindRollerX
	case "roller-y":
		*o = KindRollerY
	case "pin":
		*o = KindPin
	default:
		return chk.Err("unknown support kind %q", name)
	}
	return nil
}

// Node holds the position of a truss joint. The node id is its index in
// Model.Nodes and the corresponding DOF numbers are (2*id, 2*id+1).
type Node struct {
	X float64 `json:"x"` // horizontal coordinate
	Y float64 `json:"y"` // vertical coordinate
}

// Member holds a pin-ended two-force axial member connecting nodes I and J
type Member struct {
	I int     `json:"i"` // first node id
	J int     `json:"j"` // second node id
	A float64 `json:"a"` // cross-sectional area
	E float64 `json:"e"` // elastic modulus
}

// Support attaches a restraint kind to a node
type Support struct {
	Node int         `json:"node"` // node id
	Kind SupportKind `json:"kind"` // restraint kind
}

// Load holds a point force applied at a node. Multiple loads on the same
// node are summed.
type Load struct {
	Node int     `json:"node"` // node id
	Fx   float64 `json:"fx"`   // horizontal component
	Fy   float64 `json:"fy"`   // vertical component
}

// Config holds solver settings
type Config struct {
	Tol      float64 `json:"tol"`      // geometric and force tolerance (ε)
	CondWarn float64 `json:"condwarn"` // condition number above which results are flagged suspect
	CondMax  float64 `json:"condmax"`  // condition number above which the solve is aborted (τ)
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.Tol = 1e-9
	o.CondWarn = 1e8
	o.CondMax = 1e12
}

// FillZero sets default values for the unset fields only, keeping the ones
// the caller has chosen. For models built in code rather than read from file.
func (o *Config) FillZero() {
	if o.Tol == 0 {
		o.Tol = 1e-9
	}
	if o.CondWarn == 0 {
		o.CondWarn = 1e8
	}
	if o.CondMax == 0 {
		o.CondMax = 1e12
	}
}

// Model holds all data defining one truss structure. Lengths and forces
// must be given in consistent units.
type Model struct {
	Desc     string    `json:"desc"`     // description
	Config   Config    `json:"config"`   // solver settings
	Nodes    []Node    `json:"nodes"`    // joints
	Members  []Member  `json:"members"`  // axial members
	Supports []Support `json:"supports"` // restraints
	Loads    []Load    `json:"loads"`    // nodal point loads
}

// Ndof returns the total number of degrees of freedom == 2 * number of nodes
func (o *Model) Ndof() int {
	return 2 * len(o.Nodes)
}

// RestrainedDofs returns a flag per DOF telling whether a support restrains
// it. DOFs are ordered node-major: (ux0, uy0, ux1, uy1, ...). Supports with
// out-of-range node ids are skipped; the validator reports those.
func (o *Model) RestrainedDofs() []bool {
	res := make([]bool, o.Ndof())
	for _, sup := range o.Supports {
		if sup.Node < 0 || sup.Node >= len(o.Nodes) {
			continue
		}
		if sup.Kind.RestrainsX() {
			res[2*sup.Node] = true
		}
		if sup.Kind.RestrainsY() {
			res[2*sup.Node+1] = true
		}
	}
	return res
}

// LoadVector returns the applied nodal force vector, node-major, with
// multiple loads on one node summed. Loads with out-of-range node ids are
// skipped; the validator reports those.
func (o *Model) LoadVector() []float64 {
	f := make([]float64, o.Ndof())
	for _, lod := range o.Loads {
		if lod.Node < 0 || lod.Node >= len(o.Nodes) {
			continue
		}
		f[2*lod.Node] += lod.Fx
		f[2*lod.Node+1] += lod.Fy
	}
	return f
}

// Clone returns a deep copy so a solve can work on an immutable snapshot
func (o *Model) Clone() *Model {
	c := &Model{
		Desc:     o.Desc,
		Config:   o.Config,
		Nodes:    make([]Node, len(o.Nodes)),
		Members:  make([]Member, len(o.Members)),
		Supports: make([]Support, len(o.Supports)),
		Loads:    make([]Load, len(o.Loads)),
	}
	copy(c.Nodes, o.Nodes)
	copy(c.Members, o.Members)
	copy(c.Supports, o.Supports)
	copy(c.Loads, o.Loads)
	return c
}
