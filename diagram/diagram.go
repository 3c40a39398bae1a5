// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram renders truss models and analysis results to image files
package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/mdaipayan/Truss-app/fem"
	"github.com/mdaipayan/Truss-app/inp"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	colTension     = color.RGBA{R: 65, G: 105, B: 225, A: 255}  // royal blue
	colCompression = color.RGBA{R: 220, G: 20, B: 60, A: 255}   // crimson
	colZeroForce   = color.RGBA{R: 169, G: 169, B: 169, A: 255} // dark gray
	colSupport     = color.RGBA{R: 34, G: 139, B: 34, A: 255}   // forest green
	colDeformed    = color.RGBA{R: 255, G: 140, B: 0, A: 255}   // dark orange
)

// Draw exports a truss figure to an image file (format per extension; png,
// svg or pdf). With res == nil only the undeformed geometry, supports and
// loads are drawn. With results, members are colored by force nature and
// labeled with the force value; scale > 0 additionally overlays the deformed
// shape exaggerated by that factor.
func Draw(mdl *inp.Model, res *fem.Results, scale float64, fnamepath string) error {

	p := plot.New()
	p.Title.Text = mdl.Desc
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	// members
	var labelXY plotter.XYs
	var labelTxt []string
	for i, mbr := range mdl.Members {
		ni := mdl.Nodes[mbr.I]
		nj := mdl.Nodes[mbr.J]
		line, err := plotter.NewLine(plotter.XYs{{X: ni.X, Y: ni.Y}, {X: nj.X, Y: nj.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		if res != nil {
			line.LineStyle.Width = vg.Points(3)
			switch res.Nature[i] {
			case fem.Tension:
				line.LineStyle.Color = colTension
			case fem.Compression:
				line.LineStyle.Color = colCompression
			case fem.ZeroForce:
				line.LineStyle.Color = colZeroForce
			}
			labelXY = append(labelXY, plotter.XY{X: (ni.X + nj.X) / 2, Y: (ni.Y + nj.Y) / 2})
			labelTxt = append(labelTxt, io.Sf("%.3g (%v)", res.N[i], res.Nature[i]))
		}
		p.Add(line)
	}

	// deformed shape overlay
	if res != nil && scale > 0 {
		for _, mbr := range mdl.Members {
			ni := mdl.Nodes[mbr.I]
			nj := mdl.Nodes[mbr.J]
			line, err := plotter.NewLine(plotter.XYs{
				{X: ni.X + scale*res.U[2*mbr.I], Y: ni.Y + scale*res.U[2*mbr.I+1]},
				{X: nj.X + scale*res.U[2*mbr.J], Y: nj.Y + scale*res.U[2*mbr.J+1]},
			})
			if err != nil {
				return err
			}
			line.LineStyle.Width = vg.Points(1)
			line.LineStyle.Color = colDeformed
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(line)
		}
	}

	// nodes
	var nodeXY plotter.XYs
	for _, nod := range mdl.Nodes {
		nodeXY = append(nodeXY, plotter.XY{X: nod.X, Y: nod.Y})
	}
	nodes, err := plotter.NewScatter(nodeXY)
	if err != nil {
		return err
	}
	nodes.GlyphStyle.Color = color.Black
	nodes.GlyphStyle.Radius = vg.Points(3)
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(nodes)

	// supports: filled triangle for a pin, ring for a roller
	var pinXY, rollerXY plotter.XYs
	for _, sup := range mdl.Supports {
		if sup.Node < 0 || sup.Node >= len(mdl.Nodes) {
			continue
		}
		nod := mdl.Nodes[sup.Node]
		switch sup.Kind {
		case inp.KindPin:
			pinXY = append(pinXY, plotter.XY{X: nod.X, Y: nod.Y})
		case inp.KindRollerX, inp.KindRollerY:
			rollerXY = append(rollerXY, plotter.XY{X: nod.X, Y: nod.Y})
		}
	}
	if len(pinXY) > 0 {
		pins, err := plotter.NewScatter(pinXY)
		if err != nil {
			return err
		}
		pins.GlyphStyle.Color = colSupport
		pins.GlyphStyle.Radius = vg.Points(7)
		pins.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(pins)
	}
	if len(rollerXY) > 0 {
		rollers, err := plotter.NewScatter(rollerXY)
		if err != nil {
			return err
		}
		rollers.GlyphStyle.Color = colSupport
		rollers.GlyphStyle.Radius = vg.Points(6)
		rollers.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(rollers)
	}

	// load labels
	for _, lod := range mdl.Loads {
		if lod.Node < 0 || lod.Node >= len(mdl.Nodes) {
			continue
		}
		nod := mdl.Nodes[lod.Node]
		labelXY = append(labelXY, plotter.XY{X: nod.X, Y: nod.Y})
		labelTxt = append(labelTxt, io.Sf("(%g, %g)", lod.Fx, lod.Fy))
	}
	if len(labelXY) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXY, Labels: labelTxt})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	// create directory if needed
	dir := filepath.Dir(fnamepath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, fnamepath)
}
