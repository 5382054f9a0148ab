/*
 * volcano.go, part of catscaling.
 *
 * Copyright 2024 The catscaling authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package scalplot

import (
	"fmt"
	"image/color"

	scaling "github.com/rmera/catscaling"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// VolcanoPlot builds a plot of the volcano V: a heat map of the energy change of the
// rate-determining step, with contour lines and, optionally, the optimum marked.
// Each axis of the volcano needs at least 2 points.
func VolcanoPlot(V *scaling.Volcano, O *Options) (*plot.Plot, error) {
	if V == nil {
		return nil, fmt.Errorf("catscaling/scalplot.VolcanoPlot: nil volcano")
	}
	if O == nil {
		O = DefaultOptions()
	}
	c, r := V.Dims()
	if c < 2 || r < 2 {
		return nil, fmt.Errorf("catscaling/scalplot.VolcanoPlot: a %dx%d grid can't be drawn, at least 2x2 points are needed", c, r)
	}
	min, max := V.Range()
	p := plot.New()
	p.Title.Text = O.Title
	p.Title.Padding = 3 * vg.Millimeter
	xname, yname := V.Descriptors()
	p.X.Label.Text = fmt.Sprintf("Eads(%s) / eV", xname)
	p.Y.Label.Text = fmt.Sprintf("Eads(%s) / eV", yname)

	cm := moreland.SmoothBlueRed()
	if max > min {
		cm.SetMin(min)
		cm.SetMax(max)
	} else {
		//a flat volcano, the palette still needs a non-empty range.
		cm.SetMin(min - 0.5)
		cm.SetMax(max + 0.5)
	}
	h := plotter.NewHeatMap(V, cm.Palette(O.colors()))
	h.Min, h.Max = cm.Min(), cm.Max()
	p.Add(h)

	if O.Levels > 0 && max > min {
		levels := floats.Span(make([]float64, O.Levels+2), min, max)
		levels = levels[1 : len(levels)-1] //the extremes give no lines.
		cont := plotter.NewContour(V, levels, palette.Heat(len(levels), 1))
		cont.LineStyles = []draw.LineStyle{{Color: color.Black, Width: vg.Points(0.5)}}
		cont.Palette = nil //plain black lines
		p.Add(cont)
	}
	if O.MarkOptimum {
		x, y, z := V.Optimum()
		s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = color.Black
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("optimum, ΔE=%.2f eV", z), s)
		p.Legend.Top = true
	}
	p.X.Min, p.X.Max = V.X(0), V.X(c-1)
	p.Y.Min, p.Y.Max = V.Y(0), V.Y(r-1)
	return p, nil
}

// Volcano renders the volcano V to the file filename. The format is given by the extension
// of the file name (png, svg, pdf, eps, jpg or tiff).
func Volcano(V *scaling.Volcano, O *Options, filename string) error {
	if O == nil {
		O = DefaultOptions()
	}
	p, err := VolcanoPlot(V, O)
	if err != nil {
		return err
	}
	w, h := O.sizes()
	//here I intentionally shadow err.
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("catscaling/scalplot.Volcano: %w", err)
	}
	return nil
}
