/*
 * relation.go, part of catscaling.
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
	"math"
	"strings"

	scaling "github.com/rmera/catscaling"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// compositeLabel returns a label like "0.30 E(*CO) + 0.70 E(*OH)" for the descriptors
// with non-zero ratios.
func compositeLabel(descriptors []string, ratios []float64) string {
	var terms []string
	for i, d := range descriptors {
		switch {
		case ratios[i] == 0:
		case ratios[i] == 1:
			terms = append(terms, fmt.Sprintf("Eads(%s)", d))
		default:
			terms = append(terms, fmt.Sprintf("%.2f Eads(%s)", ratios[i], d))
		}
	}
	return strings.Join(terms, " + ") + " / eV"
}

// RelationPlot builds a plot for the scaling relations of the given species in R, with the data
// in E: one scatter series per species against its (possibly composite) descriptor, and the
// fitted line. If species is empty, all non-descriptor species in R are plotted.
func RelationPlot(E *scaling.Eads, R *scaling.EadsRelation, species []string, O *Options) (*plot.Plot, error) {
	if E == nil || R == nil {
		return nil, fmt.Errorf("catscaling/scalplot.RelationPlot: nil table or relation")
	}
	if O == nil {
		O = DefaultOptions()
	}
	if len(species) == 0 {
		for _, s := range R.Species() {
			if !R.IsDescriptor(s) {
				species = append(species, s)
			}
		}
	}
	B, err := scaling.NewBuilder(E)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = O.Title
	p.Y.Label.Text = "Eads / eV"
	p.Add(plotter.NewGrid())
	descriptors := R.Descriptors()
	for key, s := range species {
		l, ok := R.Relation(s)
		if !ok {
			return nil, fmt.Errorf("catscaling/scalplot.RelationPlot: no relation for species %q", s)
		}
		x, err := B.Composite(descriptors, l.Ratios)
		if err != nil {
			return nil, err
		}
		y, err := E.Column(s)
		if err != nil {
			return nil, err
		}
		pts := make(plotter.XYs, 0, len(x))
		for i := range x {
			if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		col := seriesColor(key, len(species))
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		slope, icept := l.Slope(), l.Intercept
		line := plotter.NewFunction(func(x float64) float64 { return slope*x + icept })
		line.Color = col
		line.Width = vg.Points(1)
		p.Add(sc, line)
		p.Legend.Add(fmt.Sprintf("%s (R²=%.3f)", s, l.R2), sc, line)
		if len(species) == 1 {
			p.X.Label.Text = compositeLabel(descriptors, l.Ratios)
		}
	}
	if len(species) > 1 {
		p.X.Label.Text = "descriptor Eads / eV"
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// Relation renders RelationPlot to the file filename.
func Relation(E *scaling.Eads, R *scaling.EadsRelation, species []string, O *Options, filename string) error {
	if O == nil {
		O = DefaultOptions()
	}
	p, err := RelationPlot(E, R, species, O)
	if err != nil {
		return err
	}
	w, h := O.sizes()
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("catscaling/scalplot.Relation: %w", err)
	}
	return nil
}
