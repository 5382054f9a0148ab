/*
 * profile.go, part of catscaling.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// width of the horizontal bar for each state, in step units.
const stateWidth = 0.6

// ProfilePlot builds a free-energy diagram from one or more energy profiles, such as
// those returned by scaling.Reaction.Profile. Each state is drawn as a horizontal bar
// and consecutive states are joined by dashed lines. names can be nil, or have one element
// per profile.
func ProfilePlot(profiles [][]float64, names []string, O *Options) (*plot.Plot, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("catscaling/scalplot.ProfilePlot: no profiles given")
	}
	if names != nil && len(names) != len(profiles) {
		return nil, fmt.Errorf("catscaling/scalplot.ProfilePlot: %d names for %d profiles", len(names), len(profiles))
	}
	if O == nil {
		O = DefaultOptions()
	}
	p := plot.New()
	p.Title.Text = O.Title
	p.X.Label.Text = "Reaction coordinate"
	p.Y.Label.Text = "ΔE / eV"
	p.Add(plotter.NewGrid())
	for key, prof := range profiles {
		if len(prof) == 0 {
			return nil, fmt.Errorf("catscaling/scalplot.ProfilePlot: empty profile %d", key)
		}
		col := seriesColor(key, len(profiles))
		var bars []*plotter.Line
		for i, e := range prof {
			x := float64(i)
			l, err := plotter.NewLine(plotter.XYs{{X: x, Y: e}, {X: x + stateWidth, Y: e}})
			if err != nil {
				return nil, err
			}
			l.Color = col
			l.Width = vg.Points(2)
			p.Add(l)
			bars = append(bars, l)
			if i == 0 {
				continue
			}
			j, err := plotter.NewLine(plotter.XYs{{X: x - 1 + stateWidth, Y: prof[i-1]}, {X: x, Y: e}})
			if err != nil {
				return nil, err
			}
			j.Color = col
			j.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
			p.Add(j)
		}
		if names != nil {
			p.Legend.Add(names[key], bars[0])
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Profile renders ProfilePlot to the file filename.
func Profile(profiles [][]float64, names []string, O *Options, filename string) error {
	if O == nil {
		O = DefaultOptions()
	}
	p, err := ProfilePlot(profiles, names, O)
	if err != nil {
		return err
	}
	w, h := O.sizes()
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("catscaling/scalplot.Profile: %w", err)
	}
	return nil
}
