/*
 * correlation.go, part of catscaling.
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
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// matGrid puts a matrix in the GridXYZ interface, with
// the integer indexes as coordinates.
type matGrid struct {
	mat.Matrix
}

func (m matGrid) Dims() (c, r int) {
	r, c = m.Matrix.Dims()
	return c, r
}
func (m matGrid) Z(c, r int) float64 { return m.At(r, c) }
func (m matGrid) X(c int) float64    { return float64(c) }
func (m matGrid) Y(r int) float64    { return float64(r) }

func nameTicks(names []string) plot.ConstantTicks {
	t := make([]plot.Tick, len(names))
	for i, v := range names {
		t[i] = plot.Tick{Value: float64(i), Label: v}
	}
	return plot.ConstantTicks(t)
}

// CorrelationPlot builds a heat map of the correlation matrix of the species in E
// (see scaling.CorrelationMatrix). Pairs without enough data are left blank.
func CorrelationPlot(E *scaling.Eads, O *Options) (*plot.Plot, error) {
	if O == nil {
		O = DefaultOptions()
	}
	C, err := scaling.CorrelationMatrix(E)
	if err != nil {
		return nil, err
	}
	if n, _ := C.Dims(); n < 2 {
		return nil, fmt.Errorf("catscaling/scalplot.CorrelationPlot: at least 2 species are needed, got %d", n)
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(matGrid{C}, cm.Palette(O.colors()))
	h.Min, h.Max = -1, 1
	h.NaN = color.Transparent
	p := plot.New()
	p.Title.Text = O.Title
	p.Add(h)
	names := E.Species()
	p.X.Tick.Marker = nameTicks(names)
	p.Y.Tick.Marker = nameTicks(names)
	return p, nil
}

// Correlation renders CorrelationPlot to the file filename.
func Correlation(E *scaling.Eads, O *Options, filename string) error {
	if O == nil {
		O = DefaultOptions()
	}
	p, err := CorrelationPlot(E, O)
	if err != nil {
		return err
	}
	w, h := O.sizes()
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("catscaling/scalplot.Correlation: %w", err)
	}
	return nil
}
