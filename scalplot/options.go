/*
 * options.go, part of catscaling.
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

// Package scalplot draws the results of the scaling package with gonum/plot:
// volcano heat maps, scaling relations, energy diagrams and correlation matrices.
// Figures are written in the format given by the file extension.
package scalplot

import "gonum.org/v1/plot/vg"

// Options contains the settings shared by the plotting functions.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	//Number of contour levels in volcano plots. No contours are drawn if 0.
	Levels int
	//Number of colors in the palette for heat maps.
	Colors int
	//Mark the optimum of volcano plots.
	MarkOptimum bool
}

// DefaultOptions returns options that give reasonable plots for a paper or a notebook.
func DefaultOptions() *Options {
	return &Options{
		Width:       12 * vg.Centimeter,
		Height:      10 * vg.Centimeter,
		Levels:      10,
		Colors:      64,
		MarkOptimum: true,
	}
}

func (O *Options) sizes() (vg.Length, vg.Length) {
	w, h := O.Width, O.Height
	if w <= 0 {
		w = 12 * vg.Centimeter
	}
	if h <= 0 {
		h = 10 * vg.Centimeter
	}
	return w, h
}

func (O *Options) colors() int {
	if O.Colors < 2 {
		return 64
	}
	return O.Colors
}
