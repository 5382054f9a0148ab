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

package scaling

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix returns the Pearson correlation coefficient between the adsorption energies
// of each pair of species in E, in the column order of E. Each pair is computed with
// the samples that have values for both species. Pairs with fewer than two such samples,
// or where one of the species has a constant energy, get NaN.
//
// It is a quick way of spotting good descriptor candidates before building a relation.
func CorrelationMatrix(E *Eads) (*mat.SymDense, error) {
	if E == nil {
		return nil, newError(ErrConfiguration, "CorrelationMatrix", "nil table")
	}
	n := len(E.species)
	ret := mat.NewSymDense(n, nil)
	x := make([]float64, 0, E.Len())
	y := make([]float64, 0, E.Len())
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x, y = x[:0], y[:0]
			for _, r := range E.complete(E.species[i], E.species[j]) {
				x = append(x, E.d[r][i])
				y = append(y, E.d[r][j])
			}
			c := math.NaN()
			if len(x) >= 2 {
				c = stat.Correlation(x, y, nil)
			}
			ret.SetSym(i, j, c)
		}
	}
	return ret, nil
}
