/*
 * eads.go, part of catscaling.
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
	"sort"
)

// Eads is a table of adsorption energies. Rows are samples (catalysts)
// and columns are species (adsorbates). Missing values are stored as NaN.
//
//	           *CO2   *COOH  ...   *O     *OH
//	Cu@g-C3N4  0.89   4.37   ...  -1.73   0.17
//	Ni@C2N    -4.57  -4.95   ...  -2.81  -3.21
//
// An Eads is never modified after it is created.
type Eads struct {
	samples []string
	species []string
	sindex  map[string]int //species name -> column
	rindex  map[string]int //sample name -> row
	d       [][]float64    //row-major
}

// NewEads returns a table with the given sample (row) and species (column) names
// and data, which must have one slice per sample, each with one element per species.
// Use math.NaN() for missing values. The data is copied.
func NewEads(samples, species []string, data [][]float64) (*Eads, error) {
	if len(data) != len(samples) {
		return nil, newError(ErrConfiguration, "NewEads", "%d samples but %d rows of data", len(samples), len(data))
	}
	E := &Eads{
		samples: append([]string(nil), samples...),
		species: append([]string(nil), species...),
		sindex:  make(map[string]int, len(species)),
		rindex:  make(map[string]int, len(samples)),
		d:       make([][]float64, len(data)),
	}
	for i, v := range species {
		if _, ok := E.sindex[v]; ok {
			return nil, newError(ErrConfiguration, "NewEads", "species %q appears more than once", v)
		}
		E.sindex[v] = i
	}
	for i, v := range samples {
		if _, ok := E.rindex[v]; ok {
			return nil, newError(ErrConfiguration, "NewEads", "sample %q appears more than once", v)
		}
		E.rindex[v] = i
		if len(data[i]) != len(species) {
			return nil, newError(ErrConfiguration, "NewEads", "sample %q has %d values for %d species", v, len(data[i]), len(species))
		}
		E.d[i] = append([]float64(nil), data[i]...)
	}
	return E, nil
}

// Len returns the number of samples in the table.
func (E *Eads) Len() int { return len(E.samples) }

// Samples returns a copy of the sample names, in row order.
func (E *Eads) Samples() []string { return append([]string(nil), E.samples...) }

// Species returns a copy of the species names, in column order.
func (E *Eads) Species() []string { return append([]string(nil), E.species...) }

// HasSpecies returns true if name is a column of the table.
func (E *Eads) HasSpecies(name string) bool {
	_, ok := E.sindex[name]
	return ok
}

// Energy returns the energy of species in sample, and false
// if either is not in the table or the value is missing.
func (E *Eads) Energy(sample, species string) (float64, bool) {
	r, ok := E.rindex[sample]
	if !ok {
		return math.NaN(), false
	}
	c, ok := E.sindex[species]
	if !ok {
		return math.NaN(), false
	}
	v := E.d[r][c]
	return v, !math.IsNaN(v)
}

// Column returns a copy of the energies of species for all samples,
// with NaN for missing values.
func (E *Eads) Column(species string) ([]float64, error) {
	c, ok := E.sindex[species]
	if !ok {
		return nil, newError(ErrConfiguration, "Eads.Column", "species %q not in table", species)
	}
	ret := make([]float64, len(E.d))
	for i, row := range E.d {
		ret[i] = row[c]
	}
	return ret, nil
}

// Row returns a copy of the energies of all species for sample.
func (E *Eads) Row(sample string) ([]float64, error) {
	r, ok := E.rindex[sample]
	if !ok {
		return nil, newError(ErrConfiguration, "Eads.Row", "sample %q not in table", sample)
	}
	return append([]float64(nil), E.d[r]...), nil
}

// Missing returns the number of missing values in the table.
func (E *Eads) Missing() int {
	var n int
	for _, row := range E.d {
		for _, v := range row {
			if math.IsNaN(v) {
				n++
			}
		}
	}
	return n
}

// AddSpecies returns a new table with an extra column. energies
// must have one element per sample.
func (E *Eads) AddSpecies(name string, energies []float64) (*Eads, error) {
	if len(energies) != len(E.samples) {
		return nil, newError(ErrConfiguration, "Eads.AddSpecies", "%d energies for %d samples", len(energies), len(E.samples))
	}
	if E.HasSpecies(name) {
		return nil, newError(ErrConfiguration, "Eads.AddSpecies", "species %q already exists", name)
	}
	data := make([][]float64, len(E.d))
	for i, row := range E.d {
		data[i] = append(append(make([]float64, 0, len(row)+1), row...), energies[i])
	}
	return NewEads(E.samples, append(E.Species(), name), data)
}

// AddSample returns a new table with an extra row. energies
// must have one element per species.
func (E *Eads) AddSample(name string, energies []float64) (*Eads, error) {
	if len(energies) != len(E.species) {
		return nil, newError(ErrConfiguration, "Eads.AddSample", "%d energies for %d species", len(energies), len(E.species))
	}
	if _, ok := E.rindex[name]; ok {
		return nil, newError(ErrConfiguration, "Eads.AddSample", "sample %q already exists", name)
	}
	data := append(append(make([][]float64, 0, len(E.d)+1), E.d...), energies)
	return NewEads(append(E.Samples(), name), E.species, data)
}

// Sorted returns a copy of the table with the rows, the columns, or both, sorted by name.
func (E *Eads) Sorted(rows, cols bool) *Eads {
	samples := E.Samples()
	species := E.Species()
	if rows {
		sort.Strings(samples)
	}
	if cols {
		sort.Strings(species)
	}
	data := make([][]float64, len(samples))
	for i, s := range samples {
		data[i] = make([]float64, len(species))
		r := E.rindex[s]
		for j, sp := range species {
			data[i][j] = E.d[r][E.sindex[sp]]
		}
	}
	ret, err := NewEads(samples, species, data)
	if err != nil {
		//can't happen, names were already unique.
		panic(err.Error())
	}
	return ret
}

// complete returns the sample indexes for which all of the given species
// have a value.
func (E *Eads) complete(species ...string) []int {
	cols := make([]int, len(species))
	for i, v := range species {
		cols[i] = E.sindex[v]
	}
	ret := make([]int, 0, len(E.d))
	for i, row := range E.d {
		ok := true
		for _, c := range cols {
			if math.IsNaN(row[c]) {
				ok = false
				break
			}
		}
		if ok {
			ret = append(ret, i)
		}
	}
	return ret
}
