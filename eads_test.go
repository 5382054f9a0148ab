/*
 * eads_test.go, part of catscaling.
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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEadsFromFile(Te *testing.T) {
	E, err := EadsFromFile("test/energies.csv")
	require.NoError(Te, err)
	assert.Equal(Te, 10, E.Len())
	assert.Equal(Te, []string{"*CO", "*COOH", "*CHO", "*CH2O", "*OH", "*OCH3", "*O"}, E.Species())
	assert.Equal(Te, 2, E.Missing())

	v, ok := E.Energy("Ni@C2N", "*CO")
	assert.True(Te, ok)
	assert.InDelta(Te, -1.62, v, 1e-12)

	_, ok = E.Energy("Co@MoS2", "*CHO")
	assert.False(Te, ok, "empty field should be missing")
	_, ok = E.Energy("Ag@TiO2", "*OCH3")
	assert.False(Te, ok, "NA should be missing")
	_, ok = E.Energy("Nowhere", "*CO")
	assert.False(Te, ok)

	col, err := E.Column("*CHO")
	require.NoError(Te, err)
	assert.Len(Te, col, 10)
	assert.True(Te, math.IsNaN(col[6]))
}

func TestReadEadsCSVErrors(Te *testing.T) {
	cases := map[string]struct {
		data string
		kind error
	}{
		"bad number":        {",*A,*B\ns1,0.1,abc\n", ErrParse},
		"no species":        {"sample\ns1\n", ErrParse},
		"empty":             {"", ErrParse},
		"ragged":            {",*A,*B\ns1,0.1\n", ErrParse},
		"duplicate species": {",*A,*A\ns1,0.1,0.2\n", ErrConfiguration},
		"duplicate sample":  {",*A\ns1,0.1\ns1,0.2\n", ErrConfiguration},
	}
	for name, c := range cases {
		Te.Run(name, func(t *testing.T) {
			_, err := ReadEadsCSV(strings.NewReader(c.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.kind), "got %v", err)
		})
	}
}

func TestReadEadsDelim(Te *testing.T) {
	E, err := ReadEadsDelim(strings.NewReader("sample\t*A\t*B\n# a comment\ns1\t0.5\t-\ns2\t1.5\t2\n"), '\t')
	require.NoError(Te, err)
	assert.Equal(Te, []string{"s1", "s2"}, E.Samples())
	_, ok := E.Energy("s1", "*B")
	assert.False(Te, ok)
}

func TestEadsAdd(Te *testing.T) {
	E, err := NewEads([]string{"s1", "s2"}, []string{"*A"}, [][]float64{{1}, {2}})
	require.NoError(Te, err)

	E2, err := E.AddSpecies("*B", []float64{3, 4})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"*A", "*B"}, E2.Species())
	assert.False(Te, E.HasSpecies("*B"), "AddSpecies must not modify the receiver")
	v, _ := E2.Energy("s2", "*B")
	assert.Equal(Te, 4.0, v)

	_, err = E2.AddSpecies("*B", []float64{3, 4})
	assert.ErrorIs(Te, err, ErrConfiguration)
	_, err = E2.AddSpecies("*C", []float64{3})
	assert.ErrorIs(Te, err, ErrConfiguration)

	E3, err := E2.AddSample("s0", []float64{5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 3, E3.Len())
	assert.Equal(Te, 2, E2.Len())
	_, err = E3.AddSample("s1", []float64{5, 6})
	assert.ErrorIs(Te, err, ErrConfiguration)

	S := E3.Sorted(true, true)
	assert.Equal(Te, []string{"s0", "s1", "s2"}, S.Samples())
	row, err := S.Row("s0")
	require.NoError(Te, err)
	assert.Equal(Te, []float64{5, 6}, row)
}
