/*
 * builder_test.go, part of catscaling.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticEads returns a table where *B = 2*CO + 1 and *C = -0.5*CO + 0.2,
// both with a small deterministic noise.
func syntheticEads(t *testing.T) *Eads {
	t.Helper()
	n := 12
	samples := make([]string, n)
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		x := -2 + 0.25*float64(i)
		noise := 0.002 * float64(i%3-1)
		samples[i] = "cat" + string(rune('a'+i))
		data[i] = []float64{x, 2*x + 1 + noise, -0.5*x + 0.2 - noise}
	}
	E, err := NewEads(samples, []string{"*CO", "*B", "*C"}, data)
	require.NoError(t, err)
	return E
}

func TestTraditional(Te *testing.T) {
	E := syntheticEads(Te)
	G, err := NewGroups([]string{"*CO"}, [][]string{{"*B", "*C"}})
	require.NoError(Te, err)
	B, err := NewBuilder(E)
	require.NoError(Te, err)
	R, err := B.Traditional(G)
	require.NoError(Te, err)

	assert.Equal(Te, []string{"*CO", "*B", "*C"}, R.Species())
	assert.Equal(Te, 1, R.Dim())

	b, ok := R.Relation("*B")
	require.True(Te, ok)
	assert.InDelta(Te, 2, b.Coefs[0], 1e-2)
	assert.InDelta(Te, 1, b.Intercept, 1e-2)
	assert.Equal(Te, 12, b.N)

	c, ok := R.Relation("*C")
	require.True(Te, ok)
	assert.InDelta(Te, -0.5, c.Slope(), 1e-2)
	assert.InDelta(Te, 0.2, c.Intercept, 1e-2)

	for s, r2 := range R.Scores() {
		assert.True(Te, r2 > 0.99 && r2 <= 1, "R2 of %s is %f", s, r2)
	}
	assert.Len(Te, R.Scores(), 2, "descriptors have no score")

	d, ok := R.Relation("*CO")
	require.True(Te, ok)
	assert.Equal(Te, []float64{1}, d.Coefs)
	assert.Equal(Te, 0.0, d.Intercept)
}

// Removing a value of one species must not change the fit of another species in
// the same group.
func TestPairwiseComplete(Te *testing.T) {
	E := syntheticEads(Te)
	G, err := NewGroups([]string{"*CO"}, [][]string{{"*B", "*C"}})
	require.NoError(Te, err)
	B, _ := NewBuilder(E)
	full, err := B.Traditional(G)
	require.NoError(Te, err)

	colB, _ := E.Column("*B")
	colC, _ := E.Column("*C")
	colB[3] = math.NaN()
	colB[7] = math.NaN()
	co, _ := E.Column("*CO")
	data := make([][]float64, E.Len())
	for i := range data {
		data[i] = []float64{co[i], colB[i], colC[i]}
	}
	E2, err := NewEads(E.Samples(), []string{"*CO", "*B", "*C"}, data)
	require.NoError(Te, err)
	B2, _ := NewBuilder(E2)
	holed, err := B2.Traditional(G)
	require.NoError(Te, err)

	cfull, _ := full.Relation("*C")
	choled, _ := holed.Relation("*C")
	assert.Equal(Te, cfull, choled)

	bholed, _ := holed.Relation("*B")
	assert.Equal(Te, 10, bholed.N)
	assert.InDelta(Te, 2, bholed.Coefs[0], 1e-2)
}

func TestInsufficientData(Te *testing.T) {
	nan := math.NaN()
	E, err := NewEads([]string{"s1", "s2", "s3"}, []string{"*A", "*B", "*C"}, [][]float64{
		{0.1, 1, nan},
		{0.2, 2, 3},
		{nan, 3, 4},
	})
	require.NoError(Te, err)
	B, _ := NewBuilder(E)
	G, _ := NewGroups([]string{"*A"}, [][]string{{"*B", "*C"}})
	_, err = B.Traditional(G)
	assert.ErrorIs(Te, err, ErrInsufficientData)

	G, _ = NewGroups([]string{"*A"}, [][]string{{"*B"}})
	R, err := B.Traditional(G)
	require.NoError(Te, err)
	b, _ := R.Relation("*B")
	assert.InDelta(Te, 10, b.Coefs[0], 1e-9)

	flat, err := NewEads([]string{"s1", "s2"}, []string{"*A", "*B"}, [][]float64{{1, 1}, {1, 2}})
	require.NoError(Te, err)
	B, _ = NewBuilder(flat)
	G, _ = NewGroups([]string{"*A"}, [][]string{{"*B"}})
	_, err = B.Traditional(G)
	assert.ErrorIs(Te, err, ErrInsufficientData)
}

func TestComposite(Te *testing.T) {
	E, err := EadsFromFile("test/relation_data.csv")
	require.NoError(Te, err)
	B, err := NewBuilder(E)
	require.NoError(Te, err)

	c, err := B.Composite([]string{"*A", "*D"}, []float64{0.5, 0.5})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, make([]float64, 6), c, 1e-12)

	c, err = B.Composite([]string{"*A", "*D"}, []float64{0, 1})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0, -0.1, -0.2, -0.3, -0.4, -0.5}, c, 1e-12)

	_, err = B.Composite([]string{"*A", "*D"}, []float64{0.5, 0})
	assert.ErrorIs(Te, err, ErrConfiguration)
	_, err = B.Composite([]string{"*A", "*X"}, []float64{0.5, 0.5})
	assert.ErrorIs(Te, err, ErrConfiguration)

	coefs, icept, r2, n, err := B.fit("*B", []string{"*A"}, []float64{1})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{10}, coefs, 0.01)
	assert.InDelta(Te, 0, icept, 1e-9)
	assert.InDelta(Te, 1, r2, 1e-9)
	assert.Equal(Te, 6, n)
}

func TestAdaptive(Te *testing.T) {
	n := 9
	samples := make([]string, n)
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		a := 0.1 * float64(i)
		c := 0.05 * float64((i*i)%7)
		samples[i] = "s" + string(rune('0'+i))
		//*Z is 3 times the 0.3/0.7 mixture of *A and *C, plus 1.
		data[i] = []float64{a, c, 3*(0.3*a+0.7*c) + 1}
	}
	E, err := NewEads(samples, []string{"*A", "*C", "*Z"}, data)
	require.NoError(Te, err)
	B, _ := NewBuilder(E)

	R, err := B.Adaptive([]string{"*A", "*C"}, 10)
	require.NoError(Te, err)
	z, ok := R.Relation("*Z")
	require.True(Te, ok)
	assert.InDelta(Te, 0.3, z.Ratios[0], 1e-9)
	assert.InDelta(Te, 0.7, z.Ratios[1], 1e-9)
	assert.InDeltaSlice(Te, []float64{0.9, 2.1}, z.Coefs, 1e-6)
	assert.InDelta(Te, 1, z.Intercept, 1e-6)
	assert.InDelta(Te, 1, z.R2, 1e-9)
	assert.Equal(Te, []string{"*A", "*C", "*Z"}, R.Species())

	_, err = B.Adaptive([]string{"*A"}, 10)
	assert.ErrorIs(Te, err, ErrConfiguration)
	_, err = B.Adaptive([]string{"*A", "*A"}, 10)
	assert.ErrorIs(Te, err, ErrConfiguration)
	_, err = B.Adaptive([]string{"*A", "*C"}, 0)
	assert.ErrorIs(Te, err, ErrConfiguration)
	_, err = B.Adaptive([]string{"*A", "*Q"}, 1)
	assert.ErrorIs(Te, err, ErrConfiguration)
}

func TestMixRatios(Te *testing.T) {
	assert.InDeltaSlice(Te, []float64{0, 0.3, 0.6, 0.9, 1}, mixRatios(30), 1e-12)
	assert.InDeltaSlice(Te, []float64{0, 0.5, 1}, mixRatios(50), 1e-12)
	assert.Len(Te, mixRatios(1), 101)
}
