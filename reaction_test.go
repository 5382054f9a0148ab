/*
 * reaction_test.go, part of catscaling.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRefs = map[string]RefEnergy{
	"*CO2":  {Energy: -22.96, Correction: 0.3},
	"*COOH": {Energy: -25.1},
	"H++e-": {Energy: -3.38},
	"*CO":   {Energy: -14.8},
	"H2O_l": {Energy: -14.22, Correction: 0.56},
}

func TestParseSpecies(Te *testing.T) {
	S, err := ParseSpecies("*CO2", testRefs)
	require.NoError(Te, err)
	assert.True(Te, S.Adsorbed)
	assert.Equal(Te, -22.96, S.Energy)
	assert.Equal(Te, 0.3, S.Correction)

	S, err = ParseSpecies("H2O_l", testRefs)
	require.NoError(Te, err)
	assert.False(Te, S.Adsorbed)
	assert.Equal(Te, "l", S.State)

	S, err = ParseSpecies("H2O_g(-14.2, 0.5)", nil)
	require.NoError(Te, err)
	assert.Equal(Te, "H2O_g", S.Name)
	assert.Equal(Te, "g", S.State)
	assert.Equal(Te, RefEnergy{Energy: -14.2, Correction: 0.5}, S.RefEnergy)

	S, err = ParseSpecies("*CO(-1.5)", testRefs)
	require.NoError(Te, err)
	assert.Equal(Te, RefEnergy{Energy: -1.5}, S.RefEnergy, "inline energies override the references")

	S, err = ParseSpecies("*", nil)
	require.NoError(Te, err)
	assert.True(Te, S.IsSite())

	_, err = ParseSpecies("*CHO", testRefs)
	assert.ErrorIs(Te, err, ErrMissingEnergy)
	for _, bad := range []string{"*CO(abc)", "*CO(1, 2, 3)", "*CO()", "*(-1)", "*C O"} {
		_, err = ParseSpecies(bad, testRefs)
		assert.ErrorIs(Te, err, ErrParse, bad)
	}
}

func TestParseStep(Te *testing.T) {
	s, err := ParseStep("*CO2 + H++e- -> *COOH", testRefs)
	require.NoError(Te, err)
	require.Len(Te, s.Reactants, 2)
	require.Len(Te, s.Products, 1)
	assert.Equal(Te, "*CO2", s.Reactants[0].Name)
	assert.Equal(Te, "H++e-", s.Reactants[1].Name)
	assert.Equal(Te, "*COOH", s.Products[0].Name)
	assert.Equal(Te, 1.0, s.Products[0].Coef)
	assert.Equal(Te, "*CO2 + H++e- -> *COOH", s.String())

	s, err = ParseStep("*A(-1, 0) + 2H2O_g(-2, 3) -> 2*B(-4, 0)", nil)
	require.NoError(Te, err)
	assert.Equal(Te, 2.0, s.Reactants[1].Coef)
	assert.Equal(Te, RefEnergy{Energy: -2, Correction: 3}, s.Reactants[1].RefEnergy)
	assert.Equal(Te, "*B", s.Products[0].Name)
	assert.Equal(Te, 2.0, s.Products[0].Coef)

	s, err = ParseStep("*CO + H++e- + H++e- -> *CO(-1)", testRefs)
	require.NoError(Te, err)
	require.Len(Te, s.Reactants, 2)
	assert.Equal(Te, 2.0, s.Reactants[1].Coef, "repeated species are merged")

	bad := []string{
		"*CO2 + H++e-",
		"*CO2 -> *COOH -> *CO",
		" -> *COOH",
		"*CO2 + -> *COOH",
		"*CO2(-1 -> *COOH",
		"*CO2((-1)) -> *COOH",
		"0*CO2 -> *COOH",
	}
	for _, b := range bad {
		_, err = ParseStep(b, testRefs)
		assert.True(Te, errors.Is(err, ErrParse), "%q gave %v", b, err)
	}
	_, err = ParseStep("*CO2 + H++e- -> *CHO", testRefs)
	assert.ErrorIs(Te, err, ErrMissingEnergy)
	assert.NotContains(Te, err.Error(), "spaces around")

	//without spaces, "*CO2+H++e-" is a single species.
	_, err = ParseStep("*CO2+H++e- -> *COOH", testRefs)
	require.ErrorIs(Te, err, ErrMissingEnergy)
	assert.Contains(Te, err.Error(), `"*CO2+H++e-"`)
	assert.Contains(Te, err.Error(), "spaces around")
}

func TestParseReaction(Te *testing.T) {
	text := `# CO2 to CO
*CO2 + H++e- -> *COOH

*COOH + H++e- -> *CO + H2O_l
`
	R, err := ParseReaction(text, testRefs)
	require.NoError(Te, err)
	assert.Equal(Te, 2, R.Len())
	assert.Equal(Te, []string{"*CO2", "*COOH", "*CO"}, R.Adsorbates())
	assert.Equal(Te, "*COOH + H++e- -> *CO + H2O_l", R.Step(1).String())

	_, err = ParseReaction("# nothing\n\n", testRefs)
	assert.ErrorIs(Te, err, ErrParse)

	_, err = ParseReaction("*CO2 + H++e- -> *COOH\n*COOH -> -> *CO", testRefs)
	require.ErrorIs(Te, err, ErrParse)
	assert.Contains(Te, err.Error(), "line 2")
}

func TestProfile(Te *testing.T) {
	R, err := ParseReaction("*(0) + *A(-1) + H2O_g(-8) -> *B(-10)\n*B(-10) -> *C(-9, 0.5)", nil)
	require.Error(Te, err, "empty sites carry no energy")

	R, err = ParseReaction("* + *A(-1) + H2O_g(-8) -> *B(-10)\n*B(-10) -> *C(-9, 0.5)", nil)
	require.NoError(Te, err)
	eads := map[string]float64{"*A": 0.5, "*B": -1, "*C": 0.2}

	de, err := R.StepEnergy(0, eads)
	require.NoError(Te, err)
	//(-10 - 1) - (-1 + 0.5 - 8)
	assert.InDelta(Te, -2.5, de, 1e-12)

	p, err := R.Profile(eads)
	require.NoError(Te, err)
	//second step: (-9 + 0.5 + 0.2) - (-10 - 1) = 2.7
	assert.InDeltaSlice(Te, []float64{0, -2.5, 0.2}, p, 1e-12)

	_, err = R.Profile(map[string]float64{"*A": 0.5})
	assert.ErrorIs(Te, err, ErrMissingEnergy)
	_, err = R.StepEnergy(2, eads)
	assert.ErrorIs(Te, err, ErrConfiguration)
}
