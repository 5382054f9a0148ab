/*
 * default.go, part of catscaling.
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

package config

// The reaction is the reduction of CO2 to methane through *CO, with the computational
// hydrogen electrode. Energies are illustrative and must be replaced by those of the
// level of theory used for the table.
const defaultReaction = `CO2_g + * + H++e- -> *COOH
*COOH + H++e- -> *CO + H2O_l
*CO + H++e- -> *CHO
*CHO + H++e- -> *CH2O
*CH2O + H++e- -> *OCH3
*OCH3 + H++e- -> *O + CH4_g
*O + H++e- -> *OH
*OH + H++e- -> * + H2O_l
`

// Default returns an example configuration for the reduction of CO2 to methane,
// with the groups of Peterson and Nørskov.
func Default() *Config {
	return &Config{
		Data:       "energies.csv",
		Method:     Traditional,
		StepLength: 1.0,
		Groups: []Group{
			{Descriptor: "*CO", Members: []string{"*COOH", "*CHO", "*CH2O"}},
			{Descriptor: "*OH", Members: []string{"*OCH3", "*O"}},
		},
		Reaction: defaultReaction,
		Energies: []Energy{
			{Species: "CO2_g", Energy: -22.96, Correction: 0.31},
			{Species: "H++e-", Energy: -3.38, Correction: -0.04},
			{Species: "H2O_l", Energy: -14.22, Correction: 0.57},
			{Species: "CH4_g", Energy: -24.05, Correction: 0.75},
			{Species: "*COOH", Energy: -29.94, Correction: 0.62},
			{Species: "*CO", Energy: -14.80, Correction: 0.19},
			{Species: "*CHO", Energy: -18.21, Correction: 0.47},
			{Species: "*CH2O", Energy: -22.13, Correction: 0.74},
			{Species: "*OCH3", Energy: -25.56, Correction: 1.06},
			{Species: "*O", Energy: -4.93, Correction: 0.07},
			{Species: "*OH", Energy: -7.73, Correction: 0.33},
		},
		Volcano: Volcano{
			X:      []float64{-2, 1, 100},
			Y:      []float64{-2, 1, 100},
			Output: "volcano.png",
			Title:  "CO2 to CH4",
		},
		RelationOut: "relation.json.zst",
	}
}
