/*
 * doc.go, part of catscaling.
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

/*
Package scaling builds linear scaling relations between adsorption energies, and uses them
to analyze surface reactions in computational catalysis.

	**Capabilities**

	Reads tables of adsorption energies (samples in rows, species in columns),
	with missing values.

	Fits scaling relations, where the adsorption energy of each species is a linear
	function of that of a descriptor. Species can be assigned to descriptors
	by hand (the traditional method), or approximated by the mixture of two
	descriptors that fits them best (the adaptive method).

	Parses surface reactions written as "*CO2 + H++e- -> *COOH", one step per line,
	and obtains the energy profile of the reaction.

	Converts adsorption energy relations into relations for the energy change of each
	reaction step, which give the rate-determining step and limiting potential for
	any descriptor values.

	Evaluates volcano plots: the energy change of the rate-determining step over a grid
	of values of two descriptors. The scalplot subpackage renders them.

	Saves and loads relations as JSON, optionally compressed.

The typical pipeline is

	E, err := scaling.EadsFromFile("energies.csv")
	G, err := scaling.NewGroups([]string{"*CO", "*OH"}, [][]string{{"*COOH", "*CHO"}, {"*O"}})
	B, err := scaling.NewBuilder(E)
	R, err := B.Traditional(G)
	rxn, err := scaling.ParseReaction(steps, refs)
	D, err := scaling.ToDeltaE(R, rxn)
	V, err := scaling.NewVolcano(D, scaling.Axis{-2, 1, 100}, scaling.Axis{-2, 1, 100})

All errors returned by the package unwrap to one of ErrConfiguration, ErrInsufficientData,
ErrParse or ErrMissingEnergy, except failures to create, read or write files, which unwrap
to the underlying error (so errors.Is(err, fs.ErrNotExist) works as usual).
*/
package scaling
