/*
 * convert.go, part of catscaling.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
Consider the surface reaction step

	*A + B -> *C + D

where B and D are free molecules. Its energy change is

	ΔE = (E_*C + E_D) - (E_*A + E_B)

with E_*A = E_A + Eads_A + E_*, and the same for *C. The energies of the free species
(and of the empty site) are constants, so a linear relation for Eads_A and Eads_C
gives a linear relation for ΔE, with the free-species energies and
corrections added to the constant term.
*/

// DeltaERelation gives the energy change of each step of a reaction as a linear function of
// the descriptors. Row i of the coefficient matrix holds the coefficient of each descriptor
// for step i, followed by the constant term.
type DeltaERelation struct {
	descriptors []string
	reaction    *Reaction
	coefs       *mat.Dense
}

// ToDeltaE converts the adsorption energy relation R into a relation for the energy changes
// of the steps of the reaction rxn. Every adsorbed species in rxn needs a relation in R. No fitting
// is performed, the relations of R are just combined.
func ToDeltaE(R *EadsRelation, rxn *Reaction) (*DeltaERelation, error) {
	if R == nil || rxn == nil {
		return nil, newError(ErrConfiguration, "ToDeltaE", "nil relation or reaction")
	}
	dim := R.Dim()
	D := &DeltaERelation{
		descriptors: R.Descriptors(),
		reaction:    rxn,
		coefs:       mat.NewDense(rxn.Len(), dim+1, nil),
	}
	row := make([]float64, dim+1)
	for i, s := range rxn.steps {
		for j := range row {
			row[j] = 0
		}
		if err := addTerms(row, R, s.Products, 1); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ToDeltaE: step %d", i))
		}
		if err := addTerms(row, R, s.Reactants, -1); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ToDeltaE: step %d", i))
		}
		D.coefs.SetRow(i, row)
	}
	return D, nil
}

// addTerms adds sign times the coefficients, followed by the constant,
// for each term, to dst.
func addTerms(dst []float64, R *EadsRelation, terms []Term, sign float64) error {
	dim := len(dst) - 1
	for _, t := range terms {
		if t.IsSite() {
			continue
		}
		if t.Adsorbed {
			l, ok := R.Relation(t.Name)
			if !ok {
				return newError(ErrConfiguration, "addTerms", "no scaling relation for adsorbed species %q", t.Name)
			}
			floats.AddScaled(dst[:dim], sign*t.Coef, l.Coefs)
			dst[dim] += sign * t.Coef * l.Intercept
		}
		dst[dim] += sign * t.Coef * (t.Energy + t.Correction)
	}
	return nil
}

// Dim returns the number of descriptors.
func (D *DeltaERelation) Dim() int { return len(D.descriptors) }

// Descriptors returns a copy of the descriptor names.
func (D *DeltaERelation) Descriptors() []string { return append([]string(nil), D.descriptors...) }

// Reaction returns the reaction the relation describes.
func (D *DeltaERelation) Reaction() *Reaction { return D.reaction }

// Len returns the number of steps.
func (D *DeltaERelation) Len() int { return D.reaction.Len() }

// Step returns the descriptor coefficients and the constant term for step i.
func (D *DeltaERelation) Step(i int) ([]float64, float64) {
	row := mat.Row(nil, i, D.coefs)
	return row[:len(row)-1], row[len(row)-1]
}

// Coefficients returns a copy of the coefficient matrix, with one row per step
// and one column per descriptor, plus a last column for the constant.
func (D *DeltaERelation) Coefficients() *mat.Dense { return mat.DenseCopyOf(D.coefs) }

func (D *DeltaERelation) checkPoint(caller string, x []float64) error {
	if len(x) != len(D.descriptors) {
		return newError(ErrConfiguration, caller, "%d values for %d descriptors", len(x), len(D.descriptors))
	}
	return nil
}

// Eval returns the energy change of each step for the descriptor values x.
func (D *DeltaERelation) Eval(x []float64) ([]float64, error) {
	if err := D.checkPoint("DeltaERelation.Eval", x); err != nil {
		return nil, err
	}
	p := mat.NewVecDense(len(x)+1, append(append(make([]float64, 0, len(x)+1), x...), 1))
	ret := mat.NewVecDense(D.Len(), nil)
	ret.MulVec(D.coefs, p)
	return ret.RawVector().Data, nil
}

// Limiting returns the index and energy change of the rate-determining step, that
// is, the step with the largest energy change, for the descriptor values x.
// The first of them is returned in case of ties.
func (D *DeltaERelation) Limiting(x []float64) (int, float64, error) {
	de, err := D.Eval(x)
	if err != nil {
		return -1, 0, errDecorate(err, "DeltaERelation.Limiting")
	}
	i := floats.MaxIdx(de)
	return i, de[i], nil
}

// LimitingPotential returns the limiting potential, the negative of the largest
// step energy change, for the descriptor values x. It is only meaningful
// if all steps are electrochemical, with energies in eV.
func (D *DeltaERelation) LimitingPotential(x []float64) (float64, error) {
	_, max, err := D.Limiting(x)
	if err != nil {
		return 0, errDecorate(err, "DeltaERelation.LimitingPotential")
	}
	return -max, nil
}

func (D *DeltaERelation) String() string {
	var b strings.Builder
	for i, s := range D.reaction.steps {
		c, k := D.Step(i)
		terms := make([]string, 0, len(c)+1)
		for j, v := range c {
			if v != 0 {
				terms = append(terms, fmt.Sprintf("%.4f*E(%s)", v, D.descriptors[j]))
			}
		}
		terms = append(terms, fmt.Sprintf("%.4f", k))
		fmt.Fprintf(&b, "%-40s ΔE = %s\n", s.String(), strings.Join(terms, " + "))
	}
	return b.String()
}
