/*
 * relation.go, part of catscaling.
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
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// LinearRelation is the scaling relation of one species. With descriptors X and Y
// the adsorption energy of the species Z is approximated as
//
//	EadsZ = Coefs[0]*EadsX + Coefs[1]*EadsY + Intercept
//
// With the traditional method only the coefficient of the
// descriptor of Z's group is not zero.
type LinearRelation struct {
	Species   string    `json:"species"`
	Coefs     []float64 `json:"coefs"`
	Intercept float64   `json:"intercept"`
	R2        float64   `json:"r2"`
	Ratios    []float64 `json:"ratios"` //mixing ratio of each descriptor used for the fit
	N         int       `json:"n"`      //samples used in the fit
}

// Slope returns the sum of the coefficients, which is the slope of the regression
// line against the (composite) descriptor used in the fit.
func (L LinearRelation) Slope() float64 {
	var s float64
	for _, v := range L.Coefs {
		s += v
	}
	return s
}

// Predict returns the energy of the species for the given descriptor energies.
func (L LinearRelation) Predict(x []float64) float64 {
	r := L.Intercept
	for i, v := range L.Coefs {
		r += v * x[i]
	}
	return r
}

func (L LinearRelation) copy() LinearRelation {
	L.Coefs = append([]float64(nil), L.Coefs...)
	L.Ratios = append([]float64(nil), L.Ratios...)
	return L
}

// EadsRelation is a set of scaling relations for adsorption energies, one per species, all
// expressed in terms of the same descriptors. It can be seen as a coefficient matrix:
//
//	          Descriptor_X   Descriptor_Y   Constant
//	EadsI   = aI             bI             cI
//	EadsII  = aII            bII            cII
//
// The descriptors themselves are included, with the trivial relation.
type EadsRelation struct {
	descriptors []string
	rels        []LinearRelation
	index       map[string]int
}

// NewEadsRelation builds a relation from descriptor names and the relations for the
// dependent species. Each relation must have one coefficient per descriptor.
// Descriptors get an identity relation if they are not in rels.
func NewEadsRelation(descriptors []string, rels []LinearRelation) (*EadsRelation, error) {
	R := &EadsRelation{
		descriptors: append([]string(nil), descriptors...),
		rels:        make([]LinearRelation, 0, len(rels)+len(descriptors)),
		index:       make(map[string]int, len(rels)+len(descriptors)),
	}
	for i, d := range descriptors {
		if _, ok := R.index[d]; ok {
			return nil, newError(ErrConfiguration, "NewEadsRelation", "descriptor %q given more than once", d)
		}
		id := LinearRelation{Species: d, Coefs: make([]float64, len(descriptors)), R2: 1, Ratios: make([]float64, len(descriptors))}
		id.Coefs[i] = 1
		id.Ratios[i] = 1
		R.index[d] = len(R.rels)
		R.rels = append(R.rels, id)
	}
	for _, l := range rels {
		if len(l.Coefs) != len(descriptors) {
			return nil, newError(ErrConfiguration, "NewEadsRelation", "species %q has %d coefficients for %d descriptors", l.Species, len(l.Coefs), len(descriptors))
		}
		if i, ok := R.index[l.Species]; ok {
			if i < len(descriptors) {
				//a fitted relation for a descriptor overrides the trivial one.
				R.rels[i] = l.copy()
				continue
			}
			return nil, newError(ErrConfiguration, "NewEadsRelation", "species %q given more than once", l.Species)
		}
		R.index[l.Species] = len(R.rels)
		R.rels = append(R.rels, l.copy())
	}
	return R, nil
}

// Dim returns the number of descriptors.
func (R *EadsRelation) Dim() int { return len(R.descriptors) }

// Descriptors returns a copy of the descriptor names.
func (R *EadsRelation) Descriptors() []string { return append([]string(nil), R.descriptors...) }

// Species returns the names of all the species with a relation, descriptors first.
func (R *EadsRelation) Species() []string {
	ret := make([]string, len(R.rels))
	for i, v := range R.rels {
		ret[i] = v.Species
	}
	return ret
}

// Relation returns a copy of the relation for species, and false if there is none.
func (R *EadsRelation) Relation(species string) (LinearRelation, bool) {
	i, ok := R.index[species]
	if !ok {
		return LinearRelation{}, false
	}
	return R.rels[i].copy(), true
}

// IsDescriptor returns true if name is one of the descriptors.
func (R *EadsRelation) IsDescriptor(name string) bool {
	i, ok := R.index[name]
	return ok && i < len(R.descriptors)
}

// Scores returns the coefficient of determination of each fitted
// (i.e. non-descriptor) species.
func (R *EadsRelation) Scores() map[string]float64 {
	ret := make(map[string]float64, len(R.rels))
	for _, v := range R.rels[len(R.descriptors):] {
		ret[v.Species] = v.R2
	}
	return ret
}

// WriteScores writes the name and coefficient of determination of each
// fitted species, one per line.
func (R *EadsRelation) WriteScores(w io.Writer) error {
	for _, v := range R.rels[len(R.descriptors):] {
		if _, err := fmt.Fprintf(w, "%-12s %8.4f\n", v.Species, v.R2); err != nil {
			return err
		}
	}
	return nil
}

func (R *EadsRelation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s", "")
	for _, d := range R.descriptors {
		fmt.Fprintf(&b, " %10s", d)
	}
	fmt.Fprintf(&b, " %10s %8s\n", "const", "R2")
	for _, v := range R.rels {
		fmt.Fprintf(&b, "%-12s", v.Species)
		for _, c := range v.Coefs {
			fmt.Fprintf(&b, " %10.4f", c)
		}
		fmt.Fprintf(&b, " %10.4f %8.4f\n", v.Intercept, v.R2)
	}
	return b.String()
}

type eadsRelationJSON struct {
	Descriptors []string         `json:"descriptors"`
	Relations   []LinearRelation `json:"relations"`
}

func (R *EadsRelation) MarshalJSON() ([]byte, error) {
	return json.Marshal(eadsRelationJSON{Descriptors: R.descriptors, Relations: R.rels})
}

func (R *EadsRelation) UnmarshalJSON(b []byte) error {
	var a eadsRelationJSON
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	r, err := NewEadsRelation(a.Descriptors, a.Relations)
	if err != nil {
		return errDecorate(err, "EadsRelation.UnmarshalJSON")
	}
	*R = *r
	return nil
}
