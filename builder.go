/*
 * builder.go, part of catscaling.
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

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tolerance for the sum of mixing ratios to be considered 1.
const ratioTol = 1e-4

// Builder fits scaling relations from a table of adsorption energies.
//
// There are two ways of building a relation. In the traditional one
// (Peterson and Nørskov) the species are split into groups, each with a
// nominated descriptor, and every species is approximated by its group's descriptor.
// In the adaptive one, every species is approximated by a mixture of two descriptors,
// with the mixing ratio that gives the best fit for that species.
// Both produce relations of the same form.
//
// A sample is used in the fit of a species only if it has values for that species
// and for all the descriptors involved. This is decided independently for each species,
// so different species in one group can be fitted with different sets of samples.
type Builder struct {
	data *Eads
}

// NewBuilder returns a Builder for the table E.
func NewBuilder(E *Eads) (*Builder, error) {
	if E == nil {
		return nil, newError(ErrConfiguration, "NewBuilder", "nil table")
	}
	return &Builder{data: E}, nil
}

func (B *Builder) checkRatios(caller string, descriptors []string, ratios []float64) error {
	if len(descriptors) != len(ratios) || len(descriptors) == 0 {
		return newError(ErrConfiguration, caller, "%d descriptors and %d ratios", len(descriptors), len(ratios))
	}
	if math.Abs(floats.Sum(ratios)-1) > ratioTol {
		return newError(ErrConfiguration, caller, "ratios should sum to 1, got %g", floats.Sum(ratios))
	}
	for _, d := range descriptors {
		if !B.data.HasSpecies(d) {
			return newError(ErrConfiguration, caller, "descriptor %q not in table", d)
		}
	}
	return nil
}

// Composite returns the composite descriptor built by mixing the given descriptors with the
// given ratios, which must add up to 1. For instance, with ratios 0.2 and 0.8,
// the composite is 0.2*A + 0.8*B. Samples missing any descriptor get NaN.
func (B *Builder) Composite(descriptors []string, ratios []float64) ([]float64, error) {
	if err := B.checkRatios("Builder.Composite", descriptors, ratios); err != nil {
		return nil, err
	}
	ret := make([]float64, B.data.Len())
	for i, d := range descriptors {
		col, _ := B.data.Column(d)
		floats.AddScaled(ret, ratios[i], col) //NaN propagates, which is what we want.
	}
	return ret, nil
}

// fit regresses species against the composite of descriptors with the given ratios.
// It returns the coefficient for each descriptor (the slope times the ratio),
// the intercept, the coefficient of determination, and the number of samples used.
func (B *Builder) fit(species string, descriptors []string, ratios []float64) ([]float64, float64, float64, int, error) {
	if !B.data.HasSpecies(species) {
		return nil, 0, 0, 0, newError(ErrConfiguration, "Builder.fit", "species %q not in table", species)
	}
	if err := B.checkRatios("Builder.fit", descriptors, ratios); err != nil {
		return nil, 0, 0, 0, err
	}
	rows := B.data.complete(append([]string{species}, descriptors...)...)
	if len(rows) < 2 {
		return nil, 0, 0, len(rows), newError(ErrInsufficientData, "Builder.fit", "species %q has %d complete samples, at least 2 are needed", species, len(rows))
	}
	comp, _ := B.Composite(descriptors, ratios)
	target, _ := B.data.Column(species)
	x := make([]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = comp[r]
		y[i] = target[r]
	}
	if floats.Max(x) == floats.Min(x) {
		return nil, 0, 0, len(rows), newError(ErrInsufficientData, "Builder.fit", "descriptor for species %q is constant over the %d samples used", species, len(rows))
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)
	if math.IsNaN(r2) {
		//y is constant, and a line with zero slope reproduces it exactly.
		r2 = 1
	}
	coefs := make([]float64, len(ratios))
	floats.ScaleTo(coefs, beta, ratios)
	return coefs, alpha, r2, len(rows), nil
}

// Traditional builds the relation with the traditional method: each dependent
// species in G is fitted against the descriptor of its group.
func (B *Builder) Traditional(G *Groups) (*EadsRelation, error) {
	if G == nil {
		return nil, newError(ErrConfiguration, "Builder.Traditional", "nil groups")
	}
	if err := G.Validate(B.data); err != nil {
		return nil, errDecorate(err, "Builder.Traditional")
	}
	dim := G.Len()
	var rels []LinearRelation
	for i, d := range G.descriptors {
		for _, s := range G.members[i] {
			c, icept, r2, n, err := B.fit(s, []string{d}, []float64{1})
			if err != nil {
				return nil, errDecorate(err, "Builder.Traditional")
			}
			rel := LinearRelation{Species: s, Coefs: make([]float64, dim), Intercept: icept, R2: r2, Ratios: make([]float64, dim), N: n}
			rel.Coefs[i] = c[0]
			rel.Ratios[i] = 1
			logger.Debug("fitted scaling relation", zap.String("species", s), zap.String("descriptor", d),
				zap.Float64("slope", c[0]), zap.Float64("intercept", icept), zap.Float64("r2", r2), zap.Int("samples", n))
			rels = append(rels, rel)
		}
	}
	R, err := NewEadsRelation(G.descriptors, rels)
	if err != nil {
		return nil, errDecorate(err, "Builder.Traditional")
	}
	return R, nil
}

// mixRatios returns the ratios for the first descriptor to be tried with
// a step of step percent: 0, step, 2*step... and 1.
func mixRatios(step float64) []float64 {
	s := step / 100
	ret := make([]float64, 0, int(1/s)+2)
	for i := 0; float64(i)*s <= 1+1e-9; i++ {
		ret = append(ret, math.Min(float64(i)*s, 1))
	}
	if ret[len(ret)-1] < 1 {
		ret = append(ret, 1)
	}
	return ret
}

// Adaptive builds the relation with the adaptive method. For each species in the table
// other than the two descriptors, the mixing ratio of the descriptors is scanned
// from 0 to 1 in steps of step percent, and the ratio giving the highest coefficient of
// determination is used (the lowest such ratio, in case of ties).
func (B *Builder) Adaptive(descriptors []string, step float64) (*EadsRelation, error) {
	if len(descriptors) != 2 {
		return nil, newError(ErrConfiguration, "Builder.Adaptive", "the adaptive method needs 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0] == descriptors[1] {
		return nil, newError(ErrConfiguration, "Builder.Adaptive", "duplicated descriptor %q", descriptors[0])
	}
	if math.IsNaN(step) || step <= 0 || step >= 100 {
		return nil, newError(ErrConfiguration, "Builder.Adaptive", "illegal step length %g, it should be a percentage in (0,100)", step)
	}
	if step > 5 {
		logger.Warn("large step length may harm accuracy", zap.Float64("step", step))
	} else if step < 0.1 {
		logger.Warn("small step length may slow down searching", zap.Float64("step", step))
	}
	for _, d := range descriptors {
		if !B.data.HasSpecies(d) {
			return nil, newError(ErrConfiguration, "Builder.Adaptive", "descriptor %q not in table", d)
		}
	}
	candidates := mixRatios(step)
	var rels []LinearRelation
	for _, s := range B.data.species {
		if s == descriptors[0] || s == descriptors[1] {
			continue
		}
		best := math.Inf(-1)
		bestratio := math.NaN()
		for _, r := range candidates {
			_, _, r2, n, err := B.fit(s, descriptors, []float64{r, 1 - r})
			if err != nil {
				if n < 2 {
					//no ratio can do better than this.
					return nil, errDecorate(err, "Builder.Adaptive")
				}
				continue
			}
			if r2 > best {
				best = r2
				bestratio = r
			}
		}
		if math.IsNaN(bestratio) {
			return nil, newError(ErrInsufficientData, "Builder.Adaptive", "no mixing ratio gives a usable fit for species %q", s)
		}
		ratios := []float64{bestratio, 1 - bestratio}
		c, icept, r2, n, err := B.fit(s, descriptors, ratios)
		if err != nil {
			return nil, errDecorate(err, "Builder.Adaptive")
		}
		logger.Debug("fitted adaptive scaling relation", zap.String("species", s), zap.Float64("ratio", bestratio), zap.Float64("r2", r2))
		rels = append(rels, LinearRelation{Species: s, Coefs: c, Intercept: icept, R2: r2, Ratios: ratios, N: n})
	}
	R, err := NewEadsRelation(descriptors, rels)
	if err != nil {
		return nil, errDecorate(err, "Builder.Adaptive")
	}
	return R, nil
}
