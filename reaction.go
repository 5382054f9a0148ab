/*
 * reaction.go, part of catscaling.
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
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Term is a species with its stoichiometric number in a reaction step.
type Term struct {
	Species
	Coef float64
}

func (T Term) String() string {
	if T.Coef == 1 {
		return T.Name
	}
	return strconv.FormatFloat(T.Coef, 'g', -1, 64) + T.Name
}

// ReactionStep is an elementary step of a surface reaction.
type ReactionStep struct {
	Reactants []Term
	Products  []Term
}

func (R ReactionStep) String() string {
	side := func(t []Term) string {
		s := make([]string, len(t))
		for i, v := range t {
			s[i] = v.String()
		}
		return strings.Join(s, " + ")
	}
	return side(R.Reactants) + " -> " + side(R.Products)
}

var termRe = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)?\s*(\S.*)$`)

// ParseStep parses a reaction step of the form "*CO2 + H++e- -> *COOH". Terms on each
// side are separated by a "+" with spaces on both sides, so "H++e-" is a single species.
// Each term can start with a stoichiometric number ("2H2O_g") and carry an inline
// energy (see ParseSpecies). Species repeated on one side are merged.
func ParseStep(line string, refs map[string]RefEnergy) (ReactionStep, error) {
	var R ReactionStep
	if err := checkParens(line); err != nil {
		return R, newError(ErrParse, "ParseStep", "%q: %v", line, err)
	}
	sides := splitTopLevel(line, "->", false)
	if len(sides) != 2 {
		return R, newError(ErrParse, "ParseStep", "%q: a step needs exactly one '->', found %d", line, len(sides)-1)
	}
	var err error
	R.Reactants, err = parseSide(sides[0], refs)
	if err != nil {
		return R, errDecorate(err, "ParseStep")
	}
	R.Products, err = parseSide(sides[1], refs)
	if err != nil {
		return R, errDecorate(err, "ParseStep")
	}
	return R, nil
}

func parseSide(side string, refs map[string]RefEnergy) ([]Term, error) {
	if strings.TrimSpace(side) == "" {
		return nil, newError(ErrParse, "parseSide", "empty side in reaction step")
	}
	var ret []Term
	index := make(map[string]int)
	for _, t := range splitTopLevel(side, "+", true) {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, newError(ErrParse, "parseSide", "empty term in %q", side)
		}
		m := termRe.FindStringSubmatch(t)
		if m == nil {
			return nil, newError(ErrParse, "parseSide", "malformed term %q", t)
		}
		coef := 1.0
		if m[1] != "" {
			var err error
			coef, err = strconv.ParseFloat(m[1], 64)
			if err != nil || coef <= 0 {
				return nil, newError(ErrParse, "parseSide", "bad stoichiometric number in %q", t)
			}
		}
		S, err := ParseSpecies(m[2], refs)
		if err != nil {
			return nil, errDecorate(err, "parseSide")
		}
		if i, ok := index[S.Name]; ok {
			ret[i].Coef += coef
			continue
		}
		index[S.Name] = len(ret)
		ret = append(ret, Term{Species: S, Coef: coef})
	}
	return ret, nil
}

func checkParens(s string) error {
	var depth int
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 || depth > 1 {
			return strconv.ErrSyntax
		}
	}
	if depth != 0 {
		return strconv.ErrSyntax
	}
	return nil
}

// splitTopLevel splits s at the occurrences of sep that are not inside
// parentheses. If spaced is true, only occurrences with white space on both sides count.
func splitTopLevel(s, sep string, spaced bool) []string {
	var ret []string
	var depth, last int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			continue
		case ')':
			depth--
			continue
		}
		if depth != 0 || !strings.HasPrefix(s[i:], sep) {
			continue
		}
		if spaced {
			if i == 0 || i+len(sep) >= len(s) {
				continue
			}
			if !unicode.IsSpace(rune(s[i-1])) || !unicode.IsSpace(rune(s[i+len(sep)])) {
				continue
			}
		}
		ret = append(ret, s[last:i])
		last = i + len(sep)
		i += len(sep) - 1
	}
	return append(ret, s[last:])
}

// Reaction is a surface reaction: an ordered sequence of elementary steps.
type Reaction struct {
	steps []ReactionStep
}

// NewReaction returns a reaction with the given steps, of which there must be at least one.
func NewReaction(steps []ReactionStep) (*Reaction, error) {
	if len(steps) == 0 {
		return nil, newError(ErrParse, "NewReaction", "a reaction needs at least one step")
	}
	R := &Reaction{steps: make([]ReactionStep, len(steps))}
	for i, s := range steps {
		R.steps[i] = ReactionStep{
			Reactants: append([]Term(nil), s.Reactants...),
			Products:  append([]Term(nil), s.Products...),
		}
	}
	return R, nil
}

// ParseReaction parses a reaction with one step per line (see ParseStep).
// Blank lines, and lines starting with '#', are ignored.
func ParseReaction(text string, refs map[string]RefEnergy) (*Reaction, error) {
	var steps []ReactionStep
	sc := bufio.NewScanner(strings.NewReader(text))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := ParseStep(line, refs)
		if err != nil {
			return nil, errDecorate(err, "ParseReaction: line "+strconv.Itoa(n))
		}
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, newError(ErrParse, "ParseReaction", "%v", err)
	}
	R, err := NewReaction(steps)
	if err != nil {
		return nil, errDecorate(err, "ParseReaction")
	}
	return R, nil
}

// Len returns the number of steps in the reaction.
func (R *Reaction) Len() int { return len(R.steps) }

// Step returns a copy of the i-th step.
func (R *Reaction) Step(i int) ReactionStep {
	s := R.steps[i]
	return ReactionStep{
		Reactants: append([]Term(nil), s.Reactants...),
		Products:  append([]Term(nil), s.Products...),
	}
}

// Adsorbates returns the names of the adsorbed species (not counting empty sites)
// in the reaction, in order of appearance.
func (R *Reaction) Adsorbates() []string {
	var ret []string
	seen := make(map[string]bool)
	for _, s := range R.steps {
		for _, t := range append(append([]Term(nil), s.Reactants...), s.Products...) {
			if t.Adsorbed && !t.IsSite() && !seen[t.Name] {
				seen[t.Name] = true
				ret = append(ret, t.Name)
			}
		}
	}
	return ret
}

func (R *Reaction) String() string {
	s := make([]string, len(R.steps))
	for i, v := range R.steps {
		s[i] = v.String()
	}
	return strings.Join(s, "\n")
}

func termEnergy(T Term, eads map[string]float64) (float64, error) {
	if T.IsSite() {
		return 0, nil
	}
	e := T.Energy + T.Correction
	if T.Adsorbed {
		ads, ok := eads[T.Name]
		if !ok {
			return 0, newError(ErrMissingEnergy, "termEnergy", "no adsorption energy for species %q", T.Name)
		}
		e += ads
	}
	return T.Coef * e, nil
}

// StepEnergy returns the energy change of the i-th step, given the adsorption energies of
// the adsorbed species in the step. For a step *A + B -> *C + D, that is
//
//	(Eads_C + E_C + E_D) - (Eads_A + E_A + E_B)
//
// plus corrections, where E are the reference energies of the free species.
func (R *Reaction) StepEnergy(i int, eads map[string]float64) (float64, error) {
	if i < 0 || i >= len(R.steps) {
		return 0, newError(ErrConfiguration, "Reaction.StepEnergy", "step %d out of range", i)
	}
	var ret float64
	for _, t := range R.steps[i].Products {
		e, err := termEnergy(t, eads)
		if err != nil {
			return 0, errDecorate(err, "Reaction.StepEnergy")
		}
		ret += e
	}
	for _, t := range R.steps[i].Reactants {
		e, err := termEnergy(t, eads)
		if err != nil {
			return 0, errDecorate(err, "Reaction.StepEnergy")
		}
		ret -= e
	}
	return ret, nil
}

// Profile returns the energy of each state of the reaction relative to the initial
// state, given the adsorption energies of the adsorbed species. The first element
// is always 0, and there is one element per step after that.
func (R *Reaction) Profile(eads map[string]float64) ([]float64, error) {
	ret := make([]float64, len(R.steps)+1)
	for i := range R.steps {
		de, err := R.StepEnergy(i, eads)
		if err != nil {
			return nil, errDecorate(err, "Reaction.Profile")
		}
		ret[i+1] = ret[i] + de
	}
	return ret, nil
}
