/*
 * species.go, part of catscaling.
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
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Site is the token for a free adsorption site.
const Site = "*"

// Physical states recognized as suffixes of free species names, as in "H2O_g".
var states = map[string]bool{"g": true, "l": true, "s": true, "aq": true}

// RefEnergy is the reference energy of a species, plus an optional correction term
// (zero-point energy, solvation, entropy...). For an adsorbed species, Energy is that
// of the free species, so for *CO2 it would be the energy of CO2.
type RefEnergy struct {
	Energy     float64 `json:"energy" yaml:"energy"`
	Correction float64 `json:"correction" yaml:"correction"`
}

// Species is a species taking part in a surface reaction. Species with names starting with
// "*" are adsorbed, the rest are free species. Free species names can end in a physical state:
// "_g", "_l", "_s" or "_aq". The name "*" alone is an empty site.
type Species struct {
	Name     string
	Adsorbed bool
	State    string //empty if not given.
	RefEnergy
}

// IsSite returns true if the species is an empty adsorption site.
func (S Species) IsSite() bool { return S.Name == Site }

func (S Species) String() string { return S.Name }

var speciesRe = regexp.MustCompile(`^([^()\s]+)\s*(?:\(([^()]*)\))?$`)

// ParseSpecies parses a species token, such as "*CO2", "H2O_g" or "H++e-". The token can
// carry its energy and correction, as in "H2O_g(-14.22, 0.56)", or just its energy, as
// in "*CO(-14.8)". Otherwise, the energy is taken from refs, under the name of the species.
func ParseSpecies(token string, refs map[string]RefEnergy) (Species, error) {
	token = strings.TrimSpace(token)
	m := speciesRe.FindStringSubmatch(token)
	if m == nil {
		return Species{}, newError(ErrParse, "ParseSpecies", "malformed species %q", token)
	}
	S := Species{Name: m[1], Adsorbed: strings.HasPrefix(m[1], Site)}
	if !S.Adsorbed {
		if i := strings.LastIndex(S.Name, "_"); i > 0 && states[S.Name[i+1:]] {
			S.State = S.Name[i+1:]
		}
	}
	if S.IsSite() {
		if m[2] != "" {
			return Species{}, newError(ErrParse, "ParseSpecies", "an empty site can't have an energy: %q", token)
		}
		return S, nil
	}
	if strings.Contains(token, "(") {
		var err error
		S.RefEnergy, err = parseInlineEnergy(m[2])
		if err != nil {
			return Species{}, newError(ErrParse, "ParseSpecies", "species %q: %v", token, err)
		}
	} else {
		e, ok := refs[S.Name]
		if !ok {
			if strings.Contains(S.Name, "+") {
				return Species{}, newError(ErrMissingEnergy, "ParseSpecies", "no reference energy for species %q (terms must be separated by a '+' with spaces around it, as in \"*CO2 + H++e-\")", S.Name)
			}
			return Species{}, newError(ErrMissingEnergy, "ParseSpecies", "no reference energy for species %q", S.Name)
		}
		S.RefEnergy = e
	}
	if S.Energy >= 0 {
		logger.Warn("non-negative reference energy", zap.String("species", S.Name), zap.Float64("energy", S.Energy))
	}
	return S, nil
}

// parses "energy" or "energy, correction"
func parseInlineEnergy(s string) (RefEnergy, error) {
	var ret RefEnergy
	f := strings.Split(s, ",")
	if len(f) > 2 || strings.TrimSpace(s) == "" {
		return ret, &strconv.NumError{Func: "parseInlineEnergy", Num: s, Err: strconv.ErrSyntax}
	}
	var err error
	ret.Energy, err = strconv.ParseFloat(strings.TrimSpace(f[0]), 64)
	if err != nil {
		return ret, err
	}
	if len(f) == 2 {
		ret.Correction, err = strconv.ParseFloat(strings.TrimSpace(f[1]), 64)
	}
	return ret, err
}
