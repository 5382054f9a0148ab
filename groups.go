/*
 * groups.go, part of catscaling.
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

import "strings"

// Groups assigns species to descriptors. For the CO2 to CH4 reduction, for instance,
// one could have a C-centered group with *CO as descriptor, and an O-centered one with *OH:
//
//	*CO: *COOH, *CHO, *CH2O
//	*OH: *OCH3, *O
//
// Each dependent species belongs to exactly one group. A group can have no members,
// which is what the adaptive method needs, as it only uses the descriptors.
type Groups struct {
	descriptors []string
	members     [][]string
	owner       map[string]int //dependent species -> group
}

// NewGroups returns a set of groups with the given descriptors. members must have either
// one element (possibly nil) per descriptor, or be nil, in which case all groups are empty.
func NewGroups(descriptors []string, members [][]string) (*Groups, error) {
	if len(descriptors) == 0 {
		return nil, newError(ErrConfiguration, "NewGroups", "no descriptors given")
	}
	if members != nil && len(members) != len(descriptors) {
		return nil, newError(ErrConfiguration, "NewGroups", "%d descriptors but %d groups of members", len(descriptors), len(members))
	}
	G := &Groups{
		descriptors: append([]string(nil), descriptors...),
		members:     make([][]string, len(descriptors)),
		owner:       make(map[string]int),
	}
	isdesc := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if strings.TrimSpace(d) == "" {
			return nil, newError(ErrConfiguration, "NewGroups", "empty descriptor name")
		}
		if isdesc[d] {
			return nil, newError(ErrConfiguration, "NewGroups", "descriptor %q given more than once", d)
		}
		isdesc[d] = true
	}
	if members == nil {
		return G, nil
	}
	for i, m := range members {
		for _, s := range m {
			if isdesc[s] {
				return nil, newError(ErrConfiguration, "NewGroups", "descriptor %q listed as a member of the group of %q", s, descriptors[i])
			}
			if j, ok := G.owner[s]; ok {
				return nil, newError(ErrConfiguration, "NewGroups", "species %q is in the groups of both %q and %q", s, descriptors[j], descriptors[i])
			}
			G.owner[s] = i
		}
		G.members[i] = append([]string(nil), m...)
	}
	return G, nil
}

// Len returns the number of groups (i.e. of descriptors).
func (G *Groups) Len() int { return len(G.descriptors) }

// Descriptors returns a copy of the descriptor names.
func (G *Groups) Descriptors() []string { return append([]string(nil), G.descriptors...) }

// Members returns a copy of the dependent species of the i-th group.
func (G *Groups) Members(i int) []string { return append([]string(nil), G.members[i]...) }

// Descriptor returns the descriptor of the group that species belongs to, and false
// if species is not in any group.
func (G *Groups) Descriptor(species string) (string, bool) {
	i, ok := G.owner[species]
	if !ok {
		return "", false
	}
	return G.descriptors[i], true
}

// Validate checks that every species in G is a column of the table E.
func (G *Groups) Validate(E *Eads) error {
	if E == nil {
		return newError(ErrConfiguration, "Groups.Validate", "nil table")
	}
	var absent []string
	for i, d := range G.descriptors {
		if !E.HasSpecies(d) {
			absent = append(absent, d)
		}
		for _, s := range G.members[i] {
			if !E.HasSpecies(s) {
				absent = append(absent, s)
			}
		}
	}
	if len(absent) > 0 {
		return newError(ErrConfiguration, "Groups.Validate", "species not in the table: %s", strings.Join(absent, ", "))
	}
	return nil
}
