/*
 * config_test.go, part of catscaling.
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

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	scaling "github.com/rmera/catscaling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJob = `data: energies.csv
method: Adaptive
step_length: 2.5
groups:
  - descriptor: "*CO"
  - descriptor: "*OH"
reaction: |
  *CO + H++e- -> *CHO
  *CHO + H++e- -> *OH(-7.7) + CH4_g
energies:
  - species: "*CO"
    energy: -14.8
    correction: 0.19
  - species: "*CHO"
    energy: -18.21
  - species: H++e-
    energy: -3.38
  - species: CH4_g
    energy: -24.05
    correction: 0.75
volcano:
  x: [-2, 1, 50]
  y: [-1.5, 0.5, 20]
`

func TestReadYAML(Te *testing.T) {
	c, err := ReadYAML(strings.NewReader(testJob))
	require.NoError(Te, err)
	assert.Equal(Te, Adaptive, c.Method)
	assert.Equal(Te, 2.5, c.StepLength)
	assert.Equal(Te, []string{"*CO", "*OH"}, c.Descriptors())
	assert.Equal(Te, "volcano.png", c.Volcano.Output, "default output")

	refs := c.RefEnergies()
	assert.Equal(Te, scaling.RefEnergy{Energy: -24.05, Correction: 0.75}, refs["CH4_g"])

	rxn, err := c.ParseReaction()
	require.NoError(Te, err)
	assert.Equal(Te, 2, rxn.Len())

	x, y, err := c.Axes()
	require.NoError(Te, err)
	assert.Equal(Te, scaling.Axis{Min: -2, Max: 1, N: 50}, x)
	assert.Equal(Te, 20, y.N)

	G, err := c.ScalingGroups()
	require.NoError(Te, err)
	assert.Equal(Te, 2, G.Len())
}

func TestDefaultRoundTrip(Te *testing.T) {
	d := Default()
	require.NoError(Te, d.Validate())
	var b bytes.Buffer
	require.NoError(Te, d.WriteYAML(&b))
	c, err := ReadYAML(&b)
	require.NoError(Te, err)
	assert.Equal(Te, d, c)

	rxn, err := c.ParseReaction()
	require.NoError(Te, err)
	assert.Equal(Te, 8, rxn.Len())
	assert.Equal(Te, []string{"*COOH", "*CO", "*CHO", "*CH2O", "*OCH3", "*O", "*OH"}, rxn.Adsorbates())
}

func TestValidate(Te *testing.T) {
	cases := map[string]func(c *Config){
		"no data":        func(c *Config) { c.Data = "" },
		"no groups":      func(c *Config) { c.Groups = nil },
		"empty group":    func(c *Config) { c.Groups[1].Descriptor = " " },
		"bad method":     func(c *Config) { c.Method = "magic" },
		"adaptive three": func(c *Config) { c.Method = Adaptive; c.Groups = append(c.Groups, Group{Descriptor: "*O"}) },
		"bad step":       func(c *Config) { c.Method = Adaptive; c.StepLength = 100 },
		"dup energy":     func(c *Config) { c.Energies = append(c.Energies, Energy{Species: "*CO"}) },
		"nameless":       func(c *Config) { c.Energies[0].Species = "" },
	}
	for name, f := range cases {
		c := Default()
		f(c)
		assert.ErrorIs(Te, c.Validate(), scaling.ErrConfiguration, name)
	}

	c := Default()
	c.Reaction = ""
	_, err := c.ParseReaction()
	assert.ErrorIs(Te, err, scaling.ErrConfiguration)
	c.Volcano.X = []float64{0, 1}
	_, _, err = c.Axes()
	assert.ErrorIs(Te, err, scaling.ErrConfiguration)
}

func TestLoadEnv(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "job.yaml")
	require.NoError(Te, os.WriteFile(path, []byte(testJob), 0o644))
	Te.Setenv("CATSCALING_DATA", "other.csv")
	Te.Setenv("CATSCALING_VOLCANO_OUTPUT", "v.svg")
	c, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "other.csv", c.Data)
	assert.Equal(Te, "v.svg", c.Volcano.Output)
	assert.Equal(Te, "*OH", c.Groups[1].Descriptor)

	_, err = Load(filepath.Join(Te.TempDir(), "nothere.yaml"))
	assert.Error(Te, err)
}
