/*
 * config.go, part of catscaling.
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

// Package config reads the description of a scaling-relation job: the energy table to use,
// how to group species, the reaction to analyze, and the volcano grid.
package config

import (
	"fmt"
	"io"
	"strings"

	scaling "github.com/rmera/catscaling"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Methods for building relations.
const (
	Traditional = "traditional"
	Adaptive    = "adaptive"
)

// EnvPrefix is the prefix for environment variables overriding the configuration,
// as in CATSCALING_DATA.
const EnvPrefix = "CATSCALING"

// Group is a descriptor and the species approximated by it.
type Group struct {
	Descriptor string   `mapstructure:"descriptor" yaml:"descriptor"`
	Members    []string `mapstructure:"members" yaml:"members,omitempty"`
}

// Energy is the reference energy and correction of a species in the reaction.
// Energies are given as a list rather than a map, as viper lower-cases map keys.
type Energy struct {
	Species    string  `mapstructure:"species" yaml:"species"`
	Energy     float64 `mapstructure:"energy" yaml:"energy"`
	Correction float64 `mapstructure:"correction" yaml:"correction"`
}

// Volcano is the grid of descriptor values for a volcano plot, and where to draw it.
// Each axis is given as [min, max, points].
type Volcano struct {
	X      []float64 `mapstructure:"x" yaml:"x,flow"`
	Y      []float64 `mapstructure:"y" yaml:"y,flow"`
	Output string    `mapstructure:"output" yaml:"output"`
	Title  string    `mapstructure:"title" yaml:"title,omitempty"`
}

// Config is a complete job.
type Config struct {
	Data        string   `mapstructure:"data" yaml:"data"`
	Method      string   `mapstructure:"method" yaml:"method"`
	StepLength  float64  `mapstructure:"step_length" yaml:"step_length"`
	Groups      []Group  `mapstructure:"groups" yaml:"groups"`
	Reaction    string   `mapstructure:"reaction" yaml:"reaction,omitempty"`
	Energies    []Energy `mapstructure:"energies" yaml:"energies,omitempty"`
	Volcano     Volcano  `mapstructure:"volcano" yaml:"volcano"`
	RelationOut string   `mapstructure:"relation_out" yaml:"relation_out,omitempty"`
}

// SetDefaults registers the default values in v. Keys with a default can also be set from
// the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data", "")
	v.SetDefault("method", Traditional)
	v.SetDefault("step_length", 1.0)
	v.SetDefault("volcano.output", "volcano.png")
	v.SetDefault("volcano.title", "")
	v.SetDefault("relation_out", "")
}

// FromViper builds a configuration from the values in v, and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	c.Method = strings.ToLower(strings.TrimSpace(c.Method))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the YAML configuration file path. Environment variables
// with the CATSCALING_ prefix override the values in the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return FromViper(v)
}

func invalid(field, format string, a ...interface{}) error {
	return fmt.Errorf("config: %s: %s: %w", field, fmt.Sprintf(format, a...), scaling.ErrConfiguration)
}

// Validate checks that the configuration describes a job that can be run. It doesn't
// check the configuration against the energy table, which is done when the relation is built.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data) == "" {
		return invalid("data", "an energy table is required")
	}
	if len(c.Groups) == 0 {
		return invalid("groups", "at least one descriptor is required")
	}
	for i, g := range c.Groups {
		if strings.TrimSpace(g.Descriptor) == "" {
			return invalid(fmt.Sprintf("groups[%d].descriptor", i), "descriptor is required")
		}
	}
	switch c.Method {
	case Traditional:
	case Adaptive:
		if len(c.Groups) != 2 {
			return invalid("groups", "the adaptive method needs exactly 2 descriptors, got %d", len(c.Groups))
		}
		if c.StepLength <= 0 || c.StepLength >= 100 {
			return invalid("step_length", "must be in (0,100), got %g", c.StepLength)
		}
	default:
		return invalid("method", "unknown method %q, use %q or %q", c.Method, Traditional, Adaptive)
	}
	seen := make(map[string]bool, len(c.Energies))
	for i, e := range c.Energies {
		if strings.TrimSpace(e.Species) == "" {
			return invalid(fmt.Sprintf("energies[%d].species", i), "species is required")
		}
		if seen[e.Species] {
			return invalid(fmt.Sprintf("energies[%d].species", i), "species %q given more than once", e.Species)
		}
		seen[e.Species] = true
	}
	return nil
}

// Descriptors returns the descriptor of each group.
func (c *Config) Descriptors() []string {
	ret := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		ret[i] = g.Descriptor
	}
	return ret
}

// ScalingGroups returns the groups in the configuration.
func (c *Config) ScalingGroups() (*scaling.Groups, error) {
	members := make([][]string, len(c.Groups))
	for i, g := range c.Groups {
		members[i] = g.Members
	}
	return scaling.NewGroups(c.Descriptors(), members)
}

// RefEnergies returns the reference energies in the configuration, by species name.
func (c *Config) RefEnergies() map[string]scaling.RefEnergy {
	ret := make(map[string]scaling.RefEnergy, len(c.Energies))
	for _, e := range c.Energies {
		ret[e.Species] = scaling.RefEnergy{Energy: e.Energy, Correction: e.Correction}
	}
	return ret
}

// ParseReaction parses the reaction in the configuration, with its reference energies.
func (c *Config) ParseReaction() (*scaling.Reaction, error) {
	if strings.TrimSpace(c.Reaction) == "" {
		return nil, invalid("reaction", "no reaction given")
	}
	return scaling.ParseReaction(c.Reaction, c.RefEnergies())
}

// Axes returns the axes of the volcano grid.
func (c *Config) Axes() (scaling.Axis, scaling.Axis, error) {
	x, err := scaling.AxisFromSlice(c.Volcano.X)
	if err != nil {
		return x, x, fmt.Errorf("config: volcano.x: %w", err)
	}
	y, err := scaling.AxisFromSlice(c.Volcano.Y)
	if err != nil {
		return x, y, fmt.Errorf("config: volcano.y: %w", err)
	}
	return x, y, nil
}

// WriteYAML writes the configuration to w in YAML format.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads a configuration in YAML format from r, without looking at the environment.
func ReadYAML(r io.Reader) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("config: reading: %w", err)
	}
	return FromViper(v)
}
