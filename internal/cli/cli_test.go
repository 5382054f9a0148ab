/*
 * cli_test.go, part of catscaling.
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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	scaling "github.com/rmera/catscaling"
	"github.com/rmera/catscaling/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJob(Te *testing.T) string {
	Te.Helper()
	dir := Te.TempDir()
	data, err := os.ReadFile(filepath.Join("..", "..", "test", "energies.csv"))
	require.NoError(Te, err)
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "energies.csv"), data, 0o644))
	c := config.Default()
	c.RelationOut = "relation.json.gz"
	c.Volcano.X = []float64{-2, 0, 20}
	c.Volcano.Y = []float64{-1.5, 1, 20}
	f, err := os.Create(filepath.Join(dir, "catscaling.yaml"))
	require.NoError(Te, err)
	require.NoError(Te, c.WriteYAML(f))
	require.NoError(Te, f.Close())
	return dir
}

func run(Te *testing.T, args ...string) string {
	Te.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(Te, Execute())
	return out.String()
}

func TestCommands(Te *testing.T) {
	dir := writeJob(Te)
	job := filepath.Join(dir, "catscaling.yaml")

	out := run(Te, "--config", job, "fit")
	assert.Contains(Te, out, "*COOH")
	assert.Contains(Te, out, "*OCH3")
	R, err := scaling.LoadRelation(filepath.Join(dir, "relation.json.gz"))
	require.NoError(Te, err)
	assert.Equal(Te, []string{"*CO", "*OH"}, R.Descriptors())

	out = run(Te, "--config", job, "volcano")
	assert.Contains(Te, out, "optimum:")
	_, err = os.Stat(filepath.Join(dir, "volcano.png"))
	assert.NoError(Te, err)

	out = run(Te, "--config", job, "profile", "Ni@C2N", "Pt@SiO2")
	assert.Contains(Te, out, "Ni@C2N: 0.000")

	out = run(Te, "version")
	assert.Contains(Te, out, Version)
}

// Paths taken from one job file must not be reused by the next job.
func TestCommandsTwoJobs(Te *testing.T) {
	first := writeJob(Te)
	second := writeJob(Te)
	for _, dir := range []string{first, second} {
		run(Te, "--config", filepath.Join(dir, "catscaling.yaml"), "fit")
		_, err := os.Stat(filepath.Join(dir, "relation.json.gz"))
		assert.NoError(Te, err, "relation of the job in %s", dir)
	}
	for _, dir := range []string{first, second} {
		run(Te, "--config", filepath.Join(dir, "catscaling.yaml"), "volcano")
		_, err := os.Stat(filepath.Join(dir, "volcano.png"))
		assert.NoError(Te, err, "volcano of the job in %s", dir)
	}
	assert.Empty(Te, fitOut)
	assert.Empty(Te, volcanoOut)
}

func TestSampleEnergies(Te *testing.T) {
	E, err := scaling.NewEads([]string{"s1"}, []string{"*A", "*B"}, [][]float64{{-1, 2}})
	require.NoError(Te, err)
	e, err := sampleEnergies(E, nil, "s1")
	require.NoError(Te, err)
	assert.Equal(Te, map[string]float64{"*A": -1, "*B": 2}, e)
	_, err = sampleEnergies(E, nil, "s2")
	assert.Error(Te, err)

	R, err := scaling.NewEadsRelation([]string{"*A"}, []scaling.LinearRelation{{Species: "*C", Coefs: []float64{2}, Intercept: 1}})
	require.NoError(Te, err)
	e, err = sampleEnergies(E, R, "s1")
	require.NoError(Te, err)
	assert.Equal(Te, map[string]float64{"*A": -1, "*C": -1}, e)
}
