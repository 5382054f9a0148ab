/*
 * eadscsv.go, part of catscaling.
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
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// strings taken as a missing value in a table.
var missingMarks = map[string]bool{"": true, "nan": true, "na": true, "n/a": true, "-": true}

// ReadEadsCSV reads a table of adsorption energies in comma-separated format.
// The first line contains the species names, and the first column, the sample names.
// The first field of the first line is ignored. Empty fields, "-", "NA" and "NaN" are
// taken as missing values. Lines starting with '#' are ignored.
func ReadEadsCSV(r io.Reader) (*Eads, error) {
	return readEadsDelim(r, ',')
}

// ReadEadsDelim is like ReadEadsCSV, but the fields are separated by sep.
func ReadEadsDelim(r io.Reader, sep rune) (*Eads, error) {
	return readEadsDelim(r, sep)
}

func readEadsDelim(r io.Reader, sep rune) (*Eads, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newError(ErrParse, "ReadEadsCSV", "empty table")
		}
		return nil, newError(ErrParse, "ReadEadsCSV", "reading header: %v", err)
	}
	if len(header) < 2 {
		return nil, newError(ErrParse, "ReadEadsCSV", "the header has no species")
	}
	species := make([]string, 0, len(header)-1)
	for _, v := range header[1:] {
		species = append(species, strings.TrimSpace(v))
	}
	var samples []string
	var data [][]float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(ErrParse, "ReadEadsCSV", "%v", err)
		}
		row := make([]float64, len(species))
		for j, field := range rec[1:] {
			field = strings.TrimSpace(field)
			if missingMarks[strings.ToLower(field)] {
				row[j] = math.NaN()
				continue
			}
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, newError(ErrParse, "ReadEadsCSV", "line %d, species %s: can't read %q as a number", line, species[j], field)
			}
		}
		samples = append(samples, strings.TrimSpace(rec[0]))
		data = append(data, row)
	}
	E, err := NewEads(samples, species, data)
	if err != nil {
		return nil, errDecorate(err, "ReadEadsCSV")
	}
	return E, nil
}

// EadsFromFile reads a table of adsorption energies from the file name.
// Files ending in ".tsv" are taken as tab-separated, everything else as comma-separated.
func EadsFromFile(name string) (*Eads, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(ErrConfiguration, "EadsFromFile", "%v", err)
	}
	defer f.Close()
	sep := ','
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		sep = '\t'
	}
	E, err := readEadsDelim(f, sep)
	if err != nil {
		return nil, errDecorate(err, "EadsFromFile")
	}
	return E, nil
}
