/*
 * relfile.go, part of catscaling.
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
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// WriteRelation writes R to w as JSON.
func WriteRelation(w io.Writer, R *EadsRelation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return newError(err, "WriteRelation", "encoding relation")
	}
	return nil
}

// ReadRelation reads a relation written by WriteRelation from r.
func ReadRelation(r io.Reader) (*EadsRelation, error) {
	R := new(EadsRelation)
	if err := json.NewDecoder(r).Decode(R); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Decorate("ReadRelation")
			return nil, e
		}
		return nil, newError(ErrParse, "ReadRelation", "%v", err)
	}
	return R, nil
}

// compression returns the writer and reader constructors for the
// compression format implied by the extension of name, or nil for none.
func compression(name string) (func(io.Writer) (io.WriteCloser, error), func(io.Reader) (io.ReadCloser, error)) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return func(w io.Writer) (io.WriteCloser, error) {
				return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
			}, func(r io.Reader) (io.ReadCloser, error) {
				d, err := zstd.NewReader(r)
				if err != nil {
					return nil, err
				}
				return d.IOReadCloser(), nil
			}
	case strings.HasSuffix(name, ".gz"):
		return func(w io.Writer) (io.WriteCloser, error) {
				return gzip.NewWriterLevel(w, gzip.BestCompression)
			}, func(r io.Reader) (io.ReadCloser, error) {
				return gzip.NewReader(r)
			}
	}
	return nil, nil
}

// SaveRelation writes R to the file name. If name ends in ".zst" or ".gz", the file is
// compressed with zstd or gzip, respectively. If writing fails, the file is removed.
func SaveRelation(name string, R *EadsRelation) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return newError(err, "SaveRelation", "creating %s", name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(cerr, "SaveRelation", "closing %s", name)
		}
		if err != nil {
			os.Remove(name)
		}
	}()
	var w io.Writer = f
	newWriter, _ := compression(name)
	if newWriter != nil {
		var cw io.WriteCloser
		cw, err = newWriter(f)
		if err != nil {
			return newError(err, "SaveRelation", "compressing %s", name)
		}
		w = cw
		defer func() {
			if cerr := cw.Close(); cerr != nil && err == nil {
				err = newError(cerr, "SaveRelation", "compressing %s", name)
			}
		}()
	}
	return errDecorate(WriteRelation(w, R), "SaveRelation")
}

// LoadRelation reads a relation from a file written by SaveRelation.
func LoadRelation(name string) (*EadsRelation, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(err, "LoadRelation", "opening %s", name)
	}
	defer f.Close()
	var r io.Reader = f
	_, newReader := compression(name)
	if newReader != nil {
		cr, err := newReader(f)
		if err != nil {
			return nil, newError(ErrParse, "LoadRelation", "%v", err)
		}
		defer cr.Close()
		r = cr
	}
	R, err := ReadRelation(r)
	if err != nil {
		return nil, errDecorate(err, "LoadRelation")
	}
	return R, nil
}
