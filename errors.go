/*
 * errors.go, part of catscaling.
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
	"errors"
	"fmt"
	"strings"
)

// The kinds of error returned by this package. Every error returned
// is an *Error that unwraps to one of these, so they can be tested with errors.Is.
// Errors reading or writing files unwrap to the underlying I/O or encoding error instead.
var (
	//A species is absent from the data, a group is ill-formed, or some argument makes no sense.
	ErrConfiguration = errors.New("configuration error")
	//Not enough complete samples to fit a line.
	ErrInsufficientData = errors.New("insufficient data")
	//Malformed reaction or table.
	ErrParse = errors.New("parse error")
	//A species lacks the energy needed for a calculation.
	ErrMissingEnergy = errors.New("missing energy")
)

// Error is the error type for all the functions in this package.
// It keeps a list of the functions it went through ("decorations")
// and wraps one of the error kinds above, or an I/O error.
type Error struct {
	kind    error
	message string
	deco    []string
}

func newError(kind error, caller string, format string, a ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return fmt.Sprintf("catscaling: %v: %s", E.kind, E.message)
	}
	//The first decoration is the function where the error originated.
	return fmt.Sprintf("catscaling/%s: %v: %s", strings.Join(reverse(E.deco), "/"), E.kind, E.message)
}

// Unwrap returns the kind of the error.
func (E *Error) Unwrap() error { return E.kind }

// Decorate adds the name of a caller to the error, and returns the list of decorations.
// An empty string adds nothing.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Message returns the error message, without kind or decorations.
func (E *Error) Message() string { return E.message }

// errDecorate adds caller to err if err is an *Error,
// and returns err unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

func reverse(s []string) []string {
	r := make([]string, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
