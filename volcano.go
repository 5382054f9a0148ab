/*
 * volcano.go, part of catscaling.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxAxisPoints is the largest number of points allowed in an Axis.
const MaxAxisPoints = 10000

// Axis is a range of descriptor values: N evenly spaced points from Min to Max,
// both included. With N==1 the only point is Min.
type Axis struct {
	Min float64
	Max float64
	N   int
}

// AxisFromSlice builds an axis from a [min, max, point_count] slice.
func AxisFromSlice(s []float64) (Axis, error) {
	if len(s) != 3 {
		return Axis{}, newError(ErrConfiguration, "AxisFromSlice", "an axis is given as [min, max, points], got %d values", len(s))
	}
	if s[2] != math.Trunc(s[2]) {
		return Axis{}, newError(ErrConfiguration, "AxisFromSlice", "non-integer number of points %g", s[2])
	}
	if s[2] < 1 || s[2] > MaxAxisPoints {
		return Axis{}, newError(ErrConfiguration, "AxisFromSlice", "number of points %g out of range [1, %d]", s[2], MaxAxisPoints)
	}
	A := Axis{Min: s[0], Max: s[1], N: int(s[2])}
	return A, A.check("AxisFromSlice")
}

func (A Axis) check(caller string) error {
	if A.N < 1 || A.N > MaxAxisPoints {
		return newError(ErrConfiguration, caller, "an axis needs between 1 and %d points, got %d", MaxAxisPoints, A.N)
	}
	if math.IsNaN(A.Min) || math.IsNaN(A.Max) || math.IsInf(A.Min, 0) || math.IsInf(A.Max, 0) {
		return newError(ErrConfiguration, caller, "non-finite axis limits")
	}
	if A.Max < A.Min {
		return newError(ErrConfiguration, caller, "axis maximum %g smaller than minimum %g", A.Max, A.Min)
	}
	return nil
}

// Values returns the points of the axis.
func (A Axis) Values() []float64 {
	if A.N == 1 {
		return []float64{A.Min}
	}
	return floats.Span(make([]float64, A.N), A.Min, A.Max)
}

// Volcano is the energy change of the rate-determining step of a reaction
// over a grid of values of its two descriptors. It implements the
// GridXYZ interface of gonum/plot, with the first descriptor in the columns.
type Volcano struct {
	descriptors []string
	x, y        []float64
	z           *mat.Dense //rows: y, cols: x
	steps       [][]int    //index of the limiting step at each point
}

// NewVolcano evaluates the largest step energy change of the relation D, which must have exactly
// two descriptors, at each point of the grid given by the x (first descriptor) and y axes.
func NewVolcano(D *DeltaERelation, x, y Axis) (*Volcano, error) {
	if D == nil {
		return nil, newError(ErrConfiguration, "NewVolcano", "nil relation")
	}
	if D.Dim() != 2 {
		return nil, newError(ErrConfiguration, "NewVolcano", "a volcano needs 2 descriptors, the relation has %d", D.Dim())
	}
	if err := x.check("NewVolcano"); err != nil {
		return nil, err
	}
	if err := y.check("NewVolcano"); err != nil {
		return nil, err
	}
	V := &Volcano{descriptors: D.Descriptors(), x: x.Values(), y: y.Values()}
	nx, ny := len(V.x), len(V.y)
	V.z = mat.NewDense(ny, nx, nil)
	V.steps = make([][]int, ny)
	//each row of points has the form [x, y, 1], so that one product with the transposed
	//coefficients gives the energy change of every step at every point in the row.
	points := mat.NewDense(nx, 3, nil)
	points.SetCol(0, V.x)
	de := mat.NewDense(nx, D.Len(), nil)
	ones := make([]float64, nx)
	floats.AddConst(1, ones)
	points.SetCol(2, ones)
	yrow := make([]float64, nx)
	for r, yv := range V.y {
		for i := range yrow {
			yrow[i] = yv
		}
		points.SetCol(1, yrow)
		de.Mul(points, D.coefs.T())
		V.steps[r] = make([]int, nx)
		for c := 0; c < nx; c++ {
			row := de.RawRowView(c)
			i := floats.MaxIdx(row)
			V.steps[r][c] = i
			V.z.Set(r, c, row[i])
		}
	}
	return V, nil
}

// Descriptors returns the names of the descriptors on the x and y axes.
func (V *Volcano) Descriptors() (string, string) { return V.descriptors[0], V.descriptors[1] }

// Dims returns the number of columns (x values) and rows (y values) of the grid.
func (V *Volcano) Dims() (c, r int) { return len(V.x), len(V.y) }

// Z returns the largest step energy change at column c and row r.
func (V *Volcano) Z(c, r int) float64 { return V.z.At(r, c) }

// X returns the value of the first descriptor for column c.
func (V *Volcano) X(c int) float64 { return V.x[c] }

// Y returns the value of the second descriptor for row r.
func (V *Volcano) Y(r int) float64 { return V.y[r] }

// LimitingStep returns the index of the rate-determining step at column c and row r.
func (V *Volcano) LimitingStep(c, r int) int { return V.steps[r][c] }

// Values returns a copy of the grid values, one slice per row (y value).
func (V *Volcano) Values() [][]float64 {
	r, _ := V.z.Dims()
	ret := make([][]float64, r)
	for i := range ret {
		ret[i] = mat.Row(nil, i, V.z)
	}
	return ret
}

// Optimum returns the descriptor values where the largest step energy change
// is smallest (the top of the volcano), and that energy change.
func (V *Volcano) Optimum() (x, y, z float64) {
	z = math.Inf(1)
	for r := range V.y {
		row := V.z.RawRowView(r)
		c := floats.MinIdx(row)
		if row[c] < z {
			x, y, z = V.x[c], V.y[r], row[c]
		}
	}
	return x, y, z
}

// Range returns the smallest and largest values in the grid.
func (V *Volcano) Range() (min, max float64) {
	return mat.Min(V.z), mat.Max(V.z)
}
