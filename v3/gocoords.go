/*
 * gocoords.go, part of protein-utils.
 *
 * Copyright 2024 The protein-utils authors
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is one vector of a Matrix.
type Point [3]float64

// FromPoints returns a new Matrix with one vector per point, in order.
func FromPoints(p []Point) *Matrix {
	data := make([]float64, 0, 3*len(p))
	for _, v := range p {
		data = append(data, v[0], v[1], v[2])
	}
	m, _ := NewMatrix(data) //can't fail, the length is a multiple of 3
	return m
}

// Point returns a copy of the ith vector of F.
func (F *Matrix) Point(i int) Point {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	var p Point
	copy(p[:], F.RawRowView(i))
	return p
}

// Dist returns the euclidean distance between the ith vector of F and
// the jth vector of B.
func (F *Matrix) Dist(i int, B *Matrix, j int) float64 {
	if i < 0 || i >= F.NVecs() || j < 0 || j >= B.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return floats.Distance(F.RawRowView(i), B.RawRowView(j), 2)
}

// DistTo returns the euclidean distance between the ith vector of F and p.
func (F *Matrix) DistTo(i int, p Point) float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return floats.Distance(F.RawRowView(i), p[:], 2)
}

// AnyWithin returns the index of the first vector of F which is strictly closer
// than cutoff to p, or -1 if there is none.
func (F *Matrix) AnyWithin(p Point, cutoff float64) int {
	for i := 0; i < F.NVecs(); i++ {
		if F.DistTo(i, p) < cutoff {
			return i
		}
	}
	return -1
}

// Centroid returns the geometric center of the vectors in F.
// It panics if F is empty.
func (F *Matrix) Centroid() Point {
	n := F.NVecs()
	if n == 0 {
		panic(ErrEmpty)
	}
	var c Point
	for i := 0; i < n; i++ {
		floats.Add(c[:], F.RawRowView(i))
	}
	floats.Scale(1/float64(n), c[:])
	return c
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}
