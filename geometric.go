/*
 * geometric.go, part of protein-utils.
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

package protein

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point3 is a point in 3D space, in A.
type Point3 [3]float64

// Slice returns a new slice with the 3 coordinates.
func (P Point3) Slice() []float64 {
	return []float64{P[0], P[1], P[2]}
}

func (P Point3) String() string {
	return fmt.Sprintf("%6.3f %6.3f %6.3f", P[0], P[1], P[2])
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point3) float64 {
	return floats.Distance(a[:], b[:], 2)
}

// AtomDist returns the euclidean distance between two atoms. It has the
// signature the clustering functions expect for an element distance.
func AtomDist(a, b *Atom) float64 {
	return Dist(a.Coords, b.Coords)
}

// AtomPosition returns the coordinates of at. It has the signature the
// clustering functions expect for a position getter.
func AtomPosition(at *Atom) []float64 {
	return at.Position()
}

// Centroid returns the geometric center of the atoms in A. It panics for an empty set.
func Centroid(A Atomer) Point3 {
	if A.Len() == 0 {
		panic(ErrOutOfRange)
	}
	var c Point3
	for i := 0; i < A.Len(); i++ {
		floats.Add(c[:], A.Atom(i).Coords[:])
	}
	floats.Scale(1/float64(A.Len()), c[:])
	return c
}
