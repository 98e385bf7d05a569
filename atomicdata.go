/*
 * atomicdata.go, part of protein-utils.
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

import "strings"

//Only common "bio-elements" are present in the tables.

// Masses of the elements, in atomic mass units.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// Covalent radii, in A, from Cordero et al., 2008 (DOI:10.1039/B801115J).
var symbolCovrad = map[string]float64{
	"H":  0.4, //longer than the real 0.31, so bonds to H are not missed.
	"C":  0.76,
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

// Element returns symbol with the first letter in upper case and the rest
// in lower case, so FE and fe become Fe.
func Element(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// Mass returns the mass of the element with the given symbol, and false
// if it is not known.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[Element(symbol)]
	return m, ok
}

// CovalentRadius returns the covalent radius of the element with the given
// symbol, and false if it is not known.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[Element(symbol)]
	return r, ok
}

// MassOf returns the sum of the masses of the atoms in A. Atoms of
// unknown elements count as 0, and their number is returned as well.
func MassOf(A Atomer) (mass float64, unknown int) {
	for i := 0; i < A.Len(); i++ {
		m, ok := Mass(A.Atom(i).Symbol)
		if !ok {
			unknown++
		}
		mass += m
	}
	return mass, unknown
}
