/*
 * bonds.go, part of protein-utils.
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

package chemgraph

import (
	"fmt"

	protein "github.com/siret/protein-utils"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bonded returns the graph of the atoms in ats where two atoms are joined if
// they are covalently bonded, by a simple distance criterium, similar to that
// described in DOI:10.1186/1758-2946-3-33: the distance must be shorter than
// the sum of their covalent radii plus a tolerance. It returns an error if an
// atom is of an element with no known radius.
func Bonded(ats protein.Atomer) (*Graph, error) {
	radii := make(map[*protein.Atom]float64, ats.Len())
	for i := 0; i < ats.Len(); i++ {
		at := ats.Atom(i)
		r, ok := protein.CovalentRadius(at.Symbol)
		if !ok {
			return nil, protein.NewError(fmt.Sprintf("couldn't find the covalent radius for %s %d", at.Symbol, at.Serial), "chemgraph.Bonded")
		}
		radii[at] = r
	}
	return newGraph(ats, func(a, b *protein.Atom) bool {
		d := protein.AtomDist(a, b)
		return d < radii[a]+radii[b]+bondtol && d > tooclose
	}), nil
}
