/*
 * contact.go, part of protein-utils.
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

// Package contact selects elements by their proximity to a reference set,
// and finds the binding sites of ligands.
package contact

import (
	"math"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/grid"
	"github.com/siret/protein-utils/ligand"
	v3 "github.com/siret/protein-utils/v3"
)

// BindingSiteDistance is the default distance, in A, between a residue atom and
// a ligand atom for the residue to be part of the binding site.
const BindingSiteDistance = 4.0

// InProximity returns the candidates that are strictly closer than threshold to
// at least one of the references, in the order of candidates. The comparison for
// a candidate stops at the first close reference. With no references nothing is
// selected.
func InProximity[T any](candidates, references []T, pos func(T) protein.Point3, threshold float64) []T {
	ret := make([]T, 0)
	if len(references) == 0 {
		return ret
	}
	refs := make([]v3.Point, len(references))
	for i, r := range references {
		refs[i] = v3.Point(pos(r))
	}
	block := v3.FromPoints(refs)
	for _, c := range candidates {
		if block.AnyWithin(v3.Point(pos(c)), threshold) >= 0 {
			ret = append(ret, c)
		}
	}
	return ret
}

func coords(at *protein.Atom) protein.Point3 {
	return at.Coords
}

// Atoms returns the atoms of candidates strictly closer than threshold to some
// atom of references.
func Atoms(candidates, references protein.Atoms, threshold float64) protein.Atoms {
	return InProximity(candidates, references, coords, threshold)
}

// IndexedAtoms does the same as Atoms, but puts the references in a grid with
// cells of side threshold, so each candidate is only compared with the
// references in the 27 cells around it. It pays off when both sets are large.
func IndexedAtoms(candidates, references protein.Atoms, threshold float64) protein.Atoms {
	ret := make(protein.Atoms, 0)
	if len(references) == 0 || threshold <= 0 {
		return ret
	}
	G := grid.New[*protein.Atom](threshold)
	for _, r := range references {
		G.Add(r.Position(), r)
	}
	for _, c := range candidates {
		if anyClose(G.Near(c.Position()), c, threshold) {
			ret = append(ret, c)
		}
	}
	return ret
}

func anyClose(cells []*grid.Cell[*protein.Atom], at *protein.Atom, threshold float64) bool {
	for _, cell := range cells {
		for _, r := range cell.Content {
			if protein.AtomDist(at, r) < threshold {
				return true
			}
		}
	}
	return false
}

// LowestDist returns the smallest distance between an atom of test and one of
// clash, and the indexes of that pair. It returns +Inf and {-1,-1} if either
// set is empty.
func LowestDist(test, clash protein.Atoms) (dist float64, indexes [2]int) {
	dist = math.Inf(1)
	indexes = [2]int{-1, -1}
	tc := test.Coords()
	cc := clash.Coords()
	for i := 0; i < tc.NVecs(); i++ {
		for j := 0; j < cc.NVecs(); j++ {
			dt := tc.Dist(i, cc, j)
			if dt < dist {
				dist = dt
				indexes[0] = i
				indexes[1] = j
			}
		}
	}
	return
}

// Options contains the options for BindingSites.
type Options struct {
	distance float64
	indexed  bool
}

// DefaultOptions returns options with the 4 A binding site distance and
// the plain, non-indexed search.
func DefaultOptions() *Options {
	return &Options{distance: BindingSiteDistance}
}

// Distance returns the binding site distance and sets it to a new value, if given.
// Non-positive values are ignored.
func (O *Options) Distance(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.distance = d[0]
	}
	return O.distance
}

// Indexed returns whether the references are put in a grid before the search,
// and sets it to a new value, if given.
func (O *Options) Indexed(i ...bool) bool {
	if len(i) > 0 {
		O.indexed = i[0]
	}
	return O.indexed
}

// BindingSites returns the keys of the polymer residues of S that have a
// non-hydrogen atom strictly closer than the binding site distance to an atom
// of the ligands, in structure order. A nil opts means DefaultOptions.
func BindingSites(S *protein.Structure, ligands []ligand.Ligand, opts *Options) *protein.KeySet {
	if opts == nil {
		opts = DefaultOptions()
	}
	candidates := protein.PolymerAtoms(S.Atoms())
	refs := ligand.Atoms(ligands)
	var near protein.Atoms
	if opts.indexed {
		near = IndexedAtoms(candidates, refs, opts.distance)
	} else {
		near = Atoms(candidates, refs, opts.distance)
	}
	return protein.DistinctKeys(near)
}
