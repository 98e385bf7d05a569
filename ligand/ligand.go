/*
 * ligand.go, part of protein-utils.
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

// Package ligand detects the ligand molecules of a structure by clustering
// the atoms of its hetero groups.
package ligand

import (
	"fmt"
	"strings"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/chemgraph"
	"github.com/siret/protein-utils/grid"
)

// CovalentBond is the approximate length of a covalent bond, in A. It is
// the default clustering distance.
const CovalentBond = 1.7

// Ligand is one bound molecule.
type Ligand struct {
	Atoms protein.Atoms
}

// Len returns the number of atoms in the ligand.
func (L Ligand) Len() int {
	return len(L.Atoms)
}

// Residues returns the residues the atoms of the ligand belong to.
func (L Ligand) Residues() []*protein.Residue {
	return protein.DistinctResidues(L.Atoms)
}

// Centroid returns the geometric center of the ligand.
func (L Ligand) Centroid() protein.Point3 {
	return protein.Centroid(L.Atoms)
}

// Mass returns the mass of the ligand, and the number of atoms
// of unknown mass, which were not counted.
func (L Ligand) Mass() (float64, int) {
	return protein.MassOf(L.Atoms)
}

// String returns the names and keys of the residues in the ligand.
func (L Ligand) String() string {
	res := L.Residues()
	s := make([]string, len(res))
	for i, r := range res {
		s[i] = r.String()
	}
	return fmt.Sprintf("%d atoms [%s]", L.Len(), strings.Join(s, ", "))
}

// Method selects the clustering algorithm.
type Method int

const (
	Grid       Method = iota //grid accelerated clustering
	Exhaustive               //connected components of the full contact graph
	Bonds                    //connected components of the covalent bond graph, MinDist is not used
)

// Options contains the options for Select.
type Options struct {
	minDist float64
	method  Method
	grid    *grid.Options
}

// DefaultOptions clusters with the grid at the length of a covalent bond.
func DefaultOptions() *Options {
	return &Options{minDist: CovalentBond, method: Grid, grid: grid.DefaultOptions()}
}

// MinDist returns the distance at which atoms are put in the same ligand,
// and sets it to a new value, if given.
func (O *Options) MinDist(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.minDist = d[0]
	}
	return O.minDist
}

// Method returns the clustering method, and sets it to a new value, if given.
func (O *Options) Method(m ...Method) Method {
	if len(m) > 0 {
		O.method = m[0]
	}
	return O.method
}

// Grid returns the options passed to the grid clustering.
func (O *Options) Grid() *grid.Options {
	return O.grid
}

// Select returns the ligands of S: the atoms of the non-water hetero groups,
// clustered in molecules. Ligands are ordered by their first atom.
func Select(S *protein.Structure, opts *Options) ([]Ligand, error) {
	ret, err := FromAtoms(protein.LigandAtoms(S), opts)
	if err != nil {
		return nil, errDecorate(err, "ligand.Select")
	}
	return ret, nil
}

// FromAtoms clusters ats in ligands. A nil opts means DefaultOptions.
func FromAtoms(ats protein.Atoms, opts *Options) ([]Ligand, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	switch opts.method {
	case Exhaustive:
		return fromComponents(chemgraph.New(ats, opts.minDist).Components()), nil
	case Bonds:
		G, err := chemgraph.Bonded(ats)
		if err != nil {
			return nil, errDecorate(err, "ligand.FromAtoms")
		}
		return fromComponents(G.Components()), nil
	}
	C := grid.NewClustering(protein.AtomPosition, opts.grid)
	cl, err := C.Cluster(ats, opts.minDist, grid.MinDistance(protein.AtomDist))
	if err != nil {
		return nil, errDecorate(err, "ligand.FromAtoms")
	}
	ret := make([]Ligand, len(cl))
	for i, c := range cl {
		ret[i] = Ligand{Atoms: c.Items}
	}
	return ret, nil
}

func fromComponents(cc []protein.Atoms) []Ligand {
	ret := make([]Ligand, len(cc))
	for i, c := range cc {
		ret[i] = Ligand{Atoms: c}
	}
	return ret
}

// Atoms returns all the atoms of the given ligands.
func Atoms(ligands []Ligand) protein.Atoms {
	ret := make(protein.Atoms, 0)
	for _, l := range ligands {
		ret = append(ret, l.Atoms...)
	}
	return ret
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(protein.Error); ok {
		e.Decorate(caller)
	}
	return err
}
