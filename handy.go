/*
 * handy.go, part of protein-utils.
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

//Selections. They never modify their input and keep its order.

// WithoutHydrogens returns the atoms in ats that are not hydrogens.
func WithoutHydrogens(ats Atoms) Atoms {
	ret := make(Atoms, 0, len(ats))
	for _, at := range ats {
		if !at.IsHydrogen() {
			ret = append(ret, at)
		}
	}
	return ret
}

// PolymerAtoms returns the non-hydrogen atoms of ats that belong to
// amino acids or nucleotides of some chain.
func PolymerAtoms(ats Atoms) Atoms {
	ret := make(Atoms, 0, len(ats))
	for _, at := range ats {
		r := at.Residue
		if r == nil || !r.IsPolymer() || (r.Key.Chain == "" && r.Chain() == nil) {
			continue
		}
		ret = append(ret, at)
	}
	return WithoutHydrogens(ret)
}

// LigandResidues returns the hetero groups of S that are not water.
func LigandResidues(S *Structure) []*Residue {
	ret := make([]*Residue, 0)
	for _, r := range S.Residues() {
		if r.IsLigand() {
			ret = append(ret, r)
		}
	}
	return ret
}

// LigandAtoms returns all atoms of the ligand residues of S.
func LigandAtoms(S *Structure) Atoms {
	ret := make(Atoms, 0)
	for _, r := range LigandResidues(S) {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

// DistinctResidues returns the residues owning the atoms in ats, once each,
// in order of first appearance.
func DistinctResidues(ats Atomer) []*Residue {
	seen := make(map[*Residue]bool)
	ret := make([]*Residue, 0)
	for i := 0; i < ats.Len(); i++ {
		r := ats.Atom(i).Residue
		if r == nil || seen[r] {
			continue
		}
		seen[r] = true
		ret = append(ret, r)
	}
	return ret
}

// DistinctKeys is like DistinctResidues but returns the residue keys as a set.
func DistinctKeys(ats Atomer) *KeySet {
	ret := NewKeySet()
	for _, r := range DistinctResidues(ats) {
		ret.Add(r.Key)
	}
	return ret
}

// ProteinResidues returns the keys of the polymer residues of S that have
// at least one non-hydrogen atom.
func ProteinResidues(S *Structure) *KeySet {
	return DistinctKeys(PolymerAtoms(S.Atoms()))
}

// isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

// SelectChains returns the chains of S whose author name or id is in names,
// in structure order. An empty names selects every chain.
func SelectChains(S *Structure, names []string) []*Chain {
	if len(names) == 0 {
		return S.Chains
	}
	ret := make([]*Chain, 0, len(names))
	for _, c := range S.Chains {
		if isInString(names, c.Name) || isInString(names, c.ID) {
			ret = append(ret, c)
		}
	}
	return ret
}
