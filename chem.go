/*
 * chem.go, part of protein-utils.
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
	"strings"

	v3 "github.com/siret/protein-utils/v3"
)

/**Note: Some functions here panic instead of returning errors. They are "fundamental"
 * functions and if something goes wrong with them the program is wrong. Panics are
 * related to nil objects or out of bounds access**/

// UnknownCode is the one-letter code of residues whose identity is not known.
// Such residues never take part in sequences or alignments.
const UnknownCode byte = '?'

// Category classifies a residue.
type Category int

const (
	Other Category = iota
	AminoAcid
	Nucleotide
	Het
	Water
)

func (c Category) String() string {
	switch c {
	case AminoAcid:
		return "amino-acid"
	case Nucleotide:
		return "nucleotide"
	case Het:
		return "het"
	case Water:
		return "water"
	}
	return "other"
}

// Atom contains the information of one atom. The coordinates are
// fixed once the atom is loaded.
type Atom struct {
	Name   string
	Symbol string
	Serial int //as assigned in the structure file
	Coords Point3
	//The owning residue. Set by Structure.AddResidue.
	Residue *Residue
}

// Position returns the coordinates of the atom as a slice.
func (A *Atom) Position() []float64 {
	return A.Coords.Slice()
}

// IsHydrogen returns true if the atom is a hydrogen, either by its element
// symbol or, when the symbol is missing or unreliable, by its name
// (names starting with H, or with H as second character, like 1HB).
func (A *Atom) IsHydrogen() bool {
	if strings.EqualFold(A.Symbol, "H") {
		return true
	}
	if strings.HasPrefix(A.Name, "H") {
		return true
	}
	if len(A.Name) > 1 && A.Name[1] == 'H' {
		return true
	}
	return false
}

func (A *Atom) String() string {
	if A.Residue == nil {
		return fmt.Sprintf("%s %d", A.Name, A.Serial)
	}
	return fmt.Sprintf("%s %d %s %s", A.Name, A.Serial, A.Residue.Name, A.Residue.Key)
}

/*****Residue type***/

// Residue is a chemical unit of the structure (amino acid, nucleotide, ligand, water).
type Residue struct {
	Name     string //three-letter name, i.e. ALA or HOH.
	Code     byte   //one-letter code, UnknownCode if not known.
	Category Category
	Key      ResidueKey
	Atoms    Atoms
	chain    *Chain
}

// Chain returns the chain the residue was added to, or nil.
func (R *Residue) Chain() *Chain {
	return R.chain
}

// Letter returns the upper-case one-letter code of the residue.
func (R *Residue) Letter() byte {
	return upper(R.Code)
}

// Unknown returns true if the residue has no known one-letter code.
func (R *Residue) Unknown() bool {
	return R.Code == UnknownCode || R.Code == 0
}

// IsPolymer returns true for amino acids and nucleotides, the macromolecules where
// binding sites can be.
func (R *Residue) IsPolymer() bool {
	return R.Category == AminoAcid || R.Category == Nucleotide
}

// IsWater returns true for water molecules, whatever their category says.
func (R *Residue) IsWater() bool {
	return R.Category == Water || R.Name == "HOH"
}

// IsLigand returns true for hetero groups that are not water.
func (R *Residue) IsLigand() bool {
	return R.Category == Het && !R.IsWater()
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s %s", R.Name, R.Key)
}

/*****Chain type***/

// Chain is an ordered sequence of residues. ID is the internal identifier
// (label_asym_id in mmCIF) and Name the author-facing one (the PDB chain
// column). They are not always equal.
type Chain struct {
	ID       string
	Name     string
	Residues []*Residue
}

// NameOrDefault returns the author chain name, or "A" if it is blank.
func (C *Chain) NameOrDefault() string {
	return orDefault(C.Name)
}

// IDOrDefault returns the internal chain id, or "A" if it is blank.
func (C *Chain) IDOrDefault() string {
	return orDefault(C.ID)
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "A"
	}
	return s
}

// AminoAcids returns the amino acid residues of the chain in declaration order.
func (C *Chain) AminoAcids() []*Residue {
	return C.filter(func(r *Residue) bool { return r.Category == AminoAcid })
}

// PolymerResidues returns the amino acid and nucleotide residues of the chain,
// in declaration order.
func (C *Chain) PolymerResidues() []*Residue {
	return C.filter((*Residue).IsPolymer)
}

func (C *Chain) filter(f func(*Residue) bool) []*Residue {
	ret := make([]*Residue, 0, len(C.Residues))
	for _, r := range C.Residues {
		if f(r) {
			ret = append(ret, r)
		}
	}
	return ret
}

// Sequence returns the one-letter polymer sequence of the chain. Residues
// with unknown code are skipped.
func (C *Chain) Sequence() string {
	var b strings.Builder
	for _, r := range C.PolymerResidues() {
		if r.Unknown() {
			continue
		}
		b.WriteByte(r.Letter())
	}
	return b.String()
}

/*****Structure type***/

// Structure contains the chains of a molecular structure and an index of
// its residues by key.
type Structure struct {
	ID     string
	Chains []*Chain
	index  map[ResidueKey]*Residue
}

// NewStructure returns an empty structure with the given identifier.
func NewStructure(id string) *Structure {
	return &Structure{ID: id, index: make(map[ResidueKey]*Residue)}
}

// AddChain appends a new, empty chain to the structure and returns it.
func (S *Structure) AddChain(id, name string) *Chain {
	c := &Chain{ID: id, Name: name}
	S.Chains = append(S.Chains, c)
	return c
}

// Chain returns the chain with the given author name or, failing that, with the
// given internal id. It returns nil if there is no such chain.
func (S *Structure) Chain(name string) *Chain {
	for _, c := range S.Chains {
		if c.Name == name {
			return c
		}
	}
	for _, c := range S.Chains {
		if c.ID == name {
			return c
		}
	}
	return nil
}

// AddResidue appends R to the chain C, which must belong to the structure. If the
// key of R has no chain, the author name of C is used, and a blank insertion code
// is stored as 0. The atoms of R get R as
// their owner. It returns an error if the key is already in use or if one of the
// atoms already belongs to another residue.
func (S *Structure) AddResidue(C *Chain, R *Residue) error {
	if S == nil {
		panic(ErrNilStructure)
	}
	if R == nil {
		panic(ErrNilResidue)
	}
	if S.index == nil {
		S.index = make(map[ResidueKey]*Residue)
	}
	if R.Key.Chain == "" {
		R.Key.Chain = C.Name
	}
	if R.Key.InsCode == ' ' {
		R.Key.InsCode = 0
	}
	if _, ok := S.index[R.Key]; ok {
		return NewError(fmt.Sprintf("%s: %s", ErrDuplicateKey, R.Key), "AddResidue")
	}
	for _, at := range R.Atoms {
		if at.Residue != nil && at.Residue != R {
			return NewError(fmt.Sprintf("%s: %s", ErrAtomTwoOwners, at), "AddResidue")
		}
	}
	for _, at := range R.Atoms {
		at.Residue = R
	}
	R.chain = C
	C.Residues = append(C.Residues, R)
	S.index[R.Key] = R
	return nil
}

// Residue returns the residue with the given key.
func (S *Structure) Residue(key ResidueKey) (*Residue, bool) {
	r, ok := S.index[key]
	return r, ok
}

// Residues returns all the residues of the structure, chain by chain, in declaration order.
func (S *Structure) Residues() []*Residue {
	ret := make([]*Residue, 0, len(S.index))
	for _, c := range S.Chains {
		ret = append(ret, c.Residues...)
	}
	return ret
}

// Atoms returns all the atoms of the structure in declaration order.
func (S *Structure) Atoms() Atoms {
	ret := make(Atoms, 0, 3000)
	for _, r := range S.Residues() {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

// Validate checks that residue keys are unique and every atom belongs to
// exactly the residue that lists it.
func (S *Structure) Validate() error {
	seen := make(map[ResidueKey]bool)
	owner := make(map[*Atom]*Residue)
	for _, r := range S.Residues() {
		if seen[r.Key] {
			return NewError(fmt.Sprintf("%s: %s", ErrDuplicateKey, r.Key), "Validate")
		}
		seen[r.Key] = true
		for _, at := range r.Atoms {
			if at.Residue != r {
				return NewError(fmt.Sprintf("%s: %s", ErrAtomNoResidue, at), "Validate")
			}
			if o, ok := owner[at]; ok && o != r {
				return NewError(fmt.Sprintf("%s: %s", ErrAtomTwoOwners, at), "Validate")
			}
			owner[at] = r
		}
	}
	return nil
}

/*****Atoms type***/

// Atoms is a list of atoms. It implements Atomer.
type Atoms []*Atom

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (A Atoms) Atom(i int) *Atom {
	if i < 0 || i >= len(A) {
		panic(ErrOutOfRange)
	}
	return A[i]
}

// Len returns the number of atoms.
func (A Atoms) Len() int {
	return len(A)
}

// Coords returns a new Nx3 matrix with the coordinates of the atoms.
func (A Atoms) Coords() *v3.Matrix {
	p := make([]v3.Point, len(A))
	for i, at := range A {
		p[i] = v3.Point(at.Coords)
	}
	return v3.FromPoints(p)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
