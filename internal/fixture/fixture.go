/*
 * fixture.go, part of protein-utils.
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

// Package fixture builds small in-memory structures for the tests of the
// other packages, standing in for a structure file loader.
package fixture

import (
	"fmt"

	protein "github.com/siret/protein-utils"
)

// AtomSpec describes an atom to be created.
type AtomSpec struct {
	Name, Symbol string
	X, Y, Z      float64
}

// At returns an AtomSpec whose element is the first letter of name.
func At(name string, x, y, z float64) AtomSpec {
	return AtomSpec{Name: name, Symbol: name[:1], X: x, Y: y, Z: z}
}

// Builder adds chains and residues to a structure, numbering atoms as it goes.
type Builder struct {
	S      *protein.Structure
	serial int
}

// New returns a builder for an empty structure.
func New(id string) *Builder {
	return &Builder{S: protein.NewStructure(id)}
}

// Chain adds a chain.
func (B *Builder) Chain(id, name string) *protein.Chain {
	return B.S.AddChain(id, name)
}

// Residue adds a residue with the given atoms to c. It panics if the
// residue can't be added, which is a broken fixture.
func (B *Builder) Residue(c *protein.Chain, name string, code byte, cat protein.Category, num int, atoms ...AtomSpec) *protein.Residue {
	r := &protein.Residue{Name: name, Code: code, Category: cat, Key: protein.ResidueKey{Chain: c.Name, SeqNum: num}}
	for _, a := range atoms {
		B.serial++
		r.Atoms = append(r.Atoms, &protein.Atom{Name: a.Name, Symbol: a.Symbol, Serial: B.serial, Coords: protein.Point3{a.X, a.Y, a.Z}})
	}
	if err := B.S.AddResidue(c, r); err != nil {
		panic(fmt.Sprintf("fixture: %s", err))
	}
	return r
}

var threeLetter = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS",
	'E': "GLU", 'Q': "GLN", 'G': "GLY", 'H': "HIS", 'I': "ILE",
	'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE", 'P': "PRO",
	'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
}

// Peptide adds to c one amino acid per letter of seq, numbered from first, with
// a single CA atom each, spaced by step A along the x axis. '?' adds an
// unknown residue.
func (B *Builder) Peptide(c *protein.Chain, seq string, first int, step float64) []*protein.Residue {
	ret := make([]*protein.Residue, len(seq))
	for i := 0; i < len(seq); i++ {
		name, ok := threeLetter[seq[i]]
		if !ok {
			name = "UNK"
		}
		ret[i] = B.Residue(c, name, seq[i], protein.AminoAcid, first+i, At("CA", float64(i)*step, 0, 0))
	}
	return ret
}

// EndToEnd returns a structure with one chain of 5 amino acids (MVLSK, numbered
// 1 to 5, 6 A apart) and a 2-atom hetero group 1.5 A from the last residue and
// more than 5 A from the others.
func EndToEnd() *protein.Structure {
	B := New("1abc")
	c := B.Chain("A", "A")
	B.Peptide(c, "MVLSK", 1, 6)
	B.Residue(c, "LIG", protein.UnknownCode, protein.Het, 101,
		At("C1", 24, 1.5, 0),
		At("O1", 24, 2.7, 0),
	)
	return B.S
}
