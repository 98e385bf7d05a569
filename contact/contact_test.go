/*
 * contact_test.go, part of protein-utils.
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

package contact

import (
	"math"
	"math/rand"
	"testing"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/internal/fixture"
	"github.com/siret/protein-utils/ligand"
)

func atomsAt(coords ...float64) protein.Atoms {
	ret := make(protein.Atoms, 0, len(coords)/3)
	for i := 0; i+2 < len(coords); i += 3 {
		ret = append(ret, &protein.Atom{Name: "C", Symbol: "C", Serial: i/3 + 1, Coords: protein.Point3{coords[i], coords[i+1], coords[i+2]}})
	}
	return ret
}

func TestEmptyReferences(Te *testing.T) {
	c := atomsAt(0, 0, 0, 1, 1, 1)
	if r := Atoms(c, nil, 100); len(r) != 0 {
		Te.Errorf("nothing is close to an empty set, got %d atoms", len(r))
	}
	if r := IndexedAtoms(c, protein.Atoms{}, 100); len(r) != 0 {
		Te.Errorf("nothing is close to an empty set, got %d atoms", len(r))
	}
}

func TestStrictThreshold(Te *testing.T) {
	refs := atomsAt(0, 0, 0)
	c := atomsAt(
		4.0, 0, 0,
		0, 3.999, 0,
		0, 0, -4.0,
		1, 1, 1,
	)
	for name, f := range map[string]func(a, b protein.Atoms, t float64) protein.Atoms{"plain": Atoms, "indexed": IndexedAtoms} {
		r := f(c, refs, 4.0)
		if len(r) != 2 || r[0] != c[1] || r[1] != c[3] {
			Te.Errorf("%s: expected atoms 2 and 4, got %v", name, r)
		}
	}
}

func TestInProximityOrder(Te *testing.T) {
	refs := []protein.Point3{{10, 0, 0}, {0, 0, 0}}
	cands := []protein.Point3{{9, 0, 0}, {50, 0, 0}, {0.5, 0, 0}, {5, 0, 0}}
	id := func(p protein.Point3) protein.Point3 { return p }
	r := InProximity(cands, refs, id, 1.5)
	if len(r) != 2 || r[0] != cands[0] || r[1] != cands[2] {
		Te.Errorf("wrong selection %v", r)
	}
}

func TestIndexedMatchesPlain(Te *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	gen := func(n int) protein.Atoms {
		c := make([]float64, 3*n)
		for i := range c {
			c[i] = rnd.Float64()*30 - 15
		}
		return atomsAt(c...)
	}
	cands, refs := gen(300), gen(40)
	for _, t := range []float64{0.5, 2, 4, 7.3} {
		a := Atoms(cands, refs, t)
		b := IndexedAtoms(cands, refs, t)
		if len(a) != len(b) {
			Te.Fatalf("threshold %4.1f: %d atoms plain, %d indexed", t, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				Te.Errorf("threshold %4.1f: different atom at %d", t, i)
			}
		}
	}
}

func TestLowestDist(Te *testing.T) {
	d, idx := LowestDist(atomsAt(0, 0, 0, 5, 0, 0), atomsAt(9, 0, 0, 7, 0, 0, 20, 0, 0))
	if d != 2 || idx != [2]int{1, 1} {
		Te.Errorf("expected 2 between 1 and 1, got %5.2f between %v", d, idx)
	}
	d, idx = LowestDist(atomsAt(0, 0, 0), nil)
	if !math.IsInf(d, 1) || idx != [2]int{-1, -1} {
		Te.Errorf("empty set: got %5.2f %v", d, idx)
	}
}

func TestBindingSitesEndToEnd(Te *testing.T) {
	S := fixture.EndToEnd()
	ligs, err := ligand.Select(S, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ligs) != 1 {
		Te.Fatalf("expected 1 ligand, got %d", len(ligs))
	}
	for _, indexed := range []bool{false, true} {
		opts := DefaultOptions()
		opts.Indexed(indexed)
		sites := BindingSites(S, ligs, opts)
		want := protein.ResidueKey{Chain: "A", SeqNum: 5}
		if sites.Len() != 1 || !sites.Has(want) {
			Te.Errorf("indexed %t: expected only %s, got %v", indexed, want, sites.Keys())
		}
	}
}

func TestBindingSitesIgnoreHydrogensAndWater(Te *testing.T) {
	B := fixture.New("hyd")
	c := B.Chain("A", "A")
	B.Peptide(c, "GAS", 1, 10)
	r2 := c.Residues[1]
	//a hydrogen of residue 2 is close to the ligand, its heavy atom is not.
	r2.Atoms = append(r2.Atoms, &protein.Atom{Name: "HA", Symbol: "H", Serial: 99, Coords: protein.Point3{10, 3, 0}, Residue: r2})
	B.Residue(c, "ATP", protein.UnknownCode, protein.Het, 101, fixture.At("P", 10, 6, 0))
	B.Residue(c, "HOH", protein.UnknownCode, protein.Water, 201, fixture.At("O", 0, 1, 0))
	ligs, err := ligand.Select(B.S, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sites := BindingSites(B.S, ligs, nil); sites.Len() != 0 {
		Te.Errorf("expected no binding sites, got %v", sites.Keys())
	}
	opts := DefaultOptions()
	opts.Distance(6.5)
	sites := BindingSites(B.S, ligs, opts)
	if sites.Len() != 1 || sites.Keys()[0].SeqNum != 2 {
		Te.Errorf("at 6.5 A residue 2 is a site, got %v", sites.Keys())
	}
}

func TestBindingSitesNoLigands(Te *testing.T) {
	if sites := BindingSites(fixture.EndToEnd(), nil, nil); sites.Len() != 0 {
		Te.Errorf("no ligands, no sites, got %v", sites.Keys())
	}
}
