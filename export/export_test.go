/*
 * export_test.go, part of protein-utils.
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

package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/feature"
	"github.com/siret/protein-utils/internal/fixture"
)

func twoChains() *protein.Structure {
	B := fixture.New("1xyz")
	a := B.Chain("", "A")
	B.Peptide(a, "MV?K", 1, 4)
	B.Residue(a, "LIG", protein.UnknownCode, protein.Het, 101, fixture.At("C1", 0, 5, 0))
	w := B.Chain("W", "W")
	B.Residue(w, "HOH", protein.UnknownCode, protein.Water, 1, fixture.At("O", 0, 9, 0))
	b := B.Chain("B", "B")
	B.Peptide(b, "GS", 1, 4)
	return B.S
}

func TestNewSequence(Te *testing.T) {
	S := twoChains()
	cons := feature.New[float64]()
	cons.Insert(protein.ResidueKey{Chain: "A", SeqNum: 2}, 0.7)
	sites := protein.NewKeySet(protein.ResidueKey{Chain: "A", SeqNum: 4}, protein.ResidueKey{Chain: "B", SeqNum: 1})
	seq := NewSequence(S, cons, sites)
	if seq.String() != "MVKGS" {
		Te.Errorf("wrong sequence %s", seq)
	}
	wantIdx := []string{"A_1", "A_2", "A_4", "B_1", "B_2"}
	for i, v := range wantIdx {
		if seq.Indices[i] != v {
			Te.Errorf("index %d: expected %s, got %s", i, v, seq.Indices[i])
		}
	}
	wantScores := []float64{0, 0.7, 0, 0, 0}
	for i, v := range wantScores {
		if seq.Scores[i] != v {
			Te.Errorf("score %d: expected %v, got %v", i, v, seq.Scores[i])
		}
	}
	if len(seq.BindingSites) != 2 || seq.BindingSites[0] != 2 || seq.BindingSites[1] != 3 {
		Te.Errorf("wrong binding sites %v", seq.BindingSites)
	}
	want := []Region{{"A", 0, 2}, {"B", 3, 4}}
	if len(seq.Regions) != 2 || seq.Regions[0] != want[0] || seq.Regions[1] != want[1] {
		Te.Errorf("wrong regions %v", seq.Regions)
	}
	if s := NewSequence(S, nil, nil); len(s.Scores) != 0 || len(s.BindingSites) != 0 {
		Te.Errorf("no scores nor sites expected, got %v %v", s.Scores, s.BindingSites)
	}
}

func TestSequenceJSON(Te *testing.T) {
	seq := NewSequence(twoChains(), nil, nil)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, seq); err != nil {
		Te.Fatal(err)
	}
	for _, k := range []string{`"indices"`, `"regionName":"A"`, `"scores":[]`, `"bindingSites":[]`} {
		if !strings.Contains(buf.String(), k) {
			Te.Errorf("%s not in %s", k, buf.String())
		}
	}
	back, err := ReadSequence(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if back.String() != seq.String() || back.Len() != seq.Len() || back.Regions[1] != seq.Regions[1] {
		Te.Errorf("sequence changed: %v", back)
	}
}

func TestFeatureCSV(Te *testing.T) {
	m := feature.New[float64]()
	m.Insert(protein.ResidueKey{Chain: "A", SeqNum: 12, InsCode: 'B'}, 0.5)
	m.Insert(protein.ResidueKey{Chain: "A", SeqNum: 13}, 1)
	var buf bytes.Buffer
	if err := WriteFeatureCSV(&buf, m, "conservation", true); err != nil {
		Te.Fatal(err)
	}
	want := "\"chain\",\"ins. code\",\"seq. code\",\"conservation\"\r\n" +
		"\"A\",\"B\",\"12\",\"0.5\"\r\n" +
		"\"A\",\"\",\"13\",\"1\"\r\n"
	if buf.String() != want {
		Te.Errorf("expected\n%q\ngot\n%q", want, buf.String())
	}
	buf.Reset()
	WriteFeatureCSV(&buf, m, "conservation", false)
	if strings.Contains(buf.String(), "chain") {
		Te.Error("no header expected")
	}
}

func TestFASTA(Te *testing.T) {
	var buf bytes.Buffer
	if err := WriteFASTA(&buf, twoChains(), "A"); err != nil {
		Te.Fatal(err)
	}
	if buf.String() != ">pdb|1xyz|Chain A\nMVK\n" {
		Te.Errorf("wrong FASTA %q", buf.String())
	}
	err := WriteFASTA(&buf, twoChains(), "Q")
	var e *Error
	if !errors.As(err, &e) || e.Where != "selection" {
		Te.Errorf("expected a selection error, got %v", err)
	}
}

const predictions = `name,rank,score,probability,sas_points,surf_atoms,center_x,center_y,center_z,residue_ids,surf_atom_ids
pocket1,1,12.5,0.71,80,30,1.0,-2.5,3.25,A_12 A_13 A_14,101 102 103
pocket2,  2, 3.1,0.10,10,5,  0.0,0.0,0.0, B_1,7
`

func TestReadPockets(Te *testing.T) {
	p, err := ReadPockets(strings.NewReader(predictions))
	if err != nil {
		Te.Fatal(err)
	}
	if len(p) != 2 {
		Te.Fatalf("expected 2 pockets, got %d", len(p))
	}
	if p[0].Name != "pocket1" || p[0].Rank != 1 || p[0].CenterY != -2.5 || len(p[0].ResidueIDs) != 3 || p[0].SurfaceAtomSerials[2] != 103 {
		Te.Errorf("wrong pocket %+v", p[0])
	}
	if p[1].Rank != 2 || p[1].ResidueIDs[0] != "B_1" {
		Te.Errorf("wrong pocket %+v", p[1])
	}
	_, err = ReadPockets(strings.NewReader("header\npocket1,x,1,1,1,1,1,1,1,A_1,1\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		Te.Errorf("expected an error on line 2, got %v", err)
	}
	if p, err := ReadPockets(strings.NewReader("")); err != nil || len(p) != 0 {
		Te.Errorf("empty file: %v %v", p, err)
	}
}
