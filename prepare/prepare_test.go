/*
 * prepare_test.go, part of protein-utils.
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

package prepare

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/siret/protein-utils/export"
	"github.com/siret/protein-utils/internal/fixture"
)

const scores = "0\t0.1\tM\n1\t0.2\tV\n2\t0.3\tL\n3\t0.4\tS\n4\t0.95\tK\n"

const predictions = `name,rank,score,probability,sas_points,surf_atoms,center_x,center_y,center_z,residue_ids,surf_atom_ids
pocket1,1,12.5,0.71,80,30,24.0,2.0,0.0,A_5,5 6
`

func quiet() *Options {
	opts := DefaultOptions()
	opts.Conservation().Logger(log.New(io.Discard, "", 0))
	return opts
}

func write(Te *testing.T, name, content string) string {
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestBindingSites(Te *testing.T) {
	ligs, sites, err := BindingSites(fixture.EndToEnd(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ligs) != 1 || sites.Len() != 1 || sites.Keys()[0].SeqNum != 5 {
		Te.Errorf("expected one ligand bound to A_5, got %d ligands, sites %v", len(ligs), sites.Keys())
	}
}

func TestForPrankWeb(Te *testing.T) {
	dir := Te.TempDir()
	cfg := Config{
		Conservation: map[string]string{"A": write(Te, filepath.Join(dir, "A.jsd"), scores)},
		Predictions:  write(Te, filepath.Join(dir, "pred.csv"), predictions),
		OutputDir:    dir,
	}
	opts := quiet()
	opts.Plots(true)
	if err := ForPrankWeb(fixture.EndToEnd(), cfg, opts); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir, "sequence.json"))
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	seq, err := export.ReadSequence(f)
	if err != nil {
		Te.Fatal(err)
	}
	if seq.String() != "MVLSK" || len(seq.Scores) != 5 || seq.Scores[4] != 0.95 {
		Te.Errorf("wrong sequence record %+v", seq)
	}
	if len(seq.BindingSites) != 1 || seq.BindingSites[0] != 4 {
		Te.Errorf("wrong binding sites %v", seq.BindingSites)
	}
	for _, name := range []string{"prediction.json", "conservation.png", "distributions.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			Te.Error(err)
		}
	}
	pred, _ := os.ReadFile(filepath.Join(dir, "prediction.json"))
	if !strings.Contains(string(pred), `"residueIds":["A_5"]`) {
		Te.Errorf("wrong predictions %s", pred)
	}
}

func TestConservationFeature(Te *testing.T) {
	dir := Te.TempDir()
	files := map[string]string{"A": write(Te, filepath.Join(dir, "A.jsd"), "0\t0.5\tM\n1\t0.25\tV\n")}
	var buf bytes.Buffer
	def := 0.0
	if err := ConservationFeature(&buf, fixture.EndToEnd(), files, &def, true, quiet()); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\r\n")
	if len(lines) != 6 {
		Te.Fatalf("expected a header and 5 residues, got %q", buf.String())
	}
	if lines[1] != `"A","","1","0.5"` || lines[5] != `"A","","5","0"` {
		Te.Errorf("wrong lines %q", lines)
	}
}

func TestWriteFASTA(Te *testing.T) {
	dir := Te.TempDir()
	if err := WriteFASTA(fixture.EndToEnd(), []string{"A"}, filepath.Join(dir, "{chain}.fasta")); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "A.fasta"))
	if err != nil {
		Te.Fatal(err)
	}
	if string(b) != ">pdb|1abc|Chain A\nMVLSK\n" {
		Te.Errorf("wrong FASTA %q", b)
	}
	if err := WriteFASTA(fixture.EndToEnd(), []string{"Z"}, filepath.Join(dir, "{chain}.fasta")); err == nil {
		Te.Error("expected an error for a missing chain")
	}
}
