/*
 * plot_test.go, part of protein-utils.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/siret/protein-utils/export"
	"github.com/siret/protein-utils/histo"
)

func sequence() *export.Sequence {
	return &export.Sequence{
		Indices:      []string{"A_1", "A_2", "A_3", "B_1", "B_2"},
		Seq:          []string{"M", "V", "K", "G", "S"},
		Scores:       []float64{0.2, 0.9, 0.4, 0.1, 0.7},
		Regions:      []export.Region{{Name: "A", Start: 0, End: 2}, {Name: "B", Start: 3, End: 4}},
		BindingSites: []int{1, 4},
	}
}

func checkFile(Te *testing.T, name string) {
	st, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if st.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestProfile(Te *testing.T) {
	dir := Te.TempDir()
	for _, ext := range []string{".png", ".svg"} {
		name := filepath.Join(dir, "profile"+ext)
		if err := Profile(sequence(), "Test profile", name); err != nil {
			Te.Fatal(err)
		}
		checkFile(Te, name)
	}
	noscores := sequence()
	noscores.Scores = nil
	if err := Profile(noscores, "No scores", filepath.Join(dir, "none.png")); err == nil {
		Te.Error("a sequence without scores can't be plotted")
	}
}

func TestDistributions(Te *testing.T) {
	dividers := histo.Uniform(0, 1, 5)
	site := histo.New("binding site", dividers, []float64{0.9, 0.7})
	rest := histo.New("other", dividers, []float64{0.2, 0.4, 0.1})
	site.Normalize()
	rest.Normalize()
	name := filepath.Join(Te.TempDir(), "dist.png")
	if err := Distributions("Conservation", name, site, rest); err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, name)
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for k := 0; k < 4; k++ {
		r, g, b := colors(k, 4)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 4 {
		Te.Errorf("expected 4 different colors, got %d", len(seen))
	}
}
