/*
 * profile.go, part of protein-utils.
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

// Package chemplot draws the conservation profile of a sequence record and the
// score distributions of binding site and other residues.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/siret/protein-utils/export"
	"github.com/siret/protein-utils/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Profile plots the scores of seq against the position in the sequence, one line
// per region (chain), each in its own color, with the binding sites marked. The
// format is taken from the extension of file (png, svg, pdf...). It returns an
// error if seq has no scores.
func Profile(seq *export.Sequence, title, file string) error {
	if len(seq.Scores) == 0 || len(seq.Scores) != seq.Len() {
		return fmt.Errorf("chemplot: %d scores for %d residues", len(seq.Scores), seq.Len())
	}
	p := basicPlot(title, "Residue", "Conservation")
	p.X.Min = 0
	p.X.Max = float64(seq.Len() - 1)
	for key, reg := range seq.Regions {
		if reg.End < reg.Start {
			continue
		}
		pts := make(plotter.XYs, 0, reg.End-reg.Start+1)
		for i := reg.Start; i <= reg.End; i++ {
			pts = append(pts, plotter.XY{X: float64(i), Y: seq.Scores[i]})
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(seq.Regions))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
		p.Legend.Add("chain "+reg.Name, l)
	}
	if len(seq.BindingSites) > 0 {
		sites := make(plotter.XYs, len(seq.BindingSites))
		for i, v := range seq.BindingSites {
			sites[i] = plotter.XY{X: float64(v), Y: seq.Scores[v]}
		}
		s, err := plotter.NewScatter(sites)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		s.GlyphStyle.Color = color.Black
		p.Add(s)
		p.Legend.Add("binding site", s)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, file)
}

// Distributions plots the given histograms, normally those from histo.Compare,
// as lines over the centers of their bins.
func Distributions(title, file string, hs ...*histo.Data) error {
	p := basicPlot(title, "Conservation", "Fraction")
	for key, h := range hs {
		div := h.Dividers()
		bins := h.View()
		pts := make(plotter.XYs, len(bins))
		for i, v := range bins {
			pts[i] = plotter.XY{X: (div[i] + div[i+1]) / 2, Y: v}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(hs))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(h.Name(), l)
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, file)
}
