/*
 * prepare.go, part of protein-utils.
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

// Package prepare puts together ligand detection, binding sites and
// conservation to produce the files the pocket viewer and the predictors
// read, for a structure already in memory.
package prepare

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/chemplot"
	"github.com/siret/protein-utils/conservation"
	"github.com/siret/protein-utils/contact"
	"github.com/siret/protein-utils/export"
	"github.com/siret/protein-utils/feature"
	"github.com/siret/protein-utils/histo"
	"github.com/siret/protein-utils/ligand"
)

// Options contains the options for the preparation functions.
type Options struct {
	ligand       *ligand.Options
	contact      *contact.Options
	conservation *conservation.Options
	plots        bool
}

// DefaultOptions uses the default options of each step and draws no plots.
func DefaultOptions() *Options {
	return &Options{
		ligand:       ligand.DefaultOptions(),
		contact:      contact.DefaultOptions(),
		conservation: conservation.DefaultOptions(),
	}
}

// Ligand returns the options for ligand detection.
func (O *Options) Ligand() *ligand.Options { return O.ligand }

// Contact returns the options for the binding site search.
func (O *Options) Contact() *contact.Options { return O.contact }

// Conservation returns the options for loading conservation.
func (O *Options) Conservation() *conservation.Options { return O.conservation }

// Plots returns whether the conservation plots are drawn, and sets it to
// a new value, if given.
func (O *Options) Plots(p ...bool) bool {
	if len(p) > 0 {
		O.plots = p[0]
	}
	return O.plots
}

// lookup returns a files function for conservation.Load from a map of
// chain to file.
func lookup(files map[string]string) func(string) string {
	return func(chain string) string {
		return files[chain]
	}
}

// BindingSites detects the ligands of S and returns them with their binding sites.
func BindingSites(S *protein.Structure, opts *Options) ([]ligand.Ligand, *protein.KeySet, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ligs, err := ligand.Select(S, opts.ligand)
	if err != nil {
		return nil, nil, errDecorate(err, "prepare.BindingSites")
	}
	return ligs, contact.BindingSites(S, ligs, opts.contact), nil
}

// Sequence returns the sequence record of S with the conservation read from the
// files given per chain name, which can be nil, and the binding sites of the
// ligands of S.
func Sequence(S *protein.Structure, files map[string]string, opts *Options) (*export.Sequence, *feature.Map[float64], *protein.KeySet, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	_, sites, err := BindingSites(S, opts)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "prepare.Sequence")
	}
	cons, err := conservation.Load(S, lookup(files), opts.conservation)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "prepare.Sequence")
	}
	return export.NewSequence(S, cons, sites), cons, sites, nil
}

// Config names the input and output files of ForPrankWeb.
type Config struct {
	Conservation map[string]string //conservation file per chain name
	Predictions  string            //P2Rank predictions, optional
	OutputDir    string
}

// ForPrankWeb writes to the output directory prediction.json, with the pockets
// of the predictions file, if one is given, and sequence.json, with the
// sequence record of S. If plots are requested and there are scores, it also
// draws conservation.png and distributions.png.
func ForPrankWeb(S *protein.Structure, cfg Config, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	l := opts.conservation.Logger()
	if cfg.Predictions != "" {
		f, err := os.Open(cfg.Predictions)
		if err != nil {
			return err
		}
		pockets, err := export.ReadPockets(f)
		f.Close()
		if err != nil {
			return errDecorate(err, "prepare.ForPrankWeb")
		}
		if err := writeFile(filepath.Join(cfg.OutputDir, "prediction.json"), func(w io.Writer) error { return export.WriteJSON(w, pockets) }); err != nil {
			return errDecorate(err, "prepare.ForPrankWeb")
		}
		l.Printf("prepare: %d pockets from %s", len(pockets), cfg.Predictions)
	}
	seq, cons, sites, err := Sequence(S, cfg.Conservation, opts)
	if err != nil {
		return errDecorate(err, "prepare.ForPrankWeb")
	}
	if err := writeFile(filepath.Join(cfg.OutputDir, "sequence.json"), func(w io.Writer) error { return export.WriteJSON(w, seq) }); err != nil {
		return errDecorate(err, "prepare.ForPrankWeb")
	}
	if !opts.plots || len(seq.Scores) == 0 {
		return nil
	}
	if err := chemplot.Profile(seq, S.ID, filepath.Join(cfg.OutputDir, "conservation.png")); err != nil {
		return err
	}
	div := histo.Uniform(0, 1, 10)
	div[len(div)-1] = math.Nextafter(1, 2) //so scores of 1 are counted
	site, rest := histo.Compare(cons, sites, div)
	in, out := histo.Split(cons, sites)
	l.Printf("prepare: binding site conservation %s", histo.Summarize(in))
	l.Printf("prepare: other residues conservation %s", histo.Summarize(out))
	return chemplot.Distributions(S.ID, filepath.Join(cfg.OutputDir, "distributions.png"), site, rest)
}

// ConservationFeature writes the conservation of S, read from the files given
// per chain name, as a CSV feature file. If def is not nil, the polymer residues
// without a score in the chains of files are given *def, in structure order.
func ConservationFeature(out io.Writer, S *protein.Structure, files map[string]string, def *float64, header bool, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	cons, err := conservation.Load(S, lookup(files), opts.conservation)
	if err != nil {
		return errDecorate(err, "prepare.ConservationFeature")
	}
	opts.conservation.Logger().Printf("prepare: loaded %d values for %s", cons.Len(), S.ID)
	if def != nil {
		for _, c := range S.Chains {
			if name := c.NameOrDefault(); files[name] != "" {
				feature.FillChainWithDefault(cons, S, name, *def)
			}
		}
	}
	return export.WriteFeatureCSV(out, cons, "conservation", header)
}

// WriteFASTA writes one FASTA file per chain in chains, naming each file after
// template with the chain name replacing {chain}.
func WriteFASTA(S *protein.Structure, chains []string, template string) error {
	for _, c := range chains {
		name := strings.ReplaceAll(template, "{chain}", c)
		if err := writeFile(name, func(w io.Writer) error { return export.WriteFASTA(w, S, c) }); err != nil {
			return errDecorate(err, "prepare.WriteFASTA")
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(protein.Error); ok {
		e.Decorate(caller)
	}
	return err
}
