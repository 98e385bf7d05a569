/*
 * conservation.go, part of protein-utils.
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

// Package conservation reads per-residue conservation scores and attaches them
// to the residues of a structure, aligning the sequence the scores were computed
// on with the sequence of the structure when they differ.
package conservation

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/align"
	"github.com/siret/protein-utils/feature"
)

// Attach gives to each residue the score of the row it is aligned to. Residues
// and rows with the unknown code take no part. Residues left without a row get
// no entry. If both sequences are equal, residue i gets the score of row i.
func Attach(residues []*protein.Residue, rows []ScoreRow) *feature.Map[float64] {
	res := make([]*protein.Residue, 0, len(residues))
	a := make([]byte, 0, len(residues))
	for _, r := range residues {
		if r.Unknown() {
			continue
		}
		res = append(res, r)
		a = append(a, r.Letter())
	}
	known := make([]ScoreRow, 0, len(rows))
	b := make([]byte, 0, len(rows))
	for _, s := range rows {
		if s.Unknown() {
			continue
		}
		known = append(known, s)
		b = append(b, s.Letter)
	}
	ret := feature.New[float64]()
	for _, p := range align.Sequences(a, b) {
		ret.Insert(res[p.A].Key, known[p.B].Score)
	}
	return ret
}

// Options contains the options for Load.
type Options struct {
	logger *log.Logger
	def    float64
	fill   bool
}

// DefaultOptions returns options that log to the standard logger, and leave
// residues without score out of the result.
func DefaultOptions() *Options {
	return &Options{}
}

// Logger returns the logger for the diagnostics of Load, and sets it to a new one,
// if given. A nil logger means the standard one.
func (O *Options) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 {
		O.logger = l[0]
	}
	if O.logger == nil {
		return log.Default()
	}
	return O.logger
}

// Default returns the score given to residues without one when Fill is set,
// and sets it to a new value, if given.
func (O *Options) Default(v ...float64) float64 {
	if len(v) > 0 {
		O.def = v[0]
	}
	return O.def
}

// Fill returns whether residues without a score get the Default one, and
// sets it to a new value, if given.
func (O *Options) Fill(f ...bool) bool {
	if len(f) > 0 {
		O.fill = f[0]
	}
	return O.fill
}

// Load reads the scores for each chain of S from the file given by files for the
// author name of the chain (or "A", if the chain has none) and attaches them to
// its amino acids. Chains are processed in order. Chains with no amino acids,
// and chains for which files returns an empty string or a file that doesn't
// exist, are skipped. A malformed file makes Load fail. A nil opts means
// DefaultOptions.
func Load(S *protein.Structure, files func(chain string) string, opts *Options) (*feature.Map[float64], error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	l := opts.Logger()
	ret := feature.New[float64]()
	for _, c := range S.Chains {
		name := c.NameOrDefault()
		aa := c.AminoAcids()
		if len(aa) == 0 {
			l.Printf("conservation: ignoring chain %s with no amino acids", name)
			continue
		}
		path := files(name)
		if path == "" {
			l.Printf("conservation: no file for chain %s", name)
			continue
		}
		rows, err := ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			l.Printf("conservation: file %s for chain %s does not exist", path, name)
			continue
		}
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Load (chain %s)", name))
		}
		m := Attach(aa, rows)
		if miss := len(aa) - m.Len(); miss > 0 {
			l.Printf("conservation: %d of %d residues of chain %s have no score", miss, len(aa), name)
		}
		ret.Merge(m)
	}
	if opts.fill {
		if n := feature.FillWithDefault(ret, S, opts.def); n > 0 {
			l.Printf("conservation: %d residues got the default score %g", n, opts.def)
		}
	}
	return ret, nil
}

// Error is the error type of the conservation package. It fulfills protein.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("conservation error: %s (%s)", err.message, strings.Join(err.deco, " <- "))
	}
	return fmt.Sprintf("conservation file %s error: %s (%s)", err.filename, err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds dec to the decoration of the error.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file the error comes from.
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const ErrMalformedRow = "malformed score row"

func errDecorate(err error, caller string) error {
	if err2, ok := err.(protein.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
