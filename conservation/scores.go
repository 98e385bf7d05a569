/*
 * scores.go, part of protein-utils.
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

package conservation

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	protein "github.com/siret/protein-utils"
)

// ScoreRow is one line of a conservation file: the position of the residue in
// the sequence the scores were computed on, its one-letter code and its score.
type ScoreRow struct {
	Index  int
	Letter byte
	Score  float64
}

// NewScoreRow returns a row with the letter upper-cased. Negative scores
// (the tools use -1000 for "no data") become 0.
func NewScoreRow(index int, letter byte, score float64) ScoreRow {
	if letter >= 'a' && letter <= 'z' {
		letter = letter - 'a' + 'A'
	}
	return ScoreRow{Index: index, Letter: letter, Score: max(score, 0)}
}

// Unknown returns true if the letter of the row is the unknown residue code.
func (S ScoreRow) Unknown() bool {
	return S.Letter == protein.UnknownCode
}

// Read parses tab separated rows of index, score and letter from r. Only the
// first character of the letter field is used, and any further fields are
// ignored. Blank lines and lines starting with # are skipped. A malformed row
// makes the whole read fail. name is only used in the errors.
func Read(r io.Reader, name string) ([]ScoreRow, error) {
	c := csv.NewReader(r)
	c.Comma = '\t'
	c.Comment = '#'
	c.FieldsPerRecord = -1
	c.LazyQuotes = true
	c.ReuseRecord = true
	ret := make([]ScoreRow, 0, 500)
	for {
		rec, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{err.Error(), name, []string{"Read"}, true}
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		line, _ := c.FieldPos(0)
		if len(rec) < 3 {
			return nil, &Error{fmt.Sprintf("line %d: %s, expected 3 fields, found %d", line, ErrMalformedRow, len(rec)), name, []string{"Read"}, true}
		}
		index, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, &Error{fmt.Sprintf("line %d: %s: index: %s", line, ErrMalformedRow, err), name, []string{"Read"}, true}
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, &Error{fmt.Sprintf("line %d: %s: score: %s", line, ErrMalformedRow, err), name, []string{"Read"}, true}
		}
		letter := strings.TrimSpace(rec[2])
		if letter == "" {
			return nil, &Error{fmt.Sprintf("line %d: %s: empty residue letter", line, ErrMalformedRow), name, []string{"Read"}, true}
		}
		ret = append(ret, NewScoreRow(index, letter[0], score))
	}
	return ret, nil
}

// zstdCloser lets a zstd decoder, whose Close returns nothing, be used as an io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type fileReader struct {
	io.Reader
	dec io.Closer
	f   *os.File
}

func (r *fileReader) Close() error {
	var err error
	if r.dec != nil {
		err = r.dec.Close()
	}
	return errors.Join(err, r.f.Close())
}

// Open opens the file at path for reading, decompressing it with gzip if its
// name ends in .gz, or with zstandard if it ends in .zst.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	in := bufio.NewReader(f)
	var dec io.ReadCloser
	switch {
	case strings.HasSuffix(path, ".gz"):
		dec, err = gzip.NewReader(in)
	case strings.HasSuffix(path, ".zst"):
		var z *zstd.Decoder
		z, err = zstd.NewReader(in)
		dec = zstdCloser{z}
	default:
		return &fileReader{Reader: in, f: f}, nil
	}
	if err != nil {
		f.Close()
		return nil, &Error{"can't decompress: " + err.Error(), path, []string{"Open"}, true}
	}
	return &fileReader{Reader: dec, dec: dec, f: f}, nil
}

// ReadFile opens and reads the conservation file at path.
func ReadFile(path string) ([]ScoreRow, error) {
	r, err := Open(path)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer r.Close()
	rows, err := Read(r, path)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return rows, nil
}
