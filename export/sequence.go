/*
 * sequence.go, part of protein-utils.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/feature"
)

// Region is the span of one chain in a Sequence. Start and End are
// inclusive positions in the Indices of the sequence.
type Region struct {
	Name  string `json:"regionName"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Sequence is the sequence record read by the pocket viewer: the amino
// acids of the structure with their keys, conservation scores and binding
// site flags, all in structure order.
type Sequence struct {
	Indices      []string  `json:"indices"`
	Seq          []string  `json:"seq"`
	Scores       []float64 `json:"scores"`
	Regions      []Region  `json:"regions"`
	BindingSites []int     `json:"bindingSites"` //positions in Indices
}

// NewSequence builds the record for the amino acids of S. Residues with unknown
// code are left out, and so are chains without amino acids. Scores are only
// given when conservation has values, residues without one get 0. Regions are
// named after the internal chain id, or "A" if it is blank. conservation and
// sites can be nil.
func NewSequence(S *protein.Structure, conservation *feature.Map[float64], sites *protein.KeySet) *Sequence {
	ret := &Sequence{
		Indices:      make([]string, 0),
		Seq:          make([]string, 0),
		Scores:       make([]float64, 0),
		Regions:      make([]Region, 0, len(S.Chains)),
		BindingSites: make([]int, 0),
	}
	scores := conservation != nil && conservation.Len() > 0
	for _, c := range S.Chains {
		aa := c.AminoAcids()
		if len(aa) == 0 {
			continue
		}
		start := len(ret.Indices)
		for _, r := range aa {
			if r.Unknown() {
				continue
			}
			ret.Seq = append(ret.Seq, string(r.Letter()))
			if scores {
				ret.Scores = append(ret.Scores, conservation.GetOrDefault(r.Key, 0))
			}
			ret.Indices = append(ret.Indices, r.Key.String())
			if sites.Has(r.Key) {
				ret.BindingSites = append(ret.BindingSites, len(ret.Indices)-1)
			}
		}
		ret.Regions = append(ret.Regions, Region{Name: c.IDOrDefault(), Start: start, End: len(ret.Indices) - 1})
	}
	return ret
}

// Len returns the number of residues in the sequence.
func (S *Sequence) Len() int {
	return len(S.Indices)
}

// String returns the one-letter sequence.
func (S *Sequence) String() string {
	return strings.Join(S.Seq, "")
}

// WriteJSON writes v as JSON to out.
func WriteJSON(out io.Writer, v any) error {
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return NewError("postprocess", "WriteJSON", err)
	}
	if err := w.Flush(); err != nil {
		return NewError("postprocess", "WriteJSON", err)
	}
	return nil
}

// ReadSequence decodes a sequence record written by WriteJSON.
func ReadSequence(in io.Reader) (*Sequence, error) {
	ret := new(Sequence)
	if err := json.NewDecoder(in).Decode(ret); err != nil {
		return nil, NewError("input", "ReadSequence", err)
	}
	return ret, nil
}

// WriteFASTA writes the polymer sequence of the chain with the given name or
// id of S, with a FASTA header naming the structure and the chain.
func WriteFASTA(out io.Writer, S *protein.Structure, chain string) error {
	c := S.Chain(chain)
	if c == nil {
		return NewError("selection", "WriteFASTA", fmt.Errorf("%s: %s", protein.ErrChainNotExists, chain))
	}
	header := ">structure|" + chain
	if S.ID != "" {
		header = ">pdb|" + S.ID + "|Chain " + chain
	}
	if _, err := fmt.Fprintf(out, "%s\n%s\n", header, c.Sequence()); err != nil {
		return NewError("postprocess", "WriteFASTA", err)
	}
	return nil
}
