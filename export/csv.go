/*
 * csv.go, part of protein-utils.
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
	"fmt"
	"io"
	"strings"

	"github.com/siret/protein-utils/feature"
)

var featureHeader = []string{"chain", "ins. code", "seq. code"}

// quoted returns s between double quotes, with inner quotes doubled.
func quoted(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(quoted(f))
	}
	_, err := w.WriteString("\r\n")
	return err
}

// WriteFeatureCSV writes m as CSV, one residue per line in the order of m,
// with the columns chain, ins. code, seq. code and column. Every field is
// quoted. If header is false the header line is not written, so the output
// can be appended to a previous one.
func WriteFeatureCSV[T any](out io.Writer, m *feature.Map[T], column string, header bool) error {
	w := bufio.NewWriter(out)
	if header {
		if err := writeRecord(w, append(featureHeader[:len(featureHeader):len(featureHeader)], column)); err != nil {
			return NewError("postprocess", "WriteFeatureCSV", err)
		}
	}
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		ins := ""
		if k.HasInsCode() {
			ins = string(k.InsCode)
		}
		if err := writeRecord(w, []string{k.Chain, ins, fmt.Sprint(k.SeqNum), fmt.Sprint(v)}); err != nil {
			return NewError("postprocess", "WriteFeatureCSV", err)
		}
	}
	if err := w.Flush(); err != nil {
		return NewError("postprocess", "WriteFeatureCSV", err)
	}
	return nil
}
