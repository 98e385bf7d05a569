/*
 * errors.go, part of protein-utils.
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

// Package export writes the results of the binding site and conservation
// analysis in the formats the web viewer and the downstream predictors read:
// JSON sequence records, per-residue CSV feature files and FASTA. It also
// reads P2Rank pocket predictions, which are passed on as JSON.
package export

import (
	"fmt"
	"strings"
)

// Error is an export error that records the stage it happened in.
type Error struct {
	deco     []string
	Where    string //input, selection or postprocess
	Function string //which function gave the error
	Message  string
	err      error
}

// NewError wraps err with the stage and function it comes from.
func NewError(where, function string, err error) *Error {
	return &Error{Where: where, Function: function, Message: err.Error(), err: err}
}

func (E *Error) Error() string {
	d := ""
	if len(E.deco) > 0 {
		d = " <- " + strings.Join(E.deco, " <- ")
	}
	return fmt.Sprintf("export: %s (%s, %s%s)", E.Message, E.Where, E.Function, d)
}

// Decorate adds dec to the decoration of the error.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// Unwrap returns the wrapped error.
func (E *Error) Unwrap() error {
	return E.err
}
