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

package protein

import (
	"fmt"
	"strings"
)

// CError is the general error type of the protein package. It fulfills Error.
type CError struct {
	msg  string
	deco []string
}

// NewError returns a CError with the given message, decorated with the caller.
func NewError(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}}
}

// Error returns the message, followed by the decoration, if any.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilStructure   = PanicMsg("protein: nil Structure")
	ErrNilResidue     = PanicMsg("protein: nil Residue")
	ErrOutOfRange     = PanicMsg("protein: index out of range")
	ErrDuplicateKey   = "duplicated residue key"
	ErrAtomNoResidue  = "atom without owning residue"
	ErrAtomTwoOwners  = "atom owned by more than one residue"
	ErrChainNotExists = "chain does not exist"
)
