/*
 * keys.go, part of protein-utils.
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

import "strconv"

// ResidueKey identifies a residue within a structure. It is the key used
// everywhere residues are looked up or compared.
type ResidueKey struct {
	Chain   string
	SeqNum  int
	InsCode byte //0 or ' ' if there is no insertion code.
}

// HasInsCode returns true if the key carries an insertion code.
func (K ResidueKey) HasInsCode() bool {
	return K.InsCode != 0 && K.InsCode != ' '
}

// String returns the key as chain_number[insertion], i.e. A_27 or A_27B.
func (K ResidueKey) String() string {
	s := K.Chain + "_" + strconv.Itoa(K.SeqNum)
	if K.HasInsCode() {
		s += string(K.InsCode)
	}
	return s
}

// KeySet is a set of residue keys that remembers insertion order.
type KeySet struct {
	keys []ResidueKey
	in   map[ResidueKey]bool
}

// NewKeySet returns a set containing keys.
func NewKeySet(keys ...ResidueKey) *KeySet {
	s := &KeySet{in: make(map[ResidueKey]bool, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add puts k in the set. It returns false if k was already there.
func (S *KeySet) Add(k ResidueKey) bool {
	if S.in == nil {
		S.in = make(map[ResidueKey]bool)
	}
	if S.in[k] {
		return false
	}
	S.in[k] = true
	S.keys = append(S.keys, k)
	return true
}

// Has returns true if k is in the set. A nil set has nothing.
func (S *KeySet) Has(k ResidueKey) bool {
	if S == nil {
		return false
	}
	return S.in[k]
}

// Len returns the number of keys in the set.
func (S *KeySet) Len() int {
	if S == nil {
		return 0
	}
	return len(S.keys)
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (S *KeySet) Keys() []ResidueKey {
	if S == nil {
		return nil
	}
	return S.keys
}
