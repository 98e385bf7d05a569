/*
 * feature.go, part of protein-utils.
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

// Package feature holds per-residue values, like conservation scores.
package feature

import (
	protein "github.com/siret/protein-utils"
)

// Map associates values with residue keys. Keys are kept in the order they
// were first inserted. The zero value is not usable, use New.
type Map[T any] struct {
	keys   []protein.ResidueKey
	values map[protein.ResidueKey]T
}

// New returns an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{values: make(map[protein.ResidueKey]T)}
}

// Insert sets the value for k, replacing any previous one.
func (M *Map[T]) Insert(k protein.ResidueKey, v T) {
	if _, ok := M.values[k]; !ok {
		M.keys = append(M.keys, k)
	}
	M.values[k] = v
}

// InsertIfAbsent sets the value for k only if k has none. It returns
// true if the value was set.
func (M *Map[T]) InsertIfAbsent(k protein.ResidueKey, v T) bool {
	if _, ok := M.values[k]; ok {
		return false
	}
	M.keys = append(M.keys, k)
	M.values[k] = v
	return true
}

// Get returns the value for k, and whether there was one.
func (M *Map[T]) Get(k protein.ResidueKey) (T, bool) {
	v, ok := M.values[k]
	return v, ok
}

// GetOrDefault returns the value for k, or def if there is none.
func (M *Map[T]) GetOrDefault(k protein.ResidueKey, def T) T {
	if v, ok := M.values[k]; ok {
		return v
	}
	return def
}

// Merge copies all the entries of other into M. Values of other win
// on collisions.
func (M *Map[T]) Merge(other *Map[T]) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		M.Insert(k, other.values[k])
	}
}

// Len returns the number of entries.
func (M *Map[T]) Len() int {
	return len(M.keys)
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (M *Map[T]) Keys() []protein.ResidueKey {
	return M.keys
}

// Values returns the values in the order of Keys.
func (M *Map[T]) Values() []T {
	ret := make([]T, len(M.keys))
	for i, k := range M.keys {
		ret[i] = M.values[k]
	}
	return ret
}

// FillWithDefault gives def to every protein residue of S that has no value
// in M. It returns the number of residues filled.
func FillWithDefault[T any](M *Map[T], S *protein.Structure, def T) int {
	n := 0
	for _, k := range protein.ProteinResidues(S).Keys() {
		if M.InsertIfAbsent(k, def) {
			n++
		}
	}
	return n
}

// FillChainWithDefault is like FillWithDefault, but only for the protein residues
// whose key has the given chain name. Every chain sharing that author name
// takes part. It returns the number of residues filled.
func FillChainWithDefault[T any](M *Map[T], S *protein.Structure, chain string, def T) int {
	n := 0
	for _, k := range protein.ProteinResidues(S).Keys() {
		if k.Chain != chain {
			continue
		}
		if M.InsertIfAbsent(k, def) {
			n++
		}
	}
	return n
}
