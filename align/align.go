/*
 * align.go, part of protein-utils.
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

// Package align aligns two sequences of one-letter residue codes by their
// longest common subsequence.
package align

// Pair matches the position A of the first sequence with the position B
// of the second one.
type Pair struct {
	A, B int
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func same(a, b byte) bool {
	return upper(a) == upper(b)
}

// Equal returns true if a and b have the same letters, ignoring case.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// LCS returns the (len(a)+1)x(len(b)+1) table of longest common subsequence
// lengths: the element i,j is the length of the LCS of a[:i] and b[:j].
func LCS(a, b []byte) [][]int {
	n, m := len(a), len(b)
	t := make([][]int, n+1)
	for i := range t {
		t[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if same(a[i-1], b[j-1]) {
				t[i][j] = t[i-1][j-1] + 1
			} else {
				t[i][j] = max(t[i-1][j], t[i][j-1])
			}
		}
	}
	return t
}

// Backtrack walks the table from LCS(a, b) back from the last element and returns
// the matched positions in increasing order. When both ways back have the same
// length, it moves back in b.
func Backtrack(a, b []byte, t [][]int) []Pair {
	ret := make([]Pair, 0, min(len(a), len(b)))
	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		switch {
		case same(a[i-1], b[j-1]):
			ret = append(ret, Pair{i - 1, j - 1})
			i--
			j--
		case t[i-1][j] > t[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(ret)-1; l < r; l, r = l+1, r-1 {
		ret[l], ret[r] = ret[r], ret[l]
	}
	return ret
}

// Sequences aligns a and b. If they are equal, ignoring case, every position is
// matched with itself and no table is built. Otherwise the LCS is used.
func Sequences(a, b []byte) []Pair {
	if Equal(a, b) {
		ret := make([]Pair, len(a))
		for i := range a {
			ret[i] = Pair{i, i}
		}
		return ret
	}
	return Backtrack(a, b, LCS(a, b))
}
