/*
 * disjoint.go, part of protein-utils.
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

package grid

// arena keeps the clusters being built as a disjoint-set forest over the
// element indexes. members[root] holds the elements of the cluster whose
// root is root, and is nil for any other index.
type arena[T any] struct {
	parent  []int
	rank    []int
	members [][]T
}

func newArena[T any](elems []T) *arena[T] {
	a := &arena[T]{
		parent:  make([]int, len(elems)),
		rank:    make([]int, len(elems)),
		members: make([][]T, len(elems)),
	}
	for i, e := range elems {
		a.parent[i] = i
		a.members[i] = []T{e}
	}
	return a
}

// find returns the root of i, compressing the path on the way.
func (a *arena[T]) find(i int) int {
	root := i
	for a.parent[root] != root {
		root = a.parent[root]
	}
	for a.parent[i] != root {
		a.parent[i], i = root, a.parent[i]
	}
	return root
}

// union merges the clusters with roots ri and rj and returns the new root.
// The member lists are concatenated, none is lost.
func (a *arena[T]) union(ri, rj int) int {
	if ri == rj {
		return ri
	}
	if a.rank[ri] < a.rank[rj] {
		ri, rj = rj, ri
	}
	a.parent[rj] = ri
	if a.rank[ri] == a.rank[rj] {
		a.rank[ri]++
	}
	a.members[ri] = append(a.members[ri], a.members[rj]...)
	a.members[rj] = nil
	return ri
}

// groups returns the element indexes of each cluster, clusters ordered by
// their first element and indexes in increasing order.
func (a *arena[T]) groups() [][]int {
	byroot := make(map[int]int)
	ret := make([][]int, 0)
	for i := range a.parent {
		r := a.find(i)
		g, ok := byroot[r]
		if !ok {
			g = len(ret)
			byroot[r] = g
			ret = append(ret, nil)
		}
		ret[g] = append(ret[g], i)
	}
	return ret
}
