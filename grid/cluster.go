/*
 * cluster.go, part of protein-utils.
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

import (
	"fmt"
	"math"
	"strings"
)

// Cluster is a group of elements. ID is only meaningful to tell clusters
// of the same result apart.
type Cluster[T any] struct {
	ID    int
	Items []T
}

// Len returns the number of elements in the cluster.
func (C Cluster[T]) Len() int {
	return len(C.Items)
}

// Position returns the cartesian coordinates of an element.
type Position[T any] func(T) []float64

// ElementDistance measures the distance between two elements.
type ElementDistance[T any] func(a, b T) float64

// Distance measures the distance between two groups of elements.
type Distance[T any] func(a, b []T) float64

// MinDistance returns the single linkage distance built on d: the
// minimum of d over all pairs with one element from each group.
func MinDistance[T any](d ElementDistance[T]) Distance[T] {
	return func(a, b []T) float64 {
		ret := math.Inf(1)
		for _, l := range a {
			for _, r := range b {
				ret = math.Min(ret, d(l, r))
			}
		}
		return ret
	}
}

// Options contains the options for a Clustering.
type Options struct {
	fullNeighbourhood bool
}

// DefaultOptions returns the options reproducing the reference behaviour:
// elements are only compared against elements in the same cell.
func DefaultOptions() *Options {
	return new(Options)
}

// FullNeighbourhood returns whether the sweep compares each cell against
// the whole 3x3x3 block around it instead of only against itself, and sets
// it to a new value, if given.
func (O *Options) FullNeighbourhood(full ...bool) bool {
	if len(full) > 0 {
		O.fullNeighbourhood = full[0]
	}
	return O.fullNeighbourhood
}

// Clustering groups elements by single linkage, using a grid to avoid
// comparing elements that are far apart.
type Clustering[T any] struct {
	position Position[T]
	opts     *Options
}

// NewClustering returns a clustering that gets the coordinates of each element
// with position. A nil opts means DefaultOptions.
func NewClustering[T any](position Position[T], opts *Options) *Clustering[T] {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Clustering[T]{position: position, opts: opts}
}

// Cluster partitions elems so that groups at a distance, as measured by distance,
// of minDist or less end up in the same cluster. Each element is in exactly one
// of the returned clusters. Clusters are ordered by their first element, and
// the elements of a cluster keep the order they had in elems.
//
// Elements are put in a grid with cells of size 2*minDist and every cell is swept
// once against its neighbours. Merges take effect immediately, so later comparisons
// involving any of the merged elements see the whole merged group.
func (C *Clustering[T]) Cluster(elems []T, minDist float64, distance Distance[T]) ([]Cluster[T], error) {
	if len(elems) == 0 {
		return []Cluster[T]{}, nil
	}
	if !(minDist > 0) || math.IsInf(minDist, 1) {
		return nil, &Error{fmt.Sprintf("Invalid clustering distance %f", minDist), []string{"Cluster"}, true}
	}
	positions := make([][]float64, len(elems))
	for i, e := range elems {
		p := C.position(e)
		if len(p) != 3 {
			return nil, &Error{fmt.Sprintf("Element %d has %d coordinates, only 3D data is supported", i, len(p)), []string{"Cluster"}, true}
		}
		positions[i] = p
	}
	g := New[int](2 * minDist)
	for i, p := range positions {
		g.Add(p, i)
	}
	a := newArena(elems)
	neigh := g.Neighbours
	if C.opts.fullNeighbourhood {
		neigh = g.FullNeighbours
	}
	for _, cell := range g.Cells() {
		for _, other := range neigh(cell) {
			mergeCells(a, cell, other, minDist, distance)
		}
	}
	return collect(a, elems), nil
}

// MustCluster is like Cluster but panics on error.
func (C *Clustering[T]) MustCluster(elems []T, minDist float64, distance Distance[T]) []Cluster[T] {
	ret, err := C.Cluster(elems, minDist, distance)
	if err != nil {
		panic(err.Error())
	}
	return ret
}

func mergeCells[T any](a *arena[T], left, right *Cell[int], minDist float64, distance Distance[T]) {
	for _, i := range left.Content {
		for _, j := range right.Content {
			ri, rj := a.find(i), a.find(j)
			if ri == rj {
				continue //same cluster
			}
			if distance(a.members[ri], a.members[rj]) <= minDist {
				a.union(ri, rj)
			}
		}
	}
}

func collect[T any](a *arena[T], elems []T) []Cluster[T] {
	groups := a.groups()
	ret := make([]Cluster[T], len(groups))
	for k, g := range groups {
		items := make([]T, len(g))
		for l, i := range g {
			items[l] = elems[i]
		}
		ret[k] = Cluster[T]{ID: g[0] + 1, Items: items}
	}
	return ret
}

// Simple partitions elems by comparing every group with every other one,
// without a grid. It is quadratic in the number of elements and meant for small
// inputs or as a reference for Cluster.
func Simple[T any](elems []T, minDist float64, distance Distance[T]) []Cluster[T] {
	if len(elems) == 0 {
		return []Cluster[T]{}
	}
	a := newArena(elems)
	for i := range elems {
		for j := range elems {
			ri, rj := a.find(i), a.find(j)
			if ri == rj {
				continue
			}
			if distance(a.members[ri], a.members[rj]) <= minDist {
				a.union(ri, rj)
			}
		}
	}
	return collect(a, elems)
}

//Errors

// Error is the error type of the grid package. It fulfills protein.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("grid: %s", err.message)
	}
	return fmt.Sprintf("grid: %s (%s)", err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrCellSize = PanicMsg("grid: cell size must be a positive number")
