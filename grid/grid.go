/*
 * grid.go, part of protein-utils.
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

// Package grid buckets points in 3D space into cubic cells of fixed size and
// uses the cells to cluster elements by single linkage.
package grid

import "math"

// CellKey is the integer index of a cell along the 3 axes.
type CellKey [3]int

// CellOf returns the key of the cell of edge size that contains p.
// p must have 3 elements.
func CellOf(p []float64, size float64) CellKey {
	return CellKey{
		int(math.Floor(p[0] / size)),
		int(math.Floor(p[1] / size)),
		int(math.Floor(p[2] / size)),
	}
}

// Adjacent is the neighbour test used by the clustering sweep. It requires
// the absolute difference of the keys to be strictly less than 1 on every
// axis, which only holds for the same cell.
func Adjacent(a, b CellKey) bool {
	for i := 0; i < 3; i++ {
		if abs(a[i]-b[i]) >= 1 {
			return false
		}
	}
	return true
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Cell is one cubic cell of a Grid with the items that fell in it.
type Cell[T any] struct {
	Key     CellKey
	Content []T
}

// Grid is a sparse set of cells. Cells are only created when something
// is put in them and they are kept in creation order.
type Grid[T any] struct {
	size  float64
	cells []*Cell[T]
	index map[CellKey]*Cell[T]
}

// New returns an empty grid with cells of edge size. It panics
// if size is not a positive number.
func New[T any](size float64) *Grid[T] {
	if !(size > 0) || math.IsInf(size, 1) {
		panic(ErrCellSize)
	}
	return &Grid[T]{size: size, index: make(map[CellKey]*Cell[T])}
}

// Size returns the edge length of the cells.
func (G *Grid[T]) Size() float64 {
	return G.size
}

// Add puts item in the cell containing p, creating the cell if needed,
// and returns that cell.
func (G *Grid[T]) Add(p []float64, item T) *Cell[T] {
	k := CellOf(p, G.size)
	c, ok := G.index[k]
	if !ok {
		c = &Cell[T]{Key: k}
		G.index[k] = c
		G.cells = append(G.cells, c)
	}
	c.Content = append(c.Content, item)
	return c
}

// Cell returns the cell with key k, if it exists.
func (G *Grid[T]) Cell(k CellKey) (*Cell[T], bool) {
	c, ok := G.index[k]
	return c, ok
}

// Cells returns the non-empty cells in creation order.
func (G *Grid[T]) Cells() []*Cell[T] {
	return G.cells
}

// Len returns the number of cells.
func (G *Grid[T]) Len() int {
	return len(G.cells)
}

// Neighbours returns the existing cells that pass the Adjacent test
// with c, c itself included.
func (G *Grid[T]) Neighbours(c *Cell[T]) []*Cell[T] {
	return G.around(c, Adjacent)
}

// FullNeighbours returns the existing cells in the 3x3x3 block centered
// in c, c itself included.
func (G *Grid[T]) FullNeighbours(c *Cell[T]) []*Cell[T] {
	return G.around(c, anyCell)
}

// Near returns the existing cells in the 3x3x3 block centered in the cell
// that would contain p, whether that cell exists or not. Any point at less than
// Size() from p is in one of them.
func (G *Grid[T]) Near(p []float64) []*Cell[T] {
	return G.aroundKey(CellOf(p, G.size), anyCell)
}

func (G *Grid[T]) around(c *Cell[T], accept func(a, b CellKey) bool) []*Cell[T] {
	return G.aroundKey(c.Key, accept)
}

func (G *Grid[T]) aroundKey(center CellKey, accept func(a, b CellKey) bool) []*Cell[T] {
	ret := make([]*Cell[T], 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				k := CellKey{center[0] + dx, center[1] + dy, center[2] + dz}
				o, ok := G.index[k]
				if !ok || !accept(center, k) {
					continue
				}
				ret = append(ret, o)
			}
		}
	}
	return ret
}

func anyCell(a, b CellKey) bool { return true }
