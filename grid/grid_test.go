/*
 * grid_test.go, part of protein-utils.
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
	"math"
	"math/rand"
	"testing"
)

type point [3]float64

func pos(p *point) []float64 { return p[:] }

func dist(a, b *point) float64 {
	x, y, z := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(x*x + y*y + z*z)
}

func points(coords ...float64) []*point {
	ret := make([]*point, 0, len(coords)/3)
	for i := 0; i+2 < len(coords); i += 3 {
		ret = append(ret, &point{coords[i], coords[i+1], coords[i+2]})
	}
	return ret
}

func randomPoints(n int, side float64, seed int64) []*point {
	r := rand.New(rand.NewSource(seed))
	ret := make([]*point, n)
	for i := range ret {
		ret[i] = &point{r.Float64() * side, r.Float64() * side, r.Float64() * side}
	}
	return ret
}

// checkPartition verifies that every element is in exactly one cluster.
func checkPartition(Te *testing.T, elems []*point, cl []Cluster[*point]) {
	Te.Helper()
	seen := make(map[*point]int)
	total := 0
	for _, c := range cl {
		for _, p := range c.Items {
			seen[p]++
			total++
		}
	}
	if total != len(elems) {
		Te.Errorf("clusters hold %d elements, %d given", total, len(elems))
	}
	for _, p := range elems {
		if seen[p] != 1 {
			Te.Errorf("element %v appears %d times", *p, seen[p])
		}
	}
}

func TestCellOf(Te *testing.T) {
	k := CellOf([]float64{-0.5, 3.3, 6.8}, 3.4)
	if k != (CellKey{-1, 0, 2}) {
		Te.Errorf("wrong cell %v", k)
	}
	if !Adjacent(CellKey{1, 2, 3}, CellKey{1, 2, 3}) {
		Te.Error("A cell must be adjacent to itself")
	}
	if Adjacent(CellKey{1, 2, 3}, CellKey{1, 2, 4}) {
		Te.Error("Only identical cells pass the adjacency test")
	}
}

func TestGridLazyCells(Te *testing.T) {
	g := New[int](2)
	g.Add([]float64{0.5, 0.5, 0.5}, 0)
	g.Add([]float64{1.5, 0.5, 0.5}, 1)
	g.Add([]float64{2.5, 0.5, 0.5}, 2)
	if g.Len() != 2 {
		Te.Fatalf("expected 2 cells, got %d", g.Len())
	}
	c, ok := g.Cell(CellKey{0, 0, 0})
	if !ok || len(c.Content) != 2 {
		Te.Fatalf("cell 0,0,0 should hold 2 items: %v", c)
	}
	if n := g.Neighbours(c); len(n) != 1 || n[0] != c {
		Te.Errorf("Neighbours should only return the cell itself, got %d cells", len(n))
	}
	if n := g.FullNeighbours(c); len(n) != 2 {
		Te.Errorf("FullNeighbours should return 2 cells, got %d", len(n))
	}
}

func TestClusterEmptyAndSingle(Te *testing.T) {
	C := NewClustering(pos, nil)
	cl, err := C.Cluster(nil, 1.7, MinDistance(dist))
	if err != nil || len(cl) != 0 {
		Te.Errorf("Clustering nothing should give nothing: %v %v", cl, err)
	}
	one := points(1, 2, 3)
	cl, err = C.Cluster(one, 1.7, MinDistance(dist))
	if err != nil {
		Te.Fatal(err)
	}
	if len(cl) != 1 || cl[0].Len() != 1 || cl[0].Items[0] != one[0] {
		Te.Errorf("One element should give one singleton cluster: %v", cl)
	}
}

func TestClusterDimensions(Te *testing.T) {
	C := NewClustering(func(p []float64) []float64 { return p }, nil)
	_, err := C.Cluster([][]float64{{0, 0, 0}, {1, 1}}, 1.7, MinDistance(func(a, b []float64) float64 { return 0 }))
	if err == nil {
		Te.Fatal("2D data should be rejected")
	}
	if e, ok := err.(*Error); !ok || !e.Critical() {
		Te.Errorf("the error should be a critical grid.Error: %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("MustCluster should panic on 2D data")
		}
	}()
	C.MustCluster([][]float64{{0, 0}}, 1.7, MinDistance(func(a, b []float64) float64 { return 0 }))
}

func TestClusterTwoMolecules(Te *testing.T) {
	//two chains of atoms 1.5 A apart, far from each other, all within cell 0,0,0 at minDist 1.7
	elems := points(
		0.1, 0.1, 0.1,
		1.6, 0.1, 0.1,
		3.1, 0.1, 0.1,
		0.1, 3.3, 3.3,
		0.1, 3.3, 1.8,
	)
	C := NewClustering(pos, DefaultOptions())
	cl, err := C.Cluster(elems, 1.7, MinDistance(dist))
	if err != nil {
		Te.Fatal(err)
	}
	checkPartition(Te, elems, cl)
	if len(cl) != 2 {
		Te.Fatalf("expected 2 clusters, got %d", len(cl))
	}
	if cl[0].Len() != 3 || cl[1].Len() != 2 {
		Te.Errorf("wrong cluster sizes %d %d", cl[0].Len(), cl[1].Len())
	}
	if cl[0].Items[0] != elems[0] || cl[1].Items[0] != elems[3] {
		Te.Error("clusters should be ordered by their first element")
	}
	if cl[0].ID == cl[1].ID {
		Te.Error("clusters should have different ids")
	}
}

// Two atoms closer than minDist but on different sides of a cell boundary
// are not merged by the same-cell sweep. The full neighbourhood sweep merges them.
func TestClusterCellBoundary(Te *testing.T) {
	elems := points(3.3, 0, 0, 3.5, 0, 0)
	cl := NewClustering(pos, nil).MustCluster(elems, 1.7, MinDistance(dist))
	if len(cl) != 2 {
		Te.Errorf("same-cell sweep: expected 2 clusters, got %d", len(cl))
	}
	o := DefaultOptions()
	o.FullNeighbourhood(true)
	cl = NewClustering(pos, o).MustCluster(elems, 1.7, MinDistance(dist))
	if len(cl) != 1 {
		Te.Errorf("full sweep: expected 1 cluster, got %d", len(cl))
	}
}

func TestClusterPartitionRandom(Te *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		elems := randomPoints(300, 20, seed)
		for _, full := range []bool{false, true} {
			o := DefaultOptions()
			o.FullNeighbourhood(full)
			cl := NewClustering(pos, o).MustCluster(elems, 1.7, MinDistance(dist))
			checkPartition(Te, elems, cl)
		}
	}
}

// With the full neighbourhood, the grid finds every pair within minDist,
// so the result must match the exhaustive clustering.
func TestClusterMatchesSimple(Te *testing.T) {
	elems := randomPoints(200, 15, 42)
	o := DefaultOptions()
	o.FullNeighbourhood(true)
	cl := NewClustering(pos, o).MustCluster(elems, 1.7, MinDistance(dist))
	ref := Simple(elems, 1.7, MinDistance(dist))
	if len(cl) != len(ref) {
		Te.Fatalf("grid gave %d clusters, exhaustive %d", len(cl), len(ref))
	}
	for i := range cl {
		if cl[i].Len() != ref[i].Len() || cl[i].Items[0] != ref[i].Items[0] {
			Te.Errorf("cluster %d differs: %d vs %d elements", i, cl[i].Len(), ref[i].Len())
		}
	}
}

func TestClusterMonotonic(Te *testing.T) {
	elems := randomPoints(250, 18, 7)
	o := DefaultOptions()
	o.FullNeighbourhood(true)
	C := NewClustering(pos, o)
	prev := len(elems) + 1
	for _, d := range []float64{0.5, 1.0, 1.7, 2.5, 4.0} {
		n := len(C.MustCluster(elems, d, MinDistance(dist)))
		if n > prev {
			Te.Errorf("minDist %.1f gave %d clusters, more than the %d of a smaller distance", d, n, prev)
		}
		prev = n
	}
	//same-cell sweep. Each grid refines the next one, so cells only grow.
	small := randomPoints(12, 0.9, 3)
	C = NewClustering(pos, nil)
	prev = len(small) + 1
	for _, d := range []float64{0.05, 0.1, 0.2, 0.4, 0.8} {
		n := len(C.MustCluster(small, d, MinDistance(dist)))
		if n > prev {
			Te.Errorf("minDist %.2f gave %d clusters, more than the %d of a smaller distance", d, n, prev)
		}
		prev = n
	}
}

func TestClusterThresholdInclusive(Te *testing.T) {
	elems := points(0.5, 0.5, 0.5, 1.5, 0.5, 0.5)
	cl := NewClustering(pos, nil).MustCluster(elems, 1.0, MinDistance(dist))
	if len(cl) != 1 {
		Te.Errorf("elements exactly minDist apart should merge, got %d clusters", len(cl))
	}
}
