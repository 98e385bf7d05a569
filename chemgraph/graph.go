/*
 * graph.go, part of protein-utils.
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

// Package chemgraph builds contact graphs of atoms on top of gonum's graph
// packages: atoms are nodes and two atoms are joined if they are close enough.
package chemgraph

import (
	"sort"

	protein "github.com/siret/protein-utils"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a graph node wrapping a protein.Atom. Its ID is the position of
// the atom in the set the graph was built from.
type Atom struct {
	*protein.Atom
	index int64
}

// ID implements graph.Node
func (A *Atom) ID() int64 {
	return A.index
}

// Graph is an undirected contact graph of atoms.
type Graph struct {
	*simple.UndirectedGraph
	atoms []*Atom
}

// New returns the graph of the atoms in ats where two atoms are joined by an
// edge if they are at cutoff or less from each other. It compares all pairs.
func New(ats protein.Atomer, cutoff float64) *Graph {
	return newGraph(ats, func(a, b *protein.Atom) bool {
		return protein.AtomDist(a, b) <= cutoff
	})
}

func newGraph(ats protein.Atomer, joined func(a, b *protein.Atom) bool) *Graph {
	G := &Graph{UndirectedGraph: simple.NewUndirectedGraph(), atoms: make([]*Atom, ats.Len())}
	for i := 0; i < ats.Len(); i++ {
		G.atoms[i] = &Atom{Atom: ats.Atom(i), index: int64(i)}
		G.AddNode(G.atoms[i])
	}
	for i, a := range G.atoms {
		for _, b := range G.atoms[i+1:] {
			if joined(a.Atom, b.Atom) {
				G.SetEdge(G.NewEdge(a, b))
			}
		}
	}
	return G
}

// Atom returns the atom with the given node id. It panics if there is none.
func (G *Graph) Atom(id int64) *protein.Atom {
	if id < 0 || id >= int64(len(G.atoms)) {
		panic(protein.ErrOutOfRange)
	}
	return G.atoms[id].Atom
}

// Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atoms)
}

// Contacts returns the atoms joined to the atom with the given id.
func (G *Graph) Contacts(id int64) protein.Atoms {
	nodes := graph.NodesOf(G.From(id))
	sortNodes(nodes)
	ret := make(protein.Atoms, len(nodes))
	for i, n := range nodes {
		ret[i] = n.(*Atom).Atom
	}
	return ret
}

// Components returns the connected components of the graph. Components are
// ordered by their first atom, and atoms keep the order they had when the
// graph was built.
func (G *Graph) Components() []protein.Atoms {
	cc := topo.ConnectedComponents(G.UndirectedGraph)
	for _, c := range cc {
		sortNodes(c)
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i][0].ID() < cc[j][0].ID() })
	ret := make([]protein.Atoms, len(cc))
	for i, c := range cc {
		ret[i] = make(protein.Atoms, len(c))
		for j, n := range c {
			ret[i][j] = n.(*Atom).Atom
		}
	}
	return ret
}

func sortNodes(n []graph.Node) {
	sort.Slice(n, func(i, j int) bool { return n[i].ID() < n[j].ID() })
}
