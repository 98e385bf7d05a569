/*
 * doc.go, part of protein-utils.
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

/*Package protein is the main package of protein-utils. It provides the in-memory
structure model (atoms, residues, chains) that the feature preparation for
the P2Rank binding-site predictor works on.

	**protein-utils capabilities**

    Groups heteroatoms into ligand molecules using a grid-accelerated
	single-linkage clustering (package grid, package ligand).

    Selects the polymer residues in contact with the ligands, the binding
	sites (package contact).

    Reads externally computed conservation scores and attaches them to the
	residues of a chain, even when the score sequence and the structure
	sequence disagree, by means of a longest common subsequence alignment
	(packages conservation, align and feature).

    Builds the per-residue sequence record consumed by the web frontend and
	writes it as JSON, or a feature as CSV (package export), and plots
	conservation profiles (package chemplot).

Structure files are not parsed here. Loaders build a Structure with
NewStructure and AddResidue, in the declaration order of the file, and the
order is kept everywhere afterwards.

Coordinates of sets of atoms are handled as v3.Matrix objects, an Nx3
matrix based on gonum's mat.Dense, where each row is a point in space.*/
package protein
