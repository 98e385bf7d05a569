/*
 * pockets.go, part of protein-utils.
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

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pocket is one pocket predicted by P2Rank.
type Pocket struct {
	Name               string   `json:"name"`
	Rank               int      `json:"rank"`
	Score              float64  `json:"score"`
	Probability        float64  `json:"probability"`
	ConnollyPoints     int      `json:"numOfConnollyPoints"`
	SurfaceAtoms       int      `json:"numOfSurfaceAtoms"`
	CenterX            float64  `json:"centerX"`
	CenterY            float64  `json:"centerY"`
	CenterZ            float64  `json:"centerZ"`
	ResidueIDs         []string `json:"residueIds"`
	SurfaceAtomSerials []int    `json:"surfAtomIds"`
}

const pocketFields = 11

// ReadPockets parses a P2Rank predictions file: a header line followed by one
// pocket per line with the fields name, rank, score, probability, sas_points,
// surf_atoms, center_x, center_y, center_z, residue_ids and surf_atom_ids.
// The last two are space separated lists.
func ReadPockets(in io.Reader) ([]Pocket, error) {
	c := csv.NewReader(in)
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	if _, err := c.Read(); err != nil {
		if err == io.EOF {
			return []Pocket{}, nil
		}
		return nil, NewError("input", "ReadPockets", err)
	}
	ret := make([]Pocket, 0)
	for {
		rec, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewError("input", "ReadPockets", err)
		}
		line, _ := c.FieldPos(0)
		p, err := parsePocket(rec)
		if err != nil {
			return nil, NewError("input", "ReadPockets", fmt.Errorf("line %d: %w", line, err))
		}
		ret = append(ret, p)
	}
	return ret, nil
}

func parsePocket(rec []string) (Pocket, error) {
	var p Pocket
	if len(rec) < pocketFields {
		return p, fmt.Errorf("expected %d fields, found %d", pocketFields, len(rec))
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	ints := []*int{&p.Rank, &p.ConnollyPoints, &p.SurfaceAtoms}
	for i, idx := range []int{1, 4, 5} {
		v, err := strconv.Atoi(rec[idx])
		if err != nil {
			return p, err
		}
		*ints[i] = v
	}
	floats := []*float64{&p.Score, &p.Probability, &p.CenterX, &p.CenterY, &p.CenterZ}
	for i, idx := range []int{2, 3, 6, 7, 8} {
		v, err := strconv.ParseFloat(rec[idx], 64)
		if err != nil {
			return p, err
		}
		*floats[i] = v
	}
	p.Name = rec[0]
	p.ResidueIDs = strings.Fields(rec[9])
	p.SurfaceAtomSerials = make([]int, 0)
	for _, s := range strings.Fields(rec[10]) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return p, err
		}
		p.SurfaceAtomSerials = append(p.SurfaceAtomSerials, v)
	}
	return p, nil
}
