/*
 * histo.go, part of protein-utils.
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

// Package histo builds histograms and summaries of per-residue values,
// such as the conservation of binding site residues against the rest.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	protein "github.com/siret/protein-utils"
	"github.com/siret/protein-utils/feature"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i counts the values v with
// dividers[i] <= v < dividers[i+1]. Values out of that range are not counted.
type Data struct {
	name       string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	Name       string    `json:"name"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Name:       D.name,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.name = a.Name
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// New returns a histogram with the given dividers, which must be sorted and
// at least 2, filled with rawdata, which can be nil. rawdata is not modified.
func New(name string, dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic(ErrDividers)
	}
	d := &Data{name: name}
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

// Uniform returns n+1 evenly spaced dividers from min to max.
func Uniform(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n+1), min, max)
}

// Name returns the name of the histogram.
func (D *Data) Name() string {
	return D.name
}

// AddData adds the given values to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//the first divider larger than v closes its bin.
		j := sort.Search(last+1, func(i int) bool { return D.dividers[i] > v })
		D.histo[j-1]++
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

// ReHisto replaces the content of the histogram with the values in rawdata.
func (D *Data) ReHisto(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histogram panics with values out of range, so they are removed first.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	D.total = len(rawdata)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data[mini:maxi], nil)
}

// Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the number of values added.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize reverts Normalize.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

// Total returns the number of values added, counted or not.
func (D *Data) Total() int {
	return D.total
}

// Dividers returns a copy of the dividers.
func (D *Data) Dividers() []float64 {
	ret := make([]float64, len(D.dividers))
	copy(ret, D.dividers)
	return ret
}

// View returns the bins. Changes to the slice change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Sum returns the sum of the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// String returns a representation of the histogram in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("%s Normalized: %v, TotalData: %d\n", D.name, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// Summary contains descriptive statistics of a set of values.
type Summary struct {
	N        int
	Mean     float64
	Std      float64
	Min, Max float64
}

// Summarize returns the statistics of values. For an empty set, all
// but N are NaN.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Max: nan}
	}
	s := Summary{N: len(values), Min: floats.Min(values), Max: floats.Max(values)}
	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	return s
}

func (S Summary) String() string {
	return fmt.Sprintf("n: %d mean: %.3f std: %.3f min: %.3f max: %.3f", S.N, S.Mean, S.Std, S.Min, S.Max)
}

// Split returns the values of m for the residues in sites and for the
// rest, in the order of m.
func Split(m *feature.Map[float64], sites *protein.KeySet) (in, out []float64) {
	in = make([]float64, 0, sites.Len())
	out = make([]float64, 0, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		if sites.Has(k) {
			in = append(in, v)
		} else {
			out = append(out, v)
		}
	}
	return in, out
}

// Compare returns the histograms of the values of m for the residues in
// sites and for the rest, both normalized.
func Compare(m *feature.Map[float64], sites *protein.KeySet, dividers []float64) (site, rest *Data) {
	in, out := Split(m, sites)
	site = New("binding site", dividers, in)
	rest = New("other", dividers, out)
	site.Normalize()
	rest.Normalize()
	return site, rest
}

// PanicMsg is the type of the messages histo panics with.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrDividers = PanicMsg("histo: dividers must be at least 2 and sorted")
