// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rank implements the taxonomic rank boundaries
// used to translate a RED value
// (relative evolutionary divergence)
// into a novelty bin.
package rank

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Ranks are the rows of a boundary table,
// from the root to the species.
var Ranks = []string{
	"",
	Phylum,
	Class,
	Order,
	Family,
	Genus,
	Species,
}

// Valid rank names.
const (
	Phylum  = "Phylum"
	Class   = "Class"
	Order   = "Order"
	Family  = "Family"
	Genus   = "Genus"
	Species = "Species/Strain"
)

// NumMedians is the number of median RED values
// required to build a boundary table
// (one for each rank from Phylum to Genus).
const NumMedians = 5

// A Boundary is the upper limit of a rank
// in RED units.
type Boundary struct {
	Rank string
	RED  float64

	// Label is the interval of the rank,
	// for example "Phylum (0-0.28]".
	Label string
}

// A Table is an ordered list of rank boundaries
// that spans the interval [0, 1].
type Table []Boundary

// New creates a new boundary table
// from the median RED values of the ranks
// Phylum, Class, Order, Family, and Genus
// (in that order).
//
// The boundary of each rank is the mean
// between its median
// and the median of the next rank.
// The Genus boundary is the mean between its median and 1.
// The root boundary is 0
// and the Species/Strain boundary is 1.
//
// Medians are expected to be in increasing order,
// but no validation is made.
func New(medians []float64) (Table, error) {
	if len(medians) != NumMedians {
		return nil, fmt.Errorf("expecting %d median RED values, got %d", NumMedians, len(medians))
	}

	next := append(slices.Clone(medians), 1)
	t := make(Table, len(Ranks))
	for i, r := range Ranks {
		t[i].Rank = r
		switch {
		case i == 0:
			t[i].RED = 0
		case i == len(Ranks)-1:
			t[i].RED = 1
		default:
			t[i].RED = (next[i-1] + next[i]) / 2
		}
		if i == 0 {
			continue
		}
		t[i].Label = fmt.Sprintf("%s (%s-%s]", r, round(t[i-1].RED), round(t[i].RED))
	}
	return t, nil
}

// Classify returns the rank boundary
// that contains the given RED value.
// Each rank contains the values
// in the interval (previous boundary, boundary].
// If the value is outside all intervals
// (including 0)
// it returns false.
func (t Table) Classify(red float64) (Boundary, bool) {
	if len(t) < 2 || math.IsNaN(red) {
		return Boundary{}, false
	}

	i, _ := slices.BinarySearchFunc(t, red, func(b Boundary, v float64) int {
		switch {
		case b.RED < v:
			return -1
		case b.RED > v:
			return 1
		}
		return 0
	})
	if i == 0 || i >= len(t) {
		return Boundary{}, false
	}
	return t[i], true
}

// Labels returns the interval labels
// of the ranks in the table.
func (t Table) Labels() []string {
	var ls []string
	for _, b := range t {
		if b.Label == "" {
			continue
		}
		ls = append(ls, b.Label)
	}
	return ls
}

// Boundaries returns the RED boundaries of the table
// in row order.
func (t Table) Boundaries() []float64 {
	b := make([]float64, 0, len(t))
	for _, r := range t {
		b = append(b, r.RED)
	}
	return b
}

// Round rounds a value to two decimal digits
// and formats it without trailing zeros.
func round(v float64) string {
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}
