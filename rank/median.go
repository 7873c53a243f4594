// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rank

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Prefixes are the taxonomy prefixes
// of the ranks from Phylum to Genus.
var Prefixes = []string{
	"p__",
	"c__",
	"o__",
	"f__",
	"g__",
}

// A Decorated is a tree node
// annotated with a taxonomy
// (e.g., "p__Firmicutes; c__Bacilli")
// and a RED value.
type Decorated struct {
	Taxonomy string
	RED      float64
}

// Medians returns the median RED values
// of the ranks from Phylum to Genus,
// using the nodes annotated with a taxon of that rank.
// For an even number of nodes
// the median is the mean of the two middle values.
// A node annotated with several ranks
// contributes to each one of them.
func Medians(nodes []Decorated) ([]float64, error) {
	reds := make([][]float64, len(Prefixes))
	for _, n := range nodes {
		seen := make(map[int]bool)
		for _, tx := range strings.Split(n.Taxonomy, ";") {
			tx = strings.TrimSpace(tx)
			for i, p := range Prefixes {
				if !strings.HasPrefix(tx, p) || seen[i] {
					continue
				}
				seen[i] = true
				reds[i] = append(reds[i], n.RED)
			}
		}
	}

	medians := make([]float64, len(Prefixes))
	for i, r := range reds {
		if len(r) == 0 {
			return nil, fmt.Errorf("rank %s: no annotated nodes", Ranks[i+1])
		}
		medians[i] = median(r)
	}
	return medians, nil
}

func median(r []float64) float64 {
	slices.Sort(r)
	h := len(r) / 2
	if len(r)%2 == 1 {
		return r[h]
	}
	return stat.Mean(r[h-1:h+1], nil)
}
