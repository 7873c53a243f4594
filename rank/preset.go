// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rank

import (
	"fmt"
	"slices"
	"strings"
)

// Domain tags
const (
	BacteriaDomain = "d__Bacteria"
	ArchaeaDomain  = "d__Archaea"
)

// Bacteria are the median RED values
// for bacterial ranks from Phylum to Genus
// in GTDB release 220.
var Bacteria = []float64{
	0.3280941769231098,
	0.449727838796469,
	0.6083500718998613,
	0.7576141066814935,
	0.9220350796053899,
}

// Archaea are the median RED values
// for archaeal ranks from Phylum to Genus
// in GTDB release 220.
var Archaea = []float64{
	0.2128708845277663,
	0.35878546884559126,
	0.5316295929627715,
	0.7250725361353227,
	0.9069458981600348,
}

// Preset returns a copy of the median RED values
// for a given domain.
// The domain can be given as a domain tag
// (e.g., "d__Bacteria")
// or as a plain name
// (e.g., "archaea").
func Preset(domain string) ([]float64, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "d__")
	switch d {
	case "bacteria":
		return slices.Clone(Bacteria), nil
	case "archaea":
		return slices.Clone(Archaea), nil
	}
	return nil, fmt.Errorf("unknown domain %q", domain)
}

// DomainTag returns the canonical domain tag
// of a domain name.
func DomainTag(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "d__")
	switch d {
	case "bacteria":
		return BacteriaDomain, nil
	case "archaea":
		return ArchaeaDomain, nil
	}
	return "", fmt.Errorf("unknown domain %q", domain)
}
