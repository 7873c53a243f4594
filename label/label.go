// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label decodes the labels of the nodes
// in a decorated phylogenetic tree.
//
// A node label multiplexes up to four fields:
// a bootstrap support value,
// a taxonomic annotation,
// a genome identifier,
// and a RED value.
// The label is encoded as follows
// (rules are checked in order):
//
//   - A suffix "|RED=<float>" stores the RED value,
//     and it is removed before reading any other field.
//   - If the label has a colon,
//     it is "<bootstrap>:<taxonomy>",
//     for example "'1.0:g__Xenobium|RED=0.931'".
//   - If the label is a number with the form "0.996",
//     it is a bootstrap value.
//   - If the label contains a taxonomy marker ("__")
//     the whole label is a taxonomy.
//   - Otherwise,
//     the label is a genome identifier.
//
// Surrounding quotes are removed from the label.
// Any field not found in the label is null.
package label

import (
	"regexp"
	"strconv"
	"strings"
)

// Null is the string used to represent a null value
// in a table.
const Null = "NA"

// TaxonMarker is the substring used to indicate
// a taxonomic rank prefix
// (e.g., "p__", "g__").
const TaxonMarker = "__"

const quotes = `'"`

var (
	redSuffix      = regexp.MustCompile(`\|RED=.*$`)
	redValue       = regexp.MustCompile(`\|RED=(.*)$`)
	bootstrapOnly  = regexp.MustCompile(`^[0-9]\.[0-9]{1,3}$`)
	bootstrapColon = regexp.MustCompile(`^([0-9]\.[0-9]{1,3}):`)
)

// Fields are the fields decoded from a node label.
type Fields struct {
	Bootstrap Float
	Taxonomy  String
	Genome    String
	RED       Float
}

// Parse decodes all the fields of a node label.
func Parse(raw string) Fields {
	return Fields{
		Bootstrap: Bootstrap(raw),
		Taxonomy:  Taxonomy(raw),
		Genome:    Genome(raw),
		RED:       RED(raw),
	}
}

// Bootstrap returns the bootstrap value of a label.
func Bootstrap(raw string) Float {
	s := clean(raw)
	if strings.Contains(s, ":") {
		m := bootstrapColon.FindStringSubmatch(s)
		if m == nil {
			return Float{}
		}
		return parseFloat(m[1])
	}
	if !bootstrapOnly.MatchString(s) {
		return Float{}
	}
	return parseFloat(s)
}

// Taxonomy returns the taxonomic annotation of a label.
func Taxonomy(raw string) String {
	s := clean(raw)
	if i := strings.Index(s, ":"); i >= 0 {
		return newString(strings.Trim(s[i+1:], quotes))
	}
	if bootstrapOnly.MatchString(s) {
		return String{}
	}
	if !strings.Contains(s, TaxonMarker) {
		return String{}
	}
	return newString(s)
}

// Genome returns the genome identifier of a label.
func Genome(raw string) String {
	s := clean(raw)
	if strings.Contains(s, ":") {
		return String{}
	}
	if bootstrapOnly.MatchString(s) {
		return String{}
	}
	if strings.Contains(s, TaxonMarker) {
		return String{}
	}
	return newString(s)
}

// RED returns the RED value of a label.
func RED(raw string) Float {
	m := redValue.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Float{}
	}
	v := strings.TrimSpace(strings.TrimRight(m[1], quotes))
	return parseFloat(v)
}

// HasRED returns true if the label has a RED suffix,
// even if the value is not a valid number.
func HasRED(raw string) bool {
	return redSuffix.MatchString(raw)
}

// Clean removes the RED suffix
// and the surrounding quotes of a label.
func clean(raw string) string {
	s := redSuffix.ReplaceAllString(strings.TrimSpace(raw), "")
	return strings.Trim(strings.TrimSpace(s), quotes)
}

func parseFloat(s string) Float {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

func newString(s string) String {
	if s == "" {
		return String{}
	}
	return String{Value: s, Valid: true}
}
