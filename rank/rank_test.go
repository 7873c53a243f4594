// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rank_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/redrank/rank"
)

var medians = []float64{0.22, 0.39, 0.53, 0.73, 0.91}

func TestNew(t *testing.T) {
	tb, err := rank.New(medians)
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	want := []float64{
		0,
		(0.22 + 0.39) / 2,
		(0.39 + 0.53) / 2,
		(0.53 + 0.73) / 2,
		(0.73 + 0.91) / 2,
		(0.91 + 1) / 2,
		1,
	}
	if len(tb) != len(want) {
		t.Fatalf("rows: got %d, want %d", len(tb), len(want))
	}
	for i, b := range tb {
		if b.Rank != rank.Ranks[i] {
			t.Errorf("row %d: rank: got %q, want %q", i, b.Rank, rank.Ranks[i])
		}
		if math.Abs(b.RED-want[i]) > 1e-12 {
			t.Errorf("row %d (%s): boundary: got %.6f, want %.6f", i, b.Rank, b.RED, want[i])
		}
	}

	if tb[0].Label != "" {
		t.Errorf("root label: got %q, want empty", tb[0].Label)
	}
}

func TestLabels(t *testing.T) {
	tb, err := rank.New([]float64{0.2, 0.36, 0.56, 0.7, 0.9})
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	want := []string{
		"Phylum (0-0.28]",
		"Class (0.28-0.46]",
		"Order (0.46-0.63]",
		"Family (0.63-0.8]",
		"Genus (0.8-0.95]",
		"Species/Strain (0.95-1]",
	}
	if got := tb.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels: got %q, want %q", got, want)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := rank.New(medians[:4]); err == nil {
		t.Errorf("four medians: expecting error")
	}
	if _, err := rank.New(append(medians, 0.99)); err == nil {
		t.Errorf("six medians: expecting error")
	}

	// unordered medians are accepted
	tb, err := rank.New([]float64{0.9, 0.1, 0.5, 0.2, 0.3})
	if err != nil {
		t.Fatalf("unordered medians: unexpected error: %v", err)
	}
	if len(tb) != len(rank.Ranks) {
		t.Errorf("unordered medians: rows: got %d, want %d", len(tb), len(rank.Ranks))
	}
}

func TestClassify(t *testing.T) {
	tb, err := rank.New(medians)
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	tests := map[string]struct {
		red  float64
		rank string
		ok   bool
	}{
		"zero":            {red: 0},
		"negative":        {red: -0.1},
		"above one":       {red: 1.2},
		"NaN":             {red: math.NaN()},
		"phylum":          {red: 0.1, rank: rank.Phylum, ok: true},
		"phylum boundary": {red: tb[1].RED, rank: rank.Phylum, ok: true},
		"class":           {red: tb[1].RED + 1e-9, rank: rank.Class, ok: true},
		"order":           {red: 0.5, rank: rank.Order, ok: true},
		"family":          {red: 0.7, rank: rank.Family, ok: true},
		"genus":           {red: 0.9, rank: rank.Genus, ok: true},
		"species":         {red: 0.99, rank: rank.Species, ok: true},
		"one":             {red: 1, rank: rank.Species, ok: true},
	}

	for name, test := range tests {
		b, ok := tb.Classify(test.red)
		if ok != test.ok {
			t.Errorf("%s: RED %.6f: classified %v, want %v", name, test.red, ok, test.ok)
			continue
		}
		if b.Rank != test.rank {
			t.Errorf("%s: RED %.6f: got rank %q, want %q", name, test.red, b.Rank, test.rank)
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	tb, err := rank.New(rank.Bacteria)
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	for _, red := range []float64{0.01, 0.3, 0.5, 0.75, 0.9, 0.97, 1} {
		b1, ok1 := tb.Classify(red)
		b2, ok2 := tb.Classify(red)
		if ok1 != ok2 || b1 != b2 {
			t.Errorf("RED %.3f: got %v and %v", red, b1, b2)
		}
	}
}

func TestPreset(t *testing.T) {
	tests := map[string][]float64{
		"d__Bacteria": rank.Bacteria,
		"bacteria":    rank.Bacteria,
		"d__Archaea":  rank.Archaea,
		"Archaea":     rank.Archaea,
	}
	for d, want := range tests {
		got, err := rank.Preset(d)
		if err != nil {
			t.Errorf("domain %q: unexpected error: %v", d, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("domain %q: got %v, want %v", d, got, want)
		}
	}

	if _, err := rank.Preset("d__Eukaryota"); err == nil {
		t.Errorf("unknown domain: expecting error")
	}

	p, _ := rank.Preset("bacteria")
	p[0] = 0
	if rank.Bacteria[0] == 0 {
		t.Errorf("preset values must be a copy")
	}
}

func TestMedians(t *testing.T) {
	nodes := []rank.Decorated{
		{Taxonomy: "p__Firmicutes; c__Bacilli", RED: 0.30},
		{Taxonomy: "p__Proteobacteria", RED: 0.20},
		{Taxonomy: "p__Actinomycetota", RED: 0.25},
		{Taxonomy: "c__Clostridia", RED: 0.40},
		{Taxonomy: "c__Gammaproteobacteria", RED: 0.50},
		{Taxonomy: "o__Bacillales", RED: 0.55},
		{Taxonomy: "f__Bacillaceae; g__Bacillus", RED: 0.75},
		{Taxonomy: "g__Escherichia", RED: 0.93},
		{Taxonomy: "g__Salmonella", RED: 0.91},
	}

	got, err := rank.Medians(nodes)
	if err != nil {
		t.Fatalf("unable to calculate medians: %v", err)
	}
	want := []float64{0.25, 0.40, 0.55, 0.75, 0.91}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("medians: got %v, want %v", got, want)
	}

	if _, err := rank.Medians(nodes[:6]); err == nil {
		t.Errorf("missing ranks: expecting error")
	}
}

func TestMediansEvenCount(t *testing.T) {
	nodes := []rank.Decorated{
		{Taxonomy: "p__Firmicutes", RED: 0.4},
		{Taxonomy: "p__Proteobacteria", RED: 0.2},
		{Taxonomy: "c__Bacilli", RED: 0.3},
		{Taxonomy: "c__Clostridia", RED: 0.5},
		{Taxonomy: "c__Gammaproteobacteria", RED: 0.45},
		{Taxonomy: "c__Alphaproteobacteria", RED: 0.35},
		{Taxonomy: "o__Bacillales", RED: 0.55},
		{Taxonomy: "f__Bacillaceae", RED: 0.75},
		{Taxonomy: "g__Bacillus", RED: 0.93},
		{Taxonomy: "g__Escherichia", RED: 0.91},
	}

	got, err := rank.Medians(nodes)
	if err != nil {
		t.Fatalf("unable to calculate medians: %v", err)
	}
	want := []float64{0.3, 0.4, 0.55, 0.75, 0.92}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-9 {
			t.Errorf("%s: got %.6f, want %.6f", rank.Ranks[i+1], got[i], w)
		}
	}
}
