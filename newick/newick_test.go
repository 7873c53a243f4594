// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/redrank/newick"
)

// the tree used in the tests:
//
//	        +-- A (1)
//	    +---+ 7
//	    |   +-- B (2)
//	6 --+
//	    |   +-- C (3)
//	    +---+ 8
//	        |   +-- D (4)
//	        +---+ 9
//	            +-- E (5)
const decorated = `((A:0.1,'GB_GCA_000123.1|RED=1.000':0.2)'1.0:g__Xenobium|RED=0.931':0.05,
(C:0.3,(D:0.1,E:0.1)0.996:0.2)'|RED=0.5':0.1)'|RED=0.000';
`

func TestRead(t *testing.T) {
	tr, err := newick.Read(strings.NewReader(decorated))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	if tr.Len() != 9 {
		t.Errorf("nodes: got %d, want %d", tr.Len(), 9)
	}
	if tr.Terms() != 5 {
		t.Errorf("terminals: got %d, want %d", tr.Terms(), 5)
	}
	if tr.Root() != 6 {
		t.Errorf("root: got %d, want %d", tr.Root(), 6)
	}
	if !tr.IsRoot(6) {
		t.Errorf("root: node 6 should be the root")
	}

	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if ids := tr.Nodes(); !reflect.DeepEqual(ids, want) {
		t.Errorf("nodes: got %v, want %v", ids, want)
	}

	labels := map[int]string{
		1: "A",
		2: "'GB_GCA_000123.1|RED=1.000'",
		3: "C",
		4: "D",
		5: "E",
		6: "'|RED=0.000'",
		7: "'1.0:g__Xenobium|RED=0.931'",
		8: "'|RED=0.5'",
		9: "0.996",
	}
	parents := map[int]int{
		1: 7,
		2: 7,
		3: 8,
		4: 9,
		5: 9,
		6: 6,
		7: 6,
		8: 6,
		9: 8,
	}
	lengths := map[int]float64{
		1: 0.1,
		2: 0.2,
		3: 0.3,
		4: 0.1,
		5: 0.1,
		7: 0.05,
		8: 0.1,
		9: 0.2,
	}
	for _, id := range tr.Nodes() {
		if l := tr.Label(id); l != labels[id] {
			t.Errorf("node %d: label: got %q, want %q", id, l, labels[id])
		}
		if p := tr.Parent(id); p != parents[id] {
			t.Errorf("node %d: parent: got %d, want %d", id, p, parents[id])
		}
		l, ok := tr.Length(id)
		w, hasLen := lengths[id]
		if ok != hasLen {
			t.Errorf("node %d: branch length defined: got %v, want %v", id, ok, hasLen)
		}
		if l != w {
			t.Errorf("node %d: branch length: got %.3f, want %.3f", id, l, w)
		}
		if tr.IsTerm(id) != (id <= 5) {
			t.Errorf("node %d: terminal: got %v, want %v", id, tr.IsTerm(id), id <= 5)
		}
	}

	if c := tr.Children(8); !reflect.DeepEqual(c, []int{3, 9}) {
		t.Errorf("children of 8: got %v, want %v", c, []int{3, 9})
	}
}

func TestReadFormats(t *testing.T) {
	tests := map[string]struct {
		in     string
		labels []string
	}{
		"no terminal semicolon": {
			in:     "(A,B)root",
			labels: []string{"A", "B", "root"},
		},
		"comments and spaces": {
			in:     "( A [first] , B:1[&&NHX:S=x] ) ;",
			labels: []string{"A", "B", ""},
		},
		"escaped quote": {
			in:     "('it''s',B);",
			labels: []string{"'it''s'", "B", ""},
		},
		"quoted taxonomy with spaces": {
			in:     "(A,B)'100.0:p__Firmicutes; c__Bacilli':0.1;",
			labels: []string{"A", "B", "'100.0:p__Firmicutes; c__Bacilli'"},
		},
		"single node": {
			in:     "A;",
			labels: []string{"A"},
		},
		"multiple trees": {
			in:     "(A,B);(C,D);",
			labels: []string{"A", "B", ""},
		},
	}

	for name, test := range tests {
		tr, err := newick.Read(strings.NewReader(test.in))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		var got []string
		for _, id := range tr.Nodes() {
			got = append(got, tr.Label(id))
		}
		if !reflect.DeepEqual(got, test.labels) {
			t.Errorf("%s: labels: got %q, want %q", name, got, test.labels)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"empty":             "",
		"blank":             "  \n",
		"unclosed":          "(A,B",
		"unclosed quote":    "('A,B);",
		"bad length":        "(A:x,B);",
		"unclosed comment":  "(A[,B);",
		"missing delimiter": "(A B);",
		"bare word":         "A",
		"bare phrase":       "not a tree\n",
	}

	for name, in := range tests {
		if _, err := newick.Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error for %q", name, in)
		}
	}
}
