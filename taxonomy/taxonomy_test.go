// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/redrank/taxonomy"
)

const gtdb = `# GTDB taxonomy
RS_GCF_000005845.2	d__Bacteria;p__Pseudomonadota;c__Gammaproteobacteria;o__Enterobacterales;f__Enterobacteriaceae;g__Escherichia;s__Escherichia coli
RS_GCF_000009045.1	d__Bacteria;p__Bacillota;c__Bacilli;o__Bacillales;f__Bacillaceae;g__Bacillus;s__Bacillus subtilis
GB_GCA_000123.1	d__Bacteria;p__Bacillota
`

func TestRead(t *testing.T) {
	tx, err := taxonomy.Read(strings.NewReader(gtdb))
	if err != nil {
		t.Fatalf("unable to read taxonomy: %v", err)
	}

	want := []string{"GB_GCA_000123.1", "RS_GCF_000005845.2", "RS_GCF_000009045.1"}
	if g := tx.Genomes(); !reflect.DeepEqual(g, want) {
		t.Errorf("genomes: got %v, want %v", g, want)
	}
	if tx.Len() != len(want) {
		t.Errorf("len: got %d, want %d", tx.Len(), len(want))
	}
	if !tx.Has("RS_GCF_000009045.1") {
		t.Errorf("has %q: got false, want true", "RS_GCF_000009045.1")
	}
	if tx.Has("spire_mag_01842612") {
		t.Errorf("has %q: got true, want false", "spire_mag_01842612")
	}
	if s := tx.Taxonomy("GB_GCA_000123.1"); s != "d__Bacteria;p__Bacillota" {
		t.Errorf("taxonomy: got %q, want %q", s, "d__Bacteria;p__Bacillota")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"comments only": "# nothing here\n",
		"one column":    "RS_GCF_000005845.2\n",
		"empty genome":  "\td__Bacteria\n",
	}
	for name, in := range tests {
		if _, err := taxonomy.Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
