// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy implements a reference taxonomy,
// a set of genomes with a curated taxonomy
// (for example, the GTDB taxonomy).
package taxonomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Taxonomy is a collection of reference genomes
// and their taxonomy.
type Taxonomy struct {
	genomes map[string]string
}

// New creates a new empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		genomes: make(map[string]string),
	}
}

// Read reads a reference taxonomy from a TSV file.
//
// The TSV file must be without header
// and contain two columns:
// the genome identifier
// and the taxonomy string of the genome.
// Any other column will be ignored.
//
// Here is an example file:
//
//	RS_GCF_000005845.2	d__Bacteria;p__Pseudomonadota;c__Gammaproteobacteria;o__Enterobacterales;f__Enterobacteriaceae;g__Escherichia;s__Escherichia coli
//	RS_GCF_000009045.1	d__Bacteria;p__Bacillota;c__Bacilli;o__Bacillales;f__Bacillaceae;g__Bacillus;s__Bacillus subtilis
//
// A file without genomes is an error.
func Read(r io.Reader) (*Taxonomy, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1
	tsv.LazyQuotes = true

	tx := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("on row %d: expecting 2 columns, found %d", ln, len(row))
		}

		g := strings.TrimSpace(row[0])
		if g == "" {
			return nil, fmt.Errorf("on row %d: empty genome identifier", ln)
		}
		tx.Add(g, strings.TrimSpace(row[1]))
	}

	if tx.Len() == 0 {
		return nil, fmt.Errorf("while reading data: %v", io.ErrUnexpectedEOF)
	}
	return tx, nil
}

// Add adds a genome to the taxonomy.
func (tx *Taxonomy) Add(genome, taxonomy string) {
	genome = strings.TrimSpace(genome)
	if genome == "" {
		return
	}
	tx.genomes[genome] = taxonomy
}

// Genomes returns the genomes in the taxonomy.
func (tx *Taxonomy) Genomes() []string {
	gs := make([]string, 0, len(tx.genomes))
	for g := range tx.genomes {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}

// Has returns true if the genome
// is in the taxonomy.
func (tx *Taxonomy) Has(genome string) bool {
	_, ok := tx.genomes[genome]
	return ok
}

// Len returns the number of genomes in the taxonomy.
func (tx *Taxonomy) Len() int {
	return len(tx.genomes)
}

// Taxonomy returns the taxonomy string of a genome.
func (tx *Taxonomy) Taxonomy(genome string) string {
	return tx.genomes[genome]
}
