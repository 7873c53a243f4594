// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of redrank project files.
//
// A redrank project is a tab-delimited file (TSV)
// used to store the different data files
// required by redrank commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the RED-decorated tree,
	// in newick format.
	Tree Dataset = "tree"

	// File for the reference taxonomy,
	// a headerless TSV of genome and taxonomy string.
	Taxonomy Dataset = "taxonomy"

	// File for the RED parameters.
	Param Dataset = "param"

	// File for the node table.
	Nodes Dataset = "nodes"
)

// Datasets are the valid dataset keywords,
// in the order they are stored in a project file.
var Datasets = []Dataset{
	Tree,
	Taxonomy,
	Param,
	Nodes,
}

// ParseDataset returns the dataset
// identified by a keyword.
// Keywords are case insensitive.
func ParseDataset(s string) (Dataset, error) {
	set := Dataset(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Datasets, set) {
		return "", fmt.Errorf("unknown dataset %q", s)
	}
	return set, nil
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# redrank project files
//	dataset	path
//	tree	gtdb_r220.decorated.tree
//	taxonomy	bac120_taxonomy_r220.tsv
//	param	red-param.tab
//	nodes	nodes.tab
//
// Rows with an empty path are ignored.
// An unknown or repeated dataset is an error.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	found := make(map[Dataset]int)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		set, err := ParseDataset(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if prev, ok := found[set]; ok {
			return nil, fmt.Errorf("on row %d: field %q: dataset %q already defined on row %d", ln, f, set, prev)
		}
		found[set] = ln

		path := strings.TrimSpace(row[fields["path"]])
		if path == "" {
			continue
		}
		p.paths[set] = path
	}
	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	path = strings.TrimSpace(path)
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project,
// in the order of Datasets.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for _, s := range Datasets {
		if _, ok := p.paths[s]; ok {
			sets = append(sets, s)
		}
	}
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# redrank project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	if err := p.tsv(bw); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}

func (p *Project) tsv(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
