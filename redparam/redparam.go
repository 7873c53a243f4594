// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package redparam implements reading and writing
// of the parameters used to assign novelty bins
// from RED values.
package redparam

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/rank"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters
const (
	// Domain is the domain tag of the analyzed genomes.
	Domain Param = "domain"

	// Reference is the name of the reference genome set.
	Reference Param = "reference"

	// Median RED values of each rank.
	Phylum Param = "phylum"
	Class  Param = "class"
	Order  Param = "order"
	Family Param = "family"
	Genus  Param = "genus"
)

// MedianParams are the parameters
// of the median RED values,
// from Phylum to Genus.
var MedianParams = []Param{
	Phylum,
	Class,
	Order,
	Family,
	Genus,
}

// RP represents a collection of RED parameters.
type RP struct {
	name string // file name

	domain  string
	ref     string
	medians []float64
}

// New creates a new parameter collection
// with the default values
// for bacterial genomes
// and GTDB as the reference.
func New(name string) *RP {
	m, _ := rank.Preset(rank.BacteriaDomain)
	return &RP{
		name:    name,
		domain:  rank.BacteriaDomain,
		ref:     nodetable.DefaultReference,
		medians: m,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a RED parameter file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# redrank parameters
//	parameter	value
//	domain	d__Archaea
//	reference	GTDB
//	phylum	0.2128708845277663
//	class	0.35878546884559126
//	order	0.5316295929627715
//	family	0.7250725361353227
//	genus	0.9069458981600348
//
// If the domain is defined,
// and any median is not defined,
// the missing medians are taken from the domain defaults.
func Read(name string) (*RP, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rp, err := read(f, name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return rp, nil
}

func read(r io.Reader, name string) (*RP, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	rp := New(name)
	medians := make(map[Param]float64)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(strings.TrimSpace(row[fields[f]])))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		switch p {
		case Domain:
			if err := rp.SetDomain(v); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case Reference:
			if err := rp.SetReference(v); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case Phylum, Class, Order, Family, Genus:
			m, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			if m < 0 || m > 1 {
				return nil, fmt.Errorf("on row %d, field %q: invalid median RED %.6f", ln, f, m)
			}
			medians[p] = m
		}
	}

	for i, p := range MedianParams {
		if m, ok := medians[p]; ok {
			rp.medians[i] = m
		}
	}
	return rp, nil
}

// Bounds returns the rank boundaries
// defined by the median RED values.
func (rp *RP) Bounds() (rank.Table, error) {
	return rank.New(rp.medians)
}

// Domain returns the domain tag of the parameters.
func (rp *RP) Domain() string {
	return rp.domain
}

// Medians returns the median RED values
// of the ranks from Phylum to Genus.
func (rp *RP) Medians() []float64 {
	m := make([]float64, len(rp.medians))
	copy(m, rp.medians)
	return m
}

// Name returns the file name
// of the parameter collection.
func (rp *RP) Name() string {
	return rp.name
}

// Ordered returns true if the median RED values
// are in non-decreasing order.
func (rp *RP) Ordered() bool {
	for i := 1; i < len(rp.medians); i++ {
		if rp.medians[i] < rp.medians[i-1] {
			return false
		}
	}
	return true
}

// Reference returns the name of the reference genome set.
func (rp *RP) Reference() string {
	return rp.ref
}

// SetDomain sets the domain of the parameters,
// and sets the median RED values
// to the domain defaults.
func (rp *RP) SetDomain(domain string) error {
	d, err := rank.DomainTag(domain)
	if err != nil {
		return err
	}
	m, err := rank.Preset(d)
	if err != nil {
		return err
	}
	rp.domain = d
	rp.medians = m
	return nil
}

// SetMedians sets the median RED values
// of the ranks from Phylum to Genus.
func (rp *RP) SetMedians(medians []float64) error {
	if len(medians) != rank.NumMedians {
		return fmt.Errorf("expecting %d median RED values, got %d", rank.NumMedians, len(medians))
	}
	for i, m := range medians {
		if m < 0 || m > 1 {
			return fmt.Errorf("%s: invalid median RED %.6f", MedianParams[i], m)
		}
	}
	rp.medians = make([]float64, len(medians))
	copy(rp.medians, medians)
	return nil
}

// SetName sets the name of a parameter collection.
func (rp *RP) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	rp.name = name
}

// SetReference sets the name
// of the reference genome set.
func (rp *RP) SetReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("empty reference name")
	}
	if strings.EqualFold(ref, nodetable.Other) {
		return fmt.Errorf("invalid reference name %q", ref)
	}
	rp.ref = ref
	return nil
}

// Write writes a parameter collection into a file.
func (rp *RP) Write() (err error) {
	f, err := os.Create(rp.name)
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
	fmt.Fprintf(bw, "# redrank parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	if err := rp.tsv(bw); err != nil {
		return fmt.Errorf("on file %q: %v", rp.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", rp.name, err)
	}
	return nil
}

func (rp *RP) tsv(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	rows := [][]string{
		{string(Domain), rp.domain},
		{string(Reference), rp.ref},
	}
	for i, p := range MedianParams {
		rows = append(rows, []string{
			string(p),
			strconv.FormatFloat(rp.medians[i], 'f', -1, 64),
		})
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
