// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package nodetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/redrank/label"
)

// Column names of the fields
// read by the clade naming step.
const (
	GroupColumn      = "nongtdb_group"
	MembershipColumn = "magset"
	NoveltyColumn    = "novelty_red"
)

var header = []string{
	"parent",
	"node",
	"branch.length",
	"label",
	GroupColumn,
	"bootstrap",
	"taxonomy",
	"genome",
	MembershipColumn,
	"RED",
	NoveltyColumn,
}

// TSV writes a node table as a TSV file.
// Null values are written as "NA".
func (tb *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, n := range tb.Nodes {
		lb := n.Label
		if lb == "" {
			lb = label.Null
		}
		row := []string{
			strconv.Itoa(n.Parent),
			strconv.Itoa(n.ID),
			n.Length.String(),
			lb,
			n.Group.String(),
			n.Bootstrap.String(),
			n.Taxonomy.String(),
			n.Genome.String(),
			n.Membership,
			n.RED.String(),
			n.Novelty.String(),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadTSV reads a node table from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - parent, the ID of the parent node
//     (the root is its own parent)
//   - node, the ID of the node
//   - RED, the RED value of the node
//
// and it can contain the following fields:
//
//   - branch.length, the length of the branch to the parent
//   - label, the raw label of the node
//   - nongtdb_group, the grouping tag of the node
//   - bootstrap, the bootstrap value
//   - taxonomy, the taxonomic annotation of the node
//   - genome, the genome identifier
//   - magset, the reference set of the genome
//   - novelty_red, the novelty bin
//
// Null values are indicated by "NA"
// or an empty cell.
// Here is an example file:
//
//	parent	node	branch.length	label	nongtdb_group	bootstrap	taxonomy	genome	magset	RED	novelty_red
//	4	1	0.1	A	nongtdb	NA	NA	A	other	NA	NA
//	4	2	0.2	RS_GCF_000005845.2	gtdb	NA	NA	RS_GCF_000005845.2	GTDB	NA	NA
//	4	3	0.3	B	nongtdb	NA	NA	B	other	NA	NA
//	4	4	NA	'|RED=0.000'	NA	NA	NA	NA	other	0	NA
func ReadTSV(r io.Reader) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"parent", "node", "red"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	tb := &Table{}
	ids := make(map[int]bool)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		var n Node
		f := "node"
		n.ID, err = strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if ids[n.ID] {
			return nil, fmt.Errorf("on row %d: field %q: repeated node %d", ln, f, n.ID)
		}
		ids[n.ID] = true

		f = "parent"
		n.Parent, err = strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "red"
		n.RED, err = label.ParseFloat(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "branch.length"
		if i, ok := fields[f]; ok {
			n.Length, err = label.ParseFloat(row[i])
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
		}

		f = "bootstrap"
		if i, ok := fields[f]; ok {
			n.Bootstrap, err = label.ParseFloat(row[i])
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
		}

		if i, ok := fields["label"]; ok {
			if v := row[i]; v != label.Null {
				n.Label = v
			}
		}
		if i, ok := fields[GroupColumn]; ok {
			n.Group = label.ParseString(row[i])
		}
		if i, ok := fields["taxonomy"]; ok {
			n.Taxonomy = label.ParseString(row[i])
		}
		if i, ok := fields["genome"]; ok {
			n.Genome = label.ParseString(row[i])
		}
		if i, ok := fields[NoveltyColumn]; ok {
			n.Novelty = label.ParseString(row[i])
		}

		n.Membership = Other
		if i, ok := fields[MembershipColumn]; ok {
			if v := row[i]; v != "" && v != label.Null {
				n.Membership = v
			}
		}

		tb.Nodes = append(tb.Nodes, n)
	}
	if len(tb.Nodes) == 0 {
		return nil, fmt.Errorf("while reading data: %v", io.ErrUnexpectedEOF)
	}

	slices.SortFunc(tb.Nodes, func(a, b Node) int {
		return a.ID - b.ID
	})
	for _, n := range tb.Nodes {
		if !ids[n.Parent] {
			return nil, fmt.Errorf("node %d: parent %d not in table", n.ID, n.Parent)
		}
	}
	return tb, nil
}
