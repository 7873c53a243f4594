// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nodetable implements a table of tree nodes
// with the fields decoded from the node labels,
// the membership of the node genome in a reference taxonomy,
// and the novelty bin of the node RED value.
package nodetable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/redrank/label"
	"github.com/js-arias/redrank/newick"
	"github.com/js-arias/redrank/rank"
	"github.com/js-arias/redrank/taxonomy"
)

// DefaultReference is the default name
// of the reference genome set.
const DefaultReference = "GTDB"

// Other is the membership tag of genomes
// that are not in the reference set.
const Other = "other"

// Node is a row of the table.
type Node struct {
	Parent int
	ID     int
	Length label.Float
	Label  string

	// Group is the grouping tag of the node,
	// derived from the membership.
	Group label.String

	Bootstrap label.Float
	Taxonomy  label.String
	Genome    label.String

	// Membership is the name of the reference set
	// if the genome is in the reference,
	// or "other".
	Membership string

	RED     label.Float
	Novelty label.String
}

// Table is a table of tree nodes,
// sorted by node ID.
type Table struct {
	Nodes []Node
}

// Options are the options used to build a table.
type Options struct {
	// Name of the reference genome set.
	// If empty,
	// DefaultReference will be used.
	Reference string

	// If Clades is true,
	// internal nodes take the group
	// of the genomes they contain.
	Clades bool
}

// Build builds a node table from a tree
// and a reference taxonomy,
// using the indicated rank boundaries
// to assign novelty bins.
func Build(t *newick.Tree, ref *taxonomy.Taxonomy, bounds rank.Table, opts Options) (*Table, error) {
	if t == nil || t.Len() == 0 {
		return nil, fmt.Errorf("empty tree")
	}
	if ref == nil || ref.Len() == 0 {
		return nil, fmt.Errorf("empty reference taxonomy")
	}
	if len(bounds) != len(rank.Ranks) {
		return nil, fmt.Errorf("expecting %d rank boundaries, got %d", len(rank.Ranks), len(bounds))
	}
	name := opts.Reference
	if name == "" {
		name = DefaultReference
	}
	member, other := Groups(name)

	tb := &Table{
		Nodes: make([]Node, 0, t.Len()),
	}
	for _, id := range t.Nodes() {
		raw := t.Label(id)
		f := label.Parse(raw)
		n := Node{
			Parent:     t.Parent(id),
			ID:         id,
			Label:      raw,
			Bootstrap:  f.Bootstrap,
			Taxonomy:   f.Taxonomy,
			Genome:     f.Genome,
			Membership: Other,
			RED:        f.RED,
		}
		if l, ok := t.Length(id); ok {
			n.Length = label.NewFloat(l)
		}
		if n.Genome.Valid {
			n.Group = label.NewString(other)
			if ref.Has(n.Genome.Value) {
				n.Membership = name
				n.Group = label.NewString(member)
			}
		}
		n.Novelty = novelty(bounds, n.RED)
		tb.Nodes = append(tb.Nodes, n)
	}

	if opts.Clades {
		tb.groupClades(t, []string{member, other})
	}
	return tb, nil
}

// Groups returns the grouping tags
// for the genomes in the reference set,
// and for the other genomes.
// For example,
// for the reference "GTDB"
// it returns "gtdb" and "nongtdb".
func Groups(reference string) (member, other string) {
	member = strings.ToLower(strings.Join(strings.Fields(reference), "_"))
	return member, "non" + member
}

// Classify sets the novelty bin of each node
// using the node RED value
// and the given rank boundaries.
func (tb *Table) Classify(bounds rank.Table) {
	for i := range tb.Nodes {
		tb.Nodes[i].Novelty = novelty(bounds, tb.Nodes[i].RED)
	}
}

// Decorated returns the nodes with a taxonomy
// and a RED value.
func (tb *Table) Decorated() []rank.Decorated {
	var d []rank.Decorated
	for _, n := range tb.Nodes {
		if !n.Taxonomy.Valid || !n.RED.Valid {
			continue
		}
		d = append(d, rank.Decorated{
			Taxonomy: n.Taxonomy.Value,
			RED:      n.RED.Value,
		})
	}
	return d
}

// Node returns a node with the given ID.
func (tb *Table) Node(id int) (Node, bool) {
	i, ok := slices.BinarySearchFunc(tb.Nodes, id, func(n Node, id int) int {
		return n.ID - id
	})
	if !ok {
		return Node{}, false
	}
	return tb.Nodes[i], true
}

// Root returns the ID of the root node.
// The root is the only node
// that is its own parent.
func (tb *Table) Root() (int, bool) {
	for _, n := range tb.Nodes {
		if n.Parent == n.ID {
			return n.ID, true
		}
	}
	return 0, false
}

func novelty(bounds rank.Table, red label.Float) label.String {
	if !red.Valid {
		return label.String{}
	}
	b, ok := bounds.Classify(red.Value)
	if !ok {
		return label.String{}
	}
	return label.NewString(b.Label)
}

// GroupClades sets the group of the internal nodes.
// For each group,
// all the ancestors of the genomes in the group
// up to their most recent common ancestor
// are assigned to the group.
// Groups are processed in order,
// so a later group overwrites a previous one.
func (tb *Table) groupClades(t *newick.Tree, groups []string) {
	idx := make(map[int]int, len(tb.Nodes))
	for i, n := range tb.Nodes {
		idx[n.ID] = i
	}

	for _, g := range groups {
		var focus []int
		for _, n := range tb.Nodes {
			if n.Group.Valid && n.Group.Value == g && n.Genome.Valid {
				focus = append(focus, n.ID)
			}
		}
		if len(focus) < 2 {
			continue
		}

		mrca := mrca(t, focus)
		for _, id := range focus {
			if id == mrca {
				continue
			}
			for a := t.Parent(id); ; a = t.Parent(a) {
				tb.Nodes[idx[a]].Group = label.NewString(g)
				if a == mrca || t.IsRoot(a) {
					break
				}
			}
		}
	}
}

// Path returns the path from a node to the root,
// starting at the node.
func path(t *newick.Tree, id int) []int {
	p := []int{id}
	for !t.IsRoot(id) {
		id = t.Parent(id)
		p = append(p, id)
	}
	return p
}

// Mrca returns the most recent common ancestor
// of a set of nodes.
func mrca(t *newick.Tree, ids []int) int {
	anc := path(t, ids[0])
	for _, id := range ids[1:] {
		in := make(map[int]bool)
		for _, a := range path(t, id) {
			in[a] = true
		}
		for i, a := range anc {
			if in[a] {
				anc = anc[i:]
				break
			}
		}
	}
	return anc[0]
}
