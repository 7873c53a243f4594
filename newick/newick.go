// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a reader
// for phylogenetic trees in Newick
// (parenthetical)
// format.
//
// Node labels are kept as found in the file,
// so quoted labels
// (e.g., 'p__Firmicutes; c__Bacilli')
// keep their quotes.
//
// Nodes are numbered as in most phylogenetic packages:
// terminals are numbered from 1
// in the order they appear in the file,
// the root is the number of terminals plus one,
// and the other internal nodes
// are numbered in pre-order.
package newick

import "slices"

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	nodes []*node // indexed by ID - 1
	root  int
	terms int
}

type node struct {
	id       int
	parent   int
	children []int
	label    string
	length   float64
	hasLen   bool
}

// Children returns the IDs of the children of a node.
func (t *Tree) Children(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == t.root
}

// IsTerm returns true if the node is a terminal.
func (t *Tree) IsTerm(id int) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	return len(n.children) == 0
}

// Label returns the label of a node,
// as it is found in the file.
func (t *Tree) Label(id int) string {
	n := t.node(id)
	if n == nil {
		return ""
	}
	return n.label
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Length returns the length of the branch
// that connects a node with its parent.
// It returns false if the branch length is not defined.
func (t *Tree) Length(id int) (float64, bool) {
	n := t.node(id)
	if n == nil {
		return 0, false
	}
	return n.length, n.hasLen
}

// Nodes returns the IDs of the nodes in the tree,
// in increasing order.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	for _, n := range t.nodes {
		ids = append(ids, n.id)
	}
	return ids
}

// Parent returns the ID of the parent of a node.
// The root is its own parent.
// It returns 0 if the node is not in the tree.
func (t *Tree) Parent(id int) int {
	n := t.node(id)
	if n == nil {
		return 0
	}
	return n.parent
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Terms returns the number of terminals in the tree.
func (t *Tree) Terms() int {
	return t.terms
}

func (t *Tree) node(id int) *node {
	if id < 1 || id > len(t.nodes) {
		return nil
	}
	return t.nodes[id-1]
}
