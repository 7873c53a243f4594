// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	descStart   = '('
	descEnd     = ')'
	descDelim   = ','
	terminal    = ';'
	lengthStart = ':'
	commStart   = '['
	commEnd     = ']'
)

// characters that end an unquoted label
const labelEnd = "()[]':;,"

// Read reads the first tree
// from a Newick file.
// The terminal semicolon is optional
// except for a tree made of a single node.
func Read(r io.Reader) (*Tree, error) {
	p := &parser{r: bufio.NewReader(r), line: 1}

	if err := p.skip(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while reading tree: %v", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	root, err := p.subtree()
	if err != nil {
		return nil, err
	}

	if err := p.skip(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	ch, err := p.next()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err == nil && ch != terminal {
		return nil, p.errorf("expecting %q, found %q", terminal, ch)
	}
	if err != nil && len(root.children) == 0 {
		// a bare word is not a tree
		return nil, p.errorf("expecting %q after single node %q", terminal, root.label)
	}

	return number(root), nil
}

// A pnode is a node as it is read
// before assigning IDs.
type pnode struct {
	label    string
	length   float64
	hasLen   bool
	children []*pnode
}

type parser struct {
	r    *bufio.Reader
	line int
}

func (p *parser) subtree() (*pnode, error) {
	n := &pnode{}

	ch, err := p.peek()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if ch == descStart {
		p.next()
		for {
			if err := p.skip(); err != nil {
				return nil, p.eof(err)
			}
			c, err := p.subtree()
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, c)

			if err := p.skip(); err != nil {
				return nil, p.eof(err)
			}
			d, err := p.next()
			if err != nil {
				return nil, p.eof(err)
			}
			if d == descEnd {
				break
			}
			if d != descDelim {
				return nil, p.errorf("expecting %q or %q, found %q", descDelim, descEnd, d)
			}
		}
	}

	if err := p.skip(); err != nil {
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		return nil, err
	}
	lb, err := p.label()
	if err != nil {
		return nil, err
	}
	n.label = lb

	if err := p.skip(); err != nil {
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		return nil, err
	}
	ch, err = p.peek()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		return nil, err
	}
	if ch != lengthStart {
		return n, nil
	}
	p.next()
	if err := p.skip(); err != nil {
		return nil, p.eof(err)
	}
	v, err := p.token()
	if err != nil {
		return nil, err
	}
	l, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, p.errorf("invalid branch length %q: %v", v, err)
	}
	n.length = l
	n.hasLen = true
	return n, nil
}

// Label reads a node label.
// A label can be quoted
// (and the quotes are kept)
// or unquoted.
func (p *parser) label() (string, error) {
	var b strings.Builder
	for {
		ch, err := p.peek()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		if ch != '\'' && ch != '"' {
			break
		}
		if err := p.quoted(&b, ch); err != nil {
			return "", err
		}
	}

	v, err := p.token()
	if err != nil {
		return "", err
	}
	b.WriteString(v)
	return b.String(), nil
}

// Quoted reads a quoted label.
// Inside a quoted label a doubled quote
// is a literal quote.
func (p *parser) quoted(b *strings.Builder, q rune) error {
	p.next()
	b.WriteRune(q)
	for {
		ch, err := p.next()
		if err != nil {
			return p.eof(err)
		}
		b.WriteRune(ch)
		if ch != q {
			continue
		}
		nx, err := p.peek()
		if err != nil || nx != q {
			return nil
		}
		p.next()
		b.WriteRune(nx)
	}
}

// Token reads an unquoted string.
func (p *parser) token() (string, error) {
	var b strings.Builder
	for {
		ch, err := p.peek()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.ContainsRune(labelEnd, ch) || isSpace(ch) {
			break
		}
		p.next()
		b.WriteRune(ch)
	}
	return b.String(), nil
}

// Skip skips spaces, new lines, and comments.
func (p *parser) skip() error {
	for {
		ch, err := p.peek()
		if err != nil {
			return err
		}
		switch {
		case isSpace(ch):
			p.next()
		case ch == commStart:
			p.next()
			if err := p.comment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *parser) comment() error {
	for {
		ch, err := p.next()
		if err != nil {
			return p.eof(err)
		}
		if ch == commEnd {
			return nil
		}
	}
}

func (p *parser) next() (rune, error) {
	ch, _, err := p.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if ch == '\n' {
		p.line++
	}
	return ch, nil
}

func (p *parser) peek() (rune, error) {
	ch, _, err := p.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if err := p.r.UnreadRune(); err != nil {
		return 0, err
	}
	return ch, nil
}

func (p *parser) eof(err error) error {
	if errors.Is(err, io.EOF) {
		return p.errorf("%v", io.ErrUnexpectedEOF)
	}
	return err
}

func (p *parser) errorf(format string, v ...any) error {
	return fmt.Errorf("on line %d: %s", p.line, fmt.Sprintf(format, v...))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Number assigns the IDs to the nodes.
func number(root *pnode) *Tree {
	var terms, inner []*pnode
	var visit func(n *pnode)
	visit = func(n *pnode) {
		if len(n.children) == 0 {
			terms = append(terms, n)
			return
		}
		inner = append(inner, n)
		for _, c := range n.children {
			visit(c)
		}
	}
	visit(root)

	ids := make(map[*pnode]int, len(terms)+len(inner))
	for i, n := range terms {
		ids[n] = i + 1
	}
	for i, n := range inner {
		ids[n] = len(terms) + i + 1
	}

	t := &Tree{
		nodes: make([]*node, len(ids)),
		root:  ids[root],
		terms: len(terms),
	}
	add := func(n *pnode, parent int) {
		id := ids[n]
		nd := &node{
			id:     id,
			parent: parent,
			label:  n.label,
			length: n.length,
			hasLen: n.hasLen,
		}
		for _, c := range n.children {
			nd.children = append(nd.children, ids[c])
		}
		t.nodes[id-1] = nd
	}
	var link func(n *pnode, parent int)
	link = func(n *pnode, parent int) {
		add(n, parent)
		for _, c := range n.children {
			link(c, ids[n])
		}
	}
	link(root, ids[root])
	return t
}
