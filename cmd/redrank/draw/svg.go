// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/palette"
	"github.com/js-arias/redrank/rank"
)

const yStep = 12

// space above the tree for the rank names
const header = 20

type node struct {
	x     float64
	y     int
	topY  int
	botY  int
	color color.Color

	id      int
	tax     string
	red     float64
	hasRED  bool
	novelty string

	anc  *node
	desc []*node
}

type svgTree struct {
	y      int
	x      float64
	step   float64
	taxSz  int
	root   *node
	bounds rank.Table
}

func copyTable(tb *nodetable.Table, xStep float64) (svgTree, error) {
	maxSz := 0
	ids := make(map[int]*node, len(tb.Nodes))
	for _, n := range tb.Nodes {
		tax := n.Genome.Value
		if !n.Genome.Valid && n.Taxonomy.Valid {
			tax = n.Taxonomy.Value
		}
		nd := &node{
			id:     n.ID,
			tax:    tax,
			red:    n.RED.Value,
			hasRED: n.RED.Valid,
		}
		if n.Novelty.Valid {
			nd.novelty = n.Novelty.Value
		}
		ids[n.ID] = nd
		if len(tax) > maxSz {
			maxSz = len(tax)
		}
	}

	var root *node
	for _, n := range tb.Nodes {
		nd := ids[n.ID]
		if n.Parent == n.ID {
			if root != nil {
				return svgTree{}, fmt.Errorf("nodes %d and %d are both roots", root.id, n.ID)
			}
			root = nd
			continue
		}
		anc := ids[n.Parent]
		nd.anc = anc
		anc.desc = append(anc.desc, nd)
	}
	if root == nil {
		return svgTree{}, fmt.Errorf("node table without root")
	}

	s := svgTree{root: root, step: xStep}
	s.prepare(root, xStep)
	s.y = s.y*yStep + header
	s.taxSz = maxSz
	return s, nil
}

func (s *svgTree) prepare(n *node, xStep float64) {
	red := n.red
	if !n.hasRED {
		red = 0
		if n.anc != nil {
			red = (n.anc.x - 10) / xStep
		}
		if n.desc == nil {
			red = 1
		}
	}
	n.x = red*xStep + 10
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5 + header
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, xStep)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

func (s *svgTree) setColor(key *palette.Key) {
	s.root.setColor(key)
}

func (n *node) setColor(key *palette.Key) {
	n.color = palette.Unclassified
	if n.novelty != "" {
		n.color, _ = key.Color(n.novelty)
	}
	for _, d := range n.desc {
		d.setColor(key)
	}
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 5)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(s.x) + s.taxSz*6 + 20)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	s.drawBounds(e)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

// DrawBounds draws the rank boundaries
// as vertical lines
// with the rank name on top.
func (s *svgTree) drawBounds(e *xml.Encoder) {
	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "1"},
			{Name: xml.Name{Local: "stroke"}, Value: "rgb(200,200,200)"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "8"},
		},
	}
	e.EncodeToken(g)

	prev := 10.0
	for _, b := range s.bounds {
		x := b.RED*s.step + 10
		ln := xml.StartElement{
			Name: xml.Name{Local: "line"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(x))},
				{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(header - 5)},
				{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(x))},
				{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(s.y)},
			},
		}
		e.EncodeToken(ln)
		e.EncodeToken(ln.End())

		if b.Rank != "" {
			tx := xml.StartElement{
				Name: xml.Name{Local: "text"},
				Attr: []xml.Attr{
					{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(prev + 2))},
					{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(header - 8)},
					{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				},
			}
			e.EncodeToken(tx)
			e.EncodeToken(xml.CharData(b.Rank))
			e.EncodeToken(tx.End())
		}
		prev = x
	}

	e.EncodeToken(g.End())
}

func (n node) draw(e *xml.Encoder) {
	r, g, b, _ := n.color.RGBA()
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)

	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "stroke"}, Value: rgb},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(int(n.topY))
	ln.Attr[3].Value = strconv.Itoa(int(n.botY))
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	if n.desc == nil {
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(int(n.y + 5))},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.tax))
		e.EncodeToken(tx.End())
	}

	for _, d := range n.desc {
		d.label(e)
	}
}
