// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package palette

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/redrank/rank"
)

// Unclassified is the color used for nodes
// without a novelty bin.
var Unclassified = color.RGBA{211, 211, 211, 255}

// Key stores the colors
// of the novelty bins.
type Key struct {
	color map[string]color.Color
}

// NewKey returns a key
// with the colors of a gradient
// evenly spaced over the bins
// of a rank boundary table.
// The bin below the first boundary
// is not colored.
func NewKey(bounds rank.Table, g Gradienter) *Key {
	k := &Key{
		color: make(map[string]color.Color, len(bounds)),
	}
	n := len(bounds) - 1
	for i := 1; i < len(bounds); i++ {
		v := 0.0
		if n > 1 {
			v = float64(i-1) / float64(n-1)
		}
		k.color[strings.ToLower(bounds[i].Rank)] = g.Gradient(v)
	}
	return k
}

// Color returns the color of a novelty bin.
// The bin can be given by its rank name
// (e.g., "Genus")
// or by its interval label
// (e.g., "Genus (0.82-0.96]").
// If no color is defined for the bin,
// it returns the Unclassified color.
func (k *Key) Color(bin string) (color.Color, bool) {
	c, ok := k.color[binRank(bin)]
	if !ok {
		return Unclassified, false
	}
	return c, true
}

// Set sets the color of a novelty bin.
func (k *Key) Set(bin string, c color.Color) {
	k.color[binRank(bin)] = c
}

// ReadKey reads a key file used to define the colors
// of the novelty bins.
//
// A key file is a tab-delimited file
// with the following required columns:
//
//	-rank	the rank name of the bin
//	-color	an RGB value separated by commas,
//		for example "125,132,148".
//
// Any other columns, will be ignored.
// Ranks not defined in the file
// keep the colors of the base key.
// Here is an example of a key file:
//
//	rank	color	comment
//	Phylum	68, 1, 84	novel phylum
//	Genus	253, 231, 37	novel genus
//	Species/Strain	211, 211, 211	known genus
func ReadKey(r io.Reader, base *Key) (*Key, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"rank", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	// other columns, such as comments, are optional
	need := max(fields["rank"], fields["color"]) + 1

	k := &Key{
		color: make(map[string]color.Color),
	}
	if base != nil {
		for r, c := range base.color {
			k.color[r] = c
		}
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < need {
			return nil, fmt.Errorf("on row %d: found %d fields, want %d", ln, len(row), need)
		}

		f := "rank"
		rk := strings.TrimSpace(row[fields[f]])
		if rk == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty rank", ln, f)
		}

		f = "color"
		c, err := parseRGB(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		k.Set(rk, c)
	}
	return k, nil
}

func parseRGB(s string) (color.RGBA, error) {
	val := strings.Split(s, ",")
	if len(val) != 3 {
		return color.RGBA{}, fmt.Errorf("found %d values, want 3", len(val))
	}

	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.Atoi(strings.TrimSpace(val[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("[%s value]: %v", name, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("[%s value]: invalid value %d", name, v)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
}

// BinRank returns the rank name of a bin label.
func binRank(bin string) string {
	bin = strings.TrimSpace(bin)
	if i := strings.Index(bin, " ("); i >= 0 {
		bin = bin[:i]
	}
	return strings.ToLower(bin)
}
