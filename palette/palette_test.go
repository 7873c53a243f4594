// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package palette_test

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/redrank/palette"
	"github.com/js-arias/redrank/rank"
)

func TestScheme(t *testing.T) {
	g, err := palette.Scheme("")
	if err != nil {
		t.Fatalf("default scheme: %v", err)
	}
	if _, ok := g.(palette.RainbowPurpleToRed); !ok {
		t.Errorf("default scheme: got %T, want %T", g, palette.RainbowPurpleToRed{})
	}

	for _, n := range palette.Schemes() {
		if _, err := palette.Scheme(strings.ToUpper(n)); err != nil {
			t.Errorf("scheme %q: %v", n, err)
		}
	}
	if _, err := palette.Scheme("viridis"); err == nil {
		t.Errorf("unknown scheme: expecting error")
	}

	gray := palette.HalfGrayScale{}
	if c := gray.Gradient(-1); c != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("gray below range: got %v", c)
	}
	if c := gray.Gradient(2); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("gray above range: got %v", c)
	}
}

func TestKey(t *testing.T) {
	bounds, err := rank.New([]float64{0.2, 0.36, 0.56, 0.7, 0.9})
	if err != nil {
		t.Fatalf("unable to build boundaries: %v", err)
	}
	k := palette.NewKey(bounds, palette.HalfGrayScale{})

	c, ok := k.Color(bounds[1].Label)
	if !ok || c != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("phylum: got %v (%v), want gray", c, ok)
	}
	c, ok = k.Color("Species/Strain")
	if !ok || c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("species: got %v (%v), want black", c, ok)
	}
	if c, ok := k.Color("NA"); ok || c != palette.Unclassified {
		t.Errorf("unclassified: got %v (%v)", c, ok)
	}
}

func TestReadKey(t *testing.T) {
	bounds, err := rank.New(rank.Bacteria)
	if err != nil {
		t.Fatalf("unable to build boundaries: %v", err)
	}
	base := palette.NewKey(bounds, palette.Iridescent{})

	data := `# novelty colors
rank	color	comment
Genus	253, 231, 37	novel genus
Species/Strain	211,211,211
`
	k, err := palette.ReadKey(strings.NewReader(data), base)
	if err != nil {
		t.Fatalf("unable to read key: %v", err)
	}
	if c, _ := k.Color(bounds[5].Label); c != (color.RGBA{253, 231, 37, 255}) {
		t.Errorf("genus: got %v", c)
	}
	if c, _ := k.Color("Species/Strain"); c != (color.RGBA{211, 211, 211, 255}) {
		t.Errorf("row without comment: got %v", c)
	}
	want, _ := base.Color("Phylum")
	if c, _ := k.Color("Phylum"); !reflect.DeepEqual(c, want) {
		t.Errorf("phylum: got %v, want %v", c, want)
	}
}

func TestReadKeyErrors(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"missing color": "rank\nGenus\n",
		"bad color":     "rank\tcolor\nGenus\t1,2\n",
		"out of range":  "rank\tcolor\nGenus\t1,2,300\n",
		"empty rank":    "rank\tcolor\n\t1,2,3\n",
		"short row":     "rank\tcomment\tcolor\nGenus\tnovel genus\n",
	}
	for name, in := range tests {
		if _, err := palette.ReadKey(strings.NewReader(in), nil); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
