// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package palette implements color schemes
// and color keys
// for the novelty bins of a rank boundary table.
package palette

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/js-arias/blind"
)

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// HalfGrayScale returns a gray scale
// between 0 (black)
// and 128 (gray).
type HalfGrayScale struct{}

func (h HalfGrayScale) Gradient(v float64) color.Color {
	v = clamp(v)
	c := 128 - uint8(v*128)
	return color.RGBA{c, c, c, 255}
}

// LightGrayScale returns a gray scale
// between 0 (black)
// to 200 (light gray).
type LightGrayScale struct{}

func (l LightGrayScale) Gradient(v float64) color.Color {
	v = clamp(v)
	c := 200 - uint8(v*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

var schemes = map[string]Gradienter{
	"gray":         HalfGrayScale{},
	"lightgray":    LightGrayScale{},
	"incandescent": Incandescent{},
	"iridescent":   Iridescent{},
	"rainbow":      RainbowPurpleToRed{},
}

// Schemes returns the names of the valid color schemes.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Scheme returns a color scheme by its name.
// If the name is empty,
// it returns the rainbow scheme.
func Scheme(name string) (Gradienter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return RainbowPurpleToRed{}, nil
	}
	g, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q", name)
	}
	return g, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
