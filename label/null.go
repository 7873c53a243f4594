// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label

import (
	"strconv"
	"strings"
)

// Float is a nullable float.
type Float struct {
	Value float64
	Valid bool // Valid is true if Value is not null
}

// NewFloat returns a valid float.
func NewFloat(v float64) Float {
	return Float{Value: v, Valid: true}
}

// ParseFloat reads a float from a table cell.
// An empty cell,
// or a cell with the null marker,
// is read as a null value.
func ParseFloat(s string) (Float, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == Null {
		return Float{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}, err
	}
	return NewFloat(v), nil
}

// String returns the float as a table cell.
func (f Float) String() string {
	if !f.Valid {
		return Null
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// String is a nullable string.
type String struct {
	Value string
	Valid bool // Valid is true if Value is not null
}

// NewString returns a valid string.
func NewString(s string) String {
	return String{Value: s, Valid: true}
}

// ParseString reads a string from a table cell.
// An empty cell,
// or a cell with the null marker,
// is read as a null value.
func ParseString(s string) String {
	if s == "" || s == Null {
		return String{}
	}
	return NewString(s)
}

// String returns the string as a table cell.
func (s String) String() string {
	if !s.Valid {
		return Null
	}
	return s.Value
}
