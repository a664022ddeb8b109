// SPDX-License-Identifier: MIT
// Package dmatrix: symbolic 3×6 nonlinear tensor grid.
// This file defines the Entry/Matrix/Template value types and their safe
// accessors. All user-facing failures are sentinel errors checked via
// errors.Is; indexers return errors, they never panic.

package dmatrix

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Rows and Cols fix the reduced (Voigt) tensor shape: 3 field components
// by 6 contracted index pairs.
const (
	Rows = 3
	Cols = 6
)

// ErrOutOfRange indicates a row or column index outside the fixed 3×6
// shape. At MUST return this, not panic.
var ErrOutOfRange = errors.New("dmatrix: index out of range")

// Entry is one cell of the tensor grid: a named coefficient with a sign,
// or the structural zero. The zero value IS the structural zero.
type Entry struct {
	// Coeff is the coefficient name, e.g. "d15". Empty means the entry
	// is a structural zero required by the point group.
	Coeff string

	// Neg marks a sign-flipped occurrence, e.g. -d22 in the 3m group.
	Neg bool
}

// D builds a positive named entry.
func D(name string) Entry { return Entry{Coeff: name} }

// N builds a negated named entry.
func N(name string) Entry { return Entry{Coeff: name, Neg: true} }

// IsZero reports whether e is a structural zero.
func (e Entry) IsZero() bool { return e.Coeff == "" }

// String renders "0", "d15" or "-d22".
func (e Entry) String() string {
	if e.IsZero() {
		return "0"
	}
	if e.Neg {
		return "-" + e.Coeff
	}

	return e.Coeff
}

// Matrix is the 3×6 reduced tensor grid. It is a plain value: assignment
// copies, and no method mutates the receiver.
type Matrix [Rows][Cols]Entry

// At returns the entry at (row, col), or ErrOutOfRange for indices
// outside the fixed shape.
func (m Matrix) At(row, col int) (Entry, error) {
	if row < 0 || row >= Rows {
		return Entry{}, fmt.Errorf("At: row %d: %w", row, ErrOutOfRange)
	}
	if col < 0 || col >= Cols {
		return Entry{}, fmt.Errorf("At: col %d: %w", col, ErrOutOfRange)
	}

	return m[row][col], nil
}

// Coefficients returns the distinct coefficient names appearing in the
// grid, sorted ascending. Signs are ignored: d22 and -d22 are one
// coefficient.
func (m Matrix) Coefficients() []string {
	seen := make(map[string]struct{}, Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if e := m[r][c]; !e.IsZero() {
				seen[e.Coeff] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// String renders the grid row-major, e.g.
// "[[0 0 0 0 d15 -d22] [-d22 d22 0 d15 0 0] [d31 d31 d33 0 0 0]]".
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < Rows; r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for c := 0; c < Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m[r][c].String())
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

// Template carries the two tensor conventions a material publishes:
// the full point-group structure and the Kleinman-symmetry-reduced one.
type Template struct {
	// Full is the point-group structure with all independent
	// coefficients distinct (e.g. d15 and d31 both present).
	Full Matrix

	// Kleinman is the low-dispersion reduction where Kleinman symmetry
	// merges coefficients (e.g. d15 → d31).
	Kleinman Matrix
}

// Select returns the Kleinman-reduced matrix when kleinman is true and
// the full point-group matrix otherwise.
func (t Template) Select(kleinman bool) Matrix {
	if kleinman {
		return t.Kleinman
	}

	return t.Full
}
