// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"

	"acedia.dev/core/colors"
)

// Formatting is the per-character formatting of rich text.
// The zero value is unformatted text.
type Formatting struct {

	// Colored is whether Color applies.
	Colored bool

	// Color is the color of the text, used only if Colored is set.
	Color color.RGBA
}

// Colored returns a [Formatting] with the given color.
func Colored(c color.RGBA) Formatting {
	return Formatting{Colored: true, Color: c}
}

// Equal returns whether both formattings are uncolored, or
// both are colored with exactly the same color.
func (f Formatting) Equal(o Formatting) bool {
	if !f.Colored || !o.Colored {
		return f.Colored == o.Colored
	}
	return f.Color == o.Color
}

// String returns "" for unformatted text and the hex color otherwise.
func (f Formatting) String() string {
	if !f.Colored {
		return ""
	}
	return colors.AsHex(f.Color)
}

// Character is a single unicode code point together with its formatting.
type Character struct {
	CodePoint  rune
	Formatting Formatting
}

// NewCharacter combines a code point and a formatting into a [Character].
func NewCharacter(r rune, f Formatting) Character {
	return Character{CodePoint: r, Formatting: f}
}

// IsValid returns whether the character holds a code point;
// invalid characters have a code point <= 0.
func (c Character) IsValid() bool {
	return c.CodePoint > 0
}

// Run is a maximal range [Start, End) of characters sharing one formatting.
type Run struct {
	Start, End int
	Formatting Formatting
}

// Len returns the number of characters in the run.
func (r Run) Len() int {
	return r.End - r.Start
}
