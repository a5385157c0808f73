// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"strings"
)

// DefaultColorMarker is the color marker of the zero [Codec].
const DefaultColorMarker rune = 0x1B

// Codec converts between rich text and colored strings. In a colored
// string, a color code is the marker followed by exactly three code
// points with the red, green and blue components, and the color lasts
// until the next color code or the end of the string.
// The zero value uses [DefaultColorMarker].
type Codec struct {

	// Marker is the code point that starts a color code;
	// [DefaultColorMarker] is used if it is 0.
	Marker rune
}

func (cc Codec) marker() rune {
	if cc.Marker <= 0 {
		return DefaultColorMarker
	}
	return cc.Marker
}

// Parse returns a new [Text] parsed from a colored string.
// Text before the first color code is unformatted. A color code that
// is cut short by the end of the string is dropped.
func (cc Codec) Parse(s string) *Text {
	return cc.AppendTo(NewMutable(), s).Freeze()
}

// AppendTo appends the content of the given colored string to mt.
// The default formatting, if given, applies to text before the first
// color code.
func (cc Codec) AppendTo(mt *MutableText, s string, def ...Formatting) *MutableText {
	marker := cc.marker()
	rs := []rune(s)
	cur := formattingOf(def)
	start := 0
	for i := 0; i < len(rs); i++ {
		if rs[i] != marker {
			continue
		}
		mt.appendRunes(rs[start:i], cur)
		if i+3 >= len(rs) {
			return mt
		}
		cur = Colored(color.RGBA{component(rs[i+1]), component(rs[i+2]), component(rs[i+3]), 255})
		i += 3
		start = i + 1
	}
	mt.appendRunes(rs[start:], cur)
	return mt
}

// Format returns the text as a colored string. Color codes are
// written wherever the color changes, starting from the given default
// color, which is also the color of unformatted characters.
// Alpha components are not part of colored strings.
func (cc Codec) Format(src Source, def color.RGBA) string {
	return cc.format(bufferOf(src), def)
}

func (cc Codec) format(b *buffer, def color.RGBA) string {
	if b == nil {
		return ""
	}
	marker := cc.marker()
	var sb strings.Builder
	cur := def
	for _, r := range b.Runs() {
		c := def
		if r.Formatting.Colored {
			c = r.Formatting.Color
		}
		if c.R != cur.R || c.G != cur.G || c.B != cur.B {
			sb.WriteRune(marker)
			sb.WriteRune(wireComponent(c.R))
			sb.WriteRune(wireComponent(c.G))
			sb.WriteRune(wireComponent(c.B))
			cur = c
		}
		sb.WriteString(string(b.runes[r.Start:r.End]))
	}
	return sb.String()
}

func component(r rune) uint8 {
	return uint8(min(max(r, 0), 255))
}

// wireComponent returns the code point for a color component;
// zero code points are not allowed in colored strings.
func wireComponent(c uint8) rune {
	return rune(max(c, 1))
}

// FromColoredString parses a colored string with the zero [Codec].
func FromColoredString(s string) *Text {
	return Codec{}.Parse(s)
}

// AppendColoredString appends a colored string with the zero [Codec].
func (mt *MutableText) AppendColoredString(s string, def ...Formatting) *MutableText {
	return Codec{}.AppendTo(mt, s, def...)
}

// ToColoredString formats the text with the zero [Codec].
func (b *buffer) ToColoredString(def color.RGBA) string {
	return Codec{}.format(b, def)
}
