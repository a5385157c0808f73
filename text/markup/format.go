// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"

	"acedia.dev/core/colors"
	"acedia.dev/core/text/rich"
)

// isSpecial returns whether r needs escaping in markup content.
func (p *Parser) isSpecial(r rune) bool {
	return r == '{' || r == '}' || r == '^' || r == p.escape()
}

func (p *Parser) writeEscaped(sb *strings.Builder, rs []rune) {
	for _, r := range rs {
		if p.isSpecial(r) {
			sb.WriteRune(p.escape())
		}
		sb.WriteRune(r)
	}
}

// Escape returns s with all of the markup special code points escaped,
// so that parsing the result gives back s without formatting.
func (p *Parser) Escape(s string) string {
	var sb strings.Builder
	p.writeEscaped(&sb, []rune(s))
	return sb.String()
}

// Format returns a markup string for the given text: parsing it gives
// back the same characters with the same formatting. Every colored run
// is written as one block with a hex color tag.
func (p *Parser) Format(src rich.Source) string {
	if src == nil {
		return ""
	}
	rs := []rune(src.String())
	var sb strings.Builder
	for _, r := range src.Runs() {
		if !r.Formatting.Colored {
			p.writeEscaped(&sb, rs[r.Start:r.End])
			continue
		}
		sb.WriteByte('{')
		sb.WriteString(colors.AsHex(r.Formatting.Color))
		sb.WriteByte(' ')
		p.writeEscaped(&sb, rs[r.Start:r.End])
		sb.WriteByte('}')
	}
	return sb.String()
}

// Escape escapes s with the [DefaultParser].
func Escape(s string) string {
	return DefaultParser.Escape(s)
}

// Format formats the given text with the [DefaultParser].
func Format(src rich.Source) string {
	return DefaultParser.Format(src)
}
