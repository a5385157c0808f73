// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"acedia.dev/core/base/errors"
	"acedia.dev/core/colors"
	"acedia.dev/core/text/rich"
)

// Parser interprets markup strings into rich text.
// The zero value is a parser with the default settings.
type Parser struct {

	// Colors resolves color tags and short color tags;
	// [colors.Default] is used if it is nil.
	Colors colors.Resolver

	// EscapeChar is the code point that makes the next one literal;
	// '&' is used if it is 0.
	EscapeChar rune

	// Separators are the code points that separate the colors
	// of a gradient tag; ":" is used if it is empty.
	Separators string
}

// DefaultParser is the [Parser] used by the package level functions.
var DefaultParser = &Parser{}

func (p *Parser) resolver() colors.Resolver {
	if p.Colors == nil {
		return colors.Default
	}
	return p.Colors
}

func (p *Parser) escape() rune {
	if p.EscapeChar == 0 {
		return '&'
	}
	return p.EscapeChar
}

// EscapeRune returns the escape code point in use, which is
// [Parser.EscapeChar] or its default.
func (p *Parser) EscapeRune() rune {
	return p.escape()
}

func (p *Parser) separators() string {
	if p.Separators == "" {
		return ":"
	}
	return p.Separators
}

// Commands returns the command sequence of the given markup string.
func (p *Parser) Commands(s string) []Command {
	return Commands(s, p.escape())
}

// Parse interprets the given markup string into a new [rich.Text].
// Parsing always completes: the problems found along the way are
// returned in the [Errors] report.
func (p *Parser) Parse(s string) (*rich.Text, Errors) {
	mt := rich.NewMutable()
	errs := p.AppendTo(mt, s)
	return mt.Freeze(), errs
}

// ParseText is like [Parser.Parse], but interprets the content of
// the given text as markup; its formatting is ignored.
func (p *Parser) ParseText(src rich.Source) (*rich.Text, Errors) {
	if src == nil {
		return rich.Empty(), nil
	}
	return p.Parse(src.String())
}

// AppendTo interprets the given markup string, appending the result to dst.
func (p *Parser) AppendTo(dst *rich.MutableText, s string) Errors {
	var errs Errors
	st := newStack()
	idx := 0
	for _, cmd := range p.Commands(s) {
		switch cmd.Kind {
		case Push:
			st.push(p.parseFrame(&cmd, &errs))
		case Pop:
			if !st.pop() {
				errs.add(UnmatchedClosingBrackets, "}")
			}
		case Swap:
			if c, ok := p.resolver().ResolveShortTag(cmd.Short); ok {
				st.swap(rich.Colored(c))
			} else {
				errs.add(BadShortColorTag, string(cmd.Short))
			}
		}
		if len(cmd.Content) == 0 {
			continue
		}
		top := st.top()
		if top.grad == nil {
			dst.AppendString(string(cmd.Content), top.fmt)
			idx += len(cmd.Content)
			continue
		}
		for _, r := range cmd.Content {
			dst.AppendString(string(r), top.at(idx))
			idx++
		}
	}
	return errs
}

// Parse interprets the given markup string with the [DefaultParser].
func Parse(s string) (*rich.Text, Errors) {
	return DefaultParser.Parse(s)
}

// FromString interprets the given markup string with the [DefaultParser],
// dropping the problems found; they are logged at the debug level.
func FromString(s string) *rich.Text {
	tx, errs := DefaultParser.Parse(s)
	errors.Debug(errs.Err())
	return tx
}

// AppendTo interprets the given markup string with the [DefaultParser],
// appending the result to dst.
func AppendTo(dst *rich.MutableText, s string) Errors {
	return DefaultParser.AppendTo(dst, s)
}
