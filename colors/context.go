// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// Resolver contains the information about the context in which
// color parsing for rich text markup occurs.
type Resolver interface {
	// ParseColor returns the color described by the given
	// textual color token, and whether it could be parsed.
	ParseColor(s string) (color.RGBA, bool)

	// ResolveShortTag returns the color associated with the
	// given single-character short tag, and whether one exists.
	ResolveShortTag(r rune) (color.RGBA, bool)
}

// Suggester is an optional extension of [Resolver] that can
// propose a known color for an unknown color token.
type Suggester interface {
	Suggest(s string) string
}

// BaseResolver returns a basic [Resolver] that parses colors
// with [FromString] and has no short tags.
func BaseResolver() Resolver {
	return baseResolver{}
}

type baseResolver struct{}

func (baseResolver) ParseColor(s string) (color.RGBA, bool) {
	c, err := FromString(s)
	return c, err == nil
}

func (baseResolver) ResolveShortTag(r rune) (color.RGBA, bool) {
	return color.RGBA{}, false
}
