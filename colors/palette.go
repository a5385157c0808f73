// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// AliasPrefix starts a color token that refers to a [Palette] alias.
const AliasPrefix = "$"

// SuggestThreshold is the minimum similarity in [0, 1] that a
// known color name needs to be returned by [Palette.Suggest].
var SuggestThreshold = 0.6

// Palette is the default [Resolver]. In addition to everything
// [FromString] accepts, it resolves "$name" aliases and
// single-character short tags. A Palette must not be modified
// while it is being used for parsing.
type Palette struct {

	// Aliases maps lowercase alias names (without the "$" prefix) to colors.
	Aliases map[string]color.RGBA

	// ShortTags maps short tag characters to colors.
	ShortTags map[rune]color.RGBA
}

// Default is the palette used when no other [Resolver] is given.
var Default = NewPalette()

// NewPalette returns a new palette with the default short tags:
// k black, w white, r red, g lime, b blue, y yellow, c cyan, m magenta,
// p purple, o orange, t teal, e grey, n navy and s silver.
func NewPalette() *Palette {
	return &Palette{
		Aliases: map[string]color.RGBA{},
		ShortTags: map[rune]color.RGBA{
			'k': Black,
			'w': White,
			'r': Red,
			'g': Lime,
			'b': Blue,
			'y': Yellow,
			'c': Cyan,
			'm': Magenta,
			'p': Purple,
			'o': Orange,
			't': Teal,
			'e': Grey,
			'n': Navy,
			's': Silver,
		},
	}
}

// ParseColor implements [Resolver].
func (p *Palette) ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if name, ok := strings.CutPrefix(s, AliasPrefix); ok {
		c, ok := p.Aliases[strings.ToLower(name)]
		return c, ok
	}
	c, err := FromString(s)
	return c, err == nil
}

// ResolveShortTag implements [Resolver].
func (p *Palette) ResolveShortTag(r rune) (color.RGBA, bool) {
	c, ok := p.ShortTags[r]
	return c, ok
}

// SetAlias parses the given color string with [FromString]
// and stores it as the alias with the given name.
func (p *Palette) SetAlias(name, value string) error {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), AliasPrefix))
	if name == "" {
		return fmt.Errorf("colors.Palette: empty alias name for %q", value)
	}
	c, ok := p.ParseColor(value)
	if !ok {
		return fmt.Errorf("colors.Palette: invalid color %q for alias %q", value, name)
	}
	p.Aliases[name] = c
	return nil
}

// SetShortTag parses the given color string and stores it
// as the color of the given single-character tag.
func (p *Palette) SetShortTag(tag, value string) error {
	r, size := utf8.DecodeRuneInString(tag)
	if size == 0 || size != len(tag) {
		return fmt.Errorf("colors.Palette: short tag %q must be exactly one character", tag)
	}
	c, ok := p.ParseColor(value)
	if !ok {
		return fmt.Errorf("colors.Palette: invalid color %q for short tag %q", value, tag)
	}
	p.ShortTags[r] = c
	return nil
}

// Configure sets all of the given aliases and short tags,
// in sorted key order so that aliases may refer to each other
// deterministically. It keeps going on error and returns
// all of the errors joined together.
func (p *Palette) Configure(aliases, shortTags map[string]string) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(aliases)) {
		errs = append(errs, p.SetAlias(name, aliases[name]))
	}
	for _, tag := range slices.Sorted(maps.Keys(shortTags)) {
		errs = append(errs, p.SetShortTag(tag, shortTags[tag]))
	}
	return errors.Join(errs...)
}

// Suggest returns the known color name (or "$alias") most similar
// to the given unknown color token, or "" if none is similar enough.
func (p *Palette) Suggest(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	best, bestSim := "", SuggestThreshold
	try := func(cand string) {
		if sim := strutil.Similarity(s, cand, lev); sim > bestSim || (best == "" && sim >= bestSim) {
			best, bestSim = cand, sim
		}
	}
	if strings.HasPrefix(s, AliasPrefix) {
		for _, name := range slices.Sorted(maps.Keys(p.Aliases)) {
			try(AliasPrefix + name)
		}
		return best
	}
	for _, name := range Names() {
		try(name)
	}
	return best
}
