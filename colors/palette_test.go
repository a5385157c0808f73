// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteShortTags(t *testing.T) {
	p := NewPalette()
	c, ok := p.ResolveShortTag('r')
	assert.True(t, ok)
	assert.Equal(t, Red, c)
	_, ok = p.ResolveShortTag('!')
	assert.False(t, ok)

	assert.NoError(t, p.SetShortTag("!", "#010203"))
	c, ok = p.ResolveShortTag('!')
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c)

	assert.Error(t, p.SetShortTag("ab", "red"))
	assert.Error(t, p.SetShortTag("", "red"))
	assert.Error(t, p.SetShortTag("x", "nope"))
}

func TestPaletteAliases(t *testing.T) {
	p := NewPalette()
	assert.NoError(t, p.SetAlias("$Warning", "orange"))
	c, ok := p.ParseColor("$warning")
	assert.True(t, ok)
	assert.Equal(t, Orange, c)

	_, ok = p.ParseColor("$unknown")
	assert.False(t, ok)

	c, ok = p.ParseColor("#000")
	assert.True(t, ok)
	assert.Equal(t, Black, c)

	assert.Error(t, p.SetAlias("", "red"))
	assert.Error(t, p.SetAlias("bad", "nope"))
}

func TestPaletteConfigure(t *testing.T) {
	p := NewPalette()
	err := p.Configure(
		map[string]string{"good": "teal", "bad": "tael"},
		map[string]string{"q": "$good"},
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tael")
	c, ok := p.ResolveShortTag('q')
	assert.True(t, ok)
	assert.Equal(t, Teal, c)
}

func TestPaletteSuggest(t *testing.T) {
	p := NewPalette()
	assert.Equal(t, "green", p.Suggest("gren"))
	assert.Equal(t, "", p.Suggest("zzzzzzzzzz"))
	assert.Equal(t, "", p.Suggest(""))
	assert.NoError(t, p.SetAlias("danger", "red"))
	assert.Equal(t, "$danger", p.Suggest("$dangr"))
}

func TestBaseResolver(t *testing.T) {
	r := BaseResolver()
	c, ok := r.ParseColor("red")
	assert.True(t, ok)
	assert.Equal(t, Red, c)
	_, ok = r.ResolveShortTag('r')
	assert.False(t, ok)
}
