// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"acedia.dev/core/colors"
	"acedia.dev/core/text/rich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "&", c.Markup.Escape)
	assert.Equal(t, ":", c.Markup.Separators)
	assert.Equal(t, int32(0x1B), c.Markup.ColorMarker)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := New()
	c.Markup.Escape = "&&"
	c.Markup.Separators = ""
	c.Markup.ColorMarker = -1
	err := c.Validate()
	assert.ErrorContains(t, err, "escape")
	assert.ErrorContains(t, err, "separators")
	assert.ErrorContains(t, err, "color marker")
}

func TestOpenTOML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "acedia.toml", `
[markup]
escape = "\\"

[palette.aliases]
warn = "orange"

[palette.short-tags]
x = "#123456"
`)
	c := New()
	require.NoError(t, Open(c, file))
	assert.Equal(t, `\`, c.Markup.Escape)
	assert.Equal(t, ":", c.Markup.Separators)
	assert.Equal(t, "orange", c.Palette.Aliases["warn"])
	assert.Equal(t, "#123456", c.Palette.ShortTags["x"])
}

func TestOpenYAMLWithIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.toml", `
[markup]
separators = "~"

[palette.aliases]
warn = "orange"
info = "blue"
`)
	file := writeFile(t, dir, "main.yaml", `
includes: [base.toml]
palette:
  aliases:
    warn: red
`)
	c := New()
	require.NoError(t, Open(c, file))
	assert.Equal(t, "~", c.Markup.Separators)
	assert.Equal(t, "red", c.Palette.Aliases["warn"])
	assert.Equal(t, "blue", c.Palette.Aliases["info"])
	assert.Equal(t, []string{filepath.Join(dir, "base.toml")}, c.Includes)
}

func TestIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", `includes = ["b.toml"]`)
	writeFile(t, dir, "b.toml", `includes = ["a.toml"]`)
	assert.ErrorContains(t, Open(New(), filepath.Join(dir, "a.toml")), "cycle")
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Open(New(), filepath.Join(dir, "missing.toml")))
	assert.Error(t, Open(New(), writeFile(t, dir, "cfg.json", `{}`)))
	assert.Error(t, Save(New(), filepath.Join(dir, "cfg.ini")))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := New()
	c.Palette.Aliases = map[string]string{"warn": "orange"}
	for _, name := range []string{"cfg.toml", "cfg.yaml"} {
		file := filepath.Join(dir, name)
		require.NoError(t, Save(c, file))
		back := &Config{}
		require.NoError(t, Open(back, file))
		assert.Equal(t, c.Markup, back.Markup, name)
		assert.Equal(t, c.Palette.Aliases, back.Palette.Aliases, name)
	}
}

func TestClone(t *testing.T) {
	c := New()
	c.Palette.Aliases = map[string]string{"warn": "orange"}
	cp := c.Clone()
	assert.Equal(t, c.Markup, cp.Markup)
	assert.Equal(t, c.Palette.Aliases, cp.Palette.Aliases)
	cp.Palette.Aliases["warn"] = "red"
	cp.Markup.Escape = "\\"
	assert.Equal(t, "orange", c.Palette.Aliases["warn"])
	assert.Equal(t, "&", c.Markup.Escape)
}

func TestParser(t *testing.T) {
	c := New()
	c.Markup.Escape = `\`
	c.Markup.ColorMarker = 0x7F
	c.Palette.Aliases = map[string]string{"warn": "orange"}
	c.Palette.ShortTags = map[string]string{"x": "#123456"}
	p, err := c.Parser()
	require.NoError(t, err)
	assert.Equal(t, '\\', p.EscapeChar)
	assert.Equal(t, rich.Codec{Marker: 0x7F}, c.Codec())

	tx, errs := p.Parse(`{$warn a^xb}\}`)
	assert.Empty(t, errs)
	assert.Equal(t, "ab}", tx.String())
	assert.Equal(t, rich.Colored(colors.Orange), tx.FormattingAt(0))
	assert.Equal(t, "#123456", tx.FormattingAt(1).String())

	c.Palette.Aliases["bad"] = "nocolor"
	p, err = c.Parser()
	assert.Error(t, err)
	assert.NotNil(t, p)
}

func TestCodec(t *testing.T) {
	c := New()
	assert.Equal(t, rich.DefaultColorMarker, c.Codec().Marker)
	c.Markup.ColorMarker = -1
	assert.Equal(t, rich.Codec{}, c.Codec())
	c.Markup.ColorMarker = '~'
	tx := c.Codec().Parse("a~\x01\x02\x03b")
	assert.Equal(t, "ab", tx.String())
	assert.Equal(t, "#010203", tx.FormattingAt(1).String())
}
