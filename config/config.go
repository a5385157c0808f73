// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the acedia tool.
package config

import (
	"fmt"
	"unicode/utf8"

	"acedia.dev/core/base/errors"
	"acedia.dev/core/colors"
	"acedia.dev/core/text/markup"
	"acedia.dev/core/text/rich"
	"github.com/jinzhu/copier"
)

// Config is the main config struct
// that contains all of the configuration
// options for the acedia tool.
type Config struct {

	// other config files, relative to this one, whose settings
	// are loaded first so that this file overrides them
	Includes []string `toml:"includes" yaml:"includes"`

	// the markup syntax options
	Markup Markup `toml:"markup" yaml:"markup"`

	// the named colors and short color tags
	Palette Palette `toml:"palette" yaml:"palette"`
}

// Markup contains the markup syntax options.
type Markup struct {

	// the character that makes the next one literal
	Escape string `toml:"escape" yaml:"escape"`

	// the characters that separate the colors of a gradient tag
	Separators string `toml:"separators" yaml:"separators"`

	// the code point that starts a color code in colored strings
	ColorMarker int32 `toml:"color-marker" yaml:"color-marker"`
}

// Palette contains the named colors and short color tags.
type Palette struct {

	// colors usable in tags as $name, by name
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`

	// colors of the single-character short tags, by tag
	ShortTags map[string]string `toml:"short-tags" yaml:"short-tags"`
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Markup.Escape = "&"
	c.Markup.Separators = ":"
	c.Markup.ColorMarker = 0x1B
}

// New returns a new config with the default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	cp := &Config{}
	errors.Log(copier.CopyWithOption(cp, c, copier.Option{DeepCopy: true}))
	return cp
}

// Validate returns an error describing every invalid setting, if any.
func (c *Config) Validate() error {
	var errs []error
	if utf8.RuneCountInString(c.Markup.Escape) != 1 {
		errs = append(errs, fmt.Errorf("config: markup escape %q must be exactly one character", c.Markup.Escape))
	}
	if c.Markup.Separators == "" {
		errs = append(errs, fmt.Errorf("config: markup separators must not be empty"))
	}
	if c.Markup.ColorMarker <= 0 || !utf8.ValidRune(c.Markup.ColorMarker) {
		errs = append(errs, fmt.Errorf("config: invalid color marker code point %d", c.Markup.ColorMarker))
	}
	return errors.Join(errs...)
}

// NewPalette returns the default color palette
// extended with the configured aliases and short tags.
func (c *Config) NewPalette() (*colors.Palette, error) {
	p := colors.NewPalette()
	err := p.Configure(c.Palette.Aliases, c.Palette.ShortTags)
	return p, err
}

// Parser returns the markup parser for the config. Invalid settings
// are reported, and the defaults are used for them.
func (c *Config) Parser() (*markup.Parser, error) {
	pal, perr := c.NewPalette()
	verr := c.Validate()
	p := &markup.Parser{Colors: pal, Separators: c.Markup.Separators}
	if r, size := utf8.DecodeRuneInString(c.Markup.Escape); size == len(c.Markup.Escape) && size > 0 {
		p.EscapeChar = r
	}
	return p, errors.Join(perr, verr)
}

// Codec returns the colored string codec for the config; an invalid
// color marker gives the default one.
func (c *Config) Codec() rich.Codec {
	if c.Markup.ColorMarker > 0 && utf8.ValidRune(c.Markup.ColorMarker) {
		return rich.Codec{Marker: c.Markup.ColorMarker}
	}
	return rich.Codec{}
}
