// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and the color resolution
// used by the rich text markup: CSS color names, hex codes,
// rgb/rgba/hsl functional notation, palette aliases and
// single-character short tags.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"acedia.dev/core/base/errors"
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Standard colors used by the default short tags.
var (
	Black       = colornames.Black
	White       = colornames.White
	Red         = colornames.Red
	Lime        = colornames.Lime
	Blue        = colornames.Blue
	Yellow      = colornames.Yellow
	Cyan        = colornames.Cyan
	Magenta     = colornames.Magenta
	Purple      = colornames.Purple
	Orange      = colornames.Orange
	Teal        = colornames.Teal
	Grey        = colornames.Grey
	Navy        = colornames.Navy
	Silver      = colornames.Silver
	Transparent = color.RGBA{}
)

// FromName returns the color value specified
// by the given CSS standard color name (case-insensitive).
// It returns an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	lname := strings.ToLower(name)
	if lname == "transparent" {
		return Transparent, nil
	}
	c, ok := colornames.Map[lname]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// Names returns all of the CSS standard color names.
func Names() []string {
	return colornames.Names
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings: hex values
// ("#rgb", "#rrggbb", "#rrggbbaa"), standard color names,
// "transparent", and the functional notations
// rgb(r, g, b), rgba(r, g, b, a) and hsl(h, s%, l%).
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgb("):
		return fromComponents(lstr, "rgb(", 3)
	case strings.HasPrefix(lstr, "rgba("):
		return fromComponents(lstr, "rgba(", 4)
	case strings.HasPrefix(lstr, "hsl("):
		return fromHSL(lstr)
	default:
		return FromName(lstr)
	}
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.RGBA {
	return errors.Must1(FromString(str))
}

func functionArgs(lstr, prefix string) ([]string, error) {
	if !strings.HasSuffix(lstr, ")") {
		return nil, fmt.Errorf("colors.FromString: missing closing parenthesis in %q", lstr)
	}
	args := strings.Split(lstr[len(prefix):len(lstr)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func fromComponents(lstr, prefix string, n int) (color.RGBA, error) {
	args, err := functionArgs(lstr, prefix)
	if err != nil {
		return color.RGBA{}, err
	}
	if len(args) != n {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected %d components in %q, got %d", n, lstr, len(args))
	}
	vals := [4]uint8{0, 0, 0, 255}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: bad component %q in %q: %w", a, lstr, err)
		}
		vals[i] = uint8(min(max(v, 0), 255))
	}
	return color.RGBA{vals[0], vals[1], vals[2], vals[3]}, nil
}

func fromHSL(lstr string) (color.RGBA, error) {
	args, err := functionArgs(lstr, "hsl(")
	if err != nil {
		return color.RGBA{}, err
	}
	if len(args) != 3 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected 3 components in %q, got %d", lstr, len(args))
	}
	var f [3]float64
	for i, a := range args {
		pct := strings.HasSuffix(a, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: bad component %q in %q: %w", a, lstr, err)
		}
		if i > 0 && (pct || v > 1) {
			v /= 100
		}
		f[i] = v
	}
	r, g, b := colorful.Hsl(f[0], f[1], f[2]).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3:
		return color.RGBA{digits[0] * 0x11, digits[1] * 0x11, digits[2] * 0x11, 255}, nil
	case 6:
		return color.RGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 255}, nil
	case 8:
		return color.RGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], digits[6]<<4 | digits[7]}, nil
	}
	return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, omitting the alpha component for opaque colors.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Lerp returns the component-wise linear interpolation between
// a and b at t, which is clamped to [0, 1]: t = 0 gives a and t = 1 gives b.
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	t = math32.Max(0, math32.Min(1, t))
	mix := func(x, y uint8) uint8 {
		v := float32(x) + (float32(y)-float32(x))*t
		return uint8(math32.Max(0, math32.Min(255, math32.Round(v))))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
