// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termx renders rich text for terminals.
package termx

import (
	"fmt"
	"image/color"
	"strings"

	"acedia.dev/core/text/rich"
	"github.com/muesli/termenv"
)

// Profile returns the color profile of the terminal,
// as given by the environment.
func Profile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// hex returns the color as "#rrggbb", as termenv expects it.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Render returns the given text with escape sequences that set the
// foreground color of every colored run for the given profile.
// Uncolored runs are written as they are. The [termenv.Ascii]
// profile gives the plain content.
func Render(src rich.Source, p termenv.Profile) string {
	if src == nil {
		return ""
	}
	rs := []rune(src.String())
	var sb strings.Builder
	for _, r := range src.Runs() {
		seg := string(rs[r.Start:r.End])
		if !r.Formatting.Colored {
			sb.WriteString(seg)
			continue
		}
		sb.WriteString(p.String(seg).Foreground(p.Color(hex(r.Formatting.Color))).String())
	}
	return sb.String()
}
