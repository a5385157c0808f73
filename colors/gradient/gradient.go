// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides the one-dimensional linear color
// gradients used by rich text markup blocks.
package gradient

import (
	"image/color"

	"acedia.dev/core/colors"
	"github.com/chewxy/math32"
)

// Unset marks a stop position that has not been given,
// or that was invalid and needs to be interpolated.
const Unset float32 = -1

// Gradient is a linear color gradient over the range [0, 1].
type Gradient struct {

	// the stops for the gradient; use AddStop to add stops
	Stops []Stop
}

// Stop represents a single stop in a gradient
type Stop struct {

	// the color of the stop
	Color color.RGBA

	// the position of the stop between 0 and 1, or [Unset]
	Pos float32
}

// New returns a new gradient with the given colors
// and no stop positions set.
func New(clrs ...color.RGBA) *Gradient {
	g := &Gradient{Stops: make([]Stop, 0, len(clrs))}
	for _, c := range clrs {
		g.AddStop(c, Unset)
	}
	return g
}

// AddStop adds a new stop with the given color and position to the gradient.
func (g *Gradient) AddStop(c color.RGBA, pos float32) *Gradient {
	g.Stops = append(g.Stops, Stop{Color: c, Pos: pos})
	return g
}

// Normalize regularizes the stop positions with [NormalizePoints].
func (g *Gradient) Normalize() *Gradient {
	pts := make([]float32, len(g.Stops))
	for i := range g.Stops {
		pts[i] = g.Stops[i].Pos
	}
	NormalizePoints(pts)
	for i := range g.Stops {
		g.Stops[i].Pos = pts[i]
	}
	return g
}

// NormalizePoints regularizes the given stop positions in place:
// the first is forced to 0 and the last to 1, and every other position
// that is outside of (0, 1], not greater than the previous valid position,
// or [Unset] is linearly interpolated between its closest valid neighbors.
func NormalizePoints(pts []float32) {
	n := len(pts)
	if n == 0 {
		return
	}
	pts[0] = 0
	if n == 1 {
		return
	}
	pts[n-1] = 1
	last := pts[0]
	for i := 1; i < n-1; i++ {
		p := pts[i]
		if !(p > 0 && p <= 1 && p > last) {
			pts[i] = Unset
			continue
		}
		last = p
	}
	lo := 0
	for i := 1; i < n; i++ {
		if pts[i] == Unset {
			continue
		}
		if i-lo > 1 {
			step := (pts[i] - pts[lo]) / float32(i-lo)
			for j := lo + 1; j < i; j++ {
				pts[j] = pts[lo] + step*float32(j-lo)
			}
		}
		lo = i
	}
}

// At returns the color at the given position in [0, 1] along the gradient,
// blending the two closest stops with [colors.Lerp]. The stops must be
// normalized. Positions before the first stop or after the last one
// return the color of that stop.
func (g *Gradient) At(pos float32) color.RGBA {
	d := len(g.Stops)
	switch d {
	case 0:
		return color.RGBA{}
	case 1:
		return g.Stops[0].Color
	}
	if pos <= g.Stops[0].Pos {
		return g.Stops[0].Color
	}
	if pos >= g.Stops[d-1].Pos {
		return g.Stops[d-1].Color
	}
	place := 1 // advance to the first stop at or past pos
	for place < d-1 && pos > g.Stops[place].Pos {
		place++
	}
	return BlendStops(pos, g.Stops[place-1], g.Stops[place])
}

// BlendStops blends the given two gradient stops together
// based on the given position between them.
func BlendStops(pos float32, s1, s2 Stop) color.RGBA {
	span := s2.Pos - s1.Pos
	if span <= 0 {
		return s2.Color
	}
	tp := math32.Max(0, math32.Min(1, (pos-s1.Pos)/span))
	return colors.Lerp(s1.Color, s2.Color, tp)
}
