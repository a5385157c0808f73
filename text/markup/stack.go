// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"

	"acedia.dev/core/colors"
	"acedia.dev/core/colors/gradient"
	"acedia.dev/core/text/rich"
	"github.com/chewxy/math32"
)

// frame is one open block of the formatting stack.
type frame struct {
	fmt rich.Formatting

	// grad is the gradient of a gradient block, nil otherwise.
	grad *gradient.Gradient

	// start and length are the output range that the gradient spans.
	start, length int
}

// at returns the formatting of the character at the given output index.
func (f *frame) at(i int) rich.Formatting {
	if f.grad == nil {
		return f.fmt
	}
	pos := float32(0)
	if f.length > 1 {
		pos = math32.Max(0, math32.Min(1, float32(i-f.start)/float32(f.length-1)))
	}
	return rich.Colored(f.grad.At(pos))
}

// stack is the formatting stack of the interpreter; it always
// has the base frame at the bottom.
type stack struct {
	frames []frame
}

func newStack() *stack {
	return &stack{frames: []frame{{}}}
}

func (s *stack) top() *frame {
	return &s.frames[len(s.frames)-1]
}

func (s *stack) push(f frame) {
	s.frames = append(s.frames, f)
}

// pop removes the top frame, returning false if only the base frame is left.
func (s *stack) pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// swap sets the color of the top frame to a plain color.
func (s *stack) swap(c rich.Formatting) {
	top := s.top()
	top.fmt = c
	top.grad = nil
}

// parseFrame parses the color tag of a [Push] command into a frame.
// Segments that fail to parse are dropped and reported, and a tag
// without any valid color gives an uncolored frame.
func (p *Parser) parseFrame(cmd *Command, errs *Errors) frame {
	fr := frame{start: cmd.Open, length: cmd.Close - cmd.Open}
	if cmd.Tag == "" {
		errs.add(EmptyColorTag, "")
		return fr
	}
	res := p.resolver()
	seps := p.separators()
	segs := strings.FieldsFunc(cmd.Tag, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	g := &gradient.Gradient{}
	for _, seg := range segs {
		name, point := gradient.SplitStop(seg)
		c, ok := res.ParseColor(name)
		if !ok {
			e := errs.add(BadColor, seg)
			if sg, ok := res.(colors.Suggester); ok {
				e.Suggestion = sg.Suggest(name)
			}
			continue
		}
		pos := gradient.Unset
		if point != "" {
			pt, err := gradient.ParsePoint(point)
			if err != nil {
				errs.add(BadGradientPoint, point)
			} else {
				pos = pt
			}
		}
		g.AddStop(c, pos)
	}
	switch len(g.Stops) {
	case 0:
		if len(segs) == 0 {
			errs.add(EmptyColorTag, "")
		}
	case 1:
		fr.fmt = rich.Colored(g.Stops[0].Color)
	default:
		fr.grad = g.Normalize()
		fr.fmt = rich.Colored(g.Stops[0].Color)
	}
	return fr
}
