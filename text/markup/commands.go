// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"strings"
)

// CommandKinds are the kinds of [Command] in a markup command sequence.
type CommandKinds int32

const (
	// Plain is the first command of every sequence: its content is
	// appended with the base formatting, without any stack effect.
	Plain CommandKinds = iota

	// Push opens a new block with the color tag of the command.
	Push

	// Pop closes the innermost open block.
	Pop

	// Swap changes the color of the innermost block to the one
	// of the short tag of the command.
	Swap
)

func (k CommandKinds) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Push:
		return "Push"
	case Pop:
		return "Pop"
	case Swap:
		return "Swap"
	}
	return fmt.Sprintf("CommandKinds(%d)", int32(k))
}

// Command is one step of a markup string: a change of the formatting
// stack followed by literal content.
type Command struct {
	Kind CommandKinds

	// Tag is the color tag of a [Push] command.
	Tag string

	// Short is the short color tag of a [Swap] command.
	Short rune

	// Content is the literal content that follows the stack change.
	Content []rune

	// Open and Close are the indexes in the output of the first
	// character inside of a [Push] block and of the first character
	// after it, including the content of nested blocks. A block that
	// is never closed ends at the end of the output.
	Open, Close int
}

func (c Command) String() string {
	switch c.Kind {
	case Push:
		return fmt.Sprintf("%v{%s}[%d:%d] %q", c.Kind, c.Tag, c.Open, c.Close, string(c.Content))
	case Swap:
		return fmt.Sprintf("%v^%c %q", c.Kind, c.Short, string(c.Content))
	}
	return fmt.Sprintf("%v %q", c.Kind, string(c.Content))
}

// isTagEnd returns whether r ends a color tag.
func isTagEnd(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '}':
		return true
	}
	return false
}

// Commands splits the given markup string into its command sequence,
// using the given escape code point. The result is never empty, and
// its first command is always a [Plain] one, even if it has no content.
// Closing braces without a matching block still produce [Pop] commands.
func Commands(s string, escape rune) []Command {
	rs := []rune(s)
	n := len(rs)
	cmds := []Command{{Kind: Plain}}
	var open []int // indexes of the unclosed pushes
	pos := 0
	lit := func(r rune) {
		cur := &cmds[len(cmds)-1]
		cur.Content = append(cur.Content, r)
		pos++
	}
	for i := 0; i < n; i++ {
		r := rs[i]
		switch {
		case r == escape && i+1 < n:
			i++
			lit(rs[i])
		case r == '{':
			var tag strings.Builder
			j := i + 1
			for ; j < n && !isTagEnd(rs[j]); j++ {
				if rs[j] == escape && j+1 < n {
					j++
				}
				tag.WriteRune(rs[j])
			}
			if j < n && rs[j] != '}' {
				j++ // delimiter
			}
			i = j - 1
			cmds = append(cmds, Command{Kind: Push, Tag: tag.String(), Open: pos, Close: -1})
			open = append(open, len(cmds)-1)
		case r == '}':
			cmds = append(cmds, Command{Kind: Pop})
			if k := len(open) - 1; k >= 0 {
				cmds[open[k]].Close = pos
				open = open[:k]
			}
		case r == '^' && i+1 < n:
			i++
			cmds = append(cmds, Command{Kind: Swap, Short: rs[i]})
		default:
			lit(r)
		}
	}
	for _, k := range open {
		cmds[k].Close = pos
	}
	return cmds
}
