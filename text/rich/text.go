// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides rich text: sequences of unicode code points,
// one per character, with a per-character color formatting that is
// stored sparsely as the starting points of constant formatting runs.
//
// [Text] is immutable and hashable by content; [MutableText] supports
// in-place editing. Both provide the read-only operations of [Source].
package rich

import (
	"hash/fnv"
)

// Text is an immutable rich text. Operations on a Text that change
// its content, such as [Text.LowerCopy], always return a new value.
type Text struct {
	buffer
}

// Empty is an empty [Text].
func Empty() *Text {
	return &Text{}
}

// FromString returns a new unformatted [Text] with the code points of s.
func FromString(s string) *Text {
	return &Text{buffer: buffer{runes: []rune(s)}}
}

// FromRunes returns a new unformatted [Text] with a copy of the given code points.
func FromRunes(rs []rune) *Text {
	return &Text{buffer: buffer{runes: append([]rune(nil), rs...)}}
}

// NewText returns a new [Text] with the code points of s,
// all with the given formatting.
func NewText(s string, f Formatting) *Text {
	tx := FromString(s)
	tx.fmts.reformatWhole(f, tx.Len())
	return tx
}

// FromCharacters returns a new [Text] made of the given characters.
// Invalid characters are skipped.
func FromCharacters(chars ...Character) *Text {
	mt := NewMutable()
	for _, c := range chars {
		mt.AppendCharacter(c)
	}
	return mt.Freeze()
}

func (tx *Text) buf() *buffer {
	if tx == nil {
		return nil
	}
	return &tx.buffer
}

// Hash returns a hash of the content of the text that ignores
// formatting, so that texts that are [Text.Equal] have equal hashes.
func (tx *Text) Hash() uint32 {
	h := fnv.New32a()
	var b [4]byte
	for _, r := range tx.runes {
		b[0], b[1], b[2], b[3] = byte(r), byte(r>>8), byte(r>>16), byte(r>>24)
		h.Write(b[:])
	}
	return h.Sum32()
}
