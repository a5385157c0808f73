// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"strconv"
	"strings"
)

// Source is the read-only view shared by [*Text] and [*MutableText].
// It can only be implemented by types of this package.
type Source interface {

	// Len returns the number of characters.
	Len() int

	// At returns the character at the given index, or an invalid
	// [Character] if the index is out of range.
	At(i int) Character

	// Runs returns the formatting runs of the text, in order.
	Runs() []Run

	// String returns the text content without any formatting.
	String() string

	buf() *buffer
}

// bufferOf returns the buffer of the given source, or nil.
func bufferOf(src Source) *buffer {
	if src == nil {
		return nil
	}
	return src.buf()
}

// buffer holds the code points of a text along with their
// sparse formatting. Lookups of formatting update a cache inside
// of the buffer, so a buffer is not safe for concurrent use,
// even for reading.
type buffer struct {
	runes []rune
	fmts  chunks
}

// Len returns the number of characters.
func (b *buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.runes)
}

// IsEmpty returns whether there are no characters.
func (b *buffer) IsEmpty() bool {
	return b.Len() == 0
}

// At returns the character at the given index, or an invalid
// [Character] if the index is out of range.
func (b *buffer) At(i int) Character {
	if i < 0 || i >= b.Len() {
		return Character{}
	}
	return Character{CodePoint: b.runes[i], Formatting: b.fmts.at(i)}
}

// Rune returns the code point at the given index, or 0
// if the index is out of range.
func (b *buffer) Rune(i int) rune {
	if i < 0 || i >= b.Len() {
		return 0
	}
	return b.runes[i]
}

// FormattingAt returns the formatting at the given index;
// out of range indexes are unformatted.
func (b *buffer) FormattingAt(i int) Formatting {
	if i < 0 || i >= b.Len() {
		return Formatting{}
	}
	return b.fmts.at(i)
}

// Runes returns a copy of the code points.
func (b *buffer) Runes() []rune {
	if b == nil {
		return nil
	}
	return append([]rune(nil), b.runes...)
}

// Runs returns the formatting runs of the text, in order.
func (b *buffer) Runs() []Run {
	if b == nil {
		return nil
	}
	return b.fmts.runs(len(b.runes))
}

// IsFormatted returns whether any character is colored.
func (b *buffer) IsFormatted() bool {
	return b != nil && len(b.fmts.list) > 0
}

// String returns the text content without any formatting.
func (b *buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.runes)
}

// RunsString returns a debugging representation of the formatting
// runs, with one line per run of the form: [#RRGGBB]: "content".
func (b *buffer) RunsString() string {
	var sb strings.Builder
	for _, r := range b.Runs() {
		sb.WriteString("[" + r.Formatting.String() + "]: " + strconv.Quote(string(b.runes[r.Start:r.End])) + "\n")
	}
	return sb.String()
}

// clone returns a deep copy of the buffer.
func (b *buffer) clone() buffer {
	if b == nil {
		return buffer{}
	}
	return buffer{runes: append([]rune(nil), b.runes...), fmts: b.fmts.clone()}
}

// copyInto copies the content of b into dst, reusing the storage of dst.
func (b *buffer) copyInto(dst *buffer) {
	dst.runes = append(dst.runes[:0], b.runes...)
	dst.fmts.list = append(dst.fmts.list[:0], b.fmts.list...)
	dst.fmts.last = 0
}

// slice returns a deep copy of the characters in [start, end).
func (b *buffer) slice(start, end int) buffer {
	nb := buffer{}
	if start >= end {
		return nb
	}
	nb.runes = append(make([]rune, 0, end-start), b.runes[start:end]...)
	for _, r := range b.Runs() {
		if r.End <= start || r.Start >= end {
			continue
		}
		nb.fmts.appendRun(max(r.Start, start)-start, min(r.End, end)-max(r.Start, start), r.Formatting)
	}
	return nb
}

// clampRange returns the range [start, end) corresponding to copying up
// to maxLength characters from start; maxLength <= 0 means up to the end.
func (b *buffer) clampRange(start, maxLength int) (int, int) {
	n := b.Len()
	end := n
	if maxLength > 0 {
		end = min(start+maxLength, n)
	}
	start = max(start, 0)
	if start >= end {
		return 0, 0
	}
	return start, end
}

// Copy returns a new [Text] with up to maxLength characters starting
// at the given index, keeping their formatting. A maxLength <= 0
// copies everything up to the end. Out of range parts are ignored,
// and an empty intersection with the text gives an empty result.
func (b *buffer) Copy(start, maxLength int) *Text {
	s, e := b.clampRange(start, maxLength)
	return &Text{buffer: b.slice(s, e)}
}

// MutableCopy is like Copy, but returns a [MutableText].
func (b *buffer) MutableCopy(start, maxLength int) *MutableText {
	s, e := b.clampRange(start, maxLength)
	return &MutableText{buffer: b.slice(s, e)}
}

// Clone returns a new [Text] with the same content and formatting.
func (b *buffer) Clone() *Text {
	return &Text{buffer: b.clone()}
}

// MutableClone returns a new [MutableText] with the same content and formatting.
func (b *buffer) MutableClone() *MutableText {
	return &MutableText{buffer: b.clone()}
}

// IsValidName returns whether the text is a valid name: between 1 and
// 50 characters, each an ASCII letter or digit, '.' or '_'.
func (b *buffer) IsValidName() bool {
	n := b.Len()
	if n < 1 || n > 50 {
		return false
	}
	for _, r := range b.runes {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '.', r == '_':
		default:
			return false
		}
	}
	return true
}

// Split splits the text at every occurrence of the given separator,
// keeping the formatting of the parts. Empty parts are dropped if
// skipEmpty is set. An invalid separator (<= 0) gives no parts.
func (b *buffer) Split(sep rune, skipEmpty bool) []*Text {
	var res []*Text
	b.split(sep, skipEmpty, func(part buffer) {
		res = append(res, &Text{buffer: part})
	})
	return res
}

// SplitMutable is like Split, but returns [MutableText] parts.
func (b *buffer) SplitMutable(sep rune, skipEmpty bool) []*MutableText {
	var res []*MutableText
	b.split(sep, skipEmpty, func(part buffer) {
		res = append(res, &MutableText{buffer: part})
	})
	return res
}

func (b *buffer) split(sep rune, skipEmpty bool, add func(part buffer)) {
	if sep <= 0 {
		return
	}
	n := b.Len()
	start := 0
	for i := 0; i <= n; i++ {
		if i < n && b.runes[i] != sep {
			continue
		}
		if i > start || !skipEmpty {
			add(b.slice(start, i))
		}
		start = i + 1
	}
}
