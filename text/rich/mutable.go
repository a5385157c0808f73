// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"sync/atomic"
	"unicode"
)

// lastID is the last identity given out by [MutableText.ID].
var lastID atomic.Uint64

// MutableText is a rich text that can be modified in place.
// Its content can change at any time, so it has no content hash;
// [MutableText.ID] identifies the allocation instead. The zero value
// is an empty text ready to use.
type MutableText struct {
	buffer
	id uint64

	// gen is the generation of the text in a [Pool].
	gen uint64
}

// NewMutable returns a new empty [MutableText].
func NewMutable() *MutableText {
	return &MutableText{}
}

// NewMutableString returns a new [MutableText] with the code points
// of s, all with the given formatting if any.
func NewMutableString(s string, f ...Formatting) *MutableText {
	return NewMutable().AppendString(s, f...)
}

func (mt *MutableText) buf() *buffer {
	if mt == nil {
		return nil
	}
	return &mt.buffer
}

// ID returns a number that identifies this text value for its whole life,
// independently of its content.
func (mt *MutableText) ID() uint64 {
	if mt.id == 0 {
		mt.id = lastID.Add(1)
	}
	return mt.id
}

// Freeze moves the content of the text into a new [Text],
// leaving this text empty.
func (mt *MutableText) Freeze() *Text {
	tx := &Text{buffer: mt.buffer}
	mt.buffer = buffer{}
	return tx
}

func formattingOf(def []Formatting) Formatting {
	if len(def) > 0 {
		return def[0]
	}
	return Formatting{}
}

// appendRunes appends the given code points with one formatting.
func (mt *MutableText) appendRunes(rs []rune, f Formatting) {
	if len(rs) == 0 {
		return
	}
	size := len(mt.runes)
	mt.runes = append(mt.runes, rs...)
	mt.fmts.appendRun(size, len(rs), f)
}

// appendRange appends the characters of b in [start, end), using def
// for the unformatted ones.
func (mt *MutableText) appendRange(b *buffer, start, end int, def Formatting) {
	for _, r := range b.Runs() {
		s, e := max(r.Start, start), min(r.End, end)
		if s >= e {
			continue
		}
		f := r.Formatting
		if !f.Colored {
			f = def
		}
		mt.appendRunes(b.runes[s:e], f)
	}
}

// scratch holds the temporary copies used to rebuild texts in place.
var scratch Pool

// borrowCopy returns a copy of the content of mt from the scratch pool;
// the handle must be given back with scratch.Put.
func (mt *MutableText) borrowCopy() (Handle, *buffer) {
	h := scratch.Get()
	mt.buffer.copyInto(&h.Text.buffer)
	return h, &h.Text.buffer
}

// Append appends the content of the given text. The default formatting,
// if given, applies to the parts of src that are not formatted.
func (mt *MutableText) Append(src Source, def ...Formatting) *MutableText {
	b := bufferOf(src)
	if b.Len() == 0 {
		return mt
	}
	if b == &mt.buffer {
		h, old := mt.borrowCopy()
		defer scratch.Put(h)
		b = old
	}
	mt.appendRange(b, 0, b.Len(), formattingOf(def))
	return mt
}

// AppendString appends the code points of s, with the given formatting if any.
func (mt *MutableText) AppendString(s string, f ...Formatting) *MutableText {
	mt.appendRunes([]rune(s), formattingOf(f))
	return mt
}

// AppendCharacter appends a single character; invalid characters are ignored.
func (mt *MutableText) AppendCharacter(c Character) *MutableText {
	if c.IsValid() {
		mt.appendRunes([]rune{c.CodePoint}, c.Formatting)
	}
	return mt
}

// Prepend inserts the content of the given text at the start. The default
// formatting, if given, applies to the parts of src that are not formatted.
func (mt *MutableText) Prepend(src Source, def ...Formatting) *MutableText {
	b := bufferOf(src)
	if b.Len() == 0 {
		return mt
	}
	h, old := mt.borrowCopy()
	defer scratch.Put(h)
	if b == &mt.buffer {
		b = old
	}
	mt.Clear()
	mt.appendRange(b, 0, b.Len(), formattingOf(def))
	mt.appendRange(old, 0, old.Len(), Formatting{})
	return mt
}

// PrependString inserts the code points of s at the start,
// with the given formatting if any.
func (mt *MutableText) PrependString(s string, f ...Formatting) *MutableText {
	return mt.Prepend(NewText(s, formattingOf(f)))
}

// Clear removes all of the content.
func (mt *MutableText) Clear() *MutableText {
	mt.runes = mt.runes[:0]
	mt.fmts.reformatWhole(Formatting{}, 0)
	return mt
}

// Replace replaces every occurrence of before with after, comparing
// under the given [Mode]. The text is rebuilt from the parts between
// the occurrences, which keep their formatting, interleaved with after.
func (mt *MutableText) Replace(before, after Source, mode ...Mode) *MutableText {
	bf := bufferOf(before)
	bn := bf.Len()
	if bn == 0 || bn > mt.Len() {
		return mt
	}
	h, old := mt.borrowCopy()
	defer scratch.Put(h)
	af := bufferOf(after)
	if af == &mt.buffer {
		af = old
	}
	if bf == &mt.buffer {
		bf = old
	}
	n := old.Len()
	mt.Clear()
	m := newMatcher(mode)
	start := 0
	for i := 0; i+bn <= n; {
		if !m.match(old, i, bf, 0, bn) {
			i++
			continue
		}
		mt.appendRange(old, start, i, Formatting{})
		if af != nil {
			mt.appendRange(af, 0, af.Len(), Formatting{})
		}
		i += bn
		start = i
	}
	mt.appendRange(old, start, n, Formatting{})
	return mt
}

// Remove removes up to maxLength characters starting at the given index;
// maxLength <= 0 removes everything up to the end. Out of range parts
// are ignored.
func (mt *MutableText) Remove(start, maxLength int) *MutableText {
	s, e := mt.clampRange(start, maxLength)
	if s >= e {
		return mt
	}
	n := len(mt.runes)
	mt.fmts.remove(s, e-s, n)
	mt.runes = append(mt.runes[:s], mt.runes[e:]...)
	return mt
}

// Simplify removes all leading and trailing whitespace. If fixInnerSpaces
// is set, each run of whitespace inside of the text is also replaced by its
// first character.
func (mt *MutableText) Simplify(fixInnerSpaces bool) *MutableText {
	n := len(mt.runes)
	start, end := 0, n
	for start < end && unicode.IsSpace(mt.runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(mt.runes[end-1]) {
		end--
	}
	if start == 0 && end == n && !fixInnerSpaces {
		return mt
	}
	h, old := mt.borrowCopy()
	defer scratch.Put(h)
	mt.Clear()
	if !fixInnerSpaces {
		mt.appendRange(old, start, end, Formatting{})
		return mt
	}
	for i := start; i < end; i++ {
		if i > start && unicode.IsSpace(old.runes[i]) && unicode.IsSpace(old.runes[i-1]) {
			continue
		}
		mt.appendRange(old, i, i+1, Formatting{})
	}
	return mt
}

// SetFormatting sets the formatting of the whole text to f.
func (mt *MutableText) SetFormatting(f Formatting) *MutableText {
	mt.fmts.reformatWhole(f, len(mt.runes))
	return mt
}

// ChangeFormatting sets the formatting of up to maxLength characters starting
// at the given index to f; maxLength <= 0 changes everything up to the end.
// The formatting of the characters after the range is kept.
func (mt *MutableText) ChangeFormatting(f Formatting, start, maxLength int) *MutableText {
	s, e := mt.clampRange(start, maxLength)
	if s >= e {
		return mt
	}
	mt.fmts.reformatRange(s, e-1, f, len(mt.runes))
	return mt
}

// ChangeDefaultFormatting sets the formatting of all of the
// unformatted characters to f, leaving formatted ones unchanged.
func (mt *MutableText) ChangeDefaultFormatting(f Formatting) *MutableText {
	if !f.Colored {
		return mt
	}
	for _, r := range mt.Runs() {
		if !r.Formatting.Colored {
			mt.fmts.reformatRange(r.Start, r.End-1, f, len(mt.runes))
		}
	}
	return mt
}

// ToLower converts every character to lower case in place.
func (mt *MutableText) ToLower() *MutableText {
	newLowerMapper().mapRunes(mt.runes)
	return mt
}

// ToUpper converts every character to upper case in place.
func (mt *MutableText) ToUpper() *MutableText {
	newUpperMapper().mapRunes(mt.runes)
	return mt
}
