// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// Mode specifies how texts are compared by Equal and
// the search functions. The zero value compares content case-sensitively
// and ignores formatting.
type Mode struct {

	// IgnoreCase compares code points after converting them to lower case.
	IgnoreCase bool

	// WithFormatting additionally requires the formatting of the
	// compared characters to be equal.
	WithFormatting bool
}

// CaseInsensitive is the [Mode] that ignores case and formatting.
var CaseInsensitive = Mode{IgnoreCase: true}

// Exact is the [Mode] that compares both case and formatting.
var Exact = Mode{WithFormatting: true}

func modeOf(mode []Mode) Mode {
	if len(mode) > 0 {
		return mode[0]
	}
	return Mode{}
}

// matcher compares ranges of characters of two buffers under one [Mode].
type matcher struct {
	Mode
	lower *caseMapper
}

func newMatcher(mode []Mode) *matcher {
	m := &matcher{Mode: modeOf(mode)}
	if m.IgnoreCase {
		m.lower = newLowerMapper()
	}
	return m
}

func (m *matcher) runeEqual(a, b rune) bool {
	if a == b {
		return true
	}
	if !m.IgnoreCase {
		return false
	}
	return m.lower.mapRune(a) == m.lower.mapRune(b)
}

// match returns whether the count characters of a starting at as
// are equal to those of b starting at bs. Both ranges must be valid.
func (m *matcher) match(a *buffer, as int, b *buffer, bs int, count int) bool {
	for k := 0; k < count; k++ {
		if !m.runeEqual(a.runes[as+k], b.runes[bs+k]) {
			return false
		}
	}
	if !m.WithFormatting {
		return true
	}
	for k := 0; k < count; k++ {
		if !a.fmts.at(as + k).Equal(b.fmts.at(bs + k)) {
			return false
		}
	}
	return true
}

// Equal returns whether the text is equal to the other one under the
// given [Mode] (case-sensitive and ignoring formatting by default).
// A nil other is equal to an empty text.
func (b *buffer) Equal(other Source, mode ...Mode) bool {
	o := bufferOf(other)
	n := b.Len()
	if n != o.Len() {
		return false
	}
	if n == 0 {
		return true
	}
	return newMatcher(mode).match(b, 0, o, 0, n)
}

// EqualString returns whether the text content is equal to the given
// string, ignoring formatting, optionally ignoring case.
func (b *buffer) EqualString(s string, ignoreCase ...bool) bool {
	mode := Mode{IgnoreCase: len(ignoreCase) > 0 && ignoreCase[0]}
	return b.Equal(FromString(s), mode)
}

// StartsWith returns whether the text starts with the given prefix.
func (b *buffer) StartsWith(prefix Source, mode ...Mode) bool {
	p := bufferOf(prefix)
	pn := p.Len()
	if pn > b.Len() {
		return false
	}
	if pn == 0 {
		return true
	}
	return newMatcher(mode).match(b, 0, p, 0, pn)
}

// EndsWith returns whether the text ends with the given suffix.
func (b *buffer) EndsWith(suffix Source, mode ...Mode) bool {
	s := bufferOf(suffix)
	sn := s.Len()
	n := b.Len()
	if sn > n {
		return false
	}
	if sn == 0 {
		return true
	}
	return newMatcher(mode).match(b, n-sn, s, 0, sn)
}

// IndexOf returns the index of the first occurrence of needle that
// starts at or after from, or -1 if there is none or from is out of
// range. An empty needle is found at from.
func (b *buffer) IndexOf(needle Source, from int, mode ...Mode) int {
	nd := bufferOf(needle)
	n, m := b.Len(), nd.Len()
	if from < 0 || from > n {
		return -1
	}
	if m == 0 {
		return from
	}
	mt := newMatcher(mode)
	for i := from; i+m <= n; i++ {
		if mt.match(b, i, nd, 0, m) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of needle that
// ends at least from characters before the end of the text, or -1 if
// there is none or from is out of range. An empty needle is found at
// Len() - from.
func (b *buffer) LastIndexOf(needle Source, from int, mode ...Mode) int {
	nd := bufferOf(needle)
	n, m := b.Len(), nd.Len()
	if from < 0 || from > n {
		return -1
	}
	if m == 0 {
		return n - from
	}
	mt := newMatcher(mode)
	for i := n - from - m; i >= 0; i-- {
		if mt.match(b, i, nd, 0, m) {
			return i
		}
	}
	return -1
}

// Contains returns whether needle occurs anywhere in the text.
func (b *buffer) Contains(needle Source, mode ...Mode) bool {
	return b.IndexOf(needle, 0, mode...) >= 0
}
