// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseMapper maps single code points to another case.
// It is not safe for concurrent use.
type caseMapper struct {
	caser cases.Caser
	upper bool
}

func newLowerMapper() *caseMapper {
	return &caseMapper{caser: cases.Lower(language.Und)}
}

func newUpperMapper() *caseMapper {
	return &caseMapper{caser: cases.Upper(language.Und), upper: true}
}

// mapRune returns the case mapping of r if it maps
// to exactly one code point, and r itself otherwise.
func (cm *caseMapper) mapRune(r rune) rune {
	if r < utf8.RuneSelf {
		switch {
		case !cm.upper && 'A' <= r && r <= 'Z':
			return r + 'a' - 'A'
		case cm.upper && 'a' <= r && r <= 'z':
			return r - 'a' + 'A'
		}
		return r
	}
	if !utf8.ValidRune(r) {
		return r
	}
	s := cm.caser.String(string(r))
	mr, size := utf8.DecodeRuneInString(s)
	if size != len(s) || mr == utf8.RuneError {
		return r
	}
	return mr
}

// mapRunes maps all of the given code points in place.
func (cm *caseMapper) mapRunes(rs []rune) {
	for i, r := range rs {
		rs[i] = cm.mapRune(r)
	}
}

// LowerCopy returns a new [Text] with every character converted
// to lower case, keeping the formatting. Characters without a
// single code point lower case mapping are kept as they are.
func (b *buffer) LowerCopy() *Text {
	tx := b.Clone()
	newLowerMapper().mapRunes(tx.runes)
	return tx
}

// UpperCopy returns a new [Text] with every character converted
// to upper case, keeping the formatting.
func (b *buffer) UpperCopy() *Text {
	tx := b.Clone()
	newUpperMapper().mapRunes(tx.runes)
	return tx
}

// LowerMutableCopy is like LowerCopy, but returns a [MutableText].
func (b *buffer) LowerMutableCopy() *MutableText {
	tx := b.MutableClone()
	newLowerMapper().mapRunes(tx.runes)
	return tx
}

// UpperMutableCopy is like UpperCopy, but returns a [MutableText].
func (b *buffer) UpperMutableCopy() *MutableText {
	tx := b.MutableClone()
	newUpperMapper().mapRunes(tx.runes)
	return tx
}
