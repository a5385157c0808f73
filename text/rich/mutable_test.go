// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppend(t *testing.T) {
	mt := NewMutable()
	mt.AppendString("ab", red).AppendString("cd", red).AppendString("ef")
	assert.Equal(t, "[#FF0000]: \"abcd\"\n[]: \"ef\"\n", mt.RunsString())
	checkChunks(t, &mt.buffer)

	src := NewMutable().AppendString("ab", blue).AppendString("cd").Freeze()
	dst := NewMutable().Append(src, green)
	assert.Equal(t, "[#0000FF]: \"ab\"\n[#00FF00]: \"cd\"\n", dst.RunsString())

	dst.Append(dst)
	assert.Equal(t, "abcdabcd", dst.String())
	checkChunks(t, &dst.buffer)

	dst.AppendCharacter(Character{}).AppendCharacter(NewCharacter('!', blue))
	assert.Equal(t, "abcdabcd!", dst.String())
	assert.Equal(t, blue, dst.FormattingAt(8))
}

func TestPrepend(t *testing.T) {
	mt := NewMutableString("world")
	mt.PrependString("hello ", red)
	assert.Equal(t, "[#FF0000]: \"hello \"\n[]: \"world\"\n", mt.RunsString())

	mt.Prepend(mt)
	assert.Equal(t, "hello worldhello world", mt.String())
	checkChunks(t, &mt.buffer)

	mt = NewMutableString("x", red)
	mt.Prepend(FromString("y"), red)
	assert.Equal(t, "[#FF0000]: \"yx\"\n", mt.RunsString())
	assert.Len(t, mt.fmts.list, 1)
}

func TestChangeFormatting(t *testing.T) {
	mt := NewMutableString("abcdefgh").SetFormatting(red)
	mt.ChangeFormatting(blue, 2, 3)
	assert.Equal(t, "[#FF0000]: \"ab\"\n[#0000FF]: \"cde\"\n[#FF0000]: \"fgh\"\n", mt.RunsString())
	checkChunks(t, &mt.buffer)

	mt.ChangeFormatting(Formatting{}, 0, 1)
	assert.Equal(t, "[]: \"a\"\n[#FF0000]: \"b\"\n[#0000FF]: \"cde\"\n[#FF0000]: \"fgh\"\n", mt.RunsString())
	checkChunks(t, &mt.buffer)

	mt.ChangeFormatting(red, 0, 0)
	assert.Equal(t, "[#FF0000]: \"abcdefgh\"\n", mt.RunsString())
	assert.Len(t, mt.fmts.list, 1)

	mt.ChangeFormatting(blue, 6, 10)
	assert.Equal(t, "[#FF0000]: \"abcdef\"\n[#0000FF]: \"gh\"\n", mt.RunsString())

	mt.ChangeFormatting(green, 20, 2)
	mt.ChangeFormatting(green, -4, 2)
	assert.Equal(t, "[#FF0000]: \"abcdef\"\n[#0000FF]: \"gh\"\n", mt.RunsString())

	mt.SetFormatting(Formatting{})
	assert.False(t, mt.IsFormatted())
	assert.Empty(t, mt.fmts.list)
}

func TestChangeDefaultFormatting(t *testing.T) {
	mt := NewMutableString("ab").AppendString("cd", red).AppendString("ef")
	mt.ChangeDefaultFormatting(green)
	assert.Equal(t, "[#00FF00]: \"ab\"\n[#FF0000]: \"cd\"\n[#00FF00]: \"ef\"\n", mt.RunsString())
	checkChunks(t, &mt.buffer)

	mt.ChangeDefaultFormatting(Formatting{})
	assert.Equal(t, "[#00FF00]: \"ab\"\n[#FF0000]: \"cd\"\n[#00FF00]: \"ef\"\n", mt.RunsString())
}

func TestRemove(t *testing.T) {
	mt := NewMutableString("aa").AppendString("BBB", blue).AppendString("cc")
	mt.Remove(2, 3)
	assert.Equal(t, "[]: \"aacc\"\n", mt.RunsString())
	assert.Empty(t, mt.fmts.list)

	mt = NewMutableString("ab", red).AppendString("cd", blue).AppendString("ef", red)
	mt.Remove(2, 2)
	assert.Equal(t, "[#FF0000]: \"abef\"\n", mt.RunsString())
	assert.Len(t, mt.fmts.list, 1)

	mt = NewMutableString("ab", red).AppendString("cd", blue).AppendString("ef", red)
	mt.Remove(1, 2)
	assert.Equal(t, "[#FF0000]: \"a\"\n[#0000FF]: \"d\"\n[#FF0000]: \"ef\"\n", mt.RunsString())
	checkChunks(t, &mt.buffer)

	mt.Remove(2, 0)
	assert.Equal(t, "[#FF0000]: \"a\"\n[#0000FF]: \"d\"\n", mt.RunsString())

	mt = NewMutableString("abc")
	mt.Remove(-1, 2)
	assert.Equal(t, "bc", mt.String())
	mt.Remove(5, 1)
	assert.Equal(t, "bc", mt.String())
	mt.Remove(0, 0)
	assert.True(t, mt.IsEmpty())
}

func TestReplace(t *testing.T) {
	mt := NewMutableString("Hello hello HELLO")
	mt.Replace(FromString("hello"), FromString("bye"))
	assert.Equal(t, "Hello bye HELLO", mt.String())

	mt = NewMutableString("Hello hello HELLO")
	mt.Replace(FromString("hello"), FromString("bye"), CaseInsensitive)
	assert.Equal(t, "bye bye bye", mt.String())

	mt = NewMutableString("ab", red).AppendString("XY", blue).AppendString("cd", red)
	mt.Replace(FromString("XY"), FromString("--"))
	assert.Equal(t, "[#FF0000]: \"ab\"\n[]: \"--\"\n[#FF0000]: \"cd\"\n", mt.RunsString())

	mt = NewMutableString("aXa", red)
	mt.Replace(NewText("X", blue), FromString("-"), Mode{WithFormatting: true})
	assert.Equal(t, "aXa", mt.String())

	mt = NewMutableString("aaa")
	mt.Replace(FromString("a"), Empty())
	assert.True(t, mt.IsEmpty())

	mt = NewMutableString("abc")
	mt.Replace(Empty(), FromString("x"))
	assert.Equal(t, "abc", mt.String())
	mt.Replace(mt, FromString("x"))
	assert.Equal(t, "x", mt.String())
}

func TestSimplify(t *testing.T) {
	mt := NewMutableString("  a \t b  ")
	mt.Simplify(false)
	assert.Equal(t, "a \t b", mt.String())

	mt = NewMutableString("  a \t b  ")
	mt.Simplify(true)
	assert.Equal(t, "a b", mt.String())

	mt = NewMutableString(" ", red).AppendString("x", blue).AppendString("   y ", red)
	mt.Simplify(true)
	assert.Equal(t, "[#0000FF]: \"x\"\n[#FF0000]: \" y\"\n", mt.RunsString())

	mt = NewMutableString(" \n\t ")
	mt.Simplify(true)
	assert.True(t, mt.IsEmpty())
}

func TestFormattingLookup(t *testing.T) {
	mt := NewMutableString("ab", red).AppendString("cd").AppendString("ef", blue)
	assert.Equal(t, blue, mt.FormattingAt(5))
	assert.Equal(t, red, mt.FormattingAt(0))
	assert.Equal(t, Formatting{}, mt.FormattingAt(3))
	assert.Equal(t, red, mt.FormattingAt(1))
	assert.Equal(t, Formatting{}, mt.FormattingAt(6))
	assert.Equal(t, NewCharacter('e', blue), mt.At(4))
}

func TestFreeze(t *testing.T) {
	mt := NewMutableString("abc", red)
	tx := mt.Freeze()
	assert.True(t, mt.IsEmpty())
	mt.AppendString("xyz")
	assert.Equal(t, "[#FF0000]: \"abc\"\n", tx.RunsString())
	assert.Equal(t, "xyz", mt.String())
}

func TestColoredString(t *testing.T) {
	tx := FromColoredString("pre\x1bÿ\x01\x01red")
	assert.Equal(t, "prered", tx.String())
	assert.Equal(t, "[]: \"pre\"\n[#FF0101]: \"red\"\n", tx.RunsString())
	assert.Equal(t, "pre\x1bÿ\x01\x01red", tx.ToColoredString(color.RGBA{255, 255, 255, 255}))

	assert.Equal(t, "ab", FromColoredString("ab\x1b\x10").String())
	assert.Equal(t, "ab", FromColoredString("ab\x1b\x10\x10\x10").String())

	black := NewText("x", Colored(color.RGBA{0, 0, 0, 255}))
	assert.Equal(t, "\x1b\x01\x01\x01x", black.ToColoredString(color.RGBA{255, 255, 255, 255}))

	mt := NewMutableString("ab", red).AppendString("cd")
	assert.Equal(t, "\x1bÿ\x01\x01ab\x1b\x01\x01\x01cd", mt.ToColoredString(color.RGBA{}))
	assert.Equal(t, "abcd", mt.ToColoredString(color.RGBA{255, 0, 0, 255}))

	mt = NewMutable().AppendColoredString("x\x1b\x01ÿ\x01y", blue)
	assert.Equal(t, "[#0000FF]: \"x\"\n[#01FF01]: \"y\"\n", mt.RunsString())
}

func TestCodecMarker(t *testing.T) {
	cc := Codec{Marker: '~'}
	tx := cc.Parse("a~ÿ\x01\x01b\x1bc")
	assert.Equal(t, "ab\x1bc", tx.String())
	assert.Equal(t, "[]: \"a\"\n[#FF0101]: \"b\x1bc\"\n", tx.RunsString())
	assert.Equal(t, "a~ÿ\x01\x01b\x1bc", cc.Format(tx, color.RGBA{}))
	assert.Equal(t, "a\x1bÿ\x01\x01b\x1bc", tx.ToColoredString(color.RGBA{}))

	assert.Equal(t, DefaultColorMarker, Codec{Marker: -5}.marker())
	assert.Equal(t, "", cc.Format(nil, color.RGBA{}))
}
