// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	var p Pool
	h := p.Get()
	h.Text.AppendString("scratch", red)
	assert.True(t, p.Valid(h))

	assert.True(t, p.Put(h))
	assert.False(t, p.Valid(h))
	assert.False(t, p.Put(h))

	h2 := p.Get()
	assert.Same(t, h.Text, h2.Text)
	assert.True(t, h2.Text.IsEmpty())
	assert.True(t, p.Valid(h2))
	assert.False(t, p.Valid(h))

	assert.False(t, p.Valid(Handle{}))
	assert.False(t, p.Put(Handle{}))
}

func TestCache(t *testing.T) {
	var c Cache
	a := c.Of("constant")
	assert.Same(t, a, c.Of("constant"))
	assert.Equal(t, "constant", a.String())
	assert.Equal(t, 1, c.Len())
	c.Of("other")
	assert.Equal(t, 2, c.Len())
	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.NotSame(t, a, c.Of("constant"))
}

func TestScratchCopies(t *testing.T) {
	mt := NewMutableString("ab", red)
	mt.Append(mt)
	mt.Prepend(mt)
	assert.Equal(t, "abababab", mt.String())
	mt.Replace(FromString("ba"), mt)
	assert.Equal(t, "aababababababababababababb", mt.String())
	checkChunks(t, &mt.buffer)

	mt = NewMutableString(" a \x00  b ").ChangeFormatting(red, 3, 1)
	mt.Simplify(true)
	assert.Equal(t, "a \x00 b", mt.String())
	assert.Equal(t, red, mt.FormattingAt(2))

	scratch.mu.Lock()
	free := slices.Clone(scratch.free)
	scratch.mu.Unlock()
	assert.NotEmpty(t, free)
	for _, tx := range free {
		assert.True(t, tx.IsEmpty())
	}
}
