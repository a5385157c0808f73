// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	plain := FromString("ab")
	colored := NewText("ab", red)
	assert.True(t, plain.Equal(colored))
	assert.False(t, plain.Equal(colored, Exact))
	assert.True(t, colored.Equal(colored.Clone(), Exact))
	assert.True(t, FromString("AB").Equal(colored, CaseInsensitive))
	assert.False(t, FromString("AB").Equal(colored))
	assert.False(t, FromString("abc").Equal(plain))

	assert.True(t, Empty().Equal(nil))
	assert.True(t, plain.EqualString("ab"))
	assert.True(t, plain.EqualString("AB", true))
	assert.False(t, plain.EqualString("AB"))
}

func TestStartsEndsWith(t *testing.T) {
	tx := NewMutableString("Hello", red).AppendString(", world").Freeze()
	assert.True(t, tx.StartsWith(FromString("Hell")))
	assert.True(t, tx.StartsWith(FromString("hell"), CaseInsensitive))
	assert.False(t, tx.StartsWith(FromString("hell")))
	assert.True(t, tx.StartsWith(NewText("He", red), Exact))
	assert.False(t, tx.StartsWith(FromString("He"), Exact))
	assert.True(t, tx.StartsWith(Empty()))

	assert.True(t, tx.EndsWith(FromString("world")))
	assert.True(t, tx.EndsWith(FromString("WORLD"), CaseInsensitive))
	assert.False(t, tx.EndsWith(FromString("Hello, world!")))
	assert.True(t, tx.EndsWith(FromString("world"), Exact))
}

func TestIndexOf(t *testing.T) {
	tx := FromString("abcabc")
	bc := FromString("bc")
	assert.Equal(t, 1, tx.IndexOf(bc, 0))
	assert.Equal(t, 4, tx.IndexOf(bc, 2))
	assert.Equal(t, -1, tx.IndexOf(bc, 5))
	assert.Equal(t, -1, tx.IndexOf(bc, 7))
	assert.Equal(t, -1, tx.IndexOf(bc, -1))
	assert.Equal(t, 6, tx.IndexOf(Empty(), 6))
	assert.Equal(t, 6, FromString("Hello World").IndexOf(FromString("WORLD"), 0, CaseInsensitive))

	assert.Equal(t, 4, tx.LastIndexOf(bc, 0))
	assert.Equal(t, 1, tx.LastIndexOf(bc, 1))
	assert.Equal(t, -1, tx.LastIndexOf(bc, 5))
	assert.Equal(t, -1, tx.LastIndexOf(bc, 7))
	assert.Equal(t, 4, tx.LastIndexOf(Empty(), 2))

	assert.True(t, tx.Contains(FromString("cab")))
	assert.False(t, tx.Contains(FromString("cba")))
	assert.True(t, tx.Contains(FromString("CAB"), CaseInsensitive))
}
