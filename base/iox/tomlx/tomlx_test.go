// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name    string
	Aliases map[string]string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	in := &testStruct{Name: "acedia", Aliases: map[string]string{"warn": "#ffcc00"}}
	assert.NoError(t, Save(in, fn))

	out := &testStruct{}
	assert.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	assert.NoError(t, Save(&testStruct{Name: "first"}, a))
	assert.NoError(t, Save(&testStruct{Name: "second"}, b))

	out := &testStruct{}
	assert.NoError(t, OpenFiles(out, a, b))
	assert.Equal(t, "second", out.Name)
	assert.Error(t, OpenFiles(out, filepath.Join(dir, "missing.toml")))
}

func TestReadBytes(t *testing.T) {
	out := &testStruct{}
	assert.NoError(t, ReadBytes(out, []byte("Name = \"x\"\n")))
	assert.Equal(t, "x", out.Name)
	b, err := WriteBytes(out)
	assert.NoError(t, err)
	again := &testStruct{}
	assert.NoError(t, ReadBytes(again, b))
	assert.Equal(t, out.Name, again.Name)
}
