// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name    string            `yaml:"name"`
	Aliases map[string]string `yaml:"aliases"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	in := &testStruct{Name: "acedia", Aliases: map[string]string{"warn": "#ffcc00"}}
	assert.NoError(t, Save(in, fn))

	out := &testStruct{}
	assert.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestReadEmpty(t *testing.T) {
	out := &testStruct{Name: "keep"}
	assert.NoError(t, ReadBytes(out, nil))
	assert.Equal(t, "keep", out.Name)
}
