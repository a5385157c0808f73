// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"acedia.dev/core/base/iox/tomlx"
	"acedia.dev/core/base/iox/yamlx"
)

// openFile reads the config from the given TOML or YAML file,
// as given by its extension.
func openFile(c *Config, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Open(c, file)
	case ".yaml", ".yml":
		return yamlx.Open(c, file)
	}
	return fmt.Errorf("config: unsupported config file type %q", file)
}

// Open reads the config from the given TOML or YAML file on top of
// its current values. It opens any Includes of the file first, in
// order and recursively, so that includers override included settings.
func Open(c *Config, file string) error {
	var incs []string
	if err := openWithIncludes(c, file, map[string]bool{}, &incs); err != nil {
		return err
	}
	c.Includes = incs
	return nil
}

func openWithIncludes(c *Config, file string, seen map[string]bool, incs *[]string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if seen[abs] {
		return fmt.Errorf("config: include cycle through %q", file)
	}
	seen[abs] = true
	defer delete(seen, abs)

	var head Config
	if err := openFile(&head, file); err != nil {
		return err
	}
	dir := filepath.Dir(file)
	for _, inc := range head.Includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		if err := openWithIncludes(c, inc, seen, incs); err != nil {
			return err
		}
		*incs = append(*incs, inc)
	}
	// reopen original
	return openFile(c, file)
}

// Save writes the config to the given TOML or YAML file,
// as given by its extension.
func Save(c *Config, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Save(c, file)
	case ".yaml", ".yml":
		return yamlx.Save(c, file)
	}
	return fmt.Errorf("config: unsupported config file type %q", file)
}
