// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "sync"

// Handle is a [MutableText] borrowed from a [Pool], paired with the
// generation it was handed out at. A handle becomes stale once it is
// given back with [Pool.Put], even though the text itself is reused.
type Handle struct {
	Text *MutableText
	gen  uint64
}

// Pool recycles [MutableText] values for intermediate results.
// The zero value is an empty pool ready to use.
type Pool struct {
	mu   sync.Mutex
	free []*MutableText
}

// Get returns a handle to an empty text, reusing a released one if possible.
func (p *Pool) Get() Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	var mt *MutableText
	if n := len(p.free); n > 0 {
		mt = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		mt = NewMutable()
	}
	return Handle{Text: mt, gen: mt.gen}
}

// Valid returns whether the handle has not been released yet.
func (p *Pool) Valid(h Handle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return h.Text != nil && h.Text.gen == h.gen
}

// Put releases the text of the handle back to the pool. It returns
// false and does nothing if the handle is stale.
func (p *Pool) Put(h Handle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h.Text == nil || h.Text.gen != h.gen {
		return false
	}
	h.Text.gen++
	h.Text.Clear()
	p.free = append(p.free, h.Text)
	return true
}

// Cache maps plain strings to immutable [Text] values, so that
// constant strings are converted only once. The zero value is an
// empty cache ready to use. Cached texts are shared, and must only
// be used from one goroutine at a time.
type Cache struct {
	texts map[string]*Text
}

// Of returns the cached [Text] for s, converting it first if needed.
func (c *Cache) Of(s string) *Text {
	if tx, ok := c.texts[s]; ok {
		return tx
	}
	if c.texts == nil {
		c.texts = make(map[string]*Text)
	}
	tx := FromString(s)
	c.texts[s] = tx
	return tx
}

// Len returns the number of cached texts.
func (c *Cache) Len() int {
	return len(c.texts)
}

// Reset removes all of the cached texts.
func (c *Cache) Reset() {
	c.texts = nil
}
