// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// chunk starts a stretch of characters with a common formatting,
// which lasts until the start of the next chunk or the end of the text.
type chunk struct {
	start int
	fmt   Formatting
}

// chunks is the sparse formatting of a text. Positions before the
// first chunk are unformatted. After every mutation the list is sorted
// by strictly increasing start, all starts are inside the text and no
// chunk has the same formatting as the stretch preceding it.
type chunks struct {
	list []chunk

	// last is the index of the most recently used chunk,
	// so that forward scans do not search from the start.
	last int
}

// at returns the formatting of the character at index i.
func (c *chunks) at(i int) Formatting {
	if len(c.list) == 0 || i < c.list[0].start {
		return Formatting{}
	}
	k := c.last
	if k >= len(c.list) || c.list[k].start > i {
		k = 0
	}
	for k+1 < len(c.list) && c.list[k+1].start <= i {
		k++
	}
	c.last = k
	return c.list[k].fmt
}

// appendRun records that n characters with the given formatting
// were appended to a text that had length size before.
func (c *chunks) appendRun(size, n int, f Formatting) {
	if n <= 0 {
		return
	}
	prev := Formatting{}
	if len(c.list) > 0 {
		prev = c.list[len(c.list)-1].fmt
	}
	if !prev.Equal(f) {
		c.list = append(c.list, chunk{start: size, fmt: f})
	}
}

// reformatWhole replaces all of the formatting of a text of length n with f.
func (c *chunks) reformatWhole(f Formatting, n int) {
	c.list = c.list[:0]
	c.last = 0
	if n > 0 && f.Colored {
		c.list = append(c.list, chunk{start: 0, fmt: f})
	}
}

// reformatRange sets the formatting of the characters in [start, end]
// of a text of length n to f, keeping the formatting that followed end.
func (c *chunks) reformatRange(start, end int, f Formatting, n int) {
	start = max(start, 0)
	end = min(end, n-1)
	if start > end {
		return
	}
	after := Formatting{}
	if end+1 < n {
		after = c.at(end + 1)
	}
	out := make([]chunk, 0, len(c.list)+2)
	for _, ch := range c.list {
		if ch.start < start {
			out = append(out, ch)
		}
	}
	out = append(out, chunk{start: start, fmt: f})
	if end+1 < n {
		out = append(out, chunk{start: end + 1, fmt: after})
	}
	for _, ch := range c.list {
		if ch.start > end+1 {
			out = append(out, ch)
		}
	}
	c.list = out
	c.normalize(n)
}

// remove updates the formatting for the removal of the characters in
// [start, start+count) from a text of length n.
func (c *chunks) remove(start, count, n int) {
	end := start + count
	after := Formatting{}
	if end < n {
		after = c.at(end)
	}
	out := make([]chunk, 0, len(c.list)+1)
	for _, ch := range c.list {
		if ch.start < start {
			out = append(out, ch)
		}
	}
	if end < n {
		out = append(out, chunk{start: start, fmt: after})
	}
	for _, ch := range c.list {
		if ch.start > end {
			out = append(out, chunk{start: ch.start - count, fmt: ch.fmt})
		}
	}
	c.list = out
	c.normalize(n - count)
}

// normalize restores the chunk invariants for a text of length n.
func (c *chunks) normalize(n int) {
	out := c.list[:0]
	prev := Formatting{}
	for _, ch := range c.list {
		if ch.start >= n {
			break
		}
		if k := len(out) - 1; k >= 0 && out[k].start == ch.start {
			out = out[:k]
			prev = Formatting{}
			if k > 0 {
				prev = out[k-1].fmt
			}
		}
		if ch.fmt.Equal(prev) {
			continue
		}
		out = append(out, ch)
		prev = ch.fmt
	}
	c.list = out
	c.last = 0
}

// clone returns a copy of the chunks that shares no memory with c.
func (c *chunks) clone() chunks {
	return chunks{list: append([]chunk(nil), c.list...)}
}

// runs returns the formatting runs of a text of length n.
func (c *chunks) runs(n int) []Run {
	if n == 0 {
		return nil
	}
	rs := make([]Run, 0, len(c.list)+1)
	if len(c.list) == 0 || c.list[0].start > 0 {
		end := n
		if len(c.list) > 0 {
			end = c.list[0].start
		}
		rs = append(rs, Run{Start: 0, End: end})
	}
	for i, ch := range c.list {
		end := n
		if i+1 < len(c.list) {
			end = c.list[i+1].start
		}
		rs = append(rs, Run{Start: ch.start, End: end, Formatting: ch.fmt})
	}
	return rs
}
