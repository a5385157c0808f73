// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup parses and writes the markup used for rich text.
//
// A block {<tag> <content>} formats its content with the color of its
// tag, and blocks nest. The tag is one or more colors separated by ':',
// each optionally followed by a point such as [0.3] or [30%]; two or more
// colors make a gradient over the whole content of the block. A short tag
// ^<c> changes the color of the innermost block to the color of the
// single character c, and &<c> makes c literal, as in &{, &} and &&.
//
// Problems in the markup never stop the parsing: they are collected
// into an [Errors] report and the best possible result is produced.
package markup
