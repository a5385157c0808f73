// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and the
// default [slog] logger setup shared by the acedia tools.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to w (os.Stderr if nil), filtering at [UserLevel].
func SetDefaultLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lg := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar{}}))
	slog.SetDefault(lg)
	return lg
}

// levelVar reads [UserLevel] on every call so that changes
// made after [SetDefaultLogger] still apply.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
