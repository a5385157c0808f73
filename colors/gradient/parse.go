// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ReadFraction parses the given finite number, which is divided by
// 100 if it has a "%" suffix.
func ReadFraction(v string) (float32, error) {
	v = strings.TrimSpace(v)
	d := float32(1)
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f64, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, err
	}
	f := float32(f64) / d
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0, fmt.Errorf("gradient: %q is not a finite number", v)
	}
	return f, nil
}

// SplitStop splits a gradient stop of the form "color[point]" into
// its color and the point part including its brackets; point is
// empty if there is no opening bracket.
func SplitStop(s string) (clr, point string) {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// ParsePoint parses a bracketed stop position such as "[0.25]" or "[25%]".
func ParsePoint(point string) (float32, error) {
	inner, ok := strings.CutPrefix(point, "[")
	if ok {
		inner, ok = strings.CutSuffix(inner, "]")
	}
	if !ok {
		return Unset, fmt.Errorf("gradient: point %q must be enclosed in brackets", point)
	}
	f, err := ReadFraction(inner)
	if err != nil {
		return Unset, fmt.Errorf("gradient: invalid point %q: %w", point, err)
	}
	return f, nil
}
