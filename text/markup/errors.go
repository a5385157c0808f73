// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"strings"

	"acedia.dev/core/base/errors"
)

// ErrorKinds are the kinds of problems found while parsing markup.
// None of them stop the parsing.
type ErrorKinds int32

const (
	// UnmatchedClosingBrackets counts closing braces without an open block.
	UnmatchedClosingBrackets ErrorKinds = iota

	// EmptyColorTag counts blocks that have no color tag.
	EmptyColorTag

	// BadColor is a color in a tag that could not be parsed.
	BadColor

	// BadGradientPoint is a malformed gradient point in a tag.
	BadGradientPoint

	// BadShortColorTag is a short color tag that has no color.
	BadShortColorTag
)

func (k ErrorKinds) String() string {
	switch k {
	case UnmatchedClosingBrackets:
		return "UnmatchedClosingBrackets"
	case EmptyColorTag:
		return "EmptyColorTag"
	case BadColor:
		return "BadColor"
	case BadGradientPoint:
		return "BadGradientPoint"
	case BadShortColorTag:
		return "BadShortColorTag"
	}
	return fmt.Sprintf("ErrorKinds(%d)", int32(k))
}

// counted returns whether errors of this kind are merged into
// a single [Error] with a count.
func (k ErrorKinds) counted() bool {
	return k == UnmatchedClosingBrackets || k == EmptyColorTag
}

// Error is a problem found while parsing markup.
type Error struct {
	Kind ErrorKinds

	// Count is the number of occurrences, for the counted kinds
	// [UnmatchedClosingBrackets] and [EmptyColorTag]; it is 1 otherwise.
	Count int

	// Cause is the offending text.
	Cause string

	// Suggestion is a known color close to a [BadColor] cause, if any.
	Suggestion string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("markup: ")
	switch e.Kind {
	case UnmatchedClosingBrackets:
		fmt.Fprintf(&sb, "%d unmatched closing bracket(s)", e.Count)
	case EmptyColorTag:
		fmt.Fprintf(&sb, "%d empty color tag(s)", e.Count)
	case BadColor:
		fmt.Fprintf(&sb, "bad color %q", e.Cause)
		if e.Suggestion != "" {
			fmt.Fprintf(&sb, " (did you mean %q?)", e.Suggestion)
		}
	case BadGradientPoint:
		fmt.Fprintf(&sb, "bad gradient point %q", e.Cause)
	case BadShortColorTag:
		fmt.Fprintf(&sb, "bad short color tag %q", e.Cause)
	default:
		fmt.Fprintf(&sb, "%v %q", e.Kind, e.Cause)
	}
	return sb.String()
}

// Errors is the report of all of the problems found while parsing markup.
// Counted kinds have at most one entry each.
type Errors []*Error

// add records an occurrence of an error of the given kind.
func (es *Errors) add(kind ErrorKinds, cause string) *Error {
	if kind.counted() {
		for _, e := range *es {
			if e.Kind == kind {
				e.Count++
				return e
			}
		}
	}
	e := &Error{Kind: kind, Count: 1, Cause: cause}
	*es = append(*es, e)
	return e
}

// Count returns the total number of occurrences of errors of the given kind.
func (es Errors) Count(kind ErrorKinds) int {
	n := 0
	for _, e := range es {
		if e.Kind == kind {
			n += e.Count
		}
	}
	return n
}

// Err returns all of the errors joined into one, or nil if there are none.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errors.Join(errs...)
}
