// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package template fills text templates with numeric and named arguments.
//
// In a template, %<digits> is a numeric label and %%<name>%% (or
// %%<name>%) is a named label. Numeric labels are filled in the order
// of their numbers, whatever the numbers are: the label with the
// smallest number gets the first argument, and labels with the same
// number share one argument. With the markup escape character, '&'
// by default, &% is a literal percent sign; all of the other &<c>
// escapes are kept as they are, so that the result can still be parsed
// as markup. A % followed by neither a digit nor another % is dropped.
package template

import (
	"slices"
	"strconv"
	"strings"

	"acedia.dev/core/text/markup"
	"acedia.dev/core/text/rich"
)

// label is a place in a template where an argument is inserted.
type label struct {

	// name is the name of a named label.
	name string

	// number is the number of a numeric label as written,
	// and slot is its index in the numeric arguments.
	number, slot int

	numeric bool

	// part is the index of the part that the label is inserted before.
	part int
}

// arg is the value of an argument.
type arg struct {
	// exactly one of text and str is used
	text rich.Source
	str  string

	// formatted is whether str is markup.
	formatted bool
}

// Template is a parsed text template along with its arguments.
// A template is filled with the Arg methods, assembled with
// [Template.Collect] or [Template.CollectFormatted], and can be
// filled again after [Template.Reset].
type Template struct {
	source string

	// parser parses markup arguments and the collected markup;
	// its escape character also escapes '%' in the template.
	parser *markup.Parser

	parts  []string
	cache  rich.Cache
	labels []label
	slots  int

	args  []arg
	named map[string]arg
}

// Parse parses the given template string for the [markup.DefaultParser].
func Parse(s string) *Template {
	return ParseWith(markup.DefaultParser, s)
}

// ParseWith parses the given template string for the given markup parser.
func ParseWith(p *markup.Parser, s string) *Template {
	if p == nil {
		p = markup.DefaultParser
	}
	tp := &Template{source: s, parser: p}
	tp.parse()
	tp.normalize()
	return tp
}

// ParseText parses the content of the given text as a template.
func ParseText(src rich.Source) *Template {
	if src == nil {
		return Parse("")
	}
	return Parse(src.String())
}

func (tp *Template) parse() {
	escape := tp.parser.EscapeRune()
	rs := []rune(tp.source)
	n := len(rs)
	var cur strings.Builder
	addLabel := func(lb label) {
		tp.parts = append(tp.parts, cur.String())
		cur.Reset()
		lb.part = len(tp.parts)
		tp.labels = append(tp.labels, lb)
	}
	for i := 0; i < n; i++ {
		r := rs[i]
		switch {
		case r == escape && i+1 < n:
			i++
			if rs[i] != '%' {
				cur.WriteRune(escape)
			}
			cur.WriteRune(rs[i])
		case r != '%' || i+1 == n:
			if r != '%' {
				cur.WriteRune(r)
			}
		case rs[i+1] == '%':
			j := i + 2
			for j < n && rs[j] != '%' {
				j++
			}
			addLabel(label{name: string(rs[i+2 : j])})
			i = j
			if i+1 < n && rs[i+1] == '%' {
				i++
			}
		case isDigit(rs[i+1]):
			j := i + 1
			for j < n && isDigit(rs[j]) {
				j++
			}
			addLabel(label{numeric: true, number: atoi(string(rs[i+1 : j]))})
			i = j - 1
		}
	}
	tp.parts = append(tp.parts, cur.String())
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// atoi parses a run of decimal digits, saturating on overflow.
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return v
}

// normalize assigns the dense numeric argument slots.
func (tp *Template) normalize() {
	var nums []int
	for _, lb := range tp.labels {
		if lb.numeric {
			nums = append(nums, lb.number)
		}
	}
	slices.Sort(nums)
	nums = slices.Compact(nums)
	for i := range tp.labels {
		if lb := &tp.labels[i]; lb.numeric {
			lb.slot, _ = slices.BinarySearch(nums, lb.number)
		}
	}
	tp.slots = len(nums)
}

// Source returns the template string that was parsed.
func (tp *Template) Source() string {
	return tp.source
}

// NumericLabels returns the number of distinct numeric labels,
// which is the number of numeric arguments that the template uses.
func (tp *Template) NumericLabels() int {
	return tp.slots
}

// NamedLabels returns the distinct names of the named labels,
// in the order of their first occurrence.
func (tp *Template) NamedLabels() []string {
	var names []string
	for _, lb := range tp.labels {
		if !lb.numeric && !slices.Contains(names, lb.name) {
			names = append(names, lb.name)
		}
	}
	return names
}

// Arg adds the next numeric argument as literal text.
func (tp *Template) Arg(s string) *Template {
	tp.args = append(tp.args, arg{str: s})
	return tp
}

// ArgFormatted adds the next numeric argument as markup.
func (tp *Template) ArgFormatted(s string) *Template {
	tp.args = append(tp.args, arg{str: s, formatted: true})
	return tp
}

// ArgRich adds the next numeric argument as rich text.
func (tp *Template) ArgRich(src rich.Source) *Template {
	tp.args = append(tp.args, arg{text: src})
	return tp
}

func (tp *Template) setNamed(name string, a arg) *Template {
	if tp.named == nil {
		tp.named = make(map[string]arg)
	}
	tp.named[name] = a
	return tp
}

// TextArg sets the named argument to literal text, replacing any
// previous value of it.
func (tp *Template) TextArg(name, s string) *Template {
	return tp.setNamed(name, arg{str: s})
}

// TextArgFormatted sets the named argument to markup.
func (tp *Template) TextArgFormatted(name, s string) *Template {
	return tp.setNamed(name, arg{str: s, formatted: true})
}

// TextArgRich sets the named argument to rich text.
func (tp *Template) TextArgRich(name string, src rich.Source) *Template {
	return tp.setNamed(name, arg{text: src})
}

// Reset removes all of the arguments, so that the template can be filled again.
func (tp *Template) Reset() *Template {
	tp.args = tp.args[:0]
	tp.named = nil
	return tp
}

// value returns the argument for the given label.
func (tp *Template) value(lb *label) (arg, bool) {
	if lb.numeric {
		if lb.slot < len(tp.args) {
			return tp.args[lb.slot], true
		}
		return arg{}, false
	}
	a, ok := tp.named[lb.name]
	return a, ok
}

// walk calls part for every literal part and value for every
// supplied argument, in template order.
func (tp *Template) walk(part func(s string), value func(a arg)) {
	li := 0
	for k, p := range tp.parts {
		for ; li < len(tp.labels) && tp.labels[li].part == k; li++ {
			if a, ok := tp.value(&tp.labels[li]); ok {
				value(a)
			}
		}
		part(p)
	}
}

// Collect assembles the template with its arguments. Markup escapes
// in the template are kept as they are, literal arguments are inserted
// as they are, and markup arguments are parsed. Labels without an
// argument are left empty.
func (tp *Template) Collect() *rich.Text {
	mt := rich.NewMutable()
	tp.walk(func(s string) {
		mt.Append(tp.cache.Of(s))
	}, func(a arg) {
		switch {
		case a.text != nil:
			mt.Append(a.text)
		case a.formatted:
			tp.parser.AppendTo(mt, a.str)
		default:
			mt.AppendString(a.str)
		}
	})
	return mt.Freeze()
}

// CollectFormatted assembles the template with its arguments into
// markup and parses it, so that arguments may supply parts of the
// markup, such as the color tag of a block. Literal and rich text
// arguments are escaped first.
func (tp *Template) CollectFormatted() (*rich.Text, markup.Errors) {
	return tp.parser.Parse(tp.Markup())
}

// Markup returns the markup that [Template.CollectFormatted] parses.
func (tp *Template) Markup() string {
	var sb strings.Builder
	tp.walk(func(s string) {
		sb.WriteString(s)
	}, func(a arg) {
		switch {
		case a.text != nil:
			sb.WriteString(tp.parser.Format(a.text))
		case a.formatted:
			sb.WriteString(a.str)
		default:
			sb.WriteString(tp.parser.Escape(a.str))
		}
	})
	return sb.String()
}

// String returns the content of [Template.Collect].
func (tp *Template) String() string {
	return tp.Collect().String()
}

// Format fills the given template string with the given numeric
// arguments as literal text and returns the collected result.
func Format(s string, args ...string) *rich.Text {
	tp := Parse(s)
	for _, a := range args {
		tp.Arg(a)
	}
	return tp.Collect()
}
