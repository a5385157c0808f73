// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package luatext exposes rich text markup and templates to Lua scripts.
package luatext

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	lua "github.com/yuin/gopher-lua"

	"acedia.dev/core/text/markup"
	"acedia.dev/core/text/template"
	"acedia.dev/core/text/termx"
)

// Global is the name of the Lua global table of the module.
const Global = "acedia_text"

// Module implements the acedia_text Lua module.
type Module struct {

	// Parser parses markup; [markup.DefaultParser] is used if it is nil.
	Parser *markup.Parser

	// Profile is the terminal color profile used by ansi.
	Profile termenv.Profile
}

// NewModule creates a new module using the given parser,
// rendering for terminals without colors.
func NewModule(p *markup.Parser) *Module {
	return &Module{Parser: p, Profile: termenv.Ascii}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "text"
}

func (m *Module) parser() *markup.Parser {
	if m.Parser == nil {
		return markup.DefaultParser
	}
	return m.Parser
}

// Register registers the module into the Lua state.
func (m *Module) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "plain", L.NewFunction(m.plain))
	L.SetField(mod, "format", L.NewFunction(m.format))
	L.SetField(mod, "escape", L.NewFunction(m.escape))
	L.SetField(mod, "template", L.NewFunction(m.template))
	L.SetField(mod, "ansi", L.NewFunction(m.ansi))
	L.SetGlobal(Global, mod)
	return nil
}

// NewState returns a new Lua state with the module registered.
// The caller must close it.
func (m *Module) NewState() (*lua.LState, error) {
	L := lua.NewState()
	if err := m.Register(L); err != nil {
		L.Close()
		return nil, err
	}
	return L, nil
}

// plain(markup) -> string
// Returns the content of the markup without formatting.
func (m *Module) plain(L *lua.LState) int {
	tx, _ := m.parser().Parse(L.CheckString(1))
	L.Push(lua.LString(tx.String()))
	return 1
}

// format(markup) -> string, {errors}
// Returns the markup in normal form, along with the list of
// problems found in it.
func (m *Module) format(L *lua.LState) int {
	p := m.parser()
	tx, errs := p.Parse(L.CheckString(1))
	tbl := L.NewTable()
	for i, e := range errs {
		tbl.RawSetInt(i+1, lua.LString(e.Error()))
	}
	L.Push(lua.LString(p.Format(tx)))
	L.Push(tbl)
	return 2
}

// escape(str) -> string
// Escapes the markup special characters of a string.
func (m *Module) escape(L *lua.LState) int {
	L.Push(lua.LString(m.parser().Escape(L.CheckString(1))))
	return 1
}

// template(tpl, {args}, {named}) -> string
// Fills a template with literal arguments and returns the resulting markup.
func (m *Module) template(L *lua.LState) int {
	tp := template.ParseWith(m.parser(), L.CheckString(1))
	if args := L.OptTable(2, nil); args != nil {
		for i := 1; i <= args.Len(); i++ {
			tp.Arg(lua.LVAsString(args.RawGetInt(i)))
		}
	}
	if named := L.OptTable(3, nil); named != nil {
		named.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				tp.TextArg(string(ks), lua.LVAsString(v))
			}
		})
	}
	L.Push(lua.LString(tp.Markup()))
	return 1
}

// ansi(markup) -> string
// Renders the markup with terminal escape sequences.
func (m *Module) ansi(L *lua.LState) int {
	tx, _ := m.parser().Parse(L.CheckString(1))
	L.Push(lua.LString(termx.Render(tx, m.Profile)))
	return 1
}

// SetPrint replaces the print function of the Lua state with
// one that writes to w.
func SetPrint(L *lua.LState, w io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
		return 0
	}))
}
