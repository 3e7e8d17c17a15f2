// Package lua exposes the reader to gopher-lua scripts as require("scheme").
//
//	local scheme = require("scheme")
//	local v, rest, err = scheme.parse("42abc")
//	-- v = {number=42}, rest = "abc", err = nil
//
// Values are plain tables keyed by their kind: {atom="x"}, {number=1},
// {string="s"}, {bool=true}, {list={...}} and {list={...}, tail=...}.
package lua

import (
	"errors"
	"fmt"

	"github.com/alttpo/scheme"
	"github.com/yuin/gopher-lua"
)

const ModuleName = "scheme"

var ErrNotAValue = errors.New("table is not a scheme value")

var exports = map[string]lua.LGFunction{
	"parse":  parse,
	"format": format,
}

// Loader pushes the scheme module table.
func Loader(l *lua.LState) int {
	mod := l.SetFuncs(l.NewTable(), exports)
	l.Push(mod)
	return 1
}

// Preload makes the module available to require.
func Preload(l *lua.LState) {
	l.PreloadModule(ModuleName, Loader)
}

// parse(line) returns value, rest, err.
func parse(l *lua.LState) int {
	line := l.CheckString(1)

	v, rest, err := scheme.ParseExpr(line)
	if err != nil {
		l.Push(lua.LNil)
		l.Push(lua.LString(line))
		l.Push(errorTable(l, err))
		return 3
	}

	l.Push(ToLua(l, v))
	l.Push(lua.LString(rest))
	l.Push(lua.LNil)
	return 3
}

// format(value) returns the surface syntax of a value table.
func format(l *lua.LState) int {
	v, err := FromLua(l.CheckTable(1))
	if err != nil {
		l.RaiseError("%v", err)
		return 0
	}
	l.Push(lua.LString(v.String()))
	return 1
}

func errorTable(l *lua.LState, err error) *lua.LTable {
	t := l.NewTable()
	t.RawSetString("err", lua.LString(scheme.Report(err)))

	var pe *scheme.ParseError
	if errors.As(err, &pe) {
		switch pe.Class {
		case scheme.ClassFailure:
			t.RawSetString("class", lua.LString("failure"))
		case scheme.ClassIncomplete:
			t.RawSetString("class", lua.LString("incomplete"))
		default:
			t.RawSetString("class", lua.LString("error"))
		}
		t.RawSetString("remaining", lua.LString(pe.Remaining))
	}
	return t
}

// ToLua converts v into its table form.
func ToLua(l *lua.LState, v *scheme.Value) lua.LValue {
	if v == nil {
		return lua.LNil
	}

	t := l.NewTable()
	switch v.Kind {
	case scheme.KindAtom:
		t.RawSetString("atom", lua.LString(v.Text))
	case scheme.KindNumber:
		t.RawSetString("number", lua.LNumber(v.Number))
	case scheme.KindString:
		t.RawSetString("string", lua.LString(v.Text))
	case scheme.KindBool:
		t.RawSetString("bool", lua.LBool(v.Bool))
	case scheme.KindList, scheme.KindDottedList:
		list := l.CreateTable(len(v.List), 0)
		for _, c := range v.List {
			list.Append(ToLua(l, c))
		}
		t.RawSetString("list", list)
		if v.Kind == scheme.KindDottedList {
			t.RawSetString("tail", ToLua(l, v.Tail))
		}
	}
	return t
}

// FromLua converts a table produced by ToLua, or written by hand in the same
// shape, back into a value. The value invariants are checked.
func FromLua(lv lua.LValue) (v *scheme.Value, err error) {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotAValue, lv.Type())
	}

	p := scheme.DefaultProducer
	if s, ok := t.RawGetString("atom").(lua.LString); ok {
		return p.Atom(string(s))
	}
	if n, ok := t.RawGetString("number").(lua.LNumber); ok {
		f := float64(n)
		if f < 0 || f > 4294967295 || f != float64(uint32(f)) {
			return nil, scheme.ErrNumberRange
		}
		return p.Number(uint32(f)), nil
	}
	if s, ok := t.RawGetString("string").(lua.LString); ok {
		return p.String(string(s))
	}
	if b, ok := t.RawGetString("bool").(lua.LBool); ok {
		return p.Bool(bool(b)), nil
	}

	list, ok := t.RawGetString("list").(*lua.LTable)
	if !ok {
		return nil, ErrNotAValue
	}
	children := make([]*scheme.Value, 0, list.Len())
	for i := 1; i <= list.Len(); i++ {
		var c *scheme.Value
		c, err = FromLua(list.RawGetInt(i))
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	tail := t.RawGetString("tail")
	if tail == lua.LNil {
		return p.List(children...), nil
	}
	var tv *scheme.Value
	tv, err = FromLua(tail)
	if err != nil {
		return nil, err
	}
	return p.DottedList(tv, children...)
}
