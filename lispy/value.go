/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lispy

import "fmt"

type Kind uint8

const (
	KindError Kind = iota
	KindBoolean
	KindInteger
	KindDecimal
	KindSymbol
	KindString
	KindSExpr
	KindQExpr
	KindOk
	KindFunction
)

// TypeName is the name of a kind as it appears in error messages.
func (k Kind) TypeName() string {
	switch k {
	case KindError:
		return "Error"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindSExpr:
		return "S-Expression"
	case KindQExpr:
		return "Q-Expression"
	case KindOk:
		return "Ok"
	case KindFunction:
		return "Function"
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// ErrorKind categorizes an Error value. Equality of errors only looks at
// the message.
type ErrorKind uint8

const (
	ErrArgs ErrorKind = iota
	ErrType
	ErrUnbound
	ErrDivZero
	ErrEmpty
	ErrTooMany
	ErrFormals
	ErrNotFunction
	ErrUser
	ErrLoad
	ErrParse
)

var errorKindNames = [...]string{"args", "type", "unbound", "divzero", "empty", "toomany", "formals", "notfunction", "user", "load", "parse"}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("errorkind(%d)", k)
}

// Value is the single runtime representation of data and code. The zero
// Value is an Error with an empty message; use the constructors.
type Value struct {
	kind  Kind
	num   int64 // Integer, Boolean (0/1), ErrorKind
	dec   float64
	str   string // Symbol name, String text, Error message
	cells []Value
	fn    *Function
}

// Function is either a Builtin or a Closure, never both.
type Function struct {
	Builtin *Builtin
	Closure *Closure
}

// Builtin is a native operation. Two builtins are the same operation iff
// their names match.
type Builtin struct {
	Name string
	Decl *Declaration
}

// Closure is a user defined function. Env holds the arguments bound so
// far; its parent is linked at call time. Outer is the function frame the
// lambda was created in, nil when it was created at top level.
type Closure struct {
	Formals []Value
	Body    []Value
	Env     *Env
	Outer   *Env
}

func Error(kind ErrorKind, msg string) Value {
	return Value{kind: KindError, num: int64(kind), str: msg}
}

func Errorf(kind ErrorKind, format string, args ...any) Value {
	return Error(kind, fmt.Sprintf(format, args...))
}

func Boolean(b bool) Value {
	if b {
		return Value{kind: KindBoolean, num: 1}
	}
	return Value{kind: KindBoolean}
}

func Integer(i int64) Value   { return Value{kind: KindInteger, num: i} }
func Decimal(f float64) Value { return Value{kind: KindDecimal, dec: f} }
func Symbol(s string) Value   { return Value{kind: KindSymbol, str: s} }
func String(s string) Value   { return Value{kind: KindString, str: s} }
func Ok() Value               { return Value{kind: KindOk} }

// SExpr builds an s-expression owning the given cells.
func SExpr(cells ...Value) Value {
	if cells == nil {
		cells = []Value{}
	}
	return Value{kind: KindSExpr, cells: cells}
}

// QExpr builds a q-expression owning the given cells.
func QExpr(cells ...Value) Value {
	if cells == nil {
		cells = []Value{}
	}
	return Value{kind: KindQExpr, cells: cells}
}

func NewBuiltin(decl *Declaration) Value {
	return Value{kind: KindFunction, fn: &Function{Builtin: &Builtin{Name: decl.Name, Decl: decl}}}
}

// Lambda builds a closure with a fresh, empty private environment.
func Lambda(formals, body []Value, outer *Env) Value {
	return Value{kind: KindFunction, fn: &Function{Closure: &Closure{
		Formals: formals,
		Body:    body,
		Env:     NewEnv(nil),
		Outer:   outer,
	}}}
}

func (v Value) Kind() Kind           { return v.kind }
func (v Value) IsError() bool        { return v.kind == KindError }
func (v Value) ErrorKind() ErrorKind { return ErrorKind(v.num) }
func (v Value) Int() int64           { return v.num }
func (v Value) Dec() float64         { return v.dec }
func (v Value) Bool() bool           { return v.num != 0 }
func (v Value) Str() string          { return v.str }
func (v Value) Cells() []Value       { return v.cells }
func (v Value) Len() int             { return len(v.cells) }
func (v Value) IsList() bool         { return v.kind == KindSExpr || v.kind == KindQExpr }
func (v Value) TypeName() string     { return v.kind.TypeName() }

// IsNumber reports whether v takes part in arithmetic. Booleans count as
// the integers 0 and 1.
func (v Value) IsNumber() bool {
	return v.kind == KindInteger || v.kind == KindDecimal || v.kind == KindBoolean
}

func (v Value) Builtin() *Builtin {
	if v.fn == nil {
		return nil
	}
	return v.fn.Builtin
}

func (v Value) Closure() *Closure {
	if v.fn == nil {
		return nil
	}
	return v.fn.Closure
}

// Message is the text of an Error value.
func (v Value) Message() string { return v.str }

// Copy returns a deep clone: no cell, binding or closure environment is
// shared with v afterwards. Builtins are immutable and stay shared.
func (v Value) Copy() Value {
	switch v.kind {
	case KindSExpr, KindQExpr:
		v.cells = copyCells(v.cells)
	case KindFunction:
		if c := v.Closure(); c != nil {
			v.fn = &Function{Closure: c.Copy()}
		}
	}
	return v
}

func (c *Closure) Copy() *Closure {
	return &Closure{
		Formals: copyCells(c.Formals),
		Body:    copyCells(c.Body),
		Env:     c.Env.Copy(),
		Outer:   c.Outer,
	}
}

func copyCells(cells []Value) []Value {
	result := make([]Value, len(cells))
	for i, c := range cells {
		result[i] = c.Copy()
	}
	return result
}

// retag turns an s-expression into a q-expression or vice versa without
// touching the cells.
func (v Value) retag(k Kind) Value {
	v.kind = k
	return v
}
