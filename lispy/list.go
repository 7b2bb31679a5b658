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

import "strings"
import "unicode/utf8"

// list builtins never modify their arguments; results get fresh cells

func emptyError(name string) Value {
	return Errorf(ErrEmpty, "Function '%s' passed {}!", name)
}

func init_list() {
	DeclareTitle("Lists")

	Declare(&Declaration{
		"list", "turns the arguments into a q-expression",
		0, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "elements of the list"},
		}, "qexpr",
		func(in *Interpreter, env *Env, a []Value) Value {
			return QExpr(copyCells(a)...)
		},
	})
	Declare(&Declaration{
		"head", "returns a q-expression holding only the first element of a list, or the first character of a string",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "qexpr|string", "non-empty list or string"},
		}, "qexpr|string",
		func(in *Interpreter, env *Env, a []Value) Value {
			if a[0].kind == KindString {
				if a[0].str == "" {
					return emptyError("head")
				}
				_, size := utf8.DecodeRuneInString(a[0].str)
				return String(a[0].str[:size])
			}
			if len(a[0].cells) == 0 {
				return emptyError("head")
			}
			return QExpr(a[0].cells[0].Copy())
		},
	})
	Declare(&Declaration{
		"tail", "returns a list without its first element, or a string without its first character",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "qexpr|string", "non-empty list or string"},
		}, "qexpr|string",
		func(in *Interpreter, env *Env, a []Value) Value {
			if a[0].kind == KindString {
				if a[0].str == "" {
					return emptyError("tail")
				}
				_, size := utf8.DecodeRuneInString(a[0].str)
				return String(a[0].str[size:])
			}
			if len(a[0].cells) == 0 {
				return emptyError("tail")
			}
			return QExpr(copyCells(a[0].cells[1:])...)
		},
	})
	Declare(&Declaration{
		"init", "returns a list without its last element",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "qexpr", "non-empty list"},
		}, "qexpr",
		func(in *Interpreter, env *Env, a []Value) Value {
			if len(a[0].cells) == 0 {
				return emptyError("init")
			}
			return QExpr(copyCells(a[0].cells[:len(a[0].cells)-1])...)
		},
	})
	Declare(&Declaration{
		"join", "concatenates lists, or concatenates strings",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "qexpr|string", "lists or strings, all of the same type"},
		}, "qexpr|string",
		func(in *Interpreter, env *Env, a []Value) Value {
			for i, v := range a[1:] {
				if v.kind != a[0].kind {
					return Errorf(ErrType, "Function 'join' passed incorrect type for argument %d. Got %s, Expected %s.", i+1, v.TypeName(), a[0].TypeName())
				}
			}
			if a[0].kind == KindString {
				var b strings.Builder
				for _, v := range a {
					b.WriteString(v.str)
				}
				return String(b.String())
			}
			var cells []Value
			for _, v := range a {
				cells = append(cells, copyCells(v.cells)...)
			}
			return QExpr(cells...)
		},
	})
	Declare(&Declaration{
		"cons", "prepends a value to a list",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "new first element"},
			DeclarationParameter{"list", "qexpr", "list to prepend to"},
		}, "qexpr",
		func(in *Interpreter, env *Env, a []Value) Value {
			cells := make([]Value, 0, len(a[1].cells)+1)
			cells = append(cells, a[0].Copy())
			cells = append(cells, copyCells(a[1].cells)...)
			return QExpr(cells...)
		},
	})
	Declare(&Declaration{
		"len", "number of elements of a list, or characters of a string",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "qexpr|string", "list or string"},
		}, "number",
		func(in *Interpreter, env *Env, a []Value) Value {
			if a[0].kind == KindString {
				return Integer(int64(utf8.RuneCountInString(a[0].str)))
			}
			return Integer(int64(len(a[0].cells)))
		},
	})
	Declare(&Declaration{
		"eval", "evaluates a q-expression as code",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"code", "qexpr", "quoted code"},
		}, "any",
		func(in *Interpreter, env *Env, a []Value) Value {
			return in.Eval(env, a[0].retag(KindSExpr))
		},
	})
}
