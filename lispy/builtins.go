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

import (
	"io"
	"strings"
)

func init() {
	init_alu()
	init_list()
	init_env()
	init_control()
	init_io()
	init_load()
}

// bind implements def and =. A closure created in the very frame it is
// published from by def loses that frame, so functions defined through a
// helper like fun resolve free symbols at their call site.
func bind(name string, env *Env, a []Value, global bool) Value {
	syms := a[0].cells
	for _, s := range syms {
		if s.kind != KindSymbol {
			return Errorf(ErrType, "Function '%s' cannot define non-symbol. Got %s, Expected Symbol.", name, s.TypeName())
		}
	}
	if len(syms) != len(a)-1 {
		return Errorf(ErrArgs, "Function '%s' passed too many arguments for symbols. Got %d, Expected %d.", name, len(syms), len(a)-1)
	}
	for i, s := range syms {
		if global {
			env.Def(s.str, a[i+1])
		} else {
			env.Put(s.str, a[i+1])
		}
	}
	return Ok()
}

func validateFormals(formals []Value) Value {
	for i, s := range formals {
		if s.kind != KindSymbol {
			return Errorf(ErrType, "Cannot define non-symbol. Got %s, Expected Symbol.", s.TypeName())
		}
		if s.str == "&" && i != len(formals)-2 {
			return Error(ErrFormals, "Function format invalid. Symbol '&' not followed by single symbol.")
		}
	}
	return Ok()
}

func symbolList(names []string) Value {
	cells := make([]Value, len(names))
	for i, n := range names {
		cells[i] = Symbol(n)
	}
	return QExpr(cells...)
}

func init_env() {
	DeclareTitle("Environment")

	Declare(&Declaration{
		"def", "defines symbols in the global environment",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"symbols", "qexpr", "list of symbols to define"},
			DeclarationParameter{"value...", "any", "one value per symbol"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			return bind("def", env, a, true)
		},
	})
	Declare(&Declaration{
		"=", "defines or assigns symbols in the current environment",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"symbols", "qexpr", "list of symbols to define"},
			DeclarationParameter{"value...", "any", "one value per symbol"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			return bind("=", env, a, false)
		},
	})
	Declare(&Declaration{
		"\\", "creates a function. Use & before the last formal to collect all remaining arguments in a list",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"formals", "qexpr", "list of parameter symbols"},
			DeclarationParameter{"body", "qexpr", "code to evaluate when all parameters are bound"},
		}, "func",
		func(in *Interpreter, env *Env, a []Value) Value {
			if err := validateFormals(a[0].cells); err.IsError() {
				return err
			}
			var outer *Env
			if !env.IsRoot() {
				outer = env
			}
			return Lambda(copyCells(a[0].cells), copyCells(a[1].cells), outer)
		},
	})
	Declare(&Declaration{
		"fun", "defines a global function from {name formals...} and a body. The function sees the symbols of its caller, not of the place it was defined",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"signature", "qexpr", "function name followed by its formals"},
			DeclarationParameter{"body", "qexpr", "code to evaluate when all parameters are bound"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			sig := a[0].cells
			if len(sig) == 0 {
				return emptyError("fun")
			}
			if sig[0].kind != KindSymbol {
				return Errorf(ErrType, "Function 'fun' cannot define non-symbol. Got %s, Expected Symbol.", sig[0].TypeName())
			}
			if err := validateFormals(sig[1:]); err.IsError() {
				return err
			}
			env.Def(sig[0].str, Lambda(copyCells(sig[1:]), copyCells(a[1].cells), nil))
			return Ok()
		},
	})
	Declare(&Declaration{
		"get_env", "lists the symbols bound in a function's own environment; any other argument such as () lists the current environment",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"function", "any", "function to inspect, or ()"},
		}, "qexpr",
		func(in *Interpreter, env *Env, a []Value) Value {
			if a[0].kind == KindFunction {
				if c := a[0].Closure(); c != nil {
					return symbolList(c.Env.Symbols())
				}
				return QExpr()
			}
			return symbolList(env.Symbols())
		},
	})
}

func init_control() {
	DeclareTitle("Control flow")

	Declare(&Declaration{
		"if", "evaluates one of two quoted branches depending on a condition",
		3, 3,
		[]DeclarationParameter{
			DeclarationParameter{"condition", "number", "zero and false select the else branch"},
			DeclarationParameter{"then", "qexpr", "code evaluated when the condition holds"},
			DeclarationParameter{"else", "qexpr", "code evaluated otherwise"},
		}, "any",
		func(in *Interpreter, env *Env, a []Value) Value {
			if Truthy(a[0]) {
				return in.Eval(env, a[1].retag(KindSExpr))
			}
			return in.Eval(env, a[2].retag(KindSExpr))
		},
	})
	Declare(&Declaration{
		"error", "creates an error value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"message", "string", "error message"},
		}, "error",
		func(in *Interpreter, env *Env, a []Value) Value {
			return Error(ErrUser, a[0].str)
		},
	})
	Declare(&Declaration{
		"type", "returns the type name of a value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to inspect"},
		}, "string",
		func(in *Interpreter, env *Env, a []Value) Value {
			return String(a[0].TypeName())
		},
	})
}

func init_io() {
	DeclareTitle("IO")

	Declare(&Declaration{
		"print", "prints values in source form, separated by spaces",
		0, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values to print"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			parts := make([]string, len(a))
			for i, v := range a {
				parts[i] = v.String()
			}
			io.WriteString(in.Out, strings.Join(parts, " ")+"\n")
			return Ok()
		},
	})
	Declare(&Declaration{
		"show", "prints strings as they are, without quotes and escapes",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"text...", "string", "strings to print"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			parts := make([]string, len(a))
			for i, v := range a {
				parts[i] = v.str
			}
			io.WriteString(in.Out, strings.Join(parts, " ")+"\n")
			return Ok()
		},
	})
	Declare(&Declaration{
		"help", "lists all builtins, or prints help for one builtin",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"topic", "any", "name or builtin to describe; () lists all"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			switch a[0].kind {
			case KindString:
				def := LookupDeclaration(a[0].str)
				if def == nil {
					return Errorf(ErrArgs, "Function 'help' found no builtin named '%s'", a[0].str)
				}
				Help(in.Out, def)
			case KindFunction:
				b := a[0].Builtin()
				if b == nil {
					return Error(ErrType, "Function 'help' passed incorrect type for argument 0. Got Function, Expected builtin.")
				}
				Help(in.Out, b.Decl)
			default:
				Help(in.Out, nil)
			}
			return Ok()
		},
	})
}
