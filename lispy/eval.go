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

// Package lispy is a tree walking interpreter for a small lisp with
// s-expressions, q-expressions, closures and first class errors.
package lispy

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/launix-de/felispy/grammar"
	"github.com/launix-de/go-mysqlstack/xlog"
)

type Config struct {
	Grammar *grammar.Parser // required
	Out     io.Writer       // program output, default stdout
	Log     *xlog.Log
	Trace   *Tracefile // nil: no tracing
	Wd      string     // base directory for relative load paths
	Prelude bool       // load the standard prelude into the global env
	Session uuid.UUID  // zero: a new random id
}

// Interpreter owns a global environment and everything evaluation needs
// from the outside. Hold the lock while evaluating when other goroutines
// (file watchers) may evaluate too.
type Interpreter struct {
	sync.Mutex

	Grammar *grammar.Parser
	Global  *Env
	Out     io.Writer
	Log     *xlog.Log
	Trace   *Tracefile
	Wd      string
	Session uuid.UUID

	watchMu  sync.Mutex
	watchers map[string]io.Closer // by resolved file name
}

func New(cfg Config) (*Interpreter, error) {
	if cfg.Grammar == nil {
		return nil, errors.New("lispy: no grammar configured")
	}
	in := &Interpreter{
		Grammar: cfg.Grammar,
		Global:  NewEnv(nil),
		Out:     cfg.Out,
		Log:     cfg.Log,
		Trace:   cfg.Trace,
		Wd:      cfg.Wd,
		Session: cfg.Session,
	}
	if in.Session == uuid.Nil {
		in.Session = uuid.New()
	}
	if in.Out == nil {
		in.Out = os.Stdout
	}
	if in.Log == nil {
		in.Log = xlog.NewStdLog(xlog.Level(xlog.INFO))
	}
	if in.Wd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		in.Wd = wd
	}
	for _, def := range Declarations() {
		in.Global.Put(def.Name, NewBuiltin(def))
	}
	if cfg.Prelude {
		if err := in.loadPrelude(); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Eval reduces v in env. Only symbols and non-empty s-expressions do
// anything; every other value evaluates to itself.
func (in *Interpreter) Eval(env *Env, v Value) Value {
	switch v.kind {
	case KindSymbol:
		return env.Get(v.str)
	case KindSExpr:
		return in.evalSExpr(env, v)
	}
	return v
}

func (in *Interpreter) evalSExpr(env *Env, v Value) Value {
	if len(v.cells) == 0 {
		return v
	}
	cells := make([]Value, len(v.cells))
	for i, c := range v.cells {
		cells[i] = in.Eval(env, c)
		if cells[i].kind == KindError {
			return cells[i]
		}
	}
	if len(cells) == 1 {
		return cells[0]
	}
	if cells[0].kind != KindFunction {
		return Errorf(ErrNotFunction, "Expected Function, got %s", cells[0].TypeName())
	}
	return in.Call(env, cells[0], cells[1:])
}

// Call applies f to already evaluated args. env is the caller's
// environment.
func (in *Interpreter) Call(env *Env, f Value, args []Value) (result Value) {
	if in.Trace != nil {
		in.Trace.Duration(functionName(f), "call", func() {
			result = in.apply(env, f, args)
		})
		return
	}
	return in.apply(env, f, args)
}

func functionName(f Value) string {
	if b := f.Builtin(); b != nil {
		return b.Name
	}
	return "lambda"
}

func (in *Interpreter) apply(env *Env, f Value, args []Value) Value {
	if b := f.Builtin(); b != nil {
		if err, ok := b.Decl.check(args); !ok {
			return err
		}
		return b.Decl.Fn(in, env, args)
	}
	c := f.Closure()
	if c == nil {
		return Errorf(ErrNotFunction, "Expected Function, got %s", f.TypeName())
	}
	c = c.Copy()
	given, total := len(args), len(c.Formals)

	// \ rejects a misplaced &; the checks below only catch closures
	// built directly with Lambda

	for len(args) > 0 {
		if len(c.Formals) == 0 {
			return Errorf(ErrTooMany, "Function given too many arguments. Expected %d given %d.", total, given)
		}
		sym := c.Formals[0]
		c.Formals = c.Formals[1:]
		if sym.str == "&" {
			if len(c.Formals) != 1 {
				return Error(ErrFormals, "Function format invalid. Symbol '&' not followed by single symbol.")
			}
			c.Env.Put(c.Formals[0].str, QExpr(args...))
			c.Formals = c.Formals[1:]
			break
		}
		c.Env.Put(sym.str, args[0])
		args = args[1:]
	}

	// the variadic part was not given at all
	if len(c.Formals) > 0 && c.Formals[0].str == "&" {
		if len(c.Formals) != 2 {
			return Error(ErrFormals, "Function format invalid. Symbol '&' not followed by single symbol.")
		}
		c.Env.Put(c.Formals[1].str, QExpr())
		c.Formals = c.Formals[2:]
	}

	if len(c.Formals) > 0 {
		return Value{kind: KindFunction, fn: &Function{Closure: c}}
	}
	if c.Outer != nil {
		c.Env.SetParent(c.Outer)
	} else {
		c.Env.SetParent(env)
	}
	return in.Eval(c.Env, SExpr(c.Body...))
}

// EvalString parses text and evaluates all of it as one s-expression,
// the way a line typed at the prompt is treated.
func (in *Interpreter) EvalString(source, text string) (Value, error) {
	code, err := in.ParseString(source, text)
	if err != nil {
		return Value{}, err
	}
	return in.Eval(in.Global, code), nil
}

// Println writes the printed form of v to the interpreter's output.
func (in *Interpreter) Println(v Value) {
	io.WriteString(in.Out, v.String()+"\n")
}
