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
	_ "embed"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

//go:embed prelude.lspy
var preludeSource string

func (in *Interpreter) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(in.Wd, filename)
}

// loadFile evaluates all top level forms of a file one after another.
// A form that evaluates to an error is printed, the rest still runs.
func (in *Interpreter) loadFile(env *Env, filename string) Value {
	text, err := ReadSource(filename)
	if err != nil {
		return Errorf(ErrLoad, "Could not load Library %s", err)
	}
	code, err := in.ParseString(filename, text)
	if err != nil {
		return Errorf(ErrLoad, "Could not load Library %s", err)
	}
	for _, form := range code.cells {
		if r := in.Eval(env, form); r.kind == KindError {
			in.Println(r)
		}
	}
	return Ok()
}

// Load runs a program file in the global environment.
func (in *Interpreter) Load(filename string) error {
	in.Lock()
	defer in.Unlock()
	in.Log.Info("loading %s", filename)
	if r := in.loadFile(in.Global, in.resolve(filename)); r.IsError() {
		return errors.New(r.Message())
	}
	return nil
}

func (in *Interpreter) loadPrelude() error {
	code, err := in.ParseString("prelude.lspy", preludeSource)
	if err != nil {
		return fmt.Errorf("prelude: %w", err)
	}
	for _, form := range code.cells {
		if r := in.Eval(in.Global, form); r.IsError() {
			return fmt.Errorf("prelude: %s: %s", form, r.Message())
		}
	}
	return nil
}

// Watch loads a file now and again whenever it changes on disk.
func (in *Interpreter) Watch(filename string) error {
	in.Lock()
	defer in.Unlock()
	if r := in.watch(in.Global, in.resolve(filename)); r.IsError() {
		return errors.New(r.Message())
	}
	return nil
}

// watch expects the caller to hold the lock; reloads take it themselves.
func (in *Interpreter) watch(env *Env, filename string) Value {
	if r := in.loadFile(env, filename); r.IsError() {
		return r
	}
	in.watchMu.Lock()
	defer in.watchMu.Unlock()
	if _, ok := in.watchers[filename]; ok {
		// one watcher per file
		return Ok()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Errorf(ErrLoad, "Could not watch %s: %s", filename, err)
	}
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return Errorf(ErrLoad, "Could not watch %s: %s", filename, err)
	}
	if in.watchers == nil {
		in.watchers = make(map[string]io.Closer)
	}
	in.watchers[filename] = watcher
	go in.reloadLoop(watcher, env, filename)
	return Ok()
}

func (in *Interpreter) reloadLoop(watcher *fsnotify.Watcher, env *Env, filename string) {
	for {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
			// editors write in several steps; wait until the events stop
			for settled := false; !settled; {
				time.Sleep(10 * time.Millisecond)
				select {
				case _, ok := <-watcher.Events:
					if !ok {
						return
					}
				default:
					settled = true
				}
			}
			in.Log.Info("reloading %s", filename)
			in.Lock()
			if r := in.loadFile(env, filename); r.IsError() {
				in.Println(r)
			}
			in.Unlock()
			watcher.Add(filename) // text editors rename, so we have to rewatch
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			in.Log.Warning("watching %s: %v", filename, err)
		}
	}
}

// Close stops all file watchers.
func (in *Interpreter) Close() error {
	in.watchMu.Lock()
	defer in.watchMu.Unlock()
	var errs []error
	for _, w := range in.watchers {
		errs = append(errs, w.Close())
	}
	in.watchers = nil
	return errors.Join(errs...)
}

func init_load() {
	DeclareTitle("Loading")

	Declare(&Declaration{
		"load", "evaluates all forms of a program file. Files ending in .gz, .xz or .lz4 are uncompressed first",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"filename", "string", "path, relative to the working directory"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			return in.loadFile(env, in.resolve(a[0].str))
		},
	})
	Declare(&Declaration{
		"read", "parses a string into a q-expression of its forms without evaluating them",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"code", "string", "source text"},
		}, "qexpr",
		func(in *Interpreter, env *Env, a []Value) Value {
			code, err := in.ParseString("read", a[0].str)
			if err != nil {
				return Errorf(ErrParse, "Could not parse %s", err)
			}
			return code.retag(KindQExpr)
		},
	})
	Declare(&Declaration{
		"watch", "loads a program file and loads it again whenever it changes on disk",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"filename", "string", "path, relative to the working directory"},
		}, "ok",
		func(in *Interpreter, env *Env, a []Value) Value {
			return in.watch(env, in.resolve(a[0].str))
		},
	})
}
