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

// Env is one frame of the scope chain. Bindings keep their insertion
// order; a name occurs at most once per frame.
type Env struct {
	names  []string
	values []Value
	parent *Env
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

func (e *Env) Parent() *Env     { return e.parent }
func (e *Env) SetParent(p *Env) { e.parent = p }
func (e *Env) IsRoot() bool     { return e.parent == nil }
func (e *Env) Len() int         { return len(e.names) }

func (e *Env) lookup(name string) int {
	for i, n := range e.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Get finds name in this frame or its ancestors and returns a copy of the
// bound value.
func (e *Env) Get(name string) Value {
	for en := e; en != nil; en = en.parent {
		if i := en.lookup(name); i >= 0 {
			return en.values[i].Copy()
		}
	}
	return Errorf(ErrUnbound, "Unbound symbol '%s'", name)
}

// Put binds a copy of v in this frame, replacing an existing binding.
func (e *Env) Put(name string, v Value) {
	if i := e.lookup(name); i >= 0 {
		e.values[i] = v.Copy()
		return
	}
	e.names = append(e.names, name)
	e.values = append(e.values, v.Copy())
}

// Def binds in the root frame.
func (e *Env) Def(name string, v Value) {
	e.Root().Put(name, v)
}

func (e *Env) Root() *Env {
	en := e
	for en.parent != nil {
		en = en.parent
	}
	return en
}

// Copy clones all bindings of this frame. The parent is shared.
func (e *Env) Copy() *Env {
	result := &Env{
		names:  make([]string, len(e.names)),
		values: make([]Value, len(e.values)),
		parent: e.parent,
	}
	copy(result.names, e.names)
	for i, v := range e.values {
		result.values[i] = v.Copy()
	}
	return result
}

// Symbols lists the names bound in this frame in definition order.
func (e *Env) Symbols() []string {
	result := make([]string, len(e.names))
	copy(result, e.names)
	return result
}
