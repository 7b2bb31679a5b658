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

import "testing"

func TestCopyIsDeep(t *testing.T) {
	orig := QExpr(Integer(1), QExpr(Integer(2)))
	c := orig.Copy()
	c.cells[1].cells[0] = Integer(99)
	if !Equal(orig, QExpr(Integer(1), QExpr(Integer(2)))) {
		t.Fatalf("copy shares cells with the original: %s", orig)
	}

	l := Lambda([]Value{Symbol("a")}, []Value{Symbol("a")}, nil)
	l.Closure().Env.Put("a", Integer(1))
	lc := l.Copy()
	lc.Closure().Env.Put("a", Integer(2))
	if got := l.Closure().Env.Get("a"); got.Int() != 1 {
		t.Fatalf("closure copy shares its environment: a=%s", got)
	}
}

func TestEqual(t *testing.T) {
	plus := NewBuiltin(LookupDeclaration("+"))
	minus := NewBuiltin(LookupDeclaration("-"))
	id1 := Lambda([]Value{Symbol("x")}, []Value{Symbol("x")}, nil)
	id2 := Lambda([]Value{Symbol("x")}, []Value{Symbol("x")}, NewEnv(nil))
	other := Lambda([]Value{Symbol("y")}, []Value{Symbol("y")}, nil)

	cases := []struct {
		a, b Value
		want bool
	}{
		{Integer(1), Decimal(1.0), true},
		{Integer(1), Decimal(1.5), false},
		{Boolean(true), Integer(1), true},
		{Boolean(false), Decimal(0), true},
		{Boolean(true), Boolean(true), true},
		{String("a"), String("a"), true},
		{String("a"), Symbol("a"), false},
		{Symbol("a"), Symbol("a"), true},
		{Error(ErrUser, "x"), Error(ErrType, "x"), true},
		{QExpr(Integer(1), Integer(2)), QExpr(Integer(1), Integer(2)), true},
		{QExpr(Integer(1), Integer(2)), QExpr(Integer(1)), false},
		{QExpr(Integer(1)), SExpr(Integer(1)), false},
		{Ok(), Ok(), true},
		{plus, plus, true},
		{plus, minus, false},
		{id1, id2, true},
		{id1, other, false},
		{plus, id1, false},
	}
	for i, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Fatalf("case %d: Equal(%s, %s) = %v, expected %v", i, c.a, c.b, got, c.want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	for name, v := range map[string]Value{
		"Error":        Error(ErrUser, "x"),
		"Boolean":      Boolean(true),
		"Integer":      Integer(1),
		"Decimal":      Decimal(1),
		"Symbol":       Symbol("x"),
		"String":       String("x"),
		"S-Expression": SExpr(),
		"Q-Expression": QExpr(),
		"Ok":           Ok(),
	} {
		if v.TypeName() != name {
			t.Fatalf("expected %s, got %s", name, v.TypeName())
		}
	}
}
