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

// Equal is structural equality. Numbers (including booleans as 0/1) are
// compared after promotion, closures by formals and body only.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.kind == KindDecimal || b.kind == KindDecimal {
			return ToDecimal(a) == ToDecimal(b)
		}
		return a.num == b.num
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindError, KindSymbol, KindString:
		return a.str == b.str
	case KindSExpr, KindQExpr:
		return equalCells(a.cells, b.cells)
	case KindOk:
		return true
	case KindFunction:
		ab, bb := a.Builtin(), b.Builtin()
		if ab != nil || bb != nil {
			return ab != nil && bb != nil && ab.Name == bb.Name
		}
		ac, bc := a.Closure(), b.Closure()
		return equalCells(ac.Formals, bc.Formals) && equalCells(ac.Body, bc.Body)
	}
	return false
}

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ToDecimal converts any number to float64. Booleans are 0 and 1.
func ToDecimal(v Value) float64 {
	if v.kind == KindDecimal {
		return v.dec
	}
	return float64(v.num)
}

// Truthy is the truth value of a number: everything but zero is true.
func Truthy(v Value) bool {
	if v.kind == KindDecimal {
		return v.dec != 0
	}
	return v.num != 0
}
