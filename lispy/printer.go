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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\r", "\\r", "\n", "\\n", "\t", "\\t")

// String renders v in source form so that reading the text back yields an
// equal value (functions, errors and ok are display only).
func (v Value) String() string {
	var b bytes.Buffer
	Serialize(&b, v)
	return b.String()
}

func Serialize(b *bytes.Buffer, v Value) {
	switch v.kind {
	case KindError:
		b.WriteString("Error: ")
		b.WriteString(v.str)
	case KindBoolean:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case KindDecimal:
		b.WriteString(formatDecimal(v.dec))
	case KindSymbol:
		b.WriteString(v.str)
	case KindString:
		b.WriteByte('"')
		b.WriteString(stringEscaper.Replace(v.str))
		b.WriteByte('"')
	case KindSExpr:
		serializeCells(b, '(', v.cells, ')')
	case KindQExpr:
		serializeCells(b, '{', v.cells, '}')
	case KindOk:
		b.WriteString("ok")
	case KindFunction:
		if bi := v.Builtin(); bi != nil {
			b.WriteString("<builtin: ")
			b.WriteString(bi.Name)
			b.WriteByte('>')
		} else {
			c := v.Closure()
			b.WriteString("(\\ ")
			serializeCells(b, '{', c.Formals, '}')
			b.WriteByte(' ')
			serializeCells(b, '{', c.Body, '}')
			b.WriteByte(')')
		}
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

func serializeCells(b *bytes.Buffer, open byte, cells []Value, close byte) {
	b.WriteByte(open)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		Serialize(b, c)
	}
	b.WriteByte(close)
}

// decimals always carry a dot so they read back as decimals
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") { // Inf, NaN
		s += ".0"
	}
	return s
}
