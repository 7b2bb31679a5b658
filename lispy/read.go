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
	"strconv"
	"strings"

	"github.com/launix-de/felispy/grammar"
)

// Read builds a value tree from a parse tree. The root of a program reads
// as an s-expression holding its top level forms.
func Read(n *grammar.Node) Value {
	switch {
	case n.Is("boolean"):
		return Boolean(n.Contents == "true")
	case n.Is("integer"):
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return Errorf(ErrParse, "invalid number %s", n.Contents)
		}
		return Integer(i)
	case n.Is("decimal"):
		f, err := strconv.ParseFloat(n.Contents, 64)
		if err != nil {
			return Errorf(ErrParse, "invalid number %s", n.Contents)
		}
		return Decimal(f)
	case n.Is("string"):
		return readString(n.Contents)
	case n.Is("symbol"):
		return Symbol(n.Contents)
	}

	var result Value
	switch {
	case n.Tag == ">", n.Is("sexpr"):
		result = SExpr()
	case n.Is("qexpr"):
		result = QExpr()
	default:
		return Errorf(ErrParse, "unexpected %s at %d:%d", n.Tag, n.Line, n.Col)
	}
	for _, c := range n.Children {
		if c.Tag == "char" || c.Tag == "regex" || c.Is("comment") {
			continue
		}
		result.cells = append(result.cells, Read(c))
	}
	return result
}

var stringUnescaper = strings.NewReplacer("\\\\", "\\", "\\\"", "\"", "\\n", "\n", "\\t", "\t", "\\r", "\r")

func readString(lit string) Value {
	return String(stringUnescaper.Replace(lit[1 : len(lit)-1]))
}

// ParseString parses text with the interpreter's grammar and reads it.
// The result is the s-expression of all top level forms.
func (in *Interpreter) ParseString(source, text string) (Value, error) {
	node, err := in.Grammar.ParseString(source, text)
	if err != nil {
		return Value{}, err
	}
	return Read(node), nil
}
