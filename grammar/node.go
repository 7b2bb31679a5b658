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
package grammar

import (
	"fmt"
	"io"
	"strings"
)

// Node is one element of the parse tree.
//
// Tags follow the layout "expr|<category>|regex" for leaves and
// "expr|<category>|>" for lists, ">" for the root. Punctuation is kept as
// "char" nodes and the root is framed by two "regex" anchor nodes.
type Node struct {
	Tag      string
	Contents string
	Line     int
	Col      int
	Children []*Node
}

func (n *Node) Is(category string) bool {
	return strings.Contains(n.Tag, category)
}

// Print dumps the tree, one node per line, for debugging the grammar.
func (n *Node) Print(w io.Writer) {
	n.print(w, 0)
}

func (n *Node) print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), n.Tag)
	if n.Contents != "" {
		fmt.Fprintf(w, " '%s'", n.Contents)
	}
	fmt.Fprintf(w, " %d:%d\n", n.Line, n.Col)
	for _, c := range n.Children {
		c.print(w, depth+1)
	}
}
