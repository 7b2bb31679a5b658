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

// Package grammar turns felispy source text into a generic labelled parse
// tree. The tree only knows tags, literal contents and children; building
// runtime values from it is up to the consumer.
package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lispyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\r\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Decimal", Pattern: `-?[0-9]+\.[0-9]+`},
	{Name: "Integer", Pattern: `-?[0-9]+`},
	{Name: "Symbol", Pattern: `[a-zA-Z0-9_+\-*/\\=<>!&%^|?.:]+`},
	{Name: "Punct", Pattern: `[(){}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

type program struct {
	Pos   lexer.Position
	Exprs []*expr `@@*`
}

type expr struct {
	Pos lexer.Position

	Comment *string `  @Comment`
	Decimal *string `| @Decimal`
	Integer *string `| @Integer`
	String  *string `| @String`
	Boolean *string `| @("true" | "false")`
	Symbol  *string `| @Symbol`
	SExpr   *sexpr  `| @@`
	QExpr   *qexpr  `| @@`
}

type sexpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Exprs  []*expr `"(" @@* ")"`
}

type qexpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Exprs  []*expr `"{" @@* "}"`
}

// Parser is the compiled grammar. Build it once and hand it to whoever
// needs to read source text.
type Parser struct {
	p *participle.Parser[program]
}

func New() (*Parser, error) {
	p, err := participle.Build[program](
		participle.Lexer(lispyLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build grammar: %w", err)
	}
	return &Parser{p}, nil
}

func MustNew() *Parser {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

// ParseString parses a whole program. source is only used for positions
// in error messages.
func (g *Parser) ParseString(source, text string) (*Node, error) {
	prog, err := g.p.ParseString(source, text)
	if err != nil {
		return nil, err
	}
	root := &Node{Tag: ">", Line: 1, Col: 1}
	root.Children = append(root.Children, &Node{Tag: "regex", Line: 1, Col: 1})
	for _, e := range prog.Exprs {
		root.Children = append(root.Children, e.node())
	}
	end := &Node{Tag: "regex"}
	if n := len(prog.Exprs); n > 0 {
		end.Line, end.Col = prog.Exprs[n-1].Pos.Line, prog.Exprs[n-1].Pos.Column
	}
	root.Children = append(root.Children, end)
	return root, nil
}

// IsIncomplete tells whether a parse error was caused by input that ended
// too early (e.g. an unclosed bracket), so more input could complete it.
func IsIncomplete(err error) bool {
	var ute *participle.UnexpectedTokenError
	if errors.As(err, &ute) {
		return ute.Unexpected.EOF()
	}
	return err != nil && strings.Contains(err.Error(), `unexpected token "<EOF>"`)
}

func leaf(tag string, contents string, pos lexer.Position) *Node {
	return &Node{Tag: "expr|" + tag + "|regex", Contents: contents, Line: pos.Line, Col: pos.Column}
}

func (e *expr) node() *Node {
	switch {
	case e.Comment != nil:
		return leaf("comment", *e.Comment, e.Pos)
	case e.Decimal != nil:
		return leaf("decimal", *e.Decimal, e.Pos)
	case e.Integer != nil:
		return leaf("integer", *e.Integer, e.Pos)
	case e.String != nil:
		return leaf("string", *e.String, e.Pos)
	case e.Boolean != nil:
		return leaf("boolean", *e.Boolean, e.Pos)
	case e.Symbol != nil:
		return leaf("symbol", *e.Symbol, e.Pos)
	case e.SExpr != nil:
		return list("sexpr", "(", ")", e.SExpr.Exprs, e.SExpr.Pos, e.SExpr.EndPos)
	case e.QExpr != nil:
		return list("qexpr", "{", "}", e.QExpr.Exprs, e.QExpr.Pos, e.QExpr.EndPos)
	}
	panic("grammar: empty expression node")
}

func list(tag, open, close string, exprs []*expr, pos, end lexer.Position) *Node {
	n := &Node{Tag: "expr|" + tag + "|>", Line: pos.Line, Col: pos.Column}
	n.Children = make([]*Node, 0, len(exprs)+2)
	n.Children = append(n.Children, &Node{Tag: "char", Contents: open, Line: pos.Line, Col: pos.Column})
	for _, e := range exprs {
		n.Children = append(n.Children, e.node())
	}
	n.Children = append(n.Children, &Node{Tag: "char", Contents: close, Line: end.Line, Col: end.Column})
	return n
}
