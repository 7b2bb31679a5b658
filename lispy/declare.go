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

import "os"
import "io"
import "fmt"
import "strings"
import "path/filepath"

// Native is the implementation of a builtin. env is the environment the
// call happens in; args are already evaluated and owned by the callee.
type Native func(in *Interpreter, env *Env, args []Value) Value

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // any | number | bool | string | symbol | qexpr | func | error | ok
	Fn           Native
}

type DeclarationParameter struct {
	Name string
	Type string // any | number | bool | string | symbol | qexpr | func, alternatives separated by |
	Desc string
}

// unbounded parameter count
const many = 1000

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

// Declare adds a builtin to the catalog every interpreter starts with.
func Declare(def *Declaration) {
	if _, ok := declarations[def.Name]; ok {
		panic("builtin declared twice: " + def.Name)
	}
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
}

// LookupDeclaration finds a builtin of the catalog by name.
func LookupDeclaration(name string) *Declaration {
	return declarations[name]
}

// Declarations lists the catalog in declaration order.
func Declarations() []*Declaration {
	result := make([]*Declaration, 0, len(declarations))
	for _, t := range declaration_titles {
		if t[0] != '#' {
			result = append(result, declarations[t])
		}
	}
	return result
}

var typeNames = map[string]string{
	"any":    "any value",
	"number": "Number",
	"bool":   "Boolean",
	"string": "String",
	"symbol": "Symbol",
	"qexpr":  "Q-Expression",
	"func":   "Function",
}

func typeMatches(v Value, required string) bool {
	for _, r := range strings.Split(required, "|") {
		switch r {
		case "any":
			return true
		case "number":
			if v.IsNumber() {
				return true
			}
		case "bool":
			if v.kind == KindBoolean {
				return true
			}
		case "string":
			if v.kind == KindString {
				return true
			}
		case "symbol":
			if v.kind == KindSymbol {
				return true
			}
		case "qexpr":
			if v.kind == KindQExpr {
				return true
			}
		case "func":
			if v.kind == KindFunction {
				return true
			}
		}
	}
	return false
}

func describeType(required string) string {
	parts := strings.Split(required, "|")
	for i, p := range parts {
		if n, ok := typeNames[p]; ok {
			parts[i] = n
		}
	}
	return strings.Join(parts, " or ")
}

// check validates argument count and types against the declaration. The
// last parameter repeats for variadic builtins.
func (def *Declaration) check(args []Value) (Value, bool) {
	if len(args) < def.MinParameter || len(args) > def.MaxParameter {
		expected := fmt.Sprint(def.MinParameter)
		switch {
		case def.MinParameter == def.MaxParameter:
		case len(args) < def.MinParameter:
			expected = "at least " + expected
		default:
			expected = fmt.Sprintf("at most %d", def.MaxParameter)
		}
		return Errorf(ErrArgs, "Function '%s' passed incorrect number of arguments. Got %d, Expected %s.", def.Name, len(args), expected), false
	}
	if len(def.Params) == 0 {
		return Value{}, true
	}
	for i, a := range args {
		j := i
		if j >= len(def.Params) {
			j = len(def.Params) - 1
		}
		if !typeMatches(a, def.Params[j].Type) {
			return Errorf(ErrType, "Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.", def.Name, i, a.TypeName(), describeType(def.Params[j].Type)), false
		}
	}
	return Value{}, true
}

// Help prints the list of builtins, or the details of one.
func Help(w io.Writer, def *Declaration) {
	if def == nil {
		fmt.Fprintln(w, "Available builtins:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Fprintln(w, "")
				fmt.Fprintln(w, "-- "+title[1:]+" --")
			} else {
				fmt.Fprintln(w, "  "+title+": "+strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "get further information by typing (help \"functionname\")")
		return
	}
	fmt.Fprintln(w, "Help for: "+def.Name)
	fmt.Fprintln(w, "===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, def.Desc)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Allowed no. of parameters: ", def.MinParameter, "-", def.MaxParameter)
	fmt.Fprintln(w, "")
	for _, p := range def.Params {
		fmt.Fprintln(w, " - "+p.Name+" ("+p.Type+"): "+p.Desc)
	}
	fmt.Fprintln(w, " returns "+def.Returns)
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

type chapter struct {
	Title string
	Slug  string
	Fns   []*Declaration
}

func chapters() []*chapter {
	var result []*chapter
	var current *chapter
	used := map[string]int{}
	uniqSlug := func(s string) string {
		base := slugify(s)
		used[base]++
		if used[base] == 1 {
			return base
		}
		return fmt.Sprintf("%s-%d", base, used[base])
	}
	for _, t := range declaration_titles {
		if t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			current = &chapter{Title: title, Slug: uniqSlug(title)}
			result = append(result, current)
			continue
		}
		if current == nil {
			current = &chapter{Title: "General", Slug: uniqSlug("General")}
			result = append(result, current)
		}
		current.Fns = append(current.Fns, declarations[t])
	}
	return result
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all builtins of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}
	chs := chapters()

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, ch := range chs {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chs {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}
		writeChapter(f, ch)
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", fp, err)
		}
	}
	return nil
}

func writeChapter(f io.Writer, ch *chapter) {
	fmt.Fprintf(f, "# %s\n\n", ch.Title)
	for _, def := range ch.Fns {
		fmt.Fprintf(f, "## %s\n\n", def.Name)
		if def.Desc != "" {
			fmt.Fprintf(f, "%s\n\n", def.Desc)
		}
		if def.MaxParameter >= many {
			fmt.Fprintf(f, "**Allowed number of parameters:** %d or more\n\n", def.MinParameter)
		} else {
			fmt.Fprintf(f, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)
		}

		fmt.Fprint(f, "### Parameters\n\n")
		if len(def.Params) == 0 {
			fmt.Fprint(f, "_This function has no parameters._\n\n")
		} else {
			for _, p := range def.Params {
				fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
			}
			fmt.Fprintln(f)
		}

		fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
	}
}
