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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	for in, want := range map[string]string{
		"Control flow": "control-flow",
		" Lists ":      "lists",
		"IO":           "io",
		"???":          "chapter",
	} {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestDeclareTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	Declare(&Declaration{Name: "head"})
}

func TestDeclarations(t *testing.T) {
	names := map[string]bool{}
	for _, def := range Declarations() {
		names[def.Name] = true
		if def.Fn == nil {
			t.Fatalf("builtin %s has no implementation", def.Name)
		}
	}
	for _, name := range []string{"head", "def", "\\", "+", "if", "load", "print"} {
		if !names[name] {
			t.Fatalf("builtin %s missing", name)
		}
	}
}

func TestWriteDocumentation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	if err := WriteDocumentation(dir); err != nil {
		t.Fatalf("write documentation: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "- [Control flow](control-flow.md)") {
		t.Fatalf("index misses a chapter:\n%s", index)
	}
	lists, err := os.ReadFile(filepath.Join(dir, "lists.md"))
	if err != nil {
		t.Fatalf("read chapter: %v", err)
	}
	if !strings.Contains(string(lists), "## head") || !strings.Contains(string(lists), "### Returns") {
		t.Fatalf("chapter misses head:\n%s", lists)
	}
}

func TestHelpListsChapters(t *testing.T) {
	var buf bytes.Buffer
	Help(&buf, nil)
	for _, chapter := range []string{"-- Arithmetic --", "-- Lists --", "-- Loading --"} {
		if !strings.Contains(buf.String(), chapter) {
			t.Fatalf("help misses %s:\n%s", chapter, buf.String())
		}
	}
}
