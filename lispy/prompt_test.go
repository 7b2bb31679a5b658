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
	"strings"
	"testing"
)

func TestReplEval(t *testing.T) {
	in, out := newTestInterpreter(t, false)
	code, err := in.ParseString("user prompt", "+ 1 2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	in.replEval(3, code)
	if want := "\033[31mResult(3):\033[0m 3\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestReplEvalRecovers(t *testing.T) {
	in, out := newTestInterpreter(t, false)
	in.Global.Put("broken", Value{kind: Kind(200)})
	in.replEval(1, SExpr(Symbol("broken")))
	if !strings.Contains(out.String(), "panic:") {
		t.Fatalf("expected the panic to be reported, got %q", out.String())
	}
	// the lock is released again
	expect(t, in, "2", "(+ 1 1)")
}

func TestMemoryReport(t *testing.T) {
	var buf bytes.Buffer
	WriteMemoryReport(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "DEBUG - freed: ") || !strings.HasPrefix(lines[1], "DEBUG - heap: ") {
		t.Fatalf("unexpected report %q", buf.String())
	}
}
