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
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

const testProgram = `; a small library
(def {x} 42)
(head {})
(def {y} (+ x 1))
`

func writeFile(t *testing.T, filename, text string) {
	t.Helper()
	if err := os.WriteFile(filename, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func TestLoad(t *testing.T) {
	in, out := newTestInterpreter(t, false)
	writeFile(t, filepath.Join(in.Wd, "lib.lspy"), testProgram)
	expect(t, in, "ok", `(load "lib.lspy")`)
	expect(t, in, "43", "y")
	if !strings.Contains(out.String(), "Error: Function 'head' passed {}!") {
		t.Fatalf("expected the failing form to be printed, got %q", out.String())
	}
}

func TestLoadIntoFunctionScope(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	writeFile(t, filepath.Join(in.Wd, "local.lspy"), "(= {w} 7)")
	expect(t, in, "7", `((\ {f} {(\ {_} {w}) (load f)}) "local.lspy")`)
	expectError(t, in, ErrUnbound, "Unbound symbol 'w'", "w")
}

func TestLoadErrors(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	expectError(t, in, ErrLoad, "Could not load Library", `(load "missing.lspy")`)
	writeFile(t, filepath.Join(in.Wd, "broken.lspy"), "(def {x} 1")
	expectError(t, in, ErrLoad, "Could not load Library", `(load "broken.lspy")`)
	if err := in.Load("missing.lspy"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func writeCompressed(t *testing.T, filename string, wrap func(io.Writer) io.WriteCloser) {
	t.Helper()
	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("create %s: %v", filename, err)
	}
	w := wrap(f)
	if _, err := io.WriteString(w, testProgram); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close %s: %v", filename, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", filename, err)
	}
}

func TestLoadCompressed(t *testing.T) {
	wrappers := map[string]func(io.Writer) io.WriteCloser{
		"lib.lspy.gz": func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"lib.lspy.xz": func(w io.Writer) io.WriteCloser {
			xw, err := xz.NewWriter(w)
			if err != nil {
				t.Fatalf("xz: %v", err)
			}
			return xw
		},
		"lib.lspy.lz4": func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
	}
	for name, wrap := range wrappers {
		in, _ := newTestInterpreter(t, false)
		writeCompressed(t, filepath.Join(in.Wd, name), wrap)
		if err := in.Load(name); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		expect(t, in, "43", "y")
	}
}

func TestRead(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	expect(t, in, "{(+ 1 2) foo}", `(read "(+ 1 2) foo")`)
	expect(t, in, "3", `(eval (read "+ 1 2"))`)
	expect(t, in, "{}", `(read "; only a comment")`)
	expectError(t, in, ErrParse, "Could not parse", `(read "(")`)
}

func TestWatch(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	filename := filepath.Join(in.Wd, "watched.lspy")
	writeFile(t, filename, "(def {v} 1)")
	if err := in.Watch("watched.lspy"); err != nil {
		t.Fatalf("watch: %v", err)
	}
	expect(t, in, "1", "v")

	writeFile(t, filename, "(def {v} 2)")
	waitFor(t, in, "v", 2)
	if err := in.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func waitFor(t *testing.T, in *Interpreter, name string, want int64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		in.Lock()
		v := in.Global.Get(name)
		in.Unlock()
		if v.Kind() == KindInteger && v.Int() == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %s=%d, got %s", name, want, v)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestWatchNestedDoesNotStack(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	main := filepath.Join(in.Wd, "main.lspy")
	writeFile(t, filepath.Join(in.Wd, "lib.lspy"), "(def {hits} (+ hits 1))")
	writeFile(t, main, `(watch "lib.lspy")`)
	run(t, in, "(def {hits} 0)")
	if err := in.Watch("main.lspy"); err != nil {
		t.Fatalf("watch: %v", err)
	}
	expect(t, in, "1", "hits")

	writeFile(t, main, `(watch "lib.lspy") (def {edited} 1)`)
	waitFor(t, in, "edited", 1)
	in.Lock()
	hits := in.Global.Get("hits")
	in.Unlock()
	if hits.Int() < 2 {
		t.Fatalf("expected lib to be loaded again, hits=%s", hits)
	}
	in.watchMu.Lock()
	n := len(in.watchers)
	in.watchMu.Unlock()
	if n != 2 {
		t.Fatalf("expected 2 watchers, got %d", n)
	}
}

func TestWatchMissingFile(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	expectError(t, in, ErrLoad, "Could not load Library", `(watch "nothing.lspy")`)
}
