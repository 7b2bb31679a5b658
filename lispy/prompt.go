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
	"fmt"
	"io"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/launix-de/felispy/grammar"
)

const newprompt = "\033[32mFelispy>\033[0m "
const contprompt = "\033[32m.......\033[0m "
const resultprompt = "\033[31mResult(%d):\033[0m "

// Repl reads lines until Ctrl-D (or Ctrl-C on an empty line) and prints
// each result numbered. Input with unclosed brackets continues on the next
// line.
func Repl(in *Interpreter, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            in.Out,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	count := 0
	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		code, err := in.ParseString("user prompt", line)
		if grammar.IsIncomplete(err) {
			oldline = line + "\n"
			l.SetPrompt(contprompt)
			continue
		}
		oldline = ""
		l.SetPrompt(newprompt)
		if err != nil {
			fmt.Fprintln(in.Out, err)
			continue
		}
		count++
		in.replEval(count, code)
	}
}

func (in *Interpreter) replEval(count int, code Value) {
	in.Lock()
	defer in.Unlock()
	// anti-panic func
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(in.Out, "panic:", r, string(debug.Stack()))
		}
	}()
	result := in.Eval(in.Global, code)
	fmt.Fprintf(in.Out, resultprompt, count)
	in.Println(result)
}
