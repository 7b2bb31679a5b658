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
/*
	felispy: a small lisp with s-expressions, q-expressions and closures

	http://www.buildyourownlisp.com/

*/
package main

import "os"
import "fmt"
import "flag"
import "sync"
import "crypto/rand"
import "github.com/google/uuid"
import "github.com/dc0d/onexit"
import "github.com/launix-de/go-mysqlstack/xlog"
import "github.com/launix-de/felispy/grammar"
import "github.com/launix-de/felispy/lispy"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func main() {
	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute felispy command (can be given multiple times)")

	wd, _ := os.Getwd() // programs are relative to working directory... or change with -wd PATH
	flag.StringVar(&wd, "wd", wd, "Working Directory for (load) (Default: .)")

	prelude := flag.Bool("prelude", true, "Load the standard prelude (fun, map, filter, ...)")
	watch := flag.Bool("watch", false, "Load script files again whenever they change on disk")
	trace := flag.Bool("trace", false, "Write a chrome trace of all function calls to $FELISPY_TRACEDIR")
	docs := flag.String("doc", "", "Write markdown documentation of all builtins into this folder and exit")
	debugAlloc := flag.Bool("debug-alloc", false, "Print memory statistics on exit")
	quiet := flag.Bool("q", false, "No banner; do not start the prompt after scripts or commands ran")
	history := flag.String("history", ".felispy-history.tmp", "History file of the prompt")

	flag.Parse()
	scripts := flag.Args()

	log := xlog.NewStdLog(xlog.Level(xlog.INFO))

	if *docs != "" {
		if err := lispy.WriteDocumentation(*docs); err != nil {
			log.Error("documentation: %v", err)
			os.Exit(1)
		}
		log.Info("documentation written to %s", *docs)
		return
	}

	if !*quiet {
		fmt.Print(`Felispy 0.0.1 - by Felipo
Copyright (C) 2024   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

Type ctrl+C to exit.
Type (help ()) to show help

`)
	}

	// init random generator for UUIDs
	uuid.SetRand(rand.Reader)
	session := uuid.New()

	var tracefile *lispy.Tracefile
	if *trace {
		tf, filename, err := lispy.OpenTrace(os.Getenv("FELISPY_TRACEDIR"), session)
		if err != nil {
			log.Error("trace: %v", err)
			os.Exit(1)
		}
		log.Info("writing trace to %s", filename)
		tracefile = tf
	}

	g, err := grammar.New()
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	in, err := lispy.New(lispy.Config{
		Grammar: g,
		Out:     os.Stdout,
		Log:     log,
		Trace:   tracefile,
		Wd:      wd,
		Prelude: *prelude,
		Session: session,
	})
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("session %s", in.Session)

	// install exit handler
	var once sync.Once
	exitroutine := func() {
		once.Do(func() {
			in.Close()
			if tracefile != nil {
				tracefile.Close()
			}
			if *debugAlloc {
				lispy.WriteMemoryReport(os.Stdout)
			}
		})
	}
	onexit.Register(exitroutine)
	defer exitroutine()

	// scripts initialization
	for _, script := range scripts {
		if *watch {
			err = in.Watch(script)
		} else {
			err = in.Load(script)
		}
		if err != nil {
			fmt.Println(err)
		}
	}
	for _, command := range commands {
		in.Lock()
		result, err := in.EvalString("command line", command)
		in.Unlock()
		if err != nil {
			fmt.Println(err)
			continue
		}
		in.Println(result)
	}

	if *quiet && (len(scripts) > 0 || len(commands) > 0) {
		if *watch {
			select {} // reloads happen in the background until a signal arrives
		}
		return
	}

	// REPL shell
	if err := lispy.Repl(in, *history); err != nil {
		log.Error("prompt: %v", err)
	}
}
