package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h3rald/hex-go/internal/logio"
	"github.com/h3rald/hex-go/internal/panicerr"
)

const version = "0.1.0"

func main() {
	var (
		debug    bool
		bytecode bool
		help     bool
		manual   bool
		showVer  bool
	)
	flag.BoolVar(&debug, "d", false, "enable debug tracing")
	flag.BoolVar(&debug, "debug", false, "enable debug tracing")
	flag.BoolVar(&bytecode, "b", false, "compile the source file to .hbx instead of running it")
	flag.BoolVar(&bytecode, "bytecode", false, "compile the source file to .hbx instead of running it")
	flag.BoolVar(&help, "h", false, "print usage")
	flag.BoolVar(&help, "help", false, "print usage")
	flag.BoolVar(&manual, "m", false, "print the native-symbol manual")
	flag.BoolVar(&manual, "manual", false, "print the native-symbol manual")
	flag.BoolVar(&showVer, "v", false, "print the version")
	flag.BoolVar(&showVer, "version", false, "print the version")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	switch {
	case help:
		printUsage()
		return
	case showVer:
		fmt.Println(version)
		return
	case manual:
		printManual()
		return
	}

	path := flag.Arg(0)

	if bytecode {
		log.ErrorIf(runCompile(path))
		return
	}

	if path == "" {
		log.ErrorIf(runREPL(&log))
		return
	}

	log.ErrorIf(runFile(path, debug, &log))
}

func printUsage() {
	fmt.Println("usage: hex [-d|--debug] [-b|--bytecode] [-m|--manual] [-v|--version] [file]")
	fmt.Println("  with no file argument, hex reads a REPL session from stdin")
	fmt.Println("  files ending in .hbx are loaded as compiled bytecode")
}

func printManual() {
	names := make([]string, 0, len(nativeDocs))
	for name := range nativeDocs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-8s %s\n", name, nativeDocs[name])
	}
}

// runCompile implements -b/--bytecode: compiles path to a sibling .hbx
// file instead of running it.
func runCompile(path string) error {
	if path == "" {
		return fmt.Errorf("-b/--bytecode requires a source file argument")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buf, err := Compile(string(src))
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".hbx"
	return os.WriteFile(out, buf, 0644)
}

// runFile loads path as source or, if it ends in .hbx, as a compiled
// module, and runs it to completion against a fresh Engine.
func runFile(path string, debug bool, log *logio.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	opts := []EngineOption{
		WithOutput(os.Stdout),
		WithStdin(os.Stdin),
		WithArgv(flag.Args()),
	}
	if debug {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	isBytecode := strings.HasSuffix(path, ".hbx")
	if !isBytecode {
		opts = append(opts, WithInput(strings.NewReader(string(data))))
	}
	eng := New(opts...)
	defer eng.Close()

	err = panicerr.Recover("hex", func() error {
		if isBytecode {
			return RunBytecode(eng, data)
		}
		return NewInterpreter(eng).Run()
	})
	if err != nil {
		printTrace(eng, log)
	}
	return err
}

// runREPL runs the interpreter over stdin as a single source stream, in raw
// mode where the platform supports it. It prints no prompt and does not
// print the stack between top-level forms; output comes only from the
// program's own I/O natives.
func runREPL(log *logio.Logger) error {
	restore, err := setRawIO()
	if err != nil {
		log.Printf("WARN", "raw mode unavailable: %v", err)
	} else {
		defer restore()
	}

	eng := New(
		WithOutput(os.Stdout),
		WithStdin(os.Stdin),
		WithInput(os.Stdin),
	)
	defer eng.Close()

	err = panicerr.Recover("hex", func() error {
		return NewInterpreter(eng).Run()
	})
	if err != nil {
		printTrace(eng, log)
	}
	return err
}

func printTrace(eng *Engine, log *logio.Logger) {
	for _, tok := range eng.Trace.Recent() {
		log.Printf("TRACE", "%s %s", tok.Position, tok.Lexeme)
	}
}
