package main

import "strings"

// ioNatives implements the I/O operations: `puts` `warn` `print` `gets`.
var ioNatives = map[string]NativeFunc{
	"puts":  opPuts,
	"warn":  opWarn,
	"print": opPrint,
	"gets":  opGets,
}

func opPuts(e *Engine) error {
	v, err := e.Pop("puts")
	if err != nil {
		return err
	}
	return e.writeOut(displayRaw(v) + "\n")
}

func opWarn(e *Engine) error {
	v, err := e.Pop("warn")
	if err != nil {
		return err
	}
	e.logf("#", "%s", displayRaw(v))
	return nil
}

func opPrint(e *Engine) error {
	v, err := e.Pop("print")
	if err != nil {
		return err
	}
	return e.writeOut(displayRaw(v))
}

// displayRaw renders v the way puts/print/warn do: strings print their raw
// bytes (no surrounding quotes or escapes — those are for Value.Display,
// used when a string value sits inside a quotation), everything else as
// Value.Display.
func displayRaw(v Value) string {
	if v.Kind == KindString {
		return v.Str
	}
	return v.Display()
}

func (e *Engine) writeOut(s string) error {
	_, err := e.out.Write([]byte(s))
	if err != nil {
		return err
	}
	return e.out.Flush()
}

func opGets(e *Engine) error {
	if e.stdin == nil {
		return e.Stack.Push(Str(""))
	}
	line, err := e.stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return e.Stack.Push(Str(""))
	}
	return e.Stack.Push(Str(line))
}
