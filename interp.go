package main

import (
	"io"
	"strings"

	"github.com/h3rald/hex-go/internal/srcio"
)

func newStringCursor(src string) *srcio.Cursor {
	return srcio.NewCursor(strings.NewReader(src))
}

// Interpreter is the direct-from-AST execution loop: it tokenizes and
// parses source text, dispatching each top-level item against an Engine
// as it goes (no intermediate bytecode).
type Interpreter struct {
	eng *Engine
}

// NewInterpreter creates an Interpreter bound to eng, reading source from
// the engine's configured input cursor.
func NewInterpreter(eng *Engine) *Interpreter {
	return &Interpreter{eng: eng}
}

// Run interprets source to completion, or until a fatal error occurs.
func (ip *Interpreter) Run() error {
	if ip.eng.cur == nil {
		return nil
	}
	tok := NewTokenizer(ip.eng.cur, ip.eng.IsNative)
	p := NewParser(tok, ip.eng)
	err := p.RunTopLevel()
	if err == io.EOF {
		return nil
	}
	return err
}

// InterpretString runs src through a fresh Interpreter sharing eng's stack
// and registry: this is the mechanism behind the `!` native's
// "reinterpret as source" mode.
func InterpretString(eng *Engine, src string) error {
	saved := eng.cur
	defer func() { eng.cur = saved }()

	eng.cur = newStringCursor(src)
	return NewInterpreter(eng).Run()
}
