package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/h3rald/hex-go/internal/flushio"
	"github.com/h3rald/hex-go/internal/srcio"
)

// maxErrorSlot bounds the error slot: longer messages are truncated.
const maxErrorSlot = 256

// Settings enumerate the engine's runtime toggles.
type Settings struct {
	DebuggingEnabled  bool
	ErrorsEnabled     bool
	StackTraceEnabled bool
}

// Engine is the explicit context threaded through the interpreter and the
// bytecode VM: stack, registry, trace, settings, error slot, argv — the
// explicit context in place of process-wide singletons, which makes
// multiple independent interpreters trivial and testing easy.
type Engine struct {
	Stack    *Stack
	Registry *Registry
	Trace    *Trace
	Settings Settings
	Argv     []string

	natives map[string]NativeFunc

	errSlot string

	cur   *srcio.Cursor
	out   flushio.WriteFlusher
	stdin *bufio.Reader

	forceText, forceBinary bool

	logfn   func(mess string, args ...interface{})
	closers []io.Closer
}

// NativeFunc is the signature every built-in operation implements: a
// function from engine context to success/failure.
type NativeFunc func(e *Engine) error

// New builds an Engine with its native registry populated and applies opts.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		Stack:    NewStack(DefaultStackLimit),
		Registry: NewRegistry(DefaultRegistryLimit),
		Trace:    NewTrace(DefaultTraceDepth),
		Settings: Settings{ErrorsEnabled: true},
		out:      flushio.NewWriteFlusher(io.Discard),
	}
	Options(opts...).apply(e)
	e.natives = nativeTable()
	for name, fn := range e.natives {
		_ = fn
		e.Registry.SetNative(name, NativeSymbol(name, Token{Kind: TokSymbol, Lexeme: name}))
	}
	return e
}

// IsNative reports whether name is a reserved native symbol, for use by the
// Tokenizer's identifier validation.
func (e *Engine) IsNative(name string) bool {
	_, ok := e.natives[name]
	return ok
}

// Close releases any resources opened by engine options (output files,
// piped input, etc.), most-recently-opened first.
func (e *Engine) Close() (err error) {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if cerr := e.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (e *Engine) logf(mark, mess string, args ...interface{}) {
	if e.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	e.logfn("%v %v", mark, mess)
}

// SetError populates the error slot (truncated to maxErrorSlot bytes) and,
// unless error printing is disabled (e.g. inside `try`), writes it to the
// diagnostic stream: the function installed by WithLogf. Without one, the
// message is only kept in the error slot.
func (e *Engine) SetError(err error) {
	msg := err.Error()
	if len(msg) > maxErrorSlot {
		msg = msg[:maxErrorSlot]
	}
	e.errSlot = msg
	if e.Settings.ErrorsEnabled {
		e.logf("!", "%s", msg)
	}
}

// ClearError empties the error slot and returns its prior contents, as used
// by the `error` native.
func (e *Engine) ClearError() string {
	msg := e.errSlot
	e.errSlot = ""
	return msg
}

// HasError reports whether the error slot is currently populated.
func (e *Engine) HasError() bool { return e.errSlot != "" }

// Dispatch implements the core push semantics: plain values go
// straight onto the stack; a NativeSymbol invokes its function; a
// UserSymbol is resolved against the registry and, depending on the kind
// and immediate-ness of the stored value, spliced, pushed whole, or simply
// pushed. Every symbol resolution is recorded in the trace ring buffer.
func (e *Engine) Dispatch(v Value) error {
	switch v.Kind {
	case KindNativeSymbol:
		e.Trace.Record(v.Token)
		fn, ok := e.natives[v.Name]
		if !ok {
			return errUnknownSymbol(v.Name)
		}
		if err := fn(e); err != nil {
			e.SetError(err)
			return err
		}
		return nil

	case KindUserSymbol:
		e.Trace.Record(v.Token)
		stored, ok := e.Registry.Get(v.Name)
		if !ok {
			err := errUnknownSymbol(v.Name)
			e.SetError(err)
			return err
		}
		if stored.Kind == KindQuotation && stored.Immediate {
			for _, item := range stored.Items {
				if err := e.Dispatch(item); err != nil {
					return err
				}
			}
			return nil
		}
		return e.Stack.Push(stored)

	default:
		return e.Stack.Push(v)
	}
}

// Pop pops a value off the stack, returning ErrUnderflow wrapped with the
// given symbol name ("<symbol>: stack underflow") if the stack is empty.
func (e *Engine) Pop(symbol string) (Value, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return v, fmt.Errorf("%s: %w", symbol, err)
	}
	return v, nil
}

// PopKind pops a value and checks its kind, returning an arityError if it
// doesn't match.
func (e *Engine) PopKind(symbol string, want Kind) (Value, error) {
	v, err := e.Pop(symbol)
	if err != nil {
		return v, err
	}
	if v.Kind != want {
		return v, arityError{symbol: symbol, want: want.String(), got: v}
	}
	return v, nil
}
