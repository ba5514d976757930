package main

import (
	"bufio"
	"io"

	"github.com/h3rald/hex-go/internal/flushio"
	"github.com/h3rald/hex-go/internal/srcio"
)

// EngineOption configures an Engine at construction time, in the
// functional-options style of gothird's VMOption (options.go/api.go).
type EngineOption interface{ apply(e *Engine) }

// Options combines any number of EngineOptions into one, flattening nested
// combinations the way gothird's VMOptions does.
func Options(opts ...EngineOption) EngineOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Engine) {}

type options []EngineOption

func (opts options) apply(e *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (fn withLogfn) apply(e *Engine) { e.logfn = fn }

// WithLogf installs a debug-trace logging function, wired by the CLI's
// -d/--debug flag the way gothird's -trace flag wires WithLogf.
func WithLogf(fn func(mess string, args ...interface{})) EngineOption { return withLogfn(fn) }

type inputOption struct{ io.Reader }

func (o inputOption) apply(e *Engine) {
	if e.cur == nil {
		e.cur = srcio.NewCursor(o.Reader)
	} else {
		e.cur.Push(o.Reader)
	}
}

// WithInput queues r as a source input stream for the Interpreter. Compiled
// modules are not read from it: RunBytecode takes its bytes directly.
func WithInput(r io.Reader) EngineOption { return inputOption{r} }

type stdinOption struct{ io.Reader }

func (o stdinOption) apply(e *Engine) { e.stdin = bufio.NewReader(o.Reader) }

// WithStdin sets the stream `gets` reads lines from, independent of the
// program source stream set by WithInput.
func WithStdin(r io.Reader) EngineOption { return stdinOption{r} }

type outputOption struct{ io.Writer }

func (o outputOption) apply(e *Engine) {
	e.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		e.closers = append(e.closers, cl)
	}
}

// WithOutput sets the stream puts/print write to. warn does not use it: it
// writes through the WithLogf function.
func WithOutput(w io.Writer) EngineOption { return outputOption{w} }

type stackLimitOption int

func (n stackLimitOption) apply(e *Engine) { e.Stack = NewStack(int(n)) }

// WithStackLimit overrides the default stack capacity.
func WithStackLimit(n int) EngineOption { return stackLimitOption(n) }

type registryLimitOption int

func (n registryLimitOption) apply(e *Engine) { e.Registry = NewRegistry(int(n)) }

// WithRegistryLimit overrides the default maximum user-symbol count.
func WithRegistryLimit(n int) EngineOption { return registryLimitOption(n) }

type traceDepthOption int

func (n traceDepthOption) apply(e *Engine) { e.Trace = NewTrace(int(n)) }

// WithTraceDepth overrides the default stack-trace ring buffer depth.
func WithTraceDepth(n int) EngineOption { return traceDepthOption(n) }

type forceTextOption struct{}

func (forceTextOption) apply(e *Engine) { e.forceText, e.forceBinary = true, false }

type forceBinaryOption struct{}

func (forceBinaryOption) apply(e *Engine) { e.forceBinary, e.forceText = true, false }

// WithForceTextReads forces `read` to always treat file content as text,
// bypassing the `read` native's binary-content heuristic.
func WithForceTextReads() EngineOption { return forceTextOption{} }

// WithForceBinaryReads forces `read` to always treat file content as a
// quotation of bytes.
func WithForceBinaryReads() EngineOption { return forceBinaryOption{} }

type argvOption []string

func (argv argvOption) apply(e *Engine) { e.Argv = []string(argv) }

// WithArgv sets the argv natives (`args`) observes.
func WithArgv(argv []string) EngineOption { return argvOption(argv) }
