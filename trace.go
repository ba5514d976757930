package main

import "container/ring"

// DefaultTraceDepth is the default trace ring-buffer depth.
const DefaultTraceDepth = 16

// Trace is the bounded circular history of the most recently dispatched
// symbol tokens, used only for diagnostics. It is built on
// the standard library's container/ring: the requirement is a literal
// fixed-capacity circular buffer, which is exactly what container/ring
// implements, so no third-party substitute is wired here (see DESIGN.md).
type Trace struct {
	r     *ring.Ring
	depth int
	count int
}

// NewTrace creates a Trace with the given depth (DefaultTraceDepth if zero
// or negative).
func NewTrace(depth int) *Trace {
	if depth <= 0 {
		depth = DefaultTraceDepth
	}
	return &Trace{r: ring.New(depth), depth: depth}
}

// Record appends tok to the trace, overwriting the oldest entry on wrap.
// Only Symbol-kind tokens (NativeSymbol/UserSymbol dispatches) belong in
// the trace; callers must not record anything else.
func (t *Trace) Record(tok Token) {
	t.r.Value = tok
	t.r = t.r.Next()
	if t.count < t.depth {
		t.count++
	}
}

// Recent returns the recorded tokens, newest-first, as printed when a
// fatal error propagates to the top level.
func (t *Trace) Recent() []Token {
	out := make([]Token, 0, t.count)
	cur := t.r
	for i := 0; i < t.count; i++ {
		cur = cur.Prev()
		if tok, ok := cur.Value.(Token); ok {
			out = append(out, tok)
		}
	}
	return out
}
