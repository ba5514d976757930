package main

import (
	"strings"
)

// listNatives implements the list/string operations: `cat` `len` `get`
// `index` `join` `split` `replace`.
var listNatives = map[string]NativeFunc{
	"cat":     opCat,
	"len":     opLen,
	"get":     opGet,
	"index":   opIndex,
	"join":    opJoin,
	"split":   opSplit,
	"replace": opReplace,
}

func opCat(e *Engine) error {
	b, err := e.Pop("cat")
	if err != nil {
		return err
	}
	a, err := e.Pop("cat")
	if err != nil {
		return err
	}
	if a.Kind != b.Kind || (a.Kind != KindString && a.Kind != KindQuotation) {
		return arityError{symbol: "cat", want: "two strings or two quotations", got: b}
	}
	if a.Kind == KindString {
		return e.Stack.Push(Str(a.Str + b.Str))
	}
	items := append(append([]Value{}, a.Items...), b.Items...)
	return e.Stack.Push(Value{Kind: KindQuotation, Items: items})
}

func opLen(e *Engine) error {
	a, err := e.Pop("len")
	if err != nil {
		return err
	}
	switch a.Kind {
	case KindString:
		return e.Stack.Push(Int32(int32(len(a.Str))))
	case KindQuotation:
		return e.Stack.Push(Int32(int32(len(a.Items))))
	default:
		return arityError{symbol: "len", want: "string or quotation", got: a}
	}
}

func opGet(e *Engine) error {
	idx, err := e.PopKind("get", KindInt)
	if err != nil {
		return err
	}
	a, err := e.Pop("get")
	if err != nil {
		return err
	}
	i := int(idx.Int)
	switch a.Kind {
	case KindString:
		if i < 0 || i >= len(a.Str) {
			return ErrOutOfRange
		}
		return e.Stack.Push(Str(string(a.Str[i])))
	case KindQuotation:
		if i < 0 || i >= len(a.Items) {
			return ErrOutOfRange
		}
		return e.Stack.Push(a.Items[i])
	default:
		return arityError{symbol: "get", want: "string or quotation", got: a}
	}
}

func opIndex(e *Engine) error {
	needle, err := e.Pop("index")
	if err != nil {
		return err
	}
	a, err := e.Pop("index")
	if err != nil {
		return err
	}
	switch a.Kind {
	case KindString:
		if needle.Kind != KindString {
			return arityError{symbol: "index", want: "string", got: needle}
		}
		return e.Stack.Push(Int32(int32(strings.Index(a.Str, needle.Str))))
	case KindQuotation:
		for i, it := range a.Items {
			if it.Equal(needle) {
				return e.Stack.Push(Int32(int32(i)))
			}
		}
		return e.Stack.Push(Int32(-1))
	default:
		return arityError{symbol: "index", want: "string or quotation", got: a}
	}
}

func opJoin(e *Engine) error {
	sep, err := e.PopKind("join", KindString)
	if err != nil {
		return err
	}
	q, err := popQuotation(e, "join")
	if err != nil {
		return err
	}
	parts := make([]string, len(q.Items))
	for i, it := range q.Items {
		if it.Kind != KindString {
			return arityError{symbol: "join", want: "quotation of strings", got: it}
		}
		parts[i] = it.Str
	}
	return e.Stack.Push(Str(strings.Join(parts, sep.Str)))
}

func opSplit(e *Engine) error {
	sep, err := e.PopKind("split", KindString)
	if err != nil {
		return err
	}
	s, err := e.PopKind("split", KindString)
	if err != nil {
		return err
	}
	var parts []string
	if sep.Str == "" {
		parts = make([]string, len(s.Str))
		for i := 0; i < len(s.Str); i++ {
			parts[i] = string(s.Str[i])
		}
	} else {
		parts = strings.Split(s.Str, sep.Str)
	}
	items := make([]Value, len(parts))
	for i, p := range parts {
		items[i] = Str(p)
	}
	return e.Stack.Push(Value{Kind: KindQuotation, Items: items})
}

func opReplace(e *Engine) error {
	repl, err := e.PopKind("replace", KindString)
	if err != nil {
		return err
	}
	find, err := e.PopKind("replace", KindString)
	if err != nil {
		return err
	}
	s, err := e.PopKind("replace", KindString)
	if err != nil {
		return err
	}
	return e.Stack.Push(Str(strings.Replace(s.Str, find.Str, repl.Str, 1)))
}
