package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/h3rald/hex-go/internal/strescape"
)

// fileNatives implements the file operations: `read` `write` `append`.
var fileNatives = map[string]NativeFunc{
	"read":   opRead,
	"write":  opWrite,
	"append": opAppend,
}

func opRead(e *Engine) error {
	name, err := e.PopKind("read", KindString)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(name.Str)
	if err != nil {
		return errors.Wrapf(err, "read %q", name.Str)
	}

	binary := strescape.LooksBinary(data)
	if e.forceText {
		binary = false
	} else if e.forceBinary {
		binary = true
	}

	if binary {
		items := make([]Value, len(data))
		for i, b := range data {
			items[i] = Int32(int32(b))
		}
		return e.Stack.Push(Value{Kind: KindQuotation, Items: items})
	}
	return e.Stack.Push(Str(strescape.Encode(string(data))))
}

func opWrite(e *Engine) error {
	return writeFile("write", e, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

func opAppend(e *Engine) error {
	return writeFile("append", e, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func writeFile(symbol string, e *Engine, flag int) error {
	name, err := e.PopKind(symbol, KindString)
	if err != nil {
		return err
	}
	data, err := e.Pop(symbol)
	if err != nil {
		return err
	}

	var raw []byte
	switch data.Kind {
	case KindString:
		raw = []byte(data.Str)
	case KindQuotation:
		raw = make([]byte, len(data.Items))
		for i, item := range data.Items {
			if item.Kind != KindInt || item.Int < 0 || item.Int > 255 {
				return arityError{symbol: symbol, want: "quotation of bytes", got: item}
			}
			raw[i] = byte(item.Int)
		}
	default:
		return arityError{symbol: symbol, want: "string or quotation of bytes", got: data}
	}

	f, err := os.OpenFile(name.Str, flag, 0644)
	if err != nil {
		return errors.Wrapf(err, "%s %q", symbol, name.Str)
	}
	defer f.Close()
	if _, err := f.Write(raw); err != nil {
		return errors.Wrapf(err, "%s %q", symbol, name.Str)
	}
	return nil
}
