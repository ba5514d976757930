// Package srcio provides a position-tracking rune cursor over one or more
// input streams, for use by a tokenizer that must report {filename, line,
// column} in every token and diagnostic.
package srcio

import (
	"bufio"
	"fmt"
	"io"
)

// runeReader is an io.Reader that also supports reading runes.
type runeReader interface {
	io.Reader
	io.RuneReader
}

func newRuneReader(r io.Reader) runeReader {
	if impl, ok := r.(runeReader); ok {
		return impl
	}
	return bufio.NewReader(r)
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
