package main

import (
	"fmt"

	"github.com/h3rald/hex-go/internal/strescape"
)

// Parser consumes a Tokenizer's stream, producing either direct stack
// pushes/dispatches at the top level or a Quotation value when invoked
// recursively on a `(`. It only needs to know which symbols are native to
// classify a Symbol token; RunTopLevel additionally needs a live Engine to
// dispatch into, but ParseQuotation/parseOne do not, so the bytecode
// compiler can reuse them directly against a bare isNative predicate.
type Parser struct {
	tok      *Tokenizer
	eng      *Engine
	isNative func(string) bool
}

// NewParser creates a Parser reading tokens from tok and dispatching/pushing
// into eng.
func NewParser(tok *Tokenizer, eng *Engine) *Parser {
	return &Parser{tok: tok, eng: eng, isNative: eng.IsNative}
}

// NewBareParser creates a Parser usable only for parseOne/ParseQuotation
// (no RunTopLevel), classifying symbols with isNative instead of asking a
// live Engine. Used by the bytecode compiler, which builds a Value tree
// without running it.
func NewBareParser(tok *Tokenizer, isNative func(string) bool) *Parser {
	return &Parser{tok: tok, isNative: isNative}
}

// RunTopLevel consumes tokens until input is exhausted, directly invoking
// stack pushes and native dispatch for each top-level item.
func (p *Parser) RunTopLevel() error {
	for {
		t, err := p.tok.Next()
		if err != nil {
			return err
		}
		if t.Kind == TokEnd {
			return nil
		}
		v, done, err := p.parseOne(t)
		if err != nil {
			return err
		}
		if done {
			continue // comment
		}
		if err := p.eng.Dispatch(v); err != nil {
			return err
		}
	}
}

// parseOne turns a single already-read token into a Value, recursing into
// ParseQuotation on a QuotationStart. The bool result is true for
// comment tokens, which produce no value.
func (p *Parser) parseOne(t Token) (Value, bool, error) {
	switch t.Kind {
	case TokComment:
		return Value{}, true, nil

	case TokInteger:
		n, err := ParseHexLiteral(t.Lexeme)
		if err != nil {
			return Value{}, false, parseError{message: "malformed integer literal", tok: t}
		}
		return Int32(n), false, nil

	case TokString:
		s, err := strescape.Decode(t.Lexeme)
		if err != nil {
			return Value{}, false, parseError{message: err.Error(), tok: t}
		}
		return Str(s), false, nil

	case TokSymbol:
		if p.isNative(t.Lexeme) {
			return NativeSymbol(t.Lexeme, t), false, nil
		}
		return UserSymbol(t.Lexeme, t), false, nil

	case TokQuotationStart:
		q, err := p.ParseQuotation(t)
		return q, false, err

	case TokQuotationEnd:
		return Value{}, false, parseError{message: "unbalanced `)`", tok: t}

	case TokInvalid:
		return Value{}, false, parseError{message: fmt.Sprintf("invalid token %q", t.Lexeme), tok: t}

	default:
		return Value{}, false, parseError{message: "unexpected end of input", tok: t}
	}
}

// ParseQuotation is invoked having already consumed the opening `(`.  It
// recursively collects values until the matching `)`. On any error the
// partially built quotation is released in full (deep free of every
// element collected so far).
func (p *Parser) ParseQuotation(open Token) (Value, error) {
	var items []Value
	release := func() {
		for i := range items {
			items[i].Free()
		}
	}
	for {
		t, err := p.tok.Next()
		if err != nil {
			release()
			return Value{}, err
		}
		switch t.Kind {
		case TokEnd:
			release()
			return Value{}, parseError{message: "unterminated quotation", tok: open}

		case TokQuotationEnd:
			v := Value{Kind: KindQuotation, Items: items}
			return v, nil

		default:
			item, skip, err := p.parseOne(t)
			if err != nil {
				release()
				return Value{}, err
			}
			if skip {
				continue
			}
			items = append(items, item)
		}
	}
}
