package main

import (
	"bytes"
	"encoding/binary"
)

// RunBytecode executes a module produced by Compile against e, decoding
// and dispatching one top-level instruction at a time. Decoding a value
// and dispatching it reuse exactly the rules the tree-walking interpreter
// uses (Engine.Dispatch), so a compiled module and its source behave
// identically: only how each step is produced differs.
func RunBytecode(e *Engine, buf []byte) error {
	if len(buf) < len(header) || !bytes.Equal(buf[:4], header[:4]) {
		return vmError{message: "not a compiled module"}
	}
	pos := len(header)

	names, pos, err := decodeSymbolTable(buf, pos)
	if err != nil {
		return err
	}

	for pos < len(buf) {
		var v Value
		v, pos, err = decodeOne(buf, pos, names)
		if err != nil {
			return err
		}
		if err := e.Dispatch(v); err != nil {
			return err
		}
	}
	return nil
}

// decodeOne decodes a single value (literal, symbol, or quotation) from
// data starting at pos, returning the position just past it. Quotation
// items are decoded recursively into a Value tree, never executed: a
// quotation is data until spliced or run.
func decodeOne(data []byte, pos int, names []string) (Value, int, error) {
	if pos >= len(data) {
		return Value{}, pos, vmError{message: "truncated instruction stream", offset: pos}
	}
	op := data[pos]
	pos++

	switch op {
	case opLookup:
		idx, next, err := decodeLen(data, pos)
		if err != nil {
			return Value{}, pos, err
		}
		if idx < 0 || idx >= len(names) {
			return Value{}, pos, vmError{message: "symbol-table index out of range", offset: pos}
		}
		name := names[idx]
		return UserSymbol(name, Token{Kind: TokSymbol, Lexeme: name}), next, nil

	case opPushIn:
		if pos+4 > len(data) {
			return Value{}, pos, vmError{message: "truncated integer operand", offset: pos}
		}
		n := int32(binary.LittleEndian.Uint32(data[pos : pos+4]))
		return Int32(n), pos + 4, nil

	case opPushSt:
		n, next, err := decodeLen(data, pos)
		if err != nil {
			return Value{}, pos, err
		}
		if next+n > len(data) {
			return Value{}, pos, vmError{message: "truncated string operand", offset: pos}
		}
		return Str(string(data[next : next+n])), next + n, nil

	case opPushQt:
		n, next, err := decodeLen(data, pos)
		if err != nil {
			return Value{}, pos, err
		}
		if next+n > len(data) {
			return Value{}, pos, vmError{message: "truncated quotation operand", offset: pos}
		}
		sub := data[next : next+n]
		items, err := decodeAll(sub, names)
		if err != nil {
			return Value{}, pos, err
		}
		return Value{Kind: KindQuotation, Items: items}, next + n, nil

	default:
		name, ok := opcodeToNative[op]
		if !ok {
			return Value{}, pos, vmError{message: "unknown opcode", offset: pos - 1}
		}
		return NativeSymbol(name, Token{Kind: TokSymbol, Lexeme: name}), pos, nil
	}
}

// decodeAll decodes every value packed into data, in order, used to
// rebuild a quotation's element list from its nested instruction block.
func decodeAll(data []byte, names []string) ([]Value, error) {
	var items []Value
	pos := 0
	for pos < len(data) {
		v, next, err := decodeOne(data, pos, names)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		pos = next
	}
	return items, nil
}
