package main

import (
	"bytes"
	"encoding/binary"
)

// Bytecode opcodes. LOOKUP/PUSHIN/PUSHST/PUSHQT occupy the low range;
// every native symbol gets its own dedicated opcode byte in
// [opcodeNativeBase, opcodeNativeBase+len(nativeOpcodeOrder)-1], so running
// a native from bytecode never needs a symbol-table lookup.
const (
	opLookup byte = 0x00
	opPushIn byte = 0x01
	opPushSt byte = 0x02
	opPushQt byte = 0x03

	opcodeNativeBase = 0x10
	opcodeNativeMax  = 0x4F
)

// header is the fixed 8-byte prefix of every compiled module: a 4-byte
// magic ('\x01' "HEx"), a format version (major, minor), and 2 reserved
// bytes held at zero for future use.
var header = [8]byte{0x01, 'H', 'E', 'x', 0x01, 0x02, 0x00, 0x00}

// nativeOpcodeOrder fixes the native-name-to-opcode assignment: position i
// in this slice is opcode opcodeNativeBase+i. The order mirrors the
// category grouping in natives.go so the mapping reads the same way a
// human would scan the native tables.
var nativeOpcodeOrder = []string{
	":", "::", "#",
	"type",
	"if", "when", "while", "try", "error", "'",
	"dup", "pop", "swap", "stack", "clear",
	".", "!",
	"+", "-", "*", "/", "%",
	"&", "|", "^", "<<", ">>", "~",
	"==", "!=", ">", "<", ">=", "<=",
	"and", "or", "xor", "not",
	"int", "str", "dec", "hex", "ord", "chr",
	"cat", "len", "get", "index", "join", "split", "replace",
	"map", "filter",
	"puts", "warn", "print", "gets",
	"read", "write", "append",
	"args", "exit", "exec", "run",
}

var (
	nativeToOpcode = func() map[string]byte {
		m := make(map[string]byte, len(nativeOpcodeOrder))
		for i, name := range nativeOpcodeOrder {
			m[name] = byte(opcodeNativeBase + i)
		}
		return m
	}()
	opcodeToNative = func() map[byte]string {
		m := make(map[byte]string, len(nativeOpcodeOrder))
		for i, name := range nativeOpcodeOrder {
			m[byte(opcodeNativeBase+i)] = name
		}
		return m
	}()
)

// encodeLen writes n as the canonical variable-length prefix: a single
// byte when n < 0x80; otherwise 0x80 followed by a 2-byte big-endian
// length when n fits in 16 bits; otherwise 0x81 followed by a 4-byte
// big-endian length. The shortest applicable form is always used.
func encodeLen(n int) []byte {
	switch {
	case n < 0x80:
		return []byte{byte(n)}
	case n <= 0xFFFF:
		b := make([]byte, 3)
		b[0] = 0x80
		binary.BigEndian.PutUint16(b[1:], uint16(n))
		return b
	default:
		b := make([]byte, 5)
		b[0] = 0x81
		binary.BigEndian.PutUint32(b[1:], uint32(n))
		return b
	}
}

// decodeLen reads a length prefix written by encodeLen starting at
// data[pos], returning the decoded length and the position just past it.
func decodeLen(data []byte, pos int) (int, int, error) {
	if pos >= len(data) {
		return 0, pos, vmError{message: "truncated length prefix", offset: pos}
	}
	switch b := data[pos]; {
	case b < 0x80:
		return int(b), pos + 1, nil
	case b == 0x80:
		if pos+3 > len(data) {
			return 0, pos, vmError{message: "truncated 2-byte length", offset: pos}
		}
		return int(binary.BigEndian.Uint16(data[pos+1 : pos+3])), pos + 3, nil
	case b == 0x81:
		if pos+5 > len(data) {
			return 0, pos, vmError{message: "truncated 4-byte length", offset: pos}
		}
		return int(binary.BigEndian.Uint32(data[pos+1 : pos+5])), pos + 5, nil
	default:
		return 0, pos, vmError{message: "malformed length prefix", offset: pos}
	}
}

// symbolTable assigns stable indices to user-symbol names in first-seen
// order, for the LOOKUP opcode's operand.
type symbolTable struct {
	names []string
	index map[string]int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{index: make(map[string]int)}
}

func (st *symbolTable) indexOf(name string) int {
	if i, ok := st.index[name]; ok {
		return i
	}
	i := len(st.names)
	st.names = append(st.names, name)
	st.index[name] = i
	return i
}

func (st *symbolTable) encode() []byte {
	var buf bytes.Buffer
	buf.Write(encodeLen(len(st.names)))
	for _, name := range st.names {
		buf.WriteByte(byte(len(name)))
		buf.WriteString(name)
	}
	return buf.Bytes()
}

func decodeSymbolTable(data []byte, pos int) ([]string, int, error) {
	count, pos, err := decodeLen(data, pos)
	if err != nil {
		return nil, pos, err
	}
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if pos >= len(data) {
			return nil, pos, vmError{message: "truncated symbol table", offset: pos}
		}
		n := int(data[pos])
		pos++
		if pos+n > len(data) {
			return nil, pos, vmError{message: "truncated symbol table entry", offset: pos}
		}
		names = append(names, string(data[pos:pos+n]))
		pos += n
	}
	return names, pos, nil
}

// isNativeName reports whether name has a dedicated bytecode opcode.
func isNativeName(name string) bool {
	_, ok := nativeToOpcode[name]
	return ok
}

// Compile translates hex source text into a compiled module: header,
// symbol table, and an instruction stream encoding each top-level item in
// source order, the same items the tree-walking interpreter would dispatch
// one at a time.
func Compile(src string) ([]byte, error) {
	cur := newStringCursor(src)
	tok := NewTokenizer(cur, isNativeName)
	p := NewBareParser(tok, isNativeName)

	st := newSymbolTable()
	var instr bytes.Buffer

	for {
		t, err := tok.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == TokEnd {
			break
		}
		v, skip, err := p.parseOne(t)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		if err := encodeValue(v, st, &instr); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	out.Write(header[:])
	out.Write(st.encode())
	out.Write(instr.Bytes())
	return out.Bytes(), nil
}

// encodeValue appends v's instruction encoding to buf.
func encodeValue(v Value, st *symbolTable, buf *bytes.Buffer) error {
	switch v.Kind {
	case KindInt:
		buf.WriteByte(opPushIn)
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(v.Int))
		buf.Write(tmp[:])
		return nil

	case KindString:
		buf.WriteByte(opPushSt)
		buf.Write(encodeLen(len(v.Str)))
		buf.WriteString(v.Str)
		return nil

	case KindQuotation:
		var inner bytes.Buffer
		for _, item := range v.Items {
			if err := encodeValue(item, st, &inner); err != nil {
				return err
			}
		}
		buf.WriteByte(opPushQt)
		buf.Write(encodeLen(inner.Len()))
		buf.Write(inner.Bytes())
		return nil

	case KindNativeSymbol:
		op, ok := nativeToOpcode[v.Name]
		if !ok {
			return errUnknownSymbol(v.Name)
		}
		buf.WriteByte(op)
		return nil

	case KindUserSymbol:
		buf.WriteByte(opLookup)
		buf.Write(encodeLen(st.indexOf(v.Name)))
		return nil

	default:
		return vmError{message: "cannot compile invalid value"}
	}
}
