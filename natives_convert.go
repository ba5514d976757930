package main

import (
	"fmt"
	"strconv"
)

// conversionNatives implements the conversion operations: `int` `str`
// `dec` `hex` `ord` `chr`.
var conversionNatives = map[string]NativeFunc{
	"int": opIntFromHexString,
	"str": opStrFromInt,
	"dec": opDecFromInt,
	"hex": opHexFromDec,
	"ord": opOrd,
	"chr": opChr,
}

func opIntFromHexString(e *Engine) error {
	v, err := e.PopKind("int", KindString)
	if err != nil {
		return err
	}
	if !isHexLiteral(v.Str) {
		return fmt.Errorf("int: %q is not a hexadecimal literal", v.Str)
	}
	n, err := ParseHexLiteral(v.Str)
	if err != nil {
		return fmt.Errorf("int: %w", err)
	}
	return e.Stack.Push(Int32(n))
}

func opStrFromInt(e *Engine) error {
	v, err := e.PopKind("str", KindInt)
	if err != nil {
		return err
	}
	return e.Stack.Push(Str(formatHexInt(v.Int)))
}

func opDecFromInt(e *Engine) error {
	v, err := e.PopKind("dec", KindInt)
	if err != nil {
		return err
	}
	return e.Stack.Push(Str(strconv.FormatInt(int64(v.Int), 10)))
}

func opHexFromDec(e *Engine) error {
	v, err := e.PopKind("hex", KindString)
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(v.Str, 10, 64)
	if err != nil {
		return fmt.Errorf("hex: %q is not a decimal integer", v.Str)
	}
	return e.Stack.Push(Int32(int32(uint32(n))))
}

func opOrd(e *Engine) error {
	v, err := e.PopKind("ord", KindString)
	if err != nil {
		return err
	}
	if len(v.Str) != 1 {
		return e.Stack.Push(Int32(-1))
	}
	return e.Stack.Push(Int32(int32(v.Str[0])))
}

func opChr(e *Engine) error {
	v, err := e.PopKind("chr", KindInt)
	if err != nil {
		return err
	}
	if v.Int < 0 || v.Int > 127 {
		return e.Stack.Push(Str(""))
	}
	return e.Stack.Push(Str(string([]byte{byte(v.Int)})))
}
