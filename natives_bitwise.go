package main

// bitwiseNatives implements the bitwise operations: `&` `|` `^` `<<` `>>`
// binary, `~` unary.
var bitwiseNatives = map[string]NativeFunc{
	"&":  binaryIntOp("&", func(a, b int32) (int32, error) { return a & b, nil }),
	"|":  binaryIntOp("|", func(a, b int32) (int32, error) { return a | b, nil }),
	"^":  binaryIntOp("^", func(a, b int32) (int32, error) { return a ^ b, nil }),
	"<<": binaryIntOp("<<", func(a, b int32) (int32, error) { return int32(uint32(a) << (uint32(b) & 31)), nil }),
	">>": binaryIntOp(">>", func(a, b int32) (int32, error) { return a >> (uint32(b) & 31), nil }),
	"~":  unaryIntOp("~", func(a int32) (int32, error) { return ^a, nil }),
}

// unaryIntOp builds a NativeFunc for a single-integer-operand operation.
func unaryIntOp(symbol string, fn func(a int32) (int32, error)) NativeFunc {
	return func(e *Engine) error {
		av, err := e.PopKind(symbol, KindInt)
		if err != nil {
			return err
		}
		res, err := fn(av.Int)
		if err != nil {
			return err
		}
		return e.Stack.Push(Int32(res))
	}
}
