package main

// arithmeticNatives implements the two-integer arithmetic operations:
// `+` `-` `*` `/` `%`, with 32-bit signed wrap on overflow (Go's int32
// arithmetic already wraps) and truncation toward zero for `/` and `%`
// (Go's operators already truncate toward zero for signed integers — see
// SPEC_FULL.md's Open Question decisions).
var arithmeticNatives = map[string]NativeFunc{
	"+": binaryIntOp("+", func(a, b int32) (int32, error) { return a + b, nil }),
	"-": binaryIntOp("-", func(a, b int32) (int32, error) { return a - b, nil }),
	"*": binaryIntOp("*", func(a, b int32) (int32, error) { return a * b, nil }),
	"/": binaryIntOp("/", func(a, b int32) (int32, error) {
		if b == 0 {
			return 0, ErrDivByZero
		}
		return a / b, nil
	}),
	"%": binaryIntOp("%", func(a, b int32) (int32, error) {
		if b == 0 {
			return 0, ErrDivByZero
		}
		return a % b, nil
	}),
}

// binaryIntOp builds a NativeFunc for a two-integer-operand, one-integer-
// result operation: pops b (top) then a, pushes fn(a, b).
func binaryIntOp(symbol string, fn func(a, b int32) (int32, error)) NativeFunc {
	return func(e *Engine) error {
		bv, err := e.PopKind(symbol, KindInt)
		if err != nil {
			return err
		}
		av, err := e.PopKind(symbol, KindInt)
		if err != nil {
			return err
		}
		res, err := fn(av.Int, bv.Int)
		if err != nil {
			return err
		}
		return e.Stack.Push(Int32(res))
	}
}
