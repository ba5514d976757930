package main

// comparisonNatives implements the comparison operations: `==` `!=` `>`
// `<` `>=` `<=`. Equality is structural; ordering is integer-wise on
// integers, lexicographic on strings, and lexicographic-then-length on
// quotations. Mixing types yields `==` false / `!=` true.
var comparisonNatives = map[string]NativeFunc{
	"==": compareOp("==", func(a, b Value) bool { return a.Equal(b) }),
	"!=": compareOp("!=", func(a, b Value) bool { return !a.Equal(b) }),
	"<":  compareOp("<", func(a, b Value) bool { return a.Less(b) }),
	">":  compareOp(">", func(a, b Value) bool { return b.Less(a) }),
	"<=": compareOp("<=", func(a, b Value) bool { return a.Equal(b) || a.Less(b) }),
	">=": compareOp(">=", func(a, b Value) bool { return a.Equal(b) || b.Less(a) }),
}

func compareOp(symbol string, fn func(a, b Value) bool) NativeFunc {
	return func(e *Engine) error {
		b, err := e.Pop(symbol)
		if err != nil {
			return err
		}
		a, err := e.Pop(symbol)
		if err != nil {
			return err
		}
		return e.Stack.Push(Int32(boolInt(fn(a, b))))
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
