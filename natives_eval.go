package main

import "fmt"

// evaluationNatives implements the evaluation operations: `.` `!`.
var evaluationNatives = map[string]NativeFunc{
	".": opSplice,
	"!": opBang,
}

func opSplice(e *Engine) error {
	q, err := popQuotation(e, ".")
	if err != nil {
		return err
	}
	return runQuotation(e, q)
}

// opBang implements `!`: a string is reinterpreted as hex source; a
// quotation of integers is treated as a compiled bytecode block and run on
// the bytecode VM.
func opBang(e *Engine) error {
	v, err := e.Pop("!")
	if err != nil {
		return err
	}
	switch v.Kind {
	case KindString:
		return InterpretString(e, v.Str)
	case KindQuotation:
		buf := make([]byte, len(v.Items))
		for i, item := range v.Items {
			if item.Kind != KindInt || item.Int < 0 || item.Int > 255 {
				return arityError{symbol: "!", want: "quotation of bytes", got: item}
			}
			buf[i] = byte(item.Int)
		}
		return RunBytecode(e, buf)
	default:
		return arityError{symbol: "!", want: fmt.Sprintf("%s or %s", KindString, KindQuotation), got: v}
	}
}
