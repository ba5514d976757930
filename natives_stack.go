package main

// stackNatives implements the stack-shuffling operations: `dup` `pop` `swap` `stack`
// `clear`.
var stackNatives = map[string]NativeFunc{
	"dup":   opDup,
	"pop":   opPop,
	"swap":  opSwap,
	"stack": opStackSnapshot,
	"clear": opClear,
}

func opDup(e *Engine) error {
	v, err := e.Pop("dup")
	if err != nil {
		return err
	}
	if err := e.Stack.Push(v); err != nil {
		return err
	}
	return e.Stack.Push(v)
}

func opPop(e *Engine) error {
	_, err := e.Pop("pop")
	return err
}

func opSwap(e *Engine) error {
	b, err := e.Pop("swap")
	if err != nil {
		return err
	}
	a, err := e.Pop("swap")
	if err != nil {
		return err
	}
	if err := e.Stack.Push(b); err != nil {
		return err
	}
	return e.Stack.Push(a)
}

func opStackSnapshot(e *Engine) error {
	return e.Stack.Push(Value{Kind: KindQuotation, Items: e.Stack.Items()})
}

func opClear(e *Engine) error {
	e.Stack.Clear()
	return nil
}
