package main

// controlNatives implements the control operations: `if` `when` `while`
// `try` `error` `'`.
var controlNatives = map[string]NativeFunc{
	"if":    opIf,
	"when":  opWhen,
	"while": opWhile,
	"try":   opTry,
	"error": opError,
	"'":     opQuote,
}

// runQuotation splices a quotation's elements onto the stack, i.e. executes
// it, exactly as the `.` native does.
func runQuotation(e *Engine, q Value) error {
	for _, item := range q.Items {
		if err := e.Dispatch(item); err != nil {
			return err
		}
	}
	return nil
}

func popQuotation(e *Engine, symbol string) (Value, error) {
	return e.PopKind(symbol, KindQuotation)
}

func opIf(e *Engine) error {
	elseQ, err := popQuotation(e, "if")
	if err != nil {
		return err
	}
	thenQ, err := popQuotation(e, "if")
	if err != nil {
		return err
	}
	condQ, err := popQuotation(e, "if")
	if err != nil {
		return err
	}
	if err := runQuotation(e, condQ); err != nil {
		return err
	}
	result, err := e.PopKind("if", KindInt)
	if err != nil {
		return err
	}
	if result.Truthy() {
		return runQuotation(e, thenQ)
	}
	return runQuotation(e, elseQ)
}

func opWhen(e *Engine) error {
	thenQ, err := popQuotation(e, "when")
	if err != nil {
		return err
	}
	condQ, err := popQuotation(e, "when")
	if err != nil {
		return err
	}
	if err := runQuotation(e, condQ); err != nil {
		return err
	}
	result, err := e.PopKind("when", KindInt)
	if err != nil {
		return err
	}
	if result.Truthy() {
		return runQuotation(e, thenQ)
	}
	return nil
}

func opWhile(e *Engine) error {
	bodyQ, err := popQuotation(e, "while")
	if err != nil {
		return err
	}
	condQ, err := popQuotation(e, "while")
	if err != nil {
		return err
	}
	for {
		if err := runQuotation(e, condQ); err != nil {
			return err
		}
		result, err := e.PopKind("while", KindInt)
		if err != nil {
			return err
		}
		if !result.Truthy() {
			return nil
		}
		if err := runQuotation(e, bodyQ); err != nil {
			return err
		}
	}
}

func opTry(e *Engine) error {
	handlerQ, err := popQuotation(e, "try")
	if err != nil {
		return err
	}
	bodyQ, err := popQuotation(e, "try")
	if err != nil {
		return err
	}

	prevEnabled := e.Settings.ErrorsEnabled
	e.Settings.ErrorsEnabled = false
	e.ClearError()
	bodyErr := runQuotation(e, bodyQ)
	e.Settings.ErrorsEnabled = prevEnabled
	_ = bodyErr // a native failure already populated the error slot

	if e.HasError() {
		return runQuotation(e, handlerQ)
	}
	return nil
}

func opError(e *Engine) error {
	msg := e.ClearError()
	return e.Stack.Push(Str(msg))
}

func opQuote(e *Engine) error {
	v, err := e.Pop("'")
	if err != nil {
		return err
	}
	return e.Stack.Push(Quotation(v))
}
