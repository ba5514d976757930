package main

// bindingNatives implements the name-binding operations: `:` `::` `#`.
var bindingNatives = map[string]NativeFunc{
	":":  opBind(false),
	"::": opBind(true),
	"#":  opForget,
}

func opBind(immediate bool) NativeFunc {
	name := ":"
	if immediate {
		name = "::"
	}
	return func(e *Engine) error {
		nameVal, err := e.PopKind(name, KindString)
		if err != nil {
			return err
		}
		val, err := e.Pop(name)
		if err != nil {
			return err
		}
		if !ValidUserSymbol(nameVal.Str) {
			return invalidIdentifierError{nameVal.Str}
		}
		if e.Registry.ContainsNative(nameVal.Str) {
			return errNativeImmutable(nameVal.Str)
		}
		val.Immediate = immediate && val.Kind == KindQuotation
		return e.Registry.Set(nameVal.Str, val)
	}
}

func opForget(e *Engine) error {
	nameVal, err := e.PopKind("#", KindString)
	if err != nil {
		return err
	}
	return e.Registry.Delete(nameVal.Str)
}
