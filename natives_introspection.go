package main

// introspectionNatives implements the introspection operation: `type`.
var introspectionNatives = map[string]NativeFunc{
	"type": opType,
}

func opType(e *Engine) error {
	v, err := e.Pop("type")
	if err != nil {
		return err
	}
	return e.Stack.Push(Str(v.Kind.String()))
}
