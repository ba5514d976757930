package main

// higherOrderNatives implements the higher-order operations: `map`
// `filter`. Both process items in index order.
var higherOrderNatives = map[string]NativeFunc{
	"map":    opMap,
	"filter": opFilter,
}

func opMap(e *Engine) error {
	action, err := popQuotation(e, "map")
	if err != nil {
		return err
	}
	q, err := popQuotation(e, "map")
	if err != nil {
		return err
	}
	out := make([]Value, len(q.Items))
	for i, item := range q.Items {
		if err := e.Stack.Push(item); err != nil {
			return err
		}
		if err := runQuotation(e, action); err != nil {
			return err
		}
		res, err := e.Pop("map")
		if err != nil {
			return err
		}
		out[i] = res
	}
	return e.Stack.Push(Value{Kind: KindQuotation, Items: out})
}

func opFilter(e *Engine) error {
	pred, err := popQuotation(e, "filter")
	if err != nil {
		return err
	}
	q, err := popQuotation(e, "filter")
	if err != nil {
		return err
	}
	var out []Value
	for _, item := range q.Items {
		if err := e.Stack.Push(item); err != nil {
			return err
		}
		if err := runQuotation(e, pred); err != nil {
			return err
		}
		res, err := e.PopKind("filter", KindInt)
		if err != nil {
			return err
		}
		if res.Truthy() {
			out = append(out, item)
		}
	}
	return e.Stack.Push(Value{Kind: KindQuotation, Items: out})
}
