package main

// booleanNatives implements the boolean operations: `and` `or` `xor`
// (two-integer), `not` (unary).
var booleanNatives = map[string]NativeFunc{
	"and": binaryIntOp("and", func(a, b int32) (int32, error) { return boolInt(a > 0 && b > 0), nil }),
	"or":  binaryIntOp("or", func(a, b int32) (int32, error) { return boolInt(a > 0 || b > 0), nil }),
	"xor": binaryIntOp("xor", func(a, b int32) (int32, error) { return boolInt((a > 0) != (b > 0)), nil }),
	"not": unaryIntOp("not", func(a int32) (int32, error) { return boolInt(a <= 0), nil }),
}
