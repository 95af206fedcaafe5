package vm

import "unsafe"

// NativeFunc is the signature of native Go functions callable from the
// runtime. A thrown value surfaces as an ExceptionError.
type NativeFunc func(this Value, args []Value) (Value, error)

// NativeFunctionObject represents a native Go function callable from the runtime.
// Captured state (an environment reference, a binding index) lives in the
// Go closure held by Fn.
type NativeFunctionObject struct {
	Object
	Arity    int
	Variadic bool
	Name     string
	Fn       NativeFunc
}

func NewNativeFunction(arity int, variadic bool, name string, fn NativeFunc) Value {
	return Value{typ: TypeNativeFunction, obj: unsafe.Pointer(&NativeFunctionObject{
		Arity:    arity,
		Variadic: variadic,
		Name:     name,
		Fn:       fn,
	})}
}
