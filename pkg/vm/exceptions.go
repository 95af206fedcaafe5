package vm

// ExceptionError is a Go error carrying a thrown runtime value.
type ExceptionError interface {
	error
	GetExceptionValue() Value
}

type exceptionError struct {
	exception Value
}

func (e exceptionError) Error() string {
	obj := e.exception.AsPlainObject()
	if obj != nil {
		name, _ := obj.GetOwn("name")
		msg, _ := obj.GetOwn("message")
		if name.IsString() {
			if msg.IsString() {
				return name.AsString() + ": " + msg.AsString()
			}
			return name.AsString()
		}
	}
	return e.exception.Inspect()
}

func (e exceptionError) GetExceptionValue() Value {
	return e.exception
}

// NewTypeError constructs a TypeError exception error for builtin helpers to return
func (r *Realm) NewTypeError(message string) error {
	obj := NewObject(r.ObjectPrototype).AsPlainObject()
	obj.SetOwn("name", NewString("TypeError"))
	obj.SetOwn("message", NewString(message))
	return exceptionError{exception: NewValueFromPlainObject(obj)}
}

// IsTypeError reports whether err carries a thrown TypeError value.
func IsTypeError(err error) bool {
	ee, ok := err.(ExceptionError)
	if !ok {
		return false
	}
	obj := ee.GetExceptionValue().AsPlainObject()
	if obj == nil {
		return false
	}
	name, _ := obj.GetOwn("name")
	return name.IsString() && name.AsString() == "TypeError"
}
