package vm

import (
	"strings"
	"testing"
)

func TestCallNonCallable(t *testing.T) {
	r := NewRealm()
	_, err := r.Call(IntegerValue(1), Undefined, nil)
	if !IsTypeError(err) {
		t.Errorf("calling a number: got %v, want TypeError", err)
	}
}

func TestNewTypeErrorShape(t *testing.T) {
	r := NewRealm()
	err := r.NewTypeError("boom")
	ee, ok := err.(ExceptionError)
	if !ok {
		t.Fatalf("NewTypeError did not produce an ExceptionError")
	}
	if !strings.HasPrefix(err.Error(), "TypeError: boom") {
		t.Errorf("Error() = %q", err.Error())
	}
	obj := ee.GetExceptionValue().AsPlainObject()
	if obj == nil {
		t.Fatalf("exception value is not an object")
	}
	if name, _ := obj.GetOwn("name"); name.AsString() != "TypeError" {
		t.Errorf("name = %s", name.Inspect())
	}
}

func TestThrowTypeErrorIntrinsic(t *testing.T) {
	r := NewRealm()
	_, err := r.Call(r.ThrowTypeError, Undefined, nil)
	if !IsTypeError(err) {
		t.Errorf("%%ThrowTypeError%% returned %v, want TypeError", err)
	}
	// Same behavior regardless of arguments
	_, err = r.Call(r.ThrowTypeError, Undefined, []Value{IntegerValue(1), NewString("x")})
	if !IsTypeError(err) {
		t.Errorf("%%ThrowTypeError%% with args returned %v, want TypeError", err)
	}
}

func TestGetPropertyPrototypeChain(t *testing.T) {
	r := NewRealm()
	parent := NewObject(r.ObjectPrototype)
	parent.AsPlainObject().SetOwn("inherited", IntegerValue(1))
	child := NewObject(parent)

	v, err := r.GetProperty(child, NewStringKey("inherited"))
	if err != nil || v.AsInteger() != 1 {
		t.Errorf("inherited read = %s (err=%v)", v.Inspect(), err)
	}
	v, err = r.GetProperty(child, NewStringKey("missing"))
	if err != nil || !v.IsUndefined() {
		t.Errorf("missing read = %s (err=%v)", v.Inspect(), err)
	}
}

func TestSetPropertyShadowsInherited(t *testing.T) {
	r := NewRealm()
	parent := NewObject(r.ObjectPrototype)
	parent.AsPlainObject().SetOwn("p", IntegerValue(1))
	child := NewObject(parent)

	if err := r.SetProperty(child, NewStringKey("p"), IntegerValue(2)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, _ := child.AsPlainObject().GetOwn("p"); v.AsInteger() != 2 {
		t.Errorf("child own p = %s", v.Inspect())
	}
	if v, _ := parent.AsPlainObject().GetOwn("p"); v.AsInteger() != 1 {
		t.Errorf("parent p disturbed: %s", v.Inspect())
	}
}

func TestSetPropertyGetterOnly(t *testing.T) {
	r := NewRealm()
	obj := NewObject(r.ObjectPrototype)
	g := NewNativeFunction(0, false, "get x", func(this Value, args []Value) (Value, error) {
		return IntegerValue(1), nil
	})
	e, c := false, true
	obj.AsPlainObject().DefineAccessorProperty("x", g, true, Undefined, false, &e, &c)

	err := r.SetProperty(obj, NewStringKey("x"), IntegerValue(2))
	if !IsTypeError(err) {
		t.Errorf("setting a getter-only property: got %v, want TypeError", err)
	}
}

func TestAccessorReceiver(t *testing.T) {
	r := NewRealm()
	obj := NewObject(r.ObjectPrototype)
	var seenThis Value
	g := NewNativeFunction(0, false, "get x", func(this Value, args []Value) (Value, error) {
		seenThis = this
		return Undefined, nil
	})
	e, c := false, true
	obj.AsPlainObject().DefineAccessorProperty("x", g, true, Undefined, false, &e, &c)

	if _, err := r.GetProperty(obj, NewStringKey("x")); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !seenThis.Is(obj) {
		t.Errorf("getter receiver = %s, want the object itself", seenThis.Inspect())
	}
}
