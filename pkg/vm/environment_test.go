package vm

import (
	"testing"
)

func TestEnvironmentSlots(t *testing.T) {
	env := NewDeclarativeEnvironment(nil, 3)
	if env.SlotCount() != 3 {
		t.Fatalf("SlotCount = %d", env.SlotCount())
	}
	if env.BindingBase() != DefaultBindingBase {
		t.Errorf("BindingBase = %d, want %d", env.BindingBase(), DefaultBindingBase)
	}
	for i := 0; i < 3; i++ {
		if !env.GetBinding(i).IsUndefined() {
			t.Errorf("slot %d not initialized to undefined", i)
		}
	}
	env.SetBinding(1, IntegerValue(7))
	if got := env.GetBinding(1); got.AsInteger() != 7 {
		t.Errorf("slot 1 = %s", got.Inspect())
	}
	if !env.GetBinding(0).IsUndefined() || !env.GetBinding(2).IsUndefined() {
		t.Errorf("neighboring slots disturbed")
	}
}

func TestEnvironmentOuter(t *testing.T) {
	outer := NewDeclarativeEnvironment(nil, 1)
	inner := NewDeclarativeEnvironment(outer, 1)
	if inner.Outer() != outer {
		t.Errorf("Outer() did not return the enclosing environment")
	}
	if outer.Outer() != nil {
		t.Errorf("top-level environment should have nil outer")
	}
}

func TestEnvironmentCustomBase(t *testing.T) {
	env := NewDeclarativeEnvironmentWithBase(nil, 4, 0)
	if env.BindingBase() != 0 {
		t.Errorf("BindingBase = %d, want 0", env.BindingBase())
	}
}

func TestEnvironmentOutOfRangePanics(t *testing.T) {
	env := NewDeclarativeEnvironment(nil, 2)
	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	assertPanics("get negative", func() { env.GetBinding(-1) })
	assertPanics("get past end", func() { env.GetBinding(2) })
	assertPanics("set past end", func() { env.SetBinding(5, Undefined) })
	assertPanics("bad base", func() { NewDeclarativeEnvironmentWithBase(nil, 2, 3) })
}

func TestEnvironmentSharing(t *testing.T) {
	// An alias getter/setter pair and direct slot access observe the
	// same storage.
	env := NewDeclarativeEnvironment(nil, 2)
	getter := makeArgGetter(env, 1)
	setter := makeArgSetter(env, 1)

	env.SetBinding(1, IntegerValue(1))
	got, err := getter.AsNativeFunction().Fn(Undefined, nil)
	if err != nil || got.AsInteger() != 1 {
		t.Errorf("getter read %s (err=%v)", got.Inspect(), err)
	}

	if _, err := setter.AsNativeFunction().Fn(Undefined, []Value{IntegerValue(2)}); err != nil {
		t.Fatalf("setter failed: %v", err)
	}
	if got := env.GetBinding(1); got.AsInteger() != 2 {
		t.Errorf("slot = %s after setter write", got.Inspect())
	}

	// A setter invoked with no argument writes undefined.
	if _, err := setter.AsNativeFunction().Fn(Undefined, nil); err != nil {
		t.Fatalf("setter failed: %v", err)
	}
	if !env.GetBinding(1).IsUndefined() {
		t.Errorf("setter without argument should write undefined")
	}
}
