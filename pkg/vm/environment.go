package vm

import "fmt"

// DeclarativeEnvironment stores the bindings of one lexical scope in an
// indexed slot array. Identifier resolution happens at compile time, so
// runtime access is by slot index only; the function body and any alias
// accessors created for it share the same underlying storage.
//
// In the default layout slot 0 holds the function's own name binding and
// parameter bindings start at slot 1. BindingBase exposes that convention
// so callers never hard-code it.
type DeclarativeEnvironment struct {
	bindings []Value
	outer    *DeclarativeEnvironment
	base     int
}

// DefaultBindingBase reserves slot 0 for the function's own name.
const DefaultBindingBase = 1

// NewDeclarativeEnvironment creates an environment with slotCount
// bindings, all initialized to Undefined, using the default slot layout.
func NewDeclarativeEnvironment(outer *DeclarativeEnvironment, slotCount int) *DeclarativeEnvironment {
	return &DeclarativeEnvironment{
		bindings: make([]Value, slotCount),
		outer:    outer,
		base:     DefaultBindingBase,
	}
}

// NewDeclarativeEnvironmentWithBase creates an environment whose
// parameter bindings start at the given base slot instead of the default.
func NewDeclarativeEnvironmentWithBase(outer *DeclarativeEnvironment, slotCount, base int) *DeclarativeEnvironment {
	if base < 0 || base > slotCount {
		panic(fmt.Sprintf("binding base %d out of range for %d slots", base, slotCount))
	}
	return &DeclarativeEnvironment{
		bindings: make([]Value, slotCount),
		outer:    outer,
		base:     base,
	}
}

// Outer returns the enclosing environment, or nil at the top level.
func (e *DeclarativeEnvironment) Outer() *DeclarativeEnvironment {
	return e.outer
}

// SlotCount returns the number of binding slots.
func (e *DeclarativeEnvironment) SlotCount() int {
	return len(e.bindings)
}

// BindingBase returns the slot index of the first parameter binding.
func (e *DeclarativeEnvironment) BindingBase() int {
	return e.base
}

// GetBinding reads the value at a binding slot. Binding indices are
// assigned at compile time; an out-of-range index is a programming error.
func (e *DeclarativeEnvironment) GetBinding(index int) Value {
	if index < 0 || index >= len(e.bindings) {
		panic(fmt.Sprintf("binding index %d out of range (%d slots)", index, len(e.bindings)))
	}
	return e.bindings[index]
}

// SetBinding writes the value at a binding slot.
func (e *DeclarativeEnvironment) SetBinding(index int, value Value) {
	if index < 0 || index >= len(e.bindings) {
		panic(fmt.Sprintf("binding index %d out of range (%d slots)", index, len(e.bindings)))
	}
	e.bindings[index] = value
}
