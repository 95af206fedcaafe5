package vm

import "fmt"

// Realm owns the per-realm prototypes and intrinsic function values.
type Realm struct {
	// %Object.prototype% - default prototype of ordinary objects
	ObjectPrototype Value

	// Well-known symbols
	SymbolIterator Value

	// Intrinsic functions
	ArrayProtoValues Value // %Array.prototype.values% - shared values iterator
	ThrowTypeError   Value // %ThrowTypeError% - poison accessor for callee/caller
}

// NewRealm creates a realm with its prototypes and intrinsics set up.
func NewRealm() *Realm {
	r := &Realm{}
	r.ObjectPrototype = NewObject(Null)
	r.SymbolIterator = NewSymbol("Symbol.iterator")
	r.ThrowTypeError = NewNativeFunction(0, true, "", func(this Value, args []Value) (Value, error) {
		return Undefined, r.NewTypeError("'caller', 'callee', and 'arguments' properties may not be accessed in this context")
	})
	r.ArrayProtoValues = r.makeValuesIntrinsic()
	return r
}

// Call invokes a callable value with the given receiver and arguments.
func (r *Realm) Call(callee Value, this Value, args []Value) (Value, error) {
	fn := callee.AsNativeFunction()
	if fn == nil {
		return Undefined, r.NewTypeError(fmt.Sprintf("%s is not a function", callee.Inspect()))
	}
	return fn.Fn(this, args)
}

// GetProperty reads a property, routing mapped arguments indices through
// the parameter map and walking the prototype chain otherwise.
func (r *Realm) GetProperty(objVal Value, key PropertyKey) (Value, error) {
	if a := objVal.AsArguments(); a != nil && a.paramMap != nil {
		if getter, _, _, _, ok := a.paramMap.GetOwnAccessorByKey(key); ok {
			return r.Call(getter, objVal, nil)
		}
	}
	return r.ordinaryGet(objVal, key)
}

func (r *Realm) ordinaryGet(objVal Value, key PropertyKey) (Value, error) {
	po := objVal.AsPlainObject()
	if po == nil {
		return Undefined, r.NewTypeError(fmt.Sprintf("Cannot read property '%s' of %s", key.debugName(), objVal.TypeName()))
	}
	for cur := po; cur != nil; {
		if getter, _, _, _, ok := cur.GetOwnAccessorByKey(key); ok {
			if getter.IsUndefined() {
				return Undefined, nil
			}
			return r.Call(getter, objVal, nil)
		}
		if v, ok := cur.GetOwnByKey(key); ok {
			return v, nil
		}
		cur = cur.prototype.AsPlainObject()
	}
	return Undefined, nil
}

// SetProperty writes a property. A mapped arguments index writes through
// the parameter map setter and keeps the stored data value in sync.
func (r *Realm) SetProperty(objVal Value, key PropertyKey, value Value) error {
	if a := objVal.AsArguments(); a != nil && a.paramMap != nil {
		if _, setter, _, _, ok := a.paramMap.GetOwnAccessorByKey(key); ok {
			if _, err := r.Call(setter, objVal, []Value{value}); err != nil {
				return err
			}
			a.SetOwnByKey(key, value)
			return nil
		}
	}
	return r.ordinarySet(objVal, key, value)
}

func (r *Realm) ordinarySet(objVal Value, key PropertyKey, value Value) error {
	po := objVal.AsPlainObject()
	if po == nil {
		return r.NewTypeError(fmt.Sprintf("Cannot set property '%s' on non-object type '%s'", key.debugName(), objVal.TypeName()))
	}
	for cur := po; cur != nil; {
		if _, setter, _, _, ok := cur.GetOwnAccessorByKey(key); ok {
			if setter.IsUndefined() {
				return r.NewTypeError(fmt.Sprintf("Cannot set property '%s' which has only a getter", key.debugName()))
			}
			_, err := r.Call(setter, objVal, []Value{value})
			return err
		}
		if cur.HasOwnByKey(key) {
			if cur == po {
				po.SetOwnByKey(key, value)
				return nil
			}
			// shadow an inherited data property
			break
		}
		cur = cur.prototype.AsPlainObject()
	}
	po.SetOwnByKey(key, value)
	return nil
}

// DeleteProperty removes an own property. Deleting a mapped arguments
// index also unlinks its alias from the parameter map.
func (r *Realm) DeleteProperty(objVal Value, key PropertyKey) (bool, error) {
	po := objVal.AsPlainObject()
	if po == nil {
		return false, r.NewTypeError(fmt.Sprintf("Cannot delete property '%s' of %s", key.debugName(), objVal.TypeName()))
	}
	deleted := po.DeleteOwnByKey(key)
	if deleted {
		if a := objVal.AsArguments(); a != nil && a.paramMap != nil {
			a.paramMap.DeleteOwnByKey(key)
		}
	}
	return deleted, nil
}

// DefineDataProperty defines or updates an own data property. Redefining
// a mapped arguments index routes the new value through the alias setter
// first; making it non-writable unlinks the alias.
func (r *Realm) DefineDataProperty(objVal Value, key PropertyKey, value Value, writable, enumerable, configurable *bool) error {
	po := objVal.AsPlainObject()
	if po == nil {
		return r.NewTypeError(fmt.Sprintf("Cannot define property '%s' on non-object type '%s'", key.debugName(), objVal.TypeName()))
	}
	a := objVal.AsArguments()
	mapped := a != nil && a.paramMap != nil && a.paramMap.HasOwnByKey(key)
	po.DefineOwnPropertyByKey(key, value, writable, enumerable, configurable)
	if mapped {
		if _, setter, _, _, ok := a.paramMap.GetOwnAccessorByKey(key); ok {
			if _, err := r.Call(setter, objVal, []Value{value}); err != nil {
				return err
			}
		}
		if writable != nil && !*writable {
			a.paramMap.DeleteOwnByKey(key)
		}
	}
	return nil
}

// DefineAccessorProperty defines or updates an own accessor property.
// Converting a mapped arguments index to an accessor unlinks its alias.
func (r *Realm) DefineAccessorProperty(objVal Value, key PropertyKey, getter Value, hasGetter bool, setter Value, hasSetter bool, enumerable, configurable *bool) error {
	po := objVal.AsPlainObject()
	if po == nil {
		return r.NewTypeError(fmt.Sprintf("Cannot define property '%s' on non-object type '%s'", key.debugName(), objVal.TypeName()))
	}
	po.DefineAccessorPropertyByKey(key, getter, hasGetter, setter, hasSetter, enumerable, configurable)
	if a := objVal.AsArguments(); a != nil && a.paramMap != nil {
		a.paramMap.DeleteOwnByKey(key)
	}
	return nil
}
