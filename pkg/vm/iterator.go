package vm

// makeValuesIntrinsic builds %Array.prototype.values%, the shared
// iterator-producing function installed at @@iterator on array-like
// built-ins, arguments objects included.
func (r *Realm) makeValuesIntrinsic() Value {
	return NewNativeFunction(0, false, "values", func(this Value, args []Value) (Value, error) {
		if !this.IsObject() {
			return Undefined, r.NewTypeError("Array.prototype.values called on non-object")
		}
		return r.createArrayLikeIterator(this), nil
	})
}

// createArrayLikeIterator creates an iterator object walking indices
// 0..length of the target. Element reads go through GetProperty, so
// iterating a mapped arguments object observes live binding values.
func (r *Realm) createArrayLikeIterator(target Value) Value {
	iterator := NewObject(r.ObjectPrototype).AsPlainObject()

	// Iterator state: current index
	currentIndex := 0

	nextFn := NewNativeFunction(0, false, "next", func(this Value, args []Value) (Value, error) {
		result := NewObject(r.ObjectPrototype).AsPlainObject()
		lengthVal, err := r.GetProperty(target, NewStringKey("length"))
		if err != nil {
			return Undefined, err
		}
		length := 0
		if lengthVal.IsNumber() {
			length = int(lengthVal.AsInteger())
		}
		if currentIndex >= length {
			result.SetOwn("value", Undefined)
			result.SetOwn("done", True)
			return NewValueFromPlainObject(result), nil
		}
		v, err := r.GetProperty(target, NewIndexKey(currentIndex))
		if err != nil {
			return Undefined, err
		}
		currentIndex++
		result.SetOwn("value", v)
		result.SetOwn("done", False)
		return NewValueFromPlainObject(result), nil
	})
	iterator.SetOwnNonEnumerable("next", nextFn)

	// Iterators are themselves iterable
	selfFn := NewNativeFunction(0, false, "[Symbol.iterator]", func(this Value, args []Value) (Value, error) {
		return this, nil
	})
	w, e, c := true, false, true
	iterator.DefineOwnPropertyByKey(NewSymbolKey(r.SymbolIterator), selfFn, &w, &e, &c)

	return NewValueFromPlainObject(iterator)
}
