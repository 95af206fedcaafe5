package vm

import (
	"fmt"
	"strconv"
	"unsafe"
)

type KeyKind uint8

const (
	KeyKindString KeyKind = iota
	KeyKindSymbol
)

// PropertyKey represents a property key which can be a string or a symbol.
type PropertyKey struct {
	kind      KeyKind
	name      string // for string keys
	symbolVal Value  // for symbol keys (TypeSymbol)
}

func keyFromString(name string) PropertyKey {
	return PropertyKey{kind: KeyKindString, name: name}
}

func keyFromSymbol(sym Value) PropertyKey {
	return PropertyKey{kind: KeyKindSymbol, symbolVal: sym}
}

// NewStringKey constructs an exported PropertyKey for string-named properties.
func NewStringKey(name string) PropertyKey { return keyFromString(name) }

// NewSymbolKey constructs an exported PropertyKey for symbol-named properties.
func NewSymbolKey(sym Value) PropertyKey { return keyFromSymbol(sym) }

// NewIndexKey constructs the canonical string key for an array index.
func NewIndexKey(index int) PropertyKey { return keyFromString(strconv.Itoa(index)) }

func (k PropertyKey) isString() bool { return k.kind == KeyKindString }
func (k PropertyKey) isSymbol() bool { return k.kind == KeyKindSymbol }

// AsIndex reports whether the key is a canonical non-negative array index.
func (k PropertyKey) AsIndex() (int, bool) {
	if k.kind != KeyKindString {
		return 0, false
	}
	n, err := strconv.Atoi(k.name)
	if err != nil || n < 0 || strconv.Itoa(n) != k.name {
		return 0, false
	}
	return n, true
}

func (k PropertyKey) debugName() string {
	switch k.kind {
	case KeyKindString:
		return k.name
	case KeyKindSymbol:
		return fmt.Sprintf("Symbol(%s)", k.symbolVal.AsSymbol())
	default:
		return "<unknown-key>"
	}
}

func (k PropertyKey) hash() string {
	switch k.kind {
	case KeyKindString:
		return "s:" + k.name
	case KeyKindSymbol:
		return fmt.Sprintf("y:%p", k.symbolVal.obj)
	default:
		return "?"
	}
}

func (k PropertyKey) matches(f *Field) bool {
	return (k.isString() && f.keyKind == KeyKindString && f.name == k.name) ||
		(k.isSymbol() && f.keyKind == KeyKindSymbol && f.symbolVal.obj == k.symbolVal.obj)
}

type Field struct {
	offset       int
	name         string // for string keys; empty for symbols
	keyKind      KeyKind
	symbolVal    Value // valid when keyKind == KeyKindSymbol
	writable     bool
	enumerable   bool
	configurable bool
	isAccessor   bool
}

type Object struct {
}

type PlainObject struct {
	Object
	prototype  Value
	fields     []Field
	properties []Value
	// Accessor storage keyed by PropertyKey.hash()
	getters map[string]Value
	setters map[string]Value
	// Extensible flag - when false, no new properties can be added
	extensible bool
}

var DefaultObjectPrototype Value

func init() {
	protoObj := &PlainObject{prototype: Null, extensible: true}
	DefaultObjectPrototype = Value{typ: TypeObject, obj: unsafe.Pointer(protoObj)}
}

// NewObject creates a fresh object. Pass Null for a prototype-less
// object; anything that is not an object or Null falls back to the
// shared DefaultObjectPrototype.
func NewObject(proto Value) Value {
	prototype := DefaultObjectPrototype
	if proto.IsObject() || proto.IsNull() {
		prototype = proto
	}
	plainObj := &PlainObject{prototype: prototype, extensible: true}
	return Value{typ: TypeObject, obj: unsafe.Pointer(plainObj)}
}

func NewValueFromPlainObject(po *PlainObject) Value {
	return Value{typ: TypeObject, obj: unsafe.Pointer(po)}
}

// Prototype returns the object's [[Prototype]] (Null when prototype-less).
func (o *PlainObject) Prototype() Value {
	return o.prototype
}

func (o *PlainObject) findField(key PropertyKey) int {
	for i := range o.fields {
		if key.matches(&o.fields[i]) {
			return i
		}
	}
	return -1
}

// GetOwn looks up a direct (own) property by name. Returns (value, true) if present.
func (o *PlainObject) GetOwn(name string) (Value, bool) {
	return o.GetOwnByKey(keyFromString(name))
}

// GetOwnByKey looks up a direct (own) property by key. Returns (value, true) if present.
func (o *PlainObject) GetOwnByKey(key PropertyKey) (Value, bool) {
	i := o.findField(key)
	if i < 0 {
		return Undefined, false
	}
	f := &o.fields[i]
	if f.offset < len(o.properties) {
		return o.properties[f.offset], true
	}
	return Undefined, true
}

// HasOwn reports whether an own property with the given name exists.
func (o *PlainObject) HasOwn(name string) bool {
	return o.findField(keyFromString(name)) >= 0
}

// HasOwnByKey reports whether an own property with the given key exists.
func (o *PlainObject) HasOwnByKey(key PropertyKey) bool {
	return o.findField(key) >= 0
}

// GetOwnDescriptor returns the value and attribute flags for an own property.
// Returns (value, writable, enumerable, configurable, exists).
func (o *PlainObject) GetOwnDescriptor(name string) (Value, bool, bool, bool, bool) {
	return o.GetOwnDescriptorByKey(keyFromString(name))
}

// GetOwnDescriptorByKey returns descriptor flags for an own property keyed by PropertyKey.
func (o *PlainObject) GetOwnDescriptorByKey(key PropertyKey) (Value, bool, bool, bool, bool) {
	i := o.findField(key)
	if i < 0 {
		return Undefined, false, false, false, false
	}
	f := &o.fields[i]
	if f.isAccessor {
		return Undefined, false, f.enumerable, f.configurable, true
	}
	v := Undefined
	if f.offset < len(o.properties) {
		v = o.properties[f.offset]
	}
	return v, f.writable, f.enumerable, f.configurable, true
}

// GetOwnAccessor returns the accessor pair for an own property if it is an accessor.
// Returns (get, set, enumerable, configurable, exists).
func (o *PlainObject) GetOwnAccessor(name string) (Value, Value, bool, bool, bool) {
	return o.GetOwnAccessorByKey(keyFromString(name))
}

// GetOwnAccessorByKey returns the accessor pair for an own property by key.
func (o *PlainObject) GetOwnAccessorByKey(key PropertyKey) (Value, Value, bool, bool, bool) {
	i := o.findField(key)
	if i < 0 || !o.fields[i].isAccessor {
		return Undefined, Undefined, false, false, false
	}
	f := &o.fields[i]
	g, s := Undefined, Undefined
	if o.getters != nil {
		if v, ok := o.getters[key.hash()]; ok {
			g = v
		}
	}
	if o.setters != nil {
		if v, ok := o.setters[key.hash()]; ok {
			s = v
		}
	}
	return g, s, f.enumerable, f.configurable, true
}

// SetOwn sets an own data property, creating it with default attributes
// (writable, enumerable, configurable) when absent. Existing properties
// honor their writable flag; accessor properties are left untouched.
func (o *PlainObject) SetOwn(name string, v Value) {
	o.SetOwnByKey(keyFromString(name), v)
}

// SetOwnByKey is SetOwn for arbitrary key kinds.
func (o *PlainObject) SetOwnByKey(key PropertyKey, v Value) {
	if i := o.findField(key); i >= 0 {
		f := &o.fields[i]
		if !f.isAccessor && f.writable {
			o.properties[f.offset] = v
		}
		return
	}
	if !o.extensible {
		return
	}
	o.appendField(key, true, true, true, false)
	o.properties[len(o.properties)-1] = v
}

// SetOwnNonEnumerable sets or defines an own property as non-enumerable
// (for built-in methods). New properties are writable and configurable.
func (o *PlainObject) SetOwnNonEnumerable(name string, v Value) {
	key := keyFromString(name)
	if i := o.findField(key); i >= 0 {
		f := &o.fields[i]
		if !f.isAccessor && f.writable {
			o.properties[f.offset] = v
		}
		return
	}
	if !o.extensible {
		return
	}
	o.appendField(key, true, false, true, false)
	o.properties[len(o.properties)-1] = v
}

// DeleteOwn removes an own property if present and configurable.
// Returns true if the property is absent afterwards.
func (o *PlainObject) DeleteOwn(name string) bool {
	return o.DeleteOwnByKey(keyFromString(name))
}

// DeleteOwnByKey removes an own property by key if present and configurable.
func (o *PlainObject) DeleteOwnByKey(key PropertyKey) bool {
	idx := o.findField(key)
	if idx < 0 {
		return true
	}
	f := o.fields[idx]
	if !f.configurable {
		return false
	}
	if f.isAccessor {
		keyHash := key.hash()
		if o.getters != nil {
			delete(o.getters, keyHash)
		}
		if o.setters != nil {
			delete(o.setters, keyHash)
		}
	}
	// Compact both slices, fixing up offsets past the removed slot.
	o.properties = append(o.properties[:f.offset], o.properties[f.offset+1:]...)
	o.fields = append(o.fields[:idx], o.fields[idx+1:]...)
	for i := range o.fields {
		if o.fields[i].offset > f.offset {
			o.fields[i].offset--
		}
	}
	return true
}

// OwnKeys returns the string-named own property keys in insertion order.
func (o *PlainObject) OwnKeys() []string {
	keys := make([]string, 0, len(o.fields))
	for i := range o.fields {
		if o.fields[i].keyKind == KeyKindString {
			keys = append(keys, o.fields[i].name)
		}
	}
	return keys
}

// DefineOwnProperty defines or updates an own data property with explicit
// attributes. For existing properties, unspecified attributes (nil) keep
// previous values.
func (o *PlainObject) DefineOwnProperty(name string, value Value, writable *bool, enumerable *bool, configurable *bool) {
	o.DefineOwnPropertyByKey(keyFromString(name), value, writable, enumerable, configurable)
}

// DefineOwnPropertyByKey defines or updates an own data property for arbitrary key kinds.
func (o *PlainObject) DefineOwnPropertyByKey(key PropertyKey, value Value, writable *bool, enumerable *bool, configurable *bool) {
	if i := o.findField(key); i >= 0 {
		f := o.fields[i]
		newF := f
		convertingFromAccessor := false
		if f.isAccessor {
			// Convert accessor to data property: only if configurable
			if !f.configurable {
				return
			}
			newF.isAccessor = false
			newF.writable = false
			convertingFromAccessor = true
			keyHash := key.hash()
			if o.getters != nil {
				delete(o.getters, keyHash)
			}
			if o.setters != nil {
				delete(o.setters, keyHash)
			}
		}
		if !f.configurable {
			if configurable != nil && *configurable != f.configurable {
				return
			}
			if enumerable != nil && *enumerable != f.enumerable {
				return
			}
			// Non-configurable, non-writable properties cannot become writable
			if !f.writable && writable != nil && *writable {
				return
			}
		}
		if f.configurable || convertingFromAccessor || f.writable {
			o.properties[f.offset] = value
		}
		if writable != nil {
			newF.writable = *writable
		}
		if enumerable != nil {
			newF.enumerable = *enumerable
		}
		if configurable != nil {
			newF.configurable = *configurable
		}
		o.fields[i] = newF
		return
	}
	if !o.extensible {
		return
	}
	// New property via descriptor: defaults false unless specified
	w, e, c := false, false, false
	if writable != nil {
		w = *writable
	}
	if enumerable != nil {
		e = *enumerable
	}
	if configurable != nil {
		c = *configurable
	}
	o.appendField(key, w, e, c, false)
	o.properties[len(o.properties)-1] = value
}

// DefineAccessorProperty defines or updates an accessor own property.
func (o *PlainObject) DefineAccessorProperty(name string, getter Value, hasGetter bool, setter Value, hasSetter bool, enumerable *bool, configurable *bool) {
	o.DefineAccessorPropertyByKey(keyFromString(name), getter, hasGetter, setter, hasSetter, enumerable, configurable)
}

// DefineAccessorPropertyByKey defines or updates an accessor property for arbitrary key kinds.
func (o *PlainObject) DefineAccessorPropertyByKey(key PropertyKey, getter Value, hasGetter bool, setter Value, hasSetter bool, enumerable *bool, configurable *bool) {
	if i := o.findField(key); i >= 0 {
		f := &o.fields[i]
		if !f.configurable {
			return
		}
		f.isAccessor = true
		if enumerable != nil {
			f.enumerable = *enumerable
		}
		if configurable != nil {
			f.configurable = *configurable
		}
		o.storeAccessors(key, getter, hasGetter, setter, hasSetter)
		return
	}
	if !o.extensible {
		return
	}
	e, c := false, false
	if enumerable != nil {
		e = *enumerable
	}
	if configurable != nil {
		c = *configurable
	}
	o.appendField(key, false, e, c, true)
	o.storeAccessors(key, getter, hasGetter, setter, hasSetter)
}

func (o *PlainObject) appendField(key PropertyKey, writable, enumerable, configurable, isAccessor bool) {
	fld := Field{
		offset:       len(o.properties),
		keyKind:      key.kind,
		writable:     writable,
		enumerable:   enumerable,
		configurable: configurable,
		isAccessor:   isAccessor,
	}
	if key.isString() {
		fld.name = key.name
	} else {
		fld.symbolVal = key.symbolVal
	}
	o.fields = append(o.fields, fld)
	o.properties = append(o.properties, Undefined)
}

func (o *PlainObject) storeAccessors(key PropertyKey, getter Value, hasGetter bool, setter Value, hasSetter bool) {
	if o.getters == nil {
		o.getters = make(map[string]Value)
	}
	if o.setters == nil {
		o.setters = make(map[string]Value)
	}
	if hasGetter {
		o.getters[key.hash()] = getter
	}
	if hasSetter {
		o.setters[key.hash()] = setter
	}
}
