package vm

import "unsafe"

// FormalParameters is the caller-supplied view of a function's declared
// parameter list: the names in source order plus the "simple" capability
// (no rest parameter, no destructuring pattern, no default initializer).
// Duplicate names are permitted in a simple list.
type FormalParameters struct {
	names  []string
	simple bool
}

func NewFormalParameters(names []string, simple bool) *FormalParameters {
	return &FormalParameters{names: names, simple: simple}
}

func (p *FormalParameters) Names() []string { return p.names }
func (p *FormalParameters) IsSimple() bool  { return p.simple }
func (p *FormalParameters) Len() int        { return len(p.names) }

// ArgumentsObject is the exotic object backing `arguments` inside a
// function body. The embedded PlainObject holds the own properties
// (indices, length, callee, @@iterator); paramMap is non-nil only for
// the mapped variant and holds one accessor pair per aliased index.
// The map is never handed to script code; property dispatch consults it
// internally.
type ArgumentsObject struct {
	PlainObject
	paramMap *PlainObject
}

// IsMapped reports whether the object carries a parameter map.
func (a *ArgumentsObject) IsMapped() bool {
	return a.paramMap != nil
}

// ParameterMap returns the backing map, nil for the unmapped variant.
func (a *ArgumentsObject) ParameterMap() *PlainObject {
	return a.paramMap
}

func newArgumentsValue(proto Value, paramMap *PlainObject) Value {
	obj := &ArgumentsObject{paramMap: paramMap}
	obj.prototype = proto
	obj.extensible = true
	return Value{typ: TypeArguments, obj: unsafe.Pointer(obj)}
}

// bindingAlias pairs an environment binding slot with the arguments
// property index it aliases.
type bindingAlias struct {
	bindingIndex  int
	propertyIndex int
}

// mapParameterBindings computes which argument indices alias which
// environment slots.
//
// Formal names are scanned left to right; the scan stops entirely at the
// first formal position >= argc, since arguments past the formal count
// are never aliased and formals past the argument count have no property
// to alias. A name's binding slot is fixed at its first occurrence
// (base + number of distinct names seen before it); its property index
// is overwritten on every occurrence, so the surviving value is the last
// occurrence below argc. Duplicate names therefore collapse to a single
// alias: the slot of the first declaration, observable through the index
// of the last one - the binding that is live after parameter assignment.
//
// Results are in first-occurrence order.
func mapParameterBindings(names []string, argc, base int) []bindingAlias {
	var aliases []bindingAlias
	seen := make(map[string]int, len(names))
	for k, name := range names {
		if k >= argc {
			break
		}
		if i, ok := seen[name]; ok {
			aliases[i].propertyIndex = k
			continue
		}
		seen[name] = len(aliases)
		aliases = append(aliases, bindingAlias{
			bindingIndex:  base + len(aliases),
			propertyIndex: k,
		})
	}
	return aliases
}

// makeArgGetter builds the getter half of an alias accessor: a zero-arg
// native function returning the current value of the captured binding.
// The environment pointer is shared; it keeps the environment alive for
// as long as the parameter map is reachable.
func makeArgGetter(env *DeclarativeEnvironment, bindingIndex int) Value {
	return NewNativeFunction(0, false, "", func(this Value, args []Value) (Value, error) {
		return env.GetBinding(bindingIndex), nil
	})
}

// makeArgSetter builds the setter half: a one-arg native function
// writing into the captured binding and returning undefined.
func makeArgSetter(env *DeclarativeEnvironment, bindingIndex int) Value {
	return NewNativeFunction(1, false, "", func(this Value, args []Value) (Value, error) {
		value := Undefined
		if len(args) > 0 {
			value = args[0]
		}
		env.SetBinding(bindingIndex, value)
		return Undefined, nil
	})
}

// CreateUnmappedArgumentsObject creates the simple arguments object:
// a plain array-like with no binding aliasing. Used for strict functions
// and any function whose parameter list is not simple.
func (r *Realm) CreateUnmappedArgumentsObject(argumentsList []Value) Value {
	length := len(argumentsList)

	objVal := newArgumentsValue(r.ObjectPrototype, nil)
	obj := objVal.AsPlainObject()

	// length: writable, non-enumerable, configurable
	w, e, c := true, false, true
	obj.DefineOwnProperty("length", IntegerValue(int32(length)), &w, &e, &c)

	// Index properties keep the argument values passed at construction.
	wT, eT, cT := true, true, true
	for index, value := range argumentsList {
		obj.DefineOwnPropertyByKey(NewIndexKey(index), value, &wT, &eT, &cT)
	}

	// @@iterator is the same function reference array instances use.
	obj.DefineOwnPropertyByKey(NewSymbolKey(r.SymbolIterator), r.ArrayProtoValues, &w, &e, &c)

	// callee is poisoned: both get and set throw a TypeError.
	eF, cF := false, false
	obj.DefineAccessorProperty("callee", r.ThrowTypeError, true, r.ThrowTypeError, true, &eF, &cF)

	return objVal
}

// CreateMappedArgumentsObject creates the aliasing arguments object for
// sloppy functions with a simple parameter list. Numeric properties
// whose index corresponds to a live parameter binding read and write
// that binding through the parameter map.
func (r *Realm) CreateMappedArgumentsObject(fn Value, formals *FormalParameters, argumentsList []Value, env *DeclarativeEnvironment) Value {
	// The caller guarantees no rest parameter, binding patterns or
	// initializers; duplicates are allowed.
	if !formals.IsSimple() {
		panic("CreateMappedArgumentsObject requires a simple formal parameter list")
	}

	length := len(argumentsList)

	// The parameter map is prototype-less and owned by the object.
	paramMap := NewObject(Null).AsPlainObject()
	objVal := newArgumentsValue(r.ObjectPrototype, paramMap)
	obj := objVal.AsPlainObject()

	wT, eT, cT := true, true, true
	for index, value := range argumentsList {
		obj.DefineOwnPropertyByKey(NewIndexKey(index), value, &wT, &eT, &cT)
	}

	w, e, c := true, false, true
	obj.DefineOwnProperty("length", IntegerValue(int32(length)), &w, &e, &c)

	// One accessor pair per live binding, installed on the map only.
	eF := false
	for _, alias := range mapParameterBindings(formals.Names(), length, env.BindingBase()) {
		getter := makeArgGetter(env, alias.bindingIndex)
		setter := makeArgSetter(env, alias.bindingIndex)
		paramMap.DefineAccessorPropertyByKey(NewIndexKey(alias.propertyIndex), getter, true, setter, true, &eF, &c)
	}

	obj.DefineOwnPropertyByKey(NewSymbolKey(r.SymbolIterator), r.ArrayProtoValues, &w, &e, &c)

	// callee is an ordinary writable data property holding the function.
	obj.DefineOwnProperty("callee", fn, &w, &e, &c)

	return objVal
}
