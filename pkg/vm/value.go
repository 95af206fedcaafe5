package vm

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull

	TypeString
	TypeSymbol

	TypeFloatNumber
	TypeIntegerNumber

	TypeBoolean

	TypeNativeFunction

	TypeObject
	TypeArguments
)

// String returns a human-readable string representation of the ValueType
func (vt ValueType) String() string {
	switch vt {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeSymbol:
		return "symbol"
	case TypeFloatNumber, TypeIntegerNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeNativeFunction:
		return "native function"
	case TypeObject:
		return "object"
	case TypeArguments:
		return "arguments"
	default:
		return "unknown"
	}
}

type StringObject struct {
	Object
	value string
}

type SymbolObject struct {
	Object
	value string
}

// Value is a tagged runtime value. Immediate kinds (numbers, booleans)
// live in payload; heap kinds hang off obj.
type Value struct {
	typ     ValueType
	payload uint64
	obj     unsafe.Pointer
}

var (
	Undefined = Value{typ: TypeUndefined}
	Null      = Value{typ: TypeNull}
	True      = Value{typ: TypeBoolean, payload: 1}
	False     = Value{typ: TypeBoolean, payload: 0}
	NaN       = Value{typ: TypeFloatNumber, payload: math.Float64bits(math.NaN())}
)

func NumberValue(value float64) Value {
	return Value{typ: TypeFloatNumber, payload: math.Float64bits(value)}
}

func IntegerValue(value int32) Value {
	return Value{typ: TypeIntegerNumber, payload: uint64(int64(value))}
}

func BooleanValue(value bool) Value {
	if value {
		return True
	}
	return False
}

func NewString(value string) Value {
	return Value{typ: TypeString, obj: unsafe.Pointer(&StringObject{value: value})}
}

func NewSymbol(value string) Value {
	return Value{typ: TypeSymbol, obj: unsafe.Pointer(&SymbolObject{value: value})}
}

func (v Value) Type() ValueType {
	return v.typ
}

func (v Value) TypeName() string {
	return v.typ.String()
}

func (v Value) IsUndefined() bool {
	return v.typ == TypeUndefined
}

func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

func (v Value) IsNumber() bool {
	return v.typ == TypeFloatNumber || v.typ == TypeIntegerNumber
}

func (v Value) IsString() bool {
	return v.typ == TypeString
}

func (v Value) IsSymbol() bool {
	return v.typ == TypeSymbol
}

func (v Value) IsBoolean() bool {
	return v.typ == TypeBoolean
}

func (v Value) IsObject() bool {
	return v.typ == TypeObject || v.typ == TypeArguments
}

func (v Value) IsArguments() bool {
	return v.typ == TypeArguments
}

func (v Value) IsCallable() bool {
	return v.typ == TypeNativeFunction
}

func (v Value) AsBoolean() bool {
	return v.payload != 0
}

func (v Value) AsFloat() float64 {
	if v.typ == TypeIntegerNumber {
		return float64(int64(v.payload))
	}
	return math.Float64frombits(v.payload)
}

func (v Value) AsInteger() int64 {
	if v.typ == TypeFloatNumber {
		return int64(math.Float64frombits(v.payload))
	}
	return int64(v.payload)
}

func (v Value) AsString() string {
	if v.typ != TypeString {
		return ""
	}
	return (*StringObject)(v.obj).value
}

func (v Value) AsSymbol() string {
	if v.typ != TypeSymbol {
		return ""
	}
	return (*SymbolObject)(v.obj).value
}

func (v Value) AsPlainObject() *PlainObject {
	switch v.typ {
	case TypeObject:
		return (*PlainObject)(v.obj)
	case TypeArguments:
		return &(*ArgumentsObject)(v.obj).PlainObject
	default:
		return nil
	}
}

func (v Value) AsArguments() *ArgumentsObject {
	if v.typ != TypeArguments {
		return nil
	}
	return (*ArgumentsObject)(v.obj)
}

func (v Value) AsNativeFunction() *NativeFunctionObject {
	if v.typ != TypeNativeFunction {
		return nil
	}
	return (*NativeFunctionObject)(v.obj)
}

// Is reports SameValue-style identity: same tag and same immediate
// payload or same heap object.
func (v Value) Is(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeUndefined, TypeNull:
		return true
	case TypeBoolean, TypeFloatNumber, TypeIntegerNumber:
		return v.payload == other.payload
	case TypeString:
		return v.AsString() == other.AsString()
	default:
		return v.obj == other.obj
	}
}

// Inspect renders a value for debugging and error messages.
func (v Value) Inspect() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.payload != 0 {
			return "true"
		}
		return "false"
	case TypeIntegerNumber:
		return strconv.FormatInt(int64(v.payload), 10)
	case TypeFloatNumber:
		return strconv.FormatFloat(math.Float64frombits(v.payload), 'g', -1, 64)
	case TypeString:
		return "\"" + v.AsString() + "\""
	case TypeSymbol:
		return fmt.Sprintf("Symbol(%s)", v.AsSymbol())
	case TypeNativeFunction:
		fn := (*NativeFunctionObject)(v.obj)
		return fmt.Sprintf("[native function %s]", fn.Name)
	case TypeArguments:
		return "[object Arguments]"
	case TypeObject:
		return "[object Object]"
	default:
		return "<unknown>"
	}
}
