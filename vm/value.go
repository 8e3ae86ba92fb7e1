package vm

// ---------------------------------------------------------------------------
// Value: Tagged union over the wisp primitive types and heap objects
// ---------------------------------------------------------------------------

// ValueKind discriminates the payload of a Value.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueNumber
	ValueObject
)

// Value is a wisp runtime value: null, a boolean, a number, or a reference
// to a heap object. The zero Value is null.
type Value struct {
	kind ValueKind
	num  float64
	obj  Object
}

// Null is the wisp null value.
var Null = Value{}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	var n float64
	if b {
		n = 1
	}
	return Value{kind: ValueBool, num: n}
}

// NumberValue wraps a number.
func NumberValue(n float64) Value {
	return Value{kind: ValueNumber, num: n}
}

// ObjectValue wraps a heap object reference.
func ObjectValue(o Object) Value {
	return Value{kind: ValueObject, obj: o}
}

// Kind returns the value's type tag.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == ValueNull }
func (v Value) IsBool() bool   { return v.kind == ValueBool }
func (v Value) IsNumber() bool { return v.kind == ValueNumber }
func (v Value) IsObject() bool { return v.kind == ValueObject }

// AsBool returns the boolean payload. Only meaningful when IsBool.
func (v Value) AsBool() bool { return v.num != 0 }

// AsNumber returns the numeric payload. Only meaningful when IsNumber.
func (v Value) AsNumber() float64 { return v.num }

// AsObject returns the object payload, or nil when the value is not an
// object.
func (v Value) AsObject() Object {
	if v.kind != ValueObject {
		return nil
	}
	return v.obj
}

// AsString returns the payload as a *String, or nil when the value is not
// a string object.
func (v Value) AsString() *String {
	if v.kind != ValueObject {
		return nil
	}
	s, _ := v.obj.(*String)
	return s
}

// IsFalsey reports whether the value is treated as false in conditional
// contexts: null and false are falsey, everything else is truthy.
func (v Value) IsFalsey() bool {
	return v.kind == ValueNull || (v.kind == ValueBool && !v.AsBool())
}

// Equals reports value equality: values of different kinds are never
// equal; nulls are always equal; booleans and numbers compare by value
// (NaN != NaN); objects compare by identity, which is sound for strings
// because of interning.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueNull:
		return true
	case ValueBool:
		return v.AsBool() == other.AsBool()
	case ValueNumber:
		return v.num == other.num
	case ValueObject:
		return v.obj == other.obj
	default:
		return false
	}
}
