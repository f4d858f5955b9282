package internal

import "fmt"

// ValueKind is the tag of a runtime value
type ValueKind string

const (
	KindNull       ValueKind = "null"
	KindBoolean    ValueKind = "boolean"
	KindNumber     ValueKind = "number"
	KindString     ValueKind = "string"
	KindObject     ValueKind = "object"
	KindNativeFunc ValueKind = "native-func"
	KindFunc       ValueKind = "func"
)

// Value is a runtime value. The set of implementations is closed:
// petalNull, petalBool, petalNumber, petalString, *petalObject,
// *nativeFn and *petalFunction.
type Value interface {
	Kind() ValueKind
	String() string

	isValue()
}

// Representable values have a quoted form used inside objects
type Representable interface {
	Repr() string
}

type petalNull struct{}

type petalBool bool

// NewNull returns the null value
func NewNull() Value {
	return petalNull{}
}

// NewBool wraps b
func NewBool(b bool) Value {
	return petalBool(b)
}

func (petalNull) Kind() ValueKind {
	return KindNull
}

func (petalNull) String() string {
	return "null"
}

func (petalNull) isValue() {}

func (b petalBool) Kind() ValueKind {
	return KindBoolean
}

func (b petalBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}

func (petalBool) isValue() {}

// repr returns the form of v used when it is nested in another value
func repr(v Value) string {
	if r, ok := v.(Representable); ok {
		return r.Repr()
	}
	return v.String()
}
