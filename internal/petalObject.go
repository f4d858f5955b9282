package internal

import "strings"

// petalObject maps keys to values and remembers insertion order
type petalObject struct {
	keys   []string
	fields map[string]Value
}

// newObject creates an empty object
func newObject() *petalObject {
	return &petalObject{
		keys:   make([]string, 0),
		fields: make(map[string]Value),
	}
}

func (o *petalObject) get(key string) (Value, bool) {
	val, ok := o.fields[key]
	return val, ok
}

// set keeps the position of an existing key
func (o *petalObject) set(key string, value Value) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Keys returns the keys in insertion order
func (o *petalObject) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *petalObject) Kind() ValueKind {
	return KindObject
}

func (o *petalObject) String() string {
	return o.format(map[*petalObject]bool{})
}

// format prints nested objects, cutting reference cycles
func (o *petalObject) format(seen map[*petalObject]bool) string {
	if len(o.keys) == 0 {
		return "{}"
	}
	if seen[o] {
		return "{...}"
	}
	seen[o] = true
	defer delete(seen, o)

	parts := make([]string, len(o.keys))
	for i, key := range o.keys {
		val := o.fields[key]
		if nested, ok := val.(*petalObject); ok {
			parts[i] = key + ": " + nested.format(seen)
		} else {
			parts[i] = key + ": " + repr(val)
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (*petalObject) isValue() {}
