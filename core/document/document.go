package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object that remembers the order in which its keys were
// first set. Values are *Object, []any, string, json.Number, bool or nil.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position and gets its value replaced.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The slice is owned by the
// object; callers must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON serializes the object with its keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dig walks a dotted path segment-by-segment through nested objects and
// returns the value at the end of it. It fails if an intermediate value is
// not an object or a segment is absent.
func Dig(value any, path ...string) (any, error) {
	current := value
	for _, segment := range path {
		obj, ok := current.(*Object)
		if !ok {
			return nil, fmt.Errorf("segment %q: parent is not an object", segment)
		}
		next, ok := obj.Get(segment)
		if !ok {
			return nil, fmt.Errorf("segment %q not found", segment)
		}
		current = next
	}
	return current, nil
}
