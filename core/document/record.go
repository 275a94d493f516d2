package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a single-level mapping from dotted-path key to leaf value with a
// stable key order. Leaf values are scalars, arrays or nil; a record never
// holds a nested object.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position and gets its value replaced.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The slice is owned by the
// record; callers must not modify it.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the record. Leaf values are shared;
// they are never mutated downstream.
func (r *Record) Clone() *Record {
	clone := &Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]any, len(r.values)),
	}
	copy(clone.keys, r.keys)
	for key, value := range r.values {
		clone.values[key] = value
	}
	return clone
}

// MarshalJSON serializes the record with its keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
