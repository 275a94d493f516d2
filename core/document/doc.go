// Package document models nested JSON documents with stable key order and
// provides the flattening step of the reconciliation pipeline.
//
// Go maps do not preserve insertion order, but the pipeline derives its
// schema from the key order of the first reconciled record, so documents are
// decoded into an order-preserving Object instead of map[string]any.
//
// # Types
//
//   - Object: a JSON object whose keys iterate in first-set order.
//   - Record: a single-level mapping from dotted-path key to leaf value,
//     also order-preserving. Records never contain nested objects.
//
// # Decoding
//
// Decode reads one JSON value from a stream into the document model using
// the token API, driven by an explicit stack of open containers rather than
// recursion, so arbitrarily deep documents cannot exhaust the call stack.
// Numbers are kept as json.Number so they re-serialize verbatim.
//
// # Flattening
//
// Flatten converts a nested Object into a Record by breadth-first expansion:
// a frontier of (path, value) pairs is drained in discovery order; object
// values push one new entry per child under "parent.child" keys, everything
// else (scalars, arrays, null) is emitted as a leaf under its dotted path.
// Arrays are leaves: only object nesting is flattened.
//
// # Usage
//
//	doc, _ := document.DecodeObject(r)
//	rec := document.Flatten(doc)
//	for _, key := range rec.Keys() {
//	    value, _ := rec.Get(key)
//	    ...
//	}
package document
