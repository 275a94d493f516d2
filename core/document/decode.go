package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// frame is one open container during decoding: either an object collecting
// key/value pairs or an array collecting elements.
type frame struct {
	object  *Object
	array   []any
	key     string
	hasKey  bool
	isArray bool
}

// Decode reads a single JSON value from r into the document model. Objects
// become *Object with their key order preserved, arrays become []any and
// numbers stay json.Number.
//
// The decoder is iterative: open containers live on an explicit stack, so
// nesting depth is bounded by memory rather than the call stack.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		root  any
		done  bool
		stack []*frame
	)

	complete := func(value any) {
		if len(stack) == 0 {
			root = value
			done = true
			return
		}
		top := stack[len(stack)-1]
		if top.isArray {
			top.array = append(top.array, value)
			return
		}
		top.object.Set(top.key, value)
		top.hasKey = false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		if done {
			return nil, fmt.Errorf("decode document: unexpected data after top-level value")
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, &frame{object: NewObject()})
			case '[':
				stack = append(stack, &frame{isArray: true, array: []any{}})
			default: // '}' or ']'
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.isArray {
					complete(top.array)
				} else {
					complete(top.object)
				}
			}
		default:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.isArray && !top.hasKey {
					key, ok := t.(string)
					if !ok {
						return nil, fmt.Errorf("decode document: object key is not a string: %v", t)
					}
					top.key = key
					top.hasKey = true
					continue
				}
			}
			complete(t)
		}
	}

	if !done {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// DecodeObject is Decode restricted to a top-level JSON object.
func DecodeObject(r io.Reader) (*Object, error) {
	value, err := Decode(r)
	if err != nil {
		return nil, err
	}
	obj, ok := value.(*Object)
	if !ok {
		return nil, fmt.Errorf("decode document: top-level value is not an object")
	}
	return obj, nil
}
