package document

// entry is one pending node on the flatten worklist.
type entry struct {
	path  string
	value any
}

// Flatten collapses a nested object into a single-level record. Nested object
// values are expanded breadth first, joining parent and child key with a dot:
// top-level keys come first in document order, then their children, then the
// grandchildren, and so on. Arrays are leaves and kept whole, including any
// objects inside them. Objects with no keys contribute nothing.
func Flatten(doc *Object) *Record {
	rec := NewRecord()
	frontier := make([]entry, 0, doc.Len())
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)
		frontier = append(frontier, entry{path: key, value: value})
	}
	for i := 0; i < len(frontier); i++ {
		e := frontier[i]
		child, ok := e.value.(*Object)
		if !ok {
			rec.Set(e.path, e.value)
			continue
		}
		for _, key := range child.Keys() {
			value, _ := child.Get(key)
			frontier = append(frontier, entry{path: e.path + "." + key, value: value})
		}
	}
	return rec
}
