package message

import "reflect"

// Extensions is a bag of request or response metadata keyed by Go type:
// at most one value of each type is stored. The zero Extensions is empty
// and ready to use.
//
//	type traceID string
//	message.InsertExtension(req.Extensions(), traceID("abc"))
//	id, ok := message.GetExtension[traceID](req.Extensions())
type Extensions struct {
	m map[reflect.Type]any
}

// InsertExtension stores v under its type T and returns the value it
// replaced, if any.
func InsertExtension[T any](e *Extensions, v T) (T, bool) {
	prev, ok := e.insert(reflect.TypeFor[T](), v)
	if !ok {
		var zero T
		return zero, false
	}
	return prev.(T), true
}

// GetExtension returns the value stored for type T.
func GetExtension[T any](e *Extensions) (T, bool) {
	v, ok := e.m[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveExtension deletes and returns the value stored for type T.
func RemoveExtension[T any](e *Extensions) (T, bool) {
	key := reflect.TypeFor[T]()
	v, ok := e.m[key]
	if !ok {
		var zero T
		return zero, false
	}
	delete(e.m, key)
	return v.(T), true
}

// insert stores v under key. Values inserted through the builder use their
// dynamic type as key, which is what GetExtension looks up for a concrete T.
func (e *Extensions) insert(key reflect.Type, v any) (any, bool) {
	if e.m == nil {
		e.m = make(map[reflect.Type]any)
	}
	prev, ok := e.m[key]
	e.m[key] = v
	return prev, ok
}

// insertAny stores v under its dynamic type. A nil v is ignored.
func insertAny(e *Extensions, v any) {
	if v == nil {
		return
	}
	e.insert(reflect.TypeOf(v), v)
}

// Len returns the number of stored values.
func (e *Extensions) Len() int {
	return len(e.m)
}

// Clear removes every value.
func (e *Extensions) Clear() {
	clear(e.m)
}

// Clone returns a shallow copy: the map is copied, stored values are not.
func (e *Extensions) Clone() Extensions {
	if e.m == nil {
		return Extensions{}
	}
	m := make(map[reflect.Type]any, len(e.m))
	for k, v := range e.m {
		m[k] = v
	}
	return Extensions{m: m}
}
