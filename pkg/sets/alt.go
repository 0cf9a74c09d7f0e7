package sets

import "encoding/json"

// Alt holds a curated field that the source encodes either as a single value
// or as an ordered list of acceptable alternatives. The first element is the
// authoritative choice; the rest are documented substitutes, never
// simultaneous values. Parsing normalizes both encodings to the list form.
type Alt[T any] struct {
	values []T
}

// AltOf builds an Alt from explicit values, first value authoritative.
func AltOf[T any](values ...T) Alt[T] {
	return Alt[T]{values: values}
}

// UnmarshalJSON accepts either a bare value or a JSON array of values.
func (a *Alt[T]) UnmarshalJSON(data []byte) error {
	var list []T
	if err := json.Unmarshal(data, &list); err == nil {
		a.values = list
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	a.values = []T{one}
	return nil
}

// MarshalJSON writes the single-value form when only one alternative exists.
func (a Alt[T]) MarshalJSON() ([]byte, error) {
	if len(a.values) == 1 {
		return json.Marshal(a.values[0])
	}
	return json.Marshal(a.values)
}

// First returns the authoritative choice, or false when the field was absent.
func (a Alt[T]) First() (T, bool) {
	if len(a.values) == 0 {
		var zero T
		return zero, false
	}
	return a.values[0], true
}

// FirstOr returns the authoritative choice, or def when the field was absent.
func (a Alt[T]) FirstOr(def T) T {
	if v, ok := a.First(); ok {
		return v
	}
	return def
}

// All returns every alternative in source order. Callers must not mutate it.
func (a Alt[T]) All() []T {
	return a.values
}

// Empty reports whether the field was absent from the source.
func (a Alt[T]) Empty() bool {
	return len(a.values) == 0
}
