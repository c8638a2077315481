package dto

import "encoding/json"

// Nullable wraps an optional JSON field so a handler can tell the difference
// between a key that was absent and a key that was sent as an explicit null.
// Set is true when the key appeared in the request body at all; Valid is true
// when a non-null value was decoded.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what makes the absent/null distinction work.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a pointer, nil when the field was null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
