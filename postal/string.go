package postal

import (
	"bytes"
	"encoding/json"
)

// String is an optional address string. The zero value is null, the
// batch-wide missing-value sentinel.
type String struct {
	Value string
	Valid bool
}

// NewString returns a non-null String holding s.
func NewString(s string) String {
	return String{Value: s, Valid: true}
}

// NullString returns the missing-value sentinel.
func NullString() String {
	return String{}
}

// FromRaw converts an engine-produced raw string to an optional value: the
// empty string maps to null, anything else to itself. This convention is
// lossy: a genuine empty-string field value is indistinguishable from an
// absent field.
func FromRaw(raw string) String {
	if raw == "" {
		return String{}
	}
	return String{Value: raw, Valid: true}
}

// IsNull reports whether s is the missing-value sentinel.
func (s String) IsNull() bool {
	return !s.Valid
}

var jsonNull = []byte("null")

// MarshalJSON encodes null values as JSON null.
func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return jsonNull, nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON decodes JSON null as the missing-value sentinel.
func (s *String) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*s = String{}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = String{Value: v, Valid: true}
	return nil
}

// Batch builds an input batch from plain strings, all non-null.
func Batch(values ...string) []String {
	batch := make([]String, len(values))
	for i, v := range values {
		batch[i] = NewString(v)
	}
	return batch
}

// FromPointers converts a pointer-based nullable vector (the JSON wire
// form) to a batch.
func FromPointers(values []*string) []String {
	batch := make([]String, len(values))
	for i, v := range values {
		if v != nil {
			batch[i] = NewString(*v)
		}
	}
	return batch
}

// ToPointers converts a batch to the pointer-based nullable wire form.
func ToPointers(batch []String) []*string {
	values := make([]*string, len(batch))
	for i, s := range batch {
		if s.Valid {
			v := s.Value
			values[i] = &v
		}
	}
	return values
}
