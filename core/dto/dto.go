package dto

import (
	"bytes"
	"encoding/json"
)

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// Optional is a request field that tells an explicit JSON null apart from an
// absent key. UnmarshalJSON only runs when the key is present, so Set reports
// whether the client sent the field at all; a null leaves Value nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
