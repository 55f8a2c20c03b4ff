package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errAmountType = errors.New("amount must be a number or a numeric string")

// Amount accepts either a JSON number or a JSON string and keeps its text
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errAmountType
	}
	*a = Amount(n.String())
	return nil
}

// Field tracks whether a JSON key was present and whether it was null
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present in the body.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}
